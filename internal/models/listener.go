package models

import "encoding/json"

// KafkaListenerType is the kind of a Kafka listener.
// Valid values are: internal, route, loadbalancer, nodeport, ingress, cluster-ip.
// The value is documentation only; KafkaListener accepts any string.
type KafkaListenerType string

const (
	ListenerTypeInternal     KafkaListenerType = "internal"
	ListenerTypeRoute        KafkaListenerType = "route"
	ListenerTypeLoadBalancer KafkaListenerType = "loadbalancer"
	ListenerTypeNodePort     KafkaListenerType = "nodeport"
	ListenerTypeIngress      KafkaListenerType = "ingress"
	ListenerTypeClusterIP    KafkaListenerType = "cluster-ip"
)

// Auth type labels commonly found on listeners. Not enforced.
const (
	AuthTypeNone        = "none"
	AuthTypePlain       = "plain"
	AuthTypeSCRAMSHA256 = "scram-sha-256"
	AuthTypeSCRAMSHA512 = "scram-sha-512"
	AuthTypeTLS         = "tls"
	AuthTypeOAuth       = "oauth"
)

// KnownListenerTypes returns the listener kinds in declaration order.
func KnownListenerTypes() []KafkaListenerType {
	return []KafkaListenerType{
		ListenerTypeInternal,
		ListenerTypeRoute,
		ListenerTypeLoadBalancer,
		ListenerTypeNodePort,
		ListenerTypeIngress,
		ListenerTypeClusterIP,
	}
}

// IsKnown reports whether t is one of KnownListenerTypes.
func (t KafkaListenerType) IsKnown() bool {
	for _, known := range KnownListenerTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// KafkaListener describes one listener endpoint of a Kafka cluster.
// It is immutable once built and safe to share between goroutines.
type KafkaListener struct {
	listenerType     string
	bootstrapServers string
	authType         string
}

// NewKafkaListener creates a listener descriptor. The values are stored as given.
// JSON carries only valid UTF-8: invalid bytes are written as U+FFFD, so a listener
// built from such strings does not survive a JSON round trip unchanged.
func NewKafkaListener(listenerType, bootstrapServers, authType string) KafkaListener {
	return KafkaListener{
		listenerType:     listenerType,
		bootstrapServers: bootstrapServers,
		authType:         authType,
	}
}

// Type returns the listener kind, normally one of KnownListenerTypes.
func (l KafkaListener) Type() string {
	return l.listenerType
}

// BootstrapServers returns the comma separated host:port list of the listener.
func (l KafkaListener) BootstrapServers() string {
	return l.bootstrapServers
}

// AuthType returns the authentication mechanism label.
func (l KafkaListener) AuthType() string {
	return l.authType
}

// Equal reports whether both listeners carry the same three values.
func (l KafkaListener) Equal(other KafkaListener) bool {
	return l == other
}

func (l KafkaListener) String() string {
	return l.listenerType + "/" + l.authType + "@" + l.bootstrapServers
}

type kafkaListenerJSON struct {
	Type             string `json:"type"`
	BootstrapServers string `json:"bootstrapServers"`
	AuthType         string `json:"authType"`
}

func (l KafkaListener) MarshalJSON() ([]byte, error) {
	return json.Marshal(kafkaListenerJSON{
		Type:             l.listenerType,
		BootstrapServers: l.bootstrapServers,
		AuthType:         l.authType,
	})
}

func (l *KafkaListener) UnmarshalJSON(data []byte) error {
	var raw kafkaListenerJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*l = NewKafkaListener(raw.Type, raw.BootstrapServers, raw.AuthType)
	return nil
}

// SelectListener picks the listener used to reach the cluster: the first one of the
// preferred type with a bootstrap address, otherwise the first one with a bootstrap address.
func SelectListener(listeners []KafkaListener, preferred string) (KafkaListener, bool) {
	if preferred != "" {
		for _, l := range listeners {
			if l.Type() == preferred && l.BootstrapServers() != "" {
				return l, true
			}
		}
	}
	for _, l := range listeners {
		if l.BootstrapServers() != "" {
			return l, true
		}
	}
	return KafkaListener{}, false
}
