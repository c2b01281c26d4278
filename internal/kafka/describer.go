package kafka

import (
	"context"
	"fmt"
	"sort"
	"time"

	"kafka-console/internal/models"
	"kafka-console/internal/ports"

	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
)

var _ ports.MetadataDescriber = (*Describer)(nil)

type DescriberConfig struct {
	ClientID      string
	Credentials   Credentials
	TLSEnabled    bool
	TLSSkipVerify bool
	Timeout       time.Duration
}

// Describer fetches live cluster metadata through a listener's bootstrap servers.
type Describer struct {
	config DescriberConfig
}

func NewDescriber(config DescriberConfig) *Describer {
	return &Describer{config: config}
}

func (d *Describer) Describe(ctx context.Context, listener models.KafkaListener) (*models.ClusterMetadata, error) {
	addrs := SplitBootstrapServers(listener.BootstrapServers())
	if len(addrs) == 0 {
		return nil, ports.ErrNoUsableListener
	}

	mechanism, err := SASLMechanism(listener.AuthType(), d.config.Credentials)
	if err != nil {
		return nil, err
	}

	transport := &kafka.Transport{
		ClientID:    d.config.ClientID,
		DialTimeout: d.config.Timeout,
		SASL:        mechanism,
		TLS:         TLSConfig(listener.AuthType(), d.config.TLSEnabled, d.config.TLSSkipVerify),
	}
	defer transport.CloseIdleConnections()

	client := &kafka.Client{
		Addr:      kafka.TCP(addrs...),
		Timeout:   d.config.Timeout,
		Transport: transport,
	}

	start := time.Now()
	resp, err := client.Metadata(ctx, &kafka.MetadataRequest{})
	if err != nil {
		return nil, fmt.Errorf("Failed to fetch metadata from %s: %w", listener.BootstrapServers(), err)
	}

	log.WithFields(log.Fields{
		"bootstrap": listener.BootstrapServers(),
		"listener":  listener.Type(),
		"brokers":   len(resp.Brokers),
		"topics":    len(resp.Topics),
		"took":      time.Since(start).String(),
	}).Debug("Fetched cluster metadata")

	return toClusterMetadata(resp), nil
}

func toClusterMetadata(resp *kafka.MetadataResponse) *models.ClusterMetadata {
	meta := &models.ClusterMetadata{
		ClusterID: resp.ClusterID,
		Nodes:     make([]models.Node, 0, len(resp.Brokers)),
		Topics:    make([]models.Topic, 0, len(resp.Topics)),
	}

	for _, b := range resp.Brokers {
		meta.Nodes = append(meta.Nodes, toNode(b))
	}
	sort.Slice(meta.Nodes, func(i, j int) bool {
		return meta.Nodes[i].ID < meta.Nodes[j].ID
	})

	// kafka-go leaves the controller zero valued when the broker reports none
	if resp.Controller.Host != "" {
		controller := toNode(resp.Controller)
		meta.Controller = &controller
	}

	for _, t := range resp.Topics {
		meta.Topics = append(meta.Topics, toTopic(t))
	}
	sort.Slice(meta.Topics, func(i, j int) bool {
		return meta.Topics[i].Name < meta.Topics[j].Name
	})

	return meta
}

func toTopic(t kafka.Topic) models.Topic {
	partitions := make([]models.Partition, 0, len(t.Partitions))
	for _, p := range t.Partitions {
		partitions = append(partitions, toPartition(p))
	}
	return models.NewTopic(t.Name, t.Internal, partitions)
}

// kafka-go reports brokers it cannot resolve with an empty host, so those
// count as neither leading nor in sync.
func toPartition(p kafka.Partition) models.Partition {
	isr := make(map[int]bool, len(p.Isr))
	for _, b := range p.Isr {
		if b.Host != "" {
			isr[b.ID] = true
		}
	}

	replicas := make([]models.Replica, 0, len(p.Replicas))
	for _, b := range p.Replicas {
		replicas = append(replicas, models.Replica{
			NodeID: b.ID,
			InSync: b.Host != "" && isr[b.ID],
		})
	}

	var leader *int
	if p.Leader.Host != "" {
		id := p.Leader.ID
		leader = &id
	}

	return models.NewPartition(p.ID, leader, replicas)
}

func toNode(b kafka.Broker) models.Node {
	return models.Node{
		ID:   b.ID,
		Host: b.Host,
		Port: b.Port,
		Rack: b.Rack,
	}
}
