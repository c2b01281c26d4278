package kafka

import (
	"crypto/tls"
	"fmt"
	"strings"

	"kafka-console/internal/models"
	"kafka-console/internal/ports"

	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
	"github.com/segmentio/kafka-go/sasl/scram"
)

// Credentials used for SASL authentication against a listener.
type Credentials struct {
	Username string
	Password string
}

// SASLMechanism maps a listener auth type onto a kafka-go SASL mechanism.
// A nil mechanism with a nil error means the listener needs no SASL.
func SASLMechanism(authType string, creds Credentials) (sasl.Mechanism, error) {
	switch strings.ToLower(strings.TrimSpace(authType)) {
	case "", models.AuthTypeNone, models.AuthTypeTLS:
		return nil, nil
	case models.AuthTypePlain:
		return plain.Mechanism{
			Username: creds.Username,
			Password: creds.Password,
		}, nil
	case models.AuthTypeSCRAMSHA256:
		mechanism, err := scram.Mechanism(scram.SHA256, creds.Username, creds.Password)
		if err != nil {
			return nil, fmt.Errorf("Failed to create scram-sha-256 mechanism: %w", err)
		}
		return mechanism, nil
	case models.AuthTypeSCRAMSHA512:
		mechanism, err := scram.Mechanism(scram.SHA512, creds.Username, creds.Password)
		if err != nil {
			return nil, fmt.Errorf("Failed to create scram-sha-512 mechanism: %w", err)
		}
		return mechanism, nil
	default:
		return nil, fmt.Errorf("%w: %q", ports.ErrUnsupportedAuthType, authType)
	}
}

// TLSConfig returns the client TLS settings for a listener, or nil for plaintext.
// Mutual TLS listeners always use TLS.
func TLSConfig(authType string, enabled, skipVerify bool) *tls.Config {
	if !enabled && !strings.EqualFold(strings.TrimSpace(authType), models.AuthTypeTLS) {
		return nil
	}
	return &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: skipVerify,
	}
}

// SplitBootstrapServers turns "host:port,host:port" into addresses, dropping blanks.
func SplitBootstrapServers(bootstrapServers string) []string {
	var addrs []string
	for _, addr := range strings.Split(bootstrapServers, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			addrs = append(addrs, addr)
		}
	}
	return addrs
}
