package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"kafka-console/internal/models"

	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
)

// ConnectionConfig describes how the service reaches its own registration brokers.
type ConnectionConfig struct {
	Brokers       []string
	ClientID      string
	AuthType      string
	Credentials   Credentials
	TLSEnabled    bool
	TLSSkipVerify bool
	Timeout       time.Duration
}

// NewDialer builds the dialer used by the registration reader.
func NewDialer(config ConnectionConfig) (*kafka.Dialer, error) {
	mechanism, err := SASLMechanism(config.AuthType, config.Credentials)
	if err != nil {
		return nil, err
	}

	return &kafka.Dialer{
		ClientID:      config.ClientID,
		Timeout:       config.Timeout,
		DualStack:     true,
		SASLMechanism: mechanism,
		TLS:           TLSConfig(config.AuthType, config.TLSEnabled, config.TLSSkipVerify),
	}, nil
}

// Publisher writes cluster registrations keyed by cluster id.
type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(config ConnectionConfig, topic string) (*Publisher, error) {
	mechanism, err := SASLMechanism(config.AuthType, config.Credentials)
	if err != nil {
		return nil, err
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(config.Brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireAll,
		Transport: &kafka.Transport{
			ClientID:    config.ClientID,
			DialTimeout: config.Timeout,
			SASL:        mechanism,
			TLS:         TLSConfig(config.AuthType, config.TLSEnabled, config.TLSSkipVerify),
		},
	}

	return &Publisher{writer: writer}, nil
}

// Register publishes the cluster so consumers upsert it.
func (p *Publisher) Register(ctx context.Context, clusters ...models.KafkaCluster) error {
	messages := make([]kafka.Message, 0, len(clusters))
	for i := range clusters {
		value, err := json.Marshal(&clusters[i])
		if err != nil {
			return fmt.Errorf("Failed to marshal cluster %s: %w", clusters[i].ID, err)
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(clusters[i].ID),
			Value: value,
		})
	}

	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		return fmt.Errorf("Failed to write registrations: %w", err)
	}

	log.WithField("count", len(messages)).Info("Cluster registrations published")
	return nil
}

// Unregister publishes a tombstone for the cluster id.
func (p *Publisher) Unregister(ctx context.Context, id string) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(id)})
	if err != nil {
		return fmt.Errorf("Failed to write tombstone for %s: %w", id, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
