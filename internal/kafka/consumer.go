package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"kafka-console/internal/models"
	"kafka-console/internal/ports"

	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
	"gopkg.in/validator.v2"
)

var _ ports.RegistrationConsumer = (*Consumer)(nil)

// errInvalidRegistration marks messages that can never be applied. They are committed and skipped.
var errInvalidRegistration = errors.New("Invalid cluster registration")

// messageReader is the part of *kafka.Reader the consumer uses.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type ConsumerConfig struct {
	Brokers    []string
	Topic      string
	GroupID    string
	Dialer     *kafka.Dialer
	Timeout    time.Duration
	MinBytes   int
	MaxBytes   int
	MaxWait    time.Duration
	RetryDelay time.Duration
}

// Consumer applies cluster registrations read from a topic. The message key is
// the cluster id, the value the cluster JSON; an empty value removes the cluster.
type Consumer struct {
	reader     messageReader
	topic      string
	repository ports.ClusterRepository
	cache      ports.ClusterCache
	timeout    time.Duration
	retryDelay time.Duration
	now        func() time.Time
}

func NewConsumer(config ConsumerConfig, repository ports.ClusterRepository, cache ports.ClusterCache) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     config.Brokers,
		GroupID:     config.GroupID,
		Topic:       config.Topic,
		Dialer:      config.Dialer,
		StartOffset: kafka.FirstOffset,
		MinBytes:    config.MinBytes,
		MaxBytes:    config.MaxBytes,
		MaxWait:     config.MaxWait,
	})

	return &Consumer{
		reader:     reader,
		topic:      config.Topic,
		repository: repository,
		cache:      cache,
		timeout:    config.Timeout,
		retryDelay: config.RetryDelay,
		now:        time.Now,
	}
}

// Start fetches registrations until ctx is done. An offset is committed only once
// its message is applied or found invalid, so failed saves are retried.
func (c *Consumer) Start(ctx context.Context) {
	log.WithField("topic", c.topic).Info("Starting Kafka registration consumer")

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				log.Info("Kafka registration consumer stopped")
				return
			}
			log.Printf("Error reading message: %v", err)

			if !c.wait(ctx) {
				return
			}
			continue
		}

		if !c.handleMessage(ctx, msg) {
			log.Info("Kafka registration consumer stopped")
			return
		}
	}
}

// handleMessage applies msg, retrying after retryDelay until it succeeds, turns out
// invalid, or ctx is done. It reports false when ctx ended first.
func (c *Consumer) handleMessage(ctx context.Context, msg kafka.Message) bool {
	fields := log.Fields{
		"partition": msg.Partition,
		"offset":    msg.Offset,
	}

	for {
		err := c.processMessage(ctx, msg.Key, msg.Value)
		if err == nil {
			break
		}
		if errors.Is(err, errInvalidRegistration) {
			log.WithFields(fields).Errorf("Skipping registration: %v", err)
			break
		}

		log.WithFields(fields).Errorf("Error processing registration, retrying: %v", err)
		if !c.wait(ctx) {
			return false
		}
	}

	if err := c.reader.CommitMessages(ctx, msg); err != nil {
		if ctx.Err() != nil {
			return false
		}
		log.WithFields(fields).Errorf("Failed to commit offset: %v", err)
	}
	return true
}

func (c *Consumer) wait(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(c.retryDelay):
		return true
	}
}

func (c *Consumer) processMessage(ctx context.Context, key, value []byte) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if len(value) == 0 {
		return c.unregister(ctx, string(key))
	}

	var cluster models.KafkaCluster
	if err := json.Unmarshal(value, &cluster); err != nil {
		return fmt.Errorf("%w: failed to unmarshal cluster: %w", errInvalidRegistration, err)
	}

	if cluster.ID == "" {
		cluster.ID = string(key)
	}
	if err := validator.Validate(cluster); err != nil {
		return fmt.Errorf("%w: %w", errInvalidRegistration, err)
	}
	if cluster.Name == "" {
		cluster.Name = cluster.ID
	}
	if cluster.UpdatedAt.IsZero() {
		cluster.UpdatedAt = c.now().UTC()
	}

	for _, l := range cluster.Listeners {
		if !models.KafkaListenerType(l.Type()).IsKnown() {
			log.WithFields(log.Fields{
				"cluster":  cluster.ID,
				"listener": l.Type(),
			}).Warn("Listener type is not a known Kafka listener type")
		}
	}

	err := c.repository.WithTransaction(ctx, func(tx ports.ClusterTx) error {
		return tx.SaveCluster(ctx, &cluster)
	})
	if err != nil {
		return fmt.Errorf("Failed to save cluster %s: %w", cluster.ID, err)
	}

	c.invalidate(ctx, cluster.ID)

	log.WithFields(log.Fields{
		"cluster":   cluster.ID,
		"listeners": len(cluster.Listeners),
	}).Info("Cluster registered")
	return nil
}

func (c *Consumer) unregister(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: tombstone without cluster id", errInvalidRegistration)
	}

	err := c.repository.WithTransaction(ctx, func(tx ports.ClusterTx) error {
		return tx.DeleteCluster(ctx, id)
	})
	if err != nil && !errors.Is(err, ports.ErrClusterNotFound) {
		return fmt.Errorf("Failed to delete cluster %s: %w", id, err)
	}

	c.invalidate(ctx, id)

	log.WithField("cluster", id).Info("Cluster unregistered")
	return nil
}

func (c *Consumer) invalidate(ctx context.Context, id string) {
	if c.cache == nil {
		return
	}
	if err := c.cache.DeleteCluster(ctx, id); err != nil {
		log.WithField("cluster", id).Warnf("Failed to invalidate cache: %v", err)
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
