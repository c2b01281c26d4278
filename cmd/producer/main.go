package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"kafka-console/config"
	"kafka-console/internal/kafka"
	"kafka-console/internal/models"

	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
)

// Publishes a single cluster registration, or a tombstone with --delete.
//
//	producer --id my-cluster --listener 'internal|my-cluster-kafka-bootstrap.kafka:9092|none'
func main() {
	var (
		id        = flag.String("id", "", "cluster id")
		name      = flag.String("name", "", "display name, defaults to the id")
		namespace = flag.String("namespace", "", "cluster namespace")
		listeners = flag.StringArray("listener", nil, "listener as type|bootstrapServers|authType, repeatable")
		remove    = flag.Bool("delete", false, "unregister the cluster instead")
	)
	flag.Parse()

	if *id == "" {
		log.Fatal("--id is required")
	}

	cluster := models.KafkaCluster{
		ID:        *id,
		Name:      *name,
		Namespace: *namespace,
		UpdatedAt: time.Now().UTC(),
	}
	for _, raw := range *listeners {
		cluster.Listeners = append(cluster.Listeners, parseListener(raw))
	}

	if err := run(cluster, *remove); err != nil {
		log.Fatal(err)
	}
}

func run(cluster models.KafkaCluster, remove bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("Failed to load config: %w", err)
	}

	publisher, err := kafka.NewPublisher(kafka.ConnectionConfig{
		Brokers:       cfg.Kafka.Brokers,
		ClientID:      cfg.Kafka.ClientID,
		AuthType:      cfg.Kafka.AuthType,
		Credentials:   kafka.Credentials{Username: cfg.Kafka.SASLUsername, Password: cfg.Kafka.SASLPassword},
		TLSEnabled:    cfg.Kafka.TLSEnabled,
		TLSSkipVerify: cfg.Kafka.TLSSkipVerify,
		Timeout:       cfg.Kafka.DialTimeout,
	}, cfg.Kafka.Topic)
	if err != nil {
		return fmt.Errorf("Failed to create publisher: %w", err)
	}
	defer publisher.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if remove {
		if err := publisher.Unregister(ctx, cluster.ID); err != nil {
			return fmt.Errorf("Failed to unregister cluster: %w", err)
		}
		log.Printf("Tombstone sent for %s", cluster.ID)
		return nil
	}

	if err := publisher.Register(ctx, cluster); err != nil {
		return fmt.Errorf("Failed to register cluster: %w", err)
	}

	log.Println("Message sent successfully")
	return nil
}

// parseListener reads "type|bootstrap|auth"; missing parts stay empty.
func parseListener(raw string) models.KafkaListener {
	parts := strings.SplitN(raw, "|", 3)
	for len(parts) < 3 {
		parts = append(parts, "")
	}
	return models.NewKafkaListener(parts[0], parts[1], parts[2])
}
