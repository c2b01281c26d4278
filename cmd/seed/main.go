package main

import (
	"context"
	"fmt"
	"time"

	"kafka-console/config"
	"kafka-console/internal/kafka"
	"kafka-console/internal/models"

	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
)

func main() {
	count := flag.IntP("count", "n", 10, "number of test clusters to register")
	flag.Parse()

	if err := run(*count); err != nil {
		log.Fatal(err)
	}

	log.Println("All test registrations sent successfully")
}

func run(count int) error {
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

	for i := 1; i <= count; i++ {
		cluster := testCluster(i)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := publisher.Register(ctx, cluster)
		cancel()
		if err != nil {
			return fmt.Errorf("Failed to register %s: %w", cluster.ID, err)
		}

		log.Printf("Message sent successfully: %s", cluster.ID)
		time.Sleep(100 * time.Millisecond) // delay
	}

	return nil
}

// One listener per Strimzi exposure style, mirroring the usual port layout.
func testCluster(i int) models.KafkaCluster {
	host := fmt.Sprintf("test-cluster-%d-kafka-bootstrap.kafka", i)
	return models.KafkaCluster{
		ID:        fmt.Sprintf("test-cluster-%d", i),
		Name:      fmt.Sprintf("Test Cluster %d", i),
		Namespace: "kafka",
		Listeners: []models.KafkaListener{
			models.NewKafkaListener(string(models.ListenerTypeInternal), host+":9092", models.AuthTypeNone),
			models.NewKafkaListener(string(models.ListenerTypeInternal), host+":9093", models.AuthTypeTLS),
			models.NewKafkaListener(string(models.ListenerTypeRoute), fmt.Sprintf("test-cluster-%d.apps.example.com:443", i), models.AuthTypeSCRAMSHA512),
			models.NewKafkaListener(string(models.ListenerTypeNodePort), fmt.Sprintf("node-%d.example.com:31%03d", i, i), models.AuthTypePlain),
		},
		UpdatedAt: time.Now().UTC(),
	}
}
