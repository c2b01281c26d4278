package ports

import (
	"context"
	"kafka-console/internal/models"
)

//go:generate mockgen -source=describer.go -destination=../mocks/mock_describer.go -package=mocks

// Reads live metadata from the cluster behind a listener
type MetadataDescriber interface {
	Describe(ctx context.Context, listener models.KafkaListener) (*models.ClusterMetadata, error)
}
