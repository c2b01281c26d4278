package ports

import (
	"context"
	"kafka-console/internal/models"
)

//go:generate mockgen -source=cache.go -destination=../mocks/mock_cache.go -package=mocks

// A miss is reported as (nil, nil)
type ClusterCache interface {
	SetCluster(ctx context.Context, cluster *models.KafkaCluster) error
	GetCluster(ctx context.Context, id string) (*models.KafkaCluster, error)
	PreloadClusters(ctx context.Context, clusters []models.KafkaCluster) error
	DeleteCluster(ctx context.Context, id string) error
	Close() error
}
