package ports

import (
	"context"
	"kafka-console/internal/models"
)

//go:generate mockgen -source=repository.go -destination=../mocks/mock_repository.go -package=mocks

// For default operations
type ClusterRepository interface {
	// Basic operations
	GetCluster(ctx context.Context, id string) (*models.KafkaCluster, error)
	SaveCluster(ctx context.Context, cluster *models.KafkaCluster) error
	GetAllClusters(ctx context.Context) ([]models.KafkaCluster, error)
	DeleteCluster(ctx context.Context, id string) error

	// Transaction operations
	BeginTx(ctx context.Context) (ClusterTx, error)
	WithTransaction(ctx context.Context, fn func(tx ClusterTx) error) error
}

// For transactions
type ClusterTx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	GetCluster(ctx context.Context, id string) (*models.KafkaCluster, error)
	SaveCluster(ctx context.Context, cluster *models.KafkaCluster) error
	DeleteCluster(ctx context.Context, id string) error
}
