package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"kafka-console/internal/models"
	"kafka-console/internal/ports"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var _ ports.ClusterRepository = (*PostgresRepository)(nil)
var _ ports.ClusterTx = (*postgresTx)(nil)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

// Wrapper for transactions with methods Commit/Rollback
type postgresTx struct {
	tx pgx.Tx
}

type executor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type rowsQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type DatabaseConfig struct {
	URL               string
	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
}

func NewPostgresRepository(ctx context.Context, config DatabaseConfig) (*PostgresRepository, error) {
	// Parse connection string
	poolConfig, err := pgxpool.ParseConfig(config.URL)
	if err != nil {
		return nil, fmt.Errorf("Failed to parse connection string: %w", err)
	}

	poolConfig.MaxConns = config.MaxConns
	poolConfig.MinConns = config.MinConns
	poolConfig.MaxConnLifetime = config.MaxConnLifetime
	poolConfig.MaxConnIdleTime = config.MaxConnIdleTime
	poolConfig.HealthCheckPeriod = config.HealthCheckPeriod

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("Failed to create connection pool: %w", err)
	}

	repo := &PostgresRepository{pool: pool}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("Failed to ping database: %w", err)
	}

	if err := repo.createTables(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("Failed to create tables: %w", err)
	}

	log.Println("Successfully connected to PostgreSQL")
	return repo, nil
}

func (r *PostgresRepository) BeginTx(ctx context.Context) (ports.ClusterTx, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.ReadCommitted,
		AccessMode: pgx.ReadWrite,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrTxBeginFailed, err)
	}
	return &postgresTx{tx: tx}, nil
}

func (r *PostgresRepository) WithTransaction(ctx context.Context, fn func(tx ports.ClusterTx) error) error {
	tx, err := r.BeginTx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			return fmt.Errorf("Transaction error: %w, rollback error: %v", err, rollbackErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	log.Debug("Transaction committed successfully")
	return nil
}

func (r *PostgresRepository) SaveCluster(ctx context.Context, cluster *models.KafkaCluster) error {
	return saveCluster(ctx, r.pool, cluster)
}

func (r *PostgresRepository) GetCluster(ctx context.Context, id string) (*models.KafkaCluster, error) {
	return getCluster(ctx, r.pool, id)
}

func (r *PostgresRepository) GetAllClusters(ctx context.Context) ([]models.KafkaCluster, error) {
	return getAllClusters(ctx, r.pool)
}

func (r *PostgresRepository) DeleteCluster(ctx context.Context, id string) error {
	return deleteCluster(ctx, r.pool, id)
}

func (r *PostgresRepository) Close() {
	r.pool.Close()
}

func (pt *postgresTx) Commit(ctx context.Context) error {
	if err := pt.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: %v", ports.ErrTxCommitFailed, err)
	}
	return nil
}

func (pt *postgresTx) Rollback(ctx context.Context) error {
	if err := pt.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("Failed to rollback transaction: %w", err)
	}
	return nil
}

func (pt *postgresTx) SaveCluster(ctx context.Context, cluster *models.KafkaCluster) error {
	return saveCluster(ctx, pt.tx, cluster)
}

func (pt *postgresTx) GetCluster(ctx context.Context, id string) (*models.KafkaCluster, error) {
	return getCluster(ctx, pt.tx, id)
}

func (pt *postgresTx) DeleteCluster(ctx context.Context, id string) error {
	return deleteCluster(ctx, pt.tx, id)
}

const selectClusterColumns = `
	SELECT id, name, namespace, listeners, kafka_cluster_id, updated_at
	FROM kafka_clusters
`

func saveCluster(ctx context.Context, exec executor, cluster *models.KafkaCluster) error {
	query := `
		INSERT INTO kafka_clusters (
			id, name, namespace, listeners, kafka_cluster_id, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			namespace = EXCLUDED.namespace,
			listeners = EXCLUDED.listeners,
			kafka_cluster_id = EXCLUDED.kafka_cluster_id,
			updated_at = EXCLUDED.updated_at
	`

	listenersJSON, err := marshalListeners(cluster.Listeners)
	if err != nil {
		return err
	}

	updatedAt := cluster.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	_, err = exec.Exec(
		ctx,
		query,
		cluster.ID,
		cluster.Name,
		cluster.Namespace,
		listenersJSON,
		cluster.KafkaClusterID,
		updatedAt,
	)
	if err != nil {
		return fmt.Errorf("Failed to save cluster: %w", err)
	}

	log.WithField("cluster", cluster.ID).Debug("Cluster saved")
	return nil
}

func getCluster(ctx context.Context, querier rowQuerier, id string) (*models.KafkaCluster, error) {
	row := querier.QueryRow(ctx, selectClusterColumns+` WHERE id = $1`, id)

	cluster, err := scanCluster(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ports.ErrClusterNotFound
	} else if err != nil {
		return nil, fmt.Errorf("Failed to get cluster: %w", err)
	}

	return cluster, nil
}

func getAllClusters(ctx context.Context, querier rowsQuerier) ([]models.KafkaCluster, error) {
	rows, err := querier.Query(ctx, selectClusterColumns+` ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("Failed to query clusters: %w", err)
	}
	defer rows.Close()

	var clusters []models.KafkaCluster
	for rows.Next() {
		cluster, err := scanCluster(rows)
		if err != nil {
			return nil, fmt.Errorf("Failed to scan cluster: %w", err)
		}
		clusters = append(clusters, *cluster)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Error iterating clusters: %w", err)
	}

	return clusters, nil
}

func deleteCluster(ctx context.Context, exec executor, id string) error {
	result, err := exec.Exec(ctx, `DELETE FROM kafka_clusters WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("Failed to delete cluster: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ports.ErrClusterNotFound
	}

	log.WithField("cluster", id).Debug("Cluster deleted")
	return nil
}

func scanCluster(row pgx.Row) (*models.KafkaCluster, error) {
	var cluster models.KafkaCluster
	var listenersJSON []byte

	err := row.Scan(
		&cluster.ID,
		&cluster.Name,
		&cluster.Namespace,
		&listenersJSON,
		&cluster.KafkaClusterID,
		&cluster.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if cluster.Listeners, err = unmarshalListeners(listenersJSON); err != nil {
		return nil, err
	}

	return &cluster, nil
}

func marshalListeners(listeners []models.KafkaListener) ([]byte, error) {
	if listeners == nil {
		listeners = []models.KafkaListener{}
	}
	data, err := json.Marshal(listeners)
	if err != nil {
		return nil, fmt.Errorf("Failed to marshal listeners: %w", err)
	}
	return data, nil
}

func unmarshalListeners(data []byte) ([]models.KafkaListener, error) {
	listeners := []models.KafkaListener{}
	if len(data) == 0 {
		return listeners, nil
	}
	if err := json.Unmarshal(data, &listeners); err != nil {
		return nil, fmt.Errorf("Failed to unmarshal listeners: %w", err)
	}
	return listeners, nil
}

func (r *PostgresRepository) createTables(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS kafka_clusters (
			id VARCHAR(255) PRIMARY KEY,
			name VARCHAR(255) NOT NULL DEFAULT '',
			namespace VARCHAR(255) NOT NULL DEFAULT '',
			listeners JSONB NOT NULL DEFAULT '[]'::jsonb,
			kafka_cluster_id VARCHAR(255) NOT NULL DEFAULT '',
			updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
		);

		CREATE INDEX IF NOT EXISTS idx_kafka_clusters_name ON kafka_clusters(name);
	`

	_, err := r.pool.Exec(ctx, query)
	if err != nil {
		return fmt.Errorf("Failed to create tables: %w", err)
	}

	log.Println("Tables created or already exist")
	return nil
}
