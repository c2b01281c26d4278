package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"kafka-console/internal/models"
	"kafka-console/internal/ports"

	"github.com/go-redis/redis/v8"
)

var _ ports.ClusterCache = (*RedisCache)(nil)

const keyPrefix = "kafka:"

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(addr string, password string, db int, ttl time.Duration) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	// Check connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := client.Ping(ctx).Result()
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("Failed to connect to Redis: %w", err)
	}

	return newRedisCache(client, ttl), nil
}

func newRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: client,
		ttl:    ttl,
	}
}

func clusterKey(id string) string {
	return keyPrefix + id
}

func (c *RedisCache) SetCluster(ctx context.Context, cluster *models.KafkaCluster) error {
	jsonData, err := json.Marshal(cluster)
	if err != nil {
		return fmt.Errorf("Failed to marshal cluster: %w", err)
	}

	err = c.client.Set(ctx, clusterKey(cluster.ID), jsonData, c.ttl).Err()
	if err != nil {
		return fmt.Errorf("Failed to set cluster in cache: %w", err)
	}

	return nil
}

func (c *RedisCache) GetCluster(ctx context.Context, id string) (*models.KafkaCluster, error) {
	jsonData, err := c.client.Get(ctx, clusterKey(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("Failed to get cluster from cache: %w", err)
	}

	var cluster models.KafkaCluster
	if err := json.Unmarshal(jsonData, &cluster); err != nil {
		return nil, fmt.Errorf("Failed to unmarshal cluster: %w", err)
	}

	return &cluster, nil
}

// PreloadClusters writes all clusters in a single pipeline.
func (c *RedisCache) PreloadClusters(ctx context.Context, clusters []models.KafkaCluster) error {
	if len(clusters) == 0 {
		return nil
	}

	pipe := c.client.Pipeline()
	for i := range clusters {
		jsonData, err := json.Marshal(&clusters[i])
		if err != nil {
			return fmt.Errorf("Failed to marshal cluster %s: %w", clusters[i].ID, err)
		}
		pipe.Set(ctx, clusterKey(clusters[i].ID), jsonData, c.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("Failed to preload clusters: %w", err)
	}
	return nil
}

func (c *RedisCache) DeleteCluster(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, clusterKey(id)).Err(); err != nil {
		return fmt.Errorf("Failed to delete cluster from cache: %w", err)
	}
	return nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
