package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"kafka-console/config"
	"kafka-console/internal/cache"
	"kafka-console/internal/database"
	"kafka-console/internal/http"
	"kafka-console/internal/kafka"
	"kafka-console/internal/logger"
	"kafka-console/internal/ports"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Service stopped: %v", err)
	}
}

// run returns instead of exiting so deferred closes always happen.
func run() error {
	// config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("Failed to load config: %w", err)
	}

	if err := logger.Setup(cfg.App.Env, cfg.App.LogLevel); err != nil {
		return fmt.Errorf("Failed to set up logging: %w", err)
	}

	log.Printf("Starting service in %s mode", cfg.App.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// db init
	db, err := database.NewPostgresRepository(ctx, database.DatabaseConfig{
		URL:               cfg.Database.URL,
		MaxConns:          int32(cfg.Database.MaxConns),
		MinConns:          int32(cfg.Database.MinConns),
		MaxConnLifetime:   cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:   cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod: cfg.Database.HealthCheckPeriod,
	})
	if err != nil {
		return fmt.Errorf("Failed to initialize database: %w", err)
	}
	defer db.Close()

	// cache init
	redisCache, err := cache.NewRedisCache(
		cfg.Cache.Addr,
		cfg.Cache.Password,
		cfg.Cache.DB,
		cfg.Cache.TTL)
	if err != nil {
		return fmt.Errorf("Failed to initialize Redis cache: %w", err)
	}
	defer redisCache.Close()

	// static catalog
	if cfg.Catalog.File != "" {
		if err := registerCatalog(ctx, cfg.Catalog.File, db); err != nil {
			return fmt.Errorf("Failed to register catalog: %w", err)
		}
	}

	// cache preload
	clusters, err := db.GetAllClusters(ctx)
	if err != nil {
		log.Printf("Failed to get clusters for preloading cache: %v", err)
	} else if err := redisCache.PreloadClusters(ctx, clusters); err != nil {
		log.Printf("Failed to preload cache: %v", err)
	} else {
		log.Printf("Preloaded %d clusters into cache", len(clusters))
	}

	credentials := kafka.Credentials{
		Username: cfg.Kafka.SASLUsername,
		Password: cfg.Kafka.SASLPassword,
	}

	// registration consumer init
	if cfg.Consumer.Enabled {
		dialer, err := kafka.NewDialer(kafka.ConnectionConfig{
			Brokers:       cfg.Kafka.Brokers,
			ClientID:      cfg.Kafka.ClientID,
			AuthType:      cfg.Kafka.AuthType,
			Credentials:   credentials,
			TLSEnabled:    cfg.Kafka.TLSEnabled,
			TLSSkipVerify: cfg.Kafka.TLSSkipVerify,
			Timeout:       cfg.Kafka.DialTimeout,
		})
		if err != nil {
			return fmt.Errorf("Failed to configure Kafka dialer: %w", err)
		}

		consumer := kafka.NewConsumer(kafka.ConsumerConfig{
			Brokers:    cfg.Kafka.Brokers,
			Topic:      cfg.Kafka.Topic,
			GroupID:    cfg.Kafka.GroupID,
			Dialer:     dialer,
			Timeout:    cfg.Consumer.Timeout,
			MinBytes:   cfg.Consumer.MinBytes,
			MaxBytes:   cfg.Consumer.MaxBytes,
			MaxWait:    cfg.Consumer.MaxWait,
			RetryDelay: cfg.Consumer.RetryDelay,
		}, db, redisCache)
		defer consumer.Close()

		go consumer.Start(ctx)
	}

	describer := kafka.NewDescriber(kafka.DescriberConfig{
		ClientID:      cfg.Kafka.ClientID,
		Credentials:   credentials,
		TLSEnabled:    cfg.Kafka.TLSEnabled,
		TLSSkipVerify: cfg.Kafka.TLSSkipVerify,
		Timeout:       cfg.Kafka.DialTimeout,
	})

	// http server init
	httpServer := http.NewServer(redisCache, db, describer, cfg.Kafka.PreferredListener)
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- httpServer.Start(cfg.HTTP.Addr)
	}()

	log.Println("Service started successfully")

	var runErr error
	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			runErr = fmt.Errorf("HTTP server failed: %w", err)
		}
	}

	log.Println("Shutting down service...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		runErr = errors.Join(runErr, fmt.Errorf("HTTP server shutdown: %w", err))
	}

	return runErr
}

func registerCatalog(ctx context.Context, path string, db ports.ClusterRepository) error {
	catalog, err := config.LoadCatalog(path)
	if err != nil {
		return err
	}

	clusters := catalog.ToClusters(time.Now().UTC())
	err = db.WithTransaction(ctx, func(tx ports.ClusterTx) error {
		for i := range clusters {
			if err := tx.SaveCluster(ctx, &clusters[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("Registered %d clusters from catalog", len(clusters))
	return nil
}
