package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/raohamdcreator-bit/verity/internal/api"
	"github.com/raohamdcreator-bit/verity/internal/config"
	"github.com/raohamdcreator-bit/verity/internal/configs/env"
	"github.com/raohamdcreator-bit/verity/internal/infra/mongo"
	redisInfra "github.com/raohamdcreator-bit/verity/internal/infra/redis"
	"github.com/raohamdcreator-bit/verity/internal/logger"
	"github.com/raohamdcreator-bit/verity/internal/metrics"
	"github.com/raohamdcreator-bit/verity/internal/repository"
	"github.com/raohamdcreator-bit/verity/internal/scan"
	"github.com/raohamdcreator-bit/verity/internal/stream"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := env.LoadEnv(); err != nil {
		log.Warn().Err(err).Msg("Failed to load .env file, continuing with system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("Invalid configuration: %v", err))
	}

	logger.Init(cfg.LogLevel)
	log.Info().Msg("Starting verity similarity service")

	metrics.InitPrometheus()
	log.Info().Msg("Prometheus metrics initialized")

	// Metrics server on its own port
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsServer := &http.Server{
		Addr:    ":" + cfg.MetricsPort,
		Handler: metricsMux,
	}
	go func() {
		log.Info().Str("port", cfg.MetricsPort).Msg("Metrics server started")
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Metrics server failed to start")
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect MongoDB
	mongoClient, err := mongo.NewClient(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create MongoDB client")
	}
	defer mongoClient.Close(ctx)

	// Connect Redis
	redisClient, err := redisInfra.NewClient(ctx, cfg.RedisHost, cfg.RedisPassword, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create Redis client")
	}
	defer redisClient.Close()

	// Repositories
	mongoRepo := repository.NewMongoRepository(mongoClient)
	itemsRepo := repository.NewItemsRepository(mongoRepo)
	reportsRepo := repository.NewReportsRepository(mongoRepo)

	// Scan machinery
	statusTracker := scan.NewRedisStatusTracker(redisClient)
	workerPool := scan.NewWorkerPool(ctx)
	defer workerPool.Close()

	scanSvc := scan.NewService(itemsRepo, reportsRepo, statusTracker, workerPool, cfg.MaxConcurrentScans, cfg.ScanTimeout)

	// Stream consumer
	retryHandler := stream.NewRetryHandler(redisClient.Client, cfg.RedisDeadLetterKey)

	hostname, _ := os.Hostname()
	if hostname == "" {
		hostname = "unknown"
	}
	consumerName := fmt.Sprintf("consumer-%s-%d-%s", hostname, os.Getpid(), uuid.New().String()[:8])
	consumer := stream.NewConsumer(
		redisClient.Client,
		cfg.RedisStreamKey,
		cfg.RedisConsumerGroup,
		consumerName,
		scanSvc,
		retryHandler,
		cfg.StreamRetentionDuration,
	)
	log.Info().Str("consumer_name", consumerName).Msg("Scan stream consumer initialized")

	publisher := stream.NewPublisher(redisClient.Client, cfg.RedisStreamKey)

	router := api.SetupRoutes(cfg, itemsRepo, reportsRepo, statusTracker, publisher)

	// Start stream consumer in background
	consumerCtx, consumerCancel := context.WithCancel(ctx)
	go func() {
		defer consumerCancel()
		if err := consumer.Start(consumerCtx); err != nil && err != context.Canceled {
			log.Error().Err(err).Msg("Scan stream consumer error")
		}
	}()
	log.Info().Msg("Scan stream consumer started")

	srv := api.StartServer(router, cfg.ServerPort)

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down gracefully...")

	if err := api.ShutdownServer(srv, 30*time.Second); err != nil {
		log.Error().Err(err).Msg("Error shutting down HTTP server")
	}

	metricsCtx, metricsCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer metricsCancel()
	if err := metricsServer.Shutdown(metricsCtx); err != nil {
		log.Error().Err(err).Msg("Error shutting down metrics server")
	}

	log.Info().Msg("Shutdown complete")
}
