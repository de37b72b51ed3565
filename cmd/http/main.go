package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rafaelleal24/estudos/internal/adapters/config"
	"github.com/rafaelleal24/estudos/internal/adapters/http"
	"github.com/rafaelleal24/estudos/internal/adapters/http/controllers"
	"github.com/rafaelleal24/estudos/internal/adapters/mongo"
	"github.com/rafaelleal24/estudos/internal/adapters/mongo/repository"
	"github.com/rafaelleal24/estudos/internal/adapters/outbox"
	"github.com/rafaelleal24/estudos/internal/adapters/rabbitmq"
	"github.com/rafaelleal24/estudos/internal/adapters/redis"
	"github.com/rafaelleal24/estudos/internal/adapters/storage"
	"github.com/rafaelleal24/estudos/internal/core/domain"
	"github.com/rafaelleal24/estudos/internal/core/logger"
	"github.com/rafaelleal24/estudos/internal/core/service"
)

func main() {
	// initialize config and logger
	cfg := config.NewConfig()
	err := logger.Initialize(logger.Options{
		CollectorEndpoint: cfg.Logger.Endpoint,
		ServiceName:       cfg.Logger.ServiceName,
		IsProduction:      cfg.Logger.IsProduction,
		Verbose:           cfg.Logger.Verbose,
	})
	if err != nil {
		// logger not available yet, fall back to stderr
		fmt.Fprintln(os.Stderr, "failed to initialize logger: "+err.Error())
		os.Exit(1)
	}

	// cancellable context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// initialize database connection
	mongoClient, err := mongo.NewConnection(cfg.Mongo)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to MongoDB", err, nil)
	}
	defer mongo.Disconnect(mongoClient)
	logger.Info(ctx, "Connected to MongoDB", map[string]any{"database": cfg.Mongo.Database})

	// initialize redis connection
	redisClient, err := redis.NewConnection(cfg.Redis)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to Redis", err, nil)
	}
	defer redisClient.Close()
	logger.Info(ctx, "Connected to Redis", nil)

	// initialize rabbitmq connection
	broker, err := rabbitmq.NewRabbitMQAdapter(cfg.RabbitMQ)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to RabbitMQ", err, nil)
	}
	defer broker.Close()
	logger.Info(ctx, "Connected to RabbitMQ", nil)

	// image storage
	imageStorage, err := storage.NewDiskImageStorage(cfg.Upload)
	if err != nil {
		logger.Fatal(ctx, "Failed to prepare upload directory", err, map[string]any{"dir": cfg.Upload.Dir})
	}

	// initialize database and repos
	database := mongoClient.Database(cfg.Mongo.Database)
	if err := mongo.EnsureIndexes(ctx, database); err != nil {
		logger.Fatal(ctx, "Failed to create MongoDB indexes", err, nil)
	}
	productRepository := repository.NewProductRepository(database)
	supplierRepository := repository.NewSupplierRepository(database)
	outboxRepository := repository.NewOutboxRepository(database)
	txManager := mongo.NewTransactionManager(mongoClient)

	// cache, rate limiter and anti-forgery tokens
	productCache := redis.NewCache[domain.Product](redisClient, "cache")
	rateLimiter := redis.NewRateLimiter(redisClient)
	tokenStore := redis.NewTokenStore(redisClient)

	// outbox handler (uses cancellable context)
	outboxHandler := outbox.NewHandler(outboxRepository, broker, cfg.Outbox)
	go outboxHandler.Start(ctx)

	// services
	productService := service.NewProductService(
		productRepository,
		supplierRepository,
		imageStorage,
		outbox.NewEventStore(outboxRepository),
		productCache,
		txManager,
		cfg.Cache.ProductTTL,
	)

	// controllers
	productController := controllers.NewProductController(productService)
	healthController := controllers.NewHealthController([]controllers.HealthChecker{
		{Name: "mongodb", Check: func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) }},
		{Name: "redis", Check: func(ctx context.Context) error { return redisClient.Ping(ctx) }},
		{Name: "rabbitmq", Check: func(ctx context.Context) error { return broker.HealthCheck() }},
		{Name: "uploads", Check: func(ctx context.Context) error { return imageStorage.HealthCheck() }},
	})

	// router
	router := http.NewRouter(healthController, productController, rateLimiter, tokenStore, cfg)

	// graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info(ctx, "Received shutdown signal", map[string]any{"signal": sig.String()})
		cancel()
	}()

	logger.Info(ctx, "Starting HTTP server", map[string]any{"addr": cfg.HTTP.BindInterface + ":" + cfg.HTTP.Port})
	if err := router.ListenAndServe(ctx); err != nil {
		logger.Fatal(ctx, "Failed to start HTTP server", err, nil)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := logger.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintln(os.Stderr, "logger shutdown error: "+err.Error())
	}
}
