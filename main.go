package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eventsync/ticket-service/internal/di"
	"github.com/eventsync/ticket-service/internal/metrics"
	"github.com/eventsync/ticket-service/migrations"
	"github.com/eventsync/ticket-service/pkg/config"
	"github.com/eventsync/ticket-service/pkg/database"
	"github.com/eventsync/ticket-service/pkg/kafka"
	"github.com/eventsync/ticket-service/pkg/logger"
	"github.com/eventsync/ticket-service/pkg/middleware"
	"github.com/eventsync/ticket-service/pkg/redis"
	"github.com/eventsync/ticket-service/pkg/telemetry"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logCfg := &logger.Config{
		Level:       cfg.App.LogLevel,
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
	}
	if err := logger.Init(logCfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	appLog := logger.Get()
	appLog.Info("Starting EventSync Ticket Service...")

	ctx := context.Background()

	// Initialize OpenTelemetry
	telemetryCfg := &telemetry.Config{
		Enabled:        cfg.OTel.Enabled,
		ServiceName:    cfg.App.Name,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
		CollectorAddr:  cfg.OTel.CollectorAddr,
		SampleRatio:    cfg.OTel.SampleRatio,
	}
	if err := telemetry.Init(ctx, telemetryCfg); err != nil {
		appLog.Warn(fmt.Sprintf("Failed to initialize telemetry: %v", err))
	} else if telemetryCfg.Enabled {
		appLog.Info(fmt.Sprintf("Telemetry initialized (collector: %s)", telemetryCfg.CollectorAddr))
	}
	defer telemetry.Shutdown(ctx)

	if err := metrics.Init(); err != nil {
		appLog.Warn(fmt.Sprintf("Failed to initialize metrics: %v", err))
	}

	// Initialize database connection (optional - the catalog falls back to
	// the in-memory repository)
	var db *database.PostgresDB
	if cfg.Database.Enabled {
		dbCfg := &database.PostgresConfig{
			Host:            cfg.Database.Host,
			Port:            cfg.Database.Port,
			User:            cfg.Database.User,
			Password:        cfg.Database.Password,
			Database:        cfg.Database.DBName,
			SSLMode:         cfg.Database.SSLMode,
			MaxConns:        cfg.Database.MaxConns,
			MinConns:        cfg.Database.MinConns,
			MaxConnLifetime: cfg.Database.ConnMaxLifetime,
			MaxConnIdleTime: cfg.Database.ConnMaxIdleTime,
			ConnectTimeout:  5 * time.Second,
			MaxRetries:      3,
			RetryInterval:   time.Second,
			EnableTracing:   cfg.OTel.Enabled,
		}
		db, err = database.NewPostgres(ctx, dbCfg)
		if err != nil {
			appLog.Fatal(fmt.Sprintf("Database connection failed: %v", err))
		}
		defer db.Close()
		appLog.Info(fmt.Sprintf("Database connected (pool: min=%d, max=%d)", dbCfg.MinConns, dbCfg.MaxConns))

		if err := migrations.Apply(ctx, db.Pool()); err != nil {
			appLog.Fatal(fmt.Sprintf("Failed to apply migrations: %v", err))
		}
	} else {
		appLog.Info("Database disabled, using in-memory event catalog")
	}

	// Initialize Redis connection. Required when the ledger backend is
	// redis, otherwise only used for idempotency if reachable.
	var redisClient *redis.Client
	redisCfg := &redis.Config{
		Host:          cfg.Redis.Host,
		Port:          cfg.Redis.Port,
		Password:      cfg.Redis.Password,
		DB:            cfg.Redis.DB,
		PoolSize:      cfg.Redis.PoolSize,
		MinIdleConns:  cfg.Redis.MinIdleConns,
		DialTimeout:   cfg.Redis.DialTimeout,
		ReadTimeout:   cfg.Redis.ReadTimeout,
		WriteTimeout:  cfg.Redis.WriteTimeout,
		MaxRetries:    3,
		RetryInterval: time.Second,
	}
	redisClient, err = redis.NewClient(ctx, redisCfg)
	if err != nil {
		if cfg.Ledger.Backend == config.LedgerBackendRedis {
			appLog.Fatal(fmt.Sprintf("Redis connection failed: %v", err))
		}
		appLog.Warn(fmt.Sprintf("Redis connection failed (idempotency disabled): %v", err))
		redisClient = nil
	} else {
		defer redisClient.Close()
		appLog.Info(fmt.Sprintf("Redis connected (%s)", redisCfg.Addr()))
	}

	// Initialize Kafka producer (optional - lifecycle events are dropped
	// when disabled)
	var producer *kafka.Producer
	if cfg.Kafka.Enabled {
		producer, err = kafka.NewProducer(ctx, &kafka.ProducerConfig{
			Brokers:       cfg.Kafka.Brokers,
			ClientID:      cfg.Kafka.ClientID,
			MaxRetries:    3,
			RetryInterval: 2 * time.Second,
		})
		if err != nil {
			appLog.Warn(fmt.Sprintf("Kafka connection failed (event publishing disabled): %v", err))
			producer = nil
		} else {
			defer producer.Close()
			appLog.Info(fmt.Sprintf("Kafka connected (topic: %s)", cfg.Kafka.Topic))
		}
	}

	// Build dependency injection container
	container, err := di.NewContainer(&di.ContainerConfig{
		Config:   cfg,
		DB:       db,
		Redis:    redisClient,
		Producer: producer,
		Logger:   appLog,
	})
	if err != nil {
		appLog.Fatal(fmt.Sprintf("Failed to build container: %v", err))
	}

	// Seed the catalog and load the persisted ticket ledger
	if err := container.Start(ctx); err != nil {
		appLog.Fatal(fmt.Sprintf("Failed to start services: %v", err))
	}

	// Setup Gin
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	// Add OpenTelemetry tracing middleware if enabled
	if cfg.OTel.Enabled {
		router.Use(telemetry.TracingMiddleware(cfg.App.Name))
	}

	// Health check endpoints
	router.GET("/health", container.HealthHandler.Health)
	router.GET("/ready", container.HealthHandler.Ready)

	// JWT middleware configuration
	jwtConfig := &middleware.JWTConfig{
		Secret: cfg.JWT.Secret,
		Issuer: cfg.JWT.Issuer,
	}
	authed := middleware.JWTMiddleware(jwtConfig)
	organizerOnly := middleware.RequireRole(middleware.RoleOrganizer)

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Events endpoints - public read, organizer write
		events := v1.Group("/events")
		{
			events.GET("", container.EventHandler.List)
			events.GET("/stats", authed, organizerOnly, container.EventHandler.Stats)
			events.GET("/:id", container.EventHandler.GetByID)
			events.POST("", authed, organizerOnly, container.EventHandler.Create)
		}

		// Tickets endpoints - authenticated
		tickets := v1.Group("/tickets")
		tickets.Use(authed)
		{
			purchase := tickets.Group("")
			if redisClient != nil {
				purchase.Use(middleware.IdempotencyMiddleware(middleware.DefaultIdempotencyConfig(redisClient)))
			}
			purchase.POST("/purchase", container.TicketHandler.Purchase)

			tickets.GET("/my", container.TicketHandler.MyTickets)
			tickets.GET("/:id", container.TicketHandler.GetByID)
			tickets.POST("/:id/refund", container.TicketHandler.Refund)
		}

		// Check-in endpoint - organizer gate staff
		v1.POST("/checkin", authed, organizerOnly, container.TicketHandler.CheckIn)
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 2 * time.Second,
	}

	// Start server in goroutine
	go func() {
		appLog.Info(fmt.Sprintf("Ticket Service listening on %s", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal(fmt.Sprintf("Failed to start server: %v", err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Fatal(fmt.Sprintf("Server forced to shutdown: %v", err))
	}

	container.Publisher.Close()

	appLog.Info("Server exited gracefully")
}
