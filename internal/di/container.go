package di

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/eventsync/ticket-service/internal/handler"
	"github.com/eventsync/ticket-service/internal/repository"
	"github.com/eventsync/ticket-service/internal/service"
	"github.com/eventsync/ticket-service/pkg/config"
	"github.com/eventsync/ticket-service/pkg/database"
	"github.com/eventsync/ticket-service/pkg/kafka"
	"github.com/eventsync/ticket-service/pkg/redis"
)

// Container holds all dependencies for the ticket service
type Container struct {
	// Infrastructure
	DB       *database.PostgresDB
	Redis    *redis.Client
	Producer *kafka.Producer
	Logger   *zap.Logger

	// Repositories
	EventRepo   repository.EventRepository
	TicketStore repository.TicketStore

	// Services
	Catalog   service.CatalogService
	Ledger    service.TicketLedger
	Publisher service.TicketEventPublisher

	// Handlers
	HealthHandler *handler.HealthHandler
	EventHandler  *handler.EventHandler
	TicketHandler *handler.TicketHandler

	cfg *config.Config
}

// ContainerConfig contains configuration for building the container. DB,
// Redis and Producer are optional; the container falls back to in-memory
// and no-op adapters for the ones that are nil.
type ContainerConfig struct {
	Config   *config.Config
	DB       *database.PostgresDB
	Redis    *redis.Client
	Producer *kafka.Producer
	Logger   *zap.Logger
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) (*Container, error) {
	c := &Container{
		DB:       cfg.DB,
		Redis:    cfg.Redis,
		Producer: cfg.Producer,
		Logger:   cfg.Logger,
		cfg:      cfg.Config,
	}

	// Initialize repositories
	if c.DB != nil {
		c.EventRepo = repository.NewPostgresEventRepository(c.DB.Pool())
	} else {
		c.EventRepo = repository.NewMemoryEventRepository()
	}

	switch cfg.Config.Ledger.Backend {
	case config.LedgerBackendRedis:
		if c.Redis == nil {
			return nil, fmt.Errorf("ledger backend %q requires a redis connection", config.LedgerBackendRedis)
		}
		c.TicketStore = repository.NewRedisTicketStore(c.Redis)
	default:
		c.TicketStore = repository.NewMemoryTicketStore()
	}

	// Initialize services
	if c.Producer != nil {
		c.Publisher = service.NewKafkaTicketPublisher(c.Producer, cfg.Config.Kafka.Topic)
	} else {
		c.Publisher = service.NewNoOpTicketPublisher()
	}

	signer := service.NewQRSigner(cfg.Config.Ledger.QRSecret, cfg.Config.JWT.Issuer)

	c.Catalog = service.NewCatalogService(c.EventRepo)
	c.Ledger = service.NewTicketLedger(c.TicketStore, c.Catalog, c.Publisher, signer, c.Logger)

	// Initialize handlers
	c.HealthHandler = handler.NewHealthHandler(c.DB, c.Redis)
	c.EventHandler = handler.NewEventHandler(c.Catalog)
	c.TicketHandler = handler.NewTicketHandler(c.Ledger)

	return c, nil
}

// Start seeds the demo catalog when configured and loads the persisted
// ticket ledger into memory
func (c *Container) Start(ctx context.Context) error {
	if c.cfg.Ledger.SeedDemoData {
		if err := repository.SeedDemoEvents(ctx, c.EventRepo); err != nil {
			return fmt.Errorf("failed to seed demo events: %w", err)
		}
		c.Logger.Info("demo catalog seeded")
	}

	if err := c.Ledger.Start(ctx); err != nil {
		return err
	}

	return nil
}
