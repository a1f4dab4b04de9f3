package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/attribute"

	"github.com/eventsync/ticket-service/internal/domain"
	"github.com/eventsync/ticket-service/pkg/redis"
	"github.com/eventsync/ticket-service/pkg/telemetry"
)

// TicketLedgerKey is the fixed Redis key holding the whole ticket
// collection as one JSON document
const TicketLedgerKey = "eventsync:tickets"

// RedisTicketStore implements TicketStore by serializing the whole
// ticket collection to a single Redis key
type RedisTicketStore struct {
	client *redis.Client
	key    string
}

// NewRedisTicketStore creates a new RedisTicketStore
func NewRedisTicketStore(client *redis.Client) *RedisTicketStore {
	return &RedisTicketStore{
		client: client,
		key:    TicketLedgerKey,
	}
}

// Load reads the whole ticket collection, empty slice when the key is absent
func (s *RedisTicketStore) Load(ctx context.Context) ([]*domain.Ticket, error) {
	ctx, span := telemetry.StartSpan(ctx, "ticket_store.load")
	defer span.End()

	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return []*domain.Ticket{}, nil
		}
		telemetry.SetSpanError(ctx, err)
		return nil, fmt.Errorf("failed to load tickets: %w", err)
	}

	var tickets []*domain.Ticket
	if err := json.Unmarshal(data, &tickets); err != nil {
		telemetry.SetSpanError(ctx, err)
		return nil, fmt.Errorf("failed to decode tickets: %w", err)
	}

	span.SetAttributes(attribute.Int("ticket.count", len(tickets)))
	return tickets, nil
}

// Save writes the whole ticket collection
func (s *RedisTicketStore) Save(ctx context.Context, tickets []*domain.Ticket) error {
	ctx, span := telemetry.StartSpan(ctx, "ticket_store.save")
	defer span.End()
	span.SetAttributes(attribute.Int("ticket.count", len(tickets)))

	data, err := json.Marshal(tickets)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		return fmt.Errorf("failed to encode tickets: %w", err)
	}

	// No expiration, the ledger is durable state
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		telemetry.SetSpanError(ctx, err)
		return fmt.Errorf("failed to save tickets: %w", err)
	}
	return nil
}
