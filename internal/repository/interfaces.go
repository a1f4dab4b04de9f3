package repository

import (
	"context"

	"github.com/eventsync/ticket-service/internal/domain"
)

// EventRepository defines the interface for event catalog data access
type EventRepository interface {
	// Create creates a new event
	Create(ctx context.Context, event *domain.Event) error
	// GetByID retrieves an event by ID, returns (nil, nil) when not found
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	// List lists all events in insertion order
	List(ctx context.Context) ([]*domain.Event, error)
	// RecordSale increments tickets sold and adds the sale amount to revenue
	RecordSale(ctx context.Context, id string, amount float64) error
	// ReverseSale decrements tickets sold and subtracts the refunded amount
	ReverseSale(ctx context.Context, id string, amount float64) error
}

// TicketStore persists the ticket ledger as a single document. Load
// returns the full collection, Save replaces it atomically.
type TicketStore interface {
	// Load reads the whole ticket collection, empty slice when none saved yet
	Load(ctx context.Context) ([]*domain.Ticket, error)
	// Save writes the whole ticket collection
	Save(ctx context.Context, tickets []*domain.Ticket) error
}
