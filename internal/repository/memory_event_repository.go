package repository

import (
	"context"
	"sync"

	"github.com/eventsync/ticket-service/internal/domain"
)

// MemoryEventRepository implements EventRepository with an in-memory
// store. Used in development mode and tests when PostgreSQL is disabled.
type MemoryEventRepository struct {
	mu     sync.RWMutex
	order  []string
	events map[string]*domain.Event
}

// NewMemoryEventRepository creates an empty in-memory event repository
func NewMemoryEventRepository() *MemoryEventRepository {
	return &MemoryEventRepository{
		events: make(map[string]*domain.Event),
	}
}

// Create creates a new event
func (r *MemoryEventRepository) Create(ctx context.Context, event *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *event
	if _, exists := r.events[event.ID]; !exists {
		r.order = append(r.order, event.ID)
	}
	r.events[event.ID] = &clone
	return nil
}

// GetByID retrieves an event by ID, returns (nil, nil) when not found
func (r *MemoryEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	event, ok := r.events[id]
	if !ok {
		return nil, nil
	}
	clone := *event
	return &clone, nil
}

// List lists all events in insertion order
func (r *MemoryEventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := make([]*domain.Event, 0, len(r.order))
	for _, id := range r.order {
		clone := *r.events[id]
		events = append(events, &clone)
	}
	return events, nil
}

// RecordSale increments tickets sold and adds the sale amount to revenue
func (r *MemoryEventRepository) RecordSale(ctx context.Context, id string, amount float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, ok := r.events[id]
	if !ok {
		return domain.ErrEventNotFound
	}
	event.RecordSale(amount)
	return nil
}

// ReverseSale decrements tickets sold and subtracts the refunded amount
func (r *MemoryEventRepository) ReverseSale(ctx context.Context, id string, amount float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, ok := r.events[id]
	if !ok {
		return domain.ErrEventNotFound
	}
	event.ReverseSale(amount)
	return nil
}
