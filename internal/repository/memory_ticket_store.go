package repository

import (
	"context"
	"sync"

	"github.com/eventsync/ticket-service/internal/domain"
)

// MemoryTicketStore implements TicketStore with an in-memory snapshot.
// Used in development mode and tests when Redis is disabled.
type MemoryTicketStore struct {
	mu      sync.RWMutex
	tickets []*domain.Ticket
}

// NewMemoryTicketStore creates an empty in-memory ticket store
func NewMemoryTicketStore() *MemoryTicketStore {
	return &MemoryTicketStore{}
}

// Load reads the whole ticket collection
func (s *MemoryTicketStore) Load(ctx context.Context) ([]*domain.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tickets := make([]*domain.Ticket, 0, len(s.tickets))
	for _, t := range s.tickets {
		tickets = append(tickets, t.Clone())
	}
	return tickets, nil
}

// Save writes the whole ticket collection
func (s *MemoryTicketStore) Save(ctx context.Context, tickets []*domain.Ticket) error {
	snapshot := make([]*domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		snapshot = append(snapshot, t.Clone())
	}

	s.mu.Lock()
	s.tickets = snapshot
	s.mu.Unlock()
	return nil
}
