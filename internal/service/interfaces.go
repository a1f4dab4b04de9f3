package service

import (
	"context"

	"github.com/eventsync/ticket-service/internal/domain"
	"github.com/eventsync/ticket-service/internal/dto"
)

// CatalogService defines the interface for event catalog business logic
type CatalogService interface {
	// CreateEvent creates a new event
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*domain.Event, error)
	// GetEventByID retrieves an event by ID
	GetEventByID(ctx context.Context, id string) (*domain.Event, error)
	// ListEvents lists all events in catalog order
	ListEvents(ctx context.Context) ([]*domain.Event, error)
	// RecordSale folds one ticket sale into the event aggregates
	RecordSale(ctx context.Context, eventID string, amount float64) error
	// ReverseSale removes one ticket sale from the event aggregates
	ReverseSale(ctx context.Context, eventID string, amount float64) error
	// Stats aggregates the whole catalog for the organizer dashboard
	Stats(ctx context.Context) (*dto.StatsResponse, error)
}

// TicketLedger defines the interface for ticket lifecycle business logic
type TicketLedger interface {
	// Start loads the persisted ticket collection into memory
	Start(ctx context.Context) error
	// IssueTicket issues a single ticket and returns it
	IssueTicket(ctx context.Context, req *dto.IssueTicketRequest) (*domain.Ticket, error)
	// Purchase issues one ticket per unit of quantity across all items
	Purchase(ctx context.Context, userID, userName string, req *dto.PurchaseRequest) (*dto.PurchaseResponse, error)
	// GetTicket retrieves a ticket by ID
	GetTicket(ctx context.Context, id string) (*domain.Ticket, error)
	// GetTicketsByUser retrieves all tickets held by a user
	GetTicketsByUser(ctx context.Context, userID string) ([]*domain.Ticket, error)
	// CheckIn validates a scanned code and marks the ticket used on success
	CheckIn(ctx context.Context, code string) (*domain.CheckInResult, error)
	// RefundTicket refunds a valid ticket and reverses its sale
	RefundTicket(ctx context.Context, id, requesterID string, requesterIsOrganizer bool) (*domain.Ticket, error)
}

// TicketEventPublisher publishes ticket lifecycle events to downstream
// consumers
type TicketEventPublisher interface {
	// Publish emits a ticket lifecycle event
	Publish(ctx context.Context, event *domain.TicketEvent) error
	// Close flushes and releases the publisher
	Close()
}
