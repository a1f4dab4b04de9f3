package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/eventsync/ticket-service/internal/domain"
	"github.com/eventsync/ticket-service/internal/dto"
	"github.com/eventsync/ticket-service/internal/repository"
)

// catalogService implements CatalogService
type catalogService struct {
	eventRepo repository.EventRepository
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(eventRepo repository.EventRepository) CatalogService {
	return &catalogService{
		eventRepo: eventRepo,
	}
}

// CreateEvent creates a new event
func (s *catalogService) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*domain.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = domain.EventStatusUpcoming
	}

	event := &domain.Event{
		ID:           uuid.New().String(),
		Title:        req.Title,
		Date:         req.Date,
		Time:         req.Time,
		Location:     req.Location,
		Description:  req.Description,
		Category:     req.Category,
		Image:        req.Image,
		PriceRange:   req.PriceRange,
		Status:       status,
		TotalTickets: req.TotalTickets,
	}

	if err := event.Validate(); err != nil {
		return nil, err
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// GetEventByID retrieves an event by ID
func (s *catalogService) GetEventByID(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrEventNotFound
	}
	return event, nil
}

// ListEvents lists all events in catalog order
func (s *catalogService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	return s.eventRepo.List(ctx)
}

// RecordSale folds one ticket sale into the event aggregates
func (s *catalogService) RecordSale(ctx context.Context, eventID string, amount float64) error {
	return s.eventRepo.RecordSale(ctx, eventID, amount)
}

// ReverseSale removes one ticket sale from the event aggregates
func (s *catalogService) ReverseSale(ctx context.Context, eventID string, amount float64) error {
	return s.eventRepo.ReverseSale(ctx, eventID, amount)
}

// Stats aggregates the whole catalog for the organizer dashboard
func (s *catalogService) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.StatsResponse{EventCount: len(events)}
	for _, event := range events {
		stats.TotalTicketsSold += event.TicketsSold
		stats.TotalRevenue += event.Revenue
		stats.TotalCapacity += event.TotalTickets
	}
	return stats, nil
}
