package dto

import "github.com/eventsync/ticket-service/internal/domain"

// CreateEventRequest represents the request to create a new event
type CreateEventRequest struct {
	Title        string `json:"title" binding:"required,min=1,max=255"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time"`
	Location     string `json:"location" binding:"required"`
	Description  string `json:"description"`
	Category     string `json:"category" binding:"max=100"`
	Image        string `json:"image"`
	PriceRange   string `json:"price_range" binding:"max=50"`
	Status       string `json:"status"`
	TotalTickets int    `json:"total_tickets"`
}

// Validate validates the request
func (r *CreateEventRequest) Validate() error {
	if r.Title == "" {
		return domain.ErrInvalidEventTitle
	}
	if r.Date == "" {
		return domain.ErrInvalidEventDate
	}
	if r.Location == "" {
		return domain.ErrInvalidLocation
	}
	if r.TotalTickets < 0 {
		return domain.ErrInvalidCapacity
	}
	if r.Status != "" {
		switch r.Status {
		case domain.EventStatusUpcoming, domain.EventStatusOngoing, domain.EventStatusPast,
			domain.EventStatusDraft, domain.EventStatusCancelled:
		default:
			return domain.ErrInvalidStatus
		}
	}
	return nil
}

// EventResponse is the API representation of a catalog event
type EventResponse struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Date         string  `json:"date"`
	Time         string  `json:"time,omitempty"`
	Location     string  `json:"location"`
	Description  string  `json:"description,omitempty"`
	Category     string  `json:"category,omitempty"`
	Image        string  `json:"image,omitempty"`
	PriceRange   string  `json:"price_range,omitempty"`
	Status       string  `json:"status"`
	TicketsSold  int     `json:"tickets_sold"`
	Revenue      float64 `json:"revenue"`
	TotalTickets int     `json:"total_tickets"`
	Remaining    int     `json:"remaining"`
}

// ToEventResponse converts a domain event to its API representation
func ToEventResponse(event *domain.Event) *EventResponse {
	return &EventResponse{
		ID:           event.ID,
		Title:        event.Title,
		Date:         event.Date,
		Time:         event.Time,
		Location:     event.Location,
		Description:  event.Description,
		Category:     event.Category,
		Image:        event.Image,
		PriceRange:   event.PriceRange,
		Status:       event.Status,
		TicketsSold:  event.TicketsSold,
		Revenue:      event.Revenue,
		TotalTickets: event.TotalTickets,
		Remaining:    event.Remaining(),
	}
}

// StatsResponse aggregates the catalog for the organizer dashboard
type StatsResponse struct {
	EventCount       int     `json:"event_count"`
	TotalTicketsSold int     `json:"total_tickets_sold"`
	TotalRevenue     float64 `json:"total_revenue"`
	TotalCapacity    int     `json:"total_capacity"`
}
