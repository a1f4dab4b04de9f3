package domain

import "time"

// TicketEventType identifies a ticket lifecycle event on the message bus
type TicketEventType string

// Ticket lifecycle event types
const (
	TicketEventIssued    TicketEventType = "ticket.issued"
	TicketEventCheckedIn TicketEventType = "ticket.checked_in"
	TicketEventRefunded  TicketEventType = "ticket.refunded"
)

// TicketEvent is the payload published for a ticket lifecycle event
type TicketEvent struct {
	EventID    string          `json:"event_id"`
	Type       TicketEventType `json:"type"`
	TicketID   string          `json:"ticket_id"`
	CatalogID  string          `json:"catalog_event_id"`
	UserID     string          `json:"user_id"`
	TicketType string          `json:"ticket_type"`
	Price      float64         `json:"price"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// NewTicketEvent builds a lifecycle event for the given ticket
func NewTicketEvent(eventType TicketEventType, ticket *Ticket, eventID string) *TicketEvent {
	return &TicketEvent{
		EventID:    eventID,
		Type:       eventType,
		TicketID:   ticket.ID,
		CatalogID:  ticket.EventID,
		UserID:     ticket.UserID,
		TicketType: ticket.Type,
		Price:      ticket.Price,
		OccurredAt: time.Now().UTC(),
	}
}

// Key returns the partition key for the event. Events for the same ticket
// stay ordered.
func (e *TicketEvent) Key() string {
	return e.TicketID
}
