package domain

// Event statuses
const (
	EventStatusUpcoming  = "Upcoming"
	EventStatusOngoing   = "Ongoing"
	EventStatusPast      = "Past"
	EventStatusDraft     = "Draft"
	EventStatusCancelled = "Cancelled"
)

// Event represents a catalog event with its running sale aggregates.
// Date and Time are opaque display strings, never parsed.
type Event struct {
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
}

// Validate validates the event fields
func (e *Event) Validate() error {
	if e.ID == "" {
		return ErrInvalidEventID
	}
	if e.Title == "" {
		return ErrInvalidEventTitle
	}
	if e.Date == "" {
		return ErrInvalidEventDate
	}
	if e.Location == "" {
		return ErrInvalidLocation
	}
	if e.TotalTickets < 0 {
		return ErrInvalidCapacity
	}
	return nil
}

// RecordSale applies one ticket sale to the aggregates. Capacity is
// informational only, the sale is never rejected for exceeding it.
func (e *Event) RecordSale(amount float64) {
	e.TicketsSold++
	e.Revenue += amount
}

// ReverseSale removes one ticket sale from the aggregates, clamping at zero.
func (e *Event) ReverseSale(amount float64) {
	if e.TicketsSold > 0 {
		e.TicketsSold--
	}
	e.Revenue -= amount
	if e.Revenue < 0 {
		e.Revenue = 0
	}
}

// Remaining returns the informational remaining capacity
func (e *Event) Remaining() int {
	remaining := e.TotalTickets - e.TicketsSold
	if remaining < 0 {
		return 0
	}
	return remaining
}
