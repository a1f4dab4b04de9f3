package domain

import (
	"crypto/rand"
	"time"
)

// TicketStatus represents the lifecycle state of a ticket
type TicketStatus string

// Ticket lifecycle states
const (
	TicketStatusValid    TicketStatus = "valid"
	TicketStatusUsed     TicketStatus = "used"
	TicketStatusRefunded TicketStatus = "refunded"
)

// Ticket identifier format: TKT- followed by 9 uppercase alphanumerics
const (
	TicketIDPrefix   = "TKT-"
	ticketIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	ticketIDLength   = 9
)

// Ticket represents an issued ticket. Event title, date and location are a
// denormalized snapshot taken at purchase time so the ticket stays
// displayable even if the catalog changes later.
type Ticket struct {
	ID            string       `json:"id"`
	EventID       string       `json:"event_id"`
	EventTitle    string       `json:"event_title"`
	EventDate     string       `json:"event_date"`
	EventLocation string       `json:"event_location"`
	UserID        string       `json:"user_id"`
	HolderName    string       `json:"holder_name"`
	Type          string       `json:"type"`
	Price         float64      `json:"price"`
	Status        TicketStatus `json:"status"`
	PurchaseDate  time.Time    `json:"purchase_date"`
	QRCodeData    string       `json:"qr_code_data"`
}

// NewTicketID generates a new ticket identifier from a cryptographically
// random source.
func NewTicketID() string {
	buf := make([]byte, ticketIDLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails when the OS entropy source is broken
		panic("ticket id generation: " + err.Error())
	}
	for i, b := range buf {
		buf[i] = ticketIDAlphabet[int(b)%len(ticketIDAlphabet)]
	}
	return TicketIDPrefix + string(buf)
}

// CheckIn transitions the ticket from valid to used. The transition happens
// exactly once; a used or refunded ticket is never mutated again.
func (t *Ticket) CheckIn() error {
	switch t.Status {
	case TicketStatusUsed:
		return ErrTicketAlreadyUsed
	case TicketStatusRefunded:
		return ErrTicketRefunded
	case TicketStatusValid:
		t.Status = TicketStatusUsed
		return nil
	default:
		return ErrInvalidTicketStatus
	}
}

// Refund transitions the ticket from valid to refunded. Used tickets cannot
// be refunded.
func (t *Ticket) Refund() error {
	switch t.Status {
	case TicketStatusUsed:
		return ErrTicketAlreadyUsed
	case TicketStatusRefunded:
		return ErrTicketRefunded
	case TicketStatusValid:
		t.Status = TicketStatusRefunded
		return nil
	default:
		return ErrInvalidTicketStatus
	}
}

// Clone returns a shallow copy of the ticket
func (t *Ticket) Clone() *Ticket {
	c := *t
	return &c
}

// Validate validates the ticket fields
func (t *Ticket) Validate() error {
	if t.EventID == "" {
		return ErrInvalidEventID
	}
	if t.EventTitle == "" {
		return ErrInvalidEventTitle
	}
	if t.EventDate == "" {
		return ErrInvalidEventDate
	}
	if t.EventLocation == "" {
		return ErrInvalidLocation
	}
	if t.UserID == "" {
		return ErrInvalidUserID
	}
	if t.HolderName == "" {
		return ErrInvalidHolderName
	}
	if t.Type == "" {
		return ErrInvalidTicketType
	}
	if t.Price < 0 {
		return ErrInvalidPrice
	}
	return nil
}
