package dto

import (
	"time"

	"github.com/eventsync/ticket-service/internal/domain"
)

// IssueTicketRequest is the ledger issuance contract. Event title, date and
// location are snapshotted onto the ticket at purchase time.
type IssueTicketRequest struct {
	EventID       string  `json:"event_id" binding:"required"`
	EventTitle    string  `json:"event_title" binding:"required"`
	EventDate     string  `json:"event_date" binding:"required"`
	EventLocation string  `json:"event_location" binding:"required"`
	UserID        string  `json:"user_id" binding:"required"`
	HolderName    string  `json:"holder_name" binding:"required"`
	Type          string  `json:"type" binding:"required"`
	Price         float64 `json:"price"`
}

// Validate validates the issuance request
func (r *IssueTicketRequest) Validate() error {
	if r.EventID == "" {
		return domain.ErrInvalidEventID
	}
	if r.EventTitle == "" {
		return domain.ErrInvalidEventTitle
	}
	if r.EventDate == "" {
		return domain.ErrInvalidEventDate
	}
	if r.EventLocation == "" {
		return domain.ErrInvalidLocation
	}
	if r.UserID == "" {
		return domain.ErrInvalidUserID
	}
	if r.HolderName == "" {
		return domain.ErrInvalidHolderName
	}
	if r.Type == "" {
		return domain.ErrInvalidTicketType
	}
	if r.Price < 0 {
		return domain.ErrInvalidPrice
	}
	return nil
}

// PurchaseItem is one ticket-type line of a purchase
type PurchaseItem struct {
	Type     string  `json:"type" binding:"required"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
}

// PurchaseRequest buys one or more tickets against a single event. One
// ticket is issued per unit of quantity.
type PurchaseRequest struct {
	EventID    string         `json:"event_id" binding:"required"`
	HolderName string         `json:"holder_name"`
	Items      []PurchaseItem `json:"items" binding:"required,min=1"`
}

// Validate validates the purchase request
func (r *PurchaseRequest) Validate() error {
	if r.EventID == "" {
		return domain.ErrInvalidEventID
	}
	if len(r.Items) == 0 {
		return domain.ErrInvalidQuantity
	}
	for _, item := range r.Items {
		if item.Type == "" {
			return domain.ErrInvalidTicketType
		}
		if item.Price < 0 {
			return domain.ErrInvalidPrice
		}
		if item.Quantity <= 0 {
			return domain.ErrInvalidQuantity
		}
	}
	return nil
}

// PurchaseResponse lists the issued ticket identifiers
type PurchaseResponse struct {
	TicketIDs   []string `json:"ticket_ids"`
	TotalAmount float64  `json:"total_amount"`
}

// CheckInRequest carries the scanned QR code or raw ticket identifier
type CheckInRequest struct {
	Code string `json:"code" binding:"required"`
}

// TicketResponse is the API representation of a ticket
type TicketResponse struct {
	ID            string  `json:"id"`
	EventID       string  `json:"event_id"`
	EventTitle    string  `json:"event_title"`
	EventDate     string  `json:"event_date"`
	EventLocation string  `json:"event_location"`
	UserID        string  `json:"user_id"`
	HolderName    string  `json:"holder_name"`
	Type          string  `json:"type"`
	Price         float64 `json:"price"`
	Status        string  `json:"status"`
	PurchaseDate  string  `json:"purchase_date"`
	QRCodeData    string  `json:"qr_code_data"`
}

// ToTicketResponse converts a domain ticket to its API representation
func ToTicketResponse(ticket *domain.Ticket) *TicketResponse {
	return &TicketResponse{
		ID:            ticket.ID,
		EventID:       ticket.EventID,
		EventTitle:    ticket.EventTitle,
		EventDate:     ticket.EventDate,
		EventLocation: ticket.EventLocation,
		UserID:        ticket.UserID,
		HolderName:    ticket.HolderName,
		Type:          ticket.Type,
		Price:         ticket.Price,
		Status:        string(ticket.Status),
		PurchaseDate:  ticket.PurchaseDate.UTC().Format(time.RFC3339),
		QRCodeData:    ticket.QRCodeData,
	}
}

// CheckInResponse mirrors the operator check-in result
type CheckInResponse struct {
	Valid   bool            `json:"valid"`
	Message string          `json:"message"`
	Ticket  *TicketResponse `json:"ticket,omitempty"`
}

// ToCheckInResponse converts a domain check-in result
func ToCheckInResponse(result *domain.CheckInResult) *CheckInResponse {
	resp := &CheckInResponse{
		Valid:   result.Valid,
		Message: result.Message,
	}
	if result.Ticket != nil {
		resp.Ticket = ToTicketResponse(result.Ticket)
	}
	return resp
}
