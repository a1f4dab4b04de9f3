package domain

import (
	"regexp"
	"testing"
	"time"
)

var ticketIDPattern = regexp.MustCompile(`^TKT-[A-Z0-9]{9}$`)

func TestNewTicketID_Format(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := NewTicketID()
		if !ticketIDPattern.MatchString(id) {
			t.Fatalf("NewTicketID() = %q, want match for %s", id, ticketIDPattern)
		}
	}
}

func TestNewTicketID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		id := NewTicketID()
		if seen[id] {
			t.Fatalf("duplicate ticket id generated: %s", id)
		}
		seen[id] = true
	}
}

func TestTicket_CheckIn(t *testing.T) {
	tests := []struct {
		name       string
		status     TicketStatus
		wantErr    error
		wantStatus TicketStatus
	}{
		{
			name:       "valid ticket is marked used",
			status:     TicketStatusValid,
			wantErr:    nil,
			wantStatus: TicketStatusUsed,
		},
		{
			name:       "used ticket is rejected without mutation",
			status:     TicketStatusUsed,
			wantErr:    ErrTicketAlreadyUsed,
			wantStatus: TicketStatusUsed,
		},
		{
			name:       "refunded ticket is rejected without mutation",
			status:     TicketStatusRefunded,
			wantErr:    ErrTicketRefunded,
			wantStatus: TicketStatusRefunded,
		},
		{
			name:       "unknown status is rejected",
			status:     TicketStatus("banana"),
			wantErr:    ErrInvalidTicketStatus,
			wantStatus: TicketStatus("banana"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticket := &Ticket{ID: NewTicketID(), Status: tt.status}
			err := ticket.CheckIn()
			if err != tt.wantErr {
				t.Errorf("CheckIn() error = %v, want %v", err, tt.wantErr)
			}
			if ticket.Status != tt.wantStatus {
				t.Errorf("status after CheckIn() = %q, want %q", ticket.Status, tt.wantStatus)
			}
		})
	}
}

func TestTicket_CheckIn_ExactlyOnce(t *testing.T) {
	ticket := &Ticket{ID: NewTicketID(), Status: TicketStatusValid}

	if err := ticket.CheckIn(); err != nil {
		t.Fatalf("first CheckIn() error = %v", err)
	}
	if err := ticket.CheckIn(); err != ErrTicketAlreadyUsed {
		t.Fatalf("second CheckIn() error = %v, want %v", err, ErrTicketAlreadyUsed)
	}
	if ticket.Status != TicketStatusUsed {
		t.Fatalf("status = %q, want %q", ticket.Status, TicketStatusUsed)
	}
}

func TestTicket_Refund(t *testing.T) {
	ticket := &Ticket{ID: NewTicketID(), Status: TicketStatusValid}

	if err := ticket.Refund(); err != nil {
		t.Fatalf("Refund() error = %v", err)
	}
	if ticket.Status != TicketStatusRefunded {
		t.Fatalf("status = %q, want %q", ticket.Status, TicketStatusRefunded)
	}

	// Refunded tickets can never be checked in
	for i := 0; i < 3; i++ {
		if err := ticket.CheckIn(); err != ErrTicketRefunded {
			t.Fatalf("CheckIn() on refunded ticket error = %v, want %v", err, ErrTicketRefunded)
		}
	}

	used := &Ticket{ID: NewTicketID(), Status: TicketStatusUsed}
	if err := used.Refund(); err != ErrTicketAlreadyUsed {
		t.Fatalf("Refund() on used ticket error = %v, want %v", err, ErrTicketAlreadyUsed)
	}
}

func TestTicket_Validate(t *testing.T) {
	base := func() *Ticket {
		return &Ticket{
			ID:            NewTicketID(),
			EventID:       "1",
			EventTitle:    "Starlight Music Festival",
			EventDate:     "Aug 15-17, 2024",
			EventLocation: "Central Park, NY",
			UserID:        "user-1",
			HolderName:    "Jordan Reyes",
			Type:          "VIP Access",
			Price:         150,
			Status:        TicketStatusValid,
			PurchaseDate:  time.Now(),
		}
	}

	if err := base().Validate(); err != nil {
		t.Fatalf("Validate() on complete ticket = %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(*Ticket)
		wantErr error
	}{
		{"missing event id", func(tk *Ticket) { tk.EventID = "" }, ErrInvalidEventID},
		{"missing title", func(tk *Ticket) { tk.EventTitle = "" }, ErrInvalidEventTitle},
		{"missing date", func(tk *Ticket) { tk.EventDate = "" }, ErrInvalidEventDate},
		{"missing location", func(tk *Ticket) { tk.EventLocation = "" }, ErrInvalidLocation},
		{"missing user", func(tk *Ticket) { tk.UserID = "" }, ErrInvalidUserID},
		{"missing holder", func(tk *Ticket) { tk.HolderName = "" }, ErrInvalidHolderName},
		{"missing type", func(tk *Ticket) { tk.Type = "" }, ErrInvalidTicketType},
		{"negative price", func(tk *Ticket) { tk.Price = -1 }, ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticket := base()
			tt.mutate(ticket)
			if err := ticket.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
