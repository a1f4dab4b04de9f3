package dto

import (
	"errors"
	"testing"

	"github.com/eventsync/ticket-service/internal/domain"
)

func validCreateEventRequest() CreateEventRequest {
	return CreateEventRequest{
		Title:        "Winter Jazz Night",
		Date:         "Dec 12, 2024",
		Time:         "8:00 PM",
		Location:     "Blue Note, NY",
		Category:     "Music",
		PriceRange:   "$40 - $90",
		TotalTickets: 200,
	}
}

func TestCreateEventRequest_Validate(t *testing.T) {
	req := validCreateEventRequest()
	if err := req.Validate(); err != nil {
		t.Errorf("expected valid request, got %v", err)
	}

	req.Status = domain.EventStatusDraft
	if err := req.Validate(); err != nil {
		t.Errorf("expected valid request with explicit status, got %v", err)
	}
}

func TestCreateEventRequest_Validate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateEventRequest)
		wantErr error
	}{
		{"missing title", func(r *CreateEventRequest) { r.Title = "" }, domain.ErrInvalidEventTitle},
		{"missing date", func(r *CreateEventRequest) { r.Date = "" }, domain.ErrInvalidEventDate},
		{"missing location", func(r *CreateEventRequest) { r.Location = "" }, domain.ErrInvalidLocation},
		{"negative capacity", func(r *CreateEventRequest) { r.TotalTickets = -1 }, domain.ErrInvalidCapacity},
		{"unknown status", func(r *CreateEventRequest) { r.Status = "Bogus" }, domain.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateEventRequest()
			tt.mutate(&req)

			err := req.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if !domain.IsValidationError(err) {
				t.Errorf("expected %v to classify as a validation error", err)
			}
		})
	}
}
