package repository

import (
	"context"
	"testing"

	"github.com/eventsync/ticket-service/internal/domain"
)

func TestMemoryTicketStore_LoadEmpty(t *testing.T) {
	store := NewMemoryTicketStore()

	tickets, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(tickets) != 0 {
		t.Errorf("Load on fresh store returned %d tickets, want 0", len(tickets))
	}
}

func TestMemoryTicketStore_SaveAndLoad(t *testing.T) {
	store := NewMemoryTicketStore()
	ctx := context.Background()

	tickets := []*domain.Ticket{
		{ID: "TKT-AAAAAAAAA", EventID: "1", Status: domain.TicketStatusValid},
		{ID: "TKT-BBBBBBBBB", EventID: "2", Status: domain.TicketStatusUsed},
	}

	if err := store.Save(ctx, tickets); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("Load returned %d tickets, want 2", len(loaded))
	}
	if loaded[0].ID != "TKT-AAAAAAAAA" || loaded[1].Status != domain.TicketStatusUsed {
		t.Errorf("loaded tickets do not match saved tickets: %+v", loaded)
	}
}

func TestMemoryTicketStore_CopyIsolation(t *testing.T) {
	store := NewMemoryTicketStore()
	ctx := context.Background()

	tickets := []*domain.Ticket{
		{ID: "TKT-AAAAAAAAA", Status: domain.TicketStatusValid},
	}
	if err := store.Save(ctx, tickets); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Mutating the caller's slice after Save must not affect the store
	tickets[0].Status = domain.TicketStatusUsed

	loaded, _ := store.Load(ctx)
	if loaded[0].Status != domain.TicketStatusValid {
		t.Error("mutation after Save leaked into store")
	}

	// Mutating loaded tickets must not affect the store either
	loaded[0].Status = domain.TicketStatusRefunded
	reloaded, _ := store.Load(ctx)
	if reloaded[0].Status != domain.TicketStatusValid {
		t.Error("mutation of loaded ticket leaked into store")
	}
}
