package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventsync/ticket-service/internal/domain"
	"github.com/eventsync/ticket-service/internal/dto"
	"github.com/eventsync/ticket-service/internal/repository"
)

func newTestCatalog(t *testing.T) CatalogService {
	t.Helper()
	repo := repository.NewMemoryEventRepository()
	require.NoError(t, repository.SeedDemoEvents(context.Background(), repo))
	return NewCatalogService(repo)
}

func TestCatalogService_CreateEvent(t *testing.T) {
	catalog := newTestCatalog(t)
	ctx := context.Background()

	event, err := catalog.CreateEvent(ctx, &dto.CreateEventRequest{
		Title:        "Winter Jazz Night",
		Date:         "Dec 12, 2024",
		Time:         "8:00 PM",
		Location:     "Blue Note, NY",
		Category:     "Music",
		PriceRange:   "$40 - $90",
		TotalTickets: 200,
	})
	require.NoError(t, err)
	require.NotNil(t, event)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "Winter Jazz Night", event.Title)
	assert.Equal(t, domain.EventStatusUpcoming, event.Status)
	assert.Equal(t, 0, event.TicketsSold)
	assert.Equal(t, float64(0), event.Revenue)

	stored, err := catalog.GetEventByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, event.Title, stored.Title)
}

func TestCatalogService_CreateEvent_Invalid(t *testing.T) {
	catalog := newTestCatalog(t)

	_, err := catalog.CreateEvent(context.Background(), &dto.CreateEventRequest{
		Date:     "Dec 12, 2024",
		Location: "Blue Note, NY",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidEventTitle)
	assert.True(t, domain.IsValidationError(err))

	_, err = catalog.CreateEvent(context.Background(), &dto.CreateEventRequest{
		Title:    "Winter Jazz Night",
		Date:     "Dec 12, 2024",
		Location: "Blue Note, NY",
		Status:   "Bogus",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	assert.True(t, domain.IsValidationError(err))
}

func TestCatalogService_GetEventByID_NotFound(t *testing.T) {
	catalog := newTestCatalog(t)

	_, err := catalog.GetEventByID(context.Background(), "does-not-exist")
	assert.True(t, errors.Is(err, domain.ErrEventNotFound))
}

func TestCatalogService_ListEvents(t *testing.T) {
	catalog := newTestCatalog(t)

	events, err := catalog.ListEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 4)
	assert.Equal(t, "Starlight Music Festival", events[0].Title)
	assert.Equal(t, "Innovate & Create Workshop", events[3].Title)
}

func TestCatalogService_SaleRoundTrip(t *testing.T) {
	catalog := newTestCatalog(t)
	ctx := context.Background()

	require.NoError(t, catalog.RecordSale(ctx, "4", 120))
	event, err := catalog.GetEventByID(ctx, "4")
	require.NoError(t, err)
	assert.Equal(t, 26, event.TicketsSold)
	assert.Equal(t, float64(3520), event.Revenue)

	require.NoError(t, catalog.ReverseSale(ctx, "4", 120))
	event, err = catalog.GetEventByID(ctx, "4")
	require.NoError(t, err)
	assert.Equal(t, 25, event.TicketsSold)
	assert.Equal(t, float64(3400), event.Revenue)

	err = catalog.RecordSale(ctx, "missing", 10)
	assert.True(t, errors.Is(err, domain.ErrEventNotFound))
}

func TestCatalogService_Stats(t *testing.T) {
	catalog := newTestCatalog(t)

	stats, err := catalog.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, stats.EventCount)
	assert.Equal(t, 85+92+100+25, stats.TotalTicketsSold)
	assert.Equal(t, float64(45230+125980+8650+3400), stats.TotalRevenue)
	assert.Equal(t, 500+2000+100+50, stats.TotalCapacity)
}
