package repository

import (
	"context"

	"github.com/eventsync/ticket-service/internal/domain"
)

// DemoEvents returns the demo catalog used in development environments
func DemoEvents() []*domain.Event {
	return []*domain.Event{
		{
			ID:           "1",
			Title:        "Starlight Music Festival",
			Date:         "Aug 15-17, 2024",
			Time:         "12:00 PM",
			Location:     "Central Park, NY",
			Description:  "A three-day musical extravaganza featuring top artists from around the globe.",
			Status:       domain.EventStatusUpcoming,
			Revenue:      45230,
			TicketsSold:  85,
			TotalTickets: 500,
			Image:        "https://images.unsplash.com/photo-1459749411177-0473ef716175?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
			Category:     "Music",
			PriceRange:   "$50 - $150",
		},
		{
			ID:           "2",
			Title:        "Annual Tech Summit 2024",
			Date:         "Oct 26, 2024",
			Time:         "9:00 AM",
			Location:     "Moscone Center, CA",
			Description:  "Join over 5,000 developers, designers, and innovators for the biggest tech conference of the year.",
			Status:       domain.EventStatusUpcoming,
			Revenue:      125980,
			TicketsSold:  92,
			TotalTickets: 2000,
			Image:        "https://images.unsplash.com/photo-1540575467063-178a50c2df87?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
			Category:     "Technology",
			PriceRange:   "$299 - $599",
		},
		{
			ID:           "3",
			Title:        "Artisan Craft Fair",
			Date:         "Jun 05, 2024",
			Time:         "10:00 AM",
			Location:     "Portland, OR",
			Status:       domain.EventStatusPast,
			Revenue:      8650,
			TicketsSold:  100,
			TotalTickets: 100,
			Image:        "https://images.unsplash.com/photo-1469334031218-e382a71b716b?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
			Category:     "Lifestyle",
			PriceRange:   "$15",
		},
		{
			ID:           "4",
			Title:        "Innovate & Create Workshop",
			Date:         "Sep 01, 2024",
			Time:         "2:00 PM",
			Location:     "Austin, TX",
			Status:       domain.EventStatusUpcoming,
			Revenue:      3400,
			TicketsSold:  25,
			TotalTickets: 50,
			Image:        "https://images.unsplash.com/photo-1531403009284-440f080d1e12?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
			Category:     "Education",
			PriceRange:   "$120",
		},
	}
}

// SeedDemoEvents inserts the demo catalog into the repository, skipping
// events that already exist
func SeedDemoEvents(ctx context.Context, repo EventRepository) error {
	for _, event := range DemoEvents() {
		existing, err := repo.GetByID(ctx, event.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if err := repo.Create(ctx, event); err != nil {
			return err
		}
	}
	return nil
}
