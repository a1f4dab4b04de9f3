package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventsync/ticket-service/internal/domain"
)

// PostgresEventRepository implements EventRepository using PostgreSQL
type PostgresEventRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresEventRepository creates a new PostgresEventRepository
func NewPostgresEventRepository(pool *pgxpool.Pool) *PostgresEventRepository {
	return &PostgresEventRepository{pool: pool}
}

// eventColumns defines the columns to select for events
// Using COALESCE for nullable string columns to avoid scan errors
const eventColumns = `id, title, date,
	COALESCE(time, '') as time,
	location,
	COALESCE(description, '') as description,
	COALESCE(category, '') as category,
	COALESCE(image, '') as image,
	COALESCE(price_range, '') as price_range,
	status, tickets_sold, revenue, total_tickets`

// scanEvent scans a row into an Event struct
func (r *PostgresEventRepository) scanEvent(row pgx.Row) (*domain.Event, error) {
	event := &domain.Event{}
	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Date,
		&event.Time,
		&event.Location,
		&event.Description,
		&event.Category,
		&event.Image,
		&event.PriceRange,
		&event.Status,
		&event.TicketsSold,
		&event.Revenue,
		&event.TotalTickets,
	)
	if err != nil {
		return nil, err
	}
	return event, nil
}

// Create creates a new event
func (r *PostgresEventRepository) Create(ctx context.Context, event *domain.Event) error {
	query := `
		INSERT INTO events (
			id, title, date, time, location, description, category, image,
			price_range, status, tickets_sold, revenue, total_tickets
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		)
	`

	_, err := r.pool.Exec(ctx, query,
		event.ID,
		event.Title,
		event.Date,
		event.Time,
		event.Location,
		event.Description,
		event.Category,
		event.Image,
		event.PriceRange,
		event.Status,
		event.TicketsSold,
		event.Revenue,
		event.TotalTickets,
	)
	return err
}

// GetByID retrieves an event by ID
func (r *PostgresEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE id = $1`, eventColumns)
	event, err := r.scanEvent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return event, nil
}

// List lists all events in insertion order
func (r *PostgresEventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events ORDER BY created_at, id`, eventColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		event, err := r.scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

// RecordSale increments tickets sold and adds the sale amount to revenue
func (r *PostgresEventRepository) RecordSale(ctx context.Context, id string, amount float64) error {
	query := `
		UPDATE events
		SET tickets_sold = tickets_sold + 1, revenue = revenue + $2
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query, id, amount)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

// ReverseSale decrements tickets sold and subtracts the refunded amount,
// clamping both at zero
func (r *PostgresEventRepository) ReverseSale(ctx context.Context, id string, amount float64) error {
	query := `
		UPDATE events
		SET tickets_sold = GREATEST(tickets_sold - 1, 0),
		    revenue = GREATEST(revenue - $2, 0)
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query, id, amount)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}
