package metrics

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"

	"github.com/eventsync/ticket-service/pkg/telemetry"
)

var (
	// Ticket lifecycle counters
	TicketsIssued    *telemetry.Counter
	TicketsRefunded  *telemetry.Counter
	CheckInsAccepted *telemetry.Counter
	CheckInsRejected *telemetry.Counter

	// Sale amount distribution per event
	SaleAmount *telemetry.Histogram

	// Current number of valid tickets in the ledger
	ValidTickets *telemetry.UpDownCounter

	initOnce sync.Once
	initErr  error
)

// Init initializes all ticket metrics
func Init() error {
	initOnce.Do(func() {
		initErr = initMetrics()
	})
	return initErr
}

func initMetrics() error {
	var err error

	TicketsIssued, err = telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "tickets_issued_total",
		Description: "Total number of tickets issued",
		Unit:        "1",
	})
	if err != nil {
		return err
	}

	TicketsRefunded, err = telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "tickets_refunded_total",
		Description: "Total number of tickets refunded",
		Unit:        "1",
	})
	if err != nil {
		return err
	}

	CheckInsAccepted, err = telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "checkins_accepted_total",
		Description: "Total number of accepted check-ins",
		Unit:        "1",
	})
	if err != nil {
		return err
	}

	CheckInsRejected, err = telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "checkins_rejected_total",
		Description: "Total number of rejected check-ins by reason",
		Unit:        "1",
	})
	if err != nil {
		return err
	}

	SaleAmount, err = telemetry.NewHistogramWithBuckets(telemetry.MetricOpts{
		Name:        "ticket_sale_amount",
		Description: "Distribution of ticket sale amounts",
		Unit:        "USD",
	}, []float64{10, 25, 50, 100, 150, 300, 600, 1000})
	if err != nil {
		return err
	}

	ValidTickets, err = telemetry.NewUpDownCounter(telemetry.MetricOpts{
		Name:        "tickets_valid_current",
		Description: "Current number of valid tickets in the ledger",
		Unit:        "1",
	})
	if err != nil {
		return err
	}

	return nil
}

// RecordIssued records a ticket issuance
func RecordIssued(ctx context.Context, eventID, ticketType string, price float64) {
	if TicketsIssued != nil {
		TicketsIssued.Inc(ctx,
			attribute.String("event_id", eventID),
			attribute.String("ticket_type", ticketType),
		)
	}
	if SaleAmount != nil {
		SaleAmount.Record(ctx, price,
			attribute.String("event_id", eventID),
		)
	}
	if ValidTickets != nil {
		ValidTickets.Inc(ctx)
	}
}

// RecordCheckInAccepted records an accepted check-in
func RecordCheckInAccepted(ctx context.Context, eventID string) {
	if CheckInsAccepted != nil {
		CheckInsAccepted.Inc(ctx,
			attribute.String("event_id", eventID),
		)
	}
	if ValidTickets != nil {
		ValidTickets.Dec(ctx)
	}
}

// RecordCheckInRejected records a rejected check-in with the rejection reason
func RecordCheckInRejected(ctx context.Context, reason string) {
	if CheckInsRejected != nil {
		CheckInsRejected.Inc(ctx,
			attribute.String("reason", reason),
		)
	}
}

// RecordRefund records a ticket refund
func RecordRefund(ctx context.Context, eventID string, amount float64) {
	if TicketsRefunded != nil {
		TicketsRefunded.Inc(ctx,
			attribute.String("event_id", eventID),
		)
	}
	if ValidTickets != nil {
		ValidTickets.Dec(ctx)
	}
}
