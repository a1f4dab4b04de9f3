package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eventsync/ticket-service/internal/domain"
	"github.com/eventsync/ticket-service/internal/dto"
	"github.com/eventsync/ticket-service/internal/metrics"
	"github.com/eventsync/ticket-service/internal/repository"
	"github.com/eventsync/ticket-service/pkg/retry"
)

// ticketLedger implements TicketLedger. The ticket collection lives in
// memory and is persisted as a whole document on every mutation: the new
// collection is saved first and only then committed to memory, so a failed
// save leaves the in-memory state untouched.
type ticketLedger struct {
	mu      sync.Mutex
	tickets []*domain.Ticket
	index   map[string]int

	store     repository.TicketStore
	catalog   CatalogService
	publisher TicketEventPublisher
	signer    *QRSigner
	log       *zap.Logger

	saveRetry *retry.Config
}

// NewTicketLedger creates a new TicketLedger. The signer may be nil, in
// which case QR payloads carry the raw ticket identifier.
func NewTicketLedger(
	store repository.TicketStore,
	catalog CatalogService,
	publisher TicketEventPublisher,
	signer *QRSigner,
	log *zap.Logger,
) TicketLedger {
	return &ticketLedger{
		index:     make(map[string]int),
		store:     store,
		catalog:   catalog,
		publisher: publisher,
		signer:    signer,
		log:       log,
		saveRetry: &retry.Config{
			MaxRetries:      2,
			InitialInterval: 100 * time.Millisecond,
			MaxInterval:     time.Second,
			Multiplier:      2.0,
			JitterFactor:    0.1,
		},
	}
}

// Start loads the persisted ticket collection into memory
func (s *ticketLedger) Start(ctx context.Context) error {
	tickets, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load ticket ledger: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tickets = tickets
	s.index = make(map[string]int, len(tickets))
	for i, t := range tickets {
		s.index[t.ID] = i
	}

	s.log.Info("ticket ledger loaded", zap.Int("tickets", len(tickets)))
	return nil
}

// save persists the candidate collection, retrying transient failures.
// Callers must hold s.mu and only commit the candidate after a nil return.
func (s *ticketLedger) save(ctx context.Context, tickets []*domain.Ticket) error {
	result := retry.Do(ctx, s.saveRetry, func(ctx context.Context) error {
		return s.store.Save(ctx, tickets)
	})
	if result.Err != nil {
		s.log.Error("ticket ledger save failed",
			zap.Int("attempts", result.Attempts),
			zap.Error(result.LastError))
		return fmt.Errorf("%w: %v", domain.ErrPersistence, result.LastError)
	}
	return nil
}

// commitAppend persists and commits the current collection plus the new
// tickets. Callers must hold s.mu.
func (s *ticketLedger) commitAppend(ctx context.Context, newTickets []*domain.Ticket) error {
	next := make([]*domain.Ticket, len(s.tickets), len(s.tickets)+len(newTickets))
	copy(next, s.tickets)
	next = append(next, newTickets...)

	if err := s.save(ctx, next); err != nil {
		return err
	}

	for i := len(s.tickets); i < len(next); i++ {
		s.index[next[i].ID] = i
	}
	s.tickets = next
	return nil
}

// buildTicket assembles a new valid ticket from validated inputs
func (s *ticketLedger) buildTicket(eventID, eventTitle, eventDate, eventLocation, userID, holderName, ticketType string, price float64) (*domain.Ticket, error) {
	id := domain.NewTicketID()

	qr := id
	if s.signer != nil {
		signed, err := s.signer.Encode(id)
		if err != nil {
			return nil, err
		}
		qr = signed
	}

	return &domain.Ticket{
		ID:            id,
		EventID:       eventID,
		EventTitle:    eventTitle,
		EventDate:     eventDate,
		EventLocation: eventLocation,
		UserID:        userID,
		HolderName:    holderName,
		Type:          ticketType,
		Price:         price,
		Status:        domain.TicketStatusValid,
		PurchaseDate:  time.Now().UTC(),
		QRCodeData:    qr,
	}, nil
}

// afterIssue folds the sale into the catalog and notifies downstream
// consumers. The ticket is already committed: aggregate and publish
// failures are logged, never surfaced to the buyer.
func (s *ticketLedger) afterIssue(ctx context.Context, ticket *domain.Ticket) {
	if err := s.catalog.RecordSale(ctx, ticket.EventID, ticket.Price); err != nil {
		s.log.Error("failed to record sale",
			zap.String("ticket_id", ticket.ID),
			zap.String("event_id", ticket.EventID),
			zap.Error(err))
	}

	metrics.RecordIssued(ctx, ticket.EventID, ticket.Type, ticket.Price)

	event := domain.NewTicketEvent(domain.TicketEventIssued, ticket, uuid.New().String())
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Error("failed to publish ticket event",
			zap.String("ticket_id", ticket.ID),
			zap.String("type", string(event.Type)),
			zap.Error(err))
	}
}

// IssueTicket issues a single ticket and returns it
func (s *ticketLedger) IssueTicket(ctx context.Context, req *dto.IssueTicketRequest) (*domain.Ticket, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Issuance against an unknown event is refused outright
	if _, err := s.catalog.GetEventByID(ctx, req.EventID); err != nil {
		return nil, err
	}

	ticket, err := s.buildTicket(req.EventID, req.EventTitle, req.EventDate, req.EventLocation,
		req.UserID, req.HolderName, req.Type, req.Price)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	err = s.commitAppend(ctx, []*domain.Ticket{ticket})
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	s.afterIssue(ctx, ticket)
	return ticket.Clone(), nil
}

// Purchase issues one ticket per unit of quantity across all items. The
// whole batch is persisted in a single save.
func (s *ticketLedger) Purchase(ctx context.Context, userID, userName string, req *dto.PurchaseRequest) (*dto.PurchaseResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, domain.ErrInvalidUserID
	}

	event, err := s.catalog.GetEventByID(ctx, req.EventID)
	if err != nil {
		return nil, err
	}

	holder := req.HolderName
	if holder == "" {
		holder = userName
	}
	if holder == "" {
		return nil, domain.ErrInvalidHolderName
	}

	var batch []*domain.Ticket
	var total float64
	for _, item := range req.Items {
		for i := 0; i < item.Quantity; i++ {
			ticket, err := s.buildTicket(event.ID, event.Title, event.Date, event.Location,
				userID, holder, item.Type, item.Price)
			if err != nil {
				return nil, err
			}
			batch = append(batch, ticket)
			total += item.Price
		}
	}

	s.mu.Lock()
	err = s.commitAppend(ctx, batch)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	resp := &dto.PurchaseResponse{TotalAmount: total}
	for _, ticket := range batch {
		s.afterIssue(ctx, ticket)
		resp.TicketIDs = append(resp.TicketIDs, ticket.ID)
	}
	return resp, nil
}

// GetTicket retrieves a ticket by ID
func (s *ticketLedger) GetTicket(ctx context.Context, id string) (*domain.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.index[id]
	if !ok {
		return nil, domain.ErrTicketNotFound
	}
	return s.tickets[idx].Clone(), nil
}

// GetTicketsByUser retrieves all tickets held by a user, in purchase order
func (s *ticketLedger) GetTicketsByUser(ctx context.Context, userID string) ([]*domain.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tickets := make([]*domain.Ticket, 0)
	for _, t := range s.tickets {
		if t.UserID == userID {
			tickets = append(tickets, t.Clone())
		}
	}
	return tickets, nil
}

// resolveCode maps a scanned code to a ticket identifier. Signed QR
// payloads are verified; anything else is treated as a raw identifier.
func (s *ticketLedger) resolveCode(code string) string {
	if s.signer != nil && LooksSigned(code) {
		id, err := s.signer.Decode(code)
		if err != nil {
			s.log.Warn("rejected unverifiable qr payload", zap.Error(err))
			return ""
		}
		return id
	}
	return code
}

// CheckIn validates a scanned code and marks the ticket used on success.
// A failed validation is a result, not an error: only a persistence
// failure returns a non-nil error.
func (s *ticketLedger) CheckIn(ctx context.Context, code string) (*domain.CheckInResult, error) {
	id := s.resolveCode(code)

	s.mu.Lock()
	idx, ok := s.index[id]
	if !ok {
		s.mu.Unlock()
		metrics.RecordCheckInRejected(ctx, "not_found")
		return domain.CheckInRejected(domain.MsgTicketNotFound, nil), nil
	}

	ticket := s.tickets[idx]
	switch ticket.Status {
	case domain.TicketStatusUsed:
		result := domain.CheckInRejected(domain.MsgTicketUsed, ticket.Clone())
		s.mu.Unlock()
		metrics.RecordCheckInRejected(ctx, "already_used")
		return result, nil
	case domain.TicketStatusRefunded:
		result := domain.CheckInRejected(domain.MsgTicketRefunded, ticket.Clone())
		s.mu.Unlock()
		metrics.RecordCheckInRejected(ctx, "refunded")
		return result, nil
	}

	updated := ticket.Clone()
	if err := updated.CheckIn(); err != nil {
		s.mu.Unlock()
		metrics.RecordCheckInRejected(ctx, "invalid_status")
		return domain.CheckInRejected(domain.MsgTicketNotFound, nil), nil
	}

	next := make([]*domain.Ticket, len(s.tickets))
	copy(next, s.tickets)
	next[idx] = updated

	if err := s.save(ctx, next); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.tickets = next
	s.mu.Unlock()

	metrics.RecordCheckInAccepted(ctx, updated.EventID)

	event := domain.NewTicketEvent(domain.TicketEventCheckedIn, updated, uuid.New().String())
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Error("failed to publish ticket event",
			zap.String("ticket_id", updated.ID),
			zap.String("type", string(event.Type)),
			zap.Error(err))
	}

	return domain.CheckInOK(updated.Clone()), nil
}

// RefundTicket refunds a valid ticket and reverses its sale. Attendees may
// only refund their own tickets; organizers may refund any ticket.
func (s *ticketLedger) RefundTicket(ctx context.Context, id, requesterID string, requesterIsOrganizer bool) (*domain.Ticket, error) {
	s.mu.Lock()
	idx, ok := s.index[id]
	if !ok {
		s.mu.Unlock()
		return nil, domain.ErrTicketNotFound
	}

	ticket := s.tickets[idx]
	if !requesterIsOrganizer && ticket.UserID != requesterID {
		s.mu.Unlock()
		return nil, domain.ErrTicketNotFound
	}

	updated := ticket.Clone()
	if err := updated.Refund(); err != nil {
		s.mu.Unlock()
		return nil, err
	}

	next := make([]*domain.Ticket, len(s.tickets))
	copy(next, s.tickets)
	next[idx] = updated

	if err := s.save(ctx, next); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.tickets = next
	s.mu.Unlock()

	if err := s.catalog.ReverseSale(ctx, updated.EventID, updated.Price); err != nil {
		s.log.Error("failed to reverse sale",
			zap.String("ticket_id", updated.ID),
			zap.String("event_id", updated.EventID),
			zap.Error(err))
	}

	metrics.RecordRefund(ctx, updated.EventID, updated.Price)

	event := domain.NewTicketEvent(domain.TicketEventRefunded, updated, uuid.New().String())
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Error("failed to publish ticket event",
			zap.String("ticket_id", updated.ID),
			zap.String("type", string(event.Type)),
			zap.Error(err))
	}

	return updated.Clone(), nil
}
