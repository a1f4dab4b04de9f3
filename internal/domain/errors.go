package domain

import "errors"

// Domain errors
var (
	// Catalog errors
	ErrEventNotFound = errors.New("event not found")

	// Ticket errors
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrTicketAlreadyUsed   = errors.New("ticket has already been used")
	ErrTicketRefunded      = errors.New("ticket was refunded")
	ErrInvalidTicketStatus = errors.New("invalid ticket status")

	// Validation errors
	ErrInvalidEventID    = errors.New("invalid event id")
	ErrInvalidEventTitle = errors.New("event title is required")
	ErrInvalidEventDate  = errors.New("event date is required")
	ErrInvalidLocation   = errors.New("event location is required")
	ErrInvalidUserID     = errors.New("invalid user id")
	ErrInvalidHolderName = errors.New("holder name is required")
	ErrInvalidTicketType = errors.New("ticket type is required")
	ErrInvalidPrice      = errors.New("price cannot be negative")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
	ErrInvalidCapacity   = errors.New("capacity cannot be negative")
	ErrInvalidStatus     = errors.New("invalid event status")

	// Persistence errors
	ErrPersistence = errors.New("ticket ledger persistence failed")
)

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrEventNotFound) ||
		errors.Is(err, ErrTicketNotFound)
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidEventID) ||
		errors.Is(err, ErrInvalidEventTitle) ||
		errors.Is(err, ErrInvalidEventDate) ||
		errors.Is(err, ErrInvalidLocation) ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrInvalidHolderName) ||
		errors.Is(err, ErrInvalidTicketType) ||
		errors.Is(err, ErrInvalidPrice) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidCapacity) ||
		errors.Is(err, ErrInvalidStatus)
}

// IsConflictError checks if the error is a lifecycle conflict error
func IsConflictError(err error) bool {
	return errors.Is(err, ErrTicketAlreadyUsed) ||
		errors.Is(err, ErrTicketRefunded) ||
		errors.Is(err, ErrInvalidTicketStatus)
}

// IsPersistenceError checks if the error came from the ledger store
func IsPersistenceError(err error) bool {
	return errors.Is(err, ErrPersistence)
}
