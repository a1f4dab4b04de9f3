package domain

// Operator-facing check-in messages
const (
	MsgCheckInOK      = "Check-in successful!"
	MsgTicketNotFound = "Ticket not found."
	MsgTicketUsed     = "Ticket has already been used."
	MsgTicketRefunded = "Ticket was refunded/cancelled."
)

// CheckInResult is the outcome reported to the check-in operator. Failed
// check-ins are results, not errors: the operator flow keeps going.
type CheckInResult struct {
	Valid   bool    `json:"valid"`
	Message string  `json:"message"`
	Ticket  *Ticket `json:"ticket,omitempty"`
}

// CheckInOK builds a successful check-in result
func CheckInOK(ticket *Ticket) *CheckInResult {
	return &CheckInResult{Valid: true, Message: MsgCheckInOK, Ticket: ticket}
}

// CheckInRejected builds a failed check-in result
func CheckInRejected(message string, ticket *Ticket) *CheckInResult {
	return &CheckInResult{Valid: false, Message: message, Ticket: ticket}
}
