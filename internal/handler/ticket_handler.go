package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventsync/ticket-service/internal/domain"
	"github.com/eventsync/ticket-service/internal/dto"
	"github.com/eventsync/ticket-service/internal/service"
	"github.com/eventsync/ticket-service/pkg/middleware"
	"github.com/eventsync/ticket-service/pkg/response"
)

// TicketHandler handles ticket lifecycle HTTP requests
type TicketHandler struct {
	ledger service.TicketLedger
}

// NewTicketHandler creates a new TicketHandler
func NewTicketHandler(ledger service.TicketLedger) *TicketHandler {
	return &TicketHandler{
		ledger: ledger,
	}
}

// Purchase handles POST /tickets/purchase - buys tickets for the
// authenticated user
func (h *TicketHandler) Purchase(c *gin.Context) {
	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("User not found in token"))
		return
	}
	userName, _ := middleware.GetUserName(c)

	resp, err := h.ledger.Purchase(c.Request.Context(), userID, userName, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEventNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Event not found"))
		case domain.IsValidationError(err):
			c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, response.InternalError("Failed to purchase tickets"))
		}
		return
	}

	c.JSON(http.StatusCreated, response.Success(resp))
}

// MyTickets handles GET /tickets/my - lists the authenticated user's tickets
func (h *TicketHandler) MyTickets(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("User not found in token"))
		return
	}

	tickets, err := h.ledger.GetTicketsByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to list tickets"))
		return
	}

	ticketResponses := make([]*dto.TicketResponse, len(tickets))
	for i, ticket := range tickets {
		ticketResponses[i] = dto.ToTicketResponse(ticket)
	}

	c.JSON(http.StatusOK, response.Success(ticketResponses))
}

// GetByID handles GET /tickets/:id - retrieves one of the authenticated
// user's tickets. Organizers can fetch any ticket.
func (h *TicketHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	ticket, err := h.ledger.GetTicket(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Ticket not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to get ticket"))
		return
	}

	userID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)
	if ticket.UserID != userID && role != middleware.RoleOrganizer {
		// Other users' tickets are indistinguishable from absent ones
		c.JSON(http.StatusNotFound, response.NotFound("Ticket not found"))
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.ToTicketResponse(ticket)))
}

// Refund handles POST /tickets/:id/refund - refunds a valid ticket
func (h *TicketHandler) Refund(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("User not found in token"))
		return
	}
	role, _ := middleware.GetUserRole(c)

	ticket, err := h.ledger.RefundTicket(c.Request.Context(), id, userID, role == middleware.RoleOrganizer)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTicketNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Ticket not found"))
		case domain.IsConflictError(err):
			c.JSON(http.StatusConflict, response.Error(response.ErrCodeConflict, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, response.InternalError("Failed to refund ticket"))
		}
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.ToTicketResponse(ticket)))
}

// CheckIn handles POST /checkin - validates a scanned code (Organizer
// only). Rejections are 200 responses with valid=false so the operator
// flow keeps scanning.
func (h *TicketHandler) CheckIn(c *gin.Context) {
	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Code is required"))
		return
	}

	result, err := h.ledger.CheckIn(c.Request.Context(), req.Code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to record check-in"))
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.ToCheckInResponse(result)))
}
