package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventsync/ticket-service/internal/domain"
	"github.com/eventsync/ticket-service/internal/dto"
	"github.com/eventsync/ticket-service/internal/service"
	"github.com/eventsync/ticket-service/pkg/response"
)

// EventHandler handles event catalog HTTP requests
type EventHandler struct {
	catalog service.CatalogService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(catalog service.CatalogService) *EventHandler {
	return &EventHandler{
		catalog: catalog,
	}
}

// List handles GET /events - lists the event catalog
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.catalog.ListEvents(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to list events"))
		return
	}

	eventResponses := make([]*dto.EventResponse, len(events))
	for i, event := range events {
		eventResponses[i] = dto.ToEventResponse(event)
	}

	c.JSON(http.StatusOK, response.Success(eventResponses))
}

// GetByID handles GET /events/:id - retrieves an event by ID
func (h *EventHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	event, err := h.catalog.GetEventByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Event not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to get event"))
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.ToEventResponse(event)))
}

// Create handles POST /events - creates a new event (Organizer only)
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	event, err := h.catalog.CreateEvent(c.Request.Context(), &req)
	if err != nil {
		if domain.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to create event"))
		return
	}

	c.JSON(http.StatusCreated, response.Success(dto.ToEventResponse(event)))
}

// Stats handles GET /events/stats - catalog aggregates for the organizer
// dashboard (Organizer only)
func (h *EventHandler) Stats(c *gin.Context) {
	stats, err := h.catalog.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to compute stats"))
		return
	}

	c.JSON(http.StatusOK, response.Success(stats))
}
