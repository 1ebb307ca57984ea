package api

import (
	"errors"
	"net/http"
	"strconv"

	"event-booking-engine/internal/domain/event"
	reqdto "event-booking-engine/internal/handler/dto/request"
	resdto "event-booking-engine/internal/handler/dto/response"
	"event-booking-engine/internal/handler/httperr"
	"event-booking-engine/internal/handler/middleware"
	"event-booking-engine/internal/usecase/commands"
	"event-booking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EventHandler struct {
	bookings commands.BookingCommands
	statuses commands.StatusCommands
	q        queries.EventQueries
}

func NewEventHandler(bookings commands.BookingCommands, statuses commands.StatusCommands, q queries.EventQueries) *EventHandler {
	return &EventHandler{bookings: bookings, statuses: statuses, q: q}
}

// @Summary Create event
// @Description Book a venue and resource requirements; rejected atomically on any conflict
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateEventRequest true "Event booking request"
// @Success 201 {object} resdto.CreateEventResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /events [post]
func (h *EventHandler) Create(c *gin.Context) {
	department, ok := middleware.GetDepartment(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing department claim"), "Unauthorized", nil)
		return
	}

	var req reqdto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	params, err := req.ToParams(department)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.bookings.CreateEvent(c.Request.Context(), params)
	if err != nil {
		var venueDetail *commands.VenueConflictDetail
		var allocDetail *commands.OverAllocationDetail
		switch {
		case errors.As(err, &venueDetail):
			httperr.AbortWithError(c, http.StatusConflict, err, "Venue is already booked", venueDetail)
		case errors.As(err, &allocDetail):
			httperr.AbortWithError(c, http.StatusConflict, err, "Requested quantity exceeds remaining availability", allocDetail)
		case errors.Is(err, commands.ErrInvalidTimeWindow):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time window", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create event", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCreateEventResult(result))
}

// @Summary Get event
// @Description Get one event by ID
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.EventResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /events/{id} [get]
func (h *EventHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid event ID", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrEventNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Event not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load event", nil)
		return
	}
	resp, err := resdto.FromEventView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render event", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List events
// @Description List events, newest first, optionally filtered by status
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param limit query int false "Max results (default 100)"
// @Success 200 {array} resdto.EventListResponse
// @Failure 400 {object} map[string]string
// @Router /events [get]
func (h *EventHandler) List(c *gin.Context) {
	var statusFilter *string
	if s := c.Query("status"); s != "" {
		statusFilter = &s
	}
	limit := 0
	if l := c.Query("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = parsed
	}

	items, err := h.q.List(c.Request.Context(), statusFilter, limit)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidStatusFilter) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status filter", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list events", nil)
		return
	}

	response := make([]*resdto.EventListResponse, len(items))
	for i, item := range items {
		resp, err := resdto.FromEventListItem(item)
		if err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render events", nil)
			return
		}
		response[i] = resp
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Update event status
// @Description Move an event through its lifecycle; cancellation requires a reason
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body reqdto.UpdateStatusRequest true "Status update request"
// @Success 200 {object} resdto.UpdateStatusResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /events/{id}/status [patch]
func (h *EventHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid event ID", nil)
		return
	}

	var req reqdto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.statuses.UpdateStatus(c.Request.Context(), commands.UpdateStatusParams{
		EventID: id,
		Target:  event.Status(req.Status),
		Reason:  req.Reason(),
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEventNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Event not found", nil)
		case errors.Is(err, commands.ErrInvalidTransition):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid status transition", nil)
		case errors.Is(err, event.ErrReasonRequired), errors.Is(err, event.ErrInvalidReason):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Cancellation reason required", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to update status", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromUpdateStatusResult(result))
}
