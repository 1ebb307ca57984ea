package api

import (
	"errors"
	"net/http"

	reqdto "event-booking-engine/internal/handler/dto/request"
	resdto "event-booking-engine/internal/handler/dto/response"
	"event-booking-engine/internal/handler/httperr"
	"event-booking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	q queries.ConflictQueries
}

func NewBookingHandler(q queries.ConflictQueries) *BookingHandler {
	return &BookingHandler{q: q}
}

// @Summary Check venue availability
// @Description Check whether a time window at a location collides with an active booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckVenueRequest true "Venue check request"
// @Success 200 {object} queries.VenueCheckResult
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /bookings/check-venue [post]
func (h *BookingHandler) CheckVenue(c *gin.Context) {
	var req reqdto.CheckVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	date, start, end, err := req.Window()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time window", nil)
		return
	}

	result, err := h.q.CheckVenue(c.Request.Context(), queries.CheckVenueParams{
		Location: req.Location,
		Date:     date,
		Start:    start,
		End:      end,
	})
	if err != nil {
		if errors.Is(err, queries.ErrInvalidTimeWindow) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time window", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Venue check failed", nil)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Check resource availability
// @Description Compute remaining quantity of a named requirement over a time window
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckResourceRequest true "Resource check request"
// @Success 200 {object} queries.ResourceCheckResult
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /bookings/check-resource [post]
func (h *BookingHandler) CheckResource(c *gin.Context) {
	var req reqdto.CheckResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	date, start, end, err := req.Window()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time window", nil)
		return
	}

	result, err := h.q.CheckResource(c.Request.Context(), queries.CheckResourceParams{
		RequirementName:  req.RequirementName,
		Date:             date,
		Start:            start,
		End:              end,
		DeclaredCapacity: req.DeclaredCapacity,
		Requested:        req.Requested,
	})
	if err != nil {
		if errors.Is(err, queries.ErrInvalidTimeWindow) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time window", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Resource check failed", nil)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary List blocked slots
// @Description List 30-minute start slots that are not selectable at a location on a date
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param location query string true "Location name"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.BlockedSlotsResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /bookings/blocked-slots [get]
func (h *BookingHandler) BlockedSlots(c *gin.Context) {
	location := c.Query("location")
	if location == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("location is required"), "Invalid request", nil)
		return
	}
	date, err := reqdto.ParseDate(c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}

	slots, err := h.q.BlockedSlots(c.Request.Context(), location, date)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Blocked slot lookup failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.BlockedSlotsResponse{
		Location: location,
		Date:     date.Format("2006-01-02"),
		Slots:    slots,
	})
}
