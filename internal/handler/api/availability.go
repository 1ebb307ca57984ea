package api

import (
	"errors"
	"net/http"

	reqdto "event-booking-engine/internal/handler/dto/request"
	resdto "event-booking-engine/internal/handler/dto/response"
	"event-booking-engine/internal/handler/httperr"
	"event-booking-engine/internal/handler/middleware"
	"event-booking-engine/internal/usecase/commands"
	"event-booking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	cmds commands.AvailabilityCommands
	q    queries.AvailabilityQueries
}

func NewAvailabilityHandler(cmds commands.AvailabilityCommands, q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{cmds: cmds, q: q}
}

// @Summary Upsert availability
// @Description Declare the caller department's supply of one requirement on one date
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpsertAvailabilityRequest true "Availability declaration"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /availability [put]
func (h *AvailabilityHandler) Upsert(c *gin.Context) {
	department, ok := middleware.GetDepartment(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing department claim"), "Unauthorized", nil)
		return
	}

	var req reqdto.UpsertAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	params, err := req.ToParams(department)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.UpsertAvailability(c.Request.Context(), params); err != nil {
		if errors.Is(err, commands.ErrDomainValidation) {
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to save availability", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List availability
// @Description List availability records across a date range, optionally narrowed by department or requirement name
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Param department query string false "Supplying department (defaults to the caller's when no requirement filter is given)"
// @Param requirement query string false "Requirement display name"
// @Success 200 {array} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /availability [get]
func (h *AvailabilityHandler) List(c *gin.Context) {
	department, ok := middleware.GetDepartment(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing department claim"), "Unauthorized", nil)
		return
	}

	from, err := reqdto.ParseDate(c.Query("from"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid from date", nil)
		return
	}
	to, err := reqdto.ParseDate(c.Query("to"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid to date", nil)
		return
	}

	filter := queries.AvailabilityFilter{
		Department:      c.Query("department"),
		RequirementName: c.Query("requirement"),
		From:            from,
		To:              to,
	}
	// With no explicit filter the listing stays scoped to the caller.
	if filter.Department == "" && filter.RequirementName == "" {
		filter.Department = department
	}

	views, err := h.q.ListRange(c.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidDateRange) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list availability", nil)
		return
	}

	response := make([]*resdto.AvailabilityResponse, len(views))
	for i, v := range views {
		resp, err := resdto.FromAvailabilityView(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render availability", nil)
			return
		}
		response[i] = resp
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Bulk apply availability
// @Description Apply one operation to every remaining date of a month for the caller department
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BulkAvailabilityRequest true "Bulk operation request"
// @Success 200 {object} resdto.BulkResultResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /availability/bulk [post]
func (h *AvailabilityHandler) BulkApply(c *gin.Context) {
	department, ok := middleware.GetDepartment(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing department claim"), "Unauthorized", nil)
		return
	}

	var req reqdto.BulkAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	params, err := req.ToParams(department)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.BulkApply(c.Request.Context(), params, nil)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidBulkOperation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid bulk operation", nil)
		case errors.Is(err, commands.ErrNoRequirements):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Department has no requirement catalog", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Bulk operation failed", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromBulkResult(result))
}
