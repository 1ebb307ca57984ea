//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"event-booking-engine/internal/domain/event"
	"event-booking-engine/internal/handler/api"
	"event-booking-engine/internal/usecase/commands"
	"event-booking-engine/internal/usecase/queries"
	"event-booking-engine/tests/common/builder"
	"event-booking-engine/tests/common/httptest"
	"event-booking-engine/tests/common/testutil"
	commandsmock "event-booking-engine/tests/mock/commands"
	queriesmock "event-booking-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EventHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockBookings *commandsmock.MockBookingCommands
	mockStatuses *commandsmock.MockStatusCommands
	mockQueries  *queriesmock.MockEventQueries
	handler      *api.EventHandler
}

func (s *EventHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookings = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockStatuses = commandsmock.NewMockStatusCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockEventQueries(s.mockCtrl)
	s.handler = api.NewEventHandler(s.mockBookings, s.mockStatuses, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("department", "Facilities")
		c.Next()
	}

	s.router.POST("/events", authMiddleware, s.handler.Create)
	s.router.GET("/events", authMiddleware, s.handler.List)
	s.router.GET("/events/:id", authMiddleware, s.handler.Get)
	s.router.PATCH("/events/:id/status", authMiddleware, s.handler.UpdateStatus)
}

func (s *EventHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEventHandlerSuite(t *testing.T) {
	suite.Run(t, new(EventHandlerTestSuite))
}

type testCaseEvent struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *EventHandlerTestSuite) TestCreate() {
	url := "/events"

	reqBody := builder.NewEventBuilder().BuildCreateRequestDTO()
	eventID := uuid.New()
	expectedResult := &commands.CreateEventResult{EventID: eventID, Status: event.StatusSubmitted}

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockBookings.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).
			Return(expectedResult, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(eventID.String(), body["id"])
		s.Equal("submitted", body["status"])
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		validationCases := []testCaseEvent{
			{name: "missing field: title", mutate: testutil.Field("title", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: location", mutate: testutil.Field("location", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: date", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
			{name: "malformed date", mutate: testutil.Field("date", "14-09-2026"), expectCode: http.StatusBadRequest},
			{name: "malformed start time", mutate: testutil.Field("startTime", "9am"), expectCode: http.StatusBadRequest},
		}

		for _, tc := range validationCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 409 Conflict with detail on venue collision", func() {
		detail := &commands.VenueConflictDetail{
			Location:          "Main Auditorium",
			Window:            "2026-09-14 09:00-11:00",
			ConflictingTitles: []string{"Existing Meeting"},
		}
		s.mockBookings.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).
			Return(nil, detail).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Venue is already booked")

		var body map[string]any
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.NotNil(body["detail"], "conflict detail must be included in the body")
	})

	s.Run("error: 409 Conflict on resource over-allocation", func() {
		detail := &commands.OverAllocationDetail{
			Requirement: "Projector",
			Department:  "AV",
			Requested:   2,
			Remaining:   1,
			Capacity:    3,
		}
		s.mockBookings.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).
			Return(nil, detail).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "exceeds remaining availability")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid time window",
				commandsError:  commands.ErrInvalidTimeWindow,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid time window",
			},
			{
				name:           "domain validation error",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Validation failed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Failed to create event",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockBookings.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *EventHandlerTestSuite) TestGet() {
	eventID := uuid.New()
	view := &queries.EventView{
		ID:       eventID,
		Title:    "Quarterly All-Hands",
		Location: "Main Auditorium",
		Date:     time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		Status:   "submitted",
	}

	s.Run("success: returns 200 OK with the event", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), eventID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/events/"+eventID.String(), nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Quarterly All-Hands", body["title"])
		s.Equal("2026-09-14", body["date"])
	})

	s.Run("error: 400 Bad Request on malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/events/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid event ID")
	})

	s.Run("error: 404 Not Found for unknown event", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), eventID).
			Return(nil, queries.ErrEventNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/events/"+eventID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Event not found")
	})

	s.Run("error: 500 Internal Server Error on store failures", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), eventID).
			Return(nil, errors.New("connection reset")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/events/"+eventID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load event")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *EventHandlerTestSuite) TestList() {
	items := []*queries.EventListItem{
		{ID: uuid.New(), Title: "Board Review", Location: "Room 12", Status: "approved"},
	}

	s.Run("success: returns 200 OK with events", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), nil, 0).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/events", nil, "bearer-token")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal("Board Review", body[0]["title"])
	})

	s.Run("success: forwards the status filter and limit", func() {
		approved := "approved"
		s.mockQueries.EXPECT().List(gomock.Any(), &approved, 5).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/events?status=approved&limit=5", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on invalid status filter", func() {
		bogus := "pending"
		s.mockQueries.EXPECT().List(gomock.Any(), &bogus, 0).
			Return(nil, queries.ErrInvalidStatusFilter).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/events?status=pending", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid status filter")
	})

	s.Run("error: 400 Bad Request on non-numeric limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/events?limit=abc", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")
	})
}

// ================================================================================
// TestUpdateStatus
// ================================================================================

func (s *EventHandlerTestSuite) TestUpdateStatus() {
	eventID := uuid.New()
	url := "/events/" + eventID.String() + "/status"
	reqBody := map[string]any{"status": "approved"}

	s.Run("success: returns 200 OK after the transition", func() {
		s.mockStatuses.EXPECT().UpdateStatus(gomock.Any(), commands.UpdateStatusParams{
			EventID: eventID,
			Target:  event.StatusApproved,
		}).Return(&commands.UpdateStatusResult{
			EventID: eventID,
			Status:  event.StatusApproved,
			Changed: true,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("approved", body["status"])
		s.Equal(true, body["changed"])
	})

	s.Run("success: forwards the cancellation reason", func() {
		reason := event.ReasonWeatherEmergency
		s.mockStatuses.EXPECT().UpdateStatus(gomock.Any(), commands.UpdateStatusParams{
			EventID: eventID,
			Target:  event.StatusCancelled,
			Reason:  &reason,
		}).Return(&commands.UpdateStatusResult{
			EventID: eventID,
			Status:  event.StatusCancelled,
			Changed: true,
		}, nil).Times(1)

		body := map[string]any{"status": "cancelled", "cancellationReason": "weatherEmergency"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/events/nope/status", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid event ID")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "event not found",
				commandsError:  commands.ErrEventNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Event not found",
			},
			{
				name:           "invalid transition",
				commandsError:  commands.ErrInvalidTransition,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Invalid status transition",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Failed to update status",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockStatuses.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
