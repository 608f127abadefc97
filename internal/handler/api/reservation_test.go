//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/handler/api"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/handler/middleware"
	"room-booking/internal/pkg/config"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"
	"room-booking/tests/common/builder"
	"room-booking/tests/common/httptest"
	"room-booking/tests/common/testutil"
	commandsmock "room-booking/tests/mock/commands"
	queriesmock "room-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
	sessionID    uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)
	s.sessionID = uuid.New()

	sessions := middleware.NewSessionMiddleware(config.NewTestConfig())
	g := s.router.Group("/reservations", sessions.RequireSession())
	g.POST("", s.handler.Create)
	g.GET("", s.handler.List)
	g.GET("/:id", s.handler.Get)
	g.DELETE("/:id", s.handler.Cancel)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseReservation struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"

	reqBody := builder.NewReservationBuilder().BuildCreateRequestDTO()
	returnView := builder.NewReservationBuilder().BuildView()

	s.Run("success: returns 201 Created with the stored reservation", func() {
		s.mockCommands.EXPECT().Book(gomock.Any(), reqBody, s.sessionID).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.sessionID.String())

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(*resdto.FromReservationView(returnView), body)
		s.Equal("25 mars 2024", body.FormattedDate)
		s.Equal("confirmed", body.Status)
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Location":               "/api/reservations/1",
			middleware.SessionHeader: s.sessionID.String(),
		})
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		cases := []testCaseReservation{
			{name: "negative participants", mutate: testutil.Set("participants", -1), expectCode: http.StatusBadRequest},
			{name: "description too long (501 chars)", mutate: testutil.Set("description", strings.Repeat("a", 501)), expectCode: http.StatusBadRequest},
			{name: "room_id is not a number", mutate: testutil.Set("room_id", "A"), expectCode: http.StatusBadRequest},
			{name: "description length OK (500 chars)", mutate: testutil.Set("description", strings.Repeat("a", 500)), expectCode: http.StatusCreated},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.BodyMap(s.T(), reqBody, tc.mutate)
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any(), s.sessionID).
						Return(returnView, nil).Times(1)
				}

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, s.sessionID.String())
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
				}
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
			expectedReason string
		}{
			{
				name:           "missing fields",
				commandsError:  commands.ErrMissingFields,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Please fill in room, date, start time and end time",
			},
			{
				name:           "unknown room",
				commandsError:  commands.ErrRoomNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Room not found",
			},
			{
				name:           "end before start",
				commandsError:  errs.Mark(reservation.ErrInvalidTimeSlot, commands.ErrInvalidBooking),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid booking",
				expectedReason: "start time must be before end time",
			},
			{
				name:           "double booking",
				commandsError:  errs.Mark(errors.New("slot taken"), commands.ErrReservationConflict),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Room already reserved for this time slot",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("store exploded"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Book(gomock.Any(), reqBody, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.sessionID.String())
				body := httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
				if tc.expectedReason != "" {
					s.Equal(tc.expectedReason, body.Detail["reason"])
				}
			})
		}
	})

	s.Run("success: issues a session when the caller has none", func() {
		s.mockCommands.EXPECT().Book(gomock.Any(), reqBody, gomock.Not(s.sessionID)).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

		issued := httptest.SessionFrom(s.T(), rec)
		cookie := httptest.ExtractCookie(rec, "session_id")
		s.Require().NotNil(cookie)
		s.Equal(issued, cookie.Value)
		s.True(cookie.HttpOnly)
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *ReservationHandlerTestSuite) TestList() {
	url := "/reservations"

	s.Run("success: returns the session's reservations", func() {
		views := []*queries.ReservationView{
			builder.NewReservationBuilder().BuildView(),
			builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.ID = 2 }).WithSlot("14:00", "15:00").BuildView(),
		}
		s.mockQueries.EXPECT().List(gomock.Any(), s.sessionID).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.sessionID.String())

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal(1, body[0].ID)
		s.Equal("14:00", body[1].StartTime)
	})

	s.Run("success: empty list is an empty array", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), s.sessionID).Return([]*queries.ReservationView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.sessionID.String())
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), s.sessionID).Return(nil, queries.ErrReservationQueryFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.sessionID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.sessionID, 1).
			Return(builder.NewReservationBuilder().BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/1", nil, s.sessionID.String())

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Salle de Conférence A", body.RoomName)
	})

	s.Run("error: 404 for unknown id", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.sessionID, 7).
			Return(nil, queries.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/7", nil, s.sessionID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 400 for non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/abc", nil, s.sessionID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCancel() {
	s.Run("success: 204 No Content", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.sessionID, 3).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/3", nil, s.sessionID.String())
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 400 for non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/x", nil, s.sessionID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 500 on store failure", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.sessionID, 3).Return(commands.ErrReservationCancelFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/3", nil, s.sessionID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})
}
