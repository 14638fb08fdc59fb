//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"hotel-pms/internal/domain/allocation"
	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/domain/staff"
	"hotel-pms/internal/handler/api"
	resdto "hotel-pms/internal/handler/dto/response"
	"hotel-pms/internal/pkg/errs"
	"hotel-pms/internal/usecase/commands"
	"hotel-pms/internal/usecase/queries"
	"hotel-pms/tests/common/builder"
	"hotel-pms/tests/common/httptest"
	"hotel-pms/tests/common/testutil"
	commandsmock "hotel-pms/tests/mock/commands"
	queriesmock "hotel-pms/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeAuth stands in for RequireAuth: any bearer token authenticates as staffID.
func fakeAuth(staffID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("staff_id", staffID)
		c.Set("staff_role", staff.RoleClerk)
		c.Next()
	}
}

func reservationView(id uuid.UUID) *queries.ReservationView {
	roomNight := queries.NightView{
		DetailID:   uuid.New(),
		Date:       "2030-04-10",
		RoomID:     101,
		RoomNumber: "101",
		People:     2,
		Price:      12000,
		Billable:   true,
	}
	return &queries.ReservationView{
		ID:            id,
		HotelID:       1,
		ClientID:      uuid.New(),
		ClientName:    "Taro Yamada",
		CheckIn:       "2030-04-10",
		CheckOut:      "2030-04-11",
		People:        2,
		Status:        "confirmed",
		Type:          "direct",
		BillableTotal: 12000,
		Nights:        []queries.NightView{roomNight},
		CreatedAt:     builder.BaseDate,
		UpdatedAt:     builder.BaseDate,
	}
}

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
	staffID      uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)
	s.staffID = uuid.New()

	auth := fakeAuth(s.staffID)
	s.router.POST("/hotels/:hotelId/reservations", auth, s.handler.CreateHold)
	s.router.GET("/reservations/:id", auth, s.handler.Get)
	s.router.DELETE("/reservations/:id", auth, s.handler.DeleteHold)
	s.router.PUT("/reservations/:id/status", auth, s.handler.ChangeStatus)
	s.router.POST("/reservations/:id/rooms", auth, s.handler.AddRoom)
	s.router.DELETE("/reservations/:id/rooms/:roomId", auth, s.handler.RemoveRoom)
	s.router.PUT("/reservations/:id/rooms/:roomId/move", auth, s.handler.MoveRoom)
	s.router.POST("/reservations/:id/recalculate", auth, s.handler.Recalculate)
	s.router.PUT("/reservation-details/:detailId/plan", auth, s.handler.AttachPlan)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseHold struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreateHold
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreateHold() {
	url := "/hotels/1/reservations"
	reqBody := builder.NewReservationBuilder().BuildHoldRequest()
	result := &commands.HoldResult{
		ReservationID: uuid.New(),
		ClientID:      uuid.New(),
		Assignments:   allocation.Plan{{RoomID: 101, RoomTypeID: 10, Capacity: 2, Occupants: 2}},
	}

	s.Run("success: returns 201 with the assigned rooms", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().
			CreateHold(gomock.Any(), gomock.Any(), &s.staffID).
			DoAndReturn(func(_ any, cmd commands.CreateHoldRequest, _ *uuid.UUID) (*commands.HoldResult, error) {
				s.Equal(int32(1), cmd.HotelID)
				s.Equal(allocation.ModeBestFitSingle, cmd.Selector.Mode)
				s.Require().NotNil(cmd.Client)
				s.Equal("Taro Yamada", cmd.Client.Name)
				return result, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.HoldResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(result.ReservationID, body.ReservationID)
		s.Require().Len(body.Assignments, 1)
		s.Equal(int32(101), body.Assignments[0].RoomID)
		s.Equal(2, body.Assignments[0].Occupants)
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		cases := []testCaseHold{
			{name: "missing checkIn", mutate: testutil.Field("checkIn", nil), expectCode: http.StatusBadRequest},
			{name: "missing mode", mutate: testutil.Field("mode", nil), expectCode: http.StatusBadRequest},
			{name: "unknown mode", mutate: testutil.Field("mode", "cheapest"), expectCode: http.StatusBadRequest},
			{name: "negative people", mutate: testutil.Field("numberOfPeople", -1), expectCode: http.StatusBadRequest},
			{name: "unknown type", mutate: testutil.Field("type", "ota"), expectCode: http.StatusBadRequest},
			{name: "comment too long", mutate: testutil.Field("comment", strings.Repeat("a", 2001)), expectCode: http.StatusBadRequest},
			{name: "client without name", mutate: testutil.Field("client", map[string]any{"email": "a@example.com"}), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.SetupTest()
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: 400 on malformed hotel id", func() {
		s.SetupTest()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/hotels/abc/reservations", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "hotelId")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		s.SetupTest()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{"validation", commands.ErrClientRequired, http.StatusBadRequest, "client"},
			{"insufficient capacity", allocation.ErrNotEnoughRoom, http.StatusConflict, ""},
			{"room not found", errs.NotFoundf("room 999 not found"), http.StatusNotFound, "room 999"},
			{"uncategorized", errors.New("connection reset"), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.SetupTest()
				s.mockCommands.EXPECT().CreateHold(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: combo failures are returned as detail", func() {
		s.SetupTest()
		comboErr := errs.WithKind(&allocation.ComboError{Failures: []allocation.TypeFailure{
			{RoomTypeID: 20, Reason: "not enough rooms"},
		}}, allocation.ErrNotEnoughRoom)
		s.mockCommands.EXPECT().CreateHold(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, comboErr)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "room type 20")
		s.Contains(rec.Body.String(), `"detail"`)
		s.Contains(rec.Body.String(), "not enough rooms")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	id := uuid.New()

	s.Run("success: returns the reservation with nights", func() {
		s.SetupTest()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(reservationView(id), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil, "bearer-token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(id, body.ID)
		s.Equal("confirmed", body.Status)
		s.Require().Len(body.Nights, 1)
		s.Equal("101", body.Nights[0].RoomNumber)
		s.NotNil(body.Payments)
	})

	s.Run("error: 400 on malformed id", func() {
		s.SetupTest()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid id")
	})

	s.Run("error: 404 when missing", func() {
		s.SetupTest()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, reservation.ErrReservationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})
}

// ================================================================================
// TestDeleteHold
// ================================================================================

func (s *ReservationHandlerTestSuite) TestDeleteHold() {
	id := uuid.New()
	url := "/reservations/" + id.String()

	s.Run("success: 204 No Content", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().DeleteHold(gomock.Any(), id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when the reservation left hold", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().DeleteHold(gomock.Any(), id).Return(reservation.ErrNotDeletable)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

// ================================================================================
// TestChangeStatus
// ================================================================================

func (s *ReservationHandlerTestSuite) TestChangeStatus() {
	id := uuid.New()
	url := "/reservations/" + id.String() + "/status"

	s.Run("success: returns the new status", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().
			ChangeStatus(gomock.Any(), commands.ChangeStatusRequest{ReservationID: id, Status: reservation.StatusCancelled, FullFee: true}, &s.staffID).
			Return(reservation.StatusCancelled, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "cancelled", "fullFee": true}, "bearer-token")

		var body resdto.StatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(id, body.ReservationID)
		s.Equal("cancelled", body.Status)
	})

	s.Run("error: 400 on target outside the lifecycle", func() {
		s.SetupTest()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "hold"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 409 on a rejected transition", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(reservation.Status(""), reservation.ErrTransitionNotAllowed)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "recovered"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

// ================================================================================
// Room operations
// ================================================================================

func (s *ReservationHandlerTestSuite) TestAddRoom() {
	id := uuid.New()
	url := "/reservations/" + id.String() + "/rooms"

	s.Run("success: returns the refreshed reservation", func() {
		s.SetupTest()
		gomock.InOrder(
			s.mockCommands.EXPECT().
				AddRoom(gomock.Any(), commands.AddRoomRequest{ReservationID: id, RoomID: 102, People: 1}, &s.staffID).
				Return(nil),
			s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(reservationView(id), nil),
		)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"roomId": 102, "numberOfPeople": 1}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 without people", func() {
		s.SetupTest()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"roomId": 102}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 409 when the room is over capacity", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().AddRoom(gomock.Any(), gomock.Any(), gomock.Any()).Return(commands.ErrRoomCapacity)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"roomId": 102, "numberOfPeople": 9}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

func (s *ReservationHandlerTestSuite) TestRemoveRoom() {
	id := uuid.New()

	s.Run("success: people query is forwarded", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().
			RemoveRoom(gomock.Any(), commands.RemoveRoomRequest{ReservationID: id, RoomID: 101, People: 1}, &s.staffID).
			Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(reservationView(id), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+id.String()+"/rooms/101?people=1", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: omitted people removes the room", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().
			RemoveRoom(gomock.Any(), commands.RemoveRoomRequest{ReservationID: id, RoomID: 101}, &s.staffID).
			Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(reservationView(id), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+id.String()+"/rooms/101", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on bad people or room id", func() {
		for _, path := range []string{"/rooms/101?people=x", "/rooms/101?people=-2", "/rooms/0"} {
			s.Run(path, func() {
				s.SetupTest()
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+id.String()+path, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestMoveRoom() {
	id := uuid.New()
	url := "/reservations/" + id.String() + "/rooms/101/move"

	s.Run("success: split reservation id is returned", func() {
		s.SetupTest()
		split := uuid.New()
		s.mockCommands.EXPECT().
			MoveRoom(gomock.Any(), commands.MoveRoomRequest{
				ReservationID: id,
				FromRoomID:    101,
				ToRoomID:      201,
				CheckIn:       "2030-04-12",
				CheckOut:      "2030-04-14",
				Solo:          true,
			}, &s.staffID).
			Return(&commands.MoveRoomResult{ReservationID: id, SplitReservationID: &split}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{
			"toRoomId": 201, "checkIn": "2030-04-12", "checkOut": "2030-04-14", "solo": true,
		}, "bearer-token")

		var body resdto.MoveRoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(body.SplitReservationID)
		s.Equal(split, *body.SplitReservationID)
	})

	s.Run("error: 409 when the target is booked", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().MoveRoom(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Conflictf("room 201 is booked on 2030-04-10"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"toRoomId": 201}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "room 201 is booked")
	})
}

func (s *ReservationHandlerTestSuite) TestRecalculate() {
	id := uuid.New()

	s.Run("success", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().Recalculate(gomock.Any(), id).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(reservationView(id), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/recalculate", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *ReservationHandlerTestSuite) TestAttachPlan() {
	detailID := uuid.New()
	url := "/reservation-details/" + detailID.String() + "/plan"

	s.Run("success: omitted add-ons keep plan defaults", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().
			AttachPlan(gomock.Any(), gomock.Any(), &s.staffID).
			DoAndReturn(func(_ any, cmd commands.AttachPlanRequest, _ *uuid.UUID) error {
				s.Equal(detailID, cmd.DetailID)
				s.Require().NotNil(cmd.Plan.HotelID)
				s.Equal(int32(5), *cmd.Plan.HotelID)
				s.Nil(cmd.Addons)
				return nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"plansHotelId": 5}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: explicit empty add-on list clears them", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().
			AttachPlan(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, cmd commands.AttachPlanRequest, _ *uuid.UUID) error {
				s.NotNil(cmd.Addons)
				s.Empty(cmd.Addons)
				return nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"plansHotelId": 5, "addons": []any{}}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on guest with malformed birth date", func() {
		s.SetupTest()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{
			"guests": []any{map[string]any{"name": "Hanako", "dateOfBirth": "1990/13/40"}},
		}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
