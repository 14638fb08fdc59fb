//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	"testing"

	"hotel-pms/internal/domain/ota"
	"hotel-pms/internal/domain/staff"
	"hotel-pms/internal/handler/dto/response"
	"hotel-pms/tests/common/dbtest"
	"hotel-pms/tests/common/httptest"
	"hotel-pms/tests/e2e"
	"hotel-pms/tests/e2e/common/helper"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	holdsURL       = "/api/hotels/%d/reservations"
	reservationURL = "/api/reservations/%s"
	statusURL      = "/api/reservations/%s/status"
	paymentsURL    = "/api/reservations/%s/payments"
	otaURL         = "/api/hotels/%d/ota/reservations"
	replayURL      = "/api/ota/queue/%d/replay"
)

const otaBooking = `{
  "transactionType": {"dataClassification": "NewBookReport"},
  "basicInformation": {
    "travelAgencyName": "Rakuten",
    "travelAgencyBookingNumber": "RK-E2E-1",
    "guestOrGroupNameSingleByte": "YAMADA TARO",
    "checkInDate": "2030-05-01",
    "checkOutDate": "2030-05-02",
    "packagePlanCode": "P-BF"
  },
  "basicRateInformation": {"cancellationCharge": "0"},
  "roomAndGuestList": {"roomAndGuest": [{
    "roomInformation": {"roomTypeCode": "FAM", "perRoomPaxCount": 3},
    "roomRateInformation": [{"roomDate": "2030-05-01", "totalPerRoomRate": "18000"}]
  }]}
}`

type ReservationSuite struct {
	e2e.SharedSuite
	jwt *helper.JWTTestHelper
}

func (s *ReservationSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = helper.NewJWTTestHelper(s.Config.JWT)
}

func (s *ReservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

func holdBody(roomID int32, checkIn, checkOut string) map[string]any {
	return map[string]any{
		"checkIn":        checkIn,
		"checkOut":       checkOut,
		"numberOfPeople": 2,
		"mode":           "specific-room",
		"roomId":         roomID,
		"client":         map[string]any{"name": "Suzuki Hanako"},
	}
}

func (s *ReservationSuite) createHold(token string, roomID int32) uuid.UUID {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(holdsURL, dbtest.HotelID),
		holdBody(roomID, "2030-04-10", "2030-04-12"), token)

	var hold response.HoldResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &hold)
	require.NotEqual(t, uuid.Nil, hold.ReservationID)
	return hold.ReservationID
}

// =============================================================================
// TestHoldLifecycle - hold, read back, confirm
// =============================================================================

func (s *ReservationSuite) TestHoldLifecycle() {
	s.Run("Normal case: clerk holds a specific room and confirms it", func() {
		t := s.T()
		_, token := s.jwt.TokenFor(t, staff.RoleClerk)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(holdsURL, dbtest.HotelID),
			holdBody(101, "2030-04-10", "2030-04-12"), token)
		var hold response.HoldResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &hold)
		require.Len(t, hold.Assignments, 1)
		require.Equal(t, int32(101), hold.Assignments[0].RoomID)
		require.Equal(t, dbtest.TwinRoomTypeID, hold.Assignments[0].RoomTypeID)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(reservationURL, hold.ReservationID), nil, token)
		var view response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
		require.Equal(t, "hold", view.Status)
		require.Equal(t, "Suzuki Hanako", view.ClientName)

		type night struct {
			Date   string
			Room   string
			People int
		}
		var got []night
		for _, n := range view.Nights {
			got = append(got, night{Date: n.Date, Room: n.RoomNumber, People: n.People})
		}
		want := []night{{"2030-04-10", "101", 2}, {"2030-04-11", "101", 2}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("nights mismatch (-want +got):\n%s", diff)
		}

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(statusURL, hold.ReservationID),
			map[string]any{"status": "confirmed"}, token)
		var status response.StatusResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &status)
		require.Equal(t, "confirmed", status.Status)
	})

	s.Run("Normal case: cancelling a confirmed stay releases its nights", func() {
		t := s.T()
		_, token := s.jwt.TokenFor(t, staff.RoleClerk)
		id := s.createHold(token, 201)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(statusURL, id),
			map[string]any{"status": "confirmed"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(statusURL, id),
			map[string]any{"status": "cancelled"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Equal(t, 0, dbtest.CountActiveNights(t, s.DB, id))

		// the room is free again
		s.createHold(token, 201)
	})

	s.Run("Error case: overlapping hold on the same room is a conflict", func() {
		t := s.T()
		_, token := s.jwt.TokenFor(t, staff.RoleClerk)
		s.createHold(token, 102)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(holdsURL, dbtest.HotelID),
			holdBody(102, "2030-04-11", "2030-04-13"), token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
	})

	s.Run("Error case: confirmed cannot go back to provisory", func() {
		t := s.T()
		_, token := s.jwt.TokenFor(t, staff.RoleClerk)
		id := s.createHold(token, 101)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(statusURL, id),
			map[string]any{"status": "confirmed"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(statusURL, id),
			map[string]any{"status": "provisory"}, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
	})

	s.Run("Error case: unknown reservation is 404", func() {
		t := s.T()
		_, token := s.jwt.TokenFor(t, staff.RoleViewer)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(reservationURL, uuid.New()), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})
}

// =============================================================================
// TestAccessControl - token and role checks
// =============================================================================

func (s *ReservationSuite) TestAccessControl() {
	url := fmt.Sprintf(holdsURL, dbtest.HotelID)

	s.Run("Error case: viewer cannot create holds", func() {
		t := s.T()
		_, token := s.jwt.TokenFor(t, staff.RoleViewer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, holdBody(101, "2030-04-10", "2030-04-12"), token)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("Error case: missing token is 401", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, holdBody(101, "2030-04-10", "2030-04-12"), "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: expired token is 401", func() {
		t := s.T()
		token := s.jwt.CreateExpiredToken(t, uuid.New(), staff.RoleManager)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, holdBody(101, "2030-04-10", "2030-04-12"), token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Normal case: health check needs no token", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/health", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		httptest.AssertHeaders(t, w, map[string]string{"Content-Type": "application/json; charset=utf-8"})
	})
}

// =============================================================================
// TestPayments - payments are reflected in the reservation view
// =============================================================================

func (s *ReservationSuite) TestPayments() {
	s.Run("Normal case: cash payment is added to the paid total", func() {
		t := s.T()
		_, token := s.jwt.TokenFor(t, staff.RoleClerk)
		id := s.createHold(token, 101)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(paymentsURL, id), map[string]any{
			"date": "2030-04-10", "roomId": 101, "paymentTypeId": dbtest.CashPaymentID, "value": 5000,
		}, token)
		var paid response.RecordPaymentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &paid)
		require.Nil(t, paid.InvoiceID)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(reservationURL, id), nil, token)
		var view response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
		require.Len(t, view.Payments, 1)
		require.InDelta(t, 5000.0, view.PaidTotal, 0.001)
	})

	s.Run("Error case: unknown payment type is 404", func() {
		t := s.T()
		_, token := s.jwt.TokenFor(t, staff.RoleClerk)
		id := s.createHold(token, 101)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(paymentsURL, id), map[string]any{
			"paymentTypeId": 99, "value": 100,
		}, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})
}

// =============================================================================
// TestOTAIntake - notifications are queued once and replay is guarded
// =============================================================================

func (s *ReservationSuite) TestOTAIntake() {
	url := fmt.Sprintf(otaURL, dbtest.HotelID)

	s.Run("Normal case: notification is queued once per payload", func() {
		t := s.T()
		_, token := s.jwt.TokenFor(t, staff.RoleClerk)

		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, url, "application/json", []byte(otaBooking), token)
		var first response.EnqueueResponse
		httptest.AssertSuccessResponse(t, w, http.StatusAccepted, &first)
		require.True(t, first.Created)
		require.Equal(t, "RK-E2E-1", first.BookingRef)
		require.Equal(t, ota.TransactionNew, first.Transaction)
		require.Equal(t, "pending", dbtest.QueueStatus(t, s.DB, first.EntryID))

		w = httptest.PerformRawRequest(t, s.Router, http.MethodPost, url, "application/json", []byte(otaBooking), token)
		var second response.EnqueueResponse
		httptest.AssertSuccessResponse(t, w, http.StatusAccepted, &second)
		require.False(t, second.Created)
		require.Equal(t, first.EntryID, second.EntryID)
	})

	s.Run("Error case: only failed entries can be replayed", func() {
		t := s.T()
		_, clerk := s.jwt.TokenFor(t, staff.RoleClerk)
		_, manager := s.jwt.TokenFor(t, staff.RoleManager)

		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, url, "application/json", []byte(otaBooking), clerk)
		var queued response.EnqueueResponse
		httptest.AssertSuccessResponse(t, w, http.StatusAccepted, &queued)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(replayURL, queued.EntryID), nil, clerk)
		require.Equal(t, http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(replayURL, queued.EntryID), nil, manager)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
	})

	s.Run("Error case: malformed payload is rejected before queueing", func() {
		t := s.T()
		_, token := s.jwt.TokenFor(t, staff.RoleClerk)

		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, url, "application/json", []byte(`{"broken":`), token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "")
	})
}
