//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"testing"

	"hotel-pms/internal/domain/ota"
	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/pkg/clock"
	"hotel-pms/internal/pkg/errs"
	"hotel-pms/internal/usecase/commands"
	"hotel-pms/internal/usecase/shared"
	"hotel-pms/tests/common/builder"
	"hotel-pms/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const bookingTemplate = `{
  "transactionType": {"dataClassification": %q},
  "basicInformation": {
    "travelAgencyName": "Rakuten",
    "travelAgencyBookingNumber": %q,
    "guestOrGroupNameSingleByte": "YAMADA TARO",
    "checkInDate": "2030-04-10",
    "checkOutDate": "2030-04-12",
    "packagePlanCode": "P-BF"
  },
  "basicRateInformation": {"cancellationCharge": "0"},
  "roomAndGuestList": {"roomAndGuest": [{
    "roomInformation": {"roomTypeCode": %q, "perRoomPaxCount": 2},
    "roomRateInformation": [
      {"roomDate": "2030-04-10", "totalPerRoomRate": "12000"},
      {"roomDate": "2030-04-11", "totalPerRoomRate": "12000"}
    ]
  }]}
}`

func payload(classification, ref, roomType string) []byte {
	return []byte(fmt.Sprintf(bookingTemplate, classification, ref, roomType))
}

type OTAQueueTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *memstore.Store
	queue *commands.OTAQueue
}

func (s *OTAQueueTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = newOTAStore()
	c := clock.NewMockClock(builder.BaseDate.AddDate(0, 0, -10))
	rec := commands.NewReconciler(s.store, s.store, nil, c)
	s.queue = commands.NewOTAQueue(s.store, rec, nil, c, 10)
}

func TestOTAQueueSuite(t *testing.T) {
	suite.Run(t, new(OTAQueueTestSuite))
}

func (s *OTAQueueTestSuite) enqueue(classification, ref, roomType string) int64 {
	result, err := s.queue.Enqueue(s.ctx, commands.EnqueueRequest{
		HotelID:     1,
		ContentType: "application/json",
		Payload:     payload(classification, ref, roomType),
	})
	s.Require().NoError(err)
	return result.EntryID
}

func (s *OTAQueueTestSuite) entry(id int64) shared.QueueEntry {
	for _, e := range s.store.QueueEntries() {
		if e.ID == id {
			return e
		}
	}
	s.FailNow("queue entry not found", "id %d", id)
	return shared.QueueEntry{}
}

func (s *OTAQueueTestSuite) TestEnqueue() {
	s.Run("payload stored once per hotel", func() {
		s.SetupTest()
		req := commands.EnqueueRequest{HotelID: 1, Payload: payload("NewBookReport", "RK-1", "TWN")}

		first, err := s.queue.Enqueue(s.ctx, req)
		s.Require().NoError(err)
		second, err := s.queue.Enqueue(s.ctx, req)
		s.Require().NoError(err)

		s.True(first.Created)
		s.False(second.Created)
		s.Equal(first.EntryID, second.EntryID)
		s.Equal("RK-1", first.BookingRef)
		s.Equal(ota.TransactionNew, first.Transaction)
		s.Len(s.store.QueueEntries(), 1)

		req.HotelID = 2
		other, err := s.queue.Enqueue(s.ctx, req)
		s.Require().NoError(err)
		s.True(other.Created)
	})

	s.Run("entry keeps the decoded header", func() {
		s.SetupTest()

		id := s.enqueue("CancellationReport", "RK-9", "TWN")

		e := s.entry(id)
		s.Equal(shared.QueuePending, e.Status)
		s.Equal("RK-9", e.BookingRef)
		s.Equal(ota.TransactionCancel, e.Transaction)
		s.Equal(ota.ContentTypeJSON, e.ContentType)
		s.Len(e.PayloadHash, 64)
	})

	s.Run("rejected payloads are not queued", func() {
		s.SetupTest()
		cases := []struct {
			name  string
			req   commands.EnqueueRequest
			errIs error
		}{
			{"hotel missing", commands.EnqueueRequest{Payload: payload("NewBookReport", "RK-1", "TWN")}, commands.ErrInvalidHotel},
			{"empty body", commands.EnqueueRequest{HotelID: 1}, commands.ErrEmptyPayload},
			{"malformed", commands.EnqueueRequest{HotelID: 1, Payload: []byte(`{"transactionType":`)}, ota.ErrMalformedPayload},
			{"unknown transaction", commands.EnqueueRequest{HotelID: 1, Payload: payload("Refund", "RK-1", "TWN")}, ota.ErrUnknownTransaction},
			{"missing ref", commands.EnqueueRequest{HotelID: 1, Payload: payload("NewBookReport", " ", "TWN")}, ota.ErrMissingBookingRef},
		}
		for _, tc := range cases {
			_, err := s.queue.Enqueue(s.ctx, tc.req)
			s.True(errs.Is(err, tc.errIs), "%s: got %v", tc.name, err)
			s.True(commands.IsPermanent(err), tc.name)
		}
		s.Empty(s.store.QueueEntries())
	})
}

func (s *OTAQueueTestSuite) TestProcessPending() {
	s.Run("entries applied in arrival order", func() {
		s.SetupTest()
		created := s.enqueue("NewBookReport", "RK-1", "TWN")
		cancelled := s.enqueue("CancellationReport", "RK-1", "TWN")

		stats, err := s.queue.ProcessPending(s.ctx)
		s.Require().NoError(err)

		s.Equal(commands.ProcessStats{Claimed: 2, Succeeded: 2}, stats)
		s.Equal(shared.QueueSucceeded, s.entry(created).Status)
		s.Equal(shared.QueueSucceeded, s.entry(cancelled).Status)
		s.Require().Equal(1, s.store.ReservationCount())
		s.Equal(0, len(s.store.ActiveNights(s.onlyReservation())))
	})

	s.Run("failing entry is marked and the rest continue", func() {
		s.SetupTest()
		orphan := s.enqueue("ModificationReport", "RK-404", "TWN")
		unmapped := s.enqueue("NewBookReport", "RK-2", "SUITE")
		ok := s.enqueue("NewBookReport", "RK-3", "TWN")

		stats, err := s.queue.ProcessPending(s.ctx)
		s.Require().NoError(err)

		s.Equal(commands.ProcessStats{Claimed: 3, Succeeded: 1, Failed: 2}, stats)
		for _, id := range []int64{orphan, unmapped} {
			e := s.entry(id)
			s.Equal(shared.QueueFailed, e.Status)
			s.Equal(1, e.Attempts)
			s.Require().NotNil(e.LastError)
			s.NotEmpty(*e.LastError)
		}
		s.Equal(shared.QueueSucceeded, s.entry(ok).Status)
		s.Equal(1, s.store.ReservationCount())
	})

	s.Run("at most one batch per call", func() {
		s.SetupTest()
		rec := commands.NewReconciler(s.store, s.store, nil, clock.NewMockClock(builder.BaseDate))
		s.queue = commands.NewOTAQueue(s.store, rec, nil, clock.NewMockClock(builder.BaseDate), 1)
		s.enqueue("NewBookReport", "RK-1", "TWN")
		s.enqueue("NewBookReport", "RK-2", "TWN")

		stats, err := s.queue.ProcessPending(s.ctx)
		s.Require().NoError(err)
		s.Equal(1, stats.Claimed)

		stats, err = s.queue.ProcessPending(s.ctx)
		s.Require().NoError(err)
		s.Equal(1, stats.Claimed)

		stats, err = s.queue.ProcessPending(s.ctx)
		s.Require().NoError(err)
		s.Zero(stats.Claimed)
		s.Equal(2, s.store.ReservationCount())
	})

	s.Run("cancelled context stops before claiming", func() {
		s.SetupTest()
		s.enqueue("NewBookReport", "RK-1", "TWN")
		ctx, cancel := context.WithCancel(s.ctx)
		cancel()

		stats, err := s.queue.ProcessPending(ctx)

		s.ErrorIs(err, context.Canceled)
		s.Zero(stats.Claimed)
		s.Equal(0, s.store.ReservationCount())
	})
}

func (s *OTAQueueTestSuite) TestReplay() {
	s.Run("failed entry succeeds once its cause is fixed", func() {
		s.SetupTest()
		id := s.enqueue("NewBookReport", "RK-1", "SUITE")
		_, err := s.queue.ProcessPending(s.ctx)
		s.Require().NoError(err)
		s.Require().Equal(shared.QueueFailed, s.entry(id).Status)

		s.store.MapRoomType("SUITE", 20)
		s.Require().NoError(s.queue.Replay(s.ctx, id))
		s.Equal(shared.QueuePending, s.entry(id).Status)

		stats, err := s.queue.ProcessPending(s.ctx)
		s.Require().NoError(err)
		s.Equal(1, stats.Succeeded)
		s.Equal(shared.QueueSucceeded, s.entry(id).Status)
		s.Equal([]int32{201}, reservation.RoomIDs(s.store.Nights(s.onlyReservation())))
	})

	s.Run("only failed entries", func() {
		s.SetupTest()
		pending := s.enqueue("NewBookReport", "RK-1", "TWN")

		err := s.queue.Replay(s.ctx, pending)
		s.True(errs.Is(err, commands.ErrEntryNotFailed))
		s.True(errs.Is(err, errs.ErrConflict))

		err = s.queue.Replay(s.ctx, 999)
		s.True(errs.Is(err, errs.ErrNotFound))
	})
}

func (s *OTAQueueTestSuite) onlyReservation() uuid.UUID {
	for _, e := range s.store.QueueEntries() {
		if e.Status != shared.QueueSucceeded {
			continue
		}
		res, err := s.store.CommandReads().ReservationByOTARef(s.ctx, e.HotelID, e.BookingRef)
		s.Require().NoError(err)
		return res.ID()
	}
	s.FailNow("no applied reservation")
	return uuid.Nil
}
