//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-pms/internal/domain/money"
	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/pkg/clock"
	"hotel-pms/internal/pkg/errs"
	"hotel-pms/internal/pkg/ptr"
	"hotel-pms/internal/usecase/commands"
	"hotel-pms/tests/common/builder"
	"hotel-pms/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	cashTypeID    int32 = 1
	invoiceTypeID int32 = 2
)

type PaymentCommandsTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *memstore.Store
	clock *clock.MockClock
	cmds  commands.PaymentCommands
	res   *reservation.Reservation
}

func (s *PaymentCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memstore.New().
		AddRooms(builder.Room(101, 10, 2)).
		AddPaymentType(reservation.PaymentType{ID: cashTypeID, HotelID: 1, Name: "Cash", Kind: reservation.PaymentCash}).
		AddPaymentType(reservation.PaymentType{ID: invoiceTypeID, HotelID: 1, Name: "Invoice", Kind: reservation.PaymentInvoice})
	s.clock = clock.NewMockClock(builder.BaseDate.Add(10 * time.Hour))
	s.cmds = commands.NewPaymentCommands(s.store, nil, s.clock)

	res, details := builder.NewReservationBuilder().WithStatus(reservation.StatusConfirmed).MustBuild(101, 2)
	s.store.Seed(res, details...)
	s.res = res
}

func TestPaymentCommandsSuite(t *testing.T) {
	suite.Run(t, new(PaymentCommandsTestSuite))
}

func (s *PaymentCommandsTestSuite) TestRecordPayment() {
	s.Run("cash payment defaults to today and the booker", func() {
		s.SetupTest()

		result, err := s.cmds.RecordPayment(s.ctx, commands.RecordPaymentRequest{
			ReservationID: s.res.ID(),
			RoomID:        ptr.Of(int32(101)),
			PaymentTypeID: cashTypeID,
			Amount:        5000,
			Comment:       "  front desk ",
		}, nil)
		s.Require().NoError(err)
		s.Nil(result.InvoiceID)

		payments := s.store.Payments(s.res.ID())
		s.Require().Len(payments, 1)
		p := payments[0]
		s.Equal(result.PaymentID, p.ID)
		s.Equal(builder.BaseDate, p.Date)
		s.Equal(s.res.ClientID(), p.ClientID)
		s.Equal(money.FromFloat(5000), p.Amount)
		s.Equal("front desk", p.Comment)
		s.Equal(0, s.store.InvoiceCount())
	})

	s.Run("invoice payments share one invoice", func() {
		s.SetupTest()
		req := commands.RecordPaymentRequest{
			ReservationID: s.res.ID(),
			Date:          "2030-04-11",
			PaymentTypeID: invoiceTypeID,
			Amount:        1000,
		}

		first, err := s.cmds.RecordPayment(s.ctx, req, nil)
		s.Require().NoError(err)
		second, err := s.cmds.RecordPayment(s.ctx, req, nil)
		s.Require().NoError(err)

		s.Require().NotNil(first.InvoiceID)
		s.Equal(*first.InvoiceID, *second.InvoiceID)
		s.Equal(1, s.store.InvoiceCount())
		s.Equal("2030-04-11", reservation.FormatDate(s.store.Payments(s.res.ID())[0].Date))
	})

	s.Run("explicit payer overrides the booker", func() {
		s.SetupTest()
		payer := uuid.New()

		_, err := s.cmds.RecordPayment(s.ctx, commands.RecordPaymentRequest{
			ReservationID: s.res.ID(), PaymentTypeID: cashTypeID, Amount: -200, ClientID: &payer,
		}, nil)
		s.Require().NoError(err)

		p := s.store.Payments(s.res.ID())[0]
		s.Equal(payer, p.ClientID)
		s.True(p.Amount.IsNegative())
	})

	s.Run("rejected input", func() {
		s.SetupTest()
		cases := []struct {
			name  string
			req   commands.RecordPaymentRequest
			errIs error
		}{
			{"zero amount", commands.RecordPaymentRequest{ReservationID: s.res.ID(), PaymentTypeID: cashTypeID}, commands.ErrZeroAmount},
			{"bad date", commands.RecordPaymentRequest{ReservationID: s.res.ID(), PaymentTypeID: cashTypeID, Amount: 1, Date: "11/04/2030"}, errs.ErrValidation},
			{"unknown payment type", commands.RecordPaymentRequest{ReservationID: s.res.ID(), PaymentTypeID: 99, Amount: 1}, errs.ErrNotFound},
			{"unknown reservation", commands.RecordPaymentRequest{ReservationID: uuid.New(), PaymentTypeID: cashTypeID, Amount: 1}, reservation.ErrReservationNotFound},
		}
		for _, tc := range cases {
			_, err := s.cmds.RecordPayment(s.ctx, tc.req, nil)
			s.True(errs.Is(err, tc.errIs), "%s: got %v", tc.name, err)
		}
		s.Empty(s.store.Payments(s.res.ID()))
	})
}

func (s *PaymentCommandsTestSuite) TestDeletePayment() {
	s.Run("invoice removed with its last payment", func() {
		s.SetupTest()
		req := commands.RecordPaymentRequest{ReservationID: s.res.ID(), PaymentTypeID: invoiceTypeID, Amount: 1000}
		first, err := s.cmds.RecordPayment(s.ctx, req, nil)
		s.Require().NoError(err)
		second, err := s.cmds.RecordPayment(s.ctx, req, nil)
		s.Require().NoError(err)

		s.Require().NoError(s.cmds.DeletePayment(s.ctx, first.PaymentID))
		s.Equal(1, s.store.InvoiceCount())

		s.Require().NoError(s.cmds.DeletePayment(s.ctx, second.PaymentID))
		s.Equal(0, s.store.InvoiceCount())
		s.Empty(s.store.Payments(s.res.ID()))
	})

	s.Run("unknown payment", func() {
		s.SetupTest()

		err := s.cmds.DeletePayment(s.ctx, uuid.New())

		s.True(errs.Is(err, reservation.ErrPaymentNotFound))
	})
}
