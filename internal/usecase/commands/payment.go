package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"hotel-pms/internal/domain/money"
	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/pkg/clock"
	"hotel-pms/internal/pkg/errs"
	"hotel-pms/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrZeroAmount = errs.NewKind("payment amount cannot be zero", errs.ErrValidation)

type paymentCommandsImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	notifier *changeNotifier
}

func NewPaymentCommands(uow shared.UnitOfWork, publisher shared.SyncPublisher, clock clock.Clock) PaymentCommands {
	return &paymentCommandsImpl{
		uow:      uow,
		clock:    clock,
		notifier: newChangeNotifier(publisher, clock),
	}
}

func (p *paymentCommandsImpl) RecordPayment(ctx context.Context, req RecordPaymentRequest, actor *uuid.UUID) (*PaymentResult, error) {
	amount := money.FromFloat(req.Amount)
	if amount.IsZero() {
		return nil, errs.Normalize(ErrZeroAmount)
	}
	date := reservation.Day(p.clock.Now())
	if strings.TrimSpace(req.Date) != "" {
		d, err := reservation.ParseDate(req.Date)
		if err != nil {
			return nil, errs.Normalize(err)
		}
		date = d
	}

	result := &PaymentResult{PaymentID: uuid.New()}
	var hotelID int32
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reads().ReservationByID(ctx, req.ReservationID)
		if err != nil {
			return err
		}
		hotelID = res.HotelID()

		pt, err := tx.Reads().PaymentType(ctx, res.HotelID(), req.PaymentTypeID)
		if err != nil {
			return err
		}

		payment := reservation.Payment{
			ID:            result.PaymentID,
			HotelID:       res.HotelID(),
			ReservationID: res.ID(),
			Date:          date,
			RoomID:        req.RoomID,
			ClientID:      res.ClientID(),
			PaymentTypeID: pt.ID,
			Amount:        amount,
			Comment:       strings.TrimSpace(req.Comment),
			CreatedBy:     actor,
		}
		if req.ClientID != nil {
			payment.ClientID = *req.ClientID
		}

		if pt.Kind == reservation.PaymentInvoice {
			invoiceID, err := tx.Invoices().FindOrCreate(ctx, tx.DB(), reservation.Invoice{
				HotelID:       res.HotelID(),
				ReservationID: res.ID(),
				ClientID:      payment.ClientID,
			})
			if err != nil {
				return err
			}
			payment.InvoiceID = &invoiceID
			result.InvoiceID = &invoiceID
		}
		return tx.Payments().Create(ctx, tx.DB(), payment)
	})
	if err != nil {
		return nil, errs.Normalize(err)
	}

	slog.Info("payment recorded",
		"payment_id", result.PaymentID.String(),
		"reservation_id", req.ReservationID.String(),
		"amount", amount.String(),
		"invoiced", result.InvoiceID != nil)
	p.notifier.reservationsChanged(hotelID, req.ReservationID)
	return result, nil
}

func (p *paymentCommandsImpl) DeletePayment(ctx context.Context, paymentID uuid.UUID) error {
	var payment *reservation.Payment
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		payment, err = tx.Reads().PaymentByID(ctx, paymentID)
		if err != nil {
			return err
		}
		if err := tx.Payments().Delete(ctx, tx.DB(), paymentID); err != nil {
			return err
		}
		if payment.InvoiceID == nil {
			return nil
		}

		remaining, err := tx.Payments().CountByInvoice(ctx, tx.DB(), *payment.InvoiceID)
		if err != nil {
			return err
		}
		if remaining == 0 {
			return tx.Invoices().Delete(ctx, tx.DB(), *payment.InvoiceID)
		}
		return nil
	})
	if err != nil {
		return errs.Normalize(err)
	}

	slog.Info("payment deleted", "payment_id", paymentID.String(), "reservation_id", payment.ReservationID.String())
	p.notifier.reservationsChanged(payment.HotelID, payment.ReservationID)
	return nil
}

// distributeAdjustment books amount as payments of one type across rooms in
// ascending room order, capped at each room's remaining balance. The
// undistributed remainder is returned.
func distributeAdjustment(
	ctx context.Context,
	tx shared.Tx,
	res *reservation.Reservation,
	pt *reservation.PaymentType,
	amount money.Money,
	balances map[int32]money.Money,
	date time.Time,
	comment string,
) (money.Money, error) {
	remaining := amount
	for _, roomID := range sortedRoomIDs(balances) {
		if !remaining.IsPositive() {
			break
		}
		share := money.Min(remaining, balances[roomID])
		if !share.IsPositive() {
			continue
		}
		room := roomID
		if err := tx.Payments().Create(ctx, tx.DB(), reservation.Payment{
			ID:            uuid.New(),
			HotelID:       res.HotelID(),
			ReservationID: res.ID(),
			Date:          date,
			RoomID:        &room,
			ClientID:      res.ClientID(),
			PaymentTypeID: pt.ID,
			Amount:        share,
			Comment:       comment,
		}); err != nil {
			return money.Zero(), err
		}
		balances[roomID] = balances[roomID].Sub(share)
		remaining = remaining.Sub(share)
	}
	return remaining, nil
}
