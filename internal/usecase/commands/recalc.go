package commands

import (
	"context"
	"log/slog"

	"hotel-pms/internal/domain/rate"
	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/pkg/errs"
	"hotel-pms/internal/usecase/shared"

	"github.com/google/uuid"
)

// pricer prices nights against their plans inside one unit of work. Plan
// lookups are memoized for its lifetime.
type pricer struct {
	tx       shared.Tx
	resolver *rate.Resolver
}

func newPricer(tx shared.Tx) *pricer {
	return &pricer{tx: tx, resolver: rate.NewResolver(tx.Reads())}
}

// reprice recomputes the night's price and replaces its rate rows. Nights
// without a plan keep their price.
func (p *pricer) reprice(ctx context.Context, d *reservation.NightDetail) error {
	if d.Plan.IsZero() {
		return nil
	}
	b, err := p.resolver.RatesFor(ctx, d.HotelID, d.Plan, d.Date)
	if err != nil {
		return err
	}
	d.Price = b.Total
	if err := p.tx.Details().Update(ctx, p.tx.DB(), *d); err != nil {
		return err
	}
	return p.tx.Rates().ReplaceForDetail(ctx, p.tx.DB(), d.HotelID, d.ID, b.Lines)
}

func (p *pricer) repriceActive(ctx context.Context, details []reservation.NightDetail) error {
	for i := range details {
		if !details[i].IsActive() {
			continue
		}
		if err := p.reprice(ctx, &details[i]); err != nil {
			return err
		}
	}
	return nil
}

// repriceReservation reprices every active night unless an external system
// dictates the reservation's prices.
func repriceReservation(ctx context.Context, tx shared.Tx, res *reservation.Reservation, details []reservation.NightDetail) error {
	if res.Type() == reservation.TypeOTA {
		return nil
	}
	return newPricer(tx).repriceActive(ctx, details)
}

func (r *reservationCommandsImpl) Recalculate(ctx context.Context, reservationID uuid.UUID) error {
	var hotelID int32
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reads().ReservationByID(ctx, reservationID)
		if err != nil {
			return err
		}
		hotelID = res.HotelID()
		if res.Type() == reservation.TypeOTA {
			slog.Info("recalculation skipped for OTA reservation", "reservation_id", reservationID.String())
			return nil
		}

		details, err := tx.Reads().DetailsByReservation(ctx, reservationID)
		if err != nil {
			return err
		}
		if err := repriceReservation(ctx, tx, res, details); err != nil {
			return errs.Wrap(err, "recalculate reservation")
		}
		return nil
	})
	if err != nil {
		return errs.Normalize(err)
	}
	r.notifier.reservationsChanged(hotelID, reservationID)
	return nil
}
