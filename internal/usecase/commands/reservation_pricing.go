package commands

import (
	"context"
	"log/slog"
	"strings"

	"hotel-pms/internal/domain/money"
	"hotel-pms/internal/domain/rate"
	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/pkg/errs"
	"hotel-pms/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidAddon = errs.NewKind("invalid add-on", errs.ErrValidation)

func (r *reservationCommandsImpl) AttachPlan(ctx context.Context, req AttachPlanRequest, actor *uuid.UUID) error {
	if req.Plan.IsZero() {
		return errs.Normalize(errs.Kindf(rate.ErrPlanNotFound, "a plan reference is required"))
	}
	if err := validateAddons(req.Addons); err != nil {
		return errs.Normalize(err)
	}
	for _, g := range req.Guests {
		if err := g.Validate(); err != nil {
			return errs.Normalize(err)
		}
	}

	var (
		hotelID       int32
		reservationID uuid.UUID
	)
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := tx.Reads().DetailByID(ctx, req.DetailID)
		if err != nil {
			return err
		}
		res, err := tx.Reads().ReservationByID(ctx, d.ReservationID)
		if err != nil {
			return err
		}
		if res.IsCancelled() {
			return errs.Kindf(reservation.ErrReservationCancelled, "reservation %s is cancelled", res.ID())
		}
		hotelID, reservationID = res.HotelID(), res.ID()

		p := newPricer(tx)
		plan, err := p.resolver.Plan(ctx, d.HotelID, req.Plan)
		if err != nil {
			return err
		}
		d.ApplyPlan(plan)
		if err := p.reprice(ctx, d); err != nil {
			return err
		}

		if err := attachAddons(ctx, tx, p, *d, plan, req); err != nil {
			return err
		}
		if err := attachGuests(ctx, tx, *d, req); err != nil {
			return err
		}

		res.MarkUpdated(actor, r.clock.Now())
		return tx.Reservations().Update(ctx, tx.DB(), res)
	})
	if err != nil {
		return errs.Normalize(err)
	}

	slog.Info("plan attached", "detail_id", req.DetailID.String(), "plan", req.Plan.String())
	r.notifier.reservationsChanged(hotelID, reservationID)
	return nil
}

func attachAddons(ctx context.Context, tx shared.Tx, p *pricer, d reservation.NightDetail, plan *rate.Plan, req AttachPlanRequest) error {
	if req.Addons == nil {
		templates, err := p.resolver.PlanAddons(ctx, d.HotelID, plan.Ref)
		if err != nil {
			return err
		}
		addons := make([]reservation.Addon, len(templates))
		for i, t := range templates {
			addons[i] = reservation.AddonFromTemplate(d, t, d.People)
		}
		return tx.Addons().ReplaceForDetail(ctx, tx.DB(), d.ID, addons)
	}

	addons := make([]reservation.Addon, len(req.Addons))
	for i, in := range req.Addons {
		addons[i] = reservation.Addon{
			ID:       uuid.New(),
			HotelID:  d.HotelID,
			DetailID: d.ID,
			GlobalID: in.GlobalID,
			HotelRef: in.HotelRef,
			Name:     strings.TrimSpace(in.Name),
			Quantity: in.Quantity,
			Price:    money.FromFloat(in.Price),
			Tax:      in.Tax,
		}
	}
	if req.ReplaceAddons {
		return tx.Addons().ReplaceForDetail(ctx, tx.DB(), d.ID, addons)
	}
	for _, a := range addons {
		if err := tx.Addons().Upsert(ctx, tx.DB(), a); err != nil {
			return err
		}
	}
	return nil
}

func attachGuests(ctx context.Context, tx shared.Tx, d reservation.NightDetail, req AttachPlanRequest) error {
	if len(req.GuestIDs) == 0 && len(req.Guests) == 0 {
		return nil
	}
	ids := append([]uuid.UUID(nil), req.GuestIDs...)
	for _, attrs := range req.Guests {
		id, err := tx.Clients().FindOrCreate(ctx, tx.DB(), attrs)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}
	return tx.Guests().ReplaceForDetail(ctx, tx.DB(), d.HotelID, d.ID, dedupe(ids))
}

func validateAddons(addons []AddonInput) error {
	for _, a := range addons {
		switch {
		case strings.TrimSpace(a.Name) == "":
			return errs.Kindf(ErrInvalidAddon, "add-on name is required")
		case a.Quantity <= 0:
			return errs.Kindf(ErrInvalidAddon, "add-on %q quantity must be positive", a.Name)
		case a.Price < 0:
			return errs.Kindf(ErrInvalidAddon, "add-on %q price cannot be negative", a.Name)
		}
	}
	return nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
