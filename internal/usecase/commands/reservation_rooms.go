package commands

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"hotel-pms/internal/domain/rate"
	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/pkg/errs"
	"hotel-pms/internal/usecase/shared"

	"github.com/google/uuid"
)

// roomMove relocates one room's nights onto roomID.
type roomMove struct {
	details []reservation.NightDetail
	roomID  int32
}

func (r *reservationCommandsImpl) MoveRoom(ctx context.Context, req MoveRoomRequest, actor *uuid.UUID) (*MoveRoomResult, error) {
	stay, err := reservation.ParseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, errs.Normalize(err)
	}

	result := &MoveRoomResult{ReservationID: req.ReservationID}
	var hotelID int32
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, details, err := loadEditable(ctx, tx, req.ReservationID)
		if err != nil {
			return err
		}
		hotelID = res.HotelID()

		active := reservation.ActiveDetails(details)
		moving := reservation.DetailsOfRoom(active, req.FromRoomID)
		if len(moving) == 0 {
			return errs.Kindf(reservation.ErrRoomNotInReservation, "room %d has no active nights in reservation %s", req.FromRoomID, res.ID())
		}

		target, err := tx.Reads().RoomByID(ctx, res.HotelID(), req.ToRoomID)
		if err != nil {
			return err
		}
		if occupants := maxPeople(moving); !target.Fits(occupants) {
			return errs.Kindf(ErrRoomCapacity, "room %s holds %d, %d people are moving", target.Number(), target.Capacity(), occupants)
		}

		current, _ := reservation.StayOf(detailDates(moving))
		datesChange := !stay.Equal(current)
		roomIDs := reservation.RoomIDs(active)
		now := r.clock.Now()

		moves := []roomMove{{details: moving, roomID: req.ToRoomID}}
		owner := res
		switch {
		case req.Solo && datesChange && len(roomIDs) > 1:
			split, err := res.Split(stay, maxPeople(moving), actor, now)
			if err != nil {
				return err
			}
			if err := tx.Reservations().Create(ctx, tx.DB(), split); err != nil {
				return err
			}
			owner = split
			splitID := split.ID()
			result.SplitReservationID = &splitID
		case datesChange && !req.Solo:
			for _, id := range roomIDs {
				if id != req.FromRoomID {
					moves = append(moves, roomMove{details: reservation.DetailsOfRoom(active, id), roomID: id})
				}
			}
		}

		var exclude []uuid.UUID
		for _, m := range moves {
			for _, d := range m.details {
				exclude = append(exclude, d.ID)
			}
		}
		for _, m := range moves {
			conflicts, err := tx.Reads().RoomConflicts(ctx, res.HotelID(), m.roomID, stay.Nights(), exclude)
			if err != nil {
				return err
			}
			if len(conflicts) > 0 {
				return errs.Kindf(reservation.ErrRoomOccupied, "room %d is booked on %s", m.roomID, reservation.FormatDate(conflicts[0]))
			}
		}

		var relocated []reservation.NightDetail
		for _, m := range moves {
			out, err := relocate(ctx, tx, m.details, m.roomID, stay, owner.ID())
			if err != nil {
				return err
			}
			relocated = append(relocated, out...)
		}

		if err := rescheduleFromNights(ctx, tx, res, actor, now); err != nil {
			return err
		}
		if err := tx.Reservations().Update(ctx, tx.DB(), res); err != nil {
			return err
		}
		return repriceReservation(ctx, tx, owner, relocated)
	})
	if err != nil {
		return nil, errs.Normalize(err)
	}

	slog.Info("room moved",
		"reservation_id", req.ReservationID.String(),
		"from_room", req.FromRoomID,
		"to_room", req.ToRoomID,
		"stay", stay.String(),
		"split", result.SplitReservationID != nil)
	ids := []uuid.UUID{req.ReservationID}
	if result.SplitReservationID != nil {
		ids = append(ids, *result.SplitReservationID)
	}
	r.notifier.reservationsChanged(hotelID, ids...)
	return result, nil
}

// relocate moves a room's nights to roomID over stay under reservationID.
// A same-length contiguous stay is shifted in place; anything else is
// rebuilt from the earliest night.
func relocate(ctx context.Context, tx shared.Tx, group []reservation.NightDetail, roomID int32, stay reservation.Stay, reservationID uuid.UUID) ([]reservation.NightDetail, error) {
	sorted := append([]reservation.NightDetail(nil), group...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	current, _ := reservation.StayOf(detailDates(sorted))
	if current.NumNights() == stay.NumNights() && len(sorted) == stay.NumNights() {
		return shiftNights(ctx, tx, sorted, roomID, current.ShiftDays(stay), reservationID)
	}
	return rebuildNights(ctx, tx, sorted, roomID, stay, reservationID)
}

// shiftNights expects ascending dates. Rows are updated in the direction of
// travel so no intermediate state repeats a (reservation, room, date).
func shiftNights(ctx context.Context, tx shared.Tx, sorted []reservation.NightDetail, roomID int32, days int, reservationID uuid.UUID) ([]reservation.NightDetail, error) {
	if days > 0 {
		for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
			sorted[i], sorted[j] = sorted[j], sorted[i]
		}
	}
	for i := range sorted {
		d := &sorted[i]
		d.Date = d.Date.AddDate(0, 0, days)
		d.RoomID = roomID
		d.ReservationID = reservationID
		if err := tx.Details().Update(ctx, tx.DB(), *d); err != nil {
			return nil, err
		}
	}
	return sorted, nil
}

func rebuildNights(ctx context.Context, tx shared.Tx, sorted []reservation.NightDetail, roomID int32, stay reservation.Stay, reservationID uuid.UUID) ([]reservation.NightDetail, error) {
	template := sorted[0]
	guests, err := tx.Reads().GuestsByDetail(ctx, template.ID)
	if err != nil {
		return nil, err
	}
	addons, err := tx.Reads().AddonsByDetail(ctx, template.ID)
	if err != nil {
		return nil, err
	}

	old := make([]uuid.UUID, len(sorted))
	for i, d := range sorted {
		old[i] = d.ID
	}
	parking, err := tx.Parking().ListByDetails(ctx, tx.DB(), old)
	if err != nil {
		return nil, err
	}
	if err := tx.Details().DeleteByIDs(ctx, tx.DB(), old); err != nil {
		return nil, err
	}

	nights := make([]reservation.NightDetail, 0, stay.NumNights())
	for _, date := range stay.Nights() {
		d := reservation.NewNightDetail(template.HotelID, reservationID, roomID, date, template.People)
		d.Plan = template.Plan
		d.PlanName = template.PlanName
		d.PlanType = template.PlanType
		d.Price = template.Price
		d.Billable = template.Billable
		nights = append(nights, d)
	}
	if err := tx.Details().CreateBatch(ctx, tx.DB(), nights); err != nil {
		return nil, err
	}

	for _, d := range nights {
		if err := tx.Rates().ReplaceForDetail(ctx, tx.DB(), d.HotelID, d.ID, rate.Flat(d.Price).Lines); err != nil {
			return nil, err
		}
		if len(guests) > 0 {
			if err := tx.Guests().ReplaceForDetail(ctx, tx.DB(), d.HotelID, d.ID, guests); err != nil {
				return nil, err
			}
		}
		if len(addons) > 0 {
			if err := tx.Addons().ReplaceForDetail(ctx, tx.DB(), d.ID, copyAddons(addons, d)); err != nil {
				return nil, err
			}
		}
	}

	moved, dropped := reservation.MoveParking(parking, nights)
	for _, p := range dropped {
		slog.Warn("parking released, night no longer booked",
			"reservation_id", reservationID.String(),
			"spot_id", p.SpotID,
			"date", reservation.FormatDate(p.Date))
	}
	if err := tx.Parking().CreateBatch(ctx, tx.DB(), moved); err != nil {
		return nil, err
	}
	return nights, nil
}

func copyAddons(addons []reservation.Addon, d reservation.NightDetail) []reservation.Addon {
	out := make([]reservation.Addon, len(addons))
	for i, a := range addons {
		a.ID = uuid.New()
		a.DetailID = d.ID
		a.HotelID = d.HotelID
		out[i] = a
	}
	return out
}

func (r *reservationCommandsImpl) AddRoom(ctx context.Context, req AddRoomRequest, actor *uuid.UUID) error {
	if req.People <= 0 {
		return errs.Normalize(reservation.ErrNoPeople)
	}

	var hotelID int32
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, details, err := loadEditable(ctx, tx, req.ReservationID)
		if err != nil {
			return err
		}
		hotelID = res.HotelID()

		rm, err := tx.Reads().RoomByID(ctx, res.HotelID(), req.RoomID)
		if err != nil {
			return err
		}

		active := reservation.ActiveDetails(details)
		touched := reservation.DetailsOfRoom(active, req.RoomID)
		if len(touched) > 0 {
			for i := range touched {
				touched[i].People += req.People
				if !rm.Fits(touched[i].People) {
					return errs.Kindf(ErrRoomCapacity, "room %s holds %d, would hold %d", rm.Number(), rm.Capacity(), touched[i].People)
				}
				if err := tx.Details().Update(ctx, tx.DB(), touched[i]); err != nil {
					return err
				}
			}
		} else {
			if !rm.Fits(req.People) {
				return errs.Kindf(ErrRoomCapacity, "room %s holds %d, %d requested", rm.Number(), rm.Capacity(), req.People)
			}
			nights := res.Stay().Nights()
			conflicts, err := tx.Reads().RoomConflicts(ctx, res.HotelID(), req.RoomID, nights, nil)
			if err != nil {
				return err
			}
			if len(conflicts) > 0 {
				return errs.Kindf(reservation.ErrRoomOccupied, "room %s is booked on %s", rm.Number(), reservation.FormatDate(conflicts[0]))
			}
			touched = newRoomNights(res, active, req.RoomID, req.People)
			if err := tx.Details().CreateBatch(ctx, tx.DB(), touched); err != nil {
				return err
			}
		}

		if err := res.AdjustPeople(req.People, actor, r.clock.Now()); err != nil {
			return err
		}
		if err := tx.Reservations().Update(ctx, tx.DB(), res); err != nil {
			return err
		}
		return repriceReservation(ctx, tx, res, touched)
	})
	if err != nil {
		return errs.Normalize(err)
	}

	slog.Info("room added", "reservation_id", req.ReservationID.String(), "room_id", req.RoomID, "people", req.People)
	r.notifier.reservationsChanged(hotelID, req.ReservationID)
	return nil
}

// newRoomNights books roomID for the whole stay, copying plan and billing
// state from an existing night when there is one.
func newRoomNights(res *reservation.Reservation, active []reservation.NightDetail, roomID int32, people int) []reservation.NightDetail {
	nights := make([]reservation.NightDetail, 0, res.Stay().NumNights())
	for _, date := range res.Stay().Nights() {
		d := reservation.NewNightDetail(res.HotelID(), res.ID(), roomID, date, people)
		if len(active) > 0 {
			t := active[0]
			d.Plan, d.PlanName, d.PlanType = t.Plan, t.PlanName, t.PlanType
			d.Billable = t.Billable
		} else {
			d.Billable = res.Status() == reservation.StatusConfirmed
		}
		nights = append(nights, d)
	}
	return nights
}

func (r *reservationCommandsImpl) RemoveRoom(ctx context.Context, req RemoveRoomRequest, actor *uuid.UUID) error {
	if req.People < 0 {
		return errs.Normalize(reservation.ErrNoPeople)
	}

	var hotelID int32
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, details, err := loadEditable(ctx, tx, req.ReservationID)
		if err != nil {
			return err
		}
		hotelID = res.HotelID()
		now := r.clock.Now()

		active := reservation.ActiveDetails(details)
		existing := reservation.DetailsOfRoom(active, req.RoomID)
		if len(existing) == 0 {
			return errs.Kindf(reservation.ErrRoomNotInReservation, "room %d has no active nights in reservation %s", req.RoomID, res.ID())
		}
		occupants := maxPeople(existing)

		if req.People > 0 && req.People < occupants {
			if err := res.AdjustPeople(-req.People, actor, now); err != nil {
				return err
			}
			for i := range existing {
				existing[i].People -= req.People
				if existing[i].People <= 0 {
					return errs.Kindf(reservation.ErrPeopleNotPositive, "night %s of room %d would hold %d people",
						reservation.FormatDate(existing[i].Date), req.RoomID, existing[i].People)
				}
				if err := tx.Details().Update(ctx, tx.DB(), existing[i]); err != nil {
					return err
				}
			}
			if err := tx.Reservations().Update(ctx, tx.DB(), res); err != nil {
				return err
			}
			return repriceReservation(ctx, tx, res, existing)
		}

		if err := res.AdjustPeople(-occupants, actor, now); err != nil {
			return err
		}
		ids := make([]uuid.UUID, len(existing))
		for i, d := range existing {
			ids[i] = d.ID
		}
		if err := tx.Details().DeleteByIDs(ctx, tx.DB(), ids); err != nil {
			return err
		}
		if err := rescheduleFromNights(ctx, tx, res, actor, now); err != nil {
			return err
		}
		return tx.Reservations().Update(ctx, tx.DB(), res)
	})
	if err != nil {
		return errs.Normalize(err)
	}

	slog.Info("room removed", "reservation_id", req.ReservationID.String(), "room_id", req.RoomID, "people", req.People)
	r.notifier.reservationsChanged(hotelID, req.ReservationID)
	return nil
}

// loadEditable returns a reservation whose rooms may change, with all its nights.
func loadEditable(ctx context.Context, tx shared.Tx, id uuid.UUID) (*reservation.Reservation, []reservation.NightDetail, error) {
	res, err := tx.Reads().ReservationByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if res.IsCancelled() {
		return nil, nil, errs.Kindf(reservation.ErrReservationCancelled, "reservation %s is cancelled", id)
	}
	details, err := tx.Reads().DetailsByReservation(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return res, details, nil
}

// rescheduleFromNights fits the reservation's stay to its remaining active nights.
func rescheduleFromNights(ctx context.Context, tx shared.Tx, res *reservation.Reservation, actor *uuid.UUID, now time.Time) error {
	details, err := tx.Reads().DetailsByReservation(ctx, res.ID())
	if err != nil {
		return err
	}
	if stay, ok := reservation.StayOf(detailDates(reservation.ActiveDetails(details))); ok {
		res.Reschedule(stay, actor, now)
	}
	return nil
}

func maxPeople(details []reservation.NightDetail) int {
	m := 0
	for _, d := range details {
		m = max(m, d.People)
	}
	return m
}

func detailDates(details []reservation.NightDetail) []time.Time {
	dates := make([]time.Time, len(details))
	for i, d := range details {
		dates[i] = d.Date
	}
	return dates
}
