package commands

import (
	"context"
	"log/slog"
	"time"

	"hotel-pms/internal/domain/allocation"
	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/domain/room"
	"hotel-pms/internal/pkg/clock"
	"hotel-pms/internal/pkg/errs"
	"hotel-pms/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrClientRequired   = errs.NewKind("responsible client is required", errs.ErrValidation)
	ErrInvalidMode      = errs.NewKind("invalid allocation mode", errs.ErrValidation)
	ErrRoomRequired     = errs.NewKind("room id is required for specific-room allocation", errs.ErrValidation)
	ErrComboPeopleDiffs = errs.NewKind("party size does not match the room type requests", errs.ErrValidation)
	ErrRoomCapacity     = errs.NewKind("room capacity exceeded", errs.ErrInsufficientCapacity)
)

type reservationCommandsImpl struct {
	uow      shared.UnitOfWork
	factory  *reservation.Factory
	clock    clock.Clock
	notifier *changeNotifier
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	factory *reservation.Factory,
	publisher shared.SyncPublisher,
	clock clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:      uow,
		factory:  factory,
		clock:    clock,
		notifier: newChangeNotifier(publisher, clock),
	}
}

func (r *reservationCommandsImpl) CreateHold(ctx context.Context, req CreateHoldRequest, actor *uuid.UUID) (*HoldResult, error) {
	stay, comment, err := validateHold(&req)
	if err != nil {
		return nil, errs.Normalize(err)
	}

	result := &HoldResult{}
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		clientID, err := resolveClient(ctx, tx, req)
		if err != nil {
			return err
		}

		res, err := r.factory.CreateHold(req.HotelID, clientID, stay, req.People, req.Type, comment, actor)
		if err != nil {
			return err
		}
		if err := tx.Reservations().Create(ctx, tx.DB(), res); err != nil {
			return err
		}

		rooms, err := tx.Reads().AvailableRooms(ctx, req.HotelID, stay, req.Selector.Filter)
		if err != nil {
			return err
		}
		plan, err := allocate(rooms, req)
		if err != nil {
			return err
		}

		details := make([]reservation.NightDetail, 0, len(plan)*stay.NumNights())
		for _, a := range plan {
			for _, night := range stay.Nights() {
				details = append(details, reservation.NewNightDetail(req.HotelID, res.ID(), a.RoomID, night, a.Occupants))
			}
		}
		if err := tx.Details().CreateBatch(ctx, tx.DB(), details); err != nil {
			return err
		}

		result.ReservationID = res.ID()
		result.ClientID = clientID
		result.Assignments = plan
		return nil
	})
	if err != nil {
		return nil, errs.Normalize(err)
	}

	slog.Info("hold created",
		"reservation_id", result.ReservationID.String(),
		"hotel_id", req.HotelID,
		"rooms", len(result.Assignments),
		"people", req.People)
	r.notifier.reservationsChanged(req.HotelID, result.ReservationID)
	return result, nil
}

func validateHold(req *CreateHoldRequest) (reservation.Stay, reservation.Comment, error) {
	stay, err := reservation.ParseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return reservation.Stay{}, reservation.Comment{}, err
	}
	comment, err := reservation.NewComment(req.Comment)
	if err != nil {
		return reservation.Stay{}, reservation.Comment{}, err
	}
	if req.ClientID == nil && req.Client == nil {
		return reservation.Stay{}, reservation.Comment{}, ErrClientRequired
	}
	if req.ClientID == nil {
		if err := req.Client.Validate(); err != nil {
			return reservation.Stay{}, reservation.Comment{}, err
		}
	}

	sel := req.Selector
	if sel.Mode == "" {
		sel.Mode = allocation.ModeBestFitSingle
	}
	if !sel.Mode.IsValid() {
		return reservation.Stay{}, reservation.Comment{}, errs.Kindf(ErrInvalidMode, "invalid allocation mode %q", sel.Mode)
	}
	switch sel.Mode {
	case allocation.ModeComboByType:
		if len(sel.RoomTypes) == 0 {
			return reservation.Stay{}, reservation.Comment{}, allocation.ErrNoRequests
		}
		total := 0
		for _, t := range sel.RoomTypes {
			total += t.People
		}
		if req.People == 0 {
			req.People = total
		}
		if req.People != total {
			return reservation.Stay{}, reservation.Comment{}, errs.Kindf(ErrComboPeopleDiffs, "party of %d, room types request %d", req.People, total)
		}
	case allocation.ModeSpecificRoom:
		if sel.RoomID == nil {
			return reservation.Stay{}, reservation.Comment{}, ErrRoomRequired
		}
	}
	if req.People <= 0 {
		return reservation.Stay{}, reservation.Comment{}, reservation.ErrNoPeople
	}
	req.Selector = sel
	return stay, comment, nil
}

func resolveClient(ctx context.Context, tx shared.Tx, req CreateHoldRequest) (uuid.UUID, error) {
	if req.ClientID != nil {
		return *req.ClientID, nil
	}
	return tx.Clients().FindOrCreate(ctx, tx.DB(), *req.Client)
}

func allocate(rooms []*room.Room, req CreateHoldRequest) (allocation.Plan, error) {
	switch req.Selector.Mode {
	case allocation.ModeComboByType:
		return allocation.ComboByType(rooms, req.Selector.RoomTypes)
	case allocation.ModeSpecificRoom:
		return allocation.Specific(rooms, *req.Selector.RoomID, req.People)
	default:
		return allocation.BestFitSingle(rooms, req.People)
	}
}

func (r *reservationCommandsImpl) ChangeStatus(ctx context.Context, req ChangeStatusRequest, actor *uuid.UUID) (reservation.Status, error) {
	if !req.Status.IsTarget() {
		return "", errs.Normalize(errs.Kindf(reservation.ErrInvalidStatus, "invalid target status %q", req.Status))
	}

	var (
		next    reservation.Status
		hotelID int32
	)
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reads().ReservationByID(ctx, req.ReservationID)
		if err != nil {
			return err
		}
		hotelID = res.HotelID()

		if req.Status == reservation.StatusRecovered {
			if err := ensureRecoverable(ctx, tx, res); err != nil {
				return err
			}
		}

		next, err = res.Transition(req.Status, actor, r.clock.Now())
		if err != nil {
			return err
		}

		db := tx.DB()
		switch req.Status {
		case reservation.StatusCancelled:
			token := uuid.New()
			if _, err := tx.Details().CancelActive(ctx, db, res.ID(), token, req.FullFee); err != nil {
				return err
			}
			if err := tx.Parking().CancelByReservation(ctx, db, res.ID(), token); err != nil {
				return err
			}
		case reservation.StatusRecovered:
			if err := tx.Details().Reinstate(ctx, db, res.ID()); err != nil {
				return err
			}
			if err := tx.Parking().ReinstateByReservation(ctx, db, res.ID()); err != nil {
				return err
			}
		case reservation.StatusConfirmed:
			if err := tx.Details().Reinstate(ctx, db, res.ID()); err != nil {
				return err
			}
		case reservation.StatusProvisory:
			if err := tx.Details().SetBillable(ctx, db, res.ID(), false); err != nil {
				return err
			}
		}

		return tx.Reservations().Update(ctx, db, res)
	})
	if err != nil {
		return "", errs.Normalize(err)
	}

	slog.Info("reservation status changed",
		"reservation_id", req.ReservationID.String(),
		"status", next.String(),
		"full_fee", req.FullFee)
	r.notifier.reservationsChanged(hotelID, req.ReservationID)
	return next, nil
}

// ensureRecoverable refuses recovery when another reservation took one of
// the cancelled nights' rooms in the meantime.
func ensureRecoverable(ctx context.Context, tx shared.Tx, res *reservation.Reservation) error {
	details, err := tx.Reads().DetailsByReservation(ctx, res.ID())
	if err != nil {
		return err
	}
	own := make([]uuid.UUID, len(details))
	for i, d := range details {
		own[i] = d.ID
	}
	for _, roomID := range reservation.RoomIDs(details) {
		var dates []time.Time
		for _, d := range reservation.DetailsOfRoom(details, roomID) {
			dates = append(dates, d.Date)
		}
		conflicts, err := tx.Reads().RoomConflicts(ctx, res.HotelID(), roomID, dates, own)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return errs.Kindf(reservation.ErrRoomOccupied, "room %d is booked on %s by another reservation", roomID, reservation.FormatDate(conflicts[0]))
		}
	}
	return nil
}

func (r *reservationCommandsImpl) DeleteHold(ctx context.Context, reservationID uuid.UUID) error {
	var hotelID int32
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reads().ReservationByID(ctx, reservationID)
		if err != nil {
			return err
		}
		if !res.CanHardDelete() {
			return errs.Kindf(reservation.ErrNotDeletable, "reservation in status %s of type %s cannot be deleted", res.Status(), res.Type())
		}
		hotelID = res.HotelID()

		if err := tx.Payments().DeleteByReservation(ctx, tx.DB(), reservationID); err != nil {
			return err
		}
		if err := tx.Details().DeleteByReservation(ctx, tx.DB(), reservationID); err != nil {
			return err
		}
		return tx.Reservations().Delete(ctx, tx.DB(), reservationID)
	})
	if err != nil {
		return errs.Normalize(err)
	}

	slog.Info("hold deleted", "reservation_id", reservationID.String())
	r.notifier.reservationsChanged(hotelID, reservationID)
	return nil
}
