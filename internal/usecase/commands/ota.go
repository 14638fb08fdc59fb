package commands

import (
	"context"
	"log/slog"
	"sort"

	"hotel-pms/internal/domain/allocation"
	"hotel-pms/internal/domain/money"
	"hotel-pms/internal/domain/ota"
	"hotel-pms/internal/domain/rate"
	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/domain/room"
	"hotel-pms/internal/pkg/clock"
	"hotel-pms/internal/pkg/errs"
	"hotel-pms/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNoRoomForType = errs.NewKind("no free room of the booked type", errs.ErrInsufficientCapacity)

// Reconciler applies OTA booking notifications to reservations. Each entry
// point is keyed by the booking reference, runs as one unit of work and
// never leaves a partial booking behind.
type Reconciler struct {
	uow      shared.UnitOfWork
	masters  shared.MasterData
	clock    clock.Clock
	notifier *changeNotifier
}

func NewReconciler(uow shared.UnitOfWork, masters shared.MasterData, publisher shared.SyncPublisher, clock clock.Clock) *Reconciler {
	return &Reconciler{
		uow:      uow,
		masters:  masters,
		clock:    clock,
		notifier: newChangeNotifier(publisher, clock),
	}
}

// Using returns a Reconciler running inside uow. It does not announce
// changes; whoever commits uow does.
func (r *Reconciler) Using(uow shared.UnitOfWork) *Reconciler {
	return &Reconciler{
		uow:     uow,
		masters: r.masters,
		clock:   r.clock,
	}
}

// Apply dispatches a booking to Import, Edit or Cancel.
func (r *Reconciler) Apply(ctx context.Context, hotelID int32, b *ota.Booking) (uuid.UUID, error) {
	switch b.Transaction {
	case ota.TransactionNew:
		return r.Import(ctx, hotelID, b)
	case ota.TransactionEdit:
		return r.Edit(ctx, hotelID, b)
	case ota.TransactionCancel:
		return r.Cancel(ctx, hotelID, b)
	default:
		return uuid.Nil, errs.Normalize(errs.Kindf(ota.ErrUnknownTransaction, "unknown OTA transaction type %q", b.Transaction))
	}
}

// ApplyPayload decodes a raw payload and applies it.
func (r *Reconciler) ApplyPayload(ctx context.Context, hotelID int32, contentType string, payload []byte) (uuid.UUID, error) {
	b, err := ota.Decode(contentType, payload)
	if err != nil {
		return uuid.Nil, errs.Normalize(err)
	}
	return r.Apply(ctx, hotelID, b)
}

// Import creates the reservation of a new booking. A booking reference
// that already exists is rebuilt as an edit.
func (r *Reconciler) Import(ctx context.Context, hotelID int32, b *ota.Booking) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Reads().ReservationByOTARef(ctx, hotelID, b.BookingRef)
		switch {
		case err == nil:
			slog.Info("OTA booking already imported, rebuilding", "booking_ref", b.BookingRef, "reservation_id", existing.ID().String())
			id = existing.ID()
			return r.rebuild(ctx, tx, existing, b)
		case !errs.Is(err, errs.ErrNotFound):
			return err
		}

		clientID, err := tx.Clients().FindOrCreate(ctx, tx.DB(), b.Booker)
		if err != nil {
			return err
		}
		res, err := reservation.NewReservation(r.headerParams(hotelID, clientID, b), r.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Reservations().Create(ctx, tx.DB(), res); err != nil {
			return err
		}
		id = res.ID()
		return r.build(ctx, tx, res, b)
	})
	if err != nil {
		return uuid.Nil, errs.Normalize(err)
	}
	slog.Info("OTA booking imported", "hotel_id", hotelID, "booking_ref", b.BookingRef, "reservation_id", id.String())
	r.notifier.reservationsChanged(hotelID, id)
	return id, nil
}

// Edit deletes the reservation's nights and payments and rebuilds them from
// the booking, updating the client and header in place.
func (r *Reconciler) Edit(ctx context.Context, hotelID int32, b *ota.Booking) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := r.findByRef(ctx, tx, hotelID, b.BookingRef)
		if err != nil {
			return err
		}
		id = res.ID()
		return r.rebuild(ctx, tx, res, b)
	})
	if err != nil {
		return uuid.Nil, errs.Normalize(err)
	}
	slog.Info("OTA booking edited", "hotel_id", hotelID, "booking_ref", b.BookingRef, "reservation_id", id.String())
	r.notifier.reservationsChanged(hotelID, id)
	return id, nil
}

// Cancel cancels every night. A cancellation charge re-activates the
// latest night at the charged price so the fee stays invoiced.
func (r *Reconciler) Cancel(ctx context.Context, hotelID int32, b *ota.Booking) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := r.findByRef(ctx, tx, hotelID, b.BookingRef)
		if err != nil {
			return err
		}
		id = res.ID()

		if !res.IsCancelled() {
			if _, err := res.Transition(reservation.StatusCancelled, nil, r.clock.Now()); err != nil {
				return err
			}
		}
		token := uuid.New()
		if _, err := tx.Details().CancelActive(ctx, tx.DB(), res.ID(), token, false); err != nil {
			return err
		}
		if err := tx.Parking().CancelByReservation(ctx, tx.DB(), res.ID(), token); err != nil {
			return err
		}

		if b.CancellationCharge.IsPositive() {
			if err := chargeLatestNight(ctx, tx, res.ID(), b.CancellationCharge); err != nil {
				return err
			}
		}
		return tx.Reservations().Update(ctx, tx.DB(), res)
	})
	if err != nil {
		return uuid.Nil, errs.Normalize(err)
	}
	slog.Info("OTA booking cancelled",
		"hotel_id", hotelID,
		"booking_ref", b.BookingRef,
		"reservation_id", id.String(),
		"charge", b.CancellationCharge.String())
	r.notifier.reservationsChanged(hotelID, id)
	return id, nil
}

func chargeLatestNight(ctx context.Context, tx shared.Tx, reservationID uuid.UUID, charge money.Money) error {
	details, err := tx.Reads().DetailsByReservation(ctx, reservationID)
	if err != nil {
		return err
	}
	if len(details) == 0 {
		slog.Warn("cancellation charge not recorded, reservation has no nights",
			"reservation_id", reservationID.String(),
			"charge", charge.String())
		return nil
	}

	// Details are ordered by date then room.
	latest := details[len(details)-1]
	latest.Reinstate()
	latest.Price = charge
	if err := tx.Details().Update(ctx, tx.DB(), latest); err != nil {
		return err
	}
	if err := tx.Rates().ReplaceForDetail(ctx, tx.DB(), latest.HotelID, latest.ID, rate.Flat(charge).Lines); err != nil {
		return err
	}
	return tx.Addons().ReplaceForDetail(ctx, tx.DB(), latest.ID, nil)
}

func (r *Reconciler) findByRef(ctx context.Context, tx shared.Tx, hotelID int32, ref string) (*reservation.Reservation, error) {
	res, err := tx.Reads().ReservationByOTARef(ctx, hotelID, ref)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, errs.Kindf(reservation.ErrReservationNotFound, "no reservation for OTA booking %s", ref)
		}
		return nil, err
	}
	return res, nil
}

func (r *Reconciler) rebuild(ctx context.Context, tx shared.Tx, res *reservation.Reservation, b *ota.Booking) error {
	if err := tx.Details().DeleteByReservation(ctx, tx.DB(), res.ID()); err != nil {
		return err
	}
	if err := tx.Payments().DeleteByReservation(ctx, tx.DB(), res.ID()); err != nil {
		return err
	}
	if err := tx.Invoices().DeleteByReservation(ctx, tx.DB(), res.ID()); err != nil {
		return err
	}
	if err := tx.Clients().Update(ctx, tx.DB(), res.ClientID(), b.Booker); err != nil {
		return err
	}
	if err := res.Overwrite(r.headerParams(res.HotelID(), res.ClientID(), b), r.clock.Now()); err != nil {
		return err
	}
	if err := tx.Reservations().Update(ctx, tx.DB(), res); err != nil {
		return err
	}
	return r.build(ctx, tx, res, b)
}

func (r *Reconciler) headerParams(hotelID int32, clientID uuid.UUID, b *ota.Booking) reservation.NewParams {
	ref := b.BookingRef
	p := reservation.NewParams{
		HotelID:          hotelID,
		ClientID:         clientID,
		Stay:             b.Stay,
		CheckInTime:      b.CheckInTime,
		People:           b.People,
		Status:           reservation.StatusConfirmed,
		Type:             reservation.TypeOTA,
		OTAReservationID: &ref,
	}
	if b.Agent != "" {
		agent := b.Agent
		p.Agent = &agent
	}
	// Over-long remarks are truncated rather than rejecting the booking.
	if c, err := reservation.NewComment(b.Comment); err == nil {
		p.Comment = c
	} else {
		c, _ = reservation.NewComment(string([]rune(b.Comment)[:2000]))
		p.Comment = c
	}
	return p
}

// bookedRoom is one booking room placed on a concrete room.
type bookedRoom struct {
	room   ota.Room
	roomID int32
	plan   *rate.Plan
	nights []reservation.NightDetail
}

// build creates nights, rates, add-ons, guests and payment adjustments for
// every booked room of b.
func (r *Reconciler) build(ctx context.Context, tx shared.Tx, res *reservation.Reservation, b *ota.Booking) error {
	hotelID := res.HotelID()
	free, err := tx.Reads().AvailableRooms(ctx, hotelID, b.Stay, room.Filter{})
	if err != nil {
		return err
	}
	resolver := rate.NewResolver(tx.Reads())

	taken := make(map[int32]bool)
	booked := make([]bookedRoom, 0, len(b.Rooms))
	for i, br := range b.Rooms {
		roomTypeID, err := r.masters.RoomTypeByOTACode(ctx, hotelID, br.RoomTypeCode)
		if err != nil {
			return errs.Wrapf(err, "booking %s room %d", b.BookingRef, i+1)
		}
		a, ok := allocation.PickForType(free, roomTypeID, br.People, taken)
		if !ok {
			return errs.Kindf(ErrNoRoomForType, "booking %s room %d: no free room of type %s (%d) holds %d people for %s",
				b.BookingRef, i+1, br.RoomTypeCode, roomTypeID, br.People, b.Stay)
		}
		taken[a.RoomID] = true

		var plan *rate.Plan
		if br.PlanCode != "" {
			ref, err := r.masters.PlanByOTACode(ctx, hotelID, br.PlanCode)
			if err != nil {
				return errs.Wrapf(err, "booking %s room %d", b.BookingRef, i+1)
			}
			if plan, err = resolver.Plan(ctx, hotelID, ref); err != nil {
				return err
			}
		}

		placed := bookedRoom{room: br, roomID: a.RoomID, plan: plan}
		for _, n := range br.Nights {
			d := reservation.NewNightDetail(hotelID, res.ID(), a.RoomID, n.Date, n.People)
			d.ApplyPlan(plan)
			if plan == nil && b.PlanName != "" {
				name := b.PlanName
				d.PlanName = &name
			}
			d.Price = n.Price
			d.Billable = true
			placed.nights = append(placed.nights, d)
		}
		booked = append(booked, placed)
	}

	for _, br := range booked {
		if err := tx.Details().CreateBatch(ctx, tx.DB(), br.nights); err != nil {
			return err
		}
		guests, err := r.guestIDs(ctx, tx, br.room, res.ClientID())
		if err != nil {
			return err
		}
		var templates []rate.AddonTemplate
		if br.plan != nil {
			templates = br.plan.Addons
		}
		for _, d := range br.nights {
			if err := tx.Rates().ReplaceForDetail(ctx, tx.DB(), hotelID, d.ID, rate.Flat(d.Price).Lines); err != nil {
				return err
			}
			addons := make([]reservation.Addon, len(templates))
			for i, t := range templates {
				addons[i] = reservation.AddonFromTemplate(d, t, d.People)
			}
			if err := tx.Addons().ReplaceForDetail(ctx, tx.DB(), d.ID, addons); err != nil {
				return err
			}
			if err := tx.Guests().ReplaceForDetail(ctx, tx.DB(), hotelID, d.ID, guests); err != nil {
				return err
			}
		}
	}

	return r.applyAdjustments(ctx, tx, res, b, booked)
}

func (r *Reconciler) guestIDs(ctx context.Context, tx shared.Tx, br ota.Room, fallback uuid.UUID) ([]uuid.UUID, error) {
	if len(br.Guests) == 0 {
		return []uuid.UUID{fallback}, nil
	}
	ids := make([]uuid.UUID, 0, len(br.Guests))
	for _, g := range br.Guests {
		id, err := tx.Clients().FindOrCreate(ctx, tx.DB(), g)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return dedupe(ids), nil
}

// applyAdjustments records the points discount, then the prepaid amount,
// as payments against each room's booked total.
func (r *Reconciler) applyAdjustments(ctx context.Context, tx shared.Tx, res *reservation.Reservation, b *ota.Booking, booked []bookedRoom) error {
	balances := make(map[int32]money.Money, len(booked))
	for _, br := range booked {
		balances[br.roomID] = balances[br.roomID].Add(br.room.Total())
	}

	adjustments := []struct {
		kind    reservation.PaymentKind
		amount  money.Money
		comment string
	}{
		{reservation.PaymentPoint, b.PointsDiscount, "OTA points discount"},
		{reservation.PaymentOTAPrepaid, b.Prepaid, "OTA prepaid"},
	}
	for _, adj := range adjustments {
		if !adj.amount.IsPositive() {
			continue
		}
		pt, err := tx.Reads().PaymentTypeByKind(ctx, res.HotelID(), adj.kind)
		if err != nil {
			if errs.Is(err, errs.ErrNotFound) {
				slog.Warn("OTA adjustment skipped, payment type not configured",
					"hotel_id", res.HotelID(),
					"kind", string(adj.kind),
					"amount", adj.amount.String())
				continue
			}
			return err
		}
		left, err := distributeAdjustment(ctx, tx, res, pt, adj.amount, balances, b.Stay.CheckIn(), adj.comment)
		if err != nil {
			return err
		}
		if left.IsPositive() {
			slog.Warn("OTA adjustment exceeds room balances",
				"reservation_id", res.ID().String(),
				"kind", string(adj.kind),
				"undistributed", left.String())
		}
	}
	return nil
}

func sortedRoomIDs(m map[int32]money.Money) []int32 {
	ids := make([]int32, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
