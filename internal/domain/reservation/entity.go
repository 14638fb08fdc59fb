package reservation

import (
	"time"

	"hotel-pms/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidStay          = errs.NewKind("check-in must be before check-out", errs.ErrValidation)
	ErrInvalidDate          = errs.NewKind("invalid date", errs.ErrValidation)
	ErrInvalidStatus        = errs.NewKind("invalid reservation status", errs.ErrValidation)
	ErrInvalidType          = errs.NewKind("invalid reservation type", errs.ErrValidation)
	ErrCommentTooLong       = errs.NewKind("comment is too long", errs.ErrValidation)
	ErrNoPeople             = errs.NewKind("party size must be positive", errs.ErrValidation)
	ErrPeopleNotPositive    = errs.NewKind("number of people would drop to zero or below", errs.ErrInsufficientCapacity)
	ErrTransitionNotAllowed = errs.NewKind("status transition not allowed", errs.ErrConflict)
	ErrReservationCancelled = errs.NewKind("reservation is cancelled", errs.ErrConflict)
	ErrNotDeletable         = errs.NewKind("reservation cannot be deleted", errs.ErrConflict)
	ErrReservationNotFound  = errs.NewKind("reservation not found", errs.ErrNotFound)
	ErrDetailNotFound       = errs.NewKind("reservation detail not found", errs.ErrNotFound)
	ErrPaymentNotFound      = errs.NewKind("payment not found", errs.ErrNotFound)
	ErrRoomNotInReservation = errs.NewKind("room is not part of the reservation", errs.ErrNotFound)
	ErrRoomOccupied         = errs.NewKind("room is already booked for the stay", errs.ErrConflict)
)

// Reservation is the header of a stay. Its nights live in NightDetail rows.
type Reservation struct {
	id               uuid.UUID
	hotelID          int32
	clientID         uuid.UUID
	stay             Stay
	checkInTime      *string
	checkOutTime     *string
	people           int
	status           Status
	rtype            Type
	otaReservationID *string
	agent            *string
	comment          Comment
	createdBy        *uuid.UUID
	updatedBy        *uuid.UUID
	createdAt        time.Time
	updatedAt        time.Time
}

// NewParams carries the header values of a new reservation.
type NewParams struct {
	HotelID          int32
	ClientID         uuid.UUID
	Stay             Stay
	CheckInTime      *string
	CheckOutTime     *string
	People           int
	Status           Status
	Type             Type
	OTAReservationID *string
	Agent            *string
	Comment          Comment
	Actor            *uuid.UUID
}

func NewReservation(p NewParams, now time.Time) (*Reservation, error) {
	if p.People <= 0 {
		return nil, ErrNoPeople
	}
	if p.Status == "" {
		p.Status = StatusHold
	}
	if !p.Status.IsValid() {
		return nil, errs.Kindf(ErrInvalidStatus, "invalid reservation status %q", p.Status)
	}
	if p.Type == "" {
		p.Type = TypeDirect
	}
	if !p.Type.IsValid() {
		return nil, errs.Kindf(ErrInvalidType, "invalid reservation type %q", p.Type)
	}
	if p.Stay.NumNights() <= 0 {
		return nil, ErrInvalidStay
	}

	return &Reservation{
		id:               uuid.New(),
		hotelID:          p.HotelID,
		clientID:         p.ClientID,
		stay:             p.Stay,
		checkInTime:      p.CheckInTime,
		checkOutTime:     p.CheckOutTime,
		people:           p.People,
		status:           p.Status,
		rtype:            p.Type,
		otaReservationID: p.OTAReservationID,
		agent:            p.Agent,
		comment:          p.Comment,
		createdBy:        p.Actor,
		updatedBy:        p.Actor,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	hotelID int32,
	clientID uuid.UUID,
	stay Stay,
	checkInTime, checkOutTime *string,
	people int,
	status Status,
	rtype Type,
	otaReservationID, agent *string,
	comment Comment,
	createdBy, updatedBy *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:               id,
		hotelID:          hotelID,
		clientID:         clientID,
		stay:             stay,
		checkInTime:      checkInTime,
		checkOutTime:     checkOutTime,
		people:           people,
		status:           status,
		rtype:            rtype,
		otaReservationID: otaReservationID,
		agent:            agent,
		comment:          comment,
		createdBy:        createdBy,
		updatedBy:        updatedBy,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// Transition applies a status change and returns the status to store.
// Requesting StatusRecovered stores StatusConfirmed.
func (r *Reservation) Transition(target Status, actor *uuid.UUID, now time.Time) (Status, error) {
	if !target.IsTarget() {
		return "", errs.Kindf(ErrInvalidStatus, "invalid target status %q", target)
	}
	if !CanTransition(r.status, target) {
		return "", errs.Kindf(ErrTransitionNotAllowed, "cannot move reservation from %s to %s", r.status, target)
	}
	next := target
	if target == StatusRecovered {
		next = StatusConfirmed
	}
	r.status = next
	r.touch(actor, now)
	return next, nil
}

// AdjustPeople changes the party size; the result must stay positive.
func (r *Reservation) AdjustPeople(delta int, actor *uuid.UUID, now time.Time) error {
	if r.people+delta <= 0 {
		return errs.Kindf(ErrPeopleNotPositive, "reservation would hold %d people", r.people+delta)
	}
	r.people += delta
	r.touch(actor, now)
	return nil
}

// Reschedule replaces the stay, usually after nights were moved.
func (r *Reservation) Reschedule(stay Stay, actor *uuid.UUID, now time.Time) {
	r.stay = stay
	r.touch(actor, now)
}

// Overwrite replaces the header values in place, keeping id and audit origin.
func (r *Reservation) Overwrite(p NewParams, now time.Time) error {
	if p.People <= 0 {
		return ErrNoPeople
	}
	if p.Stay.NumNights() <= 0 {
		return ErrInvalidStay
	}
	if p.Status != "" {
		if !p.Status.IsValid() {
			return errs.Kindf(ErrInvalidStatus, "invalid reservation status %q", p.Status)
		}
		r.status = p.Status
	}
	if p.Type != "" {
		if !p.Type.IsValid() {
			return errs.Kindf(ErrInvalidType, "invalid reservation type %q", p.Type)
		}
		r.rtype = p.Type
	}
	r.clientID = p.ClientID
	r.stay = p.Stay
	r.checkInTime = p.CheckInTime
	r.checkOutTime = p.CheckOutTime
	r.people = p.People
	r.otaReservationID = p.OTAReservationID
	r.agent = p.Agent
	r.comment = p.Comment
	r.touch(p.Actor, now)
	return nil
}

// Split derives a new reservation for part of this one's party, with the
// same client, status and type.
func (r *Reservation) Split(stay Stay, people int, actor *uuid.UUID, now time.Time) (*Reservation, error) {
	if err := r.AdjustPeople(-people, actor, now); err != nil {
		return nil, err
	}
	return NewReservation(NewParams{
		HotelID:      r.hotelID,
		ClientID:     r.clientID,
		Stay:         stay,
		CheckInTime:  r.checkInTime,
		CheckOutTime: r.checkOutTime,
		People:       people,
		Status:       r.status,
		Type:         r.rtype,
		Agent:        r.agent,
		Comment:      r.comment,
		Actor:        actor,
	}, now)
}

// MarkUpdated records a change made to the reservation's nights.
func (r *Reservation) MarkUpdated(actor *uuid.UUID, now time.Time) {
	r.touch(actor, now)
}

// CanHardDelete reports whether the reservation may be physically removed.
func (r *Reservation) CanHardDelete() bool {
	if r.status == StatusConfirmed {
		return false
	}
	return r.status == StatusHold || r.rtype == TypeEmployee
}

func (r *Reservation) IsCancelled() bool {
	return r.status == StatusCancelled
}

func (r *Reservation) touch(actor *uuid.UUID, now time.Time) {
	if actor != nil {
		r.updatedBy = actor
	}
	r.updatedAt = now
}

func (r *Reservation) ID() uuid.UUID             { return r.id }
func (r *Reservation) HotelID() int32            { return r.hotelID }
func (r *Reservation) ClientID() uuid.UUID       { return r.clientID }
func (r *Reservation) Stay() Stay                { return r.stay }
func (r *Reservation) CheckInTime() *string      { return r.checkInTime }
func (r *Reservation) CheckOutTime() *string     { return r.checkOutTime }
func (r *Reservation) People() int               { return r.people }
func (r *Reservation) Status() Status            { return r.status }
func (r *Reservation) Type() Type                { return r.rtype }
func (r *Reservation) OTAReservationID() *string { return r.otaReservationID }
func (r *Reservation) Agent() *string            { return r.agent }
func (r *Reservation) Comment() Comment          { return r.comment }
func (r *Reservation) CreatedBy() *uuid.UUID     { return r.createdBy }
func (r *Reservation) UpdatedBy() *uuid.UUID     { return r.updatedBy }
func (r *Reservation) CreatedAt() time.Time      { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time      { return r.updatedAt }
