package commands

import (
	"context"
	"time"

	"hotel-pms/internal/domain/allocation"
	"hotel-pms/internal/domain/client"
	"hotel-pms/internal/domain/ota"
	"hotel-pms/internal/domain/rate"
	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/domain/room"
	"hotel-pms/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationCommands interface {
	CreateHold(ctx context.Context, req CreateHoldRequest, actor *uuid.UUID) (*HoldResult, error)
	ChangeStatus(ctx context.Context, req ChangeStatusRequest, actor *uuid.UUID) (reservation.Status, error)
	DeleteHold(ctx context.Context, reservationID uuid.UUID) error
	MoveRoom(ctx context.Context, req MoveRoomRequest, actor *uuid.UUID) (*MoveRoomResult, error)
	AddRoom(ctx context.Context, req AddRoomRequest, actor *uuid.UUID) error
	RemoveRoom(ctx context.Context, req RemoveRoomRequest, actor *uuid.UUID) error
	AttachPlan(ctx context.Context, req AttachPlanRequest, actor *uuid.UUID) error
	Recalculate(ctx context.Context, reservationID uuid.UUID) error
}

type PaymentCommands interface {
	RecordPayment(ctx context.Context, req RecordPaymentRequest, actor *uuid.UUID) (*PaymentResult, error)
	DeletePayment(ctx context.Context, paymentID uuid.UUID) error
}

type QueueCommands interface {
	Enqueue(ctx context.Context, req EnqueueRequest) (*EnqueueResult, error)
	ProcessPending(ctx context.Context) (ProcessStats, error)
	Replay(ctx context.Context, entryID int64) error
}

// RoomSelector chooses how CreateHold places the party.
type RoomSelector struct {
	Mode allocation.Mode
	// Filter narrows the candidate rooms for best-fit-single.
	Filter room.Filter
	// RoomTypes drives combo-by-type.
	RoomTypes []allocation.TypeRequest
	// RoomID names the room for specific-room.
	RoomID *int32
}

type CreateHoldRequest struct {
	HotelID  int32
	CheckIn  string
	CheckOut string
	People   int
	// ClientID takes precedence over Client.
	ClientID *uuid.UUID
	Client   *client.Attributes
	Type     reservation.Type
	Comment  string
	Selector RoomSelector
}

type HoldResult struct {
	ReservationID uuid.UUID
	ClientID      uuid.UUID
	Assignments   allocation.Plan
}

type ChangeStatusRequest struct {
	ReservationID uuid.UUID
	Status        reservation.Status
	// FullFee keeps cancelled nights billable.
	FullFee bool
}

type MoveRoomRequest struct {
	ReservationID uuid.UUID
	FromRoomID    int32
	ToRoomID      int32
	CheckIn       string
	CheckOut      string
	// Solo moves only FromRoomID, splitting it into its own reservation
	// when its dates change.
	Solo bool
}

type MoveRoomResult struct {
	ReservationID      uuid.UUID
	SplitReservationID *uuid.UUID
}

type AddRoomRequest struct {
	ReservationID uuid.UUID
	RoomID        int32
	People        int
}

type RemoveRoomRequest struct {
	ReservationID uuid.UUID
	RoomID        int32
	// People to take out of the room; zero or at least the room's
	// occupants removes the room entirely.
	People int
}

type AddonInput struct {
	GlobalID *int32
	HotelRef *int32
	Name     string
	Quantity int
	Price    float64
	Tax      rate.Tax
}

type AttachPlanRequest struct {
	DetailID uuid.UUID
	Plan     rate.PlanRef
	// Addons nil attaches the plan's default add-ons.
	Addons []AddonInput
	// ReplaceAddons replaces the night's add-ons instead of upserting by key.
	ReplaceAddons bool
	GuestIDs      []uuid.UUID
	Guests        []client.Attributes
}

type RecordPaymentRequest struct {
	ReservationID uuid.UUID
	Date          string
	RoomID        *int32
	ClientID      *uuid.UUID
	PaymentTypeID int32
	Amount        float64
	Comment       string
}

type PaymentResult struct {
	PaymentID uuid.UUID
	InvoiceID *uuid.UUID
}

type EnqueueRequest struct {
	HotelID     int32
	ContentType string
	Payload     []byte
}

type EnqueueResult struct {
	EntryID     int64
	Created     bool
	BookingRef  string
	Transaction ota.TransactionType
}

type ProcessStats struct {
	Claimed   int
	Succeeded int
	Failed    int
}

// CalendarEvent is an all-day event spanning [Start, End).
type CalendarEvent struct {
	ID          string
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
}

type CalendarGateway interface {
	UpsertEvent(ctx context.Context, hotelID int32, ev CalendarEvent) error
	DeleteEvent(ctx context.Context, hotelID int32, eventID string) error
}

// IsPermanent reports whether retrying err with the same input cannot succeed.
func IsPermanent(err error) bool {
	return errs.Is(err, errs.ErrValidation) || errs.Is(err, errs.ErrExternalData)
}
