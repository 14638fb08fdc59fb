package shared

import (
	"context"
	"time"

	"hotel-pms/internal/domain/client"
	"hotel-pms/internal/domain/rate"
	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/domain/room"
	sqlc "hotel-pms/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Details() DetailRepository
	Rates() RateRepository
	Addons() AddonRepository
	Guests() GuestRepository
	Payments() PaymentRepository
	Invoices() InvoiceRepository
	Parking() ParkingRepository
	Clients() ClientRepository
	OTAQueue() OTAQueueRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// Join returns a UnitOfWork whose Within runs inside tx instead of opening
// its own transaction. Commit, rollback and retries stay with tx's owner.
func Join(tx Tx) UnitOfWork {
	return joinedUoW{tx: tx}
}

type joinedUoW struct {
	tx Tx
}

func (j joinedUoW) Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	return fn(ctx, j.tx)
}

func (j joinedUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, j.tx.DB())
}

func (j joinedUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, j.tx.DB())
}

func (j joinedUoW) CommandReads() CommandReads {
	return j.tx.Reads()
}

type CommandReads interface {
	ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	ReservationByOTARef(ctx context.Context, hotelID int32, ref string) (*reservation.Reservation, error)
	DetailByID(ctx context.Context, id uuid.UUID) (*reservation.NightDetail, error)
	// DetailsByReservation returns every night, cancelled ones included,
	// ordered by date then room.
	DetailsByReservation(ctx context.Context, reservationID uuid.UUID) ([]reservation.NightDetail, error)
	AddonsByDetail(ctx context.Context, detailID uuid.UUID) ([]reservation.Addon, error)
	GuestsByDetail(ctx context.Context, detailID uuid.UUID) ([]uuid.UUID, error)
	AvailableRooms(ctx context.Context, hotelID int32, stay reservation.Stay, filter room.Filter) ([]*room.Room, error)
	// RoomConflicts lists the dates on which the room already has an active
	// night, ignoring the excluded details.
	RoomConflicts(ctx context.Context, hotelID, roomID int32, dates []time.Time, exclude []uuid.UUID) ([]time.Time, error)
	RoomByID(ctx context.Context, hotelID, roomID int32) (*room.Room, error)
	Plan(ctx context.Context, hotelID int32, ref rate.PlanRef) (*rate.Plan, error)
	PaymentByID(ctx context.Context, id uuid.UUID) (*reservation.Payment, error)
	PaymentType(ctx context.Context, hotelID, id int32) (*reservation.PaymentType, error)
	PaymentTypeByKind(ctx context.Context, hotelID int32, kind reservation.PaymentKind) (*reservation.PaymentType, error)
	QueueEntry(ctx context.Context, id int64) (*QueueEntry, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	Update(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type DetailRepository interface {
	CreateBatch(ctx context.Context, tx sqlc.DBTX, details []reservation.NightDetail) error
	Update(ctx context.Context, tx sqlc.DBTX, d reservation.NightDetail) error
	// CancelActive marks every active night of the reservation with token.
	CancelActive(ctx context.Context, tx sqlc.DBTX, reservationID, token uuid.UUID, billable bool) (int64, error)
	// Reinstate clears cancel markers and makes every night billable.
	Reinstate(ctx context.Context, tx sqlc.DBTX, reservationID uuid.UUID) error
	SetBillable(ctx context.Context, tx sqlc.DBTX, reservationID uuid.UUID, billable bool) error
	DeleteByIDs(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID) error
	DeleteByReservation(ctx context.Context, tx sqlc.DBTX, reservationID uuid.UUID) error
}

type RateRepository interface {
	// ReplaceForDetail deletes the night's rate rows and inserts lines in order.
	ReplaceForDetail(ctx context.Context, tx sqlc.DBTX, hotelID int32, detailID uuid.UUID, lines []rate.Line) error
}

type AddonRepository interface {
	ReplaceForDetail(ctx context.Context, tx sqlc.DBTX, detailID uuid.UUID, addons []reservation.Addon) error
	Upsert(ctx context.Context, tx sqlc.DBTX, a reservation.Addon) error
}

type GuestRepository interface {
	ReplaceForDetail(ctx context.Context, tx sqlc.DBTX, hotelID int32, detailID uuid.UUID, clientIDs []uuid.UUID) error
}

type PaymentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p reservation.Payment) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	DeleteByReservation(ctx context.Context, tx sqlc.DBTX, reservationID uuid.UUID) error
	CountByInvoice(ctx context.Context, tx sqlc.DBTX, invoiceID uuid.UUID) (int64, error)
}

type InvoiceRepository interface {
	// FindOrCreate returns the invoice of (hotel, reservation), creating it on first use.
	FindOrCreate(ctx context.Context, tx sqlc.DBTX, inv reservation.Invoice) (uuid.UUID, error)
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	DeleteByReservation(ctx context.Context, tx sqlc.DBTX, reservationID uuid.UUID) error
}

type ParkingRepository interface {
	CancelByReservation(ctx context.Context, tx sqlc.DBTX, reservationID, token uuid.UUID) error
	ReinstateByReservation(ctx context.Context, tx sqlc.DBTX, reservationID uuid.UUID) error
	ListByDetails(ctx context.Context, tx sqlc.DBTX, detailIDs []uuid.UUID) ([]reservation.Parking, error)
	CreateBatch(ctx context.Context, tx sqlc.DBTX, parking []reservation.Parking) error
}

type ClientRepository interface {
	// FindOrCreate matches on every normalized attribute before inserting.
	FindOrCreate(ctx context.Context, tx sqlc.DBTX, attrs client.Attributes) (uuid.UUID, error)
	Update(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, attrs client.Attributes) error
}

type OTAQueueRepository interface {
	// Enqueue inserts the entry unless an identical payload is already queued
	// for the hotel. created is false when an existing entry was found.
	Enqueue(ctx context.Context, tx sqlc.DBTX, e QueueEntry) (id int64, created bool, err error)
	// ClaimPending locks up to limit pending entries, oldest first.
	ClaimPending(ctx context.Context, tx sqlc.DBTX, limit int) ([]QueueEntry, error)
	MarkSucceeded(ctx context.Context, tx sqlc.DBTX, id int64) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, id int64, reason string) error
	Requeue(ctx context.Context, tx sqlc.DBTX, id int64) error
}
