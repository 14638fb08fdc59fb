package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"hotel-pms/internal/domain/rate"
	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/domain/room"
	"hotel-pms/internal/infra/readstore"
	"hotel-pms/internal/infra/repository"
	sqlc "hotel-pms/internal/infra/sqlc/generated"
	"hotel-pms/internal/pkg/errs"
	"hotel-pms/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	reservationRepo shared.ReservationRepository
	detailRepo      shared.DetailRepository
	rateRepo        shared.RateRepository
	addonRepo       shared.AddonRepository
	guestRepo       shared.GuestRepository
	paymentRepo     shared.PaymentRepository
	invoiceRepo     shared.InvoiceRepository
	parkingRepo     shared.ParkingRepository
	clientRepo      shared.ClientRepository
	otaQueueRepo    shared.OTAQueueRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.uow.q, t.dbtx)
	}
	return t.reservationRepo
}

func (t *pgTx) Details() shared.DetailRepository {
	if t.detailRepo == nil {
		t.detailRepo = repository.NewDetailRepository(t.uow.q, t.dbtx)
	}
	return t.detailRepo
}

func (t *pgTx) Rates() shared.RateRepository {
	if t.rateRepo == nil {
		t.rateRepo = repository.NewRateRepository(t.uow.q, t.dbtx)
	}
	return t.rateRepo
}

func (t *pgTx) Addons() shared.AddonRepository {
	if t.addonRepo == nil {
		t.addonRepo = repository.NewAddonRepository(t.uow.q, t.dbtx)
	}
	return t.addonRepo
}

func (t *pgTx) Guests() shared.GuestRepository {
	if t.guestRepo == nil {
		t.guestRepo = repository.NewGuestRepository(t.uow.q, t.dbtx)
	}
	return t.guestRepo
}

func (t *pgTx) Payments() shared.PaymentRepository {
	if t.paymentRepo == nil {
		t.paymentRepo = repository.NewPaymentRepository(t.uow.q, t.dbtx)
	}
	return t.paymentRepo
}

func (t *pgTx) Invoices() shared.InvoiceRepository {
	if t.invoiceRepo == nil {
		t.invoiceRepo = repository.NewInvoiceRepository(t.uow.q, t.dbtx)
	}
	return t.invoiceRepo
}

func (t *pgTx) Parking() shared.ParkingRepository {
	if t.parkingRepo == nil {
		t.parkingRepo = repository.NewParkingRepository(t.uow.q, t.dbtx)
	}
	return t.parkingRepo
}

func (t *pgTx) Clients() shared.ClientRepository {
	if t.clientRepo == nil {
		t.clientRepo = repository.NewClientRepository(t.uow.q, t.dbtx)
	}
	return t.clientRepo
}

func (t *pgTx) OTAQueue() shared.OTAQueueRepository {
	if t.otaQueueRepo == nil {
		t.otaQueueRepo = repository.NewOTAQueueRepository(t.uow.q, t.dbtx)
	}
	return t.otaQueueRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	reservationStore *readstore.ReservationReadStore
	roomStore        *readstore.RoomReadStore
	planStore        *readstore.PlanReadStore
	paymentStore     *readstore.PaymentReadStore
	queueStore       *readstore.OTAQueueReadStore
}

func (r *commandReads) reservations() *readstore.ReservationReadStore {
	if r.reservationStore == nil {
		r.reservationStore = readstore.NewReservationReadStore(r.uow.q, r.dbtx)
	}
	return r.reservationStore
}

func (r *commandReads) rooms() *readstore.RoomReadStore {
	if r.roomStore == nil {
		r.roomStore = readstore.NewRoomReadStore(r.uow.q, r.dbtx)
	}
	return r.roomStore
}

func (r *commandReads) payments() *readstore.PaymentReadStore {
	if r.paymentStore == nil {
		r.paymentStore = readstore.NewPaymentReadStore(r.uow.q, r.dbtx)
	}
	return r.paymentStore
}

func (r *commandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	return r.reservations().FindByID(ctx, id)
}

func (r *commandReads) ReservationByOTARef(ctx context.Context, hotelID int32, ref string) (*reservation.Reservation, error) {
	return r.reservations().FindByOTARef(ctx, hotelID, ref)
}

func (r *commandReads) DetailByID(ctx context.Context, id uuid.UUID) (*reservation.NightDetail, error) {
	return r.reservations().DetailByID(ctx, id)
}

func (r *commandReads) DetailsByReservation(ctx context.Context, reservationID uuid.UUID) ([]reservation.NightDetail, error) {
	return r.reservations().DetailsByReservation(ctx, reservationID)
}

func (r *commandReads) AddonsByDetail(ctx context.Context, detailID uuid.UUID) ([]reservation.Addon, error) {
	return r.reservations().AddonsByDetail(ctx, detailID)
}

func (r *commandReads) GuestsByDetail(ctx context.Context, detailID uuid.UUID) ([]uuid.UUID, error) {
	return r.reservations().GuestsByDetail(ctx, detailID)
}

func (r *commandReads) AvailableRooms(ctx context.Context, hotelID int32, stay reservation.Stay, filter room.Filter) ([]*room.Room, error) {
	return r.rooms().FindAvailable(ctx, hotelID, stay, filter)
}

func (r *commandReads) RoomConflicts(ctx context.Context, hotelID, roomID int32, dates []time.Time, exclude []uuid.UUID) ([]time.Time, error) {
	return r.rooms().Conflicts(ctx, hotelID, roomID, dates, exclude)
}

func (r *commandReads) RoomByID(ctx context.Context, hotelID, roomID int32) (*room.Room, error) {
	return r.rooms().FindByID(ctx, hotelID, roomID)
}

func (r *commandReads) Plan(ctx context.Context, hotelID int32, ref rate.PlanRef) (*rate.Plan, error) {
	if r.planStore == nil {
		r.planStore = readstore.NewPlanReadStore(r.uow.q, r.dbtx)
	}
	return r.planStore.Plan(ctx, hotelID, ref)
}

func (r *commandReads) PaymentByID(ctx context.Context, id uuid.UUID) (*reservation.Payment, error) {
	return r.payments().FindByID(ctx, id)
}

func (r *commandReads) PaymentType(ctx context.Context, hotelID, id int32) (*reservation.PaymentType, error) {
	return r.payments().Type(ctx, hotelID, id)
}

func (r *commandReads) PaymentTypeByKind(ctx context.Context, hotelID int32, kind reservation.PaymentKind) (*reservation.PaymentType, error) {
	return r.payments().TypeByKind(ctx, hotelID, kind)
}

func (r *commandReads) QueueEntry(ctx context.Context, id int64) (*shared.QueueEntry, error) {
	if r.queueStore == nil {
		r.queueStore = readstore.NewOTAQueueReadStore(r.uow.q, r.dbtx)
	}
	return r.queueStore.FindByID(ctx, id)
}
