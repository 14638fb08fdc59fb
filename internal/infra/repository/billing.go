package repository

import (
	"context"

	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/infra"
	"hotel-pms/internal/infra/repository/converter"
	sqlc "hotel-pms/internal/infra/sqlc/generated"
	"hotel-pms/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PaymentWriteQueries interface {
	CreatePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentParams) error
	DeletePayment(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	DeletePaymentsByReservation(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) error
	CountPaymentsByInvoice(ctx context.Context, db sqlc.DBTX, invoiceID pgtype.UUID) (int64, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      sqlc.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db sqlc.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, tx sqlc.DBTX, p reservation.Payment) error {
	if err := r.queries.CreatePayment(ctx, tx, converter.PaymentToCreateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

func (r *PaymentRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeletePayment(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete payment", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PaymentRepository) DeleteByReservation(ctx context.Context, tx sqlc.DBTX, reservationID uuid.UUID) error {
	if err := r.queries.DeletePaymentsByReservation(ctx, tx, reservationID); err != nil {
		return infra.WrapRepoErr("failed to delete reservation payments", err)
	}
	return nil
}

func (r *PaymentRepository) CountByInvoice(ctx context.Context, tx sqlc.DBTX, invoiceID uuid.UUID) (int64, error) {
	n, err := r.queries.CountPaymentsByInvoice(ctx, tx, pgconv.UUIDToPgtype(invoiceID))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count invoice payments", err)
	}
	return n, nil
}

type InvoiceWriteQueries interface {
	UpsertInvoice(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertInvoiceParams) (uuid.UUID, error)
	DeleteInvoice(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	DeleteInvoicesByReservation(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) error
}

type InvoiceRepository struct {
	queries InvoiceWriteQueries
	db      sqlc.DBTX
}

func NewInvoiceRepository(queries InvoiceWriteQueries, db sqlc.DBTX) *InvoiceRepository {
	return &InvoiceRepository{
		queries: queries,
		db:      db,
	}
}

func (r *InvoiceRepository) FindOrCreate(ctx context.Context, tx sqlc.DBTX, inv reservation.Invoice) (uuid.UUID, error) {
	id, err := r.queries.UpsertInvoice(ctx, tx, sqlc.UpsertInvoiceParams{
		HotelID:       inv.HotelID,
		ReservationID: inv.ReservationID,
		ClientID:      inv.ClientID,
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to find or create invoice", err)
	}
	return id, nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	if err := r.queries.DeleteInvoice(ctx, tx, id); err != nil {
		return infra.WrapRepoErr("failed to delete invoice", err)
	}
	return nil
}

func (r *InvoiceRepository) DeleteByReservation(ctx context.Context, tx sqlc.DBTX, reservationID uuid.UUID) error {
	if err := r.queries.DeleteInvoicesByReservation(ctx, tx, reservationID); err != nil {
		return infra.WrapRepoErr("failed to delete reservation invoices", err)
	}
	return nil
}

type ParkingWriteQueries interface {
	CancelParkingByReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CancelParkingByReservationParams) error
	ReinstateParkingByReservation(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) error
	ListParkingByDetails(ctx context.Context, db sqlc.DBTX, detailIds []uuid.UUID) ([]sqlc.ReservationParking, error)
	CreateParking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateParkingParams) error
}

type ParkingRepository struct {
	queries ParkingWriteQueries
	db      sqlc.DBTX
}

func NewParkingRepository(queries ParkingWriteQueries, db sqlc.DBTX) *ParkingRepository {
	return &ParkingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ParkingRepository) CancelByReservation(ctx context.Context, tx sqlc.DBTX, reservationID, token uuid.UUID) error {
	err := r.queries.CancelParkingByReservation(ctx, tx, sqlc.CancelParkingByReservationParams{
		Token:         pgconv.UUIDToPgtype(token),
		ReservationID: reservationID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to cancel parking", err)
	}
	return nil
}

func (r *ParkingRepository) ReinstateByReservation(ctx context.Context, tx sqlc.DBTX, reservationID uuid.UUID) error {
	if err := r.queries.ReinstateParkingByReservation(ctx, tx, reservationID); err != nil {
		return infra.WrapRepoErr("failed to reinstate parking", err)
	}
	return nil
}

func (r *ParkingRepository) ListByDetails(ctx context.Context, tx sqlc.DBTX, detailIDs []uuid.UUID) ([]reservation.Parking, error) {
	if len(detailIDs) == 0 {
		return nil, nil
	}
	rows, err := r.queries.ListParkingByDetails(ctx, tx, detailIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list parking", err)
	}
	out := make([]reservation.Parking, 0, len(rows))
	for _, row := range rows {
		out = append(out, converter.ParkingFromRow(row))
	}
	return out, nil
}

func (r *ParkingRepository) CreateBatch(ctx context.Context, tx sqlc.DBTX, parking []reservation.Parking) error {
	for _, p := range parking {
		if err := r.queries.CreateParking(ctx, tx, converter.ParkingToCreateParams(p)); err != nil {
			return infra.WrapRepoErr("failed to create parking", err)
		}
	}
	return nil
}
