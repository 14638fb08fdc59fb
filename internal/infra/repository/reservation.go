package repository

import (
	"context"

	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/infra"
	"hotel-pms/internal/infra/repository/converter"
	sqlc "hotel-pms/internal/infra/sqlc/generated"
	"hotel-pms/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) error
	UpdateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationParams) (int64, error)
	DeleteReservation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	params, err := converter.ReservationToCreateParams(res)
	if err != nil {
		return err
	}
	if err := r.queries.CreateReservation(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	params, err := converter.ReservationToUpdateParams(res)
	if err != nil {
		return err
	}
	n, err := r.queries.UpdateReservation(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteReservation(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

type DetailWriteQueries interface {
	CreateReservationDetail(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationDetailParams) error
	UpdateReservationDetail(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationDetailParams) (int64, error)
	CancelActiveDetails(ctx context.Context, db sqlc.DBTX, arg sqlc.CancelActiveDetailsParams) (int64, error)
	ReinstateDetails(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) error
	SetDetailsBillable(ctx context.Context, db sqlc.DBTX, arg sqlc.SetDetailsBillableParams) error
	DeleteDetailsByIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) error
	DeleteDetailsByReservation(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) error
}

type DetailRepository struct {
	queries DetailWriteQueries
	db      sqlc.DBTX
}

func NewDetailRepository(queries DetailWriteQueries, db sqlc.DBTX) *DetailRepository {
	return &DetailRepository{
		queries: queries,
		db:      db,
	}
}

func (r *DetailRepository) CreateBatch(ctx context.Context, tx sqlc.DBTX, details []reservation.NightDetail) error {
	for _, d := range details {
		if err := r.queries.CreateReservationDetail(ctx, tx, converter.DetailToCreateParams(d)); err != nil {
			return infra.WrapRepoErr("failed to create reservation detail", err)
		}
	}
	return nil
}

func (r *DetailRepository) Update(ctx context.Context, tx sqlc.DBTX, d reservation.NightDetail) error {
	n, err := r.queries.UpdateReservationDetail(ctx, tx, converter.DetailToUpdateParams(d))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation detail", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation detail not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *DetailRepository) CancelActive(ctx context.Context, tx sqlc.DBTX, reservationID, token uuid.UUID, billable bool) (int64, error) {
	n, err := r.queries.CancelActiveDetails(ctx, tx, sqlc.CancelActiveDetailsParams{
		Token:         pgconv.UUIDToPgtype(token),
		Billable:      billable,
		ReservationID: reservationID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to cancel reservation details", err)
	}
	return n, nil
}

func (r *DetailRepository) Reinstate(ctx context.Context, tx sqlc.DBTX, reservationID uuid.UUID) error {
	if err := r.queries.ReinstateDetails(ctx, tx, reservationID); err != nil {
		return infra.WrapRepoErr("failed to reinstate reservation details", err)
	}
	return nil
}

func (r *DetailRepository) SetBillable(ctx context.Context, tx sqlc.DBTX, reservationID uuid.UUID, billable bool) error {
	err := r.queries.SetDetailsBillable(ctx, tx, sqlc.SetDetailsBillableParams{ReservationID: reservationID, Billable: billable})
	if err != nil {
		return infra.WrapRepoErr("failed to update detail billing flag", err)
	}
	return nil
}

func (r *DetailRepository) DeleteByIDs(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	if err := r.queries.DeleteDetailsByIDs(ctx, tx, ids); err != nil {
		return infra.WrapRepoErr("failed to delete reservation details", err)
	}
	return nil
}

func (r *DetailRepository) DeleteByReservation(ctx context.Context, tx sqlc.DBTX, reservationID uuid.UUID) error {
	if err := r.queries.DeleteDetailsByReservation(ctx, tx, reservationID); err != nil {
		return infra.WrapRepoErr("failed to delete reservation details", err)
	}
	return nil
}
