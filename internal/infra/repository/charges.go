package repository

import (
	"context"

	"hotel-pms/internal/domain/rate"
	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/infra"
	"hotel-pms/internal/infra/repository/converter"
	sqlc "hotel-pms/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type RateWriteQueries interface {
	DeleteRatesByDetail(ctx context.Context, db sqlc.DBTX, reservationDetailsID uuid.UUID) error
	CreateReservationRate(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationRateParams) error
}

type RateRepository struct {
	queries RateWriteQueries
	db      sqlc.DBTX
}

func NewRateRepository(queries RateWriteQueries, db sqlc.DBTX) *RateRepository {
	return &RateRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RateRepository) ReplaceForDetail(ctx context.Context, tx sqlc.DBTX, hotelID int32, detailID uuid.UUID, lines []rate.Line) error {
	if err := r.queries.DeleteRatesByDetail(ctx, tx, detailID); err != nil {
		return infra.WrapRepoErr("failed to delete reservation rates", err)
	}
	for i, l := range lines {
		if err := r.queries.CreateReservationRate(ctx, tx, converter.RateLineToParams(hotelID, detailID, i, l)); err != nil {
			return infra.WrapRepoErr("failed to create reservation rate", err)
		}
	}
	return nil
}

type AddonWriteQueries interface {
	DeleteAddonsByDetail(ctx context.Context, db sqlc.DBTX, reservationDetailID uuid.UUID) error
	CreateReservationAddon(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationAddonParams) error
	UpsertReservationAddon(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertReservationAddonParams) error
}

type AddonRepository struct {
	queries AddonWriteQueries
	db      sqlc.DBTX
}

func NewAddonRepository(queries AddonWriteQueries, db sqlc.DBTX) *AddonRepository {
	return &AddonRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AddonRepository) ReplaceForDetail(ctx context.Context, tx sqlc.DBTX, detailID uuid.UUID, addons []reservation.Addon) error {
	if err := r.queries.DeleteAddonsByDetail(ctx, tx, detailID); err != nil {
		return infra.WrapRepoErr("failed to delete reservation addons", err)
	}
	for _, a := range addons {
		a.DetailID = detailID
		if err := r.queries.CreateReservationAddon(ctx, tx, converter.AddonToCreateParams(a)); err != nil {
			return infra.WrapRepoErr("failed to create reservation addon", err)
		}
	}
	return nil
}

func (r *AddonRepository) Upsert(ctx context.Context, tx sqlc.DBTX, a reservation.Addon) error {
	if err := r.queries.UpsertReservationAddon(ctx, tx, converter.AddonToUpsertParams(a)); err != nil {
		return infra.WrapRepoErr("failed to upsert reservation addon", err)
	}
	return nil
}

type GuestWriteQueries interface {
	DeleteReservationClientsByDetail(ctx context.Context, db sqlc.DBTX, reservationDetailsID uuid.UUID) error
	CreateReservationClient(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationClientParams) error
}

type GuestRepository struct {
	queries GuestWriteQueries
	db      sqlc.DBTX
}

func NewGuestRepository(queries GuestWriteQueries, db sqlc.DBTX) *GuestRepository {
	return &GuestRepository{
		queries: queries,
		db:      db,
	}
}

func (r *GuestRepository) ReplaceForDetail(ctx context.Context, tx sqlc.DBTX, hotelID int32, detailID uuid.UUID, clientIDs []uuid.UUID) error {
	if err := r.queries.DeleteReservationClientsByDetail(ctx, tx, detailID); err != nil {
		return infra.WrapRepoErr("failed to delete reservation guests", err)
	}
	for _, id := range clientIDs {
		params := sqlc.CreateReservationClientParams{
			HotelID:              hotelID,
			ReservationDetailsID: detailID,
			ClientID:             id,
		}
		if err := r.queries.CreateReservationClient(ctx, tx, params); err != nil {
			return infra.WrapRepoErr("failed to create reservation guest", err)
		}
	}
	return nil
}
