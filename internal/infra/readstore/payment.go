package readstore

import (
	"context"

	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/infra"
	"hotel-pms/internal/infra/repository/converter"
	sqlc "hotel-pms/internal/infra/sqlc/generated"
	"hotel-pms/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PaymentReadQueries interface {
	GetPaymentByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ReservationPayments, error)
	GetPaymentType(ctx context.Context, db sqlc.DBTX, arg sqlc.GetPaymentTypeParams) (sqlc.PaymentTypes, error)
	GetPaymentTypeByKind(ctx context.Context, db sqlc.DBTX, arg sqlc.GetPaymentTypeByKindParams) (sqlc.PaymentTypes, error)
}

type PaymentReadStore struct {
	queries PaymentReadQueries
	db      sqlc.DBTX
}

func NewPaymentReadStore(queries PaymentReadQueries, db sqlc.DBTX) *PaymentReadStore {
	return &PaymentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Payment, error) {
	row, err := r.queries.GetPaymentByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get payment", err)
	}
	p := converter.PaymentFromRow(row)
	return &p, nil
}

func (r *PaymentReadStore) Type(ctx context.Context, hotelID, id int32) (*reservation.PaymentType, error) {
	row, err := r.queries.GetPaymentType(ctx, r.db, sqlc.GetPaymentTypeParams{HotelID: hotelID, ID: id})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get payment type", err)
	}
	pt := converter.PaymentTypeFromRow(row)
	return &pt, nil
}

func (r *PaymentReadStore) TypeByKind(ctx context.Context, hotelID int32, kind reservation.PaymentKind) (*reservation.PaymentType, error) {
	row, err := r.queries.GetPaymentTypeByKind(ctx, r.db, sqlc.GetPaymentTypeByKindParams{HotelID: hotelID, Kind: string(kind)})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment type not configured for kind "+string(kind), err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get payment type by kind", err)
	}
	pt := converter.PaymentTypeFromRow(row)
	return &pt, nil
}
