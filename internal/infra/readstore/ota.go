package readstore

import (
	"context"

	"hotel-pms/internal/domain/ota"
	"hotel-pms/internal/domain/rate"
	"hotel-pms/internal/infra"
	"hotel-pms/internal/infra/repository/converter"
	sqlc "hotel-pms/internal/infra/sqlc/generated"
	"hotel-pms/internal/pkg/errs"
	"hotel-pms/internal/pkg/pgconv"
	"hotel-pms/internal/usecase/shared"
)

type OTAMasterQueries interface {
	GetOtaRoomType(ctx context.Context, db sqlc.DBTX, arg sqlc.GetOtaRoomTypeParams) (int32, error)
	GetOtaPlan(ctx context.Context, db sqlc.DBTX, arg sqlc.GetOtaPlanParams) (sqlc.GetOtaPlanRow, error)
}

// OTAMasterReadStore maps OTA codes through the per-hotel master tables.
type OTAMasterReadStore struct {
	queries OTAMasterQueries
	db      sqlc.DBTX
}

func NewOTAMasterReadStore(queries OTAMasterQueries, db sqlc.DBTX) *OTAMasterReadStore {
	return &OTAMasterReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OTAMasterReadStore) RoomTypeByOTACode(ctx context.Context, hotelID int32, code string) (int32, error) {
	id, err := r.queries.GetOtaRoomType(ctx, r.db, sqlc.GetOtaRoomTypeParams{HotelID: hotelID, Netroomtypegroupcode: code})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, errs.Kindf(ota.ErrUnmappedRoomType, "OTA room type code %q is not mapped for hotel %d", code, hotelID)
		}
		return 0, infra.WrapRepoErr("failed to look up OTA room type", err)
	}
	return id, nil
}

func (r *OTAMasterReadStore) PlanByOTACode(ctx context.Context, hotelID int32, code string) (rate.PlanRef, error) {
	row, err := r.queries.GetOtaPlan(ctx, r.db, sqlc.GetOtaPlanParams{HotelID: hotelID, Plangroupcode: code})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return rate.PlanRef{}, errs.Kindf(ota.ErrUnmappedPlan, "OTA plan code %q is not mapped for hotel %d", code, hotelID)
		}
		return rate.PlanRef{}, infra.WrapRepoErr("failed to look up OTA plan", err)
	}
	ref := rate.PlanRef{
		GlobalID: pgconv.Int32PtrFromPgtype(row.PlansGlobalID),
		HotelID:  pgconv.Int32PtrFromPgtype(row.PlansHotelID),
	}
	if ref.IsZero() {
		return rate.PlanRef{}, errs.Kindf(ota.ErrUnmappedPlan, "OTA plan code %q maps to no plan", code)
	}
	return ref, nil
}

type OTAQueueReadQueries interface {
	GetOtaQueueEntry(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.OtaReservationQueue, error)
}

type OTAQueueReadStore struct {
	queries OTAQueueReadQueries
	db      sqlc.DBTX
}

func NewOTAQueueReadStore(queries OTAQueueReadQueries, db sqlc.DBTX) *OTAQueueReadStore {
	return &OTAQueueReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OTAQueueReadStore) FindByID(ctx context.Context, id int64) (*shared.QueueEntry, error) {
	row, err := r.queries.GetOtaQueueEntry(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("OTA queue entry not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get OTA queue entry", err)
	}
	e := converter.QueueEntryFromRow(row)
	return &e, nil
}
