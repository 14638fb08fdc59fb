package repository

import (
	"context"

	"hotel-pms/internal/infra"
	"hotel-pms/internal/infra/repository/converter"
	sqlc "hotel-pms/internal/infra/sqlc/generated"
	"hotel-pms/internal/pkg/pgconv"
	"hotel-pms/internal/usecase/shared"
)

// maxErrorLength bounds the failure reason kept on a queue entry.
const maxErrorLength = 2000

type OTAQueueWriteQueries interface {
	EnqueueOtaReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.EnqueueOtaReservationParams) (int64, error)
	GetOtaQueueEntryByHash(ctx context.Context, db sqlc.DBTX, arg sqlc.GetOtaQueueEntryByHashParams) (sqlc.OtaReservationQueue, error)
	ClaimPendingOtaEntries(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.OtaReservationQueue, error)
	MarkOtaEntrySucceeded(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
	MarkOtaEntryFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOtaEntryFailedParams) (int64, error)
	RequeueOtaEntry(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type OTAQueueRepository struct {
	queries OTAQueueWriteQueries
	db      sqlc.DBTX
}

func NewOTAQueueRepository(queries OTAQueueWriteQueries, db sqlc.DBTX) *OTAQueueRepository {
	return &OTAQueueRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OTAQueueRepository) Enqueue(ctx context.Context, tx sqlc.DBTX, e shared.QueueEntry) (int64, bool, error) {
	id, err := r.queries.EnqueueOtaReservation(ctx, tx, converter.QueueEntryToEnqueueParams(e))
	if err == nil {
		return id, true, nil
	}
	if !pgconv.IsNoRows(err) {
		return 0, false, infra.WrapRepoErr("failed to enqueue OTA payload", err)
	}

	existing, err := r.queries.GetOtaQueueEntryByHash(ctx, tx, sqlc.GetOtaQueueEntryByHashParams{
		HotelID:     e.HotelID,
		PayloadHash: e.PayloadHash,
	})
	if err != nil {
		return 0, false, infra.WrapRepoErr("failed to load queued OTA payload", err)
	}
	return existing.ID, false, nil
}

func (r *OTAQueueRepository) ClaimPending(ctx context.Context, tx sqlc.DBTX, limit int) ([]shared.QueueEntry, error) {
	rows, err := r.queries.ClaimPendingOtaEntries(ctx, tx, pgconv.IntToInt32(limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim pending OTA entries", err)
	}
	out := make([]shared.QueueEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, converter.QueueEntryFromRow(row))
	}
	return out, nil
}

func (r *OTAQueueRepository) MarkSucceeded(ctx context.Context, tx sqlc.DBTX, id int64) error {
	n, err := r.queries.MarkOtaEntrySucceeded(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to mark OTA entry succeeded", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("OTA queue entry not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OTAQueueRepository) MarkFailed(ctx context.Context, tx sqlc.DBTX, id int64, reason string) error {
	if runes := []rune(reason); len(runes) > maxErrorLength {
		reason = string(runes[:maxErrorLength])
	}
	n, err := r.queries.MarkOtaEntryFailed(ctx, tx, sqlc.MarkOtaEntryFailedParams{
		ID:        id,
		LastError: pgconv.StringToPgtype(reason),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark OTA entry failed", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("OTA queue entry not found", nil, infra.KindNotFound)
	}
	return nil
}

// Requeue reports NotFound both for unknown entries and for entries that are not failed.
func (r *OTAQueueRepository) Requeue(ctx context.Context, tx sqlc.DBTX, id int64) error {
	n, err := r.queries.RequeueOtaEntry(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to requeue OTA entry", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("failed OTA queue entry not found", nil, infra.KindNotFound)
	}
	return nil
}
