package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"hotel-pms/internal/domain/ota"
	"hotel-pms/internal/pkg/clock"
	"hotel-pms/internal/pkg/errs"
	"hotel-pms/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmptyPayload   = errs.NewKind("OTA payload is empty", errs.ErrValidation)
	ErrInvalidHotel   = errs.NewKind("hotel id must be positive", errs.ErrValidation)
	ErrEntryNotFailed = errs.NewKind("only failed queue entries can be replayed", errs.ErrConflict)
)

// OTAQueue persists raw OTA payloads and reconciles them in order. Failed
// entries keep their payload and can be replayed.
type OTAQueue struct {
	uow        shared.UnitOfWork
	reconciler *Reconciler
	batchSize  int
	notifier   *changeNotifier
}

func NewOTAQueue(uow shared.UnitOfWork, reconciler *Reconciler, publisher shared.SyncPublisher, clock clock.Clock, batchSize int) *OTAQueue {
	if batchSize <= 0 {
		batchSize = 20
	}
	return &OTAQueue{
		uow:        uow,
		reconciler: reconciler,
		batchSize:  batchSize,
		notifier:   newChangeNotifier(publisher, clock),
	}
}

// Enqueue stores a payload once per hotel. The payload is decoded up front
// so malformed notifications are rejected instead of queued.
func (q *OTAQueue) Enqueue(ctx context.Context, req EnqueueRequest) (*EnqueueResult, error) {
	if req.HotelID <= 0 {
		return nil, errs.Normalize(ErrInvalidHotel)
	}
	if len(req.Payload) == 0 {
		return nil, errs.Normalize(ErrEmptyPayload)
	}
	contentType := ota.NormalizeContentType(req.ContentType, req.Payload)
	b, err := ota.Decode(contentType, req.Payload)
	if err != nil {
		return nil, errs.Normalize(err)
	}

	sum := sha256.Sum256(req.Payload)
	entry := shared.QueueEntry{
		HotelID:     req.HotelID,
		BookingRef:  b.BookingRef,
		Transaction: b.Transaction,
		ContentType: contentType,
		Payload:     req.Payload,
		PayloadHash: hex.EncodeToString(sum[:]),
		Status:      shared.QueuePending,
	}

	result := &EnqueueResult{BookingRef: b.BookingRef, Transaction: b.Transaction}
	err = q.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, created, err := tx.OTAQueue().Enqueue(ctx, tx.DB(), entry)
		if err != nil {
			return err
		}
		result.EntryID, result.Created = id, created
		return nil
	})
	if err != nil {
		return nil, errs.Normalize(err)
	}
	return result, nil
}

// ProcessPending reconciles up to one batch of pending entries, each in its
// own transaction together with its status update. A failing entry is
// rolled back and then marked failed separately.
func (q *OTAQueue) ProcessPending(ctx context.Context) (ProcessStats, error) {
	var stats ProcessStats
	for stats.Claimed < q.batchSize {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		var (
			entry   *shared.QueueEntry
			applied uuid.UUID
		)
		err := q.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			claimed, err := tx.OTAQueue().ClaimPending(ctx, tx.DB(), 1)
			if err != nil || len(claimed) == 0 {
				return err
			}
			entry = &claimed[0]

			id, err := q.reconciler.Using(shared.Join(tx)).ApplyPayload(ctx, entry.HotelID, entry.ContentType, entry.Payload)
			if err != nil {
				return err
			}
			applied = id
			return tx.OTAQueue().MarkSucceeded(ctx, tx.DB(), entry.ID)
		})
		if entry == nil {
			if err != nil {
				return stats, errs.Normalize(err)
			}
			return stats, nil
		}
		stats.Claimed++

		if err != nil {
			stats.Failed++
			q.markFailed(ctx, entry, err)
			continue
		}
		stats.Succeeded++
		slog.Info("OTA queue entry applied",
			"entry_id", entry.ID,
			"booking_ref", entry.BookingRef,
			"transaction", string(entry.Transaction),
			"reservation_id", applied.String())
		q.notifier.reservationsChanged(entry.HotelID, applied)
	}
	return stats, nil
}

func (q *OTAQueue) markFailed(ctx context.Context, entry *shared.QueueEntry, cause error) {
	slog.Error("OTA queue entry failed",
		"entry_id", entry.ID,
		"booking_ref", entry.BookingRef,
		"transaction", string(entry.Transaction),
		"error", cause.Error())

	err := q.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.OTAQueue().MarkFailed(ctx, tx.DB(), entry.ID, cause.Error())
	})
	if err != nil {
		slog.Error("failed to mark OTA queue entry failed", "entry_id", entry.ID, "error", err.Error())
	}
}

// Replay puts a failed entry back in the pending queue.
func (q *OTAQueue) Replay(ctx context.Context, entryID int64) error {
	err := q.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entry, err := tx.Reads().QueueEntry(ctx, entryID)
		if err != nil {
			return err
		}
		if entry.Status != shared.QueueFailed {
			return errs.Kindf(ErrEntryNotFailed, "queue entry %d is %s", entryID, entry.Status)
		}
		return tx.OTAQueue().Requeue(ctx, tx.DB(), entryID)
	})
	if err != nil {
		return errs.Normalize(err)
	}
	slog.Info("OTA queue entry requeued", "entry_id", entryID)
	return nil
}

// Poll processes pending entries every interval until ctx is done.
func (q *OTAQueue) Poll(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		stats, err := q.ProcessPending(ctx)
		if err != nil && ctx.Err() == nil {
			slog.Error("OTA queue poll failed", "error", err.Error())
		}
		if stats.Claimed > 0 {
			slog.Info("OTA queue batch processed",
				"claimed", stats.Claimed,
				"succeeded", stats.Succeeded,
				"failed", stats.Failed)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
