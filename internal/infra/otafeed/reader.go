// Package otafeed reads raw OTA booking notifications from Kafka and hands
// them to the reservation queue.
package otafeed

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"hotel-pms/internal/usecase/commands"

	"github.com/segmentio/kafka-go"
)

const (
	headerHotelID     = "hotel-id"
	headerContentType = "content-type"

	defaultRetryBase = 500 * time.Millisecond
	maxRetryDelay    = 30 * time.Second
)

// Enqueuer persists a raw payload for later reconciliation.
type Enqueuer interface {
	Enqueue(ctx context.Context, req commands.EnqueueRequest) (*commands.EnqueueResult, error)
}

// Fetcher is the part of *kafka.Reader the intake loop drives.
type Fetcher interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Reader struct {
	fetcher   Fetcher
	queue     Enqueuer
	retryBase time.Duration
}

func NewReader(brokers []string, groupID, topic string, queue Enqueuer) *Reader {
	return NewReaderFrom(kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		GroupID: groupID,
		Topic:   topic,
	}), queue, defaultRetryBase)
}

// NewReaderFrom builds a Reader over any Fetcher. retryBase is the first
// delay after a failed read or enqueue; it doubles up to 30s.
func NewReaderFrom(f Fetcher, queue Enqueuer, retryBase time.Duration) *Reader {
	if retryBase <= 0 {
		retryBase = defaultRetryBase
	}
	return &Reader{fetcher: f, queue: queue, retryBase: retryBase}
}

// Run commits a message only once it is stored in the queue or rejected as
// unusable. A consumer group commit acknowledges every earlier offset, so a
// transient enqueue failure blocks the partition and is retried in place.
// Duplicates after a crash are absorbed by the queue's payload hash.
func (r *Reader) Run(ctx context.Context) error {
	delay := r.retryBase
	for {
		m, err := r.fetcher.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return ctx.Err()
			}
			slog.Warn("kafka read error", slog.Any("error", err), slog.String("retry_in", delay.String()))
			if !sleep(ctx, delay) {
				return ctx.Err()
			}
			delay = min(delay*2, maxRetryDelay)
			continue
		}
		delay = r.retryBase

		if err := r.deliver(ctx, m); err != nil {
			return err
		}
		if err := r.fetcher.CommitMessages(ctx, m); err != nil {
			slog.Warn("kafka commit error", slog.Int64("offset", m.Offset), slog.Any("error", err))
		}
	}
}

// deliver returns only when m is enqueued, rejected, or ctx is done.
func (r *Reader) deliver(ctx context.Context, m kafka.Message) error {
	req, ok := requestFrom(m)
	if !ok {
		return nil
	}

	delay := r.retryBase
	for {
		res, err := r.queue.Enqueue(ctx, req)
		if err == nil {
			slog.Info("ota intake: payload enqueued",
				slog.Int64("entry_id", res.EntryID),
				slog.Bool("duplicate", !res.Created),
				slog.Int("partition", m.Partition),
				slog.Int64("offset", m.Offset))
			return nil
		}
		if commands.IsPermanent(err) {
			slog.Warn("ota intake: payload rejected",
				slog.Int64("offset", m.Offset),
				slog.String("error", err.Error()))
			return nil
		}

		slog.Error("ota intake: enqueue failed",
			slog.Int64("offset", m.Offset),
			slog.String("error", err.Error()),
			slog.String("retry_in", delay.String()))
		if !sleep(ctx, delay) {
			return ctx.Err()
		}
		delay = min(delay*2, maxRetryDelay)
	}
}

func (r *Reader) Close() error {
	return r.fetcher.Close()
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func requestFrom(m kafka.Message) (commands.EnqueueRequest, bool) {
	req := commands.EnqueueRequest{Payload: m.Value}
	for _, h := range m.Headers {
		switch h.Key {
		case headerHotelID:
			id, err := strconv.ParseInt(string(h.Value), 10, 32)
			if err != nil {
				slog.Warn("ota intake: invalid hotel id header", slog.String("value", string(h.Value)))
				return req, false
			}
			req.HotelID = int32(id)
		case headerContentType:
			req.ContentType = string(h.Value)
		}
	}
	if req.HotelID == 0 {
		slog.Warn("ota intake: message without hotel id dropped", slog.Int64("offset", m.Offset))
		return req, false
	}
	return req, true
}
