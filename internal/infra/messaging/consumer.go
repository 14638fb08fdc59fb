package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"hotel-pms/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

const maxBackoff = 30 * time.Second

type ReservationChangedHandler func(ctx context.Context, ev shared.ReservationChanged) error

// Consumer delivers reservation-changed events to a handler until ctx is
// done, reconnecting with backoff when the broker goes away.
type Consumer struct {
	url      string
	queue    string
	prefetch int
}

func NewConsumer(url, queue string) *Consumer {
	return &Consumer{url: url, queue: queue, prefetch: 20}
}

func (c *Consumer) Run(ctx context.Context, handle ReservationChangedHandler) error {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(c.url)
		if err != nil {
			slog.Warn("sync consumer: dial failed", "error", err.Error(), "retry_in", backoff.String())
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
			backoff = min(backoff*2, maxBackoff)
			continue
		}
		backoff = time.Second

		err = c.consume(ctx, conn, handle)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		slog.Warn("sync consumer: consume loop ended, reconnecting", "error", err.Error())
		if !sleep(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func (c *Consumer) consume(ctx context.Context, conn *amqp.Connection, handle ReservationChangedHandler) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(c.prefetch, 0, false); err != nil {
		slog.Warn("sync consumer: set QoS failed", "error", err.Error())
	}
	if err := declareQueue(ch, c.queue); err != nil {
		return err
	}

	msgs, err := ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			c.deliver(ctx, d, handle)
		}
	}
}

func (c *Consumer) deliver(ctx context.Context, d amqp.Delivery, handle ReservationChangedHandler) {
	var ev shared.ReservationChanged
	if err := json.Unmarshal(d.Body, &ev); err != nil {
		slog.Error("sync consumer: undecodable message dropped", "error", err.Error())
		_ = d.Nack(false, false)
		return
	}
	if err := handle(ctx, ev); err != nil {
		// Redelivered once; a second failure drops the message.
		slog.Error("sync consumer: handler failed",
			"reservation_id", ev.ReservationID.String(),
			"redelivered", d.Redelivered,
			"error", err.Error())
		_ = d.Nack(false, !d.Redelivered)
		return
	}
	_ = d.Ack(false)
}

func sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
