package commands

import (
	"context"
	"log/slog"
	"time"

	"hotel-pms/internal/pkg/clock"
	"hotel-pms/internal/usecase/shared"

	"github.com/google/uuid"
)

const publishTimeout = 5 * time.Second

// changeNotifier announces committed reservation changes without making
// the caller wait; failures are only logged.
type changeNotifier struct {
	publisher shared.SyncPublisher
	clock     clock.Clock
}

func newChangeNotifier(publisher shared.SyncPublisher, clock clock.Clock) *changeNotifier {
	return &changeNotifier{publisher: publisher, clock: clock}
}

func (n *changeNotifier) reservationsChanged(hotelID int32, ids ...uuid.UUID) {
	if n == nil || n.publisher == nil || len(ids) == 0 {
		return
	}
	now := n.clock.Now()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		for _, id := range ids {
			ev := shared.ReservationChanged{ReservationID: id, HotelID: hotelID, OccurredAt: now}
			if err := n.publisher.PublishReservationChanged(ctx, ev); err != nil {
				slog.Warn("failed to publish reservation change",
					"reservation_id", id.String(),
					"hotel_id", hotelID,
					"error", err.Error())
			}
		}
	}()
}
