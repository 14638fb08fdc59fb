package shared

import (
	"context"
	"time"

	"hotel-pms/internal/domain/ota"
	"hotel-pms/internal/domain/rate"

	"github.com/google/uuid"
)

type QueueStatus string

const (
	QueuePending   QueueStatus = "pending"
	QueueFailed    QueueStatus = "failed"
	QueueSucceeded QueueStatus = "succeeded"
)

// QueueEntry is one raw OTA payload awaiting reconciliation.
type QueueEntry struct {
	ID          int64
	HotelID     int32
	BookingRef  string
	Transaction ota.TransactionType
	ContentType string
	Payload     []byte
	PayloadHash string
	Status      QueueStatus
	Attempts    int
	LastError   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MasterData maps OTA codes onto the hotel's own room types and plans.
type MasterData interface {
	RoomTypeByOTACode(ctx context.Context, hotelID int32, code string) (int32, error)
	PlanByOTACode(ctx context.Context, hotelID int32, code string) (rate.PlanRef, error)
}

type ReservationChanged struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	HotelID       int32     `json:"hotel_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// SyncPublisher announces committed reservation changes to external mirrors.
type SyncPublisher interface {
	PublishReservationChanged(ctx context.Context, ev ReservationChanged) error
}
