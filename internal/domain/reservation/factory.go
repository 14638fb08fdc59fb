package reservation

import (
	"hotel-pms/internal/pkg/clock"

	"github.com/google/uuid"
)

// Factory stamps new aggregates with the current time.
type Factory struct {
	Clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{Clock: clock}
}

func (f *Factory) CreateHold(hotelID int32, clientID uuid.UUID, stay Stay, people int, rtype Type, comment Comment, actor *uuid.UUID) (*Reservation, error) {
	return NewReservation(NewParams{
		HotelID:  hotelID,
		ClientID: clientID,
		Stay:     stay,
		People:   people,
		Status:   StatusHold,
		Type:     rtype,
		Comment:  comment,
		Actor:    actor,
	}, f.Clock.Now())
}

func (f *Factory) CreateConfirmed(p NewParams) (*Reservation, error) {
	p.Status = StatusConfirmed
	return NewReservation(p, f.Clock.Now())
}
