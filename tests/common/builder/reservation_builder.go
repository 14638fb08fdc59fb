//go:build unit || e2e

package builder

import (
	"fmt"
	"time"

	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/domain/room"
	reqdto "hotel-pms/internal/handler/dto/request"

	"github.com/google/uuid"
)

var BaseDate = time.Date(2030, 4, 10, 0, 0, 0, 0, time.UTC)

type ReservationBuilder struct {
	HotelID  int32
	ClientID uuid.UUID
	CheckIn  time.Time
	Nights   int
	People   int
	Status   reservation.Status
	Type     reservation.Type
	OTARef   *string
	Comment  string
	Now      time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		HotelID:  1,
		ClientID: uuid.New(),
		CheckIn:  BaseDate,
		Nights:   2,
		People:   2,
		Status:   reservation.StatusHold,
		Type:     reservation.TypeDirect,
		Now:      BaseDate.AddDate(0, 0, -30),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithStatus(s reservation.Status) *ReservationBuilder {
	b.Status = s
	return b
}

func (b *ReservationBuilder) WithType(t reservation.Type) *ReservationBuilder {
	b.Type = t
	return b
}

func (b *ReservationBuilder) WithPeople(n int) *ReservationBuilder {
	b.People = n
	return b
}

func (b *ReservationBuilder) WithNights(n int) *ReservationBuilder {
	b.Nights = n
	return b
}

func (b *ReservationBuilder) Stay() reservation.Stay {
	stay, err := reservation.NewStay(b.CheckIn, b.CheckIn.AddDate(0, 0, b.Nights))
	if err != nil {
		panic(err)
	}
	return stay
}

func (b *ReservationBuilder) Params() reservation.NewParams {
	comment, _ := reservation.NewComment(b.Comment)
	return reservation.NewParams{
		HotelID:          b.HotelID,
		ClientID:         b.ClientID,
		Stay:             b.Stay(),
		People:           b.People,
		Status:           b.Status,
		Type:             b.Type,
		OTAReservationID: b.OTARef,
		Comment:          comment,
	}
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	return reservation.NewReservation(b.Params(), b.Now)
}

// MustBuild builds the reservation and its nights, one room per entry of
// roomPeople, in room id order starting at firstRoom.
func (b *ReservationBuilder) MustBuild(firstRoom int32, roomPeople ...int) (*reservation.Reservation, []reservation.NightDetail) {
	res, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	var details []reservation.NightDetail
	for i, people := range roomPeople {
		for _, night := range res.Stay().Nights() {
			details = append(details, reservation.NewNightDetail(b.HotelID, res.ID(), firstRoom+int32(i), night, people))
		}
	}
	return res, details
}

func (b *ReservationBuilder) BuildHoldRequest() reqdto.CreateHoldRequest {
	return reqdto.CreateHoldRequest{
		CheckIn:  reservation.FormatDate(b.CheckIn),
		CheckOut: reservation.FormatDate(b.CheckIn.AddDate(0, 0, b.Nights)),
		People:   b.People,
		Mode:     "best-fit-single",
		Client: &reqdto.ClientRequest{
			Name: "Taro Yamada",
		},
	}
}

// Room builds a for-sale room of the given type.
func Room(id, roomTypeID int32, capacity int) *room.Room {
	return room.Reconstruct(id, 1, roomTypeID, fmt.Sprintf("%d", id), capacity, 1, false, true)
}
