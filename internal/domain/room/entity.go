package room

import (
	"strings"

	"hotel-pms/internal/pkg/errs"
)

var (
	ErrEmptyRoomNumber     = errs.NewKind("room number cannot be empty", errs.ErrValidation)
	ErrNonPositiveCapacity = errs.NewKind("room capacity must be positive", errs.ErrValidation)
	ErrRoomNotFound        = errs.NewKind("room not found", errs.ErrNotFound)
)

type Room struct {
	id         int32
	hotelID    int32
	roomTypeID int32
	number     string
	capacity   int
	floor      int
	smoking    bool
	forSale    bool
}

func NewRoom(id, hotelID, roomTypeID int32, number string, capacity, floor int, smoking, forSale bool) (*Room, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrEmptyRoomNumber
	}
	if capacity <= 0 {
		return nil, ErrNonPositiveCapacity
	}
	return &Room{
		id:         id,
		hotelID:    hotelID,
		roomTypeID: roomTypeID,
		number:     number,
		capacity:   capacity,
		floor:      floor,
		smoking:    smoking,
		forSale:    forSale,
	}, nil
}

// Reconstruct rebuilds a room from persisted state without validation.
func Reconstruct(id, hotelID, roomTypeID int32, number string, capacity, floor int, smoking, forSale bool) *Room {
	return &Room{
		id:         id,
		hotelID:    hotelID,
		roomTypeID: roomTypeID,
		number:     number,
		capacity:   capacity,
		floor:      floor,
		smoking:    smoking,
		forSale:    forSale,
	}
}

func (r *Room) Fits(people int) bool {
	return people > 0 && people <= r.capacity
}

func (r *Room) ID() int32         { return r.id }
func (r *Room) HotelID() int32    { return r.hotelID }
func (r *Room) RoomTypeID() int32 { return r.roomTypeID }
func (r *Room) Number() string    { return r.number }
func (r *Room) Capacity() int     { return r.capacity }
func (r *Room) Floor() int        { return r.floor }
func (r *Room) Smoking() bool     { return r.smoking }
func (r *Room) ForSale() bool     { return r.forSale }
