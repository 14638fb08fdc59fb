package queries

import (
	"context"

	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/domain/room"
)

type AvailableRoomView struct {
	ID         int32  `json:"id"`
	RoomTypeID int32  `json:"room_type_id"`
	Number     string `json:"room_number"`
	Capacity   int    `json:"capacity"`
	Floor      int    `json:"floor"`
	Smoking    bool   `json:"smoking"`
}

type AvailabilityRequest struct {
	HotelID  int32
	CheckIn  string
	CheckOut string
	Filter   room.Filter
}

// AvailabilityQueries is the room availability index. A room is available
// when it is for sale and has no active night inside the stay.
type AvailabilityQueries interface {
	AvailableRooms(ctx context.Context, req AvailabilityRequest) ([]*AvailableRoomView, error)
}

type AvailabilityViewRepo interface {
	FindAvailable(ctx context.Context, hotelID int32, stay reservation.Stay, filter room.Filter) ([]*room.Room, error)
}

type availabilityQueriesImpl struct {
	repo AvailabilityViewRepo
}

func NewAvailabilityQueries(repo AvailabilityViewRepo) AvailabilityQueries {
	return &availabilityQueriesImpl{repo: repo}
}

func (q *availabilityQueriesImpl) AvailableRooms(ctx context.Context, req AvailabilityRequest) ([]*AvailableRoomView, error) {
	stay, err := reservation.ParseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}
	rooms, err := q.repo.FindAvailable(ctx, req.HotelID, stay, req.Filter)
	if err != nil {
		return nil, err
	}

	views := make([]*AvailableRoomView, 0, len(rooms))
	for _, r := range rooms {
		if !req.Filter.Match(r) {
			continue
		}
		views = append(views, &AvailableRoomView{
			ID:         r.ID(),
			RoomTypeID: r.RoomTypeID(),
			Number:     r.Number(),
			Capacity:   r.Capacity(),
			Floor:      r.Floor(),
			Smoking:    r.Smoking(),
		})
	}
	return views, nil
}
