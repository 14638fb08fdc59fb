package readstore

import (
	"context"
	"time"

	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/domain/room"
	"hotel-pms/internal/infra"
	"hotel-pms/internal/infra/repository/converter"
	sqlc "hotel-pms/internal/infra/sqlc/generated"
	"hotel-pms/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RoomReadQueries interface {
	ListAvailableRooms(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAvailableRoomsParams) ([]sqlc.Rooms, error)
	GetRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.GetRoomParams) (sqlc.Rooms, error)
	ListRoomConflicts(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRoomConflictsParams) ([]pgtype.Date, error)
}

type RoomReadStore struct {
	queries RoomReadQueries
	db      sqlc.DBTX
}

func NewRoomReadStore(queries RoomReadQueries, db sqlc.DBTX) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RoomReadStore) FindAvailable(ctx context.Context, hotelID int32, stay reservation.Stay, filter room.Filter) ([]*room.Room, error) {
	rows, err := r.queries.ListAvailableRooms(ctx, r.db, sqlc.ListAvailableRoomsParams{
		HotelID:     hotelID,
		RoomTypeID:  pgconv.Int32PtrToPgtype(filter.RoomTypeID),
		MinCapacity: pgconv.IntToInt32(filter.MinCapacity),
		Smoking:     pgconv.BoolPtrToPgtype(filter.Smoking),
		CheckIn:     pgconv.DateToPgtype(stay.CheckIn()),
		CheckOut:    pgconv.DateToPgtype(stay.CheckOut()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available rooms", err)
	}
	return converter.RoomsFromRows(rows), nil
}

func (r *RoomReadStore) FindByID(ctx context.Context, hotelID, roomID int32) (*room.Room, error) {
	row, err := r.queries.GetRoom(ctx, r.db, sqlc.GetRoomParams{HotelID: hotelID, ID: roomID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get room", err)
	}
	return converter.RoomFromRow(row), nil
}

func (r *RoomReadStore) Conflicts(ctx context.Context, hotelID, roomID int32, dates []time.Time, exclude []uuid.UUID) ([]time.Time, error) {
	if len(dates) == 0 {
		return nil, nil
	}
	if exclude == nil {
		exclude = []uuid.UUID{}
	}
	rows, err := r.queries.ListRoomConflicts(ctx, r.db, sqlc.ListRoomConflictsParams{
		HotelID:    hotelID,
		RoomID:     roomID,
		Dates:      converter.DatesToPgtype(dates),
		ExcludeIds: exclude,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room conflicts", err)
	}
	out := make([]time.Time, 0, len(rows))
	for _, d := range rows {
		out = append(out, pgconv.DateFromPgtype(d))
	}
	return out, nil
}
