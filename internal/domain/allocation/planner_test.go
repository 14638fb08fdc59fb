//go:build unit

package allocation_test

import (
	"testing"

	"hotel-pms/internal/domain/allocation"
	"hotel-pms/internal/domain/room"
	"hotel-pms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rooms(specs ...[3]int) []*room.Room {
	out := make([]*room.Room, len(specs))
	for i, s := range specs {
		out[i] = room.Reconstruct(int32(s[0]), 1, int32(s[1]), "R", s[2], 1, false, true)
	}
	return out
}

func TestBestFitSingle(t *testing.T) {
	t.Run("exact capacity room wins", func(t *testing.T) {
		plan, err := allocation.BestFitSingle(rooms([3]int{1, 1, 2}, [3]int{2, 1, 3}, [3]int{3, 1, 4}), 3)
		require.NoError(t, err)

		require.Len(t, plan, 1)
		assert.Equal(t, int32(2), plan[0].RoomID)
		assert.Equal(t, 3, plan[0].Occupants)
	})

	t.Run("smallest larger room when no exact fit", func(t *testing.T) {
		plan, err := allocation.BestFitSingle(rooms([3]int{1, 1, 2}, [3]int{2, 1, 4}, [3]int{3, 1, 6}), 3)
		require.NoError(t, err)

		require.Len(t, plan, 1)
		assert.Equal(t, int32(2), plan[0].RoomID)
	})

	t.Run("largest room first when nothing holds everyone", func(t *testing.T) {
		plan, err := allocation.BestFitSingle(rooms([3]int{1, 1, 2}, [3]int{2, 1, 2}, [3]int{3, 1, 3}), 5)
		require.NoError(t, err)

		require.Len(t, plan, 2)
		assert.Equal(t, int32(3), plan[0].RoomID)
		assert.Equal(t, 3, plan[0].Occupants)
		assert.Equal(t, int32(1), plan[1].RoomID)
		assert.Equal(t, 2, plan[1].Occupants)
		assert.Equal(t, 5, plan.People())
	})

	t.Run("insufficient total capacity", func(t *testing.T) {
		_, err := allocation.BestFitSingle(rooms([3]int{1, 1, 2}, [3]int{2, 1, 2}), 5)

		require.Error(t, err)
		assert.True(t, errs.Is(err, allocation.ErrNotEnoughRoom))
		assert.True(t, errs.Is(err, errs.ErrInsufficientCapacity))
	})

	t.Run("non-positive party", func(t *testing.T) {
		_, err := allocation.BestFitSingle(rooms([3]int{1, 1, 2}), 0)

		assert.ErrorIs(t, err, allocation.ErrNoPeople)
	})

	t.Run("ties broken by room id", func(t *testing.T) {
		plan, err := allocation.BestFitSingle(rooms([3]int{9, 1, 2}, [3]int{4, 1, 2}), 2)
		require.NoError(t, err)

		assert.Equal(t, []int32{4}, plan.RoomIDs())
	})
}

func TestComboByType(t *testing.T) {
	pool := rooms(
		[3]int{1, 10, 1},
		[3]int{2, 10, 2},
		[3]int{3, 10, 4},
		[3]int{4, 20, 2},
		[3]int{5, 20, 2},
	)

	t.Run("one occupant per room then spare capacity", func(t *testing.T) {
		plan, err := allocation.ComboByType(pool, []allocation.TypeRequest{{RoomTypeID: 20, Rooms: 2, People: 3}})
		require.NoError(t, err)

		require.Len(t, plan, 2)
		assert.Equal(t, int32(4), plan[0].RoomID)
		assert.Equal(t, 2, plan[0].Occupants)
		assert.Equal(t, int32(5), plan[1].RoomID)
		assert.Equal(t, 1, plan[1].Occupants)
	})

	t.Run("upgrades to a larger room of the same type", func(t *testing.T) {
		plan, err := allocation.ComboByType(pool, []allocation.TypeRequest{{RoomTypeID: 10, Rooms: 2, People: 5}})
		require.NoError(t, err)

		require.Len(t, plan, 2)
		assert.Equal(t, 5, plan.People())
		assert.ElementsMatch(t, []int32{2, 3}, plan.RoomIDs())
	})

	t.Run("duplicate types merged", func(t *testing.T) {
		plan, err := allocation.ComboByType(pool, []allocation.TypeRequest{
			{RoomTypeID: 20, Rooms: 1, People: 1},
			{RoomTypeID: 20, Rooms: 1, People: 1},
		})
		require.NoError(t, err)

		assert.Len(t, plan, 2)
	})

	t.Run("every failing type reported", func(t *testing.T) {
		_, err := allocation.ComboByType(pool, []allocation.TypeRequest{
			{RoomTypeID: 10, Rooms: 3, People: 9},
			{RoomTypeID: 20, Rooms: 3, People: 3},
			{RoomTypeID: 30, Rooms: 1, People: 1},
		})
		require.Error(t, err)

		var combo *allocation.ComboError
		require.True(t, errs.As(err, &combo))
		assert.Len(t, combo.Failures, 3)
		assert.True(t, errs.Is(err, errs.ErrInsufficientCapacity))
	})

	t.Run("fewer people than rooms", func(t *testing.T) {
		_, err := allocation.ComboByType(pool, []allocation.TypeRequest{{RoomTypeID: 20, Rooms: 2, People: 1}})

		var combo *allocation.ComboError
		require.True(t, errs.As(err, &combo))
		assert.Equal(t, int32(20), combo.Failures[0].RoomTypeID)
	})

	t.Run("empty request", func(t *testing.T) {
		_, err := allocation.ComboByType(pool, nil)

		assert.ErrorIs(t, err, allocation.ErrNoRequests)
	})
}

func TestSpecific(t *testing.T) {
	pool := rooms([3]int{1, 10, 2}, [3]int{2, 10, 4})

	t.Run("room fits", func(t *testing.T) {
		plan, err := allocation.Specific(pool, 2, 3)
		require.NoError(t, err)

		require.Len(t, plan, 1)
		assert.Equal(t, 3, plan[0].Occupants)
	})

	t.Run("party too large", func(t *testing.T) {
		_, err := allocation.Specific(pool, 1, 3)

		assert.True(t, errs.Is(err, allocation.ErrNotEnoughRoom))
	})

	t.Run("room not free", func(t *testing.T) {
		_, err := allocation.Specific(pool, 99, 1)

		assert.True(t, errs.Is(err, errs.ErrInsufficientCapacity))
	})
}

func TestPickForType(t *testing.T) {
	pool := rooms([3]int{1, 10, 1}, [3]int{2, 10, 2}, [3]int{3, 10, 4}, [3]int{4, 20, 2})

	t.Run("smallest room that fits", func(t *testing.T) {
		a, ok := allocation.PickForType(pool, 10, 2, nil)

		require.True(t, ok)
		assert.Equal(t, int32(2), a.RoomID)
	})

	t.Run("taken rooms skipped", func(t *testing.T) {
		a, ok := allocation.PickForType(pool, 10, 2, map[int32]bool{2: true})

		require.True(t, ok)
		assert.Equal(t, int32(3), a.RoomID)
	})

	t.Run("no room of the type holds the party", func(t *testing.T) {
		_, ok := allocation.PickForType(pool, 10, 6, nil)

		assert.False(t, ok)
	})

	t.Run("only room large enough is taken", func(t *testing.T) {
		_, ok := allocation.PickForType(pool, 10, 3, map[int32]bool{3: true})

		assert.False(t, ok)
	})

	t.Run("type exhausted", func(t *testing.T) {
		_, ok := allocation.PickForType(pool, 20, 1, map[int32]bool{4: true})

		assert.False(t, ok)
	})
}
