//go:build unit

package reservation_test

import (
	"strings"
	"testing"
	"time"

	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/pkg/errs"
	"hotel-pms/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReservationBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewReservationBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.errIs), "got %v", err)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, actual)
		})
	}
}

func TestNewReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, reservation.StatusHold, actual.Status())
		assert.Equal(t, reservation.TypeDirect, actual.Type())
		assert.Equal(t, 2, actual.Stay().NumNights())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "no people",
				mutate: func(b *builder.ReservationBuilder) { b.People = 0 },
				errIs:  reservation.ErrNoPeople,
			},
			{
				name:   "unknown status",
				mutate: func(b *builder.ReservationBuilder) { b.Status = "booked" },
				errIs:  errs.ErrValidation,
			},
			{
				name:   "unknown type",
				mutate: func(b *builder.ReservationBuilder) { b.Type = "walk-in" },
				errIs:  reservation.ErrInvalidType,
			},
			{
				name:   "employee type",
				mutate: func(b *builder.ReservationBuilder) { b.Type = reservation.TypeEmployee },
			},
			{
				name:   "empty status defaults to hold",
				mutate: func(b *builder.ReservationBuilder) { b.Status = "" },
			},
		})
	})
}

func TestTransition(t *testing.T) {
	now := builder.BaseDate
	actor := uuid.New()

	cases := []struct {
		from    reservation.Status
		target  reservation.Status
		want    reservation.Status
		allowed bool
	}{
		{reservation.StatusHold, reservation.StatusProvisory, reservation.StatusProvisory, true},
		{reservation.StatusHold, reservation.StatusConfirmed, reservation.StatusConfirmed, true},
		{reservation.StatusHold, reservation.StatusCancelled, reservation.StatusCancelled, true},
		{reservation.StatusProvisory, reservation.StatusConfirmed, reservation.StatusConfirmed, true},
		{reservation.StatusConfirmed, reservation.StatusCancelled, reservation.StatusCancelled, true},
		{reservation.StatusCancelled, reservation.StatusRecovered, reservation.StatusConfirmed, true},
		{reservation.StatusConfirmed, reservation.StatusProvisory, "", false},
		{reservation.StatusCancelled, reservation.StatusConfirmed, "", false},
		{reservation.StatusProvisory, reservation.StatusRecovered, "", false},
	}
	for _, tc := range cases {
		t.Run(string(tc.from)+"->"+string(tc.target), func(t *testing.T) {
			res, err := builder.NewReservationBuilder().WithStatus(tc.from).BuildDomain()
			require.NoError(t, err)

			got, err := res.Transition(tc.target, &actor, now)
			if !tc.allowed {
				assert.True(t, errs.Is(err, reservation.ErrTransitionNotAllowed))
				assert.Equal(t, tc.from, res.Status())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want, res.Status())
			assert.Equal(t, &actor, res.UpdatedBy())
			assert.Equal(t, now, res.UpdatedAt())
		})
	}

	t.Run("hold is not a target", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		_, err = res.Transition(reservation.StatusHold, nil, now)
		assert.True(t, errs.Is(err, reservation.ErrInvalidStatus))
	})
}

func TestAdjustPeople(t *testing.T) {
	res, err := builder.NewReservationBuilder().WithPeople(3).BuildDomain()
	require.NoError(t, err)

	require.NoError(t, res.AdjustPeople(2, nil, builder.BaseDate))
	assert.Equal(t, 5, res.People())

	err = res.AdjustPeople(-5, nil, builder.BaseDate)
	assert.True(t, errs.Is(err, errs.ErrInsufficientCapacity))
	assert.Equal(t, 5, res.People())
}

func TestSplit(t *testing.T) {
	res, err := builder.NewReservationBuilder().WithPeople(4).WithStatus(reservation.StatusConfirmed).BuildDomain()
	require.NoError(t, err)
	stay, err := reservation.NewStay(builder.BaseDate.AddDate(0, 0, 1), builder.BaseDate.AddDate(0, 0, 3))
	require.NoError(t, err)

	split, err := res.Split(stay, 1, nil, builder.BaseDate)
	require.NoError(t, err)

	assert.Equal(t, 3, res.People())
	assert.Equal(t, 1, split.People())
	assert.Equal(t, res.ClientID(), split.ClientID())
	assert.Equal(t, reservation.StatusConfirmed, split.Status())
	assert.True(t, split.Stay().Equal(stay))
	assert.NotEqual(t, res.ID(), split.ID())

	_, err = res.Split(stay, 3, nil, builder.BaseDate)
	assert.Error(t, err)
}

func TestCanHardDelete(t *testing.T) {
	cases := []struct {
		status reservation.Status
		rtype  reservation.Type
		want   bool
	}{
		{reservation.StatusHold, reservation.TypeDirect, true},
		{reservation.StatusProvisory, reservation.TypeDirect, false},
		{reservation.StatusCancelled, reservation.TypeEmployee, true},
		{reservation.StatusConfirmed, reservation.TypeEmployee, false},
	}
	for _, tc := range cases {
		res, err := builder.NewReservationBuilder().WithStatus(tc.status).WithType(tc.rtype).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, tc.want, res.CanHardDelete(), "%s/%s", tc.status, tc.rtype)
	}
}

func TestStay(t *testing.T) {
	t.Run("half-open range", func(t *testing.T) {
		stay, err := reservation.ParseStay("2030-04-10", "2030-04-13")
		require.NoError(t, err)

		nights := stay.Nights()
		require.Len(t, nights, 3)
		assert.Equal(t, "2030-04-12", reservation.FormatDate(nights[2]))
		assert.True(t, stay.Contains(nights[0]))
		assert.False(t, stay.Contains(stay.CheckOut()))
	})

	t.Run("check-out must follow check-in", func(t *testing.T) {
		_, err := reservation.ParseStay("2030-04-10", "2030-04-10")
		assert.True(t, errs.Is(err, reservation.ErrInvalidStay))
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := reservation.ParseStay("2030/04/10", "2030-04-11")
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("span of unsorted nights", func(t *testing.T) {
		d := builder.BaseDate
		stay, ok := reservation.StayOf([]time.Time{d.AddDate(0, 0, 2), d, d.AddDate(0, 0, 1)})

		require.True(t, ok)
		assert.Equal(t, d, stay.CheckIn())
		assert.Equal(t, d.AddDate(0, 0, 3), stay.CheckOut())
	})

	t.Run("shift between stays", func(t *testing.T) {
		a, _ := reservation.ParseStay("2030-04-10", "2030-04-12")
		b, _ := reservation.ParseStay("2030-04-13", "2030-04-15")

		assert.Equal(t, 3, a.ShiftDays(b))
	})
}

func TestComment(t *testing.T) {
	c, err := reservation.NewComment("  late arrival  ")
	require.NoError(t, err)
	assert.Equal(t, "late arrival", c.String())

	_, err = reservation.NewComment(strings.Repeat("あ", 2001))
	assert.ErrorIs(t, err, reservation.ErrCommentTooLong)

	_, err = reservation.NewComment(strings.Repeat("あ", 2000))
	assert.NoError(t, err)
}

func TestNightDetail(t *testing.T) {
	d := reservation.NewNightDetail(1, uuid.New(), 101, builder.BaseDate.Add(15*time.Hour), 2)

	assert.Equal(t, builder.BaseDate, d.Date)
	assert.True(t, d.IsActive())
	assert.False(t, d.Billable)

	token := uuid.New()
	d.Cancel(token, true)
	assert.False(t, d.IsActive())
	assert.True(t, d.Billable)
	assert.Equal(t, token, *d.Cancelled)

	d.Reinstate()
	assert.True(t, d.IsActive())
	assert.True(t, d.Billable)
}

func TestDetailHelpers(t *testing.T) {
	_, details := builder.NewReservationBuilder().MustBuild(205, 1, 2)
	details[0].Cancel(uuid.New(), false)

	assert.Equal(t, []int32{205, 206}, reservation.RoomIDs(details))
	assert.Len(t, reservation.DetailsOfRoom(details, 206), 2)
	assert.Len(t, reservation.ActiveDetails(details), 3)
}
