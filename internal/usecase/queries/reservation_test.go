//go:build unit

package queries_test

import (
	"context"
	"testing"

	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/pkg/errs"
	"hotel-pms/internal/usecase/queries"
	queriesmock "hotel-pms/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReservationQueriesGetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := queriesmock.NewMockReservationViewRepo(ctrl)
	q := queries.NewReservationQueries(repo)

	t.Run("view is returned as read", func(t *testing.T) {
		id := uuid.New()
		want := &queries.ReservationView{ID: id, HotelID: 1, Status: "hold", Nights: []queries.NightView{{Date: "2030-04-10", RoomID: 101}}}
		repo.EXPECT().FindByID(gomock.Any(), id).Return(want, nil)

		got, err := q.GetByID(context.Background(), id)
		require.NoError(t, err)
		require.Same(t, want, got)
	})

	t.Run("not found passes through", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, reservation.ErrReservationNotFound)

		_, err := q.GetByID(context.Background(), uuid.New())
		require.True(t, errs.Is(err, reservation.ErrReservationNotFound))
	})
}
