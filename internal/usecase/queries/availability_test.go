//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/domain/room"
	"hotel-pms/internal/pkg/errs"
	"hotel-pms/internal/pkg/ptr"
	"hotel-pms/internal/usecase/queries"
	"hotel-pms/tests/common/builder"
	queriesmock "hotel-pms/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityQueriesTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	repo     *queriesmock.MockAvailabilityViewRepo
	queries  queries.AvailabilityQueries
}

func (s *AvailabilityQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.repo = queriesmock.NewMockAvailabilityViewRepo(s.mockCtrl)
	s.queries = queries.NewAvailabilityQueries(s.repo)
}

func (s *AvailabilityQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityQueriesSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityQueriesTestSuite))
}

func (s *AvailabilityQueriesTestSuite) TestAvailableRooms() {
	s.Run("rooms are projected in repository order", func() {
		s.SetupTest()
		s.repo.EXPECT().
			FindAvailable(gomock.Any(), int32(1), gomock.Any(), room.Filter{}).
			DoAndReturn(func(_ context.Context, _ int32, stay reservation.Stay, _ room.Filter) ([]*room.Room, error) {
				s.Equal("2030-04-10", stay.CheckIn().Format("2006-01-02"))
				s.Equal("2030-04-12", stay.CheckOut().Format("2006-01-02"))
				return []*room.Room{builder.Room(101, 10, 2), builder.Room(201, 20, 4)}, nil
			})

		views, err := s.queries.AvailableRooms(s.ctx, queries.AvailabilityRequest{
			HotelID: 1, CheckIn: "2030-04-10", CheckOut: "2030-04-12",
		})

		s.Require().NoError(err)
		s.Require().Len(views, 2)
		s.Equal(queries.AvailableRoomView{ID: 201, RoomTypeID: 20, Number: "201", Capacity: 4, Floor: 1}, *views[1])
	})

	s.Run("filter is applied again on the returned rooms", func() {
		s.SetupTest()
		filter := room.Filter{MinCapacity: 3, Smoking: ptr.Of(true)}
		smoker := room.Reconstruct(301, 1, 20, "301", 4, 3, true, true)
		s.repo.EXPECT().
			FindAvailable(gomock.Any(), int32(1), gomock.Any(), filter).
			Return([]*room.Room{builder.Room(101, 10, 2), builder.Room(201, 20, 4), smoker}, nil)

		views, err := s.queries.AvailableRooms(s.ctx, queries.AvailabilityRequest{
			HotelID: 1, CheckIn: "2030-04-10", CheckOut: "2030-04-12", Filter: filter,
		})

		s.Require().NoError(err)
		s.Require().Len(views, 1)
		s.Equal(int32(301), views[0].ID)
		s.True(views[0].Smoking)
	})

	s.Run("nothing free is an empty result", func() {
		s.SetupTest()
		s.repo.EXPECT().FindAvailable(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		views, err := s.queries.AvailableRooms(s.ctx, queries.AvailabilityRequest{
			HotelID: 1, CheckIn: "2030-04-10", CheckOut: "2030-04-12",
		})

		s.Require().NoError(err)
		s.NotNil(views)
		s.Empty(views)
	})

	s.Run("inverted stay is rejected before the lookup", func() {
		s.SetupTest()

		_, err := s.queries.AvailableRooms(s.ctx, queries.AvailabilityRequest{
			HotelID: 1, CheckIn: "2030-04-12", CheckOut: "2030-04-10",
		})

		s.True(errs.Is(err, reservation.ErrInvalidStay))
		s.True(errs.Is(err, errs.ErrValidation))
	})

	s.Run("repository failure is returned", func() {
		s.SetupTest()
		boom := errors.New("connection reset")
		s.repo.EXPECT().FindAvailable(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, boom)

		_, err := s.queries.AvailableRooms(s.ctx, queries.AvailabilityRequest{
			HotelID: 1, CheckIn: "2030-04-10", CheckOut: "2030-04-12",
		})

		s.ErrorIs(err, boom)
	})
}
