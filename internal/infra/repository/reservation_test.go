//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/infra"
	"hotel-pms/internal/infra/repository"
	sqlc "hotel-pms/internal/infra/sqlc/generated"
	"hotel-pms/internal/pkg/errs"
	"hotel-pms/internal/pkg/pgconv"
	"hotel-pms/tests/common/builder"
	repositorymock "hotel-pms/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Reservation Tests
// =============================================================================

func TestReservationRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockReservationWriteQueries, *reservation.Reservation, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: reservation created",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, res *reservation.Reservation, tx sqlc.DBTX) {
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateReservationParams) error {
						assert.Equal(t, res.ID(), arg.ID)
						assert.Equal(t, "hold", arg.Status)
						return nil
					})
			},
			expectedError: false,
		},
		{
			name: "error: duplicate OTA reference",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, res *reservation.Reservation, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).Return(dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
		{
			name: "error: unknown client",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, res *reservation.Reservation, tx sqlc.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).Return(fk)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, res *reservation.Reservation, tx sqlc.DBTX) {
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			res, err := builder.NewReservationBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, res, mockDB)

			actualError := repo.Create(ctx, mockDB, res)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

func TestReservationRepository_Create_InvalidCheckInTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewReservationRepository(mockQueries, mockDB)

	b := builder.NewReservationBuilder()
	params := b.Params()
	bad := "25:99"
	params.CheckInTime = &bad
	res, err := reservation.NewReservation(params, b.Now)
	require.NoError(t, err)

	actualError := repo.Create(context.Background(), mockDB, res)

	require.Error(t, actualError)
	assert.True(t, errs.Is(actualError, reservation.ErrInvalidDate))
	assert.True(t, errs.Is(actualError, errs.ErrValidation))
}

// =============================================================================
// Update Reservation Tests
// =============================================================================

func TestReservationRepository_Update(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockReservationWriteQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: reservation updated",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().UpdateReservation(ctx, tx, gomock.Any()).Return(int64(1), nil)
			},
			expectedError: false,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().UpdateReservation(ctx, tx, gomock.Any()).Return(int64(0), errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: reservation not found",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().UpdateReservation(ctx, tx, gomock.Any()).Return(int64(0), nil)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			res, err := builder.NewReservationBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, mockDB)

			actualError := repo.Update(ctx, mockDB, res)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// Delete Reservation Tests
// =============================================================================

func TestReservationRepository_Delete(t *testing.T) {
	ctx := context.Background()
	reservationID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockReservationWriteQueries, uuid.UUID, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: reservation deleted",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, id uuid.UUID, tx sqlc.DBTX) {
				mock.EXPECT().DeleteReservation(ctx, tx, id).Return(int64(1), nil)
			},
			expectedError: false,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, id uuid.UUID, tx sqlc.DBTX) {
				mock.EXPECT().DeleteReservation(ctx, tx, id).Return(int64(0), errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: reservation not found",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, id uuid.UUID, tx sqlc.DBTX) {
				mock.EXPECT().DeleteReservation(ctx, tx, id).Return(int64(0), nil)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, reservationID, mockDB)

			actualError := repo.Delete(ctx, mockDB, reservationID)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// Night Detail Tests
// =============================================================================

func TestDetailRepository_CreateBatch(t *testing.T) {
	ctx := context.Background()
	_, details := builder.NewReservationBuilder().MustBuild(101, 2)

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockDetailWriteQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: one insert per night",
			setupMock: func(mock *repositorymock.MockDetailWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateReservationDetail(ctx, tx, gomock.Any()).Return(nil).Times(len(details))
			},
			expectedError: false,
		},
		{
			name: "error: room already taken that night",
			setupMock: func(mock *repositorymock.MockDetailWriteQueries, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				gomock.InOrder(
					mock.EXPECT().CreateReservationDetail(ctx, tx, gomock.Any()).Return(nil),
					mock.EXPECT().CreateReservationDetail(ctx, tx, gomock.Any()).Return(dup),
				)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockDetailWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewDetailRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			actualError := repo.CreateBatch(ctx, mockDB, details)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

func TestDetailRepository_Update(t *testing.T) {
	ctx := context.Background()
	_, details := builder.NewReservationBuilder().MustBuild(101, 2)

	testCases := []struct {
		name          string
		affected      int64
		queryErr      error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: night updated", affected: 1},
		{name: "error: night not found", affected: 0, expectedError: true, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", queryErr: errors.New("database connection error"), expectedError: true, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockDetailWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewDetailRepository(mockQueries, mockDB)

			mockQueries.EXPECT().UpdateReservationDetail(ctx, mockDB, gomock.Any()).Return(tc.affected, tc.queryErr)

			actualError := repo.Update(ctx, mockDB, details[0])

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

func TestDetailRepository_CancelActive(t *testing.T) {
	ctx := context.Background()
	reservationID, token := uuid.New(), uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockDetailWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewDetailRepository(mockQueries, mockDB)

	mockQueries.EXPECT().CancelActiveDetails(ctx, mockDB, sqlc.CancelActiveDetailsParams{
		Token:         pgconv.UUIDToPgtype(token),
		Billable:      true,
		ReservationID: reservationID,
	}).Return(int64(3), nil)

	n, err := repo.CancelActive(ctx, mockDB, reservationID, token, true)

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestDetailRepository_DeleteByIDs(t *testing.T) {
	ctx := context.Background()

	t.Run("no ids skips the query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockDetailWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewDetailRepository(mockQueries, mockDB)

		assert.NoError(t, repo.DeleteByIDs(ctx, mockDB, nil))
	})

	t.Run("foreign key violation surfaces as a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockDetailWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewDetailRepository(mockQueries, mockDB)

		ids := []uuid.UUID{uuid.New(), uuid.New()}
		fk := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
		mockQueries.EXPECT().DeleteDetailsByIDs(ctx, mockDB, ids).Return(fk)

		actualError := repo.DeleteByIDs(ctx, mockDB, ids)

		require.Error(t, actualError)
		assert.True(t, infra.IsKind(actualError, infra.KindForeignKeyViolated))
	})
}

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
