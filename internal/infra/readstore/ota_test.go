//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"

	"hotel-pms/internal/domain/ota"
	"hotel-pms/internal/domain/rate"
	"hotel-pms/internal/infra"
	"hotel-pms/internal/infra/readstore"
	sqlc "hotel-pms/internal/infra/sqlc/generated"
	"hotel-pms/internal/pkg/errs"
	"hotel-pms/internal/pkg/pgconv"
	"hotel-pms/internal/usecase/shared"
	readstoremock "hotel-pms/tests/mock/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
)

// =============================================================================
// OTA Master Data Tests
// =============================================================================

func TestOTAMasterReadStore_RoomTypeByOTACode(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockOTAMasterQueries)
		expectID      int32
		expectedError bool
		expectIs      error
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: code mapped",
			setupMock: func(mock *readstoremock.MockOTAMasterQueries) {
				mock.EXPECT().GetOtaRoomType(ctx, gomock.Any(), sqlc.GetOtaRoomTypeParams{HotelID: 3, Netroomtypegroupcode: "TWN"}).Return(int32(12), nil)
			},
			expectID: 12,
		},
		{
			name: "error: code not mapped is external data",
			setupMock: func(mock *readstoremock.MockOTAMasterQueries) {
				mock.EXPECT().GetOtaRoomType(ctx, gomock.Any(), gomock.Any()).Return(int32(0), pgx.ErrNoRows)
			},
			expectedError: true,
			expectIs:      ota.ErrUnmappedRoomType,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockOTAMasterQueries) {
				mock.EXPECT().GetOtaRoomType(ctx, gomock.Any(), gomock.Any()).Return(int32(0), errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockOTAMasterQueries(ctrl)
			store := readstore.NewOTAMasterReadStore(mockQueries, &mockDBTX{})

			tc.setupMock(mockQueries)

			id, actualError := store.RoomTypeByOTACode(ctx, 3, "TWN")

			if !tc.expectedError {
				require.NoError(t, actualError)
				assert.Equal(t, tc.expectID, id)
				return
			}
			require.Error(t, actualError)
			if tc.expectIs != nil {
				assert.True(t, errs.Is(actualError, tc.expectIs), "expected %v, got %v", tc.expectIs, actualError)
				assert.True(t, errs.Is(actualError, errs.ErrExternalData))
				assert.Contains(t, actualError.Error(), `"TWN"`)
			}
			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.False(t, errs.Is(actualError, errs.ErrExternalData))
			}
		})
	}
}

func TestOTAMasterReadStore_PlanByOTACode(t *testing.T) {
	ctx := context.Background()
	globalID, hotelID := int32(4), int32(21)

	testCases := []struct {
		name          string
		row           sqlc.GetOtaPlanRow
		queryErr      error
		expect        rate.PlanRef
		expectedError bool
		expectIs      error
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name:   "success: global plan",
			row:    sqlc.GetOtaPlanRow{PlansGlobalID: pgtype.Int4{Int32: globalID, Valid: true}},
			expect: rate.PlanRef{GlobalID: &globalID},
		},
		{
			name: "success: hotel plan on top of a global one",
			row: sqlc.GetOtaPlanRow{
				PlansGlobalID: pgtype.Int4{Int32: globalID, Valid: true},
				PlansHotelID:  pgtype.Int4{Int32: hotelID, Valid: true},
			},
			expect: rate.PlanRef{GlobalID: &globalID, HotelID: &hotelID},
		},
		{
			name:          "error: code not mapped",
			queryErr:      pgx.ErrNoRows,
			expectedError: true,
			expectIs:      ota.ErrUnmappedPlan,
		},
		{
			name:          "error: mapping row points at no plan",
			row:           sqlc.GetOtaPlanRow{},
			expectedError: true,
			expectIs:      ota.ErrUnmappedPlan,
		},
		{
			name:          "error: database error",
			queryErr:      &pgconn.PgError{Code: "57014", Message: "canceling statement due to statement timeout"},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockOTAMasterQueries(ctrl)
			store := readstore.NewOTAMasterReadStore(mockQueries, &mockDBTX{})

			mockQueries.EXPECT().GetOtaPlan(ctx, gomock.Any(), sqlc.GetOtaPlanParams{HotelID: 3, Plangroupcode: "RO"}).Return(tc.row, tc.queryErr)

			ref, actualError := store.PlanByOTACode(ctx, 3, "RO")

			if !tc.expectedError {
				require.NoError(t, actualError)
				assert.Equal(t, tc.expect, ref)
				return
			}
			require.Error(t, actualError)
			assert.True(t, ref.IsZero())
			if tc.expectIs != nil {
				assert.True(t, errs.Is(actualError, tc.expectIs), "expected %v, got %v", tc.expectIs, actualError)
				assert.True(t, errs.Is(actualError, errs.ErrExternalData))
			}
			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			}
		})
	}
}

// =============================================================================
// OTA Queue Tests
// =============================================================================

func TestOTAQueueReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	lastError := "no free room of type TWN"

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockOTAQueueReadQueries)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: entry found",
			setupMock: func(mock *readstoremock.MockOTAQueueReadQueries) {
				mock.EXPECT().GetOtaQueueEntry(ctx, gomock.Any(), int64(8)).Return(sqlc.OtaReservationQueue{
					ID:               8,
					HotelID:          3,
					OtaReservationID: "RK0001",
					TransactionType:  "new",
					Status:           "failed",
					Attempts:         3,
					LastError:        pgconv.StringToPgtype(lastError),
				}, nil)
			},
		},
		{
			name: "error: entry not found",
			setupMock: func(mock *readstoremock.MockOTAQueueReadQueries) {
				mock.EXPECT().GetOtaQueueEntry(ctx, gomock.Any(), int64(8)).Return(sqlc.OtaReservationQueue{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockOTAQueueReadQueries) {
				mock.EXPECT().GetOtaQueueEntry(ctx, gomock.Any(), int64(8)).Return(sqlc.OtaReservationQueue{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockOTAQueueReadQueries(ctrl)
			store := readstore.NewOTAQueueReadStore(mockQueries, &mockDBTX{})

			tc.setupMock(mockQueries)

			entry, actualError := store.FindByID(ctx, 8)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.Nil(t, entry)
				return
			}
			require.NoError(t, actualError)
			require.NotNil(t, entry)
			assert.Equal(t, shared.QueueFailed, entry.Status)
			assert.Equal(t, ota.TransactionNew, entry.Transaction)
			assert.Equal(t, 3, entry.Attempts)
			require.NotNil(t, entry.LastError)
			assert.Equal(t, lastError, *entry.LastError)
		})
	}
}
