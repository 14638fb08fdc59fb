//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const (
	HotelID        int32 = 1
	TwinRoomTypeID int32 = 1
	FamRoomTypeID  int32 = 2
	BreakfastPlan  int32 = 1
	CashPaymentID  int32 = 1
)

func CreateTestClient(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	var clientID uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO clients (name) VALUES ($1) RETURNING id", name).Scan(&clientID)
	require.NoError(t, err)

	return clientID
}

func CountActiveNights(t *testing.T, db DBLike, reservationID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM reservation_details WHERE reservation_id = $1 AND cancelled IS NULL", reservationID).Scan(&n)
	require.NoError(t, err)

	return n
}

func QueueStatus(t *testing.T, db DBLike, entryID int64) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(),
		"SELECT status FROM ota_reservation_queue WHERE id = $1", entryID).Scan(&status)
	require.NoError(t, err)

	return status
}

// inserts the hotel, rooms, plans and mappings every test starts from
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO hotels (id, name) VALUES (1, 'Test Hotel');

		INSERT INTO room_types (hotel_id, id, name) VALUES
		    (1, 1, 'Twin'),
		    (1, 2, 'Family');

		INSERT INTO rooms (hotel_id, id, room_type_id, room_number, capacity, floor, smoking) VALUES
		    (1, 101, 1, '101', 2, 1, false),
		    (1, 102, 1, '102', 2, 1, true),
		    (1, 201, 2, '201', 4, 2, false);

		INSERT INTO plans_hotel (hotel_id, id, name, plan_type) VALUES
		    (1, 1, 'Breakfast', 'per_room');

		INSERT INTO plan_rates (hotel_id, plans_hotel_id, adjustment_type, adjustment_value, tax_rate) VALUES
		    (1, 1, 'base_rate', 12000, 0.10);

		INSERT INTO plan_addons (hotel_id, plans_hotel_id, addons_hotel_id, addon_name, price, tax_rate) VALUES
		    (1, 1, 1, 'Breakfast', 1500, 0.08);

		INSERT INTO payment_types (hotel_id, id, name, kind) VALUES
		    (1, 1, 'Cash', 'cash'),
		    (1, 2, 'OTA points', 'point'),
		    (1, 3, 'OTA prepaid', 'ota_prepaid');

		INSERT INTO ota_room_master (hotel_id, netroomtypegroupcode, room_type_id) VALUES
		    (1, 'TWN', 1),
		    (1, 'FAM', 2);

		INSERT INTO ota_plan_master (hotel_id, plangroupcode, plans_hotel_id) VALUES
		    (1, 'P-BF', 1);
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
