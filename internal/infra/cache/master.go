// Package cache keeps OTA master-data lookups in Redis. Mappings change
// rarely and every queued payload resolves them, so hits skip the database.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"hotel-pms/internal/domain/rate"
	"hotel-pms/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "pms:ota-master"

type cachedPlan struct {
	GlobalID *int32 `json:"global_id,omitempty"`
	HotelID  *int32 `json:"hotel_id,omitempty"`
}

// MasterData decorates a MasterData source with a read-through Redis cache.
// Misses and Redis failures fall through to the source; lookup errors are
// never cached.
type MasterData struct {
	next shared.MasterData
	rdb  redis.Cmdable
	ttl  time.Duration
}

func NewMasterData(next shared.MasterData, rdb redis.Cmdable, ttl time.Duration) *MasterData {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &MasterData{next: next, rdb: rdb, ttl: ttl}
}

func (m *MasterData) RoomTypeByOTACode(ctx context.Context, hotelID int32, code string) (int32, error) {
	key := fmt.Sprintf("%s:%d:room-type:%s", keyPrefix, hotelID, code)
	if id, err := m.rdb.Get(ctx, key).Int(); err == nil {
		return int32(id), nil // #nosec G115 -- stored from an int32
	} else if !errors.Is(err, redis.Nil) {
		slog.Warn("master cache read failed", "key", key, "error", err.Error())
	}

	id, err := m.next.RoomTypeByOTACode(ctx, hotelID, code)
	if err != nil {
		return 0, err
	}
	m.store(ctx, key, id)
	return id, nil
}

func (m *MasterData) PlanByOTACode(ctx context.Context, hotelID int32, code string) (rate.PlanRef, error) {
	key := fmt.Sprintf("%s:%d:plan:%s", keyPrefix, hotelID, code)
	if raw, err := m.rdb.Get(ctx, key).Bytes(); err == nil {
		var p cachedPlan
		if json.Unmarshal(raw, &p) == nil {
			return rate.PlanRef{GlobalID: p.GlobalID, HotelID: p.HotelID}, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		slog.Warn("master cache read failed", "key", key, "error", err.Error())
	}

	ref, err := m.next.PlanByOTACode(ctx, hotelID, code)
	if err != nil {
		return rate.PlanRef{}, err
	}
	if raw, err := json.Marshal(cachedPlan{GlobalID: ref.GlobalID, HotelID: ref.HotelID}); err == nil {
		m.store(ctx, key, raw)
	}
	return ref, nil
}

func (m *MasterData) store(ctx context.Context, key string, value any) {
	if err := m.rdb.Set(ctx, key, value, m.ttl).Err(); err != nil {
		slog.Warn("master cache write failed", "key", key, "error", err.Error())
	}
}

// NewClient connects to Redis, returning nil when addr is empty so callers
// can run without the cache.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	if addr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}
