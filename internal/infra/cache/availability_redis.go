package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/piyushrajyadav/Nexusaloon/internal/domain/booking"
)

// AvailabilityCache keeps a staff member's busy intervals for one day.
// Strictly an accelerator for the availability query: misses and redis
// failures fall back to the database, and every booking write invalidates
// the day it touches.
type AvailabilityCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAvailabilityCache(addr string) *AvailabilityCache {
	return &AvailabilityCache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: 5 * time.Minute,
	}
}

func dayKey(staffID uint, day string) string {
	return fmt.Sprintf("busy:%d:%s", staffID, day)
}

func (c *AvailabilityCache) GetDay(
	ctx context.Context,
	staffID uint,
	day string,
) ([]domain.Interval, bool) {

	raw, err := c.rdb.Get(ctx, dayKey(staffID, day)).Bytes()
	if err != nil {
		return nil, false
	}

	var intervals []domain.Interval
	if err := json.Unmarshal(raw, &intervals); err != nil {
		return nil, false
	}

	return intervals, true
}

func (c *AvailabilityCache) SetDay(
	ctx context.Context,
	staffID uint,
	day string,
	intervals []domain.Interval,
) {
	raw, err := json.Marshal(intervals)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, dayKey(staffID, day), raw, c.ttl).Err(); err != nil {
		log.Println("availability cache set failed:", err)
	}
}

func (c *AvailabilityCache) Invalidate(
	ctx context.Context,
	staffID uint,
	day string,
) {
	if err := c.rdb.Del(ctx, dayKey(staffID, day)).Err(); err != nil {
		log.Println("availability cache invalidate failed:", err)
	}
}
