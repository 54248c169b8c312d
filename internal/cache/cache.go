package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/haircut-workshop-team/Haircut-Workshop/internal/config"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/logger"
)

const availabilityTTL = 60 * time.Second

// AvailabilityCache keeps computed slot lists in Redis for a short TTL.
// The client may be nil (REDIS_ADDR unset), in which case every method is
// a no-op and callers fall through to the database.
type AvailabilityCache struct {
	client *redis.Client
}

func New(cfg *config.Config) *AvailabilityCache {
	if cfg.RedisAddr == "" {
		return &AvailabilityCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Get().Warn("redis unreachable, availability cache disabled",
			zap.String("addr", cfg.RedisAddr),
			zap.Error(err))
		return &AvailabilityCache{}
	}

	return &AvailabilityCache{client: client}
}

func (a *AvailabilityCache) Enabled() bool {
	return a.client != nil
}

func key(barberID uint, date string, serviceID uint) string {
	return fmt.Sprintf("availability:%d:%s:%d", barberID, date, serviceID)
}

func (a *AvailabilityCache) Get(ctx context.Context, barberID uint, date string, serviceID uint) ([]string, bool) {
	if a.client == nil {
		return nil, false
	}

	raw, err := a.client.Get(ctx, key(barberID, date, serviceID)).Result()
	if err != nil {
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (a *AvailabilityCache) Set(ctx context.Context, barberID uint, date string, serviceID uint, slots []string) {
	if a.client == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	a.client.Set(ctx, key(barberID, date, serviceID), raw, availabilityTTL)
}

// Invalidate drops every cached slot list for a barber/date after a booking
// write. Keys vary by service, so this scans the barber:date prefix.
func (a *AvailabilityCache) Invalidate(ctx context.Context, barberID uint, date string) {
	if a.client == nil {
		return
	}

	pattern := fmt.Sprintf("availability:%d:%s:*", barberID, date)
	iter := a.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		a.client.Del(ctx, iter.Val())
	}
}
