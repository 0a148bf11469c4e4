package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/habit-tracker/internal/logger"
	"github.com/sbilibin2017/habit-tracker/internal/models"
)

// HabitCacheRepository caches the rendered habit list of each owner in Redis
type HabitCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached lists
}

// NewHabitCacheRepository creates a new repository instance with the given TTL
func NewHabitCacheRepository(client *redis.Client, expiration time.Duration) *HabitCacheRepository {
	return &HabitCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func habitsGenKey(ownerID string) string {
	return fmt.Sprintf("habits:gen:%s", ownerID)
}

func habitsKey(ownerID string, gen int64) string {
	return fmt.Sprintf("habits:%s:%d", ownerID, gen)
}

// generation returns the owner's current cache generation. It starts at 0 and
// only moves forward, so a list written under an older generation is never read again.
func (r *HabitCacheRepository) generation(ctx context.Context, ownerID string) (int64, error) {
	gen, err := r.client.Get(ctx, habitsGenKey(ownerID)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return gen, err
}

// Get returns the cached habit list of an owner together with the generation
// it was looked up under. The boolean is false on a cache miss; the generation
// is still valid then and must be passed to Set.
func (r *HabitCacheRepository) Get(ctx context.Context, ownerID string) ([]models.HabitView, int64, bool, error) {
	gen, err := r.generation(ctx, ownerID)
	if err != nil {
		logger.Log.Infow("cache get",
			"key", habitsGenKey(ownerID),
			"error", err,
		)
		return nil, 0, false, err
	}

	key := habitsKey(ownerID, gen)

	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Log.Infow("cache get",
			"key", key,
			"result", "miss",
		)
		return nil, gen, false, nil
	}
	if err != nil {
		logger.Log.Infow("cache get",
			"key", key,
			"error", err,
		)
		return nil, 0, false, err
	}

	var views []models.HabitView
	if err := json.Unmarshal([]byte(val), &views); err != nil {
		logger.Log.Infow("cache get",
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, 0, false, err
	}

	logger.Log.Infow("cache get",
		"key", key,
		"result", len(views),
		"error", nil,
	)

	return views, gen, true, nil
}

// Set stores the habit list of an owner under gen with expiration
func (r *HabitCacheRepository) Set(ctx context.Context, ownerID string, gen int64, views []models.HabitView) error {
	key := habitsKey(ownerID, gen)

	data, err := json.Marshal(views)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("cache set",
		"key", key,
		"habits", len(views),
		"error", err,
	)

	return err
}

// Invalidate moves the owner to a new generation. Lists stored under earlier
// generations, including ones written by a read that started before the
// change, are left to expire.
func (r *HabitCacheRepository) Invalidate(ctx context.Context, ownerID string) error {
	key := habitsGenKey(ownerID)
	gen, err := r.client.Incr(ctx, key).Result()

	logger.Log.Infow("cache invalidate",
		"key", key,
		"result", gen,
		"error", err,
	)

	return err
}
