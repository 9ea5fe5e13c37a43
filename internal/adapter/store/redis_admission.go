package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisAdmission keeps the sliding window in a Redis sorted set (score = unix
// milliseconds, member = random id) so multiple gateway instances enforce one
// shared limit. Accuracy under concurrent calls for the same identifier is
// best-effort: prune+count+add run as a pipeline, not a transaction.
type RedisAdmission struct {
	client *redis.Client
	limit  int
	window time.Duration
}

func NewRedisAdmission(client *redis.Client, limit int, window time.Duration) *RedisAdmission {
	return &RedisAdmission{
		client: client,
		limit:  limit,
		window: window,
	}
}

func (a *RedisAdmission) Allow(ctx context.Context, clientID string) (bool, error) {
	key := "chatwindow:" + clientID
	now := time.Now()
	cutoff := now.Add(-a.window).UnixMilli()

	pipe := a.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "-inf", strconv.FormatInt(cutoff, 10))
	count := pipe.ZCard(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("admission window lookup failed: %w", err)
	}

	if count.Val() >= int64(a.limit) {
		return false, nil
	}

	add := a.client.ZAdd(ctx, key, redis.Z{
		Score:  float64(now.UnixMilli()),
		Member: uuid.NewString(),
	})
	if err := add.Err(); err != nil {
		return false, fmt.Errorf("admission window update failed: %w", err)
	}

	// Let Redis reclaim idle windows; the in-memory store cannot do this.
	a.client.Expire(ctx, key, a.window)

	return true, nil
}
