// Package scheduler holds one-shot deferred reminder tasks in a Redis
// sorted set scored by fire time. Delivery is at-least-once: a member is
// removed only after its handler returns, so a crash between fire and ack
// redelivers on the next poll.
package scheduler

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"cast-dispatch/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

const scheduledKey = "reminder:scheduled"

type ReminderScheduler struct {
	client *redis.Client
}

func NewReminderScheduler(client *redis.Client) *ReminderScheduler {
	return &ReminderScheduler{client: client}
}

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// Schedule registers a reminder keyed by match id. Scheduling the same match
// again moves its fire time rather than adding a duplicate.
func (s *ReminderScheduler) Schedule(ctx context.Context, matchID int64, fireAt time.Time) error {
	return s.client.ZAdd(ctx, scheduledKey, redis.Z{
		Score:  float64(fireAt.UnixMilli()),
		Member: strconv.FormatInt(matchID, 10),
	}).Err()
}

// Due returns match ids whose fire time has passed. Members stay in the set
// until Ack.
func (s *ReminderScheduler) Due(ctx context.Context, now time.Time, limit int64) ([]int64, error) {
	members, err := s.client.ZRangeByScore(ctx, scheduledKey, &redis.ZRangeBy{
		Min:   "-inf",
		Max:   fmt.Sprintf("%d", now.UnixMilli()),
		Count: limit,
	}).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			// Unparseable member: drop it so it cannot wedge the queue.
			s.client.ZRem(ctx, scheduledKey, m)
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *ReminderScheduler) Ack(ctx context.Context, matchID int64) error {
	return s.client.ZRem(ctx, scheduledKey, strconv.FormatInt(matchID, 10)).Err()
}

func (s *ReminderScheduler) Pending(ctx context.Context) (int64, error) {
	return s.client.ZCard(ctx, scheduledKey).Result()
}
