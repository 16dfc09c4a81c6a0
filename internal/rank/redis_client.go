// Package rank keeps a redis ZSET mirror of player totals so rank and top-N
// reads skip the document store. The mirror is optional and best effort;
// mongo remains the source of truth and callers must handle a cold cache.
package rank

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const leaderboardKey = "ecocycle:leaderboard:points"

var rdb *redis.Client

// InitRedis initializes the Redis client. Leaving it uninitialized is valid:
// every read then reports a miss and callers fall back to mongo.
func InitRedis(addr, password string, dbIndex int) error {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       dbIndex,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	rdb = client
	return nil
}

// SetScore mirrors a player's total points into the sorted set.
func SetScore(ctx context.Context, userID string, totalPoints int) error {
	if rdb == nil {
		return nil
	}
	return rdb.ZAdd(ctx, leaderboardKey, redis.Z{
		Score:  float64(totalPoints),
		Member: userID,
	}).Err()
}

// Rank returns the player's 1-based descending rank. ok is false when the
// mirror is disabled, the player is absent, or redis errors out.
func Rank(ctx context.Context, userID string) (int, bool) {
	if rdb == nil {
		return 0, false
	}
	position, err := rdb.ZRevRank(ctx, leaderboardKey, userID).Result()
	if err != nil {
		return 0, false
	}
	return int(position) + 1, true
}
