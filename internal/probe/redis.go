package probe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const redisDialTimeout = 2 * time.Second

type redisState struct {
	ctx    context.Context
	client *redis.Client
}

// setupRedis connects and issues one PING so an unreachable server fails at
// setup rather than aborting the first repetition.
func setupRedis(ctx context.Context, p Params) (Bound, error) {
	if p.RedisAddr == "" {
		return Bound{}, errors.New("no redis address configured")
	}

	client := redis.NewClient(&redis.Options{
		Addr:        p.RedisAddr,
		DialTimeout: redisDialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisDialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return Bound{}, fmt.Errorf("ping %s: %w", p.RedisAddr, err)
	}

	return bind(&redisState{ctx: ctx, client: client}, func(s *redisState) bool {
		return s.client.Ping(s.ctx).Err() == nil
	}, client.Close), nil
}
