package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisTokenDenylist stores revoked token ids with a TTL matching the token's remaining lifetime.
type RedisTokenDenylist struct {
	rdb redis.Cmdable
}

func NewRedisTokenDenylist(rdb redis.Cmdable) *RedisTokenDenylist {
	return &RedisTokenDenylist{rdb: rdb}
}

func (d *RedisTokenDenylist) key(jti string) string {
	return fmt.Sprintf("revoked_token:%s", jti)
}

func (d *RedisTokenDenylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if err := d.rdb.Set(ctx, d.key(jti), 1, ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (d *RedisTokenDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := d.rdb.Exists(ctx, d.key(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return n > 0, nil
}
