package storage

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisEstadoCache mirrors per-mesa estados so the board can be overlaid
// without waiting out the Postgres round trip on every poll.
type RedisEstadoCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisEstadoCache(client *redis.Client, ttl time.Duration) *RedisEstadoCache {
	return &RedisEstadoCache{Client: client, TTL: ttl}
}

func (c *RedisEstadoCache) MesaKey(mesaID int) string {
	return "mesa:estado:" + strconv.Itoa(mesaID)
}

func (c *RedisEstadoCache) GetEstado(ctx context.Context, key string) (string, error) {
	return c.Client.Get(ctx, key).Result()
}

func (c *RedisEstadoCache) SetEstado(ctx context.Context, key, estado string) error {
	return c.Client.Set(ctx, key, estado, c.TTL).Err()
}
