package store

import (
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps one Redis string per key, prefixed to keep the
// keyspace tidy alongside other tenants.
type RedisStore struct {
	conn   *redis.Client
	prefix string
}

func OpenRedis(ctx context.Context, addr string) (*RedisStore, error) {
	conn := redis.NewClient(&redis.Options{Addr: addr})
	if err := conn.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("store: redis ping %s: %w", addr, err)
	}
	log.Printf("store: using redis backend at %s", addr)
	return &RedisStore{conn: conn, prefix: "passabola:"}, nil
}

func (rs *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	raw, err := rs.conn.Get(ctx, rs.prefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		// Absent-key semantics on any read failure; the caller falls
		// back to its default just like a missing key.
		log.Println("store: redis get error:", err)
		return nil, false
	}
	return raw, true
}

func (rs *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return rs.conn.Set(ctx, rs.prefix+key, value, 0).Err()
}

func (rs *RedisStore) Remove(ctx context.Context, key string) error {
	return rs.conn.Del(ctx, rs.prefix+key).Err()
}
