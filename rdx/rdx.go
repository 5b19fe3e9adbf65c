package rdx

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Conn is the shared redis client. Nil when redis is unreachable; the
// helpers below degrade to misses so handlers never depend on the cache.
var Conn *redis.Client

const cacheTTL = 5 * time.Minute

// Init dials redis. A failure is logged and leaves Conn nil.
func Init(ctx context.Context) {
	addr := os.Getenv("REDIS_URL")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable, caching disabled: %v", err)
		return
	}
	Conn = client
}

// RdxGet returns the cached value for key, or "" on miss or when the
// cache is disabled.
func RdxGet(ctx context.Context, key string) (string, error) {
	if Conn == nil {
		return "", nil
	}
	val, err := Conn.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func RdxSet(ctx context.Context, key, value string) {
	if Conn == nil {
		return
	}
	if err := Conn.Set(ctx, key, value, cacheTTL).Err(); err != nil {
		log.Printf("redis SET %s: %v", key, err)
	}
}

func RdxDel(ctx context.Context, keys ...string) {
	if Conn == nil {
		return
	}
	if err := Conn.Del(ctx, keys...).Err(); err != nil {
		log.Printf("redis DEL %v: %v", keys, err)
	}
}

// RdxHSet / RdxHGetAll back the product title index kept by the mq worker.
func RdxHSet(ctx context.Context, key, field, value string) {
	if Conn == nil {
		return
	}
	if err := Conn.HSet(ctx, key, field, value).Err(); err != nil {
		log.Printf("redis HSET %s: %v", key, err)
	}
}

func RdxHDel(ctx context.Context, key, field string) {
	if Conn == nil {
		return
	}
	if err := Conn.HDel(ctx, key, field).Err(); err != nil {
		log.Printf("redis HDEL %s: %v", key, err)
	}
}

func RdxHGetAll(ctx context.Context, key string) (map[string]string, error) {
	if Conn == nil {
		return nil, nil
	}
	return Conn.HGetAll(ctx, key).Result()
}

// Close releases the client if one was created.
func Close() {
	if Conn == nil {
		return
	}
	if err := Conn.Close(); err != nil {
		log.Printf("redis close: %v", err)
	}
}
