package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// RedisClient is shared by the per-session rate limiter and the
// filter-metadata cache tier. Both read it through this package so a
// test can swap in a miniredis-backed client.
var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// ConnectRedis dials REDIS_URL and verifies the connection. Rate
// limiting keeps its counters in Redis and has no fallback, so a
// failed connection stops startup the same way InitDB does.
func ConnectRedis() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
		log.Println("⚠️ REDIS_URL not set, using local Redis:", redisURL)
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("❌ Invalid REDIS_URL: %v", err)
	}

	RedisClient = redis.NewClient(opt)

	if _, err := RedisClient.Ping(Ctx).Result(); err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	log.Println("✅ Redis connected (rate limiter, filter cache)")
}
