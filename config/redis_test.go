package config

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func TestConnectRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	t.Setenv("REDIS_URL", "redis://"+mr.Addr())

	ConnectRedis()

	if RedisClient == nil {
		t.Fatal("expected RedisClient to be initialized")
	}
	if err := RedisClient.Set(Ctx, "startup:check", "ok", 0).Err(); err != nil {
		t.Fatalf("failed to write through client: %v", err)
	}
	got, err := RedisClient.Get(Ctx, "startup:check").Result()
	if err != nil {
		t.Fatalf("failed to read back: %v", err)
	}
	if got != "ok" {
		t.Errorf("expected 'ok', got %q", got)
	}
}
