package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*CacheHelper, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewCacheHelper(client, "test:"), mr
}

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestCacheSetGet(t *testing.T) {
	helper, _ := newTestCache(t)
	ctx := context.Background()

	want := payload{Name: "publications", Count: 7}
	if err := helper.Set(ctx, "stats:1", want, time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	var got payload
	if err := helper.Get(ctx, "stats:1", &got); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != want {
		t.Errorf("Get() = %+v, want %+v", got, want)
	}
}

func TestCacheGetMiss(t *testing.T) {
	helper, _ := newTestCache(t)

	var got payload
	if err := helper.Get(context.Background(), "missing", &got); err != ErrCacheNotFound {
		t.Errorf("Get() error = %v, want ErrCacheNotFound", err)
	}
}

func TestCacheExpiry(t *testing.T) {
	helper, mr := newTestCache(t)
	ctx := context.Background()

	if err := helper.Set(ctx, "stats:1", payload{Name: "x"}, time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	mr.FastForward(2 * time.Minute)

	var got payload
	if err := helper.Get(ctx, "stats:1", &got); err != ErrCacheNotFound {
		t.Errorf("Get() after expiry error = %v, want ErrCacheNotFound", err)
	}
}

func TestCacheDelete(t *testing.T) {
	helper, _ := newTestCache(t)
	ctx := context.Background()

	for _, key := range []string{"a", "b", "c"} {
		if err := helper.Set(ctx, key, payload{Name: key}, time.Minute); err != nil {
			t.Fatalf("Set(%s) error = %v", key, err)
		}
	}

	if err := helper.Delete(ctx, "a", "b"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	var got payload
	if err := helper.Get(ctx, "a", &got); err != ErrCacheNotFound {
		t.Errorf("Get(a) error = %v, want ErrCacheNotFound", err)
	}
	if err := helper.Get(ctx, "c", &got); err != nil {
		t.Errorf("Get(c) error = %v, want nil", err)
	}
}

func TestCacheInvalidatePattern(t *testing.T) {
	helper, _ := newTestCache(t)
	ctx := context.Background()

	if err := helper.Set(ctx, "dashboard:owner:1", payload{}, time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := helper.Set(ctx, "dashboard:owner:2", payload{}, time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := helper.Set(ctx, "other", payload{}, time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if err := helper.InvalidatePattern(ctx, "dashboard:owner:*"); err != nil {
		t.Fatalf("InvalidatePattern() error = %v", err)
	}

	var got payload
	if err := helper.Get(ctx, "dashboard:owner:1", &got); err != ErrCacheNotFound {
		t.Errorf("Get(owner:1) error = %v, want ErrCacheNotFound", err)
	}
	if err := helper.Get(ctx, "other", &got); err != nil {
		t.Errorf("Get(other) error = %v, want nil", err)
	}
}

func TestCacheNilClientDegradation(t *testing.T) {
	helper := NewCacheHelper(nil, "test:")
	ctx := context.Background()

	if err := helper.Set(ctx, "k", payload{}, time.Minute); err != nil {
		t.Errorf("Set() error = %v, want nil", err)
	}
	if err := helper.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete() error = %v, want nil", err)
	}

	var got payload
	if err := helper.Get(ctx, "k", &got); err != ErrCacheNotAvailable {
		t.Errorf("Get() error = %v, want ErrCacheNotAvailable", err)
	}
}

func TestInvalidateStatsCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	cm := NewCacheManager(client)
	ctx := context.Background()

	if err := cm.Stats.Set(ctx, "dashboard:owner:1", payload{}, time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := cm.Stats.Set(ctx, "dashboard:all", payload{}, time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	InvalidateStatsCache(ctx, cm, 1)

	var got payload
	if err := cm.Stats.Get(ctx, "dashboard:owner:1", &got); err != ErrCacheNotFound {
		t.Errorf("owner key error = %v, want ErrCacheNotFound", err)
	}
	if err := cm.Stats.Get(ctx, "dashboard:all", &got); err != ErrCacheNotFound {
		t.Errorf("rollup key error = %v, want ErrCacheNotFound", err)
	}
}
