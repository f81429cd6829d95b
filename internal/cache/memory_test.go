package cache

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestMemoryCacheSetGet(t *testing.T) {
	c := NewMemoryCache()
	defer c.Close()
	ctx := context.Background()

	if _, ok := c.Get(ctx, "missing"); ok {
		t.Error("expected a miss for an unknown key")
	}

	if err := c.Set(ctx, "k", "v", 0); err != nil {
		t.Fatalf("unexpected error setting value: %v", err)
	}
	val, ok := c.Get(ctx, "k")
	if !ok || val != "v" {
		t.Errorf("expected hit with value v, got %q (hit=%v)", val, ok)
	}

	if err := c.Set(ctx, "k", "v2", 0); err != nil {
		t.Fatalf("unexpected error overwriting value: %v", err)
	}
	if val, _ := c.Get(ctx, "k"); val != "v2" {
		t.Errorf("expected overwritten value v2, got %q", val)
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	if err := c.Set(ctx, "ephemeral", "v", time.Millisecond); err != nil {
		t.Fatalf("unexpected error setting value: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, ok := c.Get(ctx, "ephemeral"); ok {
		t.Error("expected the entry to have expired")
	}
}

func TestMemoryCacheConcurrentAccess(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = c.Set(ctx, "shared", "v", 0)
		}()
		go func() {
			defer wg.Done()
			_, _ = c.Get(ctx, "shared")
		}()
	}
	wg.Wait()

	if val, ok := c.Get(ctx, "shared"); !ok || val != "v" {
		t.Errorf("expected value v after concurrent access, got %q (hit=%v)", val, ok)
	}
}

func TestKeyIsDeterministic(t *testing.T) {
	a := Key("advise", []byte(`{"topic":"budget"}`))
	b := Key("advise", []byte(`{"topic":"budget"}`))
	if a != b {
		t.Error("expected identical bodies to produce identical keys")
	}
	if a == Key("advise", []byte(`{"topic":"investment"}`)) {
		t.Error("expected different bodies to produce different keys")
	}
	if a == Key("chat", []byte(`{"topic":"budget"}`)) {
		t.Error("expected different prefixes to produce different keys")
	}
}
