package cache

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	m.Set(ctx, "k", "v", 10*time.Second)
	got, ok := m.Get(ctx, "k")
	if !ok || got != "v" {
		t.Fatalf("Get() = %v, %v, want v, true", got, ok)
	}

	m.Delete(ctx, "k")
	if _, ok := m.Get(ctx, "k"); ok {
		t.Fatal("Get() after Delete() should miss")
	}
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	m.Set(ctx, "k", 42, 10*time.Second)

	now = now.Add(9 * time.Second)
	if _, ok := m.Get(ctx, "k"); !ok {
		t.Fatal("entry expired too early")
	}

	now = now.Add(2 * time.Second)
	if _, ok := m.Get(ctx, "k"); ok {
		t.Fatal("entry should be expired")
	}
	// Lazy eviction removed the entry on that Get.
	if m.Len() != 0 {
		t.Fatalf("Len() = %d after lazy eviction, want 0", m.Len())
	}
}

func TestMemorySweep(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	m.Set(ctx, "short", 1, time.Second)
	m.Set(ctx, "long", 2, time.Hour)

	now = now.Add(2 * time.Second)
	if evicted := m.Sweep(); evicted != 1 {
		t.Fatalf("Sweep() = %d, want 1", evicted)
	}
	if _, ok := m.Get(ctx, "long"); !ok {
		t.Fatal("unexpired entry must survive the sweep")
	}
}

func TestMemoryClear(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	m.Set(ctx, "a", 1, time.Minute)
	m.Set(ctx, "b", 2, time.Minute)

	m.Clear(ctx)
	if m.Len() != 0 {
		t.Fatalf("Len() = %d after Clear, want 0", m.Len())
	}
}

func TestMemoryConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Set(ctx, "shared", j, time.Minute)
				m.Get(ctx, "shared")
				m.Sweep()
			}
		}()
	}
	wg.Wait()

	if _, ok := m.Get(ctx, "shared"); !ok {
		t.Fatal("entry lost after concurrent writes")
	}
}

func TestKeyOrderIndependent(t *testing.T) {
	a := Key("get_weather_forecast", map[string]any{
		"location":   "Paris",
		"start_date": "2026-07-01",
		"end_date":   "2026-07-07",
	})
	b := Key("get_weather_forecast", map[string]any{
		"end_date":   "2026-07-07",
		"location":   "Paris",
		"start_date": "2026-07-01",
	})
	if a != b {
		t.Errorf("identical parameter sets produced different keys: %s vs %s", a, b)
	}
}

func TestKeyDistinguishesArguments(t *testing.T) {
	base := Key("get_weather_forecast", map[string]any{"location": "Paris"})

	variants := []string{
		Key("get_weather_forecast", map[string]any{"location": "Lyon"}),
		Key("get_destination_insights", map[string]any{"location": "Paris"}),
		Key("get_weather_forecast", map[string]any{"location": "Paris", "units": "metric"}),
	}
	for i, v := range variants {
		if v == base {
			t.Errorf("variant %d collided with base key", i)
		}
	}
}
