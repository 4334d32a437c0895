package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) *recentCategoryCache {
	t.Helper()

	mini, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mini.Close)

	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return &recentCategoryCache{client: client}
}

func TestRecentCategoryCache(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)
	userID := uuid.New()

	t.Run("empty list for new user", func(t *testing.T) {
		names, err := cache.List(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(names) != 0 {
			t.Errorf("expected empty list, got %v", names)
		}
	})

	t.Run("most recent first", func(t *testing.T) {
		for _, name := range []string{"Food", "Rent", "Travel"} {
			if err := cache.Touch(ctx, userID, name); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		names, err := cache.List(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{"Travel", "Rent", "Food"}
		if len(names) != len(want) {
			t.Fatalf("expected %d names, got %d", len(want), len(names))
		}
		for i, name := range want {
			if names[i] != name {
				t.Errorf("position %d: expected %q, got %q", i, name, names[i])
			}
		}
	})

	t.Run("touching an existing name moves it to the front", func(t *testing.T) {
		if err := cache.Touch(ctx, userID, "Food"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		names, err := cache.List(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{"Food", "Travel", "Rent"}
		for i, name := range want {
			if names[i] != name {
				t.Errorf("position %d: expected %q, got %q", i, name, names[i])
			}
		}
	})

	t.Run("bounded to five entries", func(t *testing.T) {
		for _, name := range []string{"A", "B", "C", "D", "E", "F"} {
			if err := cache.Touch(ctx, userID, name); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		names, err := cache.List(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(names) != 5 {
			t.Fatalf("expected 5 names, got %d", len(names))
		}
		if names[0] != "F" {
			t.Errorf("expected most recent name F first, got %q", names[0])
		}
		for _, name := range names {
			if name == "A" {
				t.Error("oldest name should have been evicted")
			}
		}
	})

	t.Run("lists are per user", func(t *testing.T) {
		otherUser := uuid.New()
		names, err := cache.List(ctx, otherUser)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(names) != 0 {
			t.Errorf("expected empty list for other user, got %v", names)
		}
	})
}
