package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisStore(rdb, ttl), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	created, err := store.Create(ctx, 42, RoleAlumni)
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if created.ID() == "" {
		t.Fatalf("expected a session id")
	}

	loaded, err := store.Get(ctx, created.ID())
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if loaded != created {
		t.Fatalf("expected %+v, got %+v", created, loaded)
	}
	if !loaded.IsAlumni() || loaded.PersonID() != 42 {
		t.Fatalf("unexpected session %+v", loaded)
	}
}

func TestRedisStoreDelete(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	created, _ := store.Create(ctx, 1, RoleStudent)
	if err := store.Delete(ctx, created.ID()); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if _, err := store.Get(ctx, created.ID()); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected session to be gone, got %v", err)
	}
	if err := store.Delete(ctx, created.ID()); err != nil {
		t.Fatalf("second delete should be a no-op, got %v", err)
	}
}

func TestRedisStoreExpiry(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)
	ctx := context.Background()

	created, _ := store.Create(ctx, 1, RoleStudent)
	mr.FastForward(2 * time.Minute)

	if _, err := store.Get(ctx, created.ID()); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected expired session, got %v", err)
	}
}

func TestRedisStoreRejectsUnknownRole(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)
	ctx := context.Background()

	if _, err := store.Create(ctx, 1, Role("admin")); err == nil {
		t.Fatalf("expected invalid role error")
	}

	mr.HSet(sessionKey("tampered"), "person_id", "3", "role", "admin")
	if _, err := store.Get(ctx, "tampered"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected tampered session to be rejected, got %v", err)
	}
}
