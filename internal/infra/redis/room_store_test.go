package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"trivia-night/internal/domain"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestRoomStoreSetsAndClearsKeys(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRoomStore(client, time.Minute)

	snap := domain.Snapshot{
		Screen:   domain.ScreenLobby,
		RoomCode: "4321",
		Scores:   []domain.PlayerScore{{Player: domain.Player{ID: domain.HostID, Name: "Amina", IsHost: true}}},
	}
	if err := store.Save(ctx, snap); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !mr.Exists("trivia:room:4321") {
		t.Fatalf("expected redis key to be set")
	}
	if ttl := mr.TTL("trivia:room:4321"); ttl != time.Minute {
		t.Fatalf("expected 1m ttl, got %v", ttl)
	}

	got, err := store.Get(ctx, "4321")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Screen != domain.ScreenLobby || len(got.Scores) != 1 || got.Scores[0].Name != "Amina" {
		t.Fatalf("unexpected snapshot %+v", got)
	}

	if err := store.Delete(ctx, "4321"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if mr.Exists("trivia:room:4321") {
		t.Fatalf("expected redis key to be removed")
	}
	if _, err := store.Get(ctx, "4321"); !errors.Is(err, domain.ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}
