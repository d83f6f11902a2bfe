package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"trivia-night/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RoomStore keeps the latest snapshot of each live room in Redis so a display
// process can read it by room code. Keys expire after ttl and are removed as
// soon as the game is discarded.
type RoomStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRoomStore(client *redis.Client, ttl time.Duration) *RoomStore {
	return &RoomStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *RoomStore) Save(ctx context.Context, snap domain.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	return s.client.Set(ctx, s.key(snap.RoomCode), data, s.ttl).Err()
}

func (s *RoomStore) Get(ctx context.Context, roomCode string) (domain.Snapshot, error) {
	raw, err := s.client.Get(ctx, s.key(roomCode)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Snapshot{}, domain.ErrRoomNotFound
	}
	if err != nil {
		return domain.Snapshot{}, err
	}
	var snap domain.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return domain.Snapshot{}, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return snap, nil
}

func (s *RoomStore) Delete(ctx context.Context, roomCode string) error {
	return s.client.Del(ctx, s.key(roomCode)).Err()
}

func (s *RoomStore) key(roomCode string) string {
	return "trivia:room:" + roomCode
}
