package memory

import (
	"context"
	"sync"

	"trivia-night/internal/domain"
)

// RoomStore is an in-memory implementation of app.RoomStore.
type RoomStore struct {
	mu    sync.RWMutex
	rooms map[string]domain.Snapshot
}

func NewRoomStore() *RoomStore {
	return &RoomStore{
		rooms: make(map[string]domain.Snapshot),
	}
}

func (s *RoomStore) Save(_ context.Context, snap domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[snap.RoomCode] = snap
	return nil
}

func (s *RoomStore) Get(_ context.Context, roomCode string) (domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.rooms[roomCode]
	if !ok {
		return domain.Snapshot{}, domain.ErrRoomNotFound
	}
	return snap, nil
}

func (s *RoomStore) Delete(_ context.Context, roomCode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, roomCode)
	return nil
}
