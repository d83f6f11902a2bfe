package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"trivia-night/internal/domain"
	"trivia-night/internal/game"

	"github.com/google/uuid"
)

// CatalogRepository loads game content (from cache/backing store).
type CatalogRepository interface {
	GetCatalog(ctx context.Context) (domain.Catalog, error)
}

// RoomStore mirrors the live session under its room code (in-memory, Redis, etc).
type RoomStore interface {
	Save(ctx context.Context, snap domain.Snapshot) error
	Get(ctx context.Context, roomCode string) (domain.Snapshot, error)
	Delete(ctx context.Context, roomCode string) error
}

// CuePlayer plays a sound cue. Implementations may block; the service never
// waits on them.
type CuePlayer interface {
	Play(ctx context.Context, cue domain.Cue) error
}

// Scheduler runs f once after d. time.AfterFunc in production.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

type timeScheduler struct{}

func (timeScheduler) AfterFunc(d time.Duration, f func()) { time.AfterFunc(d, f) }

// GameService owns the live session and applies events to it one at a time.
type GameService struct {
	machine   *game.Machine
	rooms     RoomStore
	cues      CuePlayer
	scheduler Scheduler
	logger    *slog.Logger
	newID     func() string

	mu          sync.Mutex
	session     game.Session
	gameID      string
	epoch       uint64
	closed      bool
	subscribers map[chan domain.Snapshot]struct{}
	cueWG       sync.WaitGroup
}

// ServiceOption customizes a GameService.
type ServiceOption func(*GameService)

// WithScheduler replaces the timer used for deferred reveals.
func WithScheduler(s Scheduler) ServiceOption {
	return func(g *GameService) { g.scheduler = s }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(g *GameService) { g.logger = l }
}

// WithGameIDs replaces the game id generator.
func WithGameIDs(f func() string) ServiceOption {
	return func(g *GameService) { g.newID = f }
}

func NewGameService(machine *game.Machine, rooms RoomStore, cues CuePlayer, opts ...ServiceOption) *GameService {
	g := &GameService{
		machine:     machine,
		rooms:       rooms,
		cues:        cues,
		scheduler:   timeScheduler{},
		logger:      slog.Default(),
		newID:       uuid.NewString,
		session:     game.NewSession(),
		subscribers: make(map[chan domain.Snapshot]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Catalog returns the content the service plays with.
func (g *GameService) Catalog() domain.Catalog {
	return g.machine.Catalog()
}

// SubmitProfile records the host profile.
func (g *GameService) SubmitProfile(ctx context.Context, name, avatar string) domain.Snapshot {
	return g.Dispatch(ctx, game.SubmitProfile{Name: name, Avatar: avatar})
}

// SelectPack opens a lobby for packID. Unknown packs leave the session as is.
func (g *GameService) SelectPack(ctx context.Context, packID string) domain.Snapshot {
	return g.Dispatch(ctx, game.SelectPack{PackID: packID})
}

// Start begins the first question.
func (g *GameService) Start(ctx context.Context) domain.Snapshot {
	return g.Dispatch(ctx, game.StartGame{})
}

// SubmitAnswer scores the round. The leaderboard follows after the reveal delay.
func (g *GameService) SubmitAnswer(ctx context.Context, answerIndex int, timeTaken float64) domain.Snapshot {
	return g.Dispatch(ctx, game.SubmitAnswer{AnswerIndex: answerIndex, TimeTaken: timeTaken})
}

// Next advances from the leaderboard or resets from game over.
func (g *GameService) Next(ctx context.Context) domain.Snapshot {
	return g.Dispatch(ctx, game.Next{})
}

// Reset abandons the current game.
func (g *GameService) Reset(ctx context.Context) domain.Snapshot {
	return g.Dispatch(ctx, game.Reset{})
}

// Snapshot returns the current read model.
func (g *GameService) Snapshot() domain.Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

// Dispatch applies ev to the live session, executes the resulting commands and
// publishes the new snapshot.
func (g *GameService) Dispatch(ctx context.Context, ev game.Event) domain.Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.dispatchLocked(ctx, ev)
}

func (g *GameService) dispatchLocked(ctx context.Context, ev game.Event) domain.Snapshot {
	if g.closed {
		return g.snapshotLocked()
	}

	prev := g.session
	next, cmds := g.machine.Transition(prev, ev)
	g.session = next

	if len(cmds) == 0 && sameSession(prev, next) {
		g.logger.Debug("event ignored", "event", fmt.Sprintf("%T", ev), "screen", prev.Screen())
		return g.snapshotLocked()
	}

	g.trackGameLocked(ctx, prev, next)

	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case game.ScheduleReveal:
			g.scheduleRevealLocked(c)
		case game.PlayCue:
			g.playAsync(c.Cue)
		}
	}

	snap := g.snapshotLocked()
	g.logger.Debug("state changed", "game", g.gameID, "from", prev.Screen(), "to", next.Screen())
	g.broadcastLocked(snap)
	if snap.RoomCode != "" {
		if err := g.rooms.Save(ctx, snap); err != nil {
			g.logger.Warn("room store save failed", "room", snap.RoomCode, "err", err)
		}
	}
	return snap
}

// trackGameLocked assigns a game id when a lobby opens and releases the room
// once the session is discarded.
func (g *GameService) trackGameLocked(ctx context.Context, prev, next game.Session) {
	if prev.RoomCode != "" && next.RoomCode != prev.RoomCode {
		if err := g.rooms.Delete(ctx, prev.RoomCode); err != nil {
			g.logger.Warn("room store delete failed", "room", prev.RoomCode, "err", err)
		}
	}
	switch {
	case next.RoomCode != "" && next.RoomCode != prev.RoomCode:
		g.gameID = g.newID()
		g.logger.Info("lobby opened", "game", g.gameID, "room", next.RoomCode, "pack", next.Pack.ID, "players", len(next.Players))
	case next.RoomCode == "" && prev.RoomCode != "":
		g.logger.Info("game discarded", "game", g.gameID, "room", prev.RoomCode)
		g.gameID = ""
	}
	if next.Screen() == domain.ScreenProfile && prev.Screen() != domain.ScreenProfile {
		// pending reveals belong to the discarded session
		g.epoch++
	}
}

func (g *GameService) scheduleRevealLocked(c game.ScheduleReveal) {
	g.epoch++
	epoch := g.epoch
	g.scheduler.AfterFunc(c.After, func() {
		g.fireReveal(epoch, c.Index)
	})
}

func (g *GameService) fireReveal(epoch uint64, index int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed || epoch != g.epoch {
		g.logger.Debug("stale reveal dropped", "index", index)
		return
	}
	g.dispatchLocked(context.Background(), game.RevealElapsed{Index: index})
}

// PlayCue plays a cue without waiting for it. Failures are logged only.
func (g *GameService) PlayCue(cue domain.Cue) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return
	}
	g.playAsync(cue)
}

func (g *GameService) playAsync(cue domain.Cue) {
	if g.cues == nil {
		return
	}
	g.cueWG.Add(1)
	go func() {
		defer g.cueWG.Done()
		defer func() {
			if r := recover(); r != nil {
				g.logger.Error("cue playback panicked", "cue", cue, "panic", r)
			}
		}()
		if err := g.cues.Play(context.Background(), cue); err != nil {
			g.logger.Warn("cue playback failed", "cue", cue, "err", err)
		}
	}()
}

// Subscribe returns a channel that receives a snapshot after every change.
// The caller must invoke the returned cancel function to avoid leaks.
func (g *GameService) Subscribe() (<-chan domain.Snapshot, func()) {
	ch := make(chan domain.Snapshot, 8)

	g.mu.Lock()
	g.subscribers[ch] = struct{}{}
	initial := g.snapshotLocked()
	g.mu.Unlock()

	ch <- initial

	cancel := func() {
		g.mu.Lock()
		if _, ok := g.subscribers[ch]; ok {
			delete(g.subscribers, ch)
			close(ch)
		}
		g.mu.Unlock()
	}
	return ch, cancel
}

func (g *GameService) broadcastLocked(snap domain.Snapshot) {
	for ch := range g.subscribers {
		select {
		case ch <- snap:
		default:
			// slow subscriber: drop its oldest update so the newest gets through
			select {
			case <-ch:
			default:
			}
			ch <- snap
		}
	}
}

func (g *GameService) snapshotLocked() domain.Snapshot {
	snap := g.session.Snapshot()
	snap.GameID = g.gameID
	return snap
}

// Close tears the service down: pending reveals become no-ops, subscribers are
// closed and in-flight cues are awaited.
func (g *GameService) Close(ctx context.Context) {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return
	}
	g.closed = true
	g.epoch++
	room := g.session.RoomCode
	for ch := range g.subscribers {
		delete(g.subscribers, ch)
		close(ch)
	}
	g.mu.Unlock()

	if room != "" {
		if err := g.rooms.Delete(ctx, room); err != nil {
			g.logger.Warn("room store delete failed", "room", room, "err", err)
		}
	}

	done := make(chan struct{})
	go func() {
		g.cueWG.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
	}
}

// sameSession reports whether b is the untouched session a, which is how the
// machine answers events that do not apply.
func sameSession(a, b game.Session) bool {
	if a.State != b.State || a.Host != b.Host || a.Pack != b.Pack || a.RoomCode != b.RoomCode {
		return false
	}
	if len(a.Scores) != len(b.Scores) || len(a.Players) != len(b.Players) {
		return false
	}
	if len(a.Scores) > 0 && &a.Scores[0] != &b.Scores[0] {
		return false
	}
	return true
}
