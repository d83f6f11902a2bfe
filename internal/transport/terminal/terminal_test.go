package terminal

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"trivia-night/internal/app"
	"trivia-night/internal/audio"
	"trivia-night/internal/domain"
	"trivia-night/internal/game"
	"trivia-night/internal/infra/memory"
)

func TestRunPlaysAGame(t *testing.T) {
	svc := newService(t)
	defer svc.Close(context.Background())

	var out syncBuffer
	in := strings.NewReader("Amina\n\nnope\np1\n\n2\n\nq\n")
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	err := Run(context.Background(), svc, in, &out, WithClock(func() time.Time { return fixed }))
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		`Unknown pack "nope".`,
		"5500",
		"Question 1 of 1",
		"Correct! +1500",
		"Amina wins with 1500 points",
		"Goodbye!",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, got)
		}
	}
	if screen := svc.Snapshot().Screen; screen != domain.ScreenGameOver {
		t.Fatalf("expected to quit from game over, got %s", screen)
	}
}

func TestRunTimesOutUnansweredQuestion(t *testing.T) {
	svc := newService(t)
	defer svc.Close(context.Background())

	pr, pw := io.Pipe()
	var out syncBuffer
	done := make(chan error, 1)
	go func() {
		done <- Run(context.Background(), svc, pr, &out, WithAnswerWindow(20*time.Millisecond))
	}()

	if _, err := io.WriteString(pw, "Amina\n3\np1\n\n"); err != nil {
		t.Fatalf("write input: %v", err)
	}
	waitForScreen(t, svc, domain.ScreenLeaderboard)

	snap := svc.Snapshot()
	for _, s := range snap.Scores {
		if s.IsHost && (s.Score != 0 || s.LastAnswerPoints != 0) {
			t.Fatalf("expected no points for a timed out answer, got %+v", s)
		}
	}
	if snap.Host.Avatar != "👳‍♀️" {
		t.Fatalf("expected third avatar, got %q", snap.Host.Avatar)
	}

	_, _ = io.WriteString(pw, "\nq\n")
	_ = pw.Close()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("run did not return")
	}
	if !strings.Contains(out.String(), "Time's up!") {
		t.Fatalf("expected timeout notice, got:\n%s", out.String())
	}
}

func TestRunStopsAtEndOfInput(t *testing.T) {
	svc := newService(t)
	defer svc.Close(context.Background())

	var out syncBuffer
	if err := Run(context.Background(), svc, strings.NewReader("Amina\n"), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Goodbye!") {
		t.Fatalf("expected goodbye, got:\n%s", out.String())
	}
}

func TestRunHonoursContext(t *testing.T) {
	svc := newService(t)
	defer svc.Close(context.Background())

	pr, pw := io.Pipe()
	defer pw.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := Run(ctx, svc, pr, &syncBuffer{}); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRenderStandingsTable(t *testing.T) {
	u := &UI{styles: newStyles(&bytes.Buffer{})}
	out := u.renderStandings([]domain.PlayerScore{
		{Player: domain.Player{ID: domain.HostID, Name: "Amina", IsHost: true}, Score: 2500, LastAnswerPoints: 1000},
		{Player: domain.Player{ID: "sim-0", Name: "Salah"}, Score: 1267, LastAnswerPoints: 0},
	}, true)

	for _, want := range []string{"Player", "Amina", "2500", "+1000", "Salah", "+0"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected table to contain %q, got:\n%s", want, out)
		}
	}
}

func newService(t *testing.T) *app.GameService {
	t.Helper()
	catalog := domain.Catalog{
		Packs: []domain.Pack{{
			ID:    "p1",
			Title: "Pack One",
			Color: "#2563EB",
			Questions: []domain.Question{
				{Text: "Pick b", Options: []string{"a", "b", "c", "d"}, CorrectAnswerIndex: 1, Points: 1000},
			},
		}},
		Bots: []domain.BotSeed{{Name: "Salah"}, {Name: "Fatima"}},
	}
	// room code 5500; bots answer correctly in 7s
	rnd := game.NewSequenceSource(0.5, 0.9, 0.5, 0.9, 0.5)
	machine, err := game.NewMachine(catalog, rnd, game.WithRevealDelay(time.Millisecond))
	if err != nil {
		t.Fatalf("new machine: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return app.NewGameService(machine, memory.NewRoomStore(), audio.NopPlayer{}, app.WithLogger(logger))
}

func waitForScreen(t *testing.T, svc *app.GameService, screen domain.Screen) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if svc.Snapshot().Screen == screen {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s, at %s", screen, svc.Snapshot().Screen)
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
