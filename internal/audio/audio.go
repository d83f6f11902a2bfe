package audio

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"trivia-night/internal/domain"
)

// bellPatterns maps each cue to a number of terminal bells.
var bellPatterns = map[domain.Cue]int{
	domain.CueStart:     1,
	domain.CueCorrect:   1,
	domain.CueIncorrect: 2,
	domain.CueTick:      1,
	domain.CueGameOver:  3,
}

// BellPlayer "plays" cues by ringing the terminal bell.
type BellPlayer struct {
	mu  sync.Mutex
	w   io.Writer
	gap time.Duration
}

func NewBellPlayer(w io.Writer) *BellPlayer {
	return &BellPlayer{w: w, gap: 150 * time.Millisecond}
}

func (p *BellPlayer) Play(ctx context.Context, cue domain.Cue) error {
	n, ok := bellPatterns[cue]
	if !ok {
		return fmt.Errorf("audio: unknown cue %q", cue)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for i := 0; i < n; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(p.gap):
			}
		}
		if _, err := io.WriteString(p.w, "\a"); err != nil {
			return fmt.Errorf("audio: ring bell: %w", err)
		}
	}
	return nil
}

// NopPlayer discards every cue.
type NopPlayer struct{}

func (NopPlayer) Play(context.Context, domain.Cue) error { return nil }

// RecordingPlayer keeps the cues it was asked to play. Handy for tests and
// headless runs.
type RecordingPlayer struct {
	mu   sync.Mutex
	cues []domain.Cue
}

func (p *RecordingPlayer) Play(_ context.Context, cue domain.Cue) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cues = append(p.cues, cue)
	return nil
}

// Cues returns the cues played so far.
func (p *RecordingPlayer) Cues() []domain.Cue {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.Cue{}, p.cues...)
}

func (p *RecordingPlayer) String() string {
	cues := p.Cues()
	names := make([]string, 0, len(cues))
	for _, c := range cues {
		names = append(names, string(c))
	}
	return strings.Join(names, ",")
}
