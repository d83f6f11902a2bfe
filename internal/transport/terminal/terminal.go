package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"trivia-night/internal/content"
	"trivia-night/internal/domain"
)

// DefaultAnswerWindow is how long a question waits for the host to answer.
const DefaultAnswerWindow = 20 * time.Second

var errQuit = errors.New("quit")

// Game is the part of the game service the terminal drives.
type Game interface {
	Catalog() domain.Catalog
	Snapshot() domain.Snapshot
	SubmitProfile(ctx context.Context, name, avatar string) domain.Snapshot
	SelectPack(ctx context.Context, packID string) domain.Snapshot
	Start(ctx context.Context) domain.Snapshot
	SubmitAnswer(ctx context.Context, answerIndex int, timeTaken float64) domain.Snapshot
	Next(ctx context.Context) domain.Snapshot
	PlayCue(cue domain.Cue)
	Subscribe() (<-chan domain.Snapshot, func())
}

type Option func(*UI)

// WithAnswerWindow bounds how long a question waits for input.
func WithAnswerWindow(d time.Duration) Option {
	return func(u *UI) {
		if d > 0 {
			u.window = d
		}
	}
}

// WithClock replaces time.Now when measuring answer time.
func WithClock(now func() time.Time) Option {
	return func(u *UI) { u.now = now }
}

func WithLogger(l *slog.Logger) Option {
	return func(u *UI) { u.logger = l }
}

// UI renders game screens as text and turns typed lines into game events.
type UI struct {
	game    Game
	out     io.Writer
	lines   <-chan string
	updates <-chan domain.Snapshot
	styles  styles
	window  time.Duration
	now     func() time.Time
	logger  *slog.Logger
}

// Run plays games on the terminal until input ends, the player quits or ctx
// is cancelled.
func Run(ctx context.Context, game Game, in io.Reader, out io.Writer, opts ...Option) error {
	updates, cancel := game.Subscribe()
	defer cancel()
	done := make(chan struct{})
	defer close(done)

	u := &UI{
		game:    game,
		out:     out,
		lines:   readLines(in, done),
		updates: updates,
		styles:  newStyles(out),
		window:  DefaultAnswerWindow,
		now:     time.Now,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}

	for {
		err := u.step(ctx)
		switch {
		case err == nil:
		case errors.Is(err, errQuit), errors.Is(err, io.EOF):
			fmt.Fprintln(u.out, u.styles.muted.Render("Goodbye!"))
			return nil
		default:
			return err
		}
	}
}

func (u *UI) step(ctx context.Context) error {
	snap := u.game.Snapshot()
	switch snap.Screen {
	case domain.ScreenProfile:
		return u.profile(ctx)
	case domain.ScreenPackSelection:
		return u.packSelection(ctx)
	case domain.ScreenLobby:
		return u.lobby(ctx, snap)
	case domain.ScreenQuestionActive:
		return u.question(ctx, snap)
	case domain.ScreenLeaderboard:
		return u.leaderboard(ctx, snap)
	case domain.ScreenGameOver:
		return u.gameOver(ctx, snap)
	default:
		return fmt.Errorf("terminal: unknown screen %q", snap.Screen)
	}
}

func (u *UI) profile(ctx context.Context) error {
	fmt.Fprintln(u.out, u.styles.title.Render("Trivia Night"))
	var name string
	for name == "" {
		fmt.Fprint(u.out, "Your name: ")
		line, err := u.readLine(ctx)
		if err != nil {
			return err
		}
		name = strings.TrimSpace(line)
	}

	fmt.Fprintln(u.out, "Pick an avatar:")
	for i, a := range content.Avatars {
		fmt.Fprintf(u.out, "  %d) %s\n", i+1, a)
	}
	avatar := content.Avatars[0]
	for {
		fmt.Fprintf(u.out, "Avatar [1-%d, Enter for %s]: ", len(content.Avatars), avatar)
		line, err := u.readLine(ctx)
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			break
		}
		n, err := strconv.Atoi(line)
		if err == nil && n >= 1 && n <= len(content.Avatars) {
			avatar = content.Avatars[n-1]
			break
		}
		fmt.Fprintln(u.out, u.styles.warn.Render("No such avatar."))
	}

	u.game.SubmitProfile(ctx, name, avatar)
	return nil
}

func (u *UI) packSelection(ctx context.Context) error {
	packs := u.game.Catalog().Packs
	fmt.Fprintln(u.out, u.styles.title.Render("Choose a pack"))
	fmt.Fprint(u.out, u.renderPacks(packs))

	for {
		fmt.Fprint(u.out, "Pack number or id (q to quit): ")
		line, err := u.readLine(ctx)
		if err != nil {
			return err
		}
		choice := strings.TrimSpace(line)
		if strings.EqualFold(choice, "q") {
			return errQuit
		}
		id := choice
		if n, err := strconv.Atoi(choice); err == nil && n >= 1 && n <= len(packs) {
			id = packs[n-1].ID
		}
		if snap := u.game.SelectPack(ctx, id); snap.Screen == domain.ScreenLobby {
			return nil
		}
		fmt.Fprintln(u.out, u.styles.warn.Render(fmt.Sprintf("Unknown pack %q.", choice)))
	}
}

func (u *UI) lobby(ctx context.Context, snap domain.Snapshot) error {
	fmt.Fprint(u.out, u.renderLobby(snap))
	fmt.Fprint(u.out, "Press Enter to start.")
	if _, err := u.readLine(ctx); err != nil {
		return err
	}
	fmt.Fprintln(u.out)
	u.game.Start(ctx)
	return nil
}

func (u *UI) question(ctx context.Context, snap domain.Snapshot) error {
	q := snap.Question
	if q == nil {
		return fmt.Errorf("terminal: question screen without a question")
	}
	if !q.Answered {
		fmt.Fprint(u.out, u.renderQuestion(snap))
		u.game.PlayCue(domain.CueTick)

		index, taken, err := u.readAnswer(ctx, len(q.Options))
		if err != nil {
			return err
		}
		snap = u.game.SubmitAnswer(ctx, index, taken)
		u.logger.Debug("answer submitted", "question", q.Number, "option", index, "seconds", taken)
		fmt.Fprint(u.out, u.renderReveal(snap, index))
	}

	fmt.Fprintln(u.out, u.styles.muted.Render("Waiting for everyone..."))
	return u.waitFor(ctx, domain.ScreenLeaderboard)
}

// readAnswer returns the chosen option and seconds taken. When the window
// closes first it returns -1 and the full window.
func (u *UI) readAnswer(ctx context.Context, options int) (int, float64, error) {
	shown := u.now()
	deadline := time.NewTimer(u.window)
	defer deadline.Stop()

	for {
		fmt.Fprintf(u.out, "Answer [1-%d]: ", options)
		select {
		case <-ctx.Done():
			return 0, 0, ctx.Err()
		case <-deadline.C:
			fmt.Fprintln(u.out)
			fmt.Fprintln(u.out, u.styles.warn.Render("Time's up!"))
			return -1, u.window.Seconds(), nil
		case line, ok := <-u.lines:
			if !ok {
				return 0, 0, io.EOF
			}
			n, err := strconv.Atoi(strings.TrimSpace(line))
			if err != nil || n < 1 || n > options {
				fmt.Fprintln(u.out, u.styles.warn.Render("Pick one of the listed options."))
				continue
			}
			return n - 1, u.now().Sub(shown).Seconds(), nil
		}
	}
}

func (u *UI) leaderboard(ctx context.Context, snap domain.Snapshot) error {
	fmt.Fprintln(u.out, u.styles.title.Render("Leaderboard"))
	fmt.Fprintln(u.out, u.renderStandings(snap.Standings, true))
	prompt := "Press Enter for the next question."
	if q := snap.Question; q != nil && q.Number >= q.Total {
		prompt = "Press Enter to see the results."
	}
	fmt.Fprint(u.out, prompt)
	if _, err := u.readLine(ctx); err != nil {
		return err
	}
	fmt.Fprintln(u.out)
	u.game.Next(ctx)
	return nil
}

func (u *UI) gameOver(ctx context.Context, snap domain.Snapshot) error {
	fmt.Fprintln(u.out, u.styles.title.Render("Game over"))
	if len(snap.Standings) > 0 {
		w := snap.Standings[0]
		fmt.Fprintln(u.out, u.styles.winner.Render(fmt.Sprintf("🏆 %s %s wins with %d points", w.Avatar, w.Name, w.Score)))
	}
	fmt.Fprintln(u.out, u.renderStandings(snap.Standings, false))
	fmt.Fprint(u.out, "Press Enter to play again or q to quit: ")
	line, err := u.readLine(ctx)
	if err != nil {
		return err
	}
	if strings.EqualFold(strings.TrimSpace(line), "q") {
		return errQuit
	}
	u.game.Next(ctx)
	return nil
}

// waitFor drains updates until the session reaches screen.
func (u *UI) waitFor(ctx context.Context, screen domain.Screen) error {
	if u.game.Snapshot().Screen == screen {
		return nil
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case snap, ok := <-u.updates:
			if !ok {
				return errQuit
			}
			if snap.Screen == screen {
				return nil
			}
		}
	}
}

func (u *UI) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-u.lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	}
}

// readLines feeds lines from r into a channel that closes at end of input.
func readLines(r io.Reader, done <-chan struct{}) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
	}()
	return lines
}
