package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"trivia-night/internal/app"
	"trivia-night/internal/audio"
	"trivia-night/internal/config"
	"trivia-night/internal/game"
	transport "trivia-night/internal/transport/http"
	"trivia-night/internal/transport/terminal"
)

// NewPlayCmd starts an interactive game on the terminal.
func NewPlayCmd(configPath *string) *cobra.Command {
	var (
		seed       int64
		scoreboard string
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game against the simulated opponents",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Game.Seed = seed
			}
			if cmd.Flags().Changed("scoreboard") {
				cfg.Scoreboard.Addr = scoreboard
			}
			return runPlay(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for bots and room codes (0 picks one from the clock)")
	cmd.Flags().StringVar(&scoreboard, "scoreboard", "", "serve the spectator scoreboard on this address")
	return cmd
}

func runPlay(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := newLogger(cfg)
	d, err := buildDeps(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer d.Close()

	catalog, err := d.catalogs.GetCatalog(ctx)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	revealDelay := config.TTLDuration(cfg.Game.RevealDelay, game.DefaultRevealDelay)
	machine, err := game.NewMachine(catalog, game.NewRandomSource(cfg.Game.Seed), game.WithRevealDelay(revealDelay))
	if err != nil {
		return err
	}

	var cues app.CuePlayer = audio.NopPlayer{}
	if cfg.Audio.Enabled {
		cues = audio.NewBellPlayer(os.Stderr)
	}
	svc := app.NewGameService(machine, d.rooms, cues, app.WithLogger(logger))
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		svc.Close(closeCtx)
	}()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		defer cancel()
		return terminal.Run(gctx, svc, in, out,
			terminal.WithAnswerWindow(config.TTLDuration(cfg.Game.AnswerWindow, terminal.DefaultAnswerWindow)),
			terminal.WithLogger(logger),
		)
	})

	if cfg.Scoreboard.Addr != "" {
		srv := transport.NewServer(cfg.Scoreboard.Addr, transport.NewRouter(svc, d.rooms, logger, d.checks), logger)
		g.Go(func() error {
			return srv.Run(gctx)
		})
		g.Go(func() error {
			<-gctx.Done()
			return srv.Shutdown(context.Background())
		})
	}

	err = g.Wait()
	if ctx.Err() != nil {
		return nil
	}
	return err
}
