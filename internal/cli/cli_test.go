package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"trivia-night/internal/config"
)

func TestPacksCommandListsBuiltInPacks(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"packs", "--config", filepath.Join(dir, "none.yaml"), "--env-file", filepath.Join(dir, ".env")})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("packs: %v", err)
	}
	for _, want := range []string{"seerah", "Seerah Basics", "Questions"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in output:\n%s", want, out.String())
		}
	}
}

func TestMigrateRequiresPostgres(t *testing.T) {
	dir := t.TempDir()
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"migrate", "--config", filepath.Join(dir, "none.yaml"), "--env-file", filepath.Join(dir, ".env")})

	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected an error without a postgres url")
	}
}

func TestRunPlayEndsWithInput(t *testing.T) {
	cfg := config.Default()
	cfg.Audio.Enabled = false
	cfg.Game.Seed = 1

	var out bytes.Buffer
	if err := runPlay(context.Background(), cfg, strings.NewReader("Amina\n\n"), &out); err != nil {
		t.Fatalf("play: %v", err)
	}
	if !strings.Contains(out.String(), "Choose a pack") || !strings.Contains(out.String(), "Goodbye!") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}
