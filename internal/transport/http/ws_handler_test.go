package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"trivia-night/internal/app"
	"trivia-night/internal/audio"
	"trivia-night/internal/domain"
	"trivia-night/internal/game"
	"trivia-night/internal/infra/memory"
)

func TestWebSocketStreamsRoom(t *testing.T) {
	ctx := context.Background()
	svc, rooms := newLobby(t)
	defer svc.Close(ctx)

	server := httptest.NewServer(NewRouter(svc, rooms, discardLogger(), nil))
	defer server.Close()

	u := "ws" + server.URL[len("http"):] + "/ws?room=5500"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	typ, payload := readNext(conn, t, "snapshot")
	if payload["screen"] != string(domain.ScreenLobby) {
		t.Fatalf("expected lobby snapshot first, got %v (%s)", payload["screen"], typ)
	}

	svc.Start(ctx)
	_, payload = readNext(conn, t, "snapshot")
	if payload["screen"] != string(domain.ScreenQuestionActive) {
		t.Fatalf("expected question snapshot, got %v", payload["screen"])
	}
	question, _ := payload["question"].(map[string]any)
	if _, leaked := question["correctAnswerIndex"]; leaked {
		t.Fatalf("correct answer exposed before answering: %v", question)
	}

	svc.Reset(ctx)
	_, payload = readNext(conn, t, "closed")
	if payload["roomCode"] != "5500" {
		t.Fatalf("expected closed room 5500, got %v", payload)
	}
}

func TestWebSocketUnknownRoom(t *testing.T) {
	svc, rooms := newLobby(t)
	defer svc.Close(context.Background())

	server := httptest.NewServer(NewRouter(svc, rooms, discardLogger(), nil))
	defer server.Close()

	u := "ws" + server.URL[len("http"):] + "/ws?room=0000"
	_, resp, err := websocket.DefaultDialer.Dial(u, nil)
	if err == nil {
		t.Fatalf("expected dial to fail")
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %+v", resp)
	}
}

func TestRoomEndpoint(t *testing.T) {
	svc, rooms := newLobby(t)
	defer svc.Close(context.Background())

	server := httptest.NewServer(NewRouter(svc, rooms, discardLogger(), nil))
	defer server.Close()

	resp, err := http.Get(server.URL + "/rooms/5500")
	if err != nil {
		t.Fatalf("get room: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var snap domain.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.Screen != domain.ScreenLobby || len(snap.Players) != 3 {
		t.Fatalf("unexpected room snapshot %+v", snap)
	}

	missing, err := http.Get(server.URL + "/rooms/1234")
	if err != nil {
		t.Fatalf("get missing room: %v", err)
	}
	missing.Body.Close()
	if missing.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", missing.StatusCode)
	}
}

func TestHealthReportsFailingChecks(t *testing.T) {
	svc, rooms := newLobby(t)
	defer svc.Close(context.Background())

	checks := map[string]HealthCheck{
		"redis": func(context.Context) error { return errors.New("connection refused") },
	}
	server := httptest.NewServer(NewRouter(svc, rooms, discardLogger(), checks))
	defer server.Close()

	resp, err := http.Get(server.URL + "/healthz")
	if err != nil {
		t.Fatalf("healthz: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.StatusCode)
	}
	var body map[string]map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["redis"]["status"] != "error" || body["game"]["status"] != "ok" {
		t.Fatalf("unexpected health body %v", body)
	}
}

func readNext(conn *websocket.Conn, t *testing.T, expect string) (string, map[string]any) {
	t.Helper()
	var msg struct {
		Type    string         `json:"type"`
		Payload map[string]any `json:"payload"`
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read json: %v", err)
	}
	if expect != "" && msg.Type != expect {
		t.Fatalf("expected type %s, got %s", expect, msg.Type)
	}
	return msg.Type, msg.Payload
}

// newLobby returns a service whose host is waiting in room 5500.
func newLobby(t *testing.T) (*app.GameService, *memory.RoomStore) {
	t.Helper()
	catalog := domain.Catalog{
		Packs: []domain.Pack{{
			ID:    "p1",
			Title: "Pack One",
			Questions: []domain.Question{
				{Text: "2 + 2?", Options: []string{"3", "4", "5"}, CorrectAnswerIndex: 1, Points: 1000},
			},
		}},
		Bots: []domain.BotSeed{{Name: "Salah"}, {Name: "Fatima"}},
	}
	machine, err := game.NewMachine(catalog, game.NewSequenceSource(0.5))
	if err != nil {
		t.Fatalf("new machine: %v", err)
	}
	rooms := memory.NewRoomStore()
	svc := app.NewGameService(machine, rooms, audio.NopPlayer{}, app.WithLogger(discardLogger()))

	ctx := context.Background()
	svc.SubmitProfile(ctx, "Amina", "🧕")
	if snap := svc.SelectPack(ctx, "p1"); snap.RoomCode != "5500" {
		t.Fatalf("expected room 5500, got %q", snap.RoomCode)
	}
	return svc, rooms
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
