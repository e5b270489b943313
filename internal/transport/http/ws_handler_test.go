package http

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"

	"hacknight-service/internal/app"
	"hacknight-service/internal/domain"
	"hacknight-service/internal/infra/memory"
	"hacknight-service/internal/logger"
)

func TestWebSocketLeaderboardFeed(t *testing.T) {
	service := app.NewGameService(memory.NewPlayerStore(), memory.NewPhaseStore())
	handler := NewHandler(service, logger.New(io.Discard, slog.LevelError), "http://localhost:8080")

	router := httprouter.New()
	handler.Routes(router)
	server := httptest.NewServer(router)
	defer server.Close()

	ctx := context.Background()
	if _, err := service.Control(ctx, "start"); err != nil {
		t.Fatalf("start game: %v", err)
	}
	if _, err := service.Register(ctx, "Alice", "CS-101"); err != nil {
		t.Fatalf("register: %v", err)
	}

	u := "ws" + server.URL[len("http"):] + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// First frame is the current snapshot.
	entries := readLeaderboard(t, conn)
	if len(entries) != 1 || entries[0].Name != "Alice" {
		t.Fatalf("expected initial snapshot with Alice, got %+v", entries)
	}

	if _, err := service.Register(ctx, "Bob", "CS-102"); err != nil {
		t.Fatalf("register: %v", err)
	}

	entries = readLeaderboard(t, conn)
	if len(entries) != 2 {
		t.Fatalf("expected update with 2 entries, got %+v", entries)
	}
}

func readLeaderboard(t *testing.T, conn *websocket.Conn) []domain.LeaderboardEntry {
	t.Helper()
	var msg struct {
		Type    string                    `json:"type"`
		Payload []domain.LeaderboardEntry `json:"payload"`
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read json: %v", err)
	}
	if msg.Type != "leaderboard" {
		t.Fatalf("expected leaderboard frame, got %s", msg.Type)
	}
	return msg.Payload
}
