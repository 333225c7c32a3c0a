package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"support-chat-backend/internal/chat"
	"support-chat-backend/internal/middleware"
	"support-chat-backend/pkg/log"
)

type stubUseCase struct{}

func (stubUseCase) SendMessage(ctx context.Context, input chat.SendMessageInput) (chat.SendMessageOutput, error) {
	return chat.SendMessageOutput{Reply: "hello", SessionID: "4f9c2a5e-8d1b-4c3a-9e7f-2b6d8a1c0e53"}, nil
}

func (stubUseCase) History(ctx context.Context, sessionID string) (chat.HistoryOutput, error) {
	return chat.HistoryOutput{SessionID: sessionID}, nil
}

type stubPinger struct{ err error }

func (p stubPinger) PingContext(ctx context.Context) error { return p.err }

func newTestServer(t *testing.T, db Pinger) *HTTPServer {
	t.Helper()
	srv, err := New(log.NewNop(), Config{
		Port:        3001,
		Mode:        gin.TestMode,
		Environment: "test",
		DB:          db,
		Middleware:  middleware.Config{AllowedOrigins: []string{"http://localhost:5173"}},
		ChatUseCase: stubUseCase{},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func get(srv *HTTPServer, path string) (*httptest.ResponseRecorder, map[string]any) {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	var body map[string]any
	json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(log.NewNop(), Config{Mode: gin.TestMode, Port: 1}); err == nil {
		t.Error("expected error without chat use case")
	}
	if _, err := New(log.NewNop(), Config{Mode: gin.TestMode, ChatUseCase: stubUseCase{}}); err == nil {
		t.Error("expected error without port")
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, nil)

	w, body := get(srv, "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	data, _ := body["data"].(map[string]any)
	if data["status"] != "ok" || data["timestamp"] == "" {
		t.Errorf("unexpected health body: %v", body)
	}
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Errorf("expected request id header")
	}
}

func TestReady(t *testing.T) {
	w, _ := get(newTestServer(t, stubPinger{}), "/ready")
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 with healthy db, got %d", w.Code)
	}

	w, _ = get(newTestServer(t, stubPinger{err: errors.New("down")}), "/ready")
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 with failing db, got %d", w.Code)
	}
}

func TestUnknownRoute(t *testing.T) {
	w, body := get(newTestServer(t, nil), "/nope")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if body["message"] != routeNotFound {
		t.Errorf("unexpected message %v", body["message"])
	}
}

func TestChatRoutesMounted(t *testing.T) {
	w, _ := get(newTestServer(t, nil), "/chat/history/4f9c2a5e-8d1b-4c3a-9e7f-2b6d8a1c0e53")
	if w.Code != http.StatusOK {
		t.Errorf("expected chat history route to be mounted, got %d", w.Code)
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	srv := newTestServer(t, nil)
	srv.port = 0 // let the OS pick a free port

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	cancel()
	if err := <-done; err != nil {
		t.Errorf("expected clean shutdown, got %v", err)
	}
}
