package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/wricardo/corridor/transport/websocket"
)

func testOptions(t *testing.T) options {
	t.Helper()
	return options{
		host:        "localhost",
		port:        8080,
		configDir:   "configs",
		sessionsDir: t.TempDir(),
	}
}

func TestConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if AppName != "Corridor Game Server" {
		t.Errorf("Unexpected app name %s", AppName)
	}
}

func TestInitializeServices(t *testing.T) {
	svc, err := initializeServices(testOptions(t))
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}

	if svc.game == nil || svc.sessions == nil || svc.configs == nil || svc.persistence == nil {
		t.Fatal("Expected every service to be initialized")
	}

	info, err := svc.game.CreateSession(context.Background(), "mini")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if !svc.persistence.Exists(info.ID) {
		t.Error("New session should be persisted")
	}
}

func TestInitializeServices_InvalidConfigDir(t *testing.T) {
	opts := testOptions(t)
	opts.configDir = "/non/existent/path"

	if _, err := initializeServices(opts); err == nil {
		t.Error("Expected error for non-existent config directory")
	}
}

func TestInitializeServices_LoadsPersistedSessions(t *testing.T) {
	opts := testOptions(t)

	first, err := initializeServices(opts)
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}
	ctx := context.Background()
	info, _ := first.game.CreateSession(ctx, "mini")
	if _, err := first.game.Move(ctx, info.ID, "C2"); err != nil {
		t.Fatalf("Move failed: %v", err)
	}

	second, err := initializeServices(opts)
	if err != nil {
		t.Fatalf("Failed to reinitialize services: %v", err)
	}
	if second.sessions.Count() != 1 {
		t.Fatalf("Expected 1 restored session, got %d", second.sessions.Count())
	}

	state, err := second.game.GetGameState(ctx, info.ID)
	if err != nil {
		t.Fatalf("GetGameState failed: %v", err)
	}
	if state.History != "C2" {
		t.Errorf("Expected restored history C2, got %q", state.History)
	}
}

func TestSyncWithFilesystem(t *testing.T) {
	svc, err := initializeServices(testOptions(t))
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}

	ctx := context.Background()
	kept, _ := svc.game.CreateSession(ctx, "")
	removed, _ := svc.game.CreateSession(ctx, "")

	if err := svc.persistence.Delete(removed.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if pruned := syncWithFilesystem(svc.sessions, svc.persistence); pruned != 1 {
		t.Errorf("Expected 1 pruned session, got %d", pruned)
	}
	if _, err := svc.sessions.Get(kept.ID); err != nil {
		t.Errorf("Session %s should survive the sync: %v", kept.ID, err)
	}
	if svc.sessions.Count() != 1 {
		t.Errorf("Expected 1 session in memory, got %d", svc.sessions.Count())
	}

	if pruned := syncWithFilesystem(svc.sessions, nil); pruned != 0 {
		t.Errorf("Sync without persistence should prune nothing, got %d", pruned)
	}
}

func TestNewRouter(t *testing.T) {
	svc, err := initializeServices(testOptions(t))
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}

	ts := httptest.NewServer(newRouter(svc.game, websocket.NewHub(), "http://unused"))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected /health 200, got %d", resp.StatusCode)
	}

	resp, err = http.Get(ts.URL + "/mcp")
	if err != nil {
		t.Fatalf("GET /mcp failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("Expected GET /mcp 405, got %d", resp.StatusCode)
	}

	initialize := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"test","version":"1.0"}}}`
	resp, err = http.Post(ts.URL+"/mcp", "application/json", strings.NewReader(initialize))
	if err != nil {
		t.Fatalf("POST /mcp failed: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `"Corridor"`) {
		t.Errorf("Expected server name in initialize response, got %s", body)
	}
}

func TestAPIAvailable(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer healthy.Close()

	ctx := context.Background()
	if !apiAvailable(ctx, healthy.URL) {
		t.Error("Expected healthy API to be available")
	}
	if apiAvailable(ctx, "http://127.0.0.1:1") {
		t.Error("Expected unreachable API to be unavailable")
	}
}

func TestCommand(t *testing.T) {
	cmd := newCommand()

	names := map[string]bool{}
	for _, sub := range cmd.Commands {
		names[sub.Name] = true
	}
	for _, want := range []string{"server", "mcp"} {
		if !names[want] {
			t.Errorf("Expected subcommand %s", want)
		}
	}

	// Service setup fails before anything listens
	err := cmd.Run(context.Background(), []string{"corridor", "--config-dir", "/non/existent/path", "--sessions-dir", t.TempDir(), "server"})
	if err == nil || !strings.Contains(err.Error(), "config directory does not exist") {
		t.Errorf("Expected config directory error, got %v", err)
	}
}

func TestOptionsLocalURL(t *testing.T) {
	tests := []struct {
		host string
		want string
	}{
		{host: "localhost", want: "http://localhost:8080"},
		{host: "0.0.0.0", want: "http://localhost:8080"},
		{host: "", want: "http://localhost:8080"},
		{host: "127.0.0.1", want: "http://127.0.0.1:8080"},
		{host: "::1", want: "http://[::1]:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			opts := options{host: tt.host, port: 8080}
			if got := opts.localURL(); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}
