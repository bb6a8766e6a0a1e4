package eventbridge

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/kingrea/sound-archive/internal/config"
	"github.com/kingrea/sound-archive/internal/session"
)

func testSettings() Settings {
	return Settings{Enabled: true, Host: "127.0.0.1", Port: 0, MaxBodyBytes: 1024, ReadTimeout: time.Second, WriteTimeout: time.Second, IdleTimeout: time.Second}
}

func startServer(t *testing.T, opts ...Option) *Server {
	t.Helper()
	srv := NewServer(testSettings(), opts...)
	t.Cleanup(func() {
		_ = srv.Shutdown(context.Background())
	})
	if err := srv.Start(context.Background()); err != nil {
		t.Fatalf("start server: %v", err)
	}
	return srv
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()
	buf, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	resp.Body.Close()
	return resp
}

func TestSettingsDefaultToDisabled(t *testing.T) {
	settings := SettingsFromConfig(nil)
	if settings.Enabled {
		t.Fatalf("bridge should be disabled by default")
	}
	if settings.Port != DefaultPort || settings.Host != DefaultHost {
		t.Fatalf("unexpected defaults: %+v", settings)
	}
}

func TestSettingsFromConfigHonorsEnv(t *testing.T) {
	t.Setenv("SOUNDARCHIVE_BRIDGE_PORT", "9001")
	t.Setenv("SOUNDARCHIVE_BRIDGE_HOST", "0.0.0.0")
	t.Setenv("SOUNDARCHIVE_BRIDGE_ENABLED", "true")
	disabled := false
	cfg := &config.Config{File: config.FileConfig{Bridge: config.BridgeConfig{Enabled: &disabled, Port: 7000}}}
	settings := SettingsFromConfig(cfg)
	if settings.Port != 9001 {
		t.Fatalf("expected port 9001, got %d", settings.Port)
	}
	if settings.Host != "0.0.0.0" {
		t.Fatalf("expected host override, got %s", settings.Host)
	}
	if !settings.Enabled {
		t.Fatalf("expected enabled=true from env override")
	}
}

func TestCommandValidate(t *testing.T) {
	valid := []Command{
		{Type: CommandNavigate, View: "map"},
		{Type: CommandSelectCategory, Category: "Nature"},
		{Type: CommandSetSearch, Query: ""},
		{Type: CommandSelectDistrict, District: "Outskirts"},
		{Type: CommandClearDistrict},
		{Type: CommandToggle, ID: "TR-001"},
	}
	for _, cmd := range valid {
		cmd.Normalize()
		if err := cmd.Validate(); err != nil {
			t.Fatalf("%s: expected valid command, got %v", cmd.Type, err)
		}
	}
	invalid := []Command{
		{},
		{Type: "teleport"},
		{Type: CommandNavigate, View: "settings"},
		{Type: CommandSelectCategory, Category: "Jazz"},
		{Type: CommandSelectDistrict, District: "Gotham"},
		{Type: CommandToggle},
	}
	for _, cmd := range invalid {
		cmd.Normalize()
		if err := cmd.Validate(); err == nil {
			t.Fatalf("expected %+v to be rejected", cmd)
		}
	}
}

func TestCommandNormalizeAssignsEventID(t *testing.T) {
	cmd := Command{Type: " Select_District ", District: "haidian"}
	cmd.Normalize()
	if cmd.EventID == "" {
		t.Fatalf("expected generated event id")
	}
	if cmd.Type != CommandSelectDistrict || cmd.District != "Haidian" {
		t.Fatalf("unexpected normalization: %+v", cmd)
	}
}

func TestServerAcceptsCommands(t *testing.T) {
	t.Parallel()
	fixed := time.Unix(1730000000, 0).UTC()
	recorded := make(chan Command, 1)
	srv := startServer(t,
		WithClock(func() time.Time { return fixed }),
		WithProcessor(CommandProcessorFunc(func(c Command) error {
			recorded <- c
			return nil
		})))
	base := srv.BaseURL()
	resp, err := http.Get(base + "/health")
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 health, got %d", resp.StatusCode)
	}
	resp = postJSON(t, base+"/events", Command{EventID: "evt-1", Type: CommandSelectCategory, Category: "nature"})
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", resp.StatusCode)
	}
	select {
	case cmd := <-recorded:
		if !cmd.ServerTime.Equal(fixed) {
			t.Fatalf("expected server time %s, got %s", fixed, cmd.ServerTime)
		}
		if cmd.Category != "Nature" {
			t.Fatalf("expected canonical category, got %q", cmd.Category)
		}
	default:
		t.Fatalf("command not forwarded to processor")
	}
}

func TestServerDropsDuplicateEventIDs(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	srv := startServer(t, WithProcessor(CommandProcessorFunc(func(Command) error {
		calls.Add(1)
		return nil
	})))
	cmd := Command{EventID: "evt-dup", Type: CommandClearDistrict}
	first := postJSON(t, srv.BaseURL()+"/events", cmd)
	second := postJSON(t, srv.BaseURL()+"/events", cmd)
	if first.StatusCode != http.StatusAccepted || second.StatusCode != http.StatusOK {
		t.Fatalf("unexpected statuses %d/%d", first.StatusCode, second.StatusCode)
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected a single processed command, got %d", got)
	}
}

func TestServerRejectsMalformedCommands(t *testing.T) {
	t.Parallel()
	srv := startServer(t, WithKnownIDs(func(id string) bool { return id == "TR-001" }))
	base := srv.BaseURL()

	resp, err := http.Post(base+"/events", "application/json", strings.NewReader("{not json"))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid JSON, got %d", resp.StatusCode)
	}
	if resp := postJSON(t, base+"/events", Command{Type: CommandToggle, ID: "ZZ-999"}); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown specimen, got %d", resp.StatusCode)
	}
	if resp := postJSON(t, base+"/events", Command{Type: CommandToggle, ID: "TR-001"}); resp.StatusCode != http.StatusAccepted {
		t.Fatalf("expected 202 for known specimen, got %d", resp.StatusCode)
	}
	resp, err = http.Get(base + "/events")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", resp.StatusCode)
	}
}

func TestServerEnforcesPayloadLimit(t *testing.T) {
	t.Parallel()
	settings := testSettings()
	settings.MaxBodyBytes = 64
	srv := NewServer(settings)
	t.Cleanup(func() {
		_ = srv.Shutdown(context.Background())
	})
	if err := srv.Start(context.Background()); err != nil {
		t.Fatalf("start server: %v", err)
	}
	resp := postJSON(t, srv.BaseURL()+"/events", Command{Type: CommandSetSearch, Query: strings.Repeat("a", 512)})
	if resp.StatusCode != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", resp.StatusCode)
	}
}

func TestServerDisabled(t *testing.T) {
	srv := NewServer(Settings{})
	if err := srv.Start(context.Background()); err != ErrServerDisabled {
		t.Fatalf("expected ErrServerDisabled, got %v", err)
	}
}

func TestStateAndStream(t *testing.T) {
	t.Parallel()
	hub := NewHub()
	srv := startServer(t, WithHub(hub))
	base := srv.BaseURL()

	resp, err := http.Get(base + "/state")
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 before first publish, got %d", resp.StatusCode)
	}

	hub.Publish(session.Snapshot{View: "overview", Results: 25})
	resp, err = http.Get(base + "/state")
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	var snap session.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	resp.Body.Close()
	if snap.View != "overview" || snap.Results != 25 {
		t.Fatalf("unexpected state %+v", snap)
	}

	ws, _, err := websocket.DefaultDialer.Dial("ws://"+srv.Addr()+"/stream", nil)
	if err != nil {
		t.Fatalf("dial stream: %v", err)
	}
	defer ws.Close()
	_ = ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	if err := ws.ReadJSON(&snap); err != nil {
		t.Fatalf("read initial frame: %v", err)
	}
	if snap.View != "overview" {
		t.Fatalf("expected initial overview frame, got %+v", snap)
	}

	hub.Publish(session.Snapshot{View: "archive", Search: "Nature", Results: 3})
	if err := ws.ReadJSON(&snap); err != nil {
		t.Fatalf("read broadcast frame: %v", err)
	}
	if snap.View != "archive" || snap.Search != "Nature" || snap.Results != 3 {
		t.Fatalf("unexpected broadcast %+v", snap)
	}
}

func TestServerServesDistrictsAndMetrics(t *testing.T) {
	srv := startServer(t)

	resp, err := http.Get(srv.BaseURL() + "/districts")
	if err != nil {
		t.Fatalf("get districts: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("districts status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/geo+json" {
		t.Fatalf("districts content type = %q", ct)
	}
	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&fc); err != nil {
		t.Fatalf("decode districts: %v", err)
	}
	if fc.Type != "FeatureCollection" || len(fc.Features) != 16 {
		t.Fatalf("unexpected collection: type=%q features=%d", fc.Type, len(fc.Features))
	}

	postJSON(t, srv.BaseURL()+"/events", map[string]any{"type": "navigate", "view": "map"})
	mresp, err := http.Get(srv.BaseURL() + "/metrics")
	if err != nil {
		t.Fatalf("get metrics: %v", err)
	}
	defer mresp.Body.Close()
	body, err := io.ReadAll(mresp.Body)
	if err != nil {
		t.Fatalf("read metrics: %v", err)
	}
	if !strings.Contains(string(body), `soundarchive_bridge_commands_total{outcome="accepted",type="navigate"}`) {
		t.Fatalf("metrics missing accepted navigate counter:\n%s", body)
	}
}
