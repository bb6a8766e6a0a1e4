package eventbridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/kingrea/sound-archive/internal/districtmap"
	"github.com/kingrea/sound-archive/internal/metrics"
)

// ServerStatus reports runtime lifecycle states for the HTTP server.
type ServerStatus string

const (
	StatusStarting ServerStatus = "starting"
	StatusReady    ServerStatus = "ready"
	StatusDraining ServerStatus = "draining"
)

// ErrServerDisabled is returned by Start when the settings keep the bridge off.
var ErrServerDisabled = errors.New("eventbridge: server disabled")

// Server wraps the HTTP listener and handlers backing the remote bridge.
// It never touches UI state itself: commands go to the processor and state
// comes back through the hub.
type Server struct {
	settings  Settings
	processor CommandProcessor
	logger    Logger
	clock     func() time.Time
	hub       *Hub
	known     func(id string) bool
	recent    *recentIDs

	mu        sync.RWMutex
	server    *http.Server
	listener  net.Listener
	status    ServerStatus
	startTime time.Time
}

// Option customizes server construction.
type Option func(*Server)

// WithProcessor overrides the default no-op command processor.
func WithProcessor(p CommandProcessor) Option {
	return func(s *Server) {
		if p != nil {
			s.processor = p
		}
	}
}

// WithLogger overrides the default no-op logger.
func WithLogger(l Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock allows tests to control timestamps.
func WithClock(clock func() time.Time) Option {
	return func(s *Server) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithHub shares a snapshot hub with the publisher (normally the TUI).
func WithHub(h *Hub) Option {
	return func(s *Server) {
		if h != nil {
			s.hub = h
		}
	}
}

// WithKnownIDs rejects toggle commands for ids the predicate does not know.
func WithKnownIDs(known func(id string) bool) Option {
	return func(s *Server) {
		s.known = known
	}
}

// NewServer prepares a bridge server using the provided settings. Zero
// limits and timeouts fall back to the defaults.
func NewServer(settings Settings, opts ...Option) *Server {
	defaults := DefaultSettings()
	if settings.MaxBodyBytes <= 0 {
		settings.MaxBodyBytes = defaults.MaxBodyBytes
	}
	if settings.ReadTimeout <= 0 {
		settings.ReadTimeout = defaults.ReadTimeout
	}
	if settings.WriteTimeout <= 0 {
		settings.WriteTimeout = defaults.WriteTimeout
	}
	if settings.IdleTimeout <= 0 {
		settings.IdleTimeout = defaults.IdleTimeout
	}
	s := &Server{
		settings:  settings,
		processor: CommandProcessorFunc(func(Command) error { return nil }),
		logger:    nopLogger{},
		clock:     func() time.Time { return time.Now().UTC() },
		hub:       NewHub(),
		recent:    newRecentIDs(defaultDedupeWindow),
		status:    StatusStarting,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Hub returns the snapshot hub the server streams from.
func (s *Server) Hub() *Hub {
	return s.hub
}

// Start binds the TCP listener and begins serving HTTP traffic.
func (s *Server) Start(ctx context.Context) error {
	if s == nil {
		return fmt.Errorf("eventbridge: server is nil")
	}
	if !s.settings.Enabled {
		return ErrServerDisabled
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return fmt.Errorf("eventbridge: server already started")
	}
	addr := s.settings.Address()
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("eventbridge: listen %s: %w", addr, err)
	}
	s.listener = listener
	s.startTime = s.clock()
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/state", s.handleState)
	mux.HandleFunc("/events", s.handleEvents)
	mux.HandleFunc("/stream", s.handleStream)
	mux.HandleFunc("/districts", s.handleDistricts)
	mux.Handle("/metrics", metrics.Handler())
	server := &http.Server{
		Handler:      mux,
		ReadTimeout:  s.settings.ReadTimeout,
		WriteTimeout: s.settings.WriteTimeout,
		IdleTimeout:  s.settings.IdleTimeout,
	}
	if ctx != nil {
		server.BaseContext = func(net.Listener) context.Context { return ctx }
	}
	s.server = server
	s.status = StatusReady
	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Printf("eventbridge: serve error: %v", err)
		}
	}()
	s.logger.Printf("eventbridge: listening on %s", listener.Addr().String())
	return nil
}

// Shutdown stops accepting new connections, closes stream clients and waits
// for in-flight requests to exit.
func (s *Server) Shutdown(ctx context.Context) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil || s.server == nil {
		return nil
	}
	s.status = StatusDraining
	deadline := ctx
	if deadline == nil {
		var cancel context.CancelFunc
		deadline, cancel = context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
	}
	s.hub.closeAll()
	if err := s.server.Shutdown(deadline); err != nil {
		return err
	}
	s.listener = nil
	s.server = nil
	return nil
}

// Addr returns the bound TCP address once the server has started.
func (s *Server) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// BaseURL returns the HTTP base URL (scheme + host:port) for the running server.
func (s *Server) BaseURL() string {
	addr := s.Addr()
	if addr == "" {
		return s.settings.URL()
	}
	return "http://" + addr
}

// Status reports the server's lifecycle state.
func (s *Server) Status() ServerStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *Server) now() time.Time {
	if s.clock == nil {
		return time.Now().UTC()
	}
	return s.clock().UTC()
}

func (s *Server) uptimeSeconds() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.startTime.IsZero() {
		return 0
	}
	return int64(time.Since(s.startTime).Seconds())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	resp := healthResponse{
		Status:        string(s.Status()),
		Version:       ProtocolVersion,
		Streams:       s.hub.Count(),
		UptimeSeconds: s.uptimeSeconds(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet) {
		return
	}
	snap, ok := s.hub.Latest()
	if !ok {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "no state published yet"})
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodPost) {
		return
	}
	if r.Body == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "empty body"})
		return
	}
	reader := http.MaxBytesReader(w, r.Body, s.settings.MaxBodyBytes)
	defer reader.Close()
	body, err := io.ReadAll(reader)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "payload exceeds limit"})
			return
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unable to read body"})
		return
	}
	var cmd Command
	if err := json.Unmarshal(body, &cmd); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	cmd.Normalize()
	if err := cmd.Validate(); err != nil {
		metrics.BridgeCommandsTotal.WithLabelValues(string(cmd.Type), "rejected").Inc()
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if cmd.Type == CommandToggle && s.known != nil && !s.known(cmd.ID) {
		metrics.BridgeCommandsTotal.WithLabelValues(string(cmd.Type), "rejected").Inc()
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("toggle: unknown specimen %q", cmd.ID)})
		return
	}
	cmd.StampServerTime(s.now())
	if s.recent.seen(cmd.EventID) {
		metrics.BridgeCommandsTotal.WithLabelValues(string(cmd.Type), "duplicate").Inc()
		writeJSON(w, http.StatusOK, commandResponse{Status: "duplicate", EventID: cmd.EventID, ServerTime: cmd.ServerTime})
		return
	}
	if err := s.processor.HandleCommand(cmd); err != nil {
		s.logger.Printf("eventbridge: processor error: %v", err)
		metrics.BridgeCommandsTotal.WithLabelValues(string(cmd.Type), "failed").Inc()
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "command processing failed"})
		return
	}
	metrics.BridgeCommandsTotal.WithLabelValues(string(cmd.Type), "accepted").Inc()
	writeJSON(w, http.StatusAccepted, commandResponse{Status: "accepted", EventID: cmd.EventID, ServerTime: cmd.ServerTime})
}

func (s *Server) handleDistricts(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet) {
		return
	}
	raw, err := districtmap.FeatureCollection().MarshalJSON()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "encode districts"})
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("eventbridge: stream upgrade: %v", err)
		return
	}
	// The server's read timeout would otherwise cut idle watchers off.
	_ = ws.SetReadDeadline(time.Time{})
	if err := s.hub.join(ws); err != nil {
		s.logger.Printf("eventbridge: stream join: %v", err)
		_ = ws.Close()
		return
	}
	defer s.hub.leave(ws)
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return
		}
	}
}

func allowMethods(w http.ResponseWriter, r *http.Request, methods ...string) bool {
	for _, m := range methods {
		if r.Method == m {
			return true
		}
	}
	allow := methods[0]
	for _, m := range methods[1:] {
		allow += ", " + m
	}
	w.Header().Set("Allow", allow)
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	return false
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}
