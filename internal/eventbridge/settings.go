package eventbridge

import (
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kingrea/sound-archive/internal/config"
)

const (
	DefaultHost               = "127.0.0.1"
	DefaultPort               = 8766
	DefaultMaxBodyBytes int64 = 64 << 10

	DefaultReadTimeout  = 15 * time.Second
	DefaultWriteTimeout = 15 * time.Second
	DefaultIdleTimeout  = 60 * time.Second
)

// Environment variables that override the bridge section of config.yaml.
const (
	EnvBridgeEnabled = "SOUNDARCHIVE_BRIDGE_ENABLED"
	EnvBridgeHost    = "SOUNDARCHIVE_BRIDGE_HOST"
	EnvBridgePort    = "SOUNDARCHIVE_BRIDGE_PORT"
)

// Settings describes where the bridge listens and how much it accepts.
type Settings struct {
	Enabled      bool
	Host         string
	Port         int
	MaxBodyBytes int64
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DefaultSettings is a disabled loopback bridge on DefaultPort.
func DefaultSettings() Settings {
	return Settings{
		Host:         DefaultHost,
		Port:         DefaultPort,
		MaxBodyBytes: DefaultMaxBodyBytes,
		ReadTimeout:  DefaultReadTimeout,
		WriteTimeout: DefaultWriteTimeout,
		IdleTimeout:  DefaultIdleTimeout,
	}
}

// SettingsFromConfig layers config.yaml's bridge section and then the
// environment over DefaultSettings. cfg may be nil.
func SettingsFromConfig(cfg *config.Config) Settings {
	s := DefaultSettings()
	if cfg != nil {
		bridge := cfg.File.Bridge
		if bridge.Enabled != nil {
			s.Enabled = *bridge.Enabled
		}
		s.Host = firstNonEmpty(bridge.Host, s.Host)
		if portInRange(bridge.Port) {
			s.Port = bridge.Port
		}
	}
	if enabled, ok := envBool(EnvBridgeEnabled); ok {
		s.Enabled = enabled
	}
	s.Host = firstNonEmpty(os.Getenv(EnvBridgeHost), s.Host)
	if port, ok := envPort(EnvBridgePort); ok {
		s.Port = port
	}
	return s
}

// Address returns the TCP bind address in host:port form.
func (s Settings) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// URL returns the HTTP base URL for the server.
func (s Settings) URL() string {
	return "http://" + s.Address()
}

func envBool(name string) (bool, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	return v, err == nil
}

func envPort(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	port, err := strconv.Atoi(raw)
	if err != nil || !portInRange(port) {
		return 0, false
	}
	return port, true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func portInRange(port int) bool {
	return port > 0 && port <= 65535
}
