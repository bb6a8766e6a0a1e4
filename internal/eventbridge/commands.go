package eventbridge

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kingrea/sound-archive/internal/catalog"
	"github.com/kingrea/sound-archive/internal/session"
)

// ProtocolVersion identifies the bridge contract version exposed via /health.
const ProtocolVersion = "1.0.0"

// CommandType names a remote navigation action.
type CommandType string

const (
	CommandNavigate       CommandType = "navigate"
	CommandSelectCategory CommandType = "select_category"
	CommandSetSearch      CommandType = "set_search"
	CommandSelectDistrict CommandType = "select_district"
	CommandClearDistrict  CommandType = "clear_district"
	CommandToggle         CommandType = "toggle"
)

// Command is a single remote request. Which fields matter depends on Type.
type Command struct {
	EventID    string      `json:"event_id"`
	Type       CommandType `json:"type"`
	View       string      `json:"view,omitempty"`
	Category   string      `json:"category,omitempty"`
	District   string      `json:"district,omitempty"`
	ID         string      `json:"id,omitempty"`
	Query      string      `json:"query,omitempty"`
	ServerTime time.Time   `json:"server_time"`
}

// Normalize trims identifiers, canonicalizes enum casing and assigns an
// event id when the client did not send one. Query is left untouched; the
// archive search applies text as typed.
func (c *Command) Normalize() {
	if c == nil {
		return
	}
	c.EventID = strings.TrimSpace(c.EventID)
	if c.EventID == "" {
		c.EventID = uuid.NewString()
	}
	c.Type = CommandType(strings.ToLower(strings.TrimSpace(string(c.Type))))
	c.View = strings.TrimSpace(c.View)
	c.ID = strings.TrimSpace(c.ID)
	if cat, ok := catalog.ParseCategory(c.Category); ok {
		c.Category = string(cat)
	} else {
		c.Category = strings.TrimSpace(c.Category)
	}
	if d, ok := catalog.ParseDistrict(c.District); ok {
		c.District = string(d)
	} else {
		c.District = strings.TrimSpace(c.District)
	}
}

// StampServerTime overwrites ServerTime with the supplied clock reading (UTC).
func (c *Command) StampServerTime(now time.Time) {
	if c == nil {
		return
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}
	c.ServerTime = now.UTC()
}

// Validate checks that the fields required by Type are present and legal.
func (c Command) Validate() error {
	switch c.Type {
	case "":
		return errors.New("type is required")
	case CommandNavigate:
		if _, err := session.ParseView(c.View); err != nil {
			return fmt.Errorf("navigate: unknown view %q", c.View)
		}
	case CommandSelectCategory:
		if !catalog.Category(c.Category).Valid() {
			return fmt.Errorf("select_category: unknown category %q", c.Category)
		}
	case CommandSetSearch:
	case CommandSelectDistrict:
		if !catalog.District(c.District).Valid() {
			return fmt.Errorf("select_district: unknown district %q", c.District)
		}
	case CommandClearDistrict:
	case CommandToggle:
		if c.ID == "" {
			return errors.New("toggle: id is required")
		}
	default:
		return fmt.Errorf("unsupported type %q", c.Type)
	}
	return nil
}

// CommandProcessor consumes validated commands.
type CommandProcessor interface {
	HandleCommand(Command) error
}

// CommandProcessorFunc adapts a function into a CommandProcessor.
type CommandProcessorFunc func(Command) error

// HandleCommand executes f(c).
func (f CommandProcessorFunc) HandleCommand(c Command) error {
	if f == nil {
		return nil
	}
	return f(c)
}

// Logger records bridge status information. It matches logging.Logger's signature.
type Logger interface {
	Printf(format string, args ...any)
}

type healthResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	Streams       int    `json:"streams"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

type commandResponse struct {
	Status     string    `json:"status"`
	EventID    string    `json:"event_id"`
	ServerTime time.Time `json:"server_time"`
}
