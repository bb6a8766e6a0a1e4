// Package playback simulates the play/pause affordance of the archive. No
// audio is produced; a specimen is "playing" until it is toggled off, another
// specimen is toggled on, or its auto-stop delay elapses.
package playback

import (
	"errors"
	"fmt"
	"time"
)

// DefaultAutoStop is how long a specimen stays active without interaction.
const DefaultAutoStop = 5 * time.Second

// ErrUnknownSpecimen is returned when a validator is installed and rejects
// the toggled id.
var ErrUnknownSpecimen = errors.New("playback: unknown specimen")

// Ticket identifies one scheduled auto-stop. It only clears the simulator
// if the same activation is still current when it fires.
type Ticket struct {
	ID         string
	Generation uint64
}

// Valid reports whether the ticket refers to a scheduled auto-stop.
func (t Ticket) Valid() bool {
	return t.ID != "" && t.Generation > 0
}

// Option customizes a Simulator.
type Option func(*Simulator)

// WithAutoStop overrides the auto-stop delay. Non-positive values are ignored.
func WithAutoStop(d time.Duration) Option {
	return func(s *Simulator) {
		if d > 0 {
			s.autoStop = d
		}
	}
}

// WithKnownIDs installs an existence check used by Toggle.
func WithKnownIDs(known func(id string) bool) Option {
	return func(s *Simulator) {
		s.known = known
	}
}

// Simulator tracks the single active specimen. It is owned by one event
// loop and is not safe for concurrent use.
type Simulator struct {
	playing    string
	generation uint64
	autoStop   time.Duration
	known      func(string) bool
}

// New creates an idle simulator.
func New(opts ...Option) *Simulator {
	s := &Simulator{autoStop: DefaultAutoStop}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// AutoStop returns the delay after which an activation should expire.
func (s *Simulator) AutoStop() time.Duration {
	return s.autoStop
}

// Toggle stops id if it is playing, otherwise makes it the active specimen
// and returns the ticket its auto-stop must present. Stopping returns the
// zero Ticket.
func (s *Simulator) Toggle(id string) (Ticket, error) {
	if s.known != nil && !s.known(id) {
		return Ticket{}, fmt.Errorf("%w: %s", ErrUnknownSpecimen, id)
	}
	if s.playing != "" && s.playing == id {
		s.playing = ""
		return Ticket{}, nil
	}
	s.generation++
	s.playing = id
	return Ticket{ID: id, Generation: s.generation}, nil
}

// Expire clears the active specimen if t still describes it. Stale tickets
// are dropped silently. It reports whether anything changed.
func (s *Simulator) Expire(t Ticket) bool {
	if !t.Valid() || s.playing == "" {
		return false
	}
	if s.playing != t.ID || s.generation != t.Generation {
		return false
	}
	s.playing = ""
	return true
}

// Stop clears the active specimen unconditionally.
func (s *Simulator) Stop() {
	s.playing = ""
}

// Playing returns the active specimen id.
func (s *Simulator) Playing() (string, bool) {
	return s.playing, s.playing != ""
}

// IsPlaying reports whether id is the active specimen.
func (s *Simulator) IsPlaying(id string) bool {
	return id != "" && s.playing == id
}
