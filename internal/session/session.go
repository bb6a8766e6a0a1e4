// internal/session/session.go
//
// Session state is the single owned struct every view renders from. It is
// created with defaults when the program starts and discarded on exit.

package session

import (
	"fmt"
	"strings"

	"github.com/kingrea/sound-archive/internal/catalog"
)

// View selects which screen is visible.
type View int

const (
	ViewOverview View = iota
	ViewMap
	ViewArchive
)

var viewNames = map[View]string{
	ViewOverview: "overview",
	ViewMap:      "map",
	ViewArchive:  "archive",
}

// String returns the lowercase identifier used in snapshots and commands.
func (v View) String() string {
	if name, ok := viewNames[v]; ok {
		return name
	}
	return fmt.Sprintf("view(%d)", int(v))
}

// Label returns the navigation tab title.
func (v View) Label() string {
	switch v {
	case ViewOverview:
		return "Overview"
	case ViewMap:
		return "Sound Map"
	case ViewArchive:
		return "Full Archive"
	}
	return v.String()
}

// Views lists the screens in navigation order.
func Views() []View {
	return []View{ViewOverview, ViewMap, ViewArchive}
}

// ParseView accepts the identifiers returned by String, plus "home".
func ParseView(s string) (View, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "overview", "home":
		return ViewOverview, nil
	case "map":
		return ViewMap, nil
	case "archive":
		return ViewArchive, nil
	}
	return ViewOverview, fmt.Errorf("session: unknown view %q", s)
}

// State is the process-local view state.
type State struct {
	view     View
	search   string
	district catalog.District
}

// New returns the start-of-session state: overview, no search, no district.
func New() *State {
	return &State{view: ViewOverview}
}

// View returns the active screen.
func (s *State) View() View { return s.view }

// Search returns the active archive search term.
func (s *State) Search() string { return s.search }

// District returns the selected map district, if any.
func (s *State) District() (catalog.District, bool) {
	return s.district, s.district != ""
}

// Navigate switches screens. Leaving for anything but the archive drops
// the search term.
func (s *State) Navigate(v View) {
	s.view = v
	if v != ViewArchive {
		s.search = ""
	}
}

// SelectCategory opens the archive pre-filtered by the category id.
func (s *State) SelectCategory(c catalog.Category) {
	s.search = string(c)
	s.view = ViewArchive
}

// SetSearch replaces the archive search term.
func (s *State) SetSearch(term string) {
	s.search = term
}

// SelectDistrict sets the map filter. Selecting the current district again
// keeps it selected.
func (s *State) SelectDistrict(d catalog.District) {
	s.district = d
}

// ClearDistrict removes the map filter.
func (s *State) ClearDistrict() {
	s.district = ""
}

// Snapshot is a serializable copy of the session for external observers.
type Snapshot struct {
	View     string `json:"view"`
	Search   string `json:"search"`
	District string `json:"district,omitempty"`
	Playing  string `json:"playing,omitempty"`
	Results  int    `json:"results"`
}

// Snapshot captures the current state. playing and results are supplied by
// the caller, which owns the playback simulator and the record store.
func (s *State) Snapshot(playing string, results int) Snapshot {
	return Snapshot{
		View:     s.view.String(),
		Search:   s.search,
		District: string(s.district),
		Playing:  playing,
		Results:  results,
	}
}
