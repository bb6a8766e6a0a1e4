package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/kingrea/sound-archive/internal/catalog"
	"github.com/kingrea/sound-archive/internal/eventbridge"
	"github.com/kingrea/sound-archive/internal/logbook"
	"github.com/kingrea/sound-archive/internal/metrics"
	"github.com/kingrea/sound-archive/internal/session"
)

func TestCategoryTileOpensArchiveAndMenuReturnsHome(t *testing.T) {
	app := newTestApp(t)
	app = press(t, app, tea.KeyMsg{Type: tea.KeyDown})
	app = press(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	if app.state.View() != session.ViewArchive || app.state.Search() != "Nature" {
		t.Fatalf("expected {archive, Nature}, got {%s, %q}", app.state.View(), app.state.Search())
	}
	if got := ids(app.tableRows); strings.Join(got, ",") != "NA-001,NA-002,NA-003" {
		t.Fatalf("unexpected archive rows %v", got)
	}
	if app.search.Value() != "Nature" {
		t.Fatalf("search box should show the category, got %q", app.search.Value())
	}
	app = press(t, app, keyRunes("1"))
	if app.state.View() != session.ViewOverview || app.state.Search() != "" {
		t.Fatalf("expected {overview, \"\"}, got {%s, %q}", app.state.View(), app.state.Search())
	}
}

func TestExploreAndViewAllShortcuts(t *testing.T) {
	app := newTestApp(t)
	app = press(t, app, keyRunes("e"))
	if app.state.View() != session.ViewMap {
		t.Fatalf("expected map view, got %s", app.state.View())
	}
	app = press(t, app, keyRunes("1"))
	app = press(t, app, keyRunes("v"))
	if app.state.View() != session.ViewArchive || app.state.Search() != "" {
		t.Fatalf("view all should open an unfiltered archive, got {%s, %q}", app.state.View(), app.state.Search())
	}
	if len(app.tableRows) != app.store.Len() {
		t.Fatalf("expected %d rows, got %d", app.store.Len(), len(app.tableRows))
	}
}

func TestArchiveSearchTypingFiltersLive(t *testing.T) {
	app := newTestApp(t)
	app = press(t, app, keyRunes("3"))
	app = press(t, app, keyRunes("/"))
	if app.focus != focusSearch {
		t.Fatalf("slash should focus the search box")
	}
	app = press(t, app, keyRunes("bell"))
	if app.state.Search() != "bell" {
		t.Fatalf("expected search to follow typing, got %q", app.state.Search())
	}
	if got := ids(app.tableRows); strings.Join(got, ",") != "RT-003,CP-001" {
		t.Fatalf("unexpected rows for bell: %v", got)
	}
	app = press(t, app, keyRunes("q"))
	if app.state.Search() != "bellq" {
		t.Fatalf("q must type while searching, got %q", app.state.Search())
	}
	if !strings.Contains(app.View(), noMatchesText) {
		t.Fatalf("expected empty-state text in archive view")
	}
	app = press(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	if app.focus != focusTable {
		t.Fatalf("esc should return focus to the table")
	}
	app = press(t, app, keyRunes("2"))
	if app.state.Search() != "" || app.search.Value() != "" {
		t.Fatalf("leaving the archive clears the search")
	}
}

func TestPlaybackAutoStopIgnoresStaleTickets(t *testing.T) {
	staleBefore := testutil.ToFloat64(metrics.PlaybackAutoStopsTotal.WithLabelValues("stale"))
	app := newTestApp(t, WithAutoStop(time.Millisecond))
	first := app.toggle("TR-001")
	if first == nil {
		t.Fatalf("starting playback should schedule an auto-stop")
	}
	second := app.toggle("TR-002")
	if id := app.playingID(); id != "TR-002" {
		t.Fatalf("expected TR-002 playing, got %q", id)
	}
	app = runCommands(t, app, first)
	if id := app.playingID(); id != "TR-002" {
		t.Fatalf("stale auto-stop cleared the new specimen, playing=%q", id)
	}
	if got := testutil.ToFloat64(metrics.PlaybackAutoStopsTotal.WithLabelValues("stale")); got != staleBefore+1 {
		t.Fatalf("stale auto-stop counter = %v, want %v", got, staleBefore+1)
	}
	app = runCommands(t, app, second)
	if id := app.playingID(); id != "" {
		t.Fatalf("expected playback to stop, still playing %q", id)
	}
}

func TestToggleSameSpecimenStopsImmediately(t *testing.T) {
	app := newTestApp(t, WithAutoStop(time.Millisecond))
	start := app.toggle("DL-001")
	if stop := app.toggle("DL-001"); stop != nil {
		t.Fatalf("stopping playback must not schedule anything")
	}
	if app.playingID() != "" {
		t.Fatalf("second toggle should stop playback")
	}
	again := app.toggle("DL-001")
	app = runCommands(t, app, start)
	if app.playingID() != "DL-001" {
		t.Fatalf("first ticket must not stop the replay")
	}
	app = runCommands(t, app, again)
	if app.playingID() != "" {
		t.Fatalf("replay ticket should stop playback")
	}
}

func TestToggleUnknownSpecimenIsRejected(t *testing.T) {
	app := newTestApp(t)
	if cmd := app.toggle("ZZ-999"); cmd != nil {
		t.Fatalf("unknown specimen should not schedule playback")
	}
	if app.playingID() != "" || app.statusMsg == "" {
		t.Fatalf("expected rejection status and nothing playing")
	}
}

func TestArchiveEnterTogglesSelectedRow(t *testing.T) {
	app := newTestApp(t)
	app = press(t, app, keyRunes("3"))
	app = press(t, app, tea.KeyMsg{Type: tea.KeyDown})
	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(*App)
	if cmd == nil {
		t.Fatalf("expected auto-stop command")
	}
	if app.playingID() != app.tableRows[1].ID {
		t.Fatalf("expected second row playing, got %q", app.playingID())
	}
	if !strings.Contains(app.View(), "❚❚") {
		t.Fatalf("playing row should show the pause glyph")
	}
}

func TestMapSelectionAndOutskirts(t *testing.T) {
	app := newTestApp(t)
	app = press(t, app, keyRunes("2"))
	if !strings.Contains(app.View(), "Specimens Found: 25") {
		t.Fatalf("unfiltered map should list every specimen")
	}
	app = press(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	if d, ok := app.state.District(); !ok || d != catalog.DistrictDongcheng {
		t.Fatalf("crosshair starts over Dongcheng, selected %q", d)
	}
	app = press(t, app, keyRunes("o"))
	if got := ids(app.mapResults()); strings.Join(got, ",") != "NA-003,IN-002,IN-003" {
		t.Fatalf("unexpected outskirts records %v", got)
	}
	view := app.View()
	if !strings.Contains(view, "Suburban & New Areas") || !strings.Contains(view, "ACTIVE ZONE") {
		t.Fatalf("outskirts caption missing from map sidebar")
	}
	app = press(t, app, keyRunes("o"))
	if d, _ := app.state.District(); d != catalog.DistrictOutskirts {
		t.Fatalf("reselecting keeps the district, got %q", d)
	}
	app = press(t, app, keyRunes("x"))
	if _, ok := app.state.District(); ok {
		t.Fatalf("x should clear the district")
	}
	if !strings.Contains(app.View(), "Select Region") {
		t.Fatalf("cleared map should prompt for a region")
	}
}

func TestMapListTogglesPlayback(t *testing.T) {
	app := newTestApp(t)
	app = press(t, app, keyRunes("2"))
	app = press(t, app, keyRunes("o"))
	app = press(t, app, tea.KeyMsg{Type: tea.KeyTab})
	if app.focus != focusMapList {
		t.Fatalf("tab should move focus to the specimen list")
	}
	app = press(t, app, tea.KeyMsg{Type: tea.KeyDown})
	app = press(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	if app.playingID() != "IN-002" {
		t.Fatalf("expected IN-002 playing, got %q", app.playingID())
	}
}

func TestRemoteCommandsDriveStateAndPublish(t *testing.T) {
	pub := &recordingPublisher{}
	app := newTestApp(t, WithPublisher(pub))
	if len(pub.snaps) != 1 || pub.snaps[0].View != "overview" || pub.snaps[0].Results != 25 {
		t.Fatalf("expected initial overview snapshot, got %+v", pub.snaps)
	}
	app = send(t, app, eventbridge.Command{Type: eventbridge.CommandNavigate, View: "map"})
	app = send(t, app, eventbridge.Command{Type: eventbridge.CommandSelectDistrict, District: "Pinggu"})
	if !strings.Contains(app.View(), emptyZoneText) {
		t.Fatalf("expected empty zone text for Pinggu")
	}
	last := pub.snaps[len(pub.snaps)-1]
	if last.View != "map" || last.District != "Pinggu" || last.Results != 0 {
		t.Fatalf("unexpected snapshot %+v", last)
	}
	app = send(t, app, eventbridge.Command{Type: eventbridge.CommandSetSearch, Query: "opera"})
	last = pub.snaps[len(pub.snaps)-1]
	if last.View != "archive" || last.Search != "opera" {
		t.Fatalf("set_search should land on the archive, got %+v", last)
	}
	count := len(pub.snaps)
	app = send(t, app, eventbridge.Command{Type: eventbridge.CommandSetSearch, Query: "opera"})
	if len(pub.snaps) != count {
		t.Fatalf("unchanged state should not be republished")
	}
	_ = send(t, app, eventbridge.Command{Type: eventbridge.CommandToggle, ID: "CU-001"})
	if pub.snaps[len(pub.snaps)-1].Playing != "CU-001" {
		t.Fatalf("toggle should publish the playing id")
	}
}

func TestLogPanelShowsSessionJournal(t *testing.T) {
	lb, err := logbook.New(filepath.Join(t.TempDir(), "logs", "journey.log"))
	if err != nil {
		t.Fatalf("logbook: %v", err)
	}
	app := newTestApp(t, WithLogbook(lb))
	app = press(t, app, keyRunes("2"))
	if strings.Contains(app.View(), "LOG ·") {
		t.Fatalf("log panel should start hidden")
	}
	app = press(t, app, keyRunes("L"))
	view := app.View()
	if !strings.Contains(view, "LOG · journey.log") || !strings.Contains(view, "Viewing Sound Map") {
		t.Fatalf("log panel missing journal lines:\n%s", view)
	}
}

func TestQuitKeys(t *testing.T) {
	app := newTestApp(t)
	if _, cmd := app.Update(keyRunes("q")); cmd == nil {
		t.Fatalf("q should quit outside the search box")
	} else if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q should produce tea.QuitMsg")
	}
	if _, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC}); cmd == nil {
		t.Fatalf("ctrl+c should quit")
	}
}

func TestOverviewRendersCollectionsAndLatest(t *testing.T) {
	app := newTestApp(t)
	view := app.View()
	for _, want := range []string{"Curated Collections", "Latest Specimens", "Commute & Transit", "Dialect & Vocal", "TR-001", "TR-003"} {
		if !strings.Contains(view, want) {
			t.Fatalf("overview missing %q", want)
		}
	}
	if strings.Contains(view, "TR-004") {
		t.Fatalf("only the first three specimens are latest")
	}
}

func TestWaveform(t *testing.T) {
	freq := []int{0, 15, 30, 45, 60, 75, 90, 100}
	if got := waveform(freq, false); got != "▁▁▁▁▁▁▁▁" {
		t.Fatalf("idle waveform = %q", got)
	}
	if got := waveform(freq, true); got != "▁▂▃▄▅▆▇█" {
		t.Fatalf("playing waveform = %q", got)
	}
}

type recordingPublisher struct {
	snaps []session.Snapshot
}

func (p *recordingPublisher) Publish(s session.Snapshot) {
	p.snaps = append(p.snaps, s)
}

func newTestApp(t *testing.T, opts ...AppOption) *App {
	t.Helper()
	app, err := NewApp(catalog.MustBuiltinStore(), opts...)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	model, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	return model.(*App)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press delivers a key and drops any resulting command; playback timers are
// exercised explicitly through runCommands.
func press(t *testing.T, app *App, msg tea.KeyMsg) *App {
	t.Helper()
	model, _ := app.Update(msg)
	next, ok := model.(*App)
	if !ok {
		t.Fatalf("unexpected model type: %T", model)
	}
	return next
}

func send(t *testing.T, app *App, cmd eventbridge.Command) *App {
	t.Helper()
	cmd.Normalize()
	model, _ := app.Update(RemoteCommandMsg{Command: cmd})
	return model.(*App)
}

func runCommands(t *testing.T, model tea.Model, cmd tea.Cmd) *App {
	t.Helper()
	app, ok := model.(*App)
	if !ok {
		t.Fatalf("unexpected model type: %T", model)
	}
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			break
		}
		nextModel, nextCmd := app.Update(msg)
		var ok bool
		app, ok = nextModel.(*App)
		if !ok {
			t.Fatalf("unexpected model type: %T", nextModel)
		}
		cmd = nextCmd
	}
	return app
}

func ids(recs []catalog.Specimen) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.ID)
	}
	return out
}
