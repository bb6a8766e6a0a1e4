// internal/tui/app.go
//
// The archive browser is a single bubbletea model. Every key press, playback
// timer and remote bridge command arrives as a message, and Update is the
// only place that changes the session or the player:
//
//	input -> message -> Update -> session/player -> View -> screen

package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/sound-archive/internal/catalog"
	"github.com/kingrea/sound-archive/internal/districtmap"
	"github.com/kingrea/sound-archive/internal/logbook"
	"github.com/kingrea/sound-archive/internal/metrics"
	"github.com/kingrea/sound-archive/internal/playback"
	"github.com/kingrea/sound-archive/internal/session"
)

const (
	defaultWidth       = 100
	defaultLatestCount = 3
	mapCols            = 50
	mapRows            = 27
	tileColumns        = 4
	logPanelLines      = 8
)

// focusArea is the part of the active view that receives navigation keys.
type focusArea int

const (
	focusTiles   focusArea = iota // Overview category grid
	focusCards                    // Overview latest specimens
	focusMapGrid                  // Map crosshair
	focusMapList                  // Map sidebar specimen list
	focusTable                    // Archive table
	focusSearch                   // Archive search box
)

// Publisher receives a snapshot whenever the visible state changes.
type Publisher interface {
	Publish(session.Snapshot)
}

// playbackExpiredMsg fires when a playback ticket's auto-stop delay ends.
type playbackExpiredMsg struct {
	ticket playback.Ticket
}

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithLogbook records session activity and enables the log panel.
func WithLogbook(lb *logbook.Logbook) AppOption {
	return func(a *App) {
		a.logbook = lb
	}
}

// WithPublisher mirrors state snapshots to an observer such as the bridge hub.
func WithPublisher(p Publisher) AppOption {
	return func(a *App) {
		a.publisher = p
	}
}

// WithAutoStop overrides the playback auto-stop delay.
func WithAutoStop(d time.Duration) AppOption {
	return func(a *App) {
		if d > 0 {
			a.autoStop = d
		}
	}
}

// WithLatestCount sets how many records the Overview shows as latest.
func WithLatestCount(n int) AppOption {
	return func(a *App) {
		if n > 0 {
			a.latestCount = n
		}
	}
}

// WithLogPanel shows the logbook panel from the start.
func WithLogPanel(show bool) AppOption {
	return func(a *App) {
		a.showLog = show
	}
}

// App is the main application model.
type App struct {
	store     *catalog.Store
	state     *session.State
	player    *playback.Simulator
	logbook   *logbook.Logbook
	publisher Publisher

	autoStop    time.Duration
	latestCount int
	showLog     bool

	keys   keyMap
	help   help.Model
	search textinput.Model
	table  table.Model
	grid   *districtmap.Grid

	focus     focusArea
	tileIndex int
	cardIndex int
	listIndex int
	cursorCol int
	cursorRow int
	tableRows []catalog.Specimen
	statusMsg string
	lastSnap  session.Snapshot
	published bool
	width     int
	height    int
}

// NewApp builds the browser over a frozen store.
func NewApp(store *catalog.Store, opts ...AppOption) (*App, error) {
	if store == nil {
		return nil, errors.New("tui: store is required")
	}
	app := &App{
		store:       store,
		state:       session.New(),
		autoStop:    playback.DefaultAutoStop,
		latestCount: defaultLatestCount,
		keys:        defaultKeyMap(),
		help:        help.New(),
		grid:        districtmap.Rasterize(mapCols, mapRows),
		focus:       focusTiles,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}
	app.player = playback.New(
		playback.WithAutoStop(app.autoStop),
		playback.WithKnownIDs(store.Has),
	)
	app.search = newSearchInput()
	app.table = newArchiveTable()
	if col, row, ok := app.grid.Anchor(catalog.DistrictDongcheng); ok {
		app.cursorCol, app.cursorRow = col, row
	} else {
		app.cursorCol, app.cursorRow = app.grid.Cols/2, app.grid.Rows/2
	}
	app.refreshTable()
	app.logInfo("Session opened · %d specimens in the archive", store.Len())
	app.publish()
	return app, nil
}

func (a *App) logInfo(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Info(format, args...)
}

func (a *App) logWarn(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Warn(format, args...)
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	a.publish()
	return a, cmd
}

func (a *App) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		a.resizeTable()
		return nil

	case playbackExpiredMsg:
		if a.player.Expire(msg.ticket) {
			metrics.PlaybackAutoStopsTotal.WithLabelValues("cleared").Inc()
			a.logInfo("Playback finished · %s", msg.ticket.ID)
			a.refreshTable()
			return nil
		}
		metrics.PlaybackAutoStopsTotal.WithLabelValues("stale").Inc()
		return nil

	case RemoteCommandMsg:
		return a.applyRemote(msg.Command)

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, a.keys.ForceQuit) {
		return tea.Quit
	}
	if a.focus == focusSearch {
		return a.handleSearchKey(msg)
	}
	switch {
	case key.Matches(msg, a.keys.Quit):
		return tea.Quit
	case key.Matches(msg, a.keys.Overview):
		a.navigate(session.ViewOverview)
		return nil
	case key.Matches(msg, a.keys.Map):
		a.navigate(session.ViewMap)
		return nil
	case key.Matches(msg, a.keys.Archive):
		a.navigate(session.ViewArchive)
		return nil
	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
		return nil
	case key.Matches(msg, a.keys.Log):
		a.showLog = !a.showLog
		return nil
	}
	switch a.state.View() {
	case session.ViewOverview:
		return a.handleOverviewKey(msg)
	case session.ViewMap:
		return a.handleMapKey(msg)
	case session.ViewArchive:
		return a.handleArchiveKey(msg)
	}
	return nil
}

// navigate switches views and resets per-view focus. Search text follows the
// session, which clears it for every view but the Archive.
func (a *App) navigate(v session.View) {
	prev := a.state.View()
	a.state.Navigate(v)
	a.search.SetValue(a.state.Search())
	a.search.Blur()
	a.statusMsg = ""
	switch v {
	case session.ViewOverview:
		a.focus = focusTiles
	case session.ViewMap:
		a.focus = focusMapGrid
		a.listIndex = 0
	case session.ViewArchive:
		a.focus = focusTable
	}
	a.refreshTable()
	if prev != v {
		a.logInfo("Viewing %s", v.Label())
	}
}

func (a *App) selectCategory(c catalog.Category) {
	a.state.SelectCategory(c)
	a.search.SetValue(a.state.Search())
	a.search.Blur()
	a.focus = focusTable
	a.statusMsg = ""
	a.refreshTable()
	label := string(c)
	if info, ok := catalog.LookupCategory(c); ok {
		label = info.Label
	}
	a.logInfo("Opened collection %s", label)
}

func (a *App) setSearch(term string) {
	a.state.SetSearch(term)
	if a.search.Value() != term {
		a.search.SetValue(term)
	}
	a.refreshTable()
}

func (a *App) selectDistrict(d catalog.District) {
	if current, ok := a.state.District(); ok && current == d {
		return
	}
	a.state.SelectDistrict(d)
	a.listIndex = 0
	if col, row, ok := a.grid.Anchor(d); ok {
		a.cursorCol, a.cursorRow = col, row
	}
	a.logInfo("Selected district %s · %d specimens", d, len(a.mapResults()))
}

func (a *App) clearDistrict() {
	if _, ok := a.state.District(); !ok {
		return
	}
	a.state.ClearDistrict()
	a.listIndex = 0
	a.logInfo("Cleared district selection")
}

// toggle starts or stops playback of id. Starting schedules the auto-stop;
// the ticket makes a late tick harmless if playback changed in between.
func (a *App) toggle(id string) tea.Cmd {
	ticket, err := a.player.Toggle(id)
	if err != nil {
		a.statusMsg = fmt.Sprintf("Cannot play %s", id)
		a.logWarn("Playback rejected · %v", err)
		return nil
	}
	a.refreshTable()
	if !ticket.Valid() {
		a.statusMsg = ""
		a.logInfo("Playback stopped · %s", id)
		return nil
	}
	title := id
	if rec, ok := a.store.Get(id); ok {
		title = displayTitle(rec)
	}
	a.statusMsg = fmt.Sprintf("Now playing %s", title)
	a.logInfo("Playback started · %s", id)
	metrics.PlaybackStartsTotal.Inc()
	return tea.Tick(a.player.AutoStop(), func(time.Time) tea.Msg {
		return playbackExpiredMsg{ticket: ticket}
	})
}

func (a *App) playingID() string {
	id, _ := a.player.Playing()
	return id
}

// results returns the records the active view is listing.
func (a *App) results() []catalog.Specimen {
	switch a.state.View() {
	case session.ViewMap:
		return a.mapResults()
	case session.ViewArchive:
		return a.archiveResults()
	}
	return a.store.All()
}

func (a *App) publish() {
	if a.publisher == nil {
		return
	}
	snap := a.state.Snapshot(a.playingID(), len(a.results()))
	if a.published && snap == a.lastSnap {
		return
	}
	a.lastSnap = snap
	a.published = true
	a.publisher.Publish(snap)
}

// View renders the whole screen.
func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = defaultWidth
	}
	var content string
	switch a.state.View() {
	case session.ViewOverview:
		content = a.renderOverview(width - 4)
	case session.ViewMap:
		content = a.renderMap(width - 4)
	case session.ViewArchive:
		content = a.renderArchive(width - 4)
	}
	sections := []string{a.renderHeader(width), content}
	if a.state.View() != session.ViewMap {
		sections = append(sections, a.renderFooterNote(width-4))
	}
	if a.statusMsg != "" {
		sections = append(sections, statusStyle.Render(a.statusMsg))
	}
	if a.showLog {
		if panel := a.renderLogPanel(); panel != "" {
			sections = append(sections, panel)
		}
	}
	sections = append(sections, a.help.View(a.keys))
	return lipgloss.NewStyle().Padding(0, 1).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (a *App) renderHeader(width int) string {
	brand := brandStyle.Render("◉ SOUND ARCHIVE")
	var tabs []string
	for i, v := range session.Views() {
		label := fmt.Sprintf("%d %s", i+1, v.Label())
		if v == a.state.View() {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	menu := strings.Join(tabs, " ")
	indicator := ""
	if id := a.playingID(); id != "" {
		indicator = playingStyle.Render("♪ " + id)
	}
	gap := max(1, width-lipgloss.Width(brand)-lipgloss.Width(menu)-lipgloss.Width(indicator)-4)
	return lipgloss.NewStyle().MarginBottom(1).Render(brand + strings.Repeat(" ", gap) + menu + "  " + indicator)
}

func (a *App) renderFooterNote(width int) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(colorBody).Render("Beijing Sound Specimen Archive")
	note := mutedStyle.Render("A digital preservation project dedicated to capturing the auditory heritage of Beijing. " +
		"From the bells of the Drum Tower to the hum of the Ring Roads.")
	stamp := mutedStyle.Render("EST. 2024 · BJ-ARCHIVE-V1.0")
	return lipgloss.NewStyle().Width(max(20, width)).MarginTop(1).Render(lipgloss.JoinVertical(lipgloss.Left, title, note, stamp))
}

func (a *App) renderLogPanel() string {
	if a.logbook == nil {
		return ""
	}
	lines, total := a.logbook.Tail(logPanelLines)
	if len(lines) == 0 {
		return ""
	}
	fileName := filepath.Base(a.logbook.Path())
	if fileName == "." || fileName == "" {
		fileName = "log"
	}
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorAccent).
		Render(fmt.Sprintf("LOG · %s · %d entries", fileName, total))
	body := lipgloss.NewStyle().
		Foreground(colorBody).
		Render(strings.Join(lines, "\n"))
	return panelStyle.Render(fmt.Sprintf("%s\n%s", head, body))
}
