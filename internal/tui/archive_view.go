package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/sound-archive/internal/catalog"
)

const (
	noMatchesText    = "No specimens found matching your criteria."
	minTitleWidth    = 24
	defaultTableRows = 12
)

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Search by title, category or district..."
	ti.Prompt = "⌕ "
	ti.CharLimit = 64
	ti.Width = 48
	return ti
}

func archiveColumns(titleWidth int) []table.Column {
	return []table.Column{
		{Title: "ID", Width: 8},
		{Title: "Title", Width: max(minTitleWidth, titleWidth)},
		{Title: "Category", Width: 11},
		{Title: "District", Width: 12},
		{Title: "Era", Width: 12},
		{Title: "Action", Width: 6},
	}
}

func newArchiveTable() table.Model {
	t := table.New(
		table.WithColumns(archiveColumns(40)),
		table.WithFocused(true),
		table.WithHeight(defaultTableRows),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorBorder).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(colorAccent).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (a *App) archiveResults() []catalog.Specimen {
	return catalog.ArchiveFilter(a.store.All(), a.state.Search())
}

// refreshTable rebuilds the archive rows from the current search and
// playback state, keeping the cursor inside the new row set.
func (a *App) refreshTable() {
	a.tableRows = a.archiveResults()
	rows := make([]table.Row, 0, len(a.tableRows))
	for _, rec := range a.tableRows {
		rows = append(rows, table.Row{
			rec.ID,
			displayTitle(rec),
			string(rec.Category),
			string(rec.District),
			string(rec.Era),
			actionGlyph(a.player.IsPlaying(rec.ID)),
		})
	}
	a.table.SetRows(rows)
	if n := len(rows); n > 0 {
		if c := a.table.Cursor(); c < 0 || c >= n {
			a.table.SetCursor(min(max(c, 0), n-1))
		}
	}
}

func (a *App) resizeTable() {
	width := a.width
	if width <= 0 {
		width = defaultWidth
	}
	fixed := 8 + 11 + 12 + 12 + 6 + 12
	a.table.SetColumns(archiveColumns(width - fixed - 6))
	if a.height > 0 {
		a.table.SetHeight(max(5, a.height-22))
	}
	a.search.Width = max(20, width/2)
}

func (a *App) selectedSpecimen() (catalog.Specimen, bool) {
	c := a.table.Cursor()
	if c < 0 || c >= len(a.tableRows) {
		return catalog.Specimen{}, false
	}
	return a.tableRows[c], true
}

func (a *App) handleArchiveKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Search), key.Matches(msg, a.keys.Focus):
		a.focus = focusSearch
		return a.search.Focus()
	case key.Matches(msg, a.keys.Select):
		if rec, ok := a.selectedSpecimen(); ok {
			return a.toggle(rec.ID)
		}
		return nil
	}
	a.focus = focusTable
	var cmd tea.Cmd
	a.table, cmd = a.table.Update(msg)
	return cmd
}

func (a *App) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, a.keys.Blur) || key.Matches(msg, a.keys.Focus) {
		a.search.Blur()
		a.focus = focusTable
		return nil
	}
	var cmd tea.Cmd
	a.search, cmd = a.search.Update(msg)
	if a.search.Value() != a.state.Search() {
		a.setSearch(a.search.Value())
	}
	return cmd
}

func (a *App) renderArchive(width int) string {
	heading := sectionHeading("Archive", fmt.Sprintf("%d of %d specimens", len(a.tableRows), a.store.Len()), width)
	searchStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)
	if a.focus == focusSearch {
		searchStyle = searchStyle.BorderForeground(colorAccent)
	}
	search := searchStyle.Render(a.search.View())
	if len(a.tableRows) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, heading, search, "", mutedStyle.Render(noMatchesText))
	}
	body := a.table.View()
	if rec, ok := a.selectedSpecimen(); ok {
		playing := a.player.IsPlaying(rec.ID)
		wave := mutedStyle.Render(waveform(rec.Freq, false))
		if playing {
			wave = playingStyle.Render(waveform(rec.Freq, true))
		}
		detail := lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(displayTitle(rec)),
			bodyStyle.Render(fmt.Sprintf("%s · %s · %s · %s", rec.Location, rec.Duration, rec.Era, rec.TimeOfDay)),
			mutedStyle.Width(max(20, width)).Render(rec.Description),
			wave,
		)
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", detail)
	}
	return lipgloss.JoinVertical(lipgloss.Left, heading, search, body)
}
