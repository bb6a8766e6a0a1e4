package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/sound-archive/internal/catalog"
	"github.com/kingrea/sound-archive/internal/session"
)

func (a *App) latest() []catalog.Specimen {
	return a.store.Latest(a.latestCount)
}

func (a *App) handleOverviewKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.ExploreMap):
		a.navigate(session.ViewMap)
		return nil
	case key.Matches(msg, a.keys.ViewAll):
		a.navigate(session.ViewArchive)
		return nil
	case key.Matches(msg, a.keys.Focus):
		if a.focus == focusTiles && len(a.latest()) > 0 {
			a.focus = focusCards
			a.cardIndex = min(a.cardIndex, len(a.latest())-1)
		} else {
			a.focus = focusTiles
		}
		return nil
	}
	if a.focus == focusCards {
		cards := a.latest()
		if len(cards) == 0 {
			a.focus = focusTiles
			return nil
		}
		switch {
		case key.Matches(msg, a.keys.Left), key.Matches(msg, a.keys.Up):
			a.cardIndex = max(0, a.cardIndex-1)
		case key.Matches(msg, a.keys.Right), key.Matches(msg, a.keys.Down):
			a.cardIndex = min(len(cards)-1, a.cardIndex+1)
		case key.Matches(msg, a.keys.Select):
			return a.toggle(cards[a.cardIndex].ID)
		}
		return nil
	}
	categories := catalog.Categories()
	switch {
	case key.Matches(msg, a.keys.Left):
		if a.tileIndex%tileColumns > 0 {
			a.tileIndex--
		}
	case key.Matches(msg, a.keys.Right):
		if a.tileIndex%tileColumns < tileColumns-1 && a.tileIndex+1 < len(categories) {
			a.tileIndex++
		}
	case key.Matches(msg, a.keys.Up):
		if a.tileIndex-tileColumns >= 0 {
			a.tileIndex -= tileColumns
		}
	case key.Matches(msg, a.keys.Down):
		if a.tileIndex+tileColumns < len(categories) {
			a.tileIndex += tileColumns
		}
	case key.Matches(msg, a.keys.Select):
		a.selectCategory(categories[a.tileIndex].ID)
	}
	return nil
}

func (a *App) renderOverview(width int) string {
	kicker := brandStyle.Render("NATIONAL DIGITAL ARCHIVE")
	title := lipgloss.NewStyle().Bold(true).Render("Beijing Sound Specimen Archive")
	quote := mutedStyle.Italic(true).Render(`"A comprehensive auditory collection preserving the vanishing and emerging soundscapes of the capital."`)
	cta := mutedStyle.Render(fmt.Sprintf("[e] EXPLORE MAP ›   %d specimens catalogued", a.store.Len()))
	hero := lipgloss.JoinVertical(lipgloss.Left, kicker, title, quote, cta)

	return lipgloss.JoinVertical(lipgloss.Left,
		hero,
		"",
		sectionHeading("Curated Collections", "Vol. 2024", width),
		a.renderTiles(width),
		"",
		sectionHeading("Latest Specimens", "[v] View All", width),
		a.renderLatest(width),
	)
}

func sectionHeading(title, aside string, width int) string {
	left := lipgloss.NewStyle().Bold(true).Render(title)
	right := mutedStyle.Render(aside)
	gap := max(1, width-lipgloss.Width(left)-lipgloss.Width(right))
	return left + strings.Repeat(" ", gap) + right
}

func (a *App) renderTiles(width int) string {
	tileWidth := max(16, width/tileColumns-1)
	categories := catalog.Categories()
	var rows []string
	for start := 0; start < len(categories); start += tileColumns {
		var tiles []string
		for i := start; i < min(start+tileColumns, len(categories)); i++ {
			info := categories[i]
			style := lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorBorder).
				Width(tileWidth-2).
				Align(lipgloss.Center)
			if a.focus == focusTiles && i == a.tileIndex {
				style = style.BorderForeground(colorBrand).Bold(true)
			}
			body := fmt.Sprintf("%s\n%s", info.Glyph, truncate(info.Label, tileWidth-4))
			tiles = append(tiles, style.Render(body))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (a *App) renderLatest(width int) string {
	cards := a.latest()
	if len(cards) == 0 {
		return mutedStyle.Render("The archive is empty.")
	}
	cardWidth := max(24, width/len(cards)-1)
	rendered := make([]string, 0, len(cards))
	for i, rec := range cards {
		selected := a.focus == focusCards && i == a.cardIndex
		rendered = append(rendered, renderCard(rec, a.player.IsPlaying(rec.ID), selected, cardWidth))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
