package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/sound-archive/internal/catalog"
)

var (
	colorBrand  = lipgloss.Color("#FF6B6B")
	colorAccent = lipgloss.Color("#5B8DEF")
	colorBorder = lipgloss.Color("#444444")
	colorMuted  = lipgloss.Color("#888888")
	colorBody   = lipgloss.Color("#AAAAAA")
	colorPlay   = lipgloss.Color("#F5C542")

	brandStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorBrand)
	tabStyle       = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Underline(true).Padding(0, 1)
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	mutedStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	bodyStyle      = lipgloss.NewStyle().Foreground(colorBody)
	playingStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorPlay)
	statusStyle    = lipgloss.NewStyle().Foreground(colorPlay).MarginTop(1)
	panelStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(0, 1)
)

var waveLevels = []rune("▁▂▃▄▅▆▇█")

// waveform renders the eight frequency bands as bars while a specimen is
// playing and a flat baseline otherwise.
func waveform(freq []int, playing bool) string {
	var b strings.Builder
	for i := 0; i < catalog.FreqBands; i++ {
		if !playing || i >= len(freq) {
			b.WriteRune(waveLevels[0])
			continue
		}
		v := min(max(freq[i], 0), catalog.FreqMax)
		b.WriteRune(waveLevels[v*(len(waveLevels)-1)/catalog.FreqMax])
	}
	return b.String()
}

func displayTitle(rec catalog.Specimen) string {
	switch {
	case rec.Title != "" && rec.TitleEn != "":
		return fmt.Sprintf("%s · %s", rec.TitleEn, rec.Title)
	case rec.TitleEn != "":
		return rec.TitleEn
	}
	return rec.Title
}

func actionGlyph(playing bool) string {
	if playing {
		return "❚❚"
	}
	return "▶"
}

// renderCard draws a specimen as a bordered card. selected highlights the
// border when the card owns keyboard focus.
func renderCard(rec catalog.Specimen, playing, selected bool, width int) string {
	width = max(24, width)
	head := fmt.Sprintf("%s  %s", mutedStyle.Render(rec.ID), mutedStyle.Render(string(rec.Category)))
	title := titleStyle.Render(truncate(displayTitle(rec), width-4))
	meta := bodyStyle.Render(truncate(fmt.Sprintf("%s · %s · %s", rec.District, rec.Era, rec.TimeOfDay), width-4))
	wave := waveform(rec.Freq, playing)
	if playing {
		wave = playingStyle.Render(wave + "  " + actionGlyph(true))
	} else {
		wave = mutedStyle.Render(wave + "  " + actionGlyph(false) + " " + rec.Duration)
	}
	lines := []string{head, title, meta}
	if rec.Location != "" {
		lines = append(lines, mutedStyle.Render(truncate(rec.Location, width-4)))
	}
	lines = append(lines, wave)
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		Width(width - 2)
	if selected {
		style = style.BorderForeground(colorAccent)
	}
	if playing {
		style = style.BorderForeground(colorPlay)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func truncate(s string, width int) string {
	if width <= 1 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
