package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingrea/sound-archive/internal/catalog"
	"github.com/kingrea/sound-archive/internal/eventbridge"
	"github.com/kingrea/sound-archive/internal/session"
)

// RemoteCommandMsg carries a validated bridge command into Update.
type RemoteCommandMsg struct {
	Command eventbridge.Command
}

// Sender is the part of *tea.Program the bridge needs.
type Sender interface {
	Send(tea.Msg)
}

// BridgeProcessor forwards bridge commands to the running program, so the
// HTTP handlers never touch UI state directly.
func BridgeProcessor(p Sender) eventbridge.CommandProcessor {
	return eventbridge.CommandProcessorFunc(func(cmd eventbridge.Command) error {
		p.Send(RemoteCommandMsg{Command: cmd})
		return nil
	})
}

func (a *App) applyRemote(cmd eventbridge.Command) tea.Cmd {
	a.logInfo("Remote %s · %s", cmd.Type, cmd.EventID)
	switch cmd.Type {
	case eventbridge.CommandNavigate:
		if v, err := session.ParseView(cmd.View); err == nil {
			a.navigate(v)
		}
	case eventbridge.CommandSelectCategory:
		if c, ok := catalog.ParseCategory(cmd.Category); ok {
			a.selectCategory(c)
		}
	case eventbridge.CommandSetSearch:
		if a.state.View() != session.ViewArchive {
			a.navigate(session.ViewArchive)
		}
		a.setSearch(cmd.Query)
	case eventbridge.CommandSelectDistrict:
		if d, ok := catalog.ParseDistrict(cmd.District); ok {
			a.selectDistrict(d)
		}
	case eventbridge.CommandClearDistrict:
		a.clearDistrict()
	case eventbridge.CommandToggle:
		return a.toggle(cmd.ID)
	default:
		a.logWarn("Ignored remote command %q", cmd.Type)
	}
	return nil
}
