package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists every binding the archive responds to. It satisfies
// help.KeyMap so the footer can render short and full help.
type keyMap struct {
	Overview   key.Binding
	Map        key.Binding
	Archive    key.Binding
	ExploreMap key.Binding
	ViewAll    key.Binding
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Select     key.Binding
	Focus      key.Binding
	Outskirts  key.Binding
	Clear      key.Binding
	Search     key.Binding
	Blur       key.Binding
	Help       key.Binding
	Log        key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Overview:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "overview")),
		Map:        key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "map")),
		Archive:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "archive")),
		ExploreMap: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "explore map")),
		ViewAll:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view all")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Select:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select / play")),
		Focus:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch focus")),
		Outskirts:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "outskirts")),
		Clear:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear district")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Blur:       key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter/esc", "done typing")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Log:        key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "log")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Overview, k.Map, k.Archive, k.Select, k.Focus, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Overview, k.Map, k.Archive, k.ExploreMap, k.ViewAll},
		{k.Up, k.Down, k.Left, k.Right, k.Select, k.Focus},
		{k.Outskirts, k.Clear, k.Search, k.Blur},
		{k.Help, k.Log, k.Quit},
	}
}
