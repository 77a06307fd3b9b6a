package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// KeyMap defines the key bindings for a game session.
// Game bindings come from configuration; Screenshot is fixed to ctrl+s.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Down       key.Binding
	Rotate     key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Runs       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// NewKeyMap builds bindings from the configured key lists.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		Left:       binding(cfg.Left, "left"),
		Right:      binding(cfg.Right, "right"),
		Down:       binding(cfg.Down, "drop"),
		Rotate:     binding(cfg.Rotate, "rotate"),
		Pause:      binding(cfg.Pause, "pause"),
		Restart:    binding(cfg.Restart, "restart"),
		Runs:       binding(cfg.Runs, "runs"),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
		Quit:       binding(cfg.Quit, "quit"),
	}
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

// firstKey returns the primary key of b, or "" when b has none.
func firstKey(b key.Binding) string {
	if ks := b.Keys(); len(ks) > 0 {
		return ks[0]
	}
	return ""
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Rotate, k.Down, k.Pause, k.Restart, k.Runs, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Rotate, k.Down},
		{k.Pause, k.Restart, k.Runs, k.Screenshot, k.Quit},
	}
}

// Event translates a key message to a game event.
// Returns false for keys that are not game input.
func (k KeyMap) Event(msg tea.KeyMsg) (tetris.Event, bool) {
	switch {
	case key.Matches(msg, k.Left):
		return tetris.EventLeft, true
	case key.Matches(msg, k.Right):
		return tetris.EventRight, true
	case key.Matches(msg, k.Down):
		return tetris.EventDown, true
	case key.Matches(msg, k.Rotate):
		return tetris.EventRotate, true
	case key.Matches(msg, k.Pause):
		return tetris.EventPause, true
	case key.Matches(msg, k.Restart):
		return tetris.EventRestart, true
	}
	return 0, false
}
