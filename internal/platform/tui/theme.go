package tui

import (
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// ThemeFromConfig layers configured color names over the default theme.
// Unknown names keep the default color.
func ThemeFromConfig(cfg config.ThemeConfig) tetris.Theme {
	t := tetris.DefaultTheme()
	set := func(dst *core.Color, name string) {
		if c, ok := core.ParseColor(name); ok {
			*dst = c
		}
	}

	set(&t.Settled, cfg.Settled)
	set(&t.Frame, cfg.Frame)
	set(&t.Accent, cfg.Accent)
	for name, color := range cfg.Pieces {
		if k, ok := tetris.ParseKind(name); ok {
			set(&t.Pieces[k], color)
		}
	}
	return t
}
