package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

//go:embed schema/tetris.schema.json
var tetrisSchemaJSON string

// DefaultTetrisConfig returns the hardcoded default configuration.
// It matches defaults/tetris.yaml and is used if the embedded file fails to parse.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Difficulty: string(DifficultyNormal),
		Speed: SpeedConfig{
			BaseMs:  600,
			FloorMs: 300,
		},
		Theme: ThemeConfig{
			Settled: "gray",
			Frame:   "white",
			Accent:  "bright_yellow",
			Pieces: map[string]string{
				"I": "cyan",
				"O": "yellow",
				"T": "magenta",
				"S": "green",
				"Z": "red",
				"J": "blue",
				"L": "orange",
			},
		},
		Keys: KeysConfig{
			Left:    []string{"left", "a", "h"},
			Right:   []string{"right", "d", "l"},
			Down:    []string{"down", "s", "j"},
			Rotate:  []string{"up", "w", "k"},
			Pause:   []string{"p", "esc"},
			Restart: []string{"r"},
			Runs:    []string{"tab"},
			Quit:    []string{"q", "ctrl+c"},
		},
	}
}
