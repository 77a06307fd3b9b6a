// Package config provides YAML-based game configuration loading and
// difficulty presets for the tetris platform.
package config

// TetrisConfig contains all configuration for the game.
type TetrisConfig struct {
	Difficulty string      `yaml:"difficulty"`
	Speed      SpeedConfig `yaml:"speed"`
	Theme      ThemeConfig `yaml:"theme"`
	Keys       KeysConfig  `yaml:"keys"`
}

// SpeedConfig defines the two tick intervals in milliseconds.
type SpeedConfig struct {
	BaseMs  int `yaml:"base_ms"`  // Interval until the first row is cleared
	FloorMs int `yaml:"floor_ms"` // Interval once any row has been cleared
}

// ThemeConfig maps playfield parts to color names (see core.ParseColor).
type ThemeConfig struct {
	Settled string            `yaml:"settled"`
	Frame   string            `yaml:"frame"`
	Accent  string            `yaml:"accent"`
	Pieces  map[string]string `yaml:"pieces"` // Keyed by kind letter: I, O, T, S, Z, J, L
}

// KeysConfig lists the key names bound to each action.
type KeysConfig struct {
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Down    []string `yaml:"down"`
	Rotate  []string `yaml:"rotate"`
	Pause   []string `yaml:"pause"`
	Restart []string `yaml:"restart"`
	Runs    []string `yaml:"runs"`
	Quit    []string `yaml:"quit"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
