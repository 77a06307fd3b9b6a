package config

import "fmt"

// presetSpeeds holds the tick tiers for each preset.
// Fixed keeps the base interval for the whole game.
var presetSpeeds = map[DifficultyPreset]SpeedConfig{
	DifficultyEasy:   {BaseMs: 800, FloorMs: 400},
	DifficultyNormal: {BaseMs: 600, FloorMs: 300},
	DifficultyHard:   {BaseMs: 400, FloorMs: 150},
	DifficultyFixed:  {BaseMs: 600, FloorMs: 600},
}

// ParsePreset validates a preset name. The empty string is not a preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	p := DifficultyPreset(name)
	if _, ok := presetSpeeds[p]; !ok {
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
	return p, nil
}

// SpeedForPreset returns the tick tiers for a preset.
func SpeedForPreset(preset DifficultyPreset) SpeedConfig {
	if s, ok := presetSpeeds[preset]; ok {
		return s
	}
	return presetSpeeds[DifficultyNormal]
}

// ApplyTetrisPreset overrides the speed tiers with the preset's values.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	cfg.Difficulty = string(preset)
	cfg.Speed = SpeedForPreset(preset)
}
