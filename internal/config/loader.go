package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

const configFile = "tetris.yaml"

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func tetrisSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString("tetris.schema.json", tetrisSchemaJSON)
	})
	return schema, schemaErr
}

// LoadTetris loads the game configuration.
// Search order: customPath -> ~/.tetris/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
//
// A found file is layered over the embedded default, so it only needs the
// keys it changes. An explicit customPath that cannot be read is an error;
// missing files on the search path are skipped.
func LoadTetris(customPath string) (TetrisConfig, error) {
	cfg, err := embeddedDefault()
	if err != nil {
		return cfg, err
	}

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return overlay(cfg, data, customPath)
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		return overlay(cfg, data, path)
	}

	return cfg, nil
}

// Parse validates and decodes a YAML document layered over the embedded default.
func Parse(data []byte) (TetrisConfig, error) {
	cfg, err := embeddedDefault()
	if err != nil {
		return cfg, err
	}
	return overlay(cfg, data, "<input>")
}

func embeddedDefault() (TetrisConfig, error) {
	var cfg TetrisConfig
	if err := yaml.Unmarshal(defaultTetrisYAML, &cfg); err != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func overlay(base TetrisConfig, data []byte, source string) (TetrisConfig, error) {
	if err := Validate(data); err != nil {
		return base, fmt.Errorf("invalid config %s: %w", source, err)
	}
	cfg := base
	// Decoding into a fresh map keeps the default piece colors the file does not name.
	cfg.Theme.Pieces = make(map[string]string, len(base.Theme.Pieces))
	for k, v := range base.Theme.Pieces {
		cfg.Theme.Pieces[k] = v
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("failed to parse config %s: %w", source, err)
	}
	if err := applyFileDifficulty(&cfg, data); err != nil {
		return base, fmt.Errorf("failed to parse config %s: %w", source, err)
	}
	if cfg.Speed.FloorMs > cfg.Speed.BaseMs {
		return base, fmt.Errorf("invalid config %s: speed.floor_ms (%d) exceeds speed.base_ms (%d)",
			source, cfg.Speed.FloorMs, cfg.Speed.BaseMs)
	}
	return cfg, nil
}

// applyFileDifficulty lets a file that names a difficulty without a speed
// section get that preset's tiers.
func applyFileDifficulty(cfg *TetrisConfig, data []byte) error {
	var head struct {
		Difficulty string       `yaml:"difficulty"`
		Speed      *SpeedConfig `yaml:"speed"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return err
	}
	if head.Difficulty != "" && head.Speed == nil {
		ApplyTetrisPreset(cfg, DifficultyPreset(head.Difficulty))
	}
	return nil
}

// Validate checks a YAML document against the config schema.
// An empty document is valid.
func Validate(data []byte) error {
	s, err := tetrisSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	if doc == nil {
		return nil
	}

	// Round-trip through JSON so the validator sees plain JSON types.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("convert to json: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("convert to json: %w", err)
	}
	return s.Validate(v)
}

// searchPaths returns the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if p := userConfigPath(configFile); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", configFile))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "configs", filename)
}

// Resolve applies a difficulty flag on top of a loaded config.
// An empty flag keeps the config's own speed section.
func Resolve(cfg TetrisConfig, difficulty string) (TetrisConfig, error) {
	if difficulty == "" {
		return cfg, nil
	}
	preset, err := ParsePreset(difficulty)
	if err != nil {
		return cfg, err
	}
	ApplyTetrisPreset(&cfg, preset)
	return cfg, nil
}

// Durations converts the millisecond tiers to durations.
func (s SpeedConfig) Durations() (base, floor time.Duration) {
	return time.Duration(s.BaseMs) * time.Millisecond, time.Duration(s.FloorMs) * time.Millisecond
}
