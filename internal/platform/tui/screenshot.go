package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// defaultScreenshotDir returns ~/.tetris/screenshots, or "" if home is unavailable.
func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "screenshots")
}

// saveScreenshot writes the plain text of s into dir and returns the file path.
func saveScreenshot(s *core.Screen, dir string, at time.Time) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("tui: no screenshot directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	filename := fmt.Sprintf("tetris_%s.txt", at.Format("20060102_150405.000"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(s.String()+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot save screenshot: %w", err)
	}
	return path, nil
}
