package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/journal"
)

func TestPrintReplay(t *testing.T) {
	color.NoColor = true

	h := journal.NewHeader(42, tetris.DefaultSpeed())
	h.RunID = "run-1"
	l := journal.Log{
		Header: h,
		Entries: []journal.Entry{
			{Type: "event", Seq: 1, Event: "tick", AtMs: 600},
			{Type: "event", Seq: 2, Event: "warp", AtMs: 700},
		},
	}
	res := journal.Replay(l)

	var buf bytes.Buffer
	printReplay(&buf, h, res)
	out := buf.String()

	for _, want := range []string{"run-1", "seed", "42", "600ms / 300ms", "1 applied, 1 skipped", "in progress", "unknown events"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
