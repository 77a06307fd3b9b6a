// Package journal records the events of one game as zstd-compressed JSONL
// and replays them through a fresh machine.
//
// The first line is a Header; each following line is an Entry. A journal is
// a debugging aid: it is never loaded back into a live game.
package journal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// Version is the journal format version written in every header.
const Version = 1

const (
	typeHeader = "header"
	typeEvent  = "event"
)

// Header describes the run a journal belongs to. Seed and the speed tiers
// are everything needed to rebuild the game from its events.
type Header struct {
	Type         string    `json:"type"`
	Version      int       `json:"version"`
	RunID        string    `json:"run_id"`
	Seed         int64     `json:"seed"`
	StartedAt    time.Time `json:"started_at"`
	SpeedBaseMs  int64     `json:"speed_base_ms"`
	SpeedFloorMs int64     `json:"speed_floor_ms"`
}

// Speed returns the header's tick tiers.
func (h Header) Speed() tetris.SpeedConfig {
	return tetris.SpeedConfig{
		Base:  time.Duration(h.SpeedBaseMs) * time.Millisecond,
		Floor: time.Duration(h.SpeedFloorMs) * time.Millisecond,
	}
}

// NewHeader builds a header for a game seeded with seed.
func NewHeader(seed int64, speed tetris.SpeedConfig) Header {
	return Header{
		Seed:         seed,
		SpeedBaseMs:  speed.Base.Milliseconds(),
		SpeedFloorMs: speed.Floor.Milliseconds(),
	}
}

// Entry is one handled event. AtMs is the offset from the header's StartedAt.
type Entry struct {
	Type  string `json:"type"`
	Seq   int    `json:"seq"`
	Event string `json:"event"`
	AtMs  int64  `json:"at_ms"`
}

// Writer appends entries to a journal file. It is safe for concurrent use.
type Writer struct {
	mu     sync.Mutex
	header Header
	seq    int
	f      *os.File
	enc    *zstd.Encoder
	w      *bufio.Writer
}

// Create opens path for writing, truncating any existing file, and writes h.
// An empty RunID gets a fresh UUID and a zero StartedAt is set to now.
func Create(path string, h Header) (*Writer, error) {
	h.Type = typeHeader
	h.Version = Version
	if h.RunID == "" {
		h.RunID = uuid.NewString()
	}
	if h.StartedAt.IsZero() {
		h.StartedAt = time.Now()
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("journal: cannot create directory %s: %w", dir, err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("journal: cannot create %s: %w", path, err)
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("journal: cannot start encoder: %w", err)
	}

	w := &Writer{
		header: h,
		f:      f,
		enc:    enc,
		w:      bufio.NewWriterSize(enc, 32*1024),
	}
	if err := w.writeLine(h); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("journal: cannot write header: %w", err)
	}
	return w, nil
}

// Header returns the header as written.
func (w *Writer) Header() Header {
	return w.header
}

// Append records ev as handled at time at.
func (w *Writer) Append(ev tetris.Event, at time.Time) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.w == nil {
		return fmt.Errorf("journal: append to closed writer")
	}
	w.seq++
	e := Entry{
		Type:  typeEvent,
		Seq:   w.seq,
		Event: ev.String(),
		AtMs:  at.Sub(w.header.StartedAt).Milliseconds(),
	}
	if err := w.writeLine(e); err != nil {
		return fmt.Errorf("journal: cannot append event %d: %w", e.Seq, err)
	}
	return nil
}

// Len returns the number of events appended so far.
func (w *Writer) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.seq
}

func (w *Writer) writeLine(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(b); err != nil {
		return err
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return err
	}
	return w.w.Flush()
}

// Close flushes the stream and closes the file. Closing twice is a no-op.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var err error
	if w.w != nil {
		err = w.w.Flush()
		w.w = nil
	}
	if w.enc != nil {
		if cerr := w.enc.Close(); err == nil {
			err = cerr
		}
		w.enc = nil
	}
	if w.f != nil {
		if cerr := w.f.Close(); err == nil {
			err = cerr
		}
		w.f = nil
	}
	if err != nil {
		return fmt.Errorf("journal: close: %w", err)
	}
	return nil
}
