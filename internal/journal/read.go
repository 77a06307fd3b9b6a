package journal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
)

// Log is a decoded journal.
type Log struct {
	Header  Header
	Entries []Entry
}

// Read decodes the journal at path.
func Read(path string) (Log, error) {
	f, err := os.Open(path)
	if err != nil {
		return Log{}, fmt.Errorf("journal: cannot open %s: %w", path, err)
	}
	defer f.Close()

	l, err := Decode(f)
	if err != nil {
		return l, fmt.Errorf("journal: %s: %w", path, err)
	}
	return l, nil
}

// Decode reads a compressed journal stream.
func Decode(r io.Reader) (Log, error) {
	var l Log

	dec, err := zstd.NewReader(r)
	if err != nil {
		return l, err
	}
	defer dec.Close()

	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	line := 0
	haveHeader := false
	for sc.Scan() {
		line++
		b := sc.Bytes()
		if len(b) == 0 {
			continue
		}
		if !haveHeader {
			if err := json.Unmarshal(b, &l.Header); err != nil {
				return l, fmt.Errorf("line %d: bad header: %w", line, err)
			}
			if l.Header.Type != typeHeader {
				return l, fmt.Errorf("line %d: expected header, got %q", line, l.Header.Type)
			}
			if l.Header.Version != Version {
				return l, fmt.Errorf("unsupported version %d", l.Header.Version)
			}
			haveHeader = true
			continue
		}

		var e Entry
		if err := json.Unmarshal(b, &e); err != nil {
			return l, fmt.Errorf("line %d: %w", line, err)
		}
		if e.Type != typeEvent {
			return l, fmt.Errorf("line %d: unexpected entry type %q", line, e.Type)
		}
		l.Entries = append(l.Entries, e)
	}
	if err := sc.Err(); err != nil {
		return l, err
	}
	if !haveHeader {
		return l, fmt.Errorf("empty journal")
	}
	return l, nil
}
