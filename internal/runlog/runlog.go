// Package runlog records what each cleanup-kit run produced as NDJSON.
package runlog

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"
)

const (
	TypeSummary = "summary"
	TypeFlyer   = "flyer"
)

type Counts struct {
	Files    int `json:"files"`
	Warnings int `json:"warnings"`
	Errors   int `json:"errors"`
}

type Record struct {
	RunID     string   `json:"run_id"`
	Timestamp string   `json:"ts"`
	Type      string   `json:"type"`
	Source    string   `json:"src,omitempty"`
	Outputs   []string `json:"out,omitempty"`
	Counts    *Counts  `json:"counts,omitempty"`
	Message   string   `json:"message,omitempty"`
}

// Logger appends one JSON line per record. A nil *Logger drops records.
type Logger struct {
	runID string

	mu sync.Mutex
	f  *os.File
	w  *bufio.Writer
}

// New opens path for appending, creating parent directories. An empty path
// returns a nil Logger.
func New(path, runID string) (*Logger, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create runlog dir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return &Logger{
		runID: runID,
		f:     f,
		w:     bufio.NewWriterSize(f, 64*1024),
	}, nil
}

func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.w != nil {
		_ = l.w.Flush()
		l.w = nil
	}
	if l.f != nil {
		err := l.f.Close()
		l.f = nil
		return err
	}
	return nil
}

// Log fills in RunID and Timestamp when unset and writes the record.
func (l *Logger) Log(rec Record) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.w == nil {
		return
	}
	if rec.RunID == "" {
		rec.RunID = l.runID
	}
	if rec.Timestamp == "" {
		rec.Timestamp = NowTS()
	}
	line, err := jsoniter.Marshal(rec)
	if err != nil {
		return
	}
	_, _ = l.w.Write(append(line, '\n'))
	_ = l.w.Flush()
}
