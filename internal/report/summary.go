package report

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cast"
)

var (
	ErrMissing   = errors.New("report file not found")
	ErrMalformed = errors.New("report is not valid JSON")
	ErrShape     = errors.New("report has unexpected shape")
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Summary holds the aggregate counts of one report.
type Summary struct {
	Files    int `json:"files"`
	Warnings int `json:"warnings"`
	Errors   int `json:"errors"`
}

func (s Summary) String() string {
	return fmt.Sprintf("files=%d warnings=%d errors=%d", s.Files, s.Warnings, s.Errors)
}

// Load reads and summarizes the report at path. The returned Summary is
// always usable; a non-nil error explains a zero result.
func Load(path string) (Summary, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Summary{}, fmt.Errorf("%w: %s", ErrMissing, path)
		}
		return Summary{}, fmt.Errorf("read report: %w", err)
	}
	return Summarize(raw)
}

// Summarize aggregates a raw report. Blank input is an empty report.
func Summarize(raw []byte) (Summary, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Summary{}, nil
	}
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return Summary{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	switch v := data.(type) {
	case []any:
		return fromRecords(v), nil
	case map[string]any:
		return fromTotals(v), nil
	default:
		return Summary{}, fmt.Errorf("%w: top-level %T", ErrShape, data)
	}
}

// fromRecords counts every element as a file; only object elements
// contribute warnings and errors.
func fromRecords(records []any) Summary {
	s := Summary{Files: len(records)}
	for _, r := range records {
		rec, ok := r.(map[string]any)
		if !ok {
			continue
		}
		s.Warnings += size(rec["warnings"])
		s.Errors += size(rec["errors"])
	}
	return s
}

func fromTotals(m map[string]any) Summary {
	return Summary{
		Files:    toInt(m["files_scanned"]),
		Warnings: toInt(m["warnings"]),
		Errors:   toInt(m["errors"]),
	}
}

func size(v any) int {
	switch x := v.(type) {
	case []any:
		return len(x)
	case map[string]any:
		return len(x)
	case string:
		return utf8.RuneCountInString(x)
	default:
		return 0
	}
}

// toInt reads a total as a decimal integer. Strings are parsed in base 10
// only, so "010" is ten; numbers beyond the int range saturate.
func toInt(v any) int {
	switch x := v.(type) {
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		if err != nil {
			return 0
		}
		return int(n)
	case float64:
		switch {
		case math.IsNaN(x):
			return 0
		case x >= math.MaxInt:
			return math.MaxInt
		case x <= math.MinInt:
			return math.MinInt
		}
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0
	}
	return n
}
