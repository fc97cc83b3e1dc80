package logging

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Record is one parsed line of a log file.
type Record struct {
	Time      time.Time      `json:"time"`
	Level     string         `json:"level"`
	Message   string         `json:"msg"`
	SessionID string         `json:"session_id,omitempty"`
	Component string         `json:"component,omitempty"`
	Phase     string         `json:"phase,omitempty"`
	Attrs     map[string]any `json:"attrs,omitempty"`
}

// Filter selects records. Zero-valued fields match everything.
type Filter struct {
	// Level keeps records at or above this level.
	Level     string
	Since     time.Time
	SessionID string
	Component string
	// Contains keeps records whose message contains this substring.
	Contains string
}

var levelOrder = map[string]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// ReadLogs parses {dir}/debug.log. Lines that are not JSON objects are
// skipped. Records come back sorted by time.
func ReadLogs(dir string) ([]Record, error) {
	f, err := os.Open(filepath.Join(dir, LogFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no log file in %s: %w", dir, err)
		}
		return nil, fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return ParseLogs(f)
}

// ParseLogs reads newline-delimited JSON records from r.
func ParseLogs(r io.Reader) ([]Record, error) {
	var records []Record
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		rec, err := parseRecord(line)
		if err != nil {
			continue
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Time.Before(records[j].Time)
	})
	return records, nil
}

func parseRecord(line string) (Record, error) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Record{}, err
	}

	rec := Record{Attrs: make(map[string]any)}
	for k, v := range raw {
		s, _ := v.(string)
		switch k {
		case "time":
			if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
				rec.Time = t
			}
		case "level":
			rec.Level = s
		case "msg":
			rec.Message = s
		case "session_id":
			rec.SessionID = s
		case "component":
			rec.Component = s
		case "phase":
			rec.Phase = s
		default:
			rec.Attrs[k] = v
		}
	}
	if len(rec.Attrs) == 0 {
		rec.Attrs = nil
	}
	return rec, nil
}

// FilterRecords returns the records matching f, preserving order.
func FilterRecords(records []Record, f Filter) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if f.matches(r) {
			out = append(out, r)
		}
	}
	return out
}

func (f Filter) matches(r Record) bool {
	if f.Level != "" {
		min, ok := levelOrder[strings.ToUpper(f.Level)]
		got, known := levelOrder[strings.ToUpper(r.Level)]
		if ok && known && got < min {
			return false
		}
	}
	if !f.Since.IsZero() && r.Time.Before(f.Since) {
		return false
	}
	if f.SessionID != "" && r.SessionID != f.SessionID {
		return false
	}
	if f.Component != "" && r.Component != f.Component {
		return false
	}
	if f.Contains != "" && !strings.Contains(strings.ToLower(r.Message), strings.ToLower(f.Contains)) {
		return false
	}
	return true
}

// WriteRecords renders records to w as "json" (one object per line) or
// "text".
func WriteRecords(w io.Writer, records []Record, format string) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		for _, r := range records {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
		return nil
	case "", "text":
		for _, r := range records {
			if _, err := io.WriteString(w, formatText(r)+"\n"); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported log format %q (use text or json)", format)
	}
}

func formatText(r Record) string {
	var b strings.Builder
	b.WriteString(r.Time.Format("15:04:05.000"))
	fmt.Fprintf(&b, " %-5s", r.Level)
	if r.Component != "" {
		fmt.Fprintf(&b, " [%s]", r.Component)
	}
	b.WriteString(" ")
	b.WriteString(r.Message)

	keys := make([]string, 0, len(r.Attrs)+1)
	for k := range r.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if r.Phase != "" {
		fmt.Fprintf(&b, " phase=%s", r.Phase)
	}
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, r.Attrs[k])
	}
	return b.String()
}
