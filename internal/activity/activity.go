// Package activity reads back the most recent entries of shelf's log file.
package activity

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// Entry is one decoded log line.
type Entry struct {
	Time    time.Time
	Level   string
	Message string
	Fields  map[string]any
}

// Summary renders the entry fields as sorted key=value pairs.
func (e Entry) Summary() string {
	if len(e.Fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, e.Fields[k]))
	}
	return strings.Join(parts, " ")
}

// Recent returns at most limit entries from the end of the log at path, oldest
// first. A missing file yields no entries. Lines that are not JSON objects
// are kept as plain messages.
func Recent(path string, limit int) ([]Entry, error) {
	lines, err := tail(path, limit)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, decode(line))
	}
	return entries, nil
}

func decode(line string) Entry {
	var raw map[string]any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Entry{Message: line}
	}

	e := Entry{Fields: map[string]any{}}
	for k, v := range raw {
		switch k {
		case "msg":
			e.Message, _ = v.(string)
		case "level":
			e.Level, _ = v.(string)
		case "ts":
			if s, ok := v.(string); ok {
				if ts, err := time.Parse("2006-01-02T15:04:05.000Z0700", s); err == nil {
					e.Time = ts
				}
			}
		case "caller", "stacktrace", "logger":
		default:
			e.Fields[k] = v
		}
	}
	return e
}

// tail returns the last maxLines lines of the file using a ring buffer.
func tail(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 || strings.TrimSpace(path) == "" {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count, idx := 0, 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := range count {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}
