package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// timeLayout matches log.LstdFlags|log.Lmicroseconds.
const timeLayout = "2006/01/02 15:04:05.000000"

// Entry is one parsed log line.
type Entry struct {
	Time    time.Time // zero when the line has no timestamp
	Message string
}

// Problem reports whether the entry records a failure.
func (e Entry) Problem() bool {
	msg := strings.ToLower(e.Message)
	return strings.Contains(msg, "failed") || strings.Contains(msg, "error")
}

// Parse splits a log line into timestamp and message.
func Parse(line string) Entry {
	if len(line) > len(timeLayout) && line[len(timeLayout)] == ' ' {
		if ts, err := time.ParseInLocation(timeLayout, line[:len(timeLayout)], time.Local); err == nil {
			return Entry{Time: ts, Message: line[len(timeLayout)+1:]}
		}
	}
	return Entry{Message: line}
}

// Tail returns the last maxLines entries of the log at path, oldest first.
func Tail(path string, maxLines int) ([]Entry, error) {
	lines, err := Read(path, maxLines)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, len(lines))
	for i, line := range lines {
		entries[i] = Parse(line)
	}
	return entries, nil
}

// Read returns at most maxLines from the end of the file at path. A missing
// file yields no lines.
func Read(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
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
	count := 0
	idx := 0
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
