// Package testhelpers has loggers for tests.
package testhelpers

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/myrjola/reportdesk/internal/logging"
)

// NewLogger creates a new logger with the given log sink such as io.Discard.
func NewLogger(logSink io.Writer) *slog.Logger {
	handler := logging.NewContextHandler(slog.NewTextHandler(logSink, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	return slog.New(handler)
}

// LogRecorder collects JSON log lines so that tests can assert on attributes instead of text.
type LogRecorder struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (l *LogRecorder) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.Write(p) //nolint:wrapcheck // bytes.Buffer never fails.
}

// Logger returns a debug level logger writing to l.
func (l *LogRecorder) Logger() *slog.Logger {
	return slog.New(logging.NewContextHandler(slog.NewJSONHandler(l, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	})))
}

// Records decodes every line logged so far. Groups become nested maps.
func (l *LogRecorder) Records(t *testing.T) []map[string]any {
	t.Helper()
	l.mu.Lock()
	defer l.mu.Unlock()
	var records []map[string]any
	scanner := bufio.NewScanner(bytes.NewReader(l.buf.Bytes()))
	for scanner.Scan() {
		var record map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &record); err != nil {
			t.Fatalf("decode log line %q: %v", scanner.Text(), err)
		}
		records = append(records, record)
	}
	return records
}

// Find returns the first record with message msg or nil.
func (l *LogRecorder) Find(t *testing.T, msg string) map[string]any {
	t.Helper()
	for _, record := range l.Records(t) {
		if record[slog.MessageKey] == msg {
			return record
		}
	}
	return nil
}
