// Package log provides testing utilities for structured logging.
//
// This file contains an in-memory Logger implementation so tests can assert
// on the structured records a decode operation emits without touching the
// process-wide slog default.

package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// TestLogger captures log records in memory as JSON lines.
// Records below the configured level are dropped, mirroring a real handler.
type TestLogger struct {
	buffer *bytes.Buffer
	level  Level
	fields []any
}

// NewTestLogger creates a TestLogger that keeps every record at or above
// level. The returned buffer holds the raw JSON lines for direct inspection.
//
// Example:
//
//	logger, buffer := log.NewTestLogger(log.LevelDebug)
//	logger.Info("Tree decoded", log.TreeIDKey, 7)
//	output := buffer.String()
func NewTestLogger(level Level) (*TestLogger, *bytes.Buffer) {
	buffer := &bytes.Buffer{}
	return &TestLogger{buffer: buffer, level: level}, buffer
}

// Debug implements Logger.Debug.
func (t *TestLogger) Debug(msg string, fields ...any) { t.log(LevelDebug, msg, fields) }

// Info implements Logger.Info.
func (t *TestLogger) Info(msg string, fields ...any) { t.log(LevelInfo, msg, fields) }

// Warn implements Logger.Warn.
func (t *TestLogger) Warn(msg string, fields ...any) { t.log(LevelWarn, msg, fields) }

// Error implements Logger.Error.
func (t *TestLogger) Error(msg string, fields ...any) { t.log(LevelError, msg, fields) }

// With implements Logger.With. The child logger shares the parent's buffer
// and prepends the given fields to every record it writes.
func (t *TestLogger) With(fields ...any) Logger {
	child := &TestLogger{buffer: t.buffer, level: t.level}
	child.fields = append(append(child.fields, t.fields...), fields...)
	return child
}

// Enabled implements Logger.Enabled.
func (t *TestLogger) Enabled(_ context.Context, level Level) bool {
	return t.level <= level
}

func (t *TestLogger) log(level Level, msg string, fields []any) {
	if t.level > level {
		return
	}

	entry := map[string]interface{}{
		"level":   level.String(),
		"message": msg,
	}
	addPairs(entry, t.fields)
	addPairs(entry, fields)

	data, _ := json.Marshal(entry)
	t.buffer.Write(append(data, '\n'))
}

// addPairs folds key/value pairs into the entry. Error values are stored as
// their message so the JSON stays comparable. A trailing key without a value
// is dropped.
func addPairs(entry map[string]interface{}, pairs []any) {
	for i := 0; i+1 < len(pairs); i += 2 {
		key := fmt.Sprintf("%v", pairs[i])
		if err, ok := pairs[i+1].(error); ok {
			entry[key] = err.Error()
			continue
		}
		entry[key] = pairs[i+1]
	}
}

// GetBuffer returns the internal buffer holding the raw JSON lines.
func (t *TestLogger) GetBuffer() *bytes.Buffer {
	return t.buffer
}

// GetLogEntries parses the captured output back into one map per record.
// JSON unmarshaling turns numeric fields into float64.
//
// Example:
//
//	entries, err := testLogger.GetLogEntries()
//	if err != nil {
//	    t.Fatal(err)
//	}
//	if len(entries) != 2 {
//	    t.Errorf("Expected 2 log entries, got %d", len(entries))
//	}
func (t *TestLogger) GetLogEntries() ([]map[string]interface{}, error) {
	var entries []map[string]interface{}

	dec := json.NewDecoder(bytes.NewReader(t.buffer.Bytes()))
	for dec.More() {
		var entry map[string]interface{}
		if err := dec.Decode(&entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// ContainsMessage reports whether any captured record's message contains the
// given text.
//
// Example:
//
//	if !testLogger.ContainsMessage("Decode finished") {
//	    t.Error("Expected decode completion log message")
//	}
func (t *TestLogger) ContainsMessage(message string) bool {
	entries, err := t.GetLogEntries()
	if err != nil {
		return false
	}

	for _, entry := range entries {
		if msg, ok := entry["message"].(string); ok && strings.Contains(msg, message) {
			return true
		}
	}
	return false
}

// ContainsField reports whether any captured record carries the field with
// the given value.
//
// Example:
//
//	if !testLogger.ContainsField(log.OperationKey, log.OperationDecode) {
//	    t.Error("Expected decode operation in logs")
//	}
func (t *TestLogger) ContainsField(key string, value interface{}) bool {
	entries, err := t.GetLogEntries()
	if err != nil {
		return false
	}

	for _, entry := range entries {
		if fieldValue, exists := entry[key]; exists && fieldValue == value {
			return true
		}
	}
	return false
}

// Clear drops all captured records. Useful between test cases that share a
// logger.
func (t *TestLogger) Clear() {
	t.buffer.Reset()
}

// TestLoggerProvider hands out the same captured logger to every caller so a
// test can inject logging into decode components and inspect the result.
type TestLoggerProvider struct {
	logger *TestLogger
}

// NewTestLoggerProvider creates a provider backed by a single TestLogger.
// The returned buffer exposes everything logged through the provider.
func NewTestLoggerProvider(level Level) (*TestLoggerProvider, *bytes.Buffer) {
	logger, buffer := NewTestLogger(level)
	return &TestLoggerProvider{logger: logger}, buffer
}

// GetLogger implements LoggerProvider.GetLogger.
func (p *TestLoggerProvider) GetLogger() Logger {
	return p.logger
}

// GetLoggerWithName implements LoggerProvider.GetLoggerWithName.
func (p *TestLoggerProvider) GetLoggerWithName(name string) Logger {
	return p.logger.With(ComponentKey, name)
}

// SetLevel implements LoggerProvider.SetLevel.
func (p *TestLoggerProvider) SetLevel(level Level) {
	p.logger.level = level
}

// GetBuffer returns the buffer for accessing captured logs.
func (p *TestLoggerProvider) GetBuffer() *bytes.Buffer {
	return p.logger.buffer
}
