package testutil

import (
	"fmt"
	"strings"
	"sync"

	"github.com/crestview/admin/core"
)

// Logger records log entries instead of shipping them anywhere; Fatal does
// not exit the process.
type Logger struct {
	mu      sync.Mutex
	entries []string
}

var _ core.Logger = (*Logger)(nil)

func (l *Logger) Enable(enabled bool) {}

func (l *Logger) record(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, fmt.Sprintf("%s: %s", level, msg))
}

func (l *Logger) Debug(msg string, args ...interface{}) { l.record("DEBUG", msg) }
func (l *Logger) Info(msg string, args ...interface{})  { l.record("INFO", msg) }
func (l *Logger) Warn(msg string, args ...interface{})  { l.record("WARN", msg) }
func (l *Logger) Error(msg string, args ...interface{}) { l.record("ERROR", msg) }
func (l *Logger) Fatal(msg string, args ...interface{}) { l.record("FATAL", msg) }

// Contains reports whether any recorded entry contains substr.
func (l *Logger) Contains(substr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, entry := range l.entries {
		if strings.Contains(entry, substr) {
			return true
		}
	}
	return false
}
