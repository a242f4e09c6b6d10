// Package testlog provides a discarding logrus logger and a hook to make
// assertions about what was logged.
package testlog

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
)

// Hook records every entry fired on the logger it's attached to.
type Hook struct {
	mu      sync.Mutex
	entries []*logrus.Entry
}

// New sets up a test logger that produces no output. Use the returned hook to
// observe and make assertions about what was logged.
func New() (*logrus.Logger, *Hook) {
	l := logrus.New()
	l.Out = io.Discard

	hook := new(Hook)
	l.Hooks.Add(hook)

	return l, hook
}

// Entries is a thread safe accessor for all entries.
func (t *Hook) Entries() []*logrus.Entry {
	t.mu.Lock()
	defer t.mu.Unlock()

	res := make([]*logrus.Entry, len(t.entries))
	copy(res, t.entries)
	return res
}

// Levels complies to the Hook interface.
func (t *Hook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire complies to the Hook interface.
func (t *Hook) Fire(e *logrus.Entry) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	// logrus recycles entries logged straight off a Logger.
	t.entries = append(t.entries, &logrus.Entry{
		Logger:  e.Logger,
		Time:    e.Time,
		Data:    e.Data,
		Message: e.Message,
		Level:   e.Level,
	})
	return nil
}

// String returns all formatted entries joined by a space.
func (t *Hook) String() string {
	var res []string
	for _, e := range t.Entries() {
		if s, err := e.String(); err == nil {
			res = append(res, s)
		}
	}
	return strings.Join(res, " ")
}

// Reset removes all Entries from this test hook.
func (t *Hook) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries = nil
}

// CheckNotContained fails tb if any of strs has been logged.
func (t *Hook) CheckNotContained(tb testing.TB, strs ...string) {
	tb.Helper()

	s := t.String()
	for _, str := range strs {
		if contains(s, str) {
			tb.Fatalf("got `%s` expected none in %s", str, s)
		}
	}
}

// CheckAllContained fails tb unless every one of strs has been logged.
func (t *Hook) CheckAllContained(tb testing.TB, strs ...string) {
	tb.Helper()

	s := t.String()
	var missing []string
	for _, str := range strs {
		if !contains(s, str) {
			missing = append(missing, str)
		}
	}

	if len(missing) > 0 {
		tb.Fatalf("got entries: `%v` expected to find: `%v`", s, missing)
	}
}

func contains(haystack, needle string) bool {
	return strings.Contains(haystack, canonicalizeQuotes(needle))
}

// canonicalizeQuotes rewrites key="value" the way logrus' text formatter
// would print it, so callers may quote values either way.
func canonicalizeQuotes(str string) string {
	chunks := strings.SplitN(str, "=", 2)
	if len(chunks) != 2 {
		return str
	}

	key := chunks[0]
	val, err := strconv.Unquote(chunks[1])
	if err != nil {
		return str
	}

	if needsQuoting(val) {
		return fmt.Sprintf("%s=%q", key, val)
	}

	return fmt.Sprintf("%s=%s", key, val)
}

// Doesn't need quoting: a-z, A-Z, 0-9, '@', '-', '+', '.', '_', '/', '^'
func needsQuoting(text string) bool {
	for _, ch := range text {
		if !((ch >= '@' && ch <= 'Z') ||
			(ch >= 'a' && ch <= 'z') ||
			(ch >= '.' && ch <= '9') ||
			(ch >= '^' && ch <= '_') ||
			ch == '+' || ch == '-') {
			return true
		}
	}
	return false
}
