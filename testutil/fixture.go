// Package testutil provides shared fixtures for planner tests:
// deterministic id sequences and clocks, quiet loggers, and a key-value
// wrapper whose failures can be scripted.
package testutil

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/arthur-debert/planner/storage"
)

// SeqIDs returns an id generator producing prefix-1, prefix-2, ...
func SeqIDs(prefix string) func() string {
	n := 0
	var mu sync.Mutex
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// FixedClock returns a clock pinned at t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// SilentLogger returns a logger that discards everything, keeping test
// output readable.
func SilentLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// FlakyKV wraps a KV and fails operations on demand.
type FlakyKV struct {
	storage.KV

	mu      sync.Mutex
	failSet bool
	sets    int
}

// NewFlakyKV wraps kv; it behaves normally until FailSets is called.
func NewFlakyKV(kv storage.KV) *FlakyKV {
	return &FlakyKV{KV: kv}
}

// FailSets makes every subsequent Set fail (or succeed again when off is
// passed as false).
func (f *FlakyKV) FailSets(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failSet = fail
}

// SetCount reports how many Set calls reached the backend or failed.
func (f *FlakyKV) SetCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sets
}

func (f *FlakyKV) Set(key, value string) error {
	f.mu.Lock()
	fail := f.failSet
	f.sets++
	f.mu.Unlock()

	if fail {
		return fmt.Errorf("set %q refused", key)
	}
	return f.KV.Set(key, value)
}
