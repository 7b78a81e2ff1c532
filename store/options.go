package store

import (
	"log/slog"
	"time"
)

// Option is a function that adjusts a store Config before the store is
// built. Options let callers inject deterministic clocks and id sequences
// in tests without touching the collection wiring.
type Option[T Record[T]] func(*Config[T])

// WithLogger sets the logger persistence warnings go to.
func WithLogger[T Record[T]](log *slog.Logger) Option[T] {
	return func(c *Config[T]) { c.Logger = log }
}

// WithNewID sets a custom record id generator.
func WithNewID[T Record[T]](fn func() string) Option[T] {
	return func(c *Config[T]) { c.NewID = fn }
}

// WithClock sets a custom time function for envelope timestamps.
func WithClock[T Record[T]](fn func() time.Time) Option[T] {
	return func(c *Config[T]) { c.Clock = fn }
}
