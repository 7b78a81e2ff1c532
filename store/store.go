// Package store provides the generic ordered record store underlying every
// planner collection. A store owns the canonical in-memory list of records
// for one domain type, keeps insertion order, and mirrors the list to a
// key-value persistence collaborator as a versioned JSON envelope.
//
// Mutations update memory synchronously; the durable write is queued and
// performed asynchronously, with later snapshots superseding queued ones so
// the persisted state converges to the latest in-memory state. A write
// failure is logged and never rolls back memory.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/arthur-debert/planner/storage"
)

// FormatVersion tags the persisted envelope so future layouts can migrate.
const FormatVersion = "1"

// Record is implemented by every record type kept in a Store. Records are
// value types: WithRecordID returns a copy carrying the given identifier.
type Record[T any] interface {
	RecordID() string
	WithRecordID(id string) T
}

// Config carries the per-collection settings for a Store.
type Config[T Record[T]] struct {
	// Key is the fixed storage key the collection persists under.
	Key string

	// Normalize fills defaulted fields on a draft before validation,
	// the way unset enum fields fall back to their collection default.
	// Optional.
	Normalize func(T) T

	// Validate checks a draft before create/update. Failures are wrapped
	// in ValidationError and leave the collection unchanged. Optional.
	Validate func(T) error

	// NewID generates record identifiers. Defaults to uuid.NewString.
	NewID func() string

	// Clock is used for envelope timestamps. Defaults to time.Now.
	Clock func() time.Time

	// Logger receives persistence warnings. Defaults to slog.Default.
	Logger *slog.Logger
}

// envelope is the serialized form of one collection.
type envelope[T any] struct {
	Version   string    `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
	Records   []T       `json:"records"`
}

// Store is an ordered collection of records of one domain type.
type Store[T Record[T]] struct {
	cfg   Config[T]
	kv    storage.KV
	locks *storage.LockManager
	queue *writeQueue

	records []T
}

// New creates a store over kv and loads the persisted collection. A missing
// key yields an empty collection; a malformed or unreadable payload is
// logged and also yields an empty collection (no automatic repair).
func New[T Record[T]](kv storage.KV, cfg Config[T], opts ...Option[T]) (*Store[T], error) {
	if cfg.Key == "" {
		return nil, fmt.Errorf("store: config requires a storage key")
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.NewID == nil {
		cfg.NewID = uuid.NewString
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	s := &Store[T]{
		cfg:   cfg,
		kv:    kv,
		locks: storage.NewLockManager(),
		queue: newWriteQueue(kv, cfg.Key, cfg.Logger),
	}

	if err := s.Load(); err != nil {
		s.cfg.Logger.Warn("load failed, starting with empty collection",
			"key", cfg.Key, "error", err)
	}
	return s, nil
}

// Key returns the fixed storage key the collection persists under.
func (s *Store[T]) Key() string { return s.cfg.Key }

// Load replaces the in-memory collection with the persisted one. On any
// failure the collection falls back to empty and the error is returned for
// reporting; the store stays usable.
func (s *Store[T]) Load() error {
	payload, found, err := s.kv.Get(s.cfg.Key)

	return s.locks.Execute(storage.WriteOperation, func() error {
		s.records = nil
		if err != nil {
			return fmt.Errorf("failed to read %q: %w", s.cfg.Key, err)
		}
		if !found || payload == "" {
			return nil
		}

		var env envelope[T]
		if err := json.Unmarshal([]byte(payload), &env); err != nil {
			return fmt.Errorf("failed to parse %q: %w", s.cfg.Key, err)
		}
		s.records = env.Records
		return nil
	})
}

// List returns a snapshot copy of the collection in insertion order.
func (s *Store[T]) List() []T {
	var out []T
	_ = s.locks.Execute(storage.ReadOperation, func() error {
		out = make([]T, len(s.records))
		copy(out, s.records)
		return nil
	})
	return out
}

// Len returns the number of records in the collection.
func (s *Store[T]) Len() int {
	n := 0
	_ = s.locks.Execute(storage.ReadOperation, func() error {
		n = len(s.records)
		return nil
	})
	return n
}

// Get returns the record with the given id, or NotFoundError.
func (s *Store[T]) Get(id string) (T, error) {
	var rec T
	err := s.locks.Execute(storage.ReadOperation, func() error {
		for _, r := range s.records {
			if r.RecordID() == id {
				rec = r
				return nil
			}
		}
		return &NotFoundError{Key: s.cfg.Key, ID: id}
	})
	return rec, err
}

// Create validates the draft, assigns a fresh id, appends the record and
// queues a persist. The stored record is returned. A validation failure
// leaves the collection unchanged.
func (s *Store[T]) Create(draft T) (T, error) {
	var rec T
	draft = s.normalize(draft)
	if err := s.validate(draft); err != nil {
		return rec, err
	}

	err := s.locks.Execute(storage.WriteOperation, func() error {
		rec = draft.WithRecordID(s.cfg.NewID())
		s.records = append(s.records, rec)
		s.persistLocked()
		return nil
	})
	return rec, err
}

// Update validates the draft and replaces the record with the given id,
// preserving its position and identifier. Returns NotFoundError if the id
// is not in the collection.
func (s *Store[T]) Update(id string, draft T) (T, error) {
	var rec T
	draft = s.normalize(draft)
	if err := s.validate(draft); err != nil {
		return rec, err
	}

	err := s.locks.Execute(storage.WriteOperation, func() error {
		for i, r := range s.records {
			if r.RecordID() == id {
				rec = draft.WithRecordID(id)
				s.records[i] = rec
				s.persistLocked()
				return nil
			}
		}
		return &NotFoundError{Key: s.cfg.Key, ID: id}
	})
	return rec, err
}

// Delete removes the record with the given id. Deleting an absent id is a
// no-op, not an error.
func (s *Store[T]) Delete(id string) error {
	return s.locks.Execute(storage.WriteOperation, func() error {
		for i, r := range s.records {
			if r.RecordID() == id {
				s.records = append(s.records[:i], s.records[i+1:]...)
				s.persistLocked()
				return nil
			}
		}
		return nil
	})
}

// Flush blocks until every queued persist has been attempted.
func (s *Store[T]) Flush() {
	s.queue.flush()
}

// Close flushes pending writes. The underlying KV is shared between stores
// and is closed by its owner, not here.
func (s *Store[T]) Close() error {
	s.queue.flush()
	return nil
}

func (s *Store[T]) normalize(draft T) T {
	if s.cfg.Normalize == nil {
		return draft
	}
	return s.cfg.Normalize(draft)
}

func (s *Store[T]) validate(draft T) error {
	if s.cfg.Validate == nil {
		return nil
	}
	if err := s.cfg.Validate(draft); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}

// persistLocked snapshots the collection and hands it to the write queue.
// Caller must hold the write lock.
func (s *Store[T]) persistLocked() {
	env := envelope[T]{
		Version:   FormatVersion,
		UpdatedAt: s.cfg.Clock(),
		Records:   make([]T, len(s.records)),
	}
	copy(env.Records, s.records)

	payload, err := json.Marshal(env)
	if err != nil {
		s.cfg.Logger.Error("failed to serialize collection", "key", s.cfg.Key, "error", err)
		return
	}
	s.queue.enqueue(string(payload))
}
