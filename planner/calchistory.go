package planner

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/arthur-debert/planner/grades"
	"github.com/arthur-debert/planner/storage"
	"github.com/arthur-debert/planner/store"
)

// CalcHistoryKey is the fixed storage key the calculator history persists
// under.
const CalcHistoryKey = "calcHistory"

// CalcHistory persists the two-component calculator's running history.
// Computation and the entry list belong to grades.History; this type loads
// it from the key-value backend and writes it back after every mutation.
// Like the collection stores, memory stays authoritative: a failed write is
// logged and the next successful one re-converges the persisted state.
type CalcHistory struct {
	kv    storage.KV
	log   *slog.Logger
	clock func() time.Time
	newID func() string
	hist  *grades.History
}

// CalcHistoryOption configures a CalcHistory.
type CalcHistoryOption func(*CalcHistory)

// WithCalcLogger sets the logger persistence warnings go to.
func WithCalcLogger(log *slog.Logger) CalcHistoryOption {
	return func(h *CalcHistory) { h.log = log }
}

// WithCalcClock sets a custom time function for envelope timestamps.
func WithCalcClock(fn func() time.Time) CalcHistoryOption {
	return func(h *CalcHistory) { h.clock = fn }
}

// WithCalcID sets a custom entry id generator, used in tests.
func WithCalcID(fn func() string) CalcHistoryOption {
	return func(h *CalcHistory) { h.newID = fn }
}

type calcEnvelope struct {
	Version   string          `json:"version"`
	UpdatedAt time.Time       `json:"updated_at"`
	Records   []grades.Result `json:"records"`
}

// NewCalcHistory creates the calculator history over kv, loading any
// persisted entries. A missing key yields an empty history; a malformed
// payload is logged and yields an empty history too.
func NewCalcHistory(kv storage.KV, opts ...CalcHistoryOption) (*CalcHistory, error) {
	h := &CalcHistory{kv: kv}
	for _, opt := range opts {
		opt(h)
	}
	if h.log == nil {
		h.log = slog.Default()
	}
	if h.clock == nil {
		h.clock = time.Now
	}

	entries, err := h.load()
	if err != nil {
		h.log.Warn("load failed, starting with empty history",
			"key", CalcHistoryKey, "error", err)
	}

	var hopts []grades.HistoryOption
	if h.newID != nil {
		hopts = append(hopts, grades.WithNewID(h.newID))
	}
	if len(entries) > 0 {
		hopts = append(hopts, grades.WithEntries(entries))
	}
	h.hist = grades.NewHistory(hopts...)
	return h, nil
}

// Record computes a two-component grade, appends it to the history and
// persists. On a computation failure nothing is appended or written.
func (h *CalcHistory) Record(lectureWeight, exerciseWeight, lectureScore, exerciseScore string) (grades.Result, error) {
	res, err := h.hist.Record(lectureWeight, exerciseWeight, lectureScore, exerciseScore)
	if err != nil {
		return res, err
	}
	h.persist()
	return res, nil
}

// Delete removes the entry with the given id and persists. Absent ids are
// a no-op.
func (h *CalcHistory) Delete(id string) {
	h.hist.Delete(id)
	h.persist()
}

// Entries returns the recorded results in insertion order.
func (h *CalcHistory) Entries() []grades.Result { return h.hist.Entries() }

// Average returns the arithmetic mean of the recorded grade points.
func (h *CalcHistory) Average() (float64, bool) { return h.hist.Average() }

func (h *CalcHistory) load() ([]grades.Result, error) {
	payload, found, err := h.kv.Get(CalcHistoryKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", CalcHistoryKey, err)
	}
	if !found || payload == "" {
		return nil, nil
	}

	var env calcEnvelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", CalcHistoryKey, err)
	}
	return env.Records, nil
}

func (h *CalcHistory) persist() {
	env := calcEnvelope{
		Version:   store.FormatVersion,
		UpdatedAt: h.clock(),
		Records:   h.hist.Entries(),
	}
	payload, err := json.Marshal(env)
	if err != nil {
		h.log.Error("failed to serialize history", "key", CalcHistoryKey, "error", err)
		return
	}
	if err := h.kv.Set(CalcHistoryKey, string(payload)); err != nil {
		h.log.Warn("persist failed", "key", CalcHistoryKey, "error", err)
	}
}
