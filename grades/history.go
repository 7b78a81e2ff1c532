package grades

import "github.com/google/uuid"

// History is the running ordered list of two-component results. It mirrors
// the calculator screen's session list: append on compute, delete by id,
// average grade point on demand.
type History struct {
	entries []Result
	newID   func() string
}

// HistoryOption configures a History.
type HistoryOption func(*History)

// WithNewID sets a custom id generator, used by tests for deterministic ids.
func WithNewID(fn func() string) HistoryOption {
	return func(h *History) { h.newID = fn }
}

// WithEntries seeds the history with previously recorded results, used when
// a persisted history is loaded.
func WithEntries(entries []Result) HistoryOption {
	return func(h *History) { h.entries = append(h.entries, entries...) }
}

// NewHistory creates an empty history.
func NewHistory(opts ...HistoryOption) *History {
	h := &History{}
	for _, opt := range opts {
		opt(h)
	}
	if h.newID == nil {
		h.newID = uuid.NewString
	}
	return h
}

// Record computes a two-component grade and, on success, appends it to the
// history with a fresh id. On failure nothing is appended.
func (h *History) Record(lectureWeight, exerciseWeight, lectureScore, exerciseScore string) (Result, error) {
	res, err := TwoComponent(lectureWeight, exerciseWeight, lectureScore, exerciseScore)
	if err != nil {
		return Result{}, err
	}
	res.ID = h.newID()
	h.entries = append(h.entries, res)
	return res, nil
}

// Entries returns a snapshot of the history in insertion order.
func (h *History) Entries() []Result {
	out := make([]Result, len(h.entries))
	copy(out, h.entries)
	return out
}

// Delete removes the entry with the given id. Absent ids are a no-op.
func (h *History) Delete(id string) {
	for i, e := range h.entries {
		if e.ID == id {
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			return
		}
	}
}

// Average returns the arithmetic mean of the recorded grade points.
// ok is false when the history is empty.
func (h *History) Average() (avg float64, ok bool) {
	if len(h.entries) == 0 {
		return 0, false
	}
	sum := 0
	for _, e := range h.entries {
		sum += e.Point
	}
	return float64(sum) / float64(len(h.entries)), true
}
