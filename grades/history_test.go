package grades_test

import (
	"errors"
	"testing"

	"github.com/arthur-debert/planner/grades"
	"github.com/arthur-debert/planner/testutil"
)

func TestHistoryRecordAppendsOnSuccess(t *testing.T) {
	h := grades.NewHistory(grades.WithNewID(testutil.SeqIDs("calc")))

	res, err := h.Record("60", "40", "90", "90")
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if res.ID != "calc-1" {
		t.Errorf("expected generated id calc-1, got %q", res.ID)
	}

	entries := h.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Point != 10 {
		t.Errorf("expected grade point 10, got %d", entries[0].Point)
	}
}

func TestHistoryRecordSkipsFailures(t *testing.T) {
	h := grades.NewHistory()

	if _, err := h.Record("60", "41", "90", "90"); !errors.Is(err, grades.ErrInvalidWeight) {
		t.Fatalf("expected ErrInvalidWeight, got %v", err)
	}
	if len(h.Entries()) != 0 {
		t.Error("expected failed computation to leave history empty")
	}
}

func TestHistoryDelete(t *testing.T) {
	h := grades.NewHistory(grades.WithNewID(testutil.SeqIDs("calc")))

	first, _ := h.Record("50", "50", "90", "90")
	second, _ := h.Record("50", "50", "60", "60")

	h.Delete(first.ID)
	entries := h.Entries()
	if len(entries) != 1 || entries[0].ID != second.ID {
		t.Fatalf("expected only the second entry to remain, got %+v", entries)
	}

	// Absent id is a no-op.
	h.Delete("calc-99")
	if len(h.Entries()) != 1 {
		t.Error("expected absent delete to change nothing")
	}
}

func TestHistoryAverage(t *testing.T) {
	h := grades.NewHistory()

	if _, ok := h.Average(); ok {
		t.Error("expected no average for an empty history")
	}

	h.Record("50", "50", "90", "90") // 10
	h.Record("50", "50", "70", "70") // 8

	avg, ok := h.Average()
	if !ok {
		t.Fatal("expected an average after recording entries")
	}
	if avg != 9 {
		t.Errorf("expected average 9, got %v", avg)
	}
}
