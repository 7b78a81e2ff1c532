package planner_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/arthur-debert/planner/grades"
	"github.com/arthur-debert/planner/planner"
	"github.com/arthur-debert/planner/storage"
	"github.com/arthur-debert/planner/store"
	"github.com/arthur-debert/planner/testutil"
)

func newCalcHistory(t *testing.T, kv storage.KV) *planner.CalcHistory {
	t.Helper()
	h, err := planner.NewCalcHistory(kv,
		planner.WithCalcID(testutil.SeqIDs("calc")),
		planner.WithCalcLogger(testutil.SilentLogger()))
	if err != nil {
		t.Fatalf("failed to create calc history: %v", err)
	}
	return h
}

func TestCalcHistoryRecordPersistsAcrossReopen(t *testing.T) {
	kv := storage.NewMemory()
	h := newCalcHistory(t, kv)

	res, err := h.Record("60", "40", "90", "90")
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if res.ID != "calc-1" {
		t.Errorf("expected generated id calc-1, got %q", res.ID)
	}

	reopened := newCalcHistory(t, kv)
	entries := reopened.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 persisted entry, got %d", len(entries))
	}
	if entries[0].ID != "calc-1" || entries[0].Point != 10 {
		t.Errorf("unexpected persisted entry %+v", entries[0])
	}
}

func TestCalcHistoryRejectedInputIsNotRecorded(t *testing.T) {
	kv := storage.NewMemory()
	h := newCalcHistory(t, kv)

	if _, err := h.Record("60", "41", "90", "90"); !errors.Is(err, grades.ErrInvalidWeight) {
		t.Fatalf("expected ErrInvalidWeight, got %v", err)
	}
	if len(h.Entries()) != 0 {
		t.Error("expected failed computation to leave history empty")
	}
	if _, found, _ := kv.Get(planner.CalcHistoryKey); found {
		t.Error("expected nothing persisted for a rejected computation")
	}
}

func TestCalcHistoryDeletePersists(t *testing.T) {
	kv := storage.NewMemory()
	h := newCalcHistory(t, kv)

	first, _ := h.Record("50", "50", "90", "90")
	second, _ := h.Record("50", "50", "60", "60")

	h.Delete(first.ID)

	reopened := newCalcHistory(t, kv)
	entries := reopened.Entries()
	if len(entries) != 1 || entries[0].ID != second.ID {
		t.Fatalf("expected only the second entry persisted, got %+v", entries)
	}
}

func TestCalcHistoryAverage(t *testing.T) {
	h := newCalcHistory(t, storage.NewMemory())

	if _, ok := h.Average(); ok {
		t.Error("expected no average for an empty history")
	}

	h.Record("50", "50", "90", "90") // 10
	h.Record("50", "50", "70", "70") // 8

	avg, ok := h.Average()
	if !ok || avg != 9 {
		t.Errorf("expected average 9, got %v ok=%v", avg, ok)
	}
}

func TestCalcHistoryEnvelopeCarriesVersion(t *testing.T) {
	kv := storage.NewMemory()
	h := newCalcHistory(t, kv)
	if _, err := h.Record("60", "40", "90", "90"); err != nil {
		t.Fatalf("record failed: %v", err)
	}

	payload, found, err := kv.Get(planner.CalcHistoryKey)
	if err != nil || !found {
		t.Fatalf("expected persisted payload, found=%v err=%v", found, err)
	}
	var env struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		t.Fatalf("failed to parse envelope: %v", err)
	}
	if env.Version != store.FormatVersion {
		t.Errorf("expected version %q, got %q", store.FormatVersion, env.Version)
	}
}

func TestCalcHistoryMalformedPayloadFallsBackToEmpty(t *testing.T) {
	kv := storage.NewMemory()
	if err := kv.Set(planner.CalcHistoryKey, "{broken"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	h := newCalcHistory(t, kv)
	if len(h.Entries()) != 0 {
		t.Error("expected empty history from malformed payload")
	}
	if _, err := h.Record("60", "40", "90", "90"); err != nil {
		t.Errorf("expected history usable after bad load: %v", err)
	}
}
