package storage

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestMemoryKVSetGetRemove(t *testing.T) {
	kv := NewMemory()

	if _, found, err := kv.Get("k"); err != nil || found {
		t.Fatalf("expected absent key, found=%v err=%v", found, err)
	}

	if err := kv.Set("k", "v"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	value, found, err := kv.Get("k")
	if err != nil || !found || value != "v" {
		t.Fatalf("expected stored value, got %q found=%v err=%v", value, found, err)
	}

	if err := kv.Remove("k"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, found, _ := kv.Get("k"); found {
		t.Error("expected key gone after remove")
	}

	// Absent remove is a no-op.
	if err := kv.Remove("k"); err != nil {
		t.Errorf("expected absent remove to succeed, got %v", err)
	}
}

func TestMemoryKVClosedOperationsFail(t *testing.T) {
	kv := NewMemory()
	if err := kv.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	if err := kv.Set("k", "v"); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
	if _, _, err := kv.Get("k"); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
}

func TestMemoryKVConcurrentAccess(t *testing.T) {
	kv := NewMemory()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", n%5)
			_ = kv.Set(key, fmt.Sprintf("v%d", n))
			_, _, _ = kv.Get(key)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 5; i++ {
		if _, found, err := kv.Get(fmt.Sprintf("k%d", i)); err != nil || !found {
			t.Errorf("expected key k%d present, found=%v err=%v", i, found, err)
		}
	}
}

func TestLockManagerSerializesWrites(t *testing.T) {
	lm := NewLockManager()
	counter := 0
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = lm.Execute(WriteOperation, func() error {
				counter++
				return nil
			})
		}()
	}
	wg.Wait()

	if counter != 100 {
		t.Errorf("expected 100 increments, got %d", counter)
	}
}

func TestLockManagerPropagatesErrors(t *testing.T) {
	lm := NewLockManager()
	want := errors.New("boom")

	if err := lm.Execute(ReadOperation, func() error { return want }); !errors.Is(err, want) {
		t.Errorf("expected wrapped error, got %v", err)
	}
}
