package store

import (
	"log/slog"
	"sync"

	"github.com/arthur-debert/planner/storage"
)

// writeQueue serializes persistence writes for one collection key. At most
// one write is in flight; a snapshot enqueued while another is queued but
// not yet started supersedes it. This guarantees the persisted state
// converges to the latest in-memory state even though callers never wait
// for the write.
type writeQueue struct {
	kv  storage.KV
	key string
	log *slog.Logger

	mu      sync.Mutex
	idle    *sync.Cond
	pending *string
	running bool
}

func newWriteQueue(kv storage.KV, key string, log *slog.Logger) *writeQueue {
	q := &writeQueue{kv: kv, key: key, log: log}
	q.idle = sync.NewCond(&q.mu)
	return q
}

// enqueue queues payload as the next write, replacing any queued payload
// that has not started yet, and starts the worker if needed.
func (q *writeQueue) enqueue(payload string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.pending = &payload
	if !q.running {
		q.running = true
		go q.drain()
	}
}

// drain writes queued snapshots until none remain. Write failures are
// logged and dropped: memory stays authoritative and the next successful
// write re-converges the persisted state.
func (q *writeQueue) drain() {
	for {
		q.mu.Lock()
		if q.pending == nil {
			q.running = false
			q.idle.Broadcast()
			q.mu.Unlock()
			return
		}
		payload := *q.pending
		q.pending = nil
		q.mu.Unlock()

		if err := q.kv.Set(q.key, payload); err != nil {
			q.log.Warn("persist failed", "key", q.key, "error", err)
		}
	}
}

// flush blocks until the queue is empty and the worker has stopped.
func (q *writeQueue) flush() {
	q.mu.Lock()
	defer q.mu.Unlock()
	for q.running {
		q.idle.Wait()
	}
}
