package notify

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Scheduled is one pending notification held by the in-memory notifier.
type Scheduled struct {
	Handle Handle
	At     time.Time
	Title  string
	Body   string
}

// Memory is an in-process Notifier used in tests. It records scheduled
// notifications and can be made to fail on demand.
type Memory struct {
	mu        sync.Mutex
	seq       int
	scheduled map[Handle]Scheduled

	// FailSchedule makes ScheduleAt return an error when the title
	// matches. Empty means never fail.
	FailSchedule string

	// FailCancel makes Cancel always return an error.
	FailCancel bool

	// DenyPermission makes RequestPermission return an error.
	DenyPermission bool
}

var _ Notifier = (*Memory)(nil)

// NewMemory creates an empty in-memory notifier.
func NewMemory() *Memory {
	return &Memory{scheduled: make(map[Handle]Scheduled)}
}

func (m *Memory) RequestPermission(ctx context.Context) error {
	if m.DenyPermission {
		return fmt.Errorf("notification permission denied")
	}
	return nil
}

func (m *Memory) ScheduleAt(ctx context.Context, at time.Time, title, body string) (Handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSchedule != "" && m.FailSchedule == title {
		return "", fmt.Errorf("schedule refused for %q", title)
	}
	m.seq++
	h := Handle(fmt.Sprintf("n-%d", m.seq))
	m.scheduled[h] = Scheduled{Handle: h, At: at, Title: title, Body: body}
	return h, nil
}

func (m *Memory) Cancel(ctx context.Context, h Handle) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailCancel {
		return fmt.Errorf("cancel refused for %q", h)
	}
	delete(m.scheduled, h)
	return nil
}

func (m *Memory) CancelAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scheduled = make(map[Handle]Scheduled)
	return nil
}

// Pending returns the scheduled notification for h, if any.
func (m *Memory) Pending(h Handle) (Scheduled, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.scheduled[h]
	return s, ok
}

// PendingCount returns how many notifications are currently scheduled.
func (m *Memory) PendingCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.scheduled)
}
