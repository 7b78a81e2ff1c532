package remind

import (
	"context"
	"log/slog"
	"time"

	"github.com/arthur-debert/planner/notify"
	"github.com/arthur-debert/planner/store"
)

// Scheduler bridges the reminder store to a notify.Notifier. Scheduling is
// best-effort throughout: a notifier failure is logged and never blocks the
// record mutation it accompanies.
type Scheduler struct {
	store    *store.Store[Reminder]
	notifier notify.Notifier
	clock    func() time.Time
	log      *slog.Logger
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithClock sets a custom time function, used by tests to pin "now".
func WithClock(fn func() time.Time) SchedulerOption {
	return func(s *Scheduler) { s.clock = fn }
}

// WithLogger sets the logger scheduling warnings go to.
func WithLogger(log *slog.Logger) SchedulerOption {
	return func(s *Scheduler) { s.log = log }
}

// NewScheduler creates a Scheduler over an existing reminder store.
func NewScheduler(st *store.Store[Reminder], notifier notify.Notifier, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{store: st, notifier: notifier}
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	return s
}

// Flush waits for the reminder store's queued persistence writes.
func (s *Scheduler) Flush() { s.store.Flush() }

// List returns the reminders in insertion order.
func (s *Scheduler) List() []Reminder { return s.store.List() }

// Get returns the reminder with the given id.
func (s *Scheduler) Get(id string) (Reminder, error) { return s.store.Get(id) }

// Create stores a new reminder and, when its date is strictly in the
// future, schedules its notification. A reminder dated in the past is
// stored without ever being scheduled.
func (s *Scheduler) Create(ctx context.Context, draft Reminder) (Reminder, error) {
	draft.NotificationID = ""
	rec, err := s.store.Create(draft)
	if err != nil {
		return rec, err
	}
	return s.schedule(ctx, rec), nil
}

// Update replaces a reminder. The store update runs first, so a rejected
// draft leaves the record and its pending alert untouched. Once the
// replacement is accepted the previous notification is cancelled
// best-effort and the new date scheduled, so an edit never leaves two
// alerts pending.
func (s *Scheduler) Update(ctx context.Context, id string, draft Reminder) (Reminder, error) {
	prev, err := s.store.Get(id)
	if err != nil {
		return Reminder{}, err
	}

	draft.NotificationID = ""
	rec, err := s.store.Update(id, draft)
	if err != nil {
		return rec, err
	}

	s.cancel(ctx, prev)
	return s.schedule(ctx, rec), nil
}

// Delete cancels the reminder's pending notification best-effort and
// removes the record. Cancellation failure never blocks the removal, and
// deleting an absent id is a no-op.
func (s *Scheduler) Delete(ctx context.Context, id string) error {
	rec, err := s.store.Get(id)
	if err == nil {
		s.cancel(ctx, rec)
	} else if !store.IsNotFound(err) {
		return err
	}
	return s.store.Delete(id)
}

// RescheduleAll re-schedules the notification of every future-dated
// reminder, typically right after the collection is loaded at startup.
// A record that still carries a handle has it cancelled first so repeated
// restarts do not stack duplicate notifications. One record's failure does
// not abort the rest.
func (s *Scheduler) RescheduleAll(ctx context.Context) {
	for _, rec := range s.store.List() {
		if rec.NotificationID != "" {
			s.cancel(ctx, rec)
			rec.NotificationID = ""
			if updated, err := s.store.Update(rec.ID, rec); err == nil {
				rec = updated
			}
		}
		s.schedule(ctx, rec)
	}
}

// schedule requests a notification for rec when its date is strictly in
// the future and stores the returned handle on the record. On any failure
// the record is left as-is and the failure is logged.
func (s *Scheduler) schedule(ctx context.Context, rec Reminder) Reminder {
	if !rec.Date.After(s.clock()) {
		return rec
	}

	h, err := s.notifier.ScheduleAt(ctx, rec.Date, rec.Title, rec.Body)
	if err != nil {
		s.log.Warn("scheduling failed", "reminder", rec.ID, "title", rec.Title, "error", err)
		return rec
	}

	rec.NotificationID = h
	updated, err := s.store.Update(rec.ID, rec)
	if err != nil {
		s.log.Warn("failed to record notification handle", "reminder", rec.ID, "error", err)
		return rec
	}
	return updated
}

// cancel revokes rec's pending notification, if any, logging failures.
func (s *Scheduler) cancel(ctx context.Context, rec Reminder) {
	if rec.NotificationID == "" {
		return
	}
	if err := s.notifier.Cancel(ctx, rec.NotificationID); err != nil {
		s.log.Warn("cancellation failed", "reminder", rec.ID, "handle", string(rec.NotificationID), "error", err)
	}
}
