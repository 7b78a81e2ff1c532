package planner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/arthur-debert/planner/auth"
	"github.com/arthur-debert/planner/notify"
	"github.com/arthur-debert/planner/remind"
	"github.com/arthur-debert/planner/storage"
	"github.com/arthur-debert/planner/store"
)

// App is a fully wired planner: every collection store, the reminder
// scheduler and the identity service, all over one key-value backend.
type App struct {
	Courses      *store.Store[Course]
	Assignments  *store.Store[Assignment]
	GradeCourses *GradeCourseStore
	Calc         *CalcHistory
	Reminders    *remind.Scheduler
	Auth         *auth.Service

	kv  storage.KV
	log *slog.Logger
}

// AppOption configures an App.
type AppOption func(*App)

// WithLogger sets the logger shared by the app's components.
func WithLogger(log *slog.Logger) AppOption {
	return func(a *App) { a.log = log }
}

// Open assembles an App over kv and notifier. It requests notification
// permission (denial is logged, not fatal) and re-schedules every loaded
// future-dated reminder, mirroring what the app screens did at startup.
// The App takes ownership of kv and closes it on Close.
func Open(ctx context.Context, kv storage.KV, notifier notify.Notifier, opts ...AppOption) (*App, error) {
	a := &App{kv: kv}
	for _, opt := range opts {
		opt(a)
	}
	if a.log == nil {
		a.log = slog.Default()
	}

	var err error
	if a.Courses, err = NewCourseStore(kv, store.WithLogger[Course](a.log)); err != nil {
		return nil, fmt.Errorf("failed to open course store: %w", err)
	}
	if a.Assignments, err = NewAssignmentStore(kv, store.WithLogger[Assignment](a.log)); err != nil {
		return nil, fmt.Errorf("failed to open assignment store: %w", err)
	}
	if a.GradeCourses, err = NewGradeCourseStore(kv, []store.Option[GradeCourse]{store.WithLogger[GradeCourse](a.log)}); err != nil {
		return nil, fmt.Errorf("failed to open grade course store: %w", err)
	}
	if a.Calc, err = NewCalcHistory(kv, WithCalcLogger(a.log)); err != nil {
		return nil, fmt.Errorf("failed to open calculator history: %w", err)
	}

	reminders, err := remind.NewStore(kv, store.WithLogger[remind.Reminder](a.log))
	if err != nil {
		return nil, fmt.Errorf("failed to open reminder store: %w", err)
	}
	a.Reminders = remind.NewScheduler(reminders, notifier, remind.WithLogger(a.log))
	a.Auth = auth.NewService(kv, auth.WithLogger(a.log))

	if err := notifier.RequestPermission(ctx); err != nil {
		a.log.Warn("notification permission denied, reminders will not alert", "error", err)
	}
	a.Reminders.RescheduleAll(ctx)

	return a, nil
}

// Flush waits for every queued persistence write across the collections.
func (a *App) Flush() {
	a.Courses.Flush()
	a.Assignments.Flush()
	a.GradeCourses.Flush()
	a.Reminders.Flush()
}

// Close flushes pending writes and closes the backend.
func (a *App) Close() error {
	a.Flush()
	if err := a.Courses.Close(); err != nil {
		return err
	}
	if err := a.Assignments.Close(); err != nil {
		return err
	}
	if err := a.GradeCourses.Close(); err != nil {
		return err
	}
	return a.kv.Close()
}
