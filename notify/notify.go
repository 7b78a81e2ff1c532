// Package notify defines the notification collaborator the reminder
// scheduler talks to. The real delivery engine is external to the planner;
// this package carries the interface plus a console implementation for the
// CLI and an in-memory implementation for tests.
package notify

import (
	"context"
	"time"
)

// Handle is the opaque reference a Notifier returns for a scheduled
// notification, used later to cancel it.
type Handle string

// Notifier schedules and cancels notifications.
type Notifier interface {
	// RequestPermission asks the host for permission to deliver
	// notifications. Denial is reported to the user but never blocks
	// planner usage.
	RequestPermission(ctx context.Context) error

	// ScheduleAt requests a notification with the given title and body
	// at the given instant and returns its handle.
	ScheduleAt(ctx context.Context, at time.Time, title, body string) (Handle, error)

	// Cancel revokes a previously scheduled notification.
	Cancel(ctx context.Context, h Handle) error

	// CancelAll revokes every scheduled notification.
	CancelAll(ctx context.Context) error
}
