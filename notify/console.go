package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// consoleNotifier logs scheduling requests instead of delivering anything.
// It stands in for a platform notification engine when the planner runs as
// a plain CLI.
type consoleNotifier struct {
	log *slog.Logger
}

var _ Notifier = (*consoleNotifier)(nil)

// NewConsole creates a Notifier that records every request on log.
func NewConsole(log *slog.Logger) Notifier {
	if log == nil {
		log = slog.Default()
	}
	return &consoleNotifier{log: log}
}

func (n *consoleNotifier) RequestPermission(ctx context.Context) error {
	n.log.Info("notification permission granted (console)")
	return nil
}

func (n *consoleNotifier) ScheduleAt(ctx context.Context, at time.Time, title, body string) (Handle, error) {
	h := Handle(uuid.NewString())
	n.log.Info("notification scheduled",
		"handle", string(h), "at", at, "title", title, "body", body)
	return h, nil
}

func (n *consoleNotifier) Cancel(ctx context.Context, h Handle) error {
	n.log.Info("notification cancelled", "handle", string(h))
	return nil
}

func (n *consoleNotifier) CancelAll(ctx context.Context) error {
	n.log.Info("all notifications cancelled")
	return nil
}
