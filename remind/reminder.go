// Package remind owns the reminder collection and the adapter that bridges
// it to the external notification collaborator: create a reminder and a
// notification is requested for its instant, delete it and the pending
// notification is cancelled, reload the collection and every future-dated
// reminder is scheduled again.
package remind

import (
	"time"

	"github.com/arthur-debert/planner/internal/validation"
	"github.com/arthur-debert/planner/notify"
	"github.com/arthur-debert/planner/storage"
	"github.com/arthur-debert/planner/store"
)

// Key is the fixed storage key the reminder collection persists under.
const Key = "reminders"

// Reminder is one alert the user asked for.
type Reminder struct {
	ID    string    `json:"id"`
	Title string    `json:"title" validate:"notblank"`
	Body  string    `json:"body"`
	Date  time.Time `json:"date"`

	// NotificationID is the collaborator's handle for the scheduled
	// notification. Empty until scheduling succeeds.
	NotificationID notify.Handle `json:"notificationId,omitempty"`
}

func (r Reminder) RecordID() string { return r.ID }

func (r Reminder) WithRecordID(id string) Reminder {
	r.ID = id
	return r
}

// NewStore creates the reminder record store over kv.
func NewStore(kv storage.KV, opts ...store.Option[Reminder]) (*store.Store[Reminder], error) {
	return store.New(kv, store.Config[Reminder]{
		Key:      Key,
		Validate: func(r Reminder) error { return validation.Struct(r) },
	}, opts...)
}
