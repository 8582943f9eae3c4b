package domain

import (
	"strings"
	"time"
)

type Reminder struct {
	id         ReminderID
	title      string
	enabled    bool
	schedule   Schedule
	alert      AlertConfig
	categoryID CategoryID
	createdAt  time.Time
	updatedAt  time.Time
}

// NewReminder creates an enabled reminder. categoryID may be zero.
func NewReminder(
	title string,
	schedule Schedule,
	alert AlertConfig,
	categoryID CategoryID,
	now time.Time,
) (*Reminder, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyReminderTitle
	}

	if schedule == nil {
		return nil, ErrMissingSchedule
	}

	return &Reminder{
		id:         NewReminderID(),
		title:      title,
		enabled:    true,
		schedule:   schedule,
		alert:      alert,
		categoryID: categoryID,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstituteReminder(
	id ReminderID,
	title string,
	enabled bool,
	schedule Schedule,
	alert AlertConfig,
	categoryID CategoryID,
	createdAt time.Time,
	updatedAt time.Time,
) *Reminder {
	return &Reminder{
		id:         id,
		title:      title,
		enabled:    enabled,
		schedule:   schedule,
		alert:      alert,
		categoryID: categoryID,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Update replaces every editable field at once.
func (r *Reminder) Update(
	title string,
	schedule Schedule,
	alert AlertConfig,
	categoryID CategoryID,
	now time.Time,
) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyReminderTitle
	}

	if schedule == nil {
		return ErrMissingSchedule
	}

	r.title = title
	r.schedule = schedule
	r.alert = alert
	r.categoryID = categoryID
	r.updatedAt = now

	return nil
}

func (r *Reminder) SetEnabled(enabled bool, now time.Time) {
	if r.enabled == enabled {
		return
	}

	r.enabled = enabled
	r.updatedAt = now
}

func (r *Reminder) ID() ReminderID {
	return r.id
}

func (r *Reminder) Title() string {
	return r.title
}

func (r *Reminder) Enabled() bool {
	return r.enabled
}

func (r *Reminder) Schedule() Schedule {
	return r.schedule
}

func (r *Reminder) Alert() AlertConfig {
	return r.alert
}

// CategoryID is zero for uncategorized reminders.
func (r *Reminder) CategoryID() CategoryID {
	return r.categoryID
}

func (r *Reminder) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Reminder) UpdatedAt() time.Time {
	return r.updatedAt
}
