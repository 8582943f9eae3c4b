package domain

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

type CompletionSource string

const (
	CompletionSourceInApp        CompletionSource = "in_app"
	CompletionSourceNotification CompletionSource = "notification"
)

func NewCompletionSource(s string) (CompletionSource, error) {
	switch s {
	case "":
		return CompletionSourceInApp, nil
	case string(CompletionSourceInApp), string(CompletionSourceNotification):
		return CompletionSource(s), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidCompletionSource, s)
	}
}

// Completion is one entry of the append-only completion log.
type Completion struct {
	id             CompletionID
	reminderID     ReminderID
	completedAt    time.Time
	source         CompletionSource
	occurrenceDate civil.Date
}

// NewCompletion stamps the occurrence date from completedAt in loc. The
// stored date stays authoritative even if the device zone changes later.
func NewCompletion(
	reminderID ReminderID,
	completedAt time.Time,
	source CompletionSource,
	loc *time.Location,
) (*Completion, error) {
	if reminderID.IsZero() {
		return nil, ErrInvalidReminderID
	}

	completedAt = completedAt.Truncate(time.Millisecond)

	return &Completion{
		id:             NewCompletionID(),
		reminderID:     reminderID,
		completedAt:    completedAt,
		source:         source,
		occurrenceDate: DayKey(completedAt, loc),
	}, nil
}

// ReconstituteCompletion accepts a zero occurrenceDate for records written
// before the field existed.
func ReconstituteCompletion(
	id CompletionID,
	reminderID ReminderID,
	completedAt time.Time,
	source CompletionSource,
	occurrenceDate civil.Date,
) *Completion {
	return &Completion{
		id:             id,
		reminderID:     reminderID,
		completedAt:    completedAt,
		source:         source,
		occurrenceDate: occurrenceDate,
	}
}

func (c *Completion) ID() CompletionID {
	return c.id
}

func (c *Completion) ReminderID() ReminderID {
	return c.reminderID
}

func (c *Completion) CompletedAt() time.Time {
	return c.completedAt
}

func (c *Completion) Source() CompletionSource {
	return c.source
}

// OccurrenceDate returns the stored date and false when none was recorded.
func (c *Completion) OccurrenceDate() (civil.Date, bool) {
	return c.occurrenceDate, c.occurrenceDate != (civil.Date{})
}

// DayKey is the local day the completion counts toward: the stored
// occurrence date, else completedAt seen from loc.
func (c *Completion) DayKey(loc *time.Location) civil.Date {
	if d, ok := c.OccurrenceDate(); ok {
		return d
	}

	return DayKey(c.completedAt, loc)
}
