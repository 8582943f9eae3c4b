package domain

import "fmt"

type TriggerType string

const (
	TriggerTypeTimeInterval TriggerType = "time_interval"
	TriggerTypeDaily        TriggerType = "daily"
	TriggerTypeWeekly       TriggerType = "weekly"
)

// Trigger describes when the notification scheduler fires a notification.
type Trigger interface {
	Type() TriggerType
	String() string
}

// TimeIntervalTrigger fires Seconds after registration, and again every
// Seconds when Repeats is set. A non-repeating one is a one-shot.
type TimeIntervalTrigger struct {
	Seconds int
	Repeats bool
}

type DailyTrigger struct {
	Hour   int
	Minute int
}

type WeeklyTrigger struct {
	Weekday int
	Hour    int
	Minute  int
}

func (TimeIntervalTrigger) Type() TriggerType { return TriggerTypeTimeInterval }
func (DailyTrigger) Type() TriggerType        { return TriggerTypeDaily }
func (WeeklyTrigger) Type() TriggerType       { return TriggerTypeWeekly }

func (t TimeIntervalTrigger) String() string {
	if t.Repeats {
		return fmt.Sprintf("every %ds", t.Seconds)
	}

	return fmt.Sprintf("once in %ds", t.Seconds)
}

func (t DailyTrigger) String() string {
	return fmt.Sprintf("daily at %02d:%02d", t.Hour, t.Minute)
}

func (t WeeklyTrigger) String() string {
	return fmt.Sprintf("weekly on %s at %02d:%02d", WeekdayName(t.Weekday), t.Hour, t.Minute)
}

// TriggerSpec pairs a trigger with the suffix that makes its notification
// identifier unique within one reminder.
type TriggerSpec struct {
	IdentifierSuffix string
	Trigger          Trigger
}
