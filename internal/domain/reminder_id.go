package domain

import (
	"strings"

	"github.com/google/uuid"
)

// ReminderID is an opaque, stable identifier. Identifiers imported from
// older clients (e.g. "rem_1700000000000_abc1234") are accepted as-is.
type ReminderID struct {
	value string
}

func NewReminderID() ReminderID {
	return ReminderID{value: uuid.Must(uuid.NewV7()).String()}
}

// ReminderIDFromString rejects "#" and ":" because both are separators in
// notification identifiers.
func ReminderIDFromString(s string) (ReminderID, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "#:") {
		return ReminderID{}, ErrInvalidReminderID
	}

	return ReminderID{value: s}, nil
}

func (r ReminderID) String() string {
	return r.value
}

func (r ReminderID) IsZero() bool {
	return r.value == ""
}

func (r ReminderID) Equals(other ReminderID) bool {
	return r.value == other.value
}
