package domain

import (
	"fmt"
	"strings"
)

const (
	DefaultClockTime = "09:00"

	defaultHour   = 9
	defaultMinute = 0
)

// ClockTime is a wall-clock time of day in the observer's zone.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime never fails. A missing or non-numeric component falls back
// to 9 (hour) or 0 (minute); each component is then clamped on its own, so
// "25:99" becomes 23:59.
func ParseClockTime(s string) ClockTime {
	parts := strings.Split(strings.TrimSpace(s), ":")

	hour := defaultHour
	if v, ok := parseLeadingInt(parts[0]); ok {
		hour = v
	}

	minute := defaultMinute
	if len(parts) > 1 {
		if v, ok := parseLeadingInt(parts[1]); ok {
			minute = v
		}
	}

	return ClockTime{
		Hour:   clamp(hour, 0, 23),
		Minute: clamp(minute, 0, 59),
	}
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// parseLeadingInt reads an optionally signed run of digits at the start of s
// and ignores whatever follows it ("08am" is 8).
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)

	sign := 1
	if s != "" && (s[0] == '-' || s[0] == '+') {
		if s[0] == '-' {
			sign = -1
		}

		s = s[1:]
	}

	value := 0
	digits := 0

	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		// saturate: anything this large is clamped by the caller anyway
		if value < 1_000_000 {
			value = value*10 + int(s[digits]-'0')
		}

		digits++
	}

	if digits == 0 {
		return 0, false
	}

	return sign * value, true
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
