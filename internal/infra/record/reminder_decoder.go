package record

import (
	"fmt"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/KasumiMercury/primind-habit-remind/internal/domain"
)

// Schema versions a stored reminder can be in.
const (
	// VersionIntervalType is the first shape: intervalType / dailyTime /
	// customIntervalMinutes and a soundEnabled flag instead of a ringtone.
	VersionIntervalType = 1
	// VersionSchedule carries a "schedule" object discriminated by "kind".
	VersionSchedule = 2

	legacyDefaultIntervalMinutes = 60
)

// DecodeResult is either Decoded or Unrecognized.
type DecodeResult interface {
	decodeResult()
}

type Decoded struct {
	Version  int
	Reminder *domain.Reminder
}

// Unrecognized holds a record no known schema accepted. Reason lists why
// each schema rejected it.
type Unrecognized struct {
	Reason string
	Raw    []byte
}

func (Decoded) decodeResult()      {}
func (Unrecognized) decodeResult() {}

type schemaDecoder struct {
	version int
	decode  func(doc gjson.Result) (domain.Schedule, error)
}

// schemaDecoders is ordered newest first.
var schemaDecoders = []schemaDecoder{
	{version: VersionSchedule, decode: decodeScheduleObject},
	{version: VersionIntervalType, decode: decodeIntervalType},
}

// DecodeReminder tries the current schema first, then each older one. A
// record is never half accepted: any mistyped field fails that schema, and
// a record no schema accepts is Unrecognized with every schema's reason.
func DecodeReminder(raw []byte) DecodeResult {
	if !gjson.ValidBytes(raw) {
		return Unrecognized{Reason: "invalid JSON", Raw: raw}
	}

	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return Unrecognized{Reason: "record is not an object", Raw: raw}
	}

	reasons := make([]string, 0, len(schemaDecoders))

	for _, d := range schemaDecoders {
		reminder, err := decodeWith(doc, d)
		if err != nil {
			reasons = append(reasons, fmt.Sprintf("v%d: %v", d.version, err))

			continue
		}

		return Decoded{Version: d.version, Reminder: reminder}
	}

	return Unrecognized{Reason: strings.Join(reasons, "; "), Raw: raw}
}

func decodeWith(doc gjson.Result, d schemaDecoder) (*domain.Reminder, error) {
	schedule, err := d.decode(doc)
	if err != nil {
		return nil, err
	}

	return decodeCommon(doc, schedule)
}

func decodeCommon(doc gjson.Result, schedule domain.Schedule) (*domain.Reminder, error) {
	idField, err := requireType(doc, "id", gjson.String)
	if err != nil {
		return nil, err
	}

	id, err := domain.ReminderIDFromString(idField.String())
	if err != nil {
		return nil, fmt.Errorf("id: %w", err)
	}

	title, err := requireType(doc, "title", gjson.String)
	if err != nil {
		return nil, err
	}

	enabled := doc.Get("enabled")
	if enabled.Type != gjson.True && enabled.Type != gjson.False {
		return nil, fmt.Errorf("enabled: expected boolean")
	}

	createdAtField, err := requireType(doc, "createdAt", gjson.Number)
	if err != nil {
		return nil, err
	}

	createdAt := time.UnixMilli(createdAtField.Int())

	updatedAt := createdAt
	if u := doc.Get("updatedAt"); u.Exists() {
		if u.Type != gjson.Number {
			return nil, fmt.Errorf("updatedAt: expected number")
		}

		updatedAt = time.UnixMilli(u.Int())
	}

	alert, err := decodeAlert(doc)
	if err != nil {
		return nil, err
	}

	var categoryID domain.CategoryID
	if c := doc.Get("categoryId"); c.Exists() && c.Type != gjson.Null {
		if c.Type != gjson.String {
			return nil, fmt.Errorf("categoryId: expected string")
		}

		if c.String() != "" {
			categoryID, err = domain.CategoryIDFromString(c.String())
			if err != nil {
				return nil, fmt.Errorf("categoryId: %w", err)
			}
		}
	}

	return domain.ReconstituteReminder(
		id,
		title.String(),
		enabled.Bool(),
		schedule,
		alert,
		categoryID,
		createdAt,
		updatedAt,
	), nil
}

// decodeAlert reads the ringtone, or derives it from the soundEnabled flag
// of older records.
func decodeAlert(doc gjson.Result) (domain.AlertConfig, error) {
	ringtone := domain.RingtoneDefault

	if r := doc.Get("ringtone"); r.Exists() {
		if r.Type != gjson.String {
			return domain.AlertConfig{}, fmt.Errorf("ringtone: expected string")
		}

		ringtone = r.String()
	} else if s := doc.Get("soundEnabled"); s.Exists() && s.Type == gjson.False {
		ringtone = domain.RingtoneNone
	}

	vibration := ""
	if v := doc.Get("vibration"); v.Exists() {
		if v.Type != gjson.String {
			return domain.AlertConfig{}, fmt.Errorf("vibration: expected string")
		}

		vibration = v.String()
	}

	v, err := domain.NewVibrationPattern(vibration)
	if err != nil {
		return domain.AlertConfig{}, fmt.Errorf("vibration: %w", err)
	}

	return domain.AlertConfig{Ringtone: ringtone, Vibration: v}, nil
}

func decodeScheduleObject(doc gjson.Result) (domain.Schedule, error) {
	s := doc.Get("schedule")
	if !s.Exists() {
		return nil, fmt.Errorf("schedule: missing")
	}

	if !s.IsObject() {
		return nil, fmt.Errorf("schedule: expected object")
	}

	kind, err := requireType(s, "kind", gjson.String)
	if err != nil {
		return nil, fmt.Errorf("schedule.%w", err)
	}

	switch domain.ScheduleKind(kind.String()) {
	case domain.ScheduleKindInterval:
		value, err := requireInt(s, "value")
		if err != nil {
			return nil, fmt.Errorf("schedule.%w", err)
		}

		unitField, err := requireType(s, "unit", gjson.String)
		if err != nil {
			return nil, fmt.Errorf("schedule.%w", err)
		}

		unit, err := domain.NewIntervalUnit(unitField.String())
		if err != nil {
			return nil, fmt.Errorf("schedule.unit: %w", err)
		}

		return domain.IntervalSchedule{Value: value, Unit: unit}, nil

	case domain.ScheduleKindDaily:
		times, err := stringArray(s, "times")
		if err != nil {
			return nil, fmt.Errorf("schedule.%w", err)
		}

		return domain.DailySchedule{Times: times}, nil

	case domain.ScheduleKindWeekly:
		weekdays, err := weekdayArray(s, "weekdays")
		if err != nil {
			return nil, fmt.Errorf("schedule.%w", err)
		}

		times, err := stringArray(s, "times")
		if err != nil {
			return nil, fmt.Errorf("schedule.%w", err)
		}

		return domain.WeeklySchedule{Weekdays: weekdays, Times: times}, nil

	default:
		return nil, fmt.Errorf("schedule.kind: unknown %q", kind.String())
	}
}

func decodeIntervalType(doc gjson.Result) (domain.Schedule, error) {
	intervalType, err := requireType(doc, "intervalType", gjson.String)
	if err != nil {
		return nil, err
	}

	switch intervalType.String() {
	case "hourly":
		return domain.IntervalSchedule{Value: legacyDefaultIntervalMinutes, Unit: domain.IntervalUnitMinutes}, nil

	case "daily":
		t := doc.Get("dailyTime")
		if t.Exists() && t.Type != gjson.String && t.Type != gjson.Null {
			return nil, fmt.Errorf("dailyTime: expected string")
		}

		dailyTime := t.String()
		if dailyTime == "" {
			dailyTime = domain.DefaultClockTime
		}

		return domain.DailySchedule{Times: []string{dailyTime}}, nil

	case "custom":
		minutes := legacyDefaultIntervalMinutes

		switch m := doc.Get("customIntervalMinutes"); m.Type {
		case gjson.Number:
			if n := int(m.Int()); n != 0 {
				minutes = max(1, n)
			}
		case gjson.Null:
			// absent, keep the default
		default:
			return nil, fmt.Errorf("customIntervalMinutes: expected number")
		}

		return domain.IntervalSchedule{Value: minutes, Unit: domain.IntervalUnitMinutes}, nil

	default:
		return nil, fmt.Errorf("intervalType: unknown %q", intervalType.String())
	}
}

func requireType(doc gjson.Result, field string, typ gjson.Type) (gjson.Result, error) {
	v := doc.Get(field)
	if !v.Exists() {
		return v, fmt.Errorf("%s: missing", field)
	}

	if v.Type != typ {
		return v, fmt.Errorf("%s: expected %s", field, typeName(typ))
	}

	return v, nil
}

func requireInt(doc gjson.Result, field string) (int, error) {
	v, err := requireType(doc, field, gjson.Number)
	if err != nil {
		return 0, err
	}

	if float64(v.Int()) != v.Float() {
		return 0, fmt.Errorf("%s: expected integer", field)
	}

	return int(v.Int()), nil
}

func stringArray(doc gjson.Result, field string) ([]string, error) {
	v := doc.Get(field)
	if !v.IsArray() {
		return nil, fmt.Errorf("%s: expected array", field)
	}

	out := make([]string, 0)

	for i, item := range v.Array() {
		if item.Type != gjson.String {
			return nil, fmt.Errorf("%s[%d]: expected string", field, i)
		}

		out = append(out, item.String())
	}

	return out, nil
}

func weekdayArray(doc gjson.Result, field string) ([]int, error) {
	v := doc.Get(field)
	if !v.IsArray() {
		return nil, fmt.Errorf("%s: expected array", field)
	}

	out := make([]int, 0)

	for i, item := range v.Array() {
		if item.Type != gjson.Number || float64(item.Int()) != item.Float() {
			return nil, fmt.Errorf("%s[%d]: expected integer", field, i)
		}

		d := int(item.Int())
		if d < 1 || d > 7 {
			return nil, fmt.Errorf("%s[%d]: %w", field, i, domain.ErrInvalidWeekday)
		}

		out = append(out, d)
	}

	return out, nil
}

func typeName(typ gjson.Type) string {
	switch typ {
	case gjson.String:
		return "string"
	case gjson.Number:
		return "number"
	case gjson.JSON:
		return "object"
	default:
		return typ.String()
	}
}
