package record

import (
	"encoding/json"
	"fmt"

	"github.com/KasumiMercury/primind-habit-remind/internal/domain"
)

// ScheduleDocument is the stored shape of a schedule, discriminated by Kind.
type ScheduleDocument struct {
	Kind     string   `json:"kind"`
	Value    int      `json:"value,omitempty"`
	Unit     string   `json:"unit,omitempty"`
	Times    []string `json:"times,omitempty"`
	Weekdays []int    `json:"weekdays,omitempty"`
}

func NewScheduleDocument(schedule domain.Schedule) (ScheduleDocument, error) {
	switch s := schedule.(type) {
	case domain.IntervalSchedule:
		return ScheduleDocument{
			Kind:  string(domain.ScheduleKindInterval),
			Value: s.Value,
			Unit:  string(s.Unit),
		}, nil
	case domain.DailySchedule:
		return ScheduleDocument{
			Kind:  string(domain.ScheduleKindDaily),
			Times: s.Times,
		}, nil
	case domain.WeeklySchedule:
		return ScheduleDocument{
			Kind:     string(domain.ScheduleKindWeekly),
			Weekdays: s.Weekdays,
			Times:    s.Times,
		}, nil
	default:
		return ScheduleDocument{}, fmt.Errorf("unsupported schedule type %T", schedule)
	}
}

// Schedule converts back without re-validating times; the compiler clamps
// whatever is stored.
func (d ScheduleDocument) Schedule() (domain.Schedule, error) {
	switch domain.ScheduleKind(d.Kind) {
	case domain.ScheduleKindInterval:
		unit, err := domain.NewIntervalUnit(d.Unit)
		if err != nil {
			return nil, err
		}

		return domain.IntervalSchedule{Value: d.Value, Unit: unit}, nil
	case domain.ScheduleKindDaily:
		return domain.DailySchedule{Times: d.Times}, nil
	case domain.ScheduleKindWeekly:
		return domain.WeeklySchedule{Weekdays: d.Weekdays, Times: d.Times}, nil
	default:
		return nil, fmt.Errorf("unknown schedule kind %q", d.Kind)
	}
}

func MarshalSchedule(schedule domain.Schedule) ([]byte, error) {
	doc, err := NewScheduleDocument(schedule)
	if err != nil {
		return nil, err
	}

	return json.Marshal(doc)
}

func UnmarshalSchedule(data []byte) (domain.Schedule, error) {
	var doc ScheduleDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode schedule: %w", err)
	}

	return doc.Schedule()
}
