package repository

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/KasumiMercury/primind-habit-remind/internal/domain"
	"github.com/KasumiMercury/primind-habit-remind/internal/infra/record"
)

// ScheduleJSONB stores a schedule in its tagged document form.
type ScheduleJSONB record.ScheduleDocument

func (s *ScheduleJSONB) Scan(value any) error {
	if value == nil {
		*s = ScheduleJSONB{}

		return nil
	}

	var data []byte

	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("failed to scan ScheduleJSONB: expected []byte or string")
	}

	return json.Unmarshal(data, (*record.ScheduleDocument)(s))
}

func (s ScheduleJSONB) Value() (driver.Value, error) {
	data, err := json.Marshal(record.ScheduleDocument(s))
	if err != nil {
		return nil, err
	}

	return string(data), nil
}

type ReminderModel struct {
	ID         string        `gorm:"column:id;type:varchar(255);primaryKey"`
	Title      string        `gorm:"column:title;type:text;not null"`
	Enabled    bool          `gorm:"column:enabled;type:boolean;not null;default:true;index:idx_reminders_enabled"`
	Schedule   ScheduleJSONB `gorm:"column:schedule;type:jsonb;not null"`
	Ringtone   string        `gorm:"column:ringtone;type:varchar(255);not null"`
	Vibration  string        `gorm:"column:vibration;type:varchar(32);not null"`
	CategoryID *string       `gorm:"column:category_id;type:varchar(255);index:idx_reminders_category_id"`
	CreatedAt  time.Time     `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt  time.Time     `gorm:"column:updated_at;type:timestamptz;not null;autoUpdateTime:false"`
}

func (ReminderModel) TableName() string {
	return "reminders"
}

func (m *ReminderModel) ToEntity() (*domain.Reminder, error) {
	id, err := domain.ReminderIDFromString(m.ID)
	if err != nil {
		return nil, err
	}

	schedule, err := record.ScheduleDocument(m.Schedule).Schedule()
	if err != nil {
		return nil, err
	}

	vibration, err := domain.NewVibrationPattern(m.Vibration)
	if err != nil {
		return nil, err
	}

	var categoryID domain.CategoryID
	if m.CategoryID != nil {
		categoryID, err = domain.CategoryIDFromString(*m.CategoryID)
		if err != nil {
			return nil, err
		}
	}

	return domain.ReconstituteReminder(
		id,
		m.Title,
		m.Enabled,
		schedule,
		domain.AlertConfig{Ringtone: m.Ringtone, Vibration: vibration},
		categoryID,
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}

func FromReminder(e *domain.Reminder) (*ReminderModel, error) {
	doc, err := record.NewScheduleDocument(e.Schedule())
	if err != nil {
		return nil, err
	}

	var categoryID *string
	if !e.CategoryID().IsZero() {
		s := e.CategoryID().String()
		categoryID = &s
	}

	return &ReminderModel{
		ID:         e.ID().String(),
		Title:      e.Title(),
		Enabled:    e.Enabled(),
		Schedule:   ScheduleJSONB(doc),
		Ringtone:   e.Alert().Ringtone,
		Vibration:  string(e.Alert().Vibration),
		CategoryID: categoryID,
		CreatedAt:  e.CreatedAt(),
		UpdatedAt:  e.UpdatedAt(),
	}, nil
}
