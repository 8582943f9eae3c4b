package repository

import (
	"time"

	"cloud.google.com/go/civil"

	"github.com/KasumiMercury/primind-habit-remind/internal/domain"
)

type CompletionModel struct {
	ID          string    `gorm:"column:id;type:uuid;primaryKey"`
	ReminderID  string    `gorm:"column:reminder_id;type:varchar(255);not null;index:idx_completions_reminder_id_completed_at,priority:1"`
	CompletedAt time.Time `gorm:"column:completed_at;type:timestamptz;not null;index:idx_completions_reminder_id_completed_at,priority:2"`
	Source      string    `gorm:"column:source;type:varchar(32);not null"`
	// OccurrenceDate is NULL for completions recorded before it existed.
	OccurrenceDate *time.Time `gorm:"column:occurrence_date;type:date"`
}

func (CompletionModel) TableName() string {
	return "completions"
}

func (m *CompletionModel) ToEntity() (*domain.Completion, error) {
	id, err := domain.CompletionIDFromString(m.ID)
	if err != nil {
		return nil, err
	}

	reminderID, err := domain.ReminderIDFromString(m.ReminderID)
	if err != nil {
		return nil, err
	}

	source, err := domain.NewCompletionSource(m.Source)
	if err != nil {
		return nil, err
	}

	var occurrence civil.Date
	if m.OccurrenceDate != nil {
		occurrence = civil.DateOf(*m.OccurrenceDate)
	}

	return domain.ReconstituteCompletion(id, reminderID, m.CompletedAt, source, occurrence), nil
}

func FromCompletion(e *domain.Completion) *CompletionModel {
	m := &CompletionModel{
		ID:          e.ID().String(),
		ReminderID:  e.ReminderID().String(),
		CompletedAt: e.CompletedAt(),
		Source:      string(e.Source()),
	}

	if d, ok := e.OccurrenceDate(); ok {
		t := d.In(time.UTC)
		m.OccurrenceDate = &t
	}

	return m
}
