package handler

import (
	"encoding/json"
	"time"
)

type ScheduleRequest struct {
	Kind     string   `json:"kind"`
	Value    int      `json:"value"`
	Unit     string   `json:"unit"`
	Times    []string `json:"times"`
	Weekdays []int    `json:"weekdays"`
}

type AlertRequest struct {
	Ringtone  string `json:"ringtone"`
	Vibration string `json:"vibration"`
}

type CreateReminderRequest struct {
	Title      string          `json:"title" binding:"required"`
	Schedule   ScheduleRequest `json:"schedule"`
	Alert      AlertRequest    `json:"alert"`
	CategoryID string          `json:"category_id"`
	Enabled    *bool           `json:"enabled"`
}

// UpdateReminderRequest replaces every editable field.
type UpdateReminderRequest struct {
	Title      string          `json:"title" binding:"required"`
	Schedule   ScheduleRequest `json:"schedule"`
	Alert      AlertRequest    `json:"alert"`
	CategoryID string          `json:"category_id"`
}

type SetEnabledRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

type UpcomingRequest struct {
	Count int `form:"count" binding:"omitempty,min=1,max=50"`
}

// ImportRemindersRequest carries stored reminder documents verbatim.
type ImportRemindersRequest struct {
	Records []json.RawMessage `json:"records" binding:"required,min=1"`
}

type RecordCompletionRequest struct {
	Source      string     `json:"source" binding:"omitempty,oneof=in_app notification"`
	CompletedAt *time.Time `json:"completed_at"`
}

type SnoozeRequest struct {
	DurationMinutes int `json:"duration_minutes"`
}

type NotificationActionRequest struct {
	ReminderID string `json:"reminder_id" binding:"required"`
	ActionID   string `json:"action_id" binding:"required"`
}

type StatsRequest struct {
	Days int `form:"days" binding:"omitempty,min=1,max=366"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}
