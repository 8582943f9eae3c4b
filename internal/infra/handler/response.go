package handler

import (
	"time"

	"github.com/KasumiMercury/primind-habit-remind/internal/app"
)

type ScheduleResponse struct {
	Kind     string   `json:"kind"`
	Value    int      `json:"value,omitempty"`
	Unit     string   `json:"unit,omitempty"`
	Times    []string `json:"times,omitempty"`
	Weekdays []int    `json:"weekdays,omitempty"`
	Label    string   `json:"label"`
}

type AlertResponse struct {
	Ringtone  string `json:"ringtone"`
	Vibration string `json:"vibration"`
	ChannelID string `json:"channel_id"`
}

type NotificationSyncResponse struct {
	Scheduled []string `json:"scheduled"`
	Cancelled []string `json:"cancelled"`
	Failed    []string `json:"failed"`
	Skipped   bool     `json:"skipped"`
}

type ReminderResponse struct {
	ID            string                    `json:"id"`
	Title         string                    `json:"title"`
	Enabled       bool                      `json:"enabled"`
	Schedule      ScheduleResponse          `json:"schedule"`
	Alert         AlertResponse             `json:"alert"`
	CategoryID    string                    `json:"category_id,omitempty"`
	CreatedAt     time.Time                 `json:"created_at"`
	UpdatedAt     time.Time                 `json:"updated_at"`
	Notifications *NotificationSyncResponse `json:"notifications,omitempty"`
}

type RemindersResponse struct {
	Reminders []ReminderResponse `json:"reminders"`
	Count     int32              `json:"count"`
}

type UpcomingResponse struct {
	ReminderID string      `json:"reminder_id"`
	Enabled    bool        `json:"enabled"`
	FireTimes  []time.Time `json:"fire_times"`
}

type ImportedRecordResponse struct {
	Index   int    `json:"index"`
	ID      string `json:"id"`
	Version int    `json:"version"`
	Created bool   `json:"created"`
}

type UnrecognizedRecordResponse struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

type ImportResponse struct {
	Imported     []ImportedRecordResponse     `json:"imported"`
	Unrecognized []UnrecognizedRecordResponse `json:"unrecognized"`
}

type CompletionResponse struct {
	ID             string    `json:"id"`
	ReminderID     string    `json:"reminder_id"`
	CompletedAt    time.Time `json:"completed_at"`
	Source         string    `json:"source"`
	OccurrenceDate string    `json:"occurrence_date,omitempty"`
}

type CompletionsResponse struct {
	Completions []CompletionResponse `json:"completions"`
	Count       int32                `json:"count"`
}

type StreakResponse struct {
	ReminderID string `json:"reminder_id"`
	Current    int    `json:"current"`
	Longest    int    `json:"longest"`
}

type SnoozeResponse struct {
	ReminderID string    `json:"reminder_id"`
	Identifier string    `json:"identifier,omitempty"`
	Seconds    int       `json:"seconds"`
	FireAt     time.Time `json:"fire_at,omitzero"`
	Scheduled  bool      `json:"scheduled"`
}

type ActionResponse struct {
	Kind       string              `json:"kind"`
	ReminderID string              `json:"reminder_id"`
	Completion *CompletionResponse `json:"completion,omitempty"`
	Snooze     *SnoozeResponse     `json:"snooze,omitempty"`
}

type DayCountResponse struct {
	Date  string `json:"date"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type StatsResponse struct {
	Total      int                `json:"total"`
	ThisWeek   int                `json:"this_week"`
	Percentage int                `json:"percentage"`
	Days       int                `json:"days"`
	Trend      []DayCountResponse `json:"trend"`
	AsOf       time.Time          `json:"as_of"`
}

type CategorySegmentResponse struct {
	// CategoryID is null for the uncategorized segment.
	CategoryID   *string `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Count        int     `json:"count"`
}

type DistributionResponse struct {
	Segments []CategorySegmentResponse `json:"segments"`
	Total    int                       `json:"total"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Count      int32              `json:"count"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func FromReminderDTO(output app.ReminderOutput) ReminderResponse {
	resp := ReminderResponse{
		ID:      output.ID,
		Title:   output.Title,
		Enabled: output.Enabled,
		Schedule: ScheduleResponse{
			Kind:     output.Schedule.Kind,
			Value:    output.Schedule.Value,
			Unit:     output.Schedule.Unit,
			Times:    output.Schedule.Times,
			Weekdays: output.Schedule.Weekdays,
			Label:    output.Schedule.Label,
		},
		Alert: AlertResponse{
			Ringtone:  output.Alert.Ringtone,
			Vibration: output.Alert.Vibration,
			ChannelID: output.Alert.ChannelID,
		},
		CategoryID: output.CategoryID,
		CreatedAt:  output.CreatedAt,
		UpdatedAt:  output.UpdatedAt,
	}

	if output.Notifications != nil {
		sync := fromSyncDTO(*output.Notifications)
		resp.Notifications = &sync
	}

	return resp
}

func FromRemindersDTO(output app.RemindersOutput) RemindersResponse {
	reminders := make([]ReminderResponse, 0, len(output.Reminders))
	for _, r := range output.Reminders {
		reminders = append(reminders, FromReminderDTO(r))
	}

	return RemindersResponse{
		Reminders: reminders,
		Count:     output.Count,
	}
}

func fromSyncDTO(output app.NotificationSyncOutput) NotificationSyncResponse {
	return NotificationSyncResponse{
		Scheduled: nonNil(output.Scheduled),
		Cancelled: nonNil(output.Cancelled),
		Failed:    nonNil(output.Failed),
		Skipped:   output.Skipped,
	}
}

func FromImportDTO(output app.ImportOutput) ImportResponse {
	resp := ImportResponse{
		Imported:     make([]ImportedRecordResponse, 0, len(output.Imported)),
		Unrecognized: make([]UnrecognizedRecordResponse, 0, len(output.Unrecognized)),
	}

	for _, r := range output.Imported {
		resp.Imported = append(resp.Imported, ImportedRecordResponse(r))
	}

	for _, r := range output.Unrecognized {
		resp.Unrecognized = append(resp.Unrecognized, UnrecognizedRecordResponse(r))
	}

	return resp
}

func FromCompletionDTO(output app.CompletionOutput) CompletionResponse {
	return CompletionResponse(output)
}

func FromCompletionsDTO(output app.CompletionsOutput) CompletionsResponse {
	completions := make([]CompletionResponse, 0, len(output.Completions))
	for _, c := range output.Completions {
		completions = append(completions, FromCompletionDTO(c))
	}

	return CompletionsResponse{
		Completions: completions,
		Count:       output.Count,
	}
}

func FromSnoozeDTO(output app.SnoozeOutput) SnoozeResponse {
	return SnoozeResponse(output)
}

func FromActionDTO(output app.ActionOutput) ActionResponse {
	resp := ActionResponse{
		Kind:       string(output.Kind),
		ReminderID: output.ReminderID,
	}

	if output.Completion != nil {
		c := FromCompletionDTO(*output.Completion)
		resp.Completion = &c
	}

	if output.Snooze != nil {
		s := FromSnoozeDTO(*output.Snooze)
		resp.Snooze = &s
	}

	return resp
}

func FromStatsDTO(output app.StatsOutput) StatsResponse {
	trend := make([]DayCountResponse, 0, len(output.Trend))
	for _, d := range output.Trend {
		trend = append(trend, DayCountResponse(d))
	}

	return StatsResponse{
		Total:      output.Total,
		ThisWeek:   output.ThisWeek,
		Percentage: output.Percentage,
		Days:       output.Days,
		Trend:      trend,
		AsOf:       output.AsOf,
	}
}

func FromDistributionDTO(output app.DistributionOutput) DistributionResponse {
	segments := make([]CategorySegmentResponse, 0, len(output.Segments))
	for _, s := range output.Segments {
		seg := CategorySegmentResponse{
			CategoryName: s.CategoryName,
			Count:        s.Count,
		}
		if s.CategoryID != "" {
			id := s.CategoryID
			seg.CategoryID = &id
		}

		segments = append(segments, seg)
	}

	return DistributionResponse{
		Segments: segments,
		Total:    output.Total,
	}
}

func FromCategoriesDTO(output app.CategoriesOutput) CategoriesResponse {
	categories := make([]CategoryResponse, 0, len(output.Categories))
	for _, c := range output.Categories {
		categories = append(categories, CategoryResponse(c))
	}

	return CategoriesResponse{
		Categories: categories,
		Count:      output.Count,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
