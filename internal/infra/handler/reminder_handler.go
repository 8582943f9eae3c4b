package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-habit-remind/internal/app"
)

type ReminderHandler struct {
	reminders   app.ReminderUseCase
	completions app.CompletionUseCase
	notifier    app.NotificationUseCase
}

func NewReminderHandler(
	reminders app.ReminderUseCase,
	completions app.CompletionUseCase,
	notifier app.NotificationUseCase,
) *ReminderHandler {
	return &ReminderHandler{
		reminders:   reminders,
		completions: completions,
		notifier:    notifier,
	}
}

func (in ScheduleRequest) toInput() app.ScheduleInput {
	return app.ScheduleInput{
		Kind:     in.Kind,
		Value:    in.Value,
		Unit:     in.Unit,
		Times:    in.Times,
		Weekdays: in.Weekdays,
	}
}

func (in AlertRequest) toInput() app.AlertInput {
	return app.AlertInput{
		Ringtone:  in.Ringtone,
		Vibration: in.Vibration,
	}
}

func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)

		return
	}

	output, err := h.reminders.CreateReminder(ctx, app.CreateReminderInput{
		Title:      req.Title,
		Schedule:   req.Schedule.toInput(),
		Alert:      req.Alert.toInput(),
		CategoryID: req.CategoryID,
		Enabled:    req.Enabled,
	})
	if err != nil {
		respondError(c, err)

		return
	}

	slog.InfoContext(ctx, "reminder created successfully",
		"reminder_id", output.ID,
	)
	c.JSON(http.StatusCreated, FromReminderDTO(output))
}

func (h *ReminderHandler) ListReminders(c *gin.Context) {
	output, err := h.reminders.ListReminders(c.Request.Context())
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromRemindersDTO(output))
}

func (h *ReminderHandler) GetReminder(c *gin.Context) {
	output, err := h.reminders.GetReminder(c.Request.Context(), app.GetReminderInput{ID: c.Param("id")})
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromReminderDTO(output))
}

func (h *ReminderHandler) UpdateReminder(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var req UpdateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)

		return
	}

	output, err := h.reminders.UpdateReminder(ctx, app.UpdateReminderInput{
		ID:         id,
		Title:      req.Title,
		Schedule:   req.Schedule.toInput(),
		Alert:      req.Alert.toInput(),
		CategoryID: req.CategoryID,
	})
	if err != nil {
		respondError(c, err)

		return
	}

	slog.InfoContext(ctx, "reminder updated successfully",
		"reminder_id", id,
	)
	c.JSON(http.StatusOK, FromReminderDTO(output))
}

func (h *ReminderHandler) SetEnabled(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var req SetEnabledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)

		return
	}

	output, err := h.reminders.SetEnabled(ctx, app.SetEnabledInput{ID: id, Enabled: *req.Enabled})
	if err != nil {
		respondError(c, err)

		return
	}

	slog.InfoContext(ctx, "reminder enabled flag updated",
		"reminder_id", id,
		"enabled", output.Enabled,
	)
	c.JSON(http.StatusOK, FromReminderDTO(output))
}

func (h *ReminderHandler) DeleteReminder(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if err := h.reminders.DeleteReminder(ctx, app.DeleteReminderInput{ID: id}); err != nil {
		respondError(c, err)

		return
	}

	slog.InfoContext(ctx, "reminder deleted successfully",
		"reminder_id", id,
	)
	c.Status(http.StatusNoContent)
}

func (h *ReminderHandler) GetUpcoming(c *gin.Context) {
	var req UpcomingRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, err)

		return
	}

	output, err := h.reminders.GetUpcoming(c.Request.Context(), app.GetUpcomingInput{
		ID:    c.Param("id"),
		Count: req.Count,
	})
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, UpcomingResponse(output))
}

func (h *ReminderHandler) ImportReminders(c *gin.Context) {
	ctx := c.Request.Context()

	var req ImportRemindersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)

		return
	}

	records := make([][]byte, 0, len(req.Records))
	for _, r := range req.Records {
		records = append(records, r)
	}

	output, err := h.reminders.ImportReminders(ctx, app.ImportRemindersInput{Records: records})
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromImportDTO(output))
}

func (h *ReminderHandler) RecordCompletion(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	// an empty body records a completion now
	var req RecordCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondBindError(c, err)

		return
	}

	output, err := h.completions.RecordCompletion(ctx, app.RecordCompletionInput{
		ReminderID:  id,
		Source:      req.Source,
		CompletedAt: req.CompletedAt,
	})
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusCreated, FromCompletionDTO(output))
}

func (h *ReminderHandler) ListCompletions(c *gin.Context) {
	output, err := h.completions.ListCompletions(c.Request.Context(), app.ListCompletionsInput{ReminderID: c.Param("id")})
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromCompletionsDTO(output))
}

func (h *ReminderHandler) GetStreak(c *gin.Context) {
	output, err := h.completions.GetStreak(c.Request.Context(), app.GetStreakInput{ReminderID: c.Param("id")})
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, StreakResponse(output))
}

func (h *ReminderHandler) Snooze(c *gin.Context) {
	var req SnoozeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)

		return
	}

	output, err := h.notifier.Snooze(c.Request.Context(), app.SnoozeInput{
		ReminderID:      c.Param("id"),
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromSnoozeDTO(output))
}

func (h *ReminderHandler) RegisterRoutes(router *gin.RouterGroup) {
	reminders := router.Group("/reminders")
	{
		reminders.POST("", h.CreateReminder)
		reminders.GET("", h.ListReminders)
		reminders.POST("/import", h.ImportReminders)
		reminders.GET("/:id", h.GetReminder)
		reminders.PUT("/:id", h.UpdateReminder)
		reminders.DELETE("/:id", h.DeleteReminder)
		reminders.POST("/:id/enabled", h.SetEnabled)
		reminders.GET("/:id/upcoming", h.GetUpcoming)
		reminders.POST("/:id/completions", h.RecordCompletion)
		reminders.GET("/:id/completions", h.ListCompletions)
		reminders.GET("/:id/streak", h.GetStreak)
		reminders.POST("/:id/snooze", h.Snooze)
	}
}
