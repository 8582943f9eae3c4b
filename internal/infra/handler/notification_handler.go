package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-habit-remind/internal/app"
)

type NotificationHandler struct {
	notifications app.NotificationUseCase
	reminders     app.ReminderUseCase
}

func NewNotificationHandler(notifications app.NotificationUseCase, reminders app.ReminderUseCase) *NotificationHandler {
	return &NotificationHandler{
		notifications: notifications,
		reminders:     reminders,
	}
}

// HandleAction receives the user's response to a delivered notification.
func (h *NotificationHandler) HandleAction(c *gin.Context) {
	ctx := c.Request.Context()

	var req NotificationActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)

		return
	}

	output, err := h.notifications.HandleAction(ctx, app.HandleActionInput{
		ReminderID: req.ReminderID,
		ActionID:   req.ActionID,
	})
	if err != nil {
		respondError(c, err)

		return
	}

	slog.InfoContext(ctx, "notification action handled",
		"reminder_id", req.ReminderID,
		"action_id", req.ActionID,
		"kind", string(output.Kind),
	)
	c.JSON(http.StatusOK, FromActionDTO(output))
}

// Resync re-registers every stored reminder with the scheduler.
func (h *NotificationHandler) Resync(c *gin.Context) {
	output, err := h.reminders.Rehydrate(c.Request.Context())
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, fromSyncDTO(output))
}

func (h *NotificationHandler) RegisterRoutes(router *gin.RouterGroup) {
	notifications := router.Group("/notifications")
	{
		notifications.POST("/actions", h.HandleAction)
		notifications.POST("/resync", h.Resync)
	}
}
