package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-habit-remind/internal/observability/logging"
	"github.com/KasumiMercury/primind-habit-remind/internal/observability/middleware"
)

func TestGinSetsRequestScope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var (
		gotRequestID string
		gotModule    logging.Module
	)

	router := gin.New()
	router.Use(middleware.Gin(middleware.GinConfig{TracerName: "test"}))
	router.GET("/api/v1/reminders/:id/streak", func(c *gin.Context) {
		gotRequestID = logging.RequestIDFromContext(c.Request.Context())
		gotModule = logging.ModuleFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reminders/rem_1/streak", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	_, err := uuid.Parse(gotRequestID)
	require.NoError(t, err)
	assert.Equal(t, gotRequestID, w.Header().Get("x-request-id"))
	assert.Equal(t, logging.ModuleCompletion, gotModule)
}

func TestGinKeepsValidRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.Gin(middleware.GinConfig{TracerName: "test"}))
	router.GET("/api/v1/stats", func(c *gin.Context) { c.Status(http.StatusOK) })

	requestID := "0190b6a2-5c3e-7c4b-9a1f-2b3c4d5e6f70"

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	req.Header.Set("x-request-id", requestID)
	router.ServeHTTP(w, req)

	assert.Equal(t, requestID, w.Header().Get("x-request-id"))
}

func TestGinSkipPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.Gin(middleware.GinConfig{SkipPaths: []string{"/ping"}}))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Empty(t, w.Header().Get("x-request-id"))
}

func TestModuleForPath(t *testing.T) {
	tests := []struct {
		route    string
		expected logging.Module
	}{
		{route: "/api/v1/reminders", expected: logging.ModuleReminder},
		{route: "/api/v1/reminders/:id", expected: logging.ModuleReminder},
		{route: "/api/v1/reminders/:id/completions", expected: logging.ModuleCompletion},
		{route: "/api/v1/reminders/:id/streak", expected: logging.ModuleCompletion},
		{route: "/api/v1/reminders/:id/snooze", expected: logging.ModuleNotification},
		{route: "/api/v1/notifications/actions", expected: logging.ModuleNotification},
		{route: "/api/v1/stats/categories", expected: logging.ModuleStats},
		{route: "/api/v1/categories", expected: logging.ModuleCategory},
		{route: "/ping", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			assert.Equal(t, tt.expected, middleware.ModuleForPath(tt.route))
		})
	}
}
