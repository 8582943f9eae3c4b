package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-habit-remind/internal/app"
)

type StatsHandler struct {
	stats app.StatsUseCase
}

func NewStatsHandler(stats app.StatsUseCase) *StatsHandler {
	return &StatsHandler{
		stats: stats,
	}
}

func (h *StatsHandler) GetStats(c *gin.Context) {
	var req StatsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, err)

		return
	}

	output, err := h.stats.GetStats(c.Request.Context(), app.GetStatsInput{Days: req.Days})
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromStatsDTO(output))
}

func (h *StatsHandler) GetCategoryDistribution(c *gin.Context) {
	output, err := h.stats.GetCategoryDistribution(c.Request.Context())
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromDistributionDTO(output))
}

func (h *StatsHandler) RegisterRoutes(router *gin.RouterGroup) {
	stats := router.Group("/stats")
	{
		stats.GET("", h.GetStats)
		stats.GET("/categories", h.GetCategoryDistribution)
	}
}
