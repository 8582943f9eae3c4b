package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-habit-remind/internal/app"
)

type CategoryHandler struct {
	categories app.CategoryUseCase
}

func NewCategoryHandler(categories app.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{
		categories: categories,
	}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	output, err := h.categories.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromCategoriesDTO(output))
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)

		return
	}

	output, err := h.categories.CreateCategory(ctx, app.CreateCategoryInput{Name: req.Name})
	if err != nil {
		respondError(c, err)

		return
	}

	slog.InfoContext(ctx, "category created successfully",
		"category_id", output.ID,
	)
	c.JSON(http.StatusCreated, CategoryResponse(output))
}

func (h *CategoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	categories := router.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.POST("", h.CreateCategory)
	}
}
