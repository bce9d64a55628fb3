package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"mug-store/internal/domain/dto"
	"mug-store/internal/domain/models"
	"mug-store/internal/middlewares"
	"mug-store/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CategoryService interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id string) (models.Category, error)
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	UpdateCategory(ctx context.Context, id string, patch models.CategoryPatch) (models.Category, error)
	DeleteCategory(ctx context.Context, id string) (models.Category, error)
}

type CategoryHandler struct {
	log             *slog.Logger
	categoryService CategoryService
	validator       *middlewares.Validator
}

func NewCategoryHandler(log *slog.Logger, categoryService CategoryService, validator *middlewares.Validator) *CategoryHandler {
	return &CategoryHandler{
		log:             log,
		categoryService: categoryService,
		validator:       validator,
	}
}

// ListCategories godoc
// @Summary List all mug categories
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	const op = "handlers.CategoryHandler.ListCategories"

	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		writeInternal(c, h.log, op, err)
		return
	}

	c.JSON(http.StatusOK, dto.CategoriesResponse{Categories: categories})
}

// GetCategory godoc
// @Summary Get category by ID
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /category/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	const op = "handlers.CategoryHandler.GetCategory"

	id, ok := pathID(c)
	if !ok {
		return
	}

	category, err := h.categoryService.GetCategory(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: msgCategoryNotFound})
			return
		}
		writeInternal(c, h.log, op, err)
		return
	}

	c.JSON(http.StatusOK, dto.CategoryResponse{Category: &category})
}

// CreateCategory godoc
// @Summary Create a category
// @Description The ID is generated by the server.
// @Tags categories
// @Accept json
// @Produce json
// @Param category body dto.CreateCategoryRequest true "Category"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /category [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	const op = "handlers.CategoryHandler.CreateCategory"

	var input dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		writeBindError(c, middlewares.BindError(err))
		return
	}

	input.ID = uuid.NewString()
	if err := h.validator.Validate(input); err != nil {
		writeBindError(c, err)
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), input.ToModel())
	if err != nil {
		writeInternal(c, h.log, op, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CategoryResponse{Category: &category})
}

// UpdateCategory godoc
// @Summary Update a category
// @Description Only "name" can be changed. An unknown ID yields {"category": null}.
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body dto.UpdateCategoryRequest true "Fields to change"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /category/{id} [patch]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	const op = "handlers.CategoryHandler.UpdateCategory"

	id, ok := pathID(c)
	if !ok {
		return
	}

	var input dto.UpdateCategoryRequest
	if err := bindPatch(c, h.validator, &input); err != nil {
		if !writeBindError(c, err) {
			writeInternal(c, h.log, op, err)
		}
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), id, input.ToPatch())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusOK, dto.CategoryResponse{})
			return
		}
		writeInternal(c, h.log, op, err)
		return
	}

	c.JSON(http.StatusOK, dto.CategoryResponse{Category: &category})
}

// DeleteCategory godoc
// @Summary Delete a category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /category/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	const op = "handlers.CategoryHandler.DeleteCategory"

	id, ok := pathID(c)
	if !ok {
		return
	}

	category, err := h.categoryService.DeleteCategory(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: msgCategoryNotFound})
			return
		}
		writeInternal(c, h.log, op, err)
		return
	}

	c.JSON(http.StatusOK, dto.CategoryResponse{Category: &category})
}
