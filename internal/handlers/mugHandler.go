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

type MugService interface {
	ListMugs(ctx context.Context) ([]models.Mug, error)
	GetMug(ctx context.Context, id string) (models.Mug, error)
	CreateMug(ctx context.Context, mug models.Mug) (models.Mug, error)
	UpdateMug(ctx context.Context, id string, patch models.MugPatch) (models.Mug, error)
	DeleteMug(ctx context.Context, id string) (models.Mug, error)
}

type MugHandler struct {
	log        *slog.Logger
	mugService MugService
	validator  *middlewares.Validator
}

func NewMugHandler(log *slog.Logger, mugService MugService, validator *middlewares.Validator) *MugHandler {
	return &MugHandler{
		log:        log,
		mugService: mugService,
		validator:  validator,
	}
}

// ListMugs godoc
// @Summary Get a list of all mugs
// @Tags mugs
// @Produce json
// @Success 200 {object} dto.MugsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /mugs [get]
func (h *MugHandler) ListMugs(c *gin.Context) {
	const op = "handlers.MugHandler.ListMugs"

	mugs, err := h.mugService.ListMugs(c.Request.Context())
	if err != nil {
		writeInternal(c, h.log, op, err)
		return
	}

	c.JSON(http.StatusOK, dto.MugsResponse{Mugs: mugs})
}

// GetMug godoc
// @Summary Get mug by ID
// @Tags mugs
// @Produce json
// @Param id path string true "Mug ID"
// @Success 200 {object} dto.MugResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /mug/{id} [get]
func (h *MugHandler) GetMug(c *gin.Context) {
	const op = "handlers.MugHandler.GetMug"

	id, ok := pathID(c)
	if !ok {
		return
	}

	mug, err := h.mugService.GetMug(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: msgMugNotFound})
			return
		}
		writeInternal(c, h.log, op, err)
		return
	}

	c.JSON(http.StatusOK, dto.MugResponse{Mug: &mug})
}

// CreateMug godoc
// @Summary Create a mug
// @Description The ID and timestamps are set by the server.
// @Tags mugs
// @Accept json
// @Produce json
// @Param mug body dto.CreateMugRequest true "Mug"
// @Success 201 {object} dto.MugResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /mug [post]
func (h *MugHandler) CreateMug(c *gin.Context) {
	const op = "handlers.MugHandler.CreateMug"

	var input dto.CreateMugRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		writeBindError(c, middlewares.BindError(err))
		return
	}

	input.ID = uuid.NewString()
	if err := h.validator.Validate(input); err != nil {
		writeBindError(c, err)
		return
	}

	mug, err := h.mugService.CreateMug(c.Request.Context(), input.ToModel())
	if err != nil {
		writeInternal(c, h.log, op, err)
		return
	}

	c.JSON(http.StatusCreated, dto.MugResponse{Mug: &mug})
}

// UpdateMug godoc
// @Summary Update a mug
// @Description Accepts name, description, price, image and category_id. updatedAt is always set by the server.
// @Description An unknown ID yields {"mug": null}.
// @Tags mugs
// @Accept json
// @Produce json
// @Param id path string true "Mug ID"
// @Param mug body dto.UpdateMugRequest true "Fields to change"
// @Success 200 {object} dto.MugResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /mug/{id} [patch]
func (h *MugHandler) UpdateMug(c *gin.Context) {
	const op = "handlers.MugHandler.UpdateMug"

	id, ok := pathID(c)
	if !ok {
		return
	}

	var input dto.UpdateMugRequest
	if err := bindPatch(c, h.validator, &input); err != nil {
		if !writeBindError(c, err) {
			writeInternal(c, h.log, op, err)
		}
		return
	}

	mug, err := h.mugService.UpdateMug(c.Request.Context(), id, input.ToPatch())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusOK, dto.MugResponse{})
			return
		}
		writeInternal(c, h.log, op, err)
		return
	}

	c.JSON(http.StatusOK, dto.MugResponse{Mug: &mug})
}

// DeleteMug godoc
// @Summary Delete a mug
// @Tags mugs
// @Produce json
// @Param id path string true "Mug ID"
// @Success 200 {object} dto.MugResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /mug/{id} [delete]
func (h *MugHandler) DeleteMug(c *gin.Context) {
	const op = "handlers.MugHandler.DeleteMug"

	id, ok := pathID(c)
	if !ok {
		return
	}

	mug, err := h.mugService.DeleteMug(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: msgMugNotFound})
			return
		}
		writeInternal(c, h.log, op, err)
		return
	}

	c.JSON(http.StatusOK, dto.MugResponse{Mug: &mug})
}
