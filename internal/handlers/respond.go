package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"mug-store/internal/domain/dto"
	"mug-store/internal/middlewares"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	msgIDRequired       = "ID is required"
	msgNothingToUpdate  = "No data is being updated!"
	msgInternal         = "Internal Server Error"
	msgMugNotFound      = "Mug not found!"
	msgCategoryNotFound = "Category not found!"
)

type patchRequest interface {
	AllowedFields() []string
	Empty() bool
}

func pathID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: msgIDRequired})
		return "", false
	}

	return id, true
}

// bindPatch decodes a PATCH body into dst, rejecting empty bodies and keys dst does not allow.
func bindPatch(c *gin.Context, v *middlewares.Validator, dst patchRequest) error {
	body, err := c.GetRawData()
	if err != nil {
		return middlewares.BindError(err)
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return middlewares.ErrNothingToUpdate
	}

	var raw map[string]json.RawMessage
	if err := binding.JSON.BindBody(body, &raw); err != nil {
		return middlewares.BindError(err)
	}
	if err := middlewares.CheckPatch(raw, dst.AllowedFields()); err != nil {
		return err
	}

	if err := binding.JSON.BindBody(body, dst); err != nil {
		return middlewares.BindError(err)
	}
	if dst.Empty() {
		return middlewares.ErrNothingToUpdate
	}

	return v.Validate(dst)
}

// writeBindError answers a failed decode or validation. It reports false for
// errors it does not recognise.
func writeBindError(c *gin.Context, err error) bool {
	if errors.Is(err, middlewares.ErrNothingToUpdate) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgNothingToUpdate})
		return true
	}

	var fieldErr *middlewares.FieldError
	if errors.As(err, &fieldErr) {
		c.JSON(fieldErr.Status(), dto.ErrorResponse{Error: fieldErr.Error()})
		return true
	}

	return false
}

func writeInternal(c *gin.Context, log *slog.Logger, op string, err error) {
	log.Error("request failed",
		slog.String("op", op),
		slog.String("path", c.Request.URL.Path),
		slog.String("error", err.Error()),
	)
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msgInternal})
}
