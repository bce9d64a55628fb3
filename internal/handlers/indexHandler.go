package handlers

import (
	"net/http"

	"mug-store/internal/domain/dto"

	"github.com/gin-gonic/gin"
)

const apiName = "The Mugs Store API"

var endpoints = []dto.Endpoint{
	{Path: "/", Method: http.MethodGet, Information: "Get this endpoints index"},
	{Path: "/mugs", Method: http.MethodGet, Information: "Get a list of all mugs"},
	{Path: "/mug/:id", Method: http.MethodGet, Information: "Get mug by ID"},
	{Path: "/mug", Method: http.MethodPost, Information: "Create a mug"},
	{Path: "/mug/:id", Method: http.MethodPatch, Information: "Update a mug"},
	{Path: "/mug/:id", Method: http.MethodDelete, Information: "Delete a mug"},
	{Path: "/categories", Method: http.MethodGet, Information: "List all mug categories"},
	{Path: "/category/:id", Method: http.MethodGet, Information: "Get category by ID"},
	{Path: "/category", Method: http.MethodPost, Information: "Create a category"},
	{Path: "/category/:id", Method: http.MethodPatch, Information: "Update a category"},
	{Path: "/category/:id", Method: http.MethodDelete, Information: "Delete a category"},
}

// Index godoc
// @Summary Get this endpoints index
// @Tags index
// @Produce json
// @Success 200 {object} dto.IndexResponse
// @Router / [get]
func Index(c *gin.Context) {
	c.JSON(http.StatusOK, dto.IndexResponse{
		Name:      apiName,
		Endpoints: endpoints,
	})
}

func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Not Found"})
}
