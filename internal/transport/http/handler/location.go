package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dino-explorer/internal/app"
	"dino-explorer/internal/model"
)

type LocationHandler struct {
	*ResourceHandler[model.Location]
	service *app.LocationService
}

func NewLocationHandler(service *app.LocationService) *LocationHandler {
	return &LocationHandler{
		ResourceHandler: NewResourceHandler[model.Location](service),
		service:         service,
	}
}

func (h *LocationHandler) ByContinent(c *gin.Context) {
	rows, err := h.service.GetByContinent(c.Param("continent"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
