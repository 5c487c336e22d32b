package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dino-explorer/internal/app"
	"dino-explorer/internal/model"
)

type DinosaurHandler struct {
	*ResourceHandler[model.Dinosaur]
	service *app.DinosaurService
}

func NewDinosaurHandler(service *app.DinosaurService) *DinosaurHandler {
	return &DinosaurHandler{
		ResourceHandler: NewResourceHandler[model.Dinosaur](service),
		service:         service,
	}
}

func (h *DinosaurHandler) ByLocation(c *gin.Context) {
	locationID, err := app.ParseID(c.Param("locationId"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	rows, err := h.service.GetByLocation(locationID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
