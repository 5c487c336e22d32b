package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dino-explorer/internal/app"
	"dino-explorer/internal/model"
)

type EraHandler struct {
	*ResourceHandler[model.Era]
	service *app.EraService
}

func NewEraHandler(service *app.EraService) *EraHandler {
	return &EraHandler{
		ResourceHandler: NewResourceHandler[model.Era](service),
		service:         service,
	}
}

func (h *EraHandler) ByPeriod(c *gin.Context) {
	rows, err := h.service.GetByPeriod(c.Param("period"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
