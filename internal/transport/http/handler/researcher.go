package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dino-explorer/internal/app"
	"dino-explorer/internal/model"
)

type ResearcherHandler struct {
	*ResourceHandler[model.Researcher]
	service *app.ResearcherService
}

func NewResearcherHandler(service *app.ResearcherService) *ResearcherHandler {
	return &ResearcherHandler{
		ResourceHandler: NewResourceHandler[model.Researcher](service),
		service:         service,
	}
}

func (h *ResearcherHandler) SearchByName(c *gin.Context) {
	rows, err := h.service.SearchByName(c.Param("name"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
