package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dino-explorer/internal/app"
	"dino-explorer/internal/model"
)

type UserHandler struct {
	*ResourceHandler[model.User]
	service *app.UserService
}

func NewUserHandler(service *app.UserService) *UserHandler {
	return &UserHandler{
		ResourceHandler: NewResourceHandler[model.User](service),
		service:         service,
	}
}

func (h *UserHandler) ByEmail(c *gin.Context) {
	user, err := h.service.GetByEmail(c.Param("email"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) ByUsername(c *gin.Context) {
	user, err := h.service.GetByUsername(c.Param("username"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
