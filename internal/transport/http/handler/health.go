package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dino-explorer/internal/bootstrap"
)

type HealthHandler struct {
	app *bootstrap.App
}

func NewHealthHandler(app *bootstrap.App) *HealthHandler {
	return &HealthHandler{app: app}
}

func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"uptime":    time.Since(h.app.StartedAt).String(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
