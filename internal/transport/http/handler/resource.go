package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dino-explorer/internal/app"
	"dino-explorer/internal/transport/http/response"
)

// resourceAPI is the CRUD contract every entity service satisfies.
type resourceAPI[T any] interface {
	GetAll() ([]T, error)
	GetByID(id int64) (*T, error)
	Create(data map[string]any) (*T, error)
	Update(id int64, data map[string]any) (*T, error)
	Delete(id int64) error
}

// ResourceHandler translates the generic CRUD contract to HTTP for one
// entity type.
type ResourceHandler[T any] struct {
	svc resourceAPI[T]
}

func NewResourceHandler[T any](svc resourceAPI[T]) *ResourceHandler[T] {
	return &ResourceHandler[T]{svc: svc}
}

func (h *ResourceHandler[T]) List(c *gin.Context) {
	rows, err := h.svc.GetAll()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ResourceHandler[T]) Get(c *gin.Context) {
	id, err := app.ParseID(c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	row, err := h.svc.GetByID(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *ResourceHandler[T]) Create(c *gin.Context) {
	data, ok := bindPayload(c)
	if !ok {
		return
	}
	row, err := h.svc.Create(data)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *ResourceHandler[T]) Update(c *gin.Context) {
	id, err := app.ParseID(c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	data, ok := bindPayload(c)
	if !ok {
		return
	}
	row, err := h.svc.Update(id, data)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *ResourceHandler[T]) Delete(c *gin.Context) {
	id, err := app.ParseID(c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if err := h.svc.Delete(id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func bindPayload(c *gin.Context) (map[string]any, bool) {
	var data map[string]any
	if err := c.ShouldBindJSON(&data); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return nil, false
	}
	return data, true
}
