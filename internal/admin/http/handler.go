package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roomly/booking-backend/internal/admin"
	"github.com/roomly/booking-backend/internal/pkg/response"
)

type Handler struct {
	service admin.Service
}

func NewHandler(service admin.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Reset(c *gin.Context) {
	if err := h.service.ResetDatabase(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "database cleared"})
}
