package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roomly/booking-backend/internal/analytics"
	"github.com/roomly/booking-backend/internal/pkg/response"
)

type Handler struct {
	service analytics.Service
}

func NewHandler(service analytics.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Summary(c *gin.Context) {
	rows, err := h.service.Summary(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		response.Error(c, err)
		return
	}

	if rows == nil {
		rows = []analytics.SummaryRow{}
	}
	c.JSON(http.StatusOK, rows)
}
