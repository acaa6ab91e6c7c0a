package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/rooms")
	{
		group.GET("", h.List)
		group.POST("", h.Create)
	}
}
