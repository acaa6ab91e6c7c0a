package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/roomly/booking-backend/internal/admin"
	adminHttp "github.com/roomly/booking-backend/internal/admin/http"
	"github.com/roomly/booking-backend/internal/analytics"
	analyticsHttp "github.com/roomly/booking-backend/internal/analytics/http"
	"github.com/roomly/booking-backend/internal/booking"
	bookingHttp "github.com/roomly/booking-backend/internal/booking/http"
	"github.com/roomly/booking-backend/internal/room"
	roomHttp "github.com/roomly/booking-backend/internal/room/http"
)

// Config carries the services the router exposes.
type Config struct {
	IsProduction     bool
	ProdOrigins      string
	RoomService      room.Service
	BookingService   booking.Service
	AnalyticsService analytics.Service
	AdminService     admin.Service
}

// NewRouter initializes the HTTP router engine.
// It assembles middleware (CORS, Logger, Recovery) and registers the module routes.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	roomHandler := roomHttp.NewHandler(cfg.RoomService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	analyticsHandler := analyticsHttp.NewHandler(cfg.AnalyticsService)
	adminHandler := adminHttp.NewHandler(cfg.AdminService)

	// Register API routes under /api
	apiGroup := r.Group("/api")
	{
		roomHttp.RegisterRoutes(apiGroup, roomHandler)
		bookingHttp.RegisterRoutes(apiGroup, bookingHandler)
		analyticsHttp.RegisterRoutes(apiGroup, analyticsHandler)
		adminHttp.RegisterRoutes(apiGroup, adminHandler)
	}

	return r
}
