package app

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/roomly/booking-backend/internal/admin"
	"github.com/roomly/booking-backend/internal/analytics"
	"github.com/roomly/booking-backend/internal/api"
	"github.com/roomly/booking-backend/internal/booking"
	"github.com/roomly/booking-backend/internal/pricing"
	"github.com/roomly/booking-backend/internal/room"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DataFile     string
	Pricing      pricing.Config
	Logger       *zap.Logger
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router      *gin.Engine
	BookingRepo booking.Repository
	RoomService room.Service
}

// NewContainer initializes all modules and returns the container.
// The caller must invoke BookingRepo.Load before serving traffic.
func NewContainer(cfg Config) *Container {
	// Pricing Engine
	pricer := pricing.NewEngine(cfg.Pricing)

	// Room Module
	roomRepo := room.NewMemoryRepository()
	roomService := room.NewService(roomRepo)

	// Booking Module
	bookingRepo := booking.NewFileRepository(cfg.DataFile, cfg.Logger)
	bookingService := booking.NewService(bookingRepo, roomService, pricer)

	// Analytics Module
	analyticsService := analytics.NewService(bookingRepo, roomService)

	// Admin Module
	adminService := admin.NewService(bookingRepo, roomService)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:     cfg.IsProduction,
		ProdOrigins:      cfg.ProdOrigins,
		RoomService:      roomService,
		BookingService:   bookingService,
		AnalyticsService: analyticsService,
		AdminService:     adminService,
	})

	return &Container{
		Router:      router,
		BookingRepo: bookingRepo,
		RoomService: roomService,
	}
}
