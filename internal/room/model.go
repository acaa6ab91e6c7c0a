package room

import (
	"net/http"

	"github.com/roomly/booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "RESOURCE_NOT_FOUND", "room not found")
	ErrEmptyName       = apperror.New(http.StatusBadRequest, "INVALID_ROOM_NAME", "name cannot be empty")
	ErrInvalidRate     = apperror.New(http.StatusBadRequest, "INVALID_ROOM_RATE", "baseHourlyRate must be positive")
	ErrInvalidCapacity = apperror.New(http.StatusBadRequest, "INVALID_ROOM_CAPACITY", "capacity must be positive")
)

// Room represents a bookable unit (e.g., Focus Cabin, War Room).
// Rooms are immutable once created and live for the process lifetime.
type Room struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	BaseHourlyRate float64 `json:"baseHourlyRate"`
	Capacity       int     `json:"capacity"`
}
