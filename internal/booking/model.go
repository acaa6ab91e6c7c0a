package booking

import (
	"net/http"
	"time"

	"github.com/roomly/booking-backend/internal/pkg/apperror"
)

var (
	ErrRequesterRequired = apperror.New(http.StatusBadRequest, "REQUESTER_REQUIRED", "userName is required")
	ErrTimeRequired      = apperror.New(http.StatusBadRequest, "TIME_REQUIRED", "startTime and endTime are required")
	ErrInvalidTimeFormat = apperror.New(http.StatusBadRequest, "INVALID_TIME_FORMAT", "startTime and endTime must be valid ISO-8601 timestamps")
	ErrInvalidTimeRange  = apperror.New(http.StatusBadRequest, "INVALID_TIME_RANGE", "startTime must be earlier than endTime")
	ErrMaxDuration       = apperror.New(http.StatusBadRequest, "MAX_DURATION_EXCEEDED", "booking duration cannot exceed 12 hours")
	ErrPastStartTime     = apperror.New(http.StatusBadRequest, "PAST_START_TIME", "bookings must start in the future")
	ErrRoomNotFound      = apperror.New(http.StatusNotFound, "RESOURCE_NOT_FOUND", "room not found")
	ErrAlreadyBooked     = apperror.New(http.StatusConflict, "RESOURCE_ALREADY_BOOKED", "room already booked")
	ErrNotFound          = apperror.New(http.StatusNotFound, "BOOKING_NOT_FOUND", "booking not found")
	ErrInvalidStoredTime = apperror.New(http.StatusBadRequest, "INVALID_BOOKING_TIME", "booking start time is invalid")
	ErrWindowClosed      = apperror.New(http.StatusBadRequest, "CANCELLATION_WINDOW_CLOSED", "cancellations allowed only >2 hours before start time")
	ErrInvalidFilterDate = apperror.New(http.StatusBadRequest, "INVALID_FILTER_DATE", "filter date must be a valid ISO date")
	ErrInvalidStatus     = apperror.New(http.StatusBadRequest, "INVALID_STATUS_FILTER", "status filter is invalid")
)

type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

// Booking is a reservation of a room for a half-open [StartTime, EndTime)
// interval. TotalPrice is fixed at creation and never recomputed. RoomName is
// a read-only join filled by the service, never persisted.
type Booking struct {
	ID         string    `json:"id"`
	RoomID     string    `json:"roomId"`
	RoomName   string    `json:"roomName,omitempty"`
	UserName   string    `json:"userName"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	TotalPrice float64   `json:"totalPrice"`
	Status     Status    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Filter narrows FindAll results. From excludes bookings starting before it,
// To excludes bookings ending after it.
type Filter struct {
	RoomID string
	Status Status
	From   *time.Time
	To     *time.Time
}

// AnalyticsRow is a per-room total of CONFIRMED duration-hours and revenue.
type AnalyticsRow struct {
	RoomID       string
	TotalHours   float64
	TotalRevenue float64
}
