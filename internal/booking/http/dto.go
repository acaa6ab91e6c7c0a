package http

import (
	"time"

	"github.com/roomly/booking-backend/internal/booking"
)

type CreateBookingBody struct {
	RoomID    string `json:"roomId" binding:"required"`
	UserName  string `json:"userName"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type BookingResponse struct {
	ID         string    `json:"id"`
	RoomID     string    `json:"roomId"`
	RoomName   string    `json:"roomName"`
	UserName   string    `json:"userName"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	TotalPrice float64   `json:"totalPrice"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		RoomID:     b.RoomID,
		RoomName:   b.RoomName,
		UserName:   b.UserName,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		TotalPrice: b.TotalPrice,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}
