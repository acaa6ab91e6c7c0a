package http

import (
	"github.com/roomly/booking-backend/internal/room"
)

type CreateRoomBody struct {
	Name           string  `json:"name" binding:"required"`
	BaseHourlyRate float64 `json:"baseHourlyRate" binding:"required"`
	Capacity       int     `json:"capacity" binding:"required"`
}

type RoomResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	BaseHourlyRate float64 `json:"baseHourlyRate"`
	Capacity       int     `json:"capacity"`
}

func NewRoomResponse(r *room.Room) RoomResponse {
	return RoomResponse{
		ID:             r.ID,
		Name:           r.Name,
		BaseHourlyRate: r.BaseHourlyRate,
		Capacity:       r.Capacity,
	}
}
