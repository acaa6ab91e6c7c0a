package admin

import (
	"context"

	"github.com/roomly/booking-backend/internal/booking"
	"github.com/roomly/booking-backend/internal/room"
)

type Service interface {
	// ResetDatabase wipes all bookings and the room catalog.
	ResetDatabase(ctx context.Context) error
}

type service struct {
	bookingRepo booking.Repository
	roomService room.Service
}

func NewService(bookingRepo booking.Repository, roomService room.Service) Service {
	return &service{bookingRepo: bookingRepo, roomService: roomService}
}

func (s *service) ResetDatabase(ctx context.Context) error {
	if err := s.bookingRepo.Clear(ctx); err != nil {
		return err
	}
	return s.roomService.Reset(ctx)
}
