package analytics

import (
	"context"
	"net/http"
	"time"

	"github.com/roomly/booking-backend/internal/booking"
	"github.com/roomly/booking-backend/internal/pkg/apperror"
	"github.com/roomly/booking-backend/internal/room"
)

var ErrInvalidRange = apperror.New(http.StatusBadRequest, "INVALID_TIME_RANGE", "from must be earlier than to")

// SummaryRow reports per-room CONFIRMED totals within the requested range.
type SummaryRow struct {
	RoomID       string  `json:"roomId"`
	RoomName     string  `json:"roomName"`
	TotalHours   float64 `json:"totalHours"`
	TotalRevenue float64 `json:"totalRevenue"`
}

type Service interface {
	Summary(ctx context.Context, from, to string) ([]SummaryRow, error)
}

type service struct {
	repo        booking.Repository
	roomService room.Service
}

func NewService(repo booking.Repository, roomService room.Service) Service {
	return &service{repo: repo, roomService: roomService}
}

func (s *service) Summary(ctx context.Context, from, to string) ([]SummaryRow, error) {
	fromTime, err := parseBound(from, "from")
	if err != nil {
		return nil, err
	}
	toTime, err := parseBound(to, "to")
	if err != nil {
		return nil, err
	}

	if fromTime != nil && toTime != nil && fromTime.After(*toTime) {
		return nil, ErrInvalidRange
	}

	rows, err := s.repo.Aggregate(ctx, fromTime, toTime)
	if err != nil {
		return nil, err
	}

	out := make([]SummaryRow, len(rows))
	for i, row := range rows {
		name := row.RoomID
		if r, err := s.roomService.GetByID(ctx, row.RoomID); err == nil {
			name = r.Name
		}
		out[i] = SummaryRow{
			RoomID:       row.RoomID,
			RoomName:     name,
			TotalHours:   row.TotalHours,
			TotalRevenue: row.TotalRevenue,
		}
	}
	return out, nil
}

func parseBound(value, field string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, booking.ErrInvalidFilterDate.WithDetails(map[string]any{"field": field, "value": value})
	}
	return &t, nil
}
