package booking

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/roomly/booking-backend/internal/pricing"
	"github.com/roomly/booking-backend/internal/room"
)

const (
	// MaxDuration is the longest interval a single booking may span.
	MaxDuration = 12 * time.Hour

	// CancellationWindow is the minimum lead time before a booking's start
	// required to allow cancellation.
	CancellationWindow = 2 * time.Hour
)

// CreateRequest carries raw ISO-8601 timestamps: parse failures are part of
// the domain error taxonomy, so the service owns parsing.
type CreateRequest struct {
	RoomID    string
	UserName  string
	StartTime string
	EndTime   string
}

// ListFilters are the optional query filters for List, unvalidated.
type ListFilters struct {
	RoomID string
	Status string
	From   string
	To     string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	Cancel(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filters ListFilters) ([]*Booking, error)
}

type service struct {
	repo        Repository
	roomService room.Service
	pricer      *pricing.Engine

	// createMu serializes the whole conflict-check -> price -> commit
	// sequence so two overlapping requests cannot both pass the check.
	createMu sync.Mutex
}

func NewService(repo Repository, roomService room.Service, pricer *pricing.Engine) Service {
	return &service{
		repo:        repo,
		roomService: roomService,
		pricer:      pricer,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	userName := strings.TrimSpace(req.UserName)
	if userName == "" {
		return nil, ErrRequesterRequired
	}

	start, end, err := validateTimeRange(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	r, err := s.roomService.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, room.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	s.createMu.Lock()
	defer s.createMu.Unlock()

	overlapping, err := s.repo.FindOverlapping(ctx, req.RoomID, start, end)
	if err != nil {
		return nil, err
	}
	if len(overlapping) > 0 {
		conflict := overlapping[0]
		return nil, ErrAlreadyBooked.WithDetails(map[string]any{
			"existingBookingId": conflict.ID,
			"startTime":         conflict.StartTime,
			"endTime":           conflict.EndTime,
		})
	}

	b := &Booking{
		RoomID:     req.RoomID,
		UserName:   userName,
		StartTime:  start,
		EndTime:    end,
		TotalPrice: s.pricer.Price(r.BaseHourlyRate, start, end),
		Status:     StatusConfirmed,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	b.RoomName = r.Name
	return b, nil
}

func (s *service) Cancel(ctx context.Context, id string) (*Booking, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b.Status == StatusCancelled {
		return s.withRoomName(ctx, b), nil
	}

	// Defensive: a hand-edited data file can hold a record without a start.
	if b.StartTime.IsZero() {
		return nil, ErrInvalidStoredTime
	}

	if time.Until(b.StartTime) <= CancellationWindow {
		return nil, ErrWindowClosed
	}

	updated, err := s.repo.UpdateStatus(ctx, b.ID, StatusCancelled)
	if err != nil {
		return nil, err
	}
	return s.withRoomName(ctx, updated), nil
}

func (s *service) List(ctx context.Context, filters ListFilters) ([]*Booking, error) {
	filter, err := validateFilters(filters)
	if err != nil {
		return nil, err
	}

	bookings, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	for i, b := range bookings {
		bookings[i] = s.withRoomName(ctx, b)
	}
	return bookings, nil
}

// withRoomName enriches a booking with the room's display name. Unknown rooms
// fall back to the raw id so stale records still render.
func (s *service) withRoomName(ctx context.Context, b *Booking) *Booking {
	b.RoomName = b.RoomID
	if r, err := s.roomService.GetByID(ctx, b.RoomID); err == nil {
		b.RoomName = r.Name
	}
	return b
}

func validateTimeRange(startInput, endInput string) (time.Time, time.Time, error) {
	if startInput == "" || endInput == "" {
		return time.Time{}, time.Time{}, ErrTimeRequired
	}

	start, errStart := time.Parse(time.RFC3339, startInput)
	end, errEnd := time.Parse(time.RFC3339, endInput)
	if errStart != nil || errEnd != nil {
		return time.Time{}, time.Time{}, ErrInvalidTimeFormat
	}

	if !start.Before(end) {
		return time.Time{}, time.Time{}, ErrInvalidTimeRange
	}
	if end.Sub(start) > MaxDuration {
		return time.Time{}, time.Time{}, ErrMaxDuration
	}
	if !start.After(time.Now()) {
		return time.Time{}, time.Time{}, ErrPastStartTime
	}

	return start.UTC(), end.UTC(), nil
}

func validateFilters(filters ListFilters) (Filter, error) {
	out := Filter{RoomID: filters.RoomID}

	if filters.Status != "" {
		status := Status(filters.Status)
		if status != StatusConfirmed && status != StatusCancelled {
			return Filter{}, ErrInvalidStatus.WithDetails(map[string]any{"value": filters.Status})
		}
		out.Status = status
	}

	if filters.From != "" {
		from, err := time.Parse(time.RFC3339, filters.From)
		if err != nil {
			return Filter{}, ErrInvalidFilterDate.WithDetails(map[string]any{"field": "from"})
		}
		out.From = &from
	}

	if filters.To != "" {
		to, err := time.Parse(time.RFC3339, filters.To)
		if err != nil {
			return Filter{}, ErrInvalidFilterDate.WithDetails(map[string]any{"field": "to"})
		}
		out.To = &to
	}

	return out, nil
}
