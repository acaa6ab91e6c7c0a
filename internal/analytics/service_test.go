package analytics_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/roomly/booking-backend/internal/analytics"
	"github.com/roomly/booking-backend/internal/booking"
	"github.com/roomly/booking-backend/internal/room"
)

type fixture struct {
	service analytics.Service
	repo    booking.Repository
	rooms   room.Service
	cabin   *room.Room
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	repo := booking.NewFileRepository(filepath.Join(t.TempDir(), "bookings.json"), zap.NewNop())
	require.NoError(t, repo.Load(ctx))

	rooms := room.NewService(room.NewMemoryRepository())
	cabin, err := rooms.Create(ctx, room.CreateRequest{Name: "Focus Cabin", BaseHourlyRate: 600, Capacity: 2})
	require.NoError(t, err)

	return &fixture{
		service: analytics.NewService(repo, rooms),
		repo:    repo,
		rooms:   rooms,
		cabin:   cabin,
	}
}

func (f *fixture) seedBooking(t *testing.T, roomID string, start time.Time, hours int, price float64, status booking.Status) {
	t.Helper()
	ctx := context.Background()
	b := &booking.Booking{
		RoomID:     roomID,
		UserName:   "dana",
		StartTime:  start,
		EndTime:    start.Add(time.Duration(hours) * time.Hour),
		TotalPrice: price,
		Status:     booking.StatusConfirmed,
	}
	require.NoError(t, f.repo.Create(ctx, b))
	if status == booking.StatusCancelled {
		_, err := f.repo.UpdateStatus(ctx, b.ID, booking.StatusCancelled)
		require.NoError(t, err)
	}
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2026, time.May, 4, 0, 0, 0, 0, time.UTC)

	t.Run("sums confirmed bookings and joins room names", func(t *testing.T) {
		fx := newFixture(t)
		fx.seedBooking(t, fx.cabin.ID, day.Add(9*time.Hour), 2, 1500, booking.StatusConfirmed)
		fx.seedBooking(t, fx.cabin.ID, day.Add(13*time.Hour), 1, 900, booking.StatusConfirmed)
		fx.seedBooking(t, fx.cabin.ID, day.Add(16*time.Hour), 1, 600, booking.StatusCancelled)
		fx.seedBooking(t, "room_gone", day.Add(9*time.Hour), 1, 500, booking.StatusConfirmed)

		rows, err := fx.service.Summary(ctx, "", "")
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, fx.cabin.ID, rows[0].RoomID)
		assert.Equal(t, "Focus Cabin", rows[0].RoomName)
		assert.Equal(t, 3.0, rows[0].TotalHours)
		assert.Equal(t, 2400.0, rows[0].TotalRevenue)

		// Unknown rooms fall back to the raw id.
		assert.Equal(t, "room_gone", rows[1].RoomName)
	})

	t.Run("matches an independent sum over the listing", func(t *testing.T) {
		fx := newFixture(t)
		fx.seedBooking(t, fx.cabin.ID, day.Add(9*time.Hour), 2, 1500, booking.StatusConfirmed)
		fx.seedBooking(t, fx.cabin.ID, day.Add(13*time.Hour), 1, 900, booking.StatusConfirmed)
		fx.seedBooking(t, fx.cabin.ID, day.Add(16*time.Hour), 1, 600, booking.StatusCancelled)

		confirmed, err := fx.repo.FindAll(ctx, booking.Filter{Status: booking.StatusConfirmed})
		require.NoError(t, err)
		var expected float64
		for _, b := range confirmed {
			expected += b.TotalPrice
		}

		rows, err := fx.service.Summary(ctx, "", "")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, expected, rows[0].TotalRevenue)
	})

	t.Run("range excludes bookings crossing the boundary", func(t *testing.T) {
		fx := newFixture(t)
		fx.seedBooking(t, fx.cabin.ID, day.Add(9*time.Hour), 2, 1500, booking.StatusConfirmed)
		fx.seedBooking(t, fx.cabin.ID, day.Add(23*time.Hour), 2, 1200, booking.StatusConfirmed)

		rows, err := fx.service.Summary(ctx, day.Format(time.RFC3339), day.Format(time.RFC3339))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, 2.0, rows[0].TotalHours)
		assert.Equal(t, 1500.0, rows[0].TotalRevenue)
	})

	t.Run("rejects malformed bounds", func(t *testing.T) {
		fx := newFixture(t)
		_, err := fx.service.Summary(ctx, "yesterday", "")
		assert.ErrorIs(t, err, booking.ErrInvalidFilterDate)

		_, err = fx.service.Summary(ctx, "", "someday")
		assert.ErrorIs(t, err, booking.ErrInvalidFilterDate)
	})

	t.Run("rejects an inverted range", func(t *testing.T) {
		fx := newFixture(t)
		from := day.Add(24 * time.Hour).Format(time.RFC3339)
		to := day.Format(time.RFC3339)
		_, err := fx.service.Summary(ctx, from, to)
		assert.ErrorIs(t, err, analytics.ErrInvalidRange)
	})
}
