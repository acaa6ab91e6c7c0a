package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/roomly/booking-backend/internal/booking"
)

func interval(startHour, endHour int) (time.Time, time.Time) {
	base := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	return base.Add(time.Duration(startHour) * time.Hour), base.Add(time.Duration(endHour) * time.Hour)
}

func TestOverlaps(t *testing.T) {
	t.Run("symmetry", func(t *testing.T) {
		s1, e1 := interval(1, 3)
		s2, e2 := interval(2, 4)
		assert.True(t, booking.Overlaps(s1, e1, s2, e2))
		assert.True(t, booking.Overlaps(s2, e2, s1, e1))

		s3, e3 := interval(5, 6)
		assert.False(t, booking.Overlaps(s1, e1, s3, e3))
		assert.False(t, booking.Overlaps(s3, e3, s1, e1))
	})

	t.Run("half-open boundary does not conflict", func(t *testing.T) {
		s1, e1 := interval(1, 3)
		s2, e2 := interval(3, 5)
		assert.False(t, booking.Overlaps(s1, e1, s2, e2))
		assert.False(t, booking.Overlaps(s2, e2, s1, e1))
	})

	t.Run("containment conflicts", func(t *testing.T) {
		s1, e1 := interval(1, 6)
		s2, e2 := interval(2, 3)
		assert.True(t, booking.Overlaps(s1, e1, s2, e2))
		assert.True(t, booking.Overlaps(s2, e2, s1, e1))
	})
}

func TestFindConflicts(t *testing.T) {
	mk := func(id string, startHour, endHour int) *booking.Booking {
		start, end := interval(startHour, endHour)
		return &booking.Booking{ID: id, StartTime: start, EndTime: end}
	}
	existing := []*booking.Booking{
		mk("a", 1, 3),
		mk("b", 3, 5),
		mk("c", 4, 8),
	}

	t.Run("returns overlapping records in storage order", func(t *testing.T) {
		start, end := interval(2, 6)
		conflicts := booking.FindConflicts(start, end, existing)
		ids := make([]string, len(conflicts))
		for i, b := range conflicts {
			ids[i] = b.ID
		}
		assert.Equal(t, []string{"a", "b", "c"}, ids)
	})

	t.Run("adjacent intervals are not conflicts", func(t *testing.T) {
		start, end := interval(8, 9)
		assert.Empty(t, booking.FindConflicts(start, end, existing))
	})

	t.Run("malformed candidate yields no conflicts", func(t *testing.T) {
		start, end := interval(6, 2)
		assert.Empty(t, booking.FindConflicts(start, end, existing))
		assert.Empty(t, booking.FindConflicts(time.Time{}, end, existing))
		assert.Empty(t, booking.FindConflicts(start, start, existing))
	})

	t.Run("records with zero instants are skipped", func(t *testing.T) {
		broken := []*booking.Booking{{ID: "x"}}
		start, end := interval(1, 2)
		assert.Empty(t, booking.FindConflicts(start, end, broken))
	})
}
