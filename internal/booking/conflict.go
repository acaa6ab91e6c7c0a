package booking

import "time"

// Overlaps reports whether the half-open intervals [s1,e1) and [s2,e2)
// intersect. A booking ending exactly when another starts does not conflict.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// FindConflicts returns the subsequence of existing bookings whose intervals
// overlap the candidate [start, end), preserving storage order. A malformed
// candidate (zero instants or start >= end) yields no conflicts; callers are
// expected to validate intervals before trusting an empty result. Records
// with zero instants are skipped.
func FindConflicts(start, end time.Time, existing []*Booking) []*Booking {
	if start.IsZero() || end.IsZero() || !start.Before(end) {
		return nil
	}

	var conflicts []*Booking
	for _, b := range existing {
		if b.StartTime.IsZero() || b.EndTime.IsZero() {
			continue
		}
		if Overlaps(start, end, b.StartTime, b.EndTime) {
			conflicts = append(conflicts, b)
		}
	}
	return conflicts
}
