package pricing

import (
	"math"
	"time"
)

const minutesPerHour = 60

// Window is a half-open [StartMinute, EndMinute) range of local minute-of-day.
type Window struct {
	StartMinute int
	EndMinute   int
}

// Config fixes the peak-rate schedule for a deployment. Weekday indexes follow
// time.Weekday (0=Sunday..6=Saturday), evaluated in the local timezone given
// by the fixed UTC offset.
type Config struct {
	PeakMultiplier        float64
	OffPeakMultiplier     float64
	PeakWeekdays          map[time.Weekday]bool
	PeakWindows           []Window
	TimezoneOffsetMinutes int
}

// Engine computes time-weighted prices against a fixed peak schedule.
// It is pure and safe for concurrent use.
type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

func (e *Engine) localParts(t time.Time) (time.Weekday, int) {
	shifted := t.UTC().Add(time.Duration(e.cfg.TimezoneOffsetMinutes) * time.Minute)
	minuteOfDay := shifted.Hour()*minutesPerHour + shifted.Minute()
	return shifted.Weekday(), minuteOfDay
}

// IsPeakInstant reports whether t falls in a peak window on a peak weekday,
// evaluated in the configured local timezone.
func (e *Engine) IsPeakInstant(t time.Time) bool {
	weekday, minuteOfDay := e.localParts(t)
	if !e.cfg.PeakWeekdays[weekday] {
		return false
	}

	for _, w := range e.cfg.PeakWindows {
		if minuteOfDay >= w.StartMinute && minuteOfDay < w.EndMinute {
			return true
		}
	}
	return false
}

// Price walks [start, end) in one-minute increments (the final increment may
// be a fractional minute), classifies each increment by its starting instant,
// and accumulates baseHourlyRate/60 times the applicable multiplier. The total
// is rounded half-up to the minor currency unit at the end.
func (e *Engine) Price(baseHourlyRate float64, start, end time.Time) float64 {
	if start.IsZero() || end.IsZero() || !start.Before(end) {
		return 0
	}

	perMinuteRate := baseHourlyRate / minutesPerHour
	cursor := start
	total := 0.0

	for cursor.Before(end) {
		minuteEnd := cursor.Add(time.Minute)
		if minuteEnd.After(end) {
			minuteEnd = end
		}

		multiplier := e.cfg.OffPeakMultiplier
		if e.IsPeakInstant(cursor) {
			multiplier = e.cfg.PeakMultiplier
		}

		fraction := minuteEnd.Sub(cursor).Minutes()
		total += perMinuteRate * multiplier * fraction

		cursor = minuteEnd
	}

	return math.Round(total*100) / 100
}
