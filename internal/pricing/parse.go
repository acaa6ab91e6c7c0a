package pricing

import (
	"strconv"
	"strings"
	"time"
)

// DefaultWindows is the peak schedule used when no valid window is configured.
func DefaultWindows() []Window {
	return []Window{
		{StartMinute: 10 * minutesPerHour, EndMinute: 13 * minutesPerHour},
		{StartMinute: 16 * minutesPerHour, EndMinute: 19 * minutesPerHour},
	}
}

// DefaultWeekdays is Monday through Friday.
func DefaultWeekdays() map[time.Weekday]bool {
	return map[time.Weekday]bool{
		time.Monday:    true,
		time.Tuesday:   true,
		time.Wednesday: true,
		time.Thursday:  true,
		time.Friday:    true,
	}
}

func toMinuteOfDay(value string) (int, bool) {
	hourPart, minutePart, _ := strings.Cut(value, ":")
	hours, err := strconv.Atoi(strings.TrimSpace(hourPart))
	if err != nil {
		return 0, false
	}
	minutes := 0
	if minutePart != "" {
		minutes, err = strconv.Atoi(strings.TrimSpace(minutePart))
		if err != nil {
			return 0, false
		}
	}
	return hours*minutesPerHour + minutes, true
}

// ParseWindows parses a schedule like "10:00-13:00,16:00-19:00". Malformed or
// inverted segments are skipped; if nothing valid remains the defaults apply.
func ParseWindows(value string) []Window {
	var windows []Window
	for _, segment := range strings.Split(value, ",") {
		startRaw, endRaw, found := strings.Cut(strings.TrimSpace(segment), "-")
		if !found {
			continue
		}
		startMinute, okStart := toMinuteOfDay(startRaw)
		endMinute, okEnd := toMinuteOfDay(endRaw)
		if !okStart || !okEnd || endMinute <= startMinute {
			continue
		}
		windows = append(windows, Window{StartMinute: startMinute, EndMinute: endMinute})
	}

	if len(windows) == 0 {
		return DefaultWindows()
	}
	return windows
}

// ParseWeekdays parses a list like "1,2,3,4,5" (0=Sunday..6=Saturday).
// Out-of-range entries are skipped; an empty result falls back to weekdays.
func ParseWeekdays(value string) map[time.Weekday]bool {
	weekdays := make(map[time.Weekday]bool)
	for _, entry := range strings.Split(value, ",") {
		parsed, err := strconv.Atoi(strings.TrimSpace(entry))
		if err != nil || parsed < 0 || parsed > 6 {
			continue
		}
		weekdays[time.Weekday(parsed)] = true
	}

	if len(weekdays) == 0 {
		return DefaultWeekdays()
	}
	return weekdays
}
