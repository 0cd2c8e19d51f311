package availability

import (
	"fmt"
	"strconv"
	"strings"

	"scheduling-core/internal/pkg/constvars"
)

// ClockTime is a wall clock time of day with no date or zone attached.
// Seconds are carried so persisted values round trip unchanged, but every
// comparison in this package works on whole minutes.
type ClockTime struct {
	Hour   int
	Minute int
	Second int
}

// ParseClockTime reads HH:MM:SS and the shorter HH:MM form editors send,
// tolerating surrounding whitespace and dots as separators.
func ParseClockTime(s string) (ClockTime, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", ":")
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return ClockTime{}, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return ClockTime{}, false
	}
	sec := 0
	if len(parts) == 3 {
		var err3 error
		sec, err3 = strconv.Atoi(parts[2])
		if err3 != nil || sec < 0 || sec > 59 {
			return ClockTime{}, false
		}
	}
	return ClockTime{Hour: h, Minute: m, Second: sec}, true
}

func (c ClockTime) MinuteOfDay() int {
	return c.Hour*constvars.MinutesPerHour + c.Minute
}

// Before reports whether c reads strictly earlier than other at minute
// precision. Seconds never decide ordering.
func (c ClockTime) Before(other ClockTime) bool {
	return c.MinuteOfDay() < other.MinuteOfDay()
}

// String renders the canonical zero padded form schedules persist.
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

// DurationLabel renders the span between two clock times the way slot
// cards display it: "1 hr 30 min", "2 hr" or "45 min".
func DurationLabel(start, end ClockTime) string {
	total := end.MinuteOfDay() - start.MinuteOfDay()
	hours := total / constvars.MinutesPerHour
	minutes := total % constvars.MinutesPerHour
	switch {
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%d hr %d min", hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%d hr", hours)
	default:
		return fmt.Sprintf("%d min", minutes)
	}
}
