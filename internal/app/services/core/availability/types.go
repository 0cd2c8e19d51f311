package availability

import "scheduling-core/internal/pkg/constvars"

// DayOfWeek indexes weekdays the way schedules store them, Monday as 0
// through Sunday as 6.
type DayOfWeek int

const (
	Monday DayOfWeek = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

func (d DayOfWeek) Valid() bool {
	return d >= Monday && d <= Sunday
}

func (d DayOfWeek) String() string {
	if !d.Valid() {
		return constvars.ResponseUnknown
	}
	return constvars.DayNames[d]
}

// MinuteRange is a half open [Start, End) span in minutes since midnight.
// Booking collaborators consume these instead of raw slots.
type MinuteRange struct {
	Start int
	End   int
}
