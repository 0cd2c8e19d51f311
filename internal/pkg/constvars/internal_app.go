package constvars

// Weekday indexes used across schedules. Monday is 0, Sunday is 6.
const (
	DayMonday    = 0
	DayTuesday   = 1
	DayWednesday = 2
	DayThursday  = 3
	DayFriday    = 4
	DaySaturday  = 5
	DaySunday    = 6
)

var DayNames = [...]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

const (
	DaysPerWeek    = 7
	MinutesPerHour = 60
)

const (
	ClockLayoutSeconds = "15:04:05"
	ClockLayoutMinutes = "15:04"
)

const (
	DEFAULT_RESCHEDULE_CUTOFF_HOURS = 24
	DEFAULT_SCHEDULE_NAME           = "Working Hours"
)

const (
	ResponseUnknown = "unknown"
)
