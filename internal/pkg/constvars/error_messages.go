package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":    "is required",
	"min":         "must be at least %s characters long",
	"max":         "maximum at %s characters long",
	"len":         "must be %s characters long",
	"oneof":       "must be one of [%s]",
	"gt":          "must be greater than %s",
	"gte":         "must be greater than or equal to %s",
	"lt":          "must be less than %s",
	"lte":         "must be less than or equal to %s",
	"uuid":        "must be a valid UUID",
	"timezone":    "must be a valid IANA timezone name",
	"clock_time":  "must be a wall clock time in HH:MM or HH:MM:SS format",
	"day_of_week": "must be a weekday index between 0 (Monday) and 6 (Sunday)",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientEndNotAfterStart              = "End time must be after start time."
	ErrClientSlotOverlap                   = "This time slot overlaps with an existing slot"
	ErrClientScheduleNotFound              = "schedule not found"
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
)

// Error messages for developers
const (
	ErrDevInvalidInput  = "invalid input"
	ErrDevInvalidFormat = "invalid %s format"

	// Slot rule messages
	ErrDevSlotEndNotAfterStart = "slot end time is not strictly after its start time"
	ErrDevSlotOverlap          = "slot overlaps an existing slot on day %d"
	ErrDevInvalidDayOfWeek     = "day of week outside the 0 (Monday) to 6 (Sunday) range"
	ErrDevInvalidTimezone      = "timezone is not a known IANA zone name"

	// Validation messages
	ErrDevValidationFailed = "validation failed"

	// Store messages
	ErrDevScheduleNotFound  = "schedule not found in store"
	ErrDevStoreFailedToSave = "failed to save schedule into store"
	ErrDevStoreFailedToLoad = "failed to load schedules from store"
)
