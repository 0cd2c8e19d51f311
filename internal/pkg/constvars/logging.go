package constvars

const (
	LoggingScheduleIDKey = "schedule_id"
	LoggingSlotIDKey     = "slot_id"
	LoggingOwnerIDKey    = "owner_id"
	LoggingDayKey        = "day"
	LoggingCountKey      = "count"
)
