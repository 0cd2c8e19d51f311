package responses

// SlotView is the presentation shape of one stored slot. Derived fields
// like the duration label live here, never on the persisted record.
type SlotView struct {
	ID            string `json:"id"`
	Day           int    `json:"day"`
	DayName       string `json:"day_name"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	IsActive      bool   `json:"is_active"`
	DurationLabel string `json:"duration_label"`
}

type DaySlots struct {
	Day     int        `json:"day"`
	DayName string     `json:"day_name"`
	Slots   []SlotView `json:"slots"`
}

type ScheduleSummary struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Timezone        string     `json:"timezone"`
	IsDefault       bool       `json:"is_default"`
	IsActive        bool       `json:"is_active"`
	ActiveSlotCount int        `json:"active_slot_count"`
	Preview         []SlotView `json:"preview"`
}

type ScheduleDetail struct {
	ID              string     `json:"id"`
	OwnerID         string     `json:"owner_id"`
	Name            string     `json:"name"`
	Description     string     `json:"description,omitempty"`
	Timezone        string     `json:"timezone"`
	IsDefault       bool       `json:"is_default"`
	IsActive        bool       `json:"is_active"`
	ActiveSlotCount int        `json:"active_slot_count"`
	Days            []DaySlots `json:"days"`
}

// BookableRange is a half open booking window in minutes since midnight,
// the shape booking collaborators consume.
type BookableRange struct {
	StartMinute int `json:"start_minute"`
	EndMinute   int `json:"end_minute"`
}

type BookableDay struct {
	Day     int             `json:"day"`
	DayName string          `json:"day_name"`
	Ranges  []BookableRange `json:"ranges"`
}

type BookableWeek struct {
	ScheduleID string        `json:"schedule_id"`
	Timezone   string        `json:"timezone"`
	Days       []BookableDay `json:"days"`
}
