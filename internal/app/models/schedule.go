package models

// TimeSlot is one recurring weekly window of availability. Start and end
// are wall clock times in the owning schedule's timezone, stored in the
// canonical zero padded HH:MM:SS form. Day is 0 for Monday through 6 for
// Sunday.
type TimeSlot struct {
	ID        string `json:"id"`
	Day       int    `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsActive  bool   `json:"is_active"`
}

// Schedule is a named weekly availability plan owned by a practitioner.
// Slot order inside TimeSlots carries no meaning; grouping and ordering
// are derived views.
type Schedule struct {
	ID          string     `json:"id,omitempty"`
	OwnerID     string     `json:"owner_id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Timezone    string     `json:"timezone"`
	IsDefault   bool       `json:"is_default"`
	IsActive    bool       `json:"is_active"`
	TimeSlots   []TimeSlot `json:"time_slots"`
	TimeModel
}
