package requests

// Timezone may be left empty, the usecase fills in the configured
// default zone before the schedule is built.
type CreateScheduleRequest struct {
	OwnerID     string `json:"owner_id" validate:"required"`
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Timezone    string `json:"timezone" validate:"omitempty,timezone"`
	IsDefault   bool   `json:"is_default"`
}

type CloneScheduleRequest struct {
	TemplateID string `json:"template_id" validate:"required"`
	OwnerID    string `json:"owner_id" validate:"required"`
	Name       string `json:"name" validate:"required,max=100"`
}

// Day carries no required tag: Monday is the zero value and must stay
// accepted. The day_of_week rule owns the bounds.
type AddTimeSlotRequest struct {
	ScheduleID string `json:"schedule_id" validate:"required"`
	Day        int    `json:"day" validate:"day_of_week"`
	StartTime  string `json:"start_time" validate:"required,clock_time"`
	EndTime    string `json:"end_time" validate:"required,clock_time"`
}

type ToggleTimeSlotRequest struct {
	ScheduleID string `json:"schedule_id" validate:"required"`
	SlotID     string `json:"slot_id" validate:"required"`
	IsActive   bool   `json:"is_active"`
}
