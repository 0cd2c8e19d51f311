package utils

import (
	"scheduling-core/internal/pkg/dto/requests"
	"strings"
)

func SanitizeCreateScheduleRequest(input *requests.CreateScheduleRequest) {
	input.OwnerID = strings.TrimSpace(input.OwnerID)
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	input.Timezone = strings.TrimSpace(input.Timezone)
}

func SanitizeCloneScheduleRequest(input *requests.CloneScheduleRequest) {
	input.TemplateID = strings.TrimSpace(input.TemplateID)
	input.OwnerID = strings.TrimSpace(input.OwnerID)
	input.Name = strings.TrimSpace(input.Name)
}

func SanitizeAddTimeSlotRequest(input *requests.AddTimeSlotRequest) {
	input.ScheduleID = strings.TrimSpace(input.ScheduleID)
	input.StartTime = strings.TrimSpace(input.StartTime)
	input.EndTime = strings.TrimSpace(input.EndTime)
}

func SanitizeToggleTimeSlotRequest(input *requests.ToggleTimeSlotRequest) {
	input.ScheduleID = strings.TrimSpace(input.ScheduleID)
	input.SlotID = strings.TrimSpace(input.SlotID)
}
