package utils

import (
	"scheduling-core/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCreateScheduleRequest(t *testing.T) {
	t.Run("Trims Every Text Field", func(t *testing.T) {
		request := &requests.CreateScheduleRequest{
			OwnerID:     "  practitioner-1  ",
			Name:        "  Working Hours  ",
			Description: "  Weekday mornings  ",
			Timezone:    "  Asia/Jakarta  ",
		}

		SanitizeCreateScheduleRequest(request)

		assert.Equal(t, "practitioner-1", request.OwnerID, "owner id should be trimmed")
		assert.Equal(t, "Working Hours", request.Name, "name should be trimmed")
		assert.Equal(t, "Weekday mornings", request.Description, "description should be trimmed")
		assert.Equal(t, "Asia/Jakarta", request.Timezone, "timezone should be trimmed")
	})

	t.Run("Keeps Inner Whitespace", func(t *testing.T) {
		request := &requests.CreateScheduleRequest{
			OwnerID: "practitioner-1",
			Name:    "  Evening  Hours  ",
		}

		SanitizeCreateScheduleRequest(request)

		assert.Equal(t, "Evening  Hours", request.Name, "only surrounding whitespace should go")
	})

	t.Run("Leaves Clean Input Alone", func(t *testing.T) {
		request := &requests.CreateScheduleRequest{
			OwnerID:  "practitioner-1",
			Name:     "Working Hours",
			Timezone: "Asia/Jakarta",
		}

		SanitizeCreateScheduleRequest(request)

		assert.Equal(t, "practitioner-1", request.OwnerID)
		assert.Equal(t, "Working Hours", request.Name)
		assert.Equal(t, "Asia/Jakarta", request.Timezone)
	})
}

func TestSanitizeAddTimeSlotRequest(t *testing.T) {
	t.Run("Trims Clock Strings", func(t *testing.T) {
		request := &requests.AddTimeSlotRequest{
			ScheduleID: "  schedule-1  ",
			Day:        2,
			StartTime:  "  09:00:00  ",
			EndTime:    "  10:30:00  ",
		}

		SanitizeAddTimeSlotRequest(request)

		assert.Equal(t, "schedule-1", request.ScheduleID, "schedule id should be trimmed")
		assert.Equal(t, "09:00:00", request.StartTime, "start time should be trimmed")
		assert.Equal(t, "10:30:00", request.EndTime, "end time should be trimmed")
		assert.Equal(t, 2, request.Day, "day should be untouched")
	})
}

func TestSanitizeCloneScheduleRequest(t *testing.T) {
	t.Run("Trims Identifiers And Name", func(t *testing.T) {
		request := &requests.CloneScheduleRequest{
			TemplateID: "  schedule-1  ",
			OwnerID:    "  practitioner-2  ",
			Name:       "  Borrowed Hours  ",
		}

		SanitizeCloneScheduleRequest(request)

		assert.Equal(t, "schedule-1", request.TemplateID)
		assert.Equal(t, "practitioner-2", request.OwnerID)
		assert.Equal(t, "Borrowed Hours", request.Name)
	})
}

func TestSanitizeToggleTimeSlotRequest(t *testing.T) {
	t.Run("Trims Identifiers And Keeps The Flag", func(t *testing.T) {
		request := &requests.ToggleTimeSlotRequest{
			ScheduleID: "  schedule-1  ",
			SlotID:     "  slot-9  ",
			IsActive:   true,
		}

		SanitizeToggleTimeSlotRequest(request)

		assert.Equal(t, "schedule-1", request.ScheduleID)
		assert.Equal(t, "slot-9", request.SlotID)
		assert.True(t, request.IsActive, "flag should be untouched")
	})
}
