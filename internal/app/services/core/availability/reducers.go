package availability

import (
	"strings"
	"time"

	"scheduling-core/internal/app/models"
	"scheduling-core/internal/pkg/exceptions"

	"github.com/google/uuid"
)

// AddTimeSlot returns a copy of the schedule carrying one new active slot
// on day. The input schedule is never touched, so callers can keep old
// values for undo. The new window must parse, must end after it starts
// and must not overlap any same day slot, active or inactive.
func AddTimeSlot(schedule models.Schedule, day DayOfWeek, startTime, endTime string) (models.Schedule, models.TimeSlot, error) {
	if !day.Valid() {
		return schedule, models.TimeSlot{}, exceptions.ErrInvalidDayOfWeek()
	}
	start, ok := ParseClockTime(startTime)
	if !ok {
		return schedule, models.TimeSlot{}, exceptions.ErrInvalidClockFormat(nil, "start_time")
	}
	end, ok := ParseClockTime(endTime)
	if !ok {
		return schedule, models.TimeSlot{}, exceptions.ErrInvalidClockFormat(nil, "end_time")
	}
	if !start.Before(end) {
		return schedule, models.TimeSlot{}, exceptions.ErrSlotEndNotAfterStart()
	}
	conflict, err := conflictsOnDay(schedule, day, start, end)
	if err != nil {
		return schedule, models.TimeSlot{}, err
	}
	if conflict {
		return schedule, models.TimeSlot{}, exceptions.ErrSlotOverlap(int(day))
	}

	slot := models.TimeSlot{
		ID:        uuid.NewString(),
		Day:       int(day),
		StartTime: start.String(),
		EndTime:   end.String(),
		IsActive:  true,
	}
	next := cloneSchedule(schedule)
	next.TimeSlots = append(next.TimeSlots, slot)
	next.SetUpdatedAt()
	return next, slot, nil
}

// RemoveTimeSlot returns a copy of the schedule without the named slot.
// An id that is not present leaves the copy identical, so retried deletes
// stay safe.
func RemoveTimeSlot(schedule models.Schedule, slotID string) models.Schedule {
	next := cloneSchedule(schedule)
	kept := next.TimeSlots[:0]
	removed := false
	for _, slot := range next.TimeSlots {
		if slot.ID == slotID {
			removed = true
			continue
		}
		kept = append(kept, slot)
	}
	next.TimeSlots = kept
	if removed {
		next.SetUpdatedAt()
	}
	return next
}

// ToggleSlotActive returns a copy of the schedule with the named slot's
// active flag set to isActive. The window is untouched and siblings are
// not revalidated, so a toggle can never fail. Unknown ids are a no-op.
func ToggleSlotActive(schedule models.Schedule, slotID string, isActive bool) models.Schedule {
	next := cloneSchedule(schedule)
	for i := range next.TimeSlots {
		if next.TimeSlots[i].ID == slotID {
			next.TimeSlots[i].IsActive = isActive
			next.SetUpdatedAt()
			break
		}
	}
	return next
}

// HasSlot reports whether the schedule holds a slot with the id.
func HasSlot(schedule models.Schedule, slotID string) bool {
	for _, slot := range schedule.TimeSlots {
		if slot.ID == slotID {
			return true
		}
	}
	return false
}

// ValidTimezone reports whether name is a usable IANA zone name. The
// empty name and the host relative "Local" never qualify.
func ValidTimezone(name string) bool {
	if name == "" || strings.EqualFold(name, "Local") {
		return false
	}
	_, err := time.LoadLocation(name)
	return err == nil
}

// NewSchedule builds an empty active schedule owned by ownerID. The
// timezone must name a zone the host's IANA database knows.
func NewSchedule(ownerID, name, description, timezone string) (models.Schedule, error) {
	if !ValidTimezone(timezone) {
		return models.Schedule{}, exceptions.ErrInvalidTimezone(nil)
	}
	schedule := models.Schedule{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		Timezone:    timezone,
		IsActive:    true,
		TimeSlots:   []models.TimeSlot{},
	}
	schedule.SetCreatedAtUpdatedAt()
	return schedule, nil
}

// CloneSchedule copies a template schedule for ownerID under a new name.
// Slots keep their windows and active flags but receive fresh ids, and
// the clone never inherits the template's default mark.
func CloneSchedule(template models.Schedule, ownerID, name string) models.Schedule {
	clone := cloneSchedule(template)
	clone.ID = uuid.NewString()
	clone.OwnerID = ownerID
	clone.Name = name
	clone.IsDefault = false
	for i := range clone.TimeSlots {
		clone.TimeSlots[i].ID = uuid.NewString()
	}
	clone.SetCreatedAtUpdatedAt()
	return clone
}

func cloneSchedule(schedule models.Schedule) models.Schedule {
	next := schedule
	next.TimeSlots = make([]models.TimeSlot, len(schedule.TimeSlots))
	copy(next.TimeSlots, schedule.TimeSlots)
	return next
}
