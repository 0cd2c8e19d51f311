package availability

import (
	"scheduling-core/internal/app/models"
	"scheduling-core/internal/pkg/exceptions"
)

// Overlaps reports whether two half open wall clock windows intersect.
// [aStart, aEnd) overlaps [bStart, bEnd) iff aStart < bEnd && bStart < aEnd,
// so windows that merely touch at an endpoint do not collide and back to
// back slots stay legal.
func Overlaps(aStart, aEnd, bStart, bEnd ClockTime) bool {
	return aStart.MinuteOfDay() < bEnd.MinuteOfDay() && bStart.MinuteOfDay() < aEnd.MinuteOfDay()
}

// parseStoredSlot re-reads the persisted window of a slot. Slots are
// validated before they are stored, so a failure here means the store was
// edited outside this package and the operation must stop rather than
// work on a half read window.
func parseStoredSlot(slot models.TimeSlot) (ClockTime, ClockTime, error) {
	start, ok := ParseClockTime(slot.StartTime)
	if !ok {
		return ClockTime{}, ClockTime{}, exceptions.ErrInvalidClockFormat(nil, "stored start_time")
	}
	end, ok := ParseClockTime(slot.EndTime)
	if !ok {
		return ClockTime{}, ClockTime{}, exceptions.ErrInvalidClockFormat(nil, "stored end_time")
	}
	return start, end, nil
}

// conflictsOnDay scans the schedule's slots on day for any window the
// candidate would overlap. Inactive slots still hold their range; freeing
// it takes a delete, not a toggle.
func conflictsOnDay(schedule models.Schedule, day DayOfWeek, start, end ClockTime) (bool, error) {
	for _, existing := range schedule.TimeSlots {
		if existing.Day != int(day) {
			continue
		}
		exStart, exEnd, err := parseStoredSlot(existing)
		if err != nil {
			return false, err
		}
		if Overlaps(start, end, exStart, exEnd) {
			return true, nil
		}
	}
	return false, nil
}
