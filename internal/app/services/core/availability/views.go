package availability

import (
	"sort"

	"scheduling-core/internal/app/models"
	"scheduling-core/internal/pkg/constvars"
)

// GroupSlotsByDay buckets slots into the seven weekdays. Stored order is
// preserved inside each bucket; callers that need a chronological view
// use DaySlotsChronological instead. Slots with a day outside 0..6 are
// dropped, they cannot be shown on any weekday column.
func GroupSlotsByDay(slots []models.TimeSlot) [constvars.DaysPerWeek][]models.TimeSlot {
	var grouped [constvars.DaysPerWeek][]models.TimeSlot
	for _, slot := range slots {
		if slot.Day < constvars.DayMonday || slot.Day > constvars.DaySunday {
			continue
		}
		grouped[slot.Day] = append(grouped[slot.Day], slot)
	}
	return grouped
}

// DaySlotsChronological returns day's slots ordered by start minute, then
// end minute. The sort is stable so equal windows keep stored order.
func DaySlotsChronological(slots []models.TimeSlot, day DayOfWeek) []models.TimeSlot {
	var out []models.TimeSlot
	for _, slot := range slots {
		if slot.Day == int(day) {
			out = append(out, slot)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		si, _ := ParseClockTime(out[i].StartTime)
		sj, _ := ParseClockTime(out[j].StartTime)
		if si.MinuteOfDay() != sj.MinuteOfDay() {
			return si.MinuteOfDay() < sj.MinuteOfDay()
		}
		ei, _ := ParseClockTime(out[i].EndTime)
		ej, _ := ParseClockTime(out[j].EndTime)
		return ei.MinuteOfDay() < ej.MinuteOfDay()
	})
	return out
}

// PreviewSlots returns up to count of day's earliest slots for compact
// list rows.
func PreviewSlots(slots []models.TimeSlot, day DayOfWeek, count int) []models.TimeSlot {
	ordered := DaySlotsChronological(slots, day)
	if count < 0 {
		count = 0
	}
	if len(ordered) > count {
		ordered = ordered[:count]
	}
	return ordered
}

// ActiveSlotCount counts slots whose active flag is set across the whole
// week.
func ActiveSlotCount(schedule models.Schedule) int {
	count := 0
	for _, slot := range schedule.TimeSlots {
		if slot.IsActive {
			count++
		}
	}
	return count
}

// BookableRanges exposes the active windows of an active schedule as per
// day minute ranges, ordered chronologically. An inactive schedule offers
// no range at all, and inactive slots stay invisible here even though
// they still block the editor from reusing their window.
func BookableRanges(schedule models.Schedule) [constvars.DaysPerWeek][]MinuteRange {
	var ranges [constvars.DaysPerWeek][]MinuteRange
	if !schedule.IsActive {
		return ranges
	}
	for day := Monday; day <= Sunday; day++ {
		for _, slot := range DaySlotsChronological(schedule.TimeSlots, day) {
			if !slot.IsActive {
				continue
			}
			start, end, err := parseStoredSlot(slot)
			if err != nil {
				continue
			}
			ranges[day] = append(ranges[day], MinuteRange{
				Start: start.MinuteOfDay(),
				End:   end.MinuteOfDay(),
			})
		}
	}
	return ranges
}
