package schedules

import (
	"scheduling-core/internal/app/models"
	"scheduling-core/internal/app/services/core/availability"
	"scheduling-core/internal/pkg/dto/responses"
)

func buildSlotView(slot models.TimeSlot) responses.SlotView {
	view := responses.SlotView{
		ID:        slot.ID,
		Day:       slot.Day,
		DayName:   availability.DayOfWeek(slot.Day).String(),
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
		IsActive:  slot.IsActive,
	}
	start, okStart := availability.ParseClockTime(slot.StartTime)
	end, okEnd := availability.ParseClockTime(slot.EndTime)
	if okStart && okEnd {
		view.DurationLabel = availability.DurationLabel(start, end)
	}
	return view
}

func (uc *scheduleUsecase) buildScheduleDetail(schedule models.Schedule) *responses.ScheduleDetail {
	detail := &responses.ScheduleDetail{
		ID:              schedule.ID,
		OwnerID:         schedule.OwnerID,
		Name:            schedule.Name,
		Description:     schedule.Description,
		Timezone:        schedule.Timezone,
		IsDefault:       schedule.IsDefault,
		IsActive:        schedule.IsActive,
		ActiveSlotCount: availability.ActiveSlotCount(schedule),
	}
	for day := availability.Monday; day <= availability.Sunday; day++ {
		ordered := availability.DaySlotsChronological(schedule.TimeSlots, day)
		views := make([]responses.SlotView, 0, len(ordered))
		for _, slot := range ordered {
			views = append(views, buildSlotView(slot))
		}
		detail.Days = append(detail.Days, responses.DaySlots{
			Day:     int(day),
			DayName: day.String(),
			Slots:   views,
		})
	}
	return detail
}

// buildScheduleSummary compacts a schedule into its list row. The preview
// walks the week from Monday and keeps the earliest slots up to the
// configured count.
func (uc *scheduleUsecase) buildScheduleSummary(schedule models.Schedule) responses.ScheduleSummary {
	summary := responses.ScheduleSummary{
		ID:              schedule.ID,
		Name:            schedule.Name,
		Timezone:        schedule.Timezone,
		IsDefault:       schedule.IsDefault,
		IsActive:        schedule.IsActive,
		ActiveSlotCount: availability.ActiveSlotCount(schedule),
	}
	limit := uc.InternalConfig.Schedule.PreviewSlotCount
	for day := availability.Monday; day <= availability.Sunday; day++ {
		remaining := limit - len(summary.Preview)
		if remaining <= 0 {
			break
		}
		for _, slot := range availability.PreviewSlots(schedule.TimeSlots, day, remaining) {
			summary.Preview = append(summary.Preview, buildSlotView(slot))
		}
	}
	return summary
}

func (uc *scheduleUsecase) buildBookableWeek(schedule models.Schedule) *responses.BookableWeek {
	week := &responses.BookableWeek{
		ScheduleID: schedule.ID,
		Timezone:   schedule.Timezone,
	}
	ranges := availability.BookableRanges(schedule)
	for day := availability.Monday; day <= availability.Sunday; day++ {
		bookableDay := responses.BookableDay{
			Day:     int(day),
			DayName: day.String(),
			Ranges:  make([]responses.BookableRange, 0, len(ranges[day])),
		}
		for _, r := range ranges[day] {
			bookableDay.Ranges = append(bookableDay.Ranges, responses.BookableRange{
				StartMinute: r.Start,
				EndMinute:   r.End,
			})
		}
		week.Days = append(week.Days, bookableDay)
	}
	return week
}
