package main

import (
	"context"
	"fmt"
	"scheduling-core/internal/app/config"
	"scheduling-core/internal/app/contracts"
	"scheduling-core/internal/app/drivers/logger"
	"scheduling-core/internal/app/services/core/schedules"
	"scheduling-core/internal/pkg/constvars"
	"scheduling-core/internal/pkg/dto/requests"
	"time"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

func main() {
	fmt.Println(fmt.Sprintf("Version: %s", Version))
	fmt.Println(fmt.Sprintf("Tag: %s", Tag))

	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	internalConfig.App.Version = Version

	log := logger.NewLogrusLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	scheduleRepository := schedules.NewScheduleMemoryRepository()
	scheduleUsecase := schedules.NewScheduleUsecase(scheduleRepository, internalConfig, zapLogger)

	runWalkthrough(log, scheduleUsecase)
}

// runWalkthrough drives one practitioner's schedule through its whole
// lifecycle and prints every intermediate view.
func runWalkthrough(log *logrus.Logger, scheduleUsecase contracts.ScheduleUsecase) {
	ctx := context.Background()

	detail, err := scheduleUsecase.CreateSchedule(ctx, &requests.CreateScheduleRequest{
		OwnerID:     "practitioner-84",
		Name:        constvars.DEFAULT_SCHEDULE_NAME,
		Description: "Consultations at the clinic",
		Timezone:    "Asia/Jakarta",
		IsDefault:   true,
	})
	if err != nil {
		log.Fatalf("Error creating schedule: %v", err)
	}

	windows := []struct {
		day        int
		start, end string
	}{
		{day: 0, start: "09:00", end: "12:00"},
		{day: 0, start: "13:30", end: "17:00"},
		{day: 1, start: "09:00", end: "12:00"},
		{day: 5, start: "10:00", end: "14:00"},
	}
	for _, window := range windows {
		detail, err = scheduleUsecase.AddTimeSlot(ctx, &requests.AddTimeSlotRequest{
			ScheduleID: detail.ID,
			Day:        window.day,
			StartTime:  window.start,
			EndTime:    window.end,
		})
		if err != nil {
			log.Fatalf("Error adding slot: %v", err)
		}
	}

	// Collides with the monday morning window and is refused.
	if _, err := scheduleUsecase.AddTimeSlot(ctx, &requests.AddTimeSlotRequest{
		ScheduleID: detail.ID,
		Day:        0,
		StartTime:  "11:00",
		EndTime:    "13:00",
	}); err != nil {
		log.Printf("Overlapping slot refused: %v", err)
	}

	saturday := detail.Days[5]
	detail, err = scheduleUsecase.ToggleTimeSlot(ctx, &requests.ToggleTimeSlotRequest{
		ScheduleID: detail.ID,
		SlotID:     saturday.Slots[0].ID,
		IsActive:   false,
	})
	if err != nil {
		log.Fatalf("Error pausing slot: %v", err)
	}
	printJSON(log, "Schedule detail", detail)

	clone, err := scheduleUsecase.CloneSchedule(ctx, &requests.CloneScheduleRequest{
		TemplateID: detail.ID,
		OwnerID:    "practitioner-91",
		Name:       "Borrowed Hours",
	})
	if err != nil {
		log.Fatalf("Error cloning schedule: %v", err)
	}
	printJSON(log, "Cloned schedule", clone)

	summaries, err := scheduleUsecase.ListSchedules(ctx, "practitioner-84")
	if err != nil {
		log.Fatalf("Error listing schedules: %v", err)
	}
	printJSON(log, "Schedule summaries", summaries)

	week, err := scheduleUsecase.GetBookableWeek(ctx, detail.ID)
	if err != nil {
		log.Fatalf("Error loading bookable week: %v", err)
	}
	printJSON(log, "Bookable week", week)

	now := time.Now()
	for _, lead := range []time.Duration{3 * time.Hour, 72 * time.Hour} {
		start := now.Add(lead)
		log.Printf("Booking starting in %s reschedulable: %t", lead, scheduleUsecase.IsReschedulable(start, now))
	}
}

func printJSON(log *logrus.Logger, label string, value interface{}) {
	raw, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		log.Fatalf("Error encoding %s: %v", label, err)
	}
	fmt.Printf("%s:\n%s\n", label, raw)
}
