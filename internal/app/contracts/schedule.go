package contracts

import (
	"context"
	"time"

	"scheduling-core/internal/app/models"
	"scheduling-core/internal/pkg/dto/requests"
	"scheduling-core/internal/pkg/dto/responses"
)

type ScheduleUsecase interface {
	CreateSchedule(ctx context.Context, request *requests.CreateScheduleRequest) (*responses.ScheduleDetail, error)
	CloneSchedule(ctx context.Context, request *requests.CloneScheduleRequest) (*responses.ScheduleDetail, error)
	ListSchedules(ctx context.Context, ownerID string) ([]responses.ScheduleSummary, error)
	GetSchedule(ctx context.Context, scheduleID string) (*responses.ScheduleDetail, error)
	DeleteSchedule(ctx context.Context, scheduleID string) error
	SetDefaultSchedule(ctx context.Context, scheduleID string) (*responses.ScheduleDetail, error)
	SetScheduleActive(ctx context.Context, scheduleID string, isActive bool) (*responses.ScheduleDetail, error)
	AddTimeSlot(ctx context.Context, request *requests.AddTimeSlotRequest) (*responses.ScheduleDetail, error)
	RemoveTimeSlot(ctx context.Context, scheduleID, slotID string) (*responses.ScheduleDetail, error)
	ToggleTimeSlot(ctx context.Context, request *requests.ToggleTimeSlotRequest) (*responses.ScheduleDetail, error)
	GetBookableWeek(ctx context.Context, scheduleID string) (*responses.BookableWeek, error)
	// IsReschedulable applies the configured cutoff to a booked start.
	// It is a pure verdict, so it carries no context and no error.
	IsReschedulable(scheduledStart, now time.Time) bool
}

// ScheduleRepository is the persistence collaborator. Implementations
// must round trip every schedule field losslessly, including the zero
// padded HH:MM:SS slot times and the IANA timezone name.
type ScheduleRepository interface {
	LoadSchedules(ctx context.Context, ownerID string) ([]models.Schedule, error)
	FindScheduleByID(ctx context.Context, scheduleID string) (*models.Schedule, error)
	SaveSchedule(ctx context.Context, schedule models.Schedule) (models.Schedule, error)
	DeleteSchedule(ctx context.Context, scheduleID string) error
}
