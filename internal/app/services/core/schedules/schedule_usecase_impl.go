package schedules

import (
	"context"
	"sync"
	"time"

	"scheduling-core/internal/app/config"
	"scheduling-core/internal/app/contracts"
	"scheduling-core/internal/app/models"
	"scheduling-core/internal/app/services/core/availability"
	"scheduling-core/internal/pkg/constvars"
	"scheduling-core/internal/pkg/dto/requests"
	"scheduling-core/internal/pkg/dto/responses"
	"scheduling-core/internal/pkg/exceptions"
	"scheduling-core/internal/pkg/utils"

	"go.uber.org/zap"
)

type scheduleUsecase struct {
	ScheduleRepository contracts.ScheduleRepository
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

var (
	scheduleUsecaseInstance contracts.ScheduleUsecase
	onceScheduleUsecase     sync.Once
)

func NewScheduleUsecase(
	scheduleRepository contracts.ScheduleRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ScheduleUsecase {
	onceScheduleUsecase.Do(func() {
		instance := &scheduleUsecase{
			ScheduleRepository: scheduleRepository,
			InternalConfig:     internalConfig,
			Log:                logger,
		}
		scheduleUsecaseInstance = instance
	})
	return scheduleUsecaseInstance
}

func (uc *scheduleUsecase) CreateSchedule(ctx context.Context, request *requests.CreateScheduleRequest) (*responses.ScheduleDetail, error) {
	uc.Log.Info("scheduleUsecase.CreateSchedule called",
		zap.String(constvars.LoggingOwnerIDKey, request.OwnerID),
	)

	utils.SanitizeCreateScheduleRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Error("scheduleUsecase.CreateSchedule validation failed", zap.Error(err))
		return nil, exceptions.ErrInputValidation(err)
	}

	timezone := request.Timezone
	if timezone == "" {
		timezone = uc.InternalConfig.Schedule.DefaultTimezone
	}
	schedule, err := availability.NewSchedule(request.OwnerID, request.Name, request.Description, timezone)
	if err != nil {
		uc.Log.Error("scheduleUsecase.CreateSchedule cannot build schedule", zap.Error(err))
		return nil, err
	}
	schedule.IsDefault = request.IsDefault

	saved, err := uc.saveWithDefaultRule(ctx, schedule)
	if err != nil {
		return nil, err
	}
	return uc.buildScheduleDetail(saved), nil
}

func (uc *scheduleUsecase) CloneSchedule(ctx context.Context, request *requests.CloneScheduleRequest) (*responses.ScheduleDetail, error) {
	uc.Log.Info("scheduleUsecase.CloneSchedule called",
		zap.String(constvars.LoggingScheduleIDKey, request.TemplateID),
		zap.String(constvars.LoggingOwnerIDKey, request.OwnerID),
	)

	utils.SanitizeCloneScheduleRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Error("scheduleUsecase.CloneSchedule validation failed", zap.Error(err))
		return nil, exceptions.ErrInputValidation(err)
	}

	template, err := uc.findSchedule(ctx, request.TemplateID)
	if err != nil {
		return nil, err
	}

	clone := availability.CloneSchedule(*template, request.OwnerID, request.Name)
	// A stored zone can stop resolving when the host's tzdata moves on.
	if !availability.ValidTimezone(clone.Timezone) {
		if uc.InternalConfig.Schedule.StrictTimezone {
			uc.Log.Error("scheduleUsecase.CloneSchedule template timezone no longer resolves",
				zap.String(constvars.LoggingScheduleIDKey, request.TemplateID),
			)
			return nil, exceptions.ErrInvalidTimezone(nil)
		}
		clone.Timezone = uc.InternalConfig.Schedule.DefaultTimezone
	}
	saved, err := uc.ScheduleRepository.SaveSchedule(ctx, clone)
	if err != nil {
		uc.Log.Error("scheduleUsecase.CloneSchedule cannot save clone", zap.Error(err))
		return nil, err
	}
	return uc.buildScheduleDetail(saved), nil
}

func (uc *scheduleUsecase) ListSchedules(ctx context.Context, ownerID string) ([]responses.ScheduleSummary, error) {
	uc.Log.Info("scheduleUsecase.ListSchedules called",
		zap.String(constvars.LoggingOwnerIDKey, ownerID),
	)

	if ownerID == "" {
		return nil, exceptions.ErrInputValidation(nil)
	}

	schedules, err := uc.ScheduleRepository.LoadSchedules(ctx, ownerID)
	if err != nil {
		uc.Log.Error("scheduleUsecase.ListSchedules cannot load schedules", zap.Error(err))
		return nil, err
	}
	uc.Log.Info("scheduleUsecase.ListSchedules loaded schedules",
		zap.String(constvars.LoggingOwnerIDKey, ownerID),
		zap.Int(constvars.LoggingCountKey, len(schedules)),
	)

	summaries := make([]responses.ScheduleSummary, 0, len(schedules))
	for _, schedule := range schedules {
		summaries = append(summaries, uc.buildScheduleSummary(schedule))
	}
	return summaries, nil
}

func (uc *scheduleUsecase) GetSchedule(ctx context.Context, scheduleID string) (*responses.ScheduleDetail, error) {
	uc.Log.Info("scheduleUsecase.GetSchedule called",
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
	)

	schedule, err := uc.findSchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	return uc.buildScheduleDetail(*schedule), nil
}

func (uc *scheduleUsecase) DeleteSchedule(ctx context.Context, scheduleID string) error {
	uc.Log.Info("scheduleUsecase.DeleteSchedule called",
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
	)

	if _, err := uc.findSchedule(ctx, scheduleID); err != nil {
		return err
	}
	if err := uc.ScheduleRepository.DeleteSchedule(ctx, scheduleID); err != nil {
		uc.Log.Error("scheduleUsecase.DeleteSchedule cannot delete schedule", zap.Error(err))
		return err
	}
	return nil
}

func (uc *scheduleUsecase) SetDefaultSchedule(ctx context.Context, scheduleID string) (*responses.ScheduleDetail, error) {
	uc.Log.Info("scheduleUsecase.SetDefaultSchedule called",
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
	)

	schedule, err := uc.findSchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	schedule.IsDefault = true
	schedule.SetUpdatedAt()
	saved, err := uc.saveWithDefaultRule(ctx, *schedule)
	if err != nil {
		return nil, err
	}
	return uc.buildScheduleDetail(saved), nil
}

func (uc *scheduleUsecase) SetScheduleActive(ctx context.Context, scheduleID string, isActive bool) (*responses.ScheduleDetail, error) {
	uc.Log.Info("scheduleUsecase.SetScheduleActive called",
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
		zap.Bool("is_active", isActive),
	)

	schedule, err := uc.findSchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	schedule.IsActive = isActive
	schedule.SetUpdatedAt()
	saved, err := uc.ScheduleRepository.SaveSchedule(ctx, *schedule)
	if err != nil {
		uc.Log.Error("scheduleUsecase.SetScheduleActive cannot save schedule", zap.Error(err))
		return nil, err
	}
	return uc.buildScheduleDetail(saved), nil
}

func (uc *scheduleUsecase) AddTimeSlot(ctx context.Context, request *requests.AddTimeSlotRequest) (*responses.ScheduleDetail, error) {
	uc.Log.Info("scheduleUsecase.AddTimeSlot called",
		zap.String(constvars.LoggingScheduleIDKey, request.ScheduleID),
		zap.Int(constvars.LoggingDayKey, request.Day),
	)

	utils.SanitizeAddTimeSlotRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Error("scheduleUsecase.AddTimeSlot validation failed", zap.Error(err))
		return nil, exceptions.ErrInputValidation(err)
	}

	schedule, err := uc.findSchedule(ctx, request.ScheduleID)
	if err != nil {
		return nil, err
	}

	next, slot, err := availability.AddTimeSlot(*schedule, availability.DayOfWeek(request.Day), request.StartTime, request.EndTime)
	if err != nil {
		uc.Log.Error("scheduleUsecase.AddTimeSlot rejected",
			zap.String(constvars.LoggingScheduleIDKey, request.ScheduleID),
			zap.Error(err),
		)
		return nil, err
	}

	saved, err := uc.ScheduleRepository.SaveSchedule(ctx, next)
	if err != nil {
		uc.Log.Error("scheduleUsecase.AddTimeSlot cannot save schedule", zap.Error(err))
		return nil, err
	}

	uc.Log.Info("scheduleUsecase.AddTimeSlot stored slot",
		zap.String(constvars.LoggingScheduleIDKey, saved.ID),
		zap.String(constvars.LoggingSlotIDKey, slot.ID),
	)
	return uc.buildScheduleDetail(saved), nil
}

func (uc *scheduleUsecase) RemoveTimeSlot(ctx context.Context, scheduleID, slotID string) (*responses.ScheduleDetail, error) {
	uc.Log.Info("scheduleUsecase.RemoveTimeSlot called",
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
		zap.String(constvars.LoggingSlotIDKey, slotID),
	)

	schedule, err := uc.findSchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	next := availability.RemoveTimeSlot(*schedule, slotID)
	saved, err := uc.ScheduleRepository.SaveSchedule(ctx, next)
	if err != nil {
		uc.Log.Error("scheduleUsecase.RemoveTimeSlot cannot save schedule", zap.Error(err))
		return nil, err
	}
	return uc.buildScheduleDetail(saved), nil
}

func (uc *scheduleUsecase) ToggleTimeSlot(ctx context.Context, request *requests.ToggleTimeSlotRequest) (*responses.ScheduleDetail, error) {
	uc.Log.Info("scheduleUsecase.ToggleTimeSlot called",
		zap.String(constvars.LoggingScheduleIDKey, request.ScheduleID),
		zap.String(constvars.LoggingSlotIDKey, request.SlotID),
		zap.Bool("is_active", request.IsActive),
	)

	utils.SanitizeToggleTimeSlotRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Error("scheduleUsecase.ToggleTimeSlot validation failed", zap.Error(err))
		return nil, exceptions.ErrInputValidation(err)
	}

	schedule, err := uc.findSchedule(ctx, request.ScheduleID)
	if err != nil {
		return nil, err
	}

	next := availability.ToggleSlotActive(*schedule, request.SlotID, request.IsActive)
	saved, err := uc.ScheduleRepository.SaveSchedule(ctx, next)
	if err != nil {
		uc.Log.Error("scheduleUsecase.ToggleTimeSlot cannot save schedule", zap.Error(err))
		return nil, err
	}
	return uc.buildScheduleDetail(saved), nil
}

func (uc *scheduleUsecase) GetBookableWeek(ctx context.Context, scheduleID string) (*responses.BookableWeek, error) {
	uc.Log.Info("scheduleUsecase.GetBookableWeek called",
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
	)

	schedule, err := uc.findSchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	return uc.buildBookableWeek(*schedule), nil
}

func (uc *scheduleUsecase) IsReschedulable(scheduledStart, now time.Time) bool {
	return availability.IsReschedulable(scheduledStart, now, uc.InternalConfig.Schedule.RescheduleCutoff)
}

// findSchedule resolves an id or raises the not found error the caller
// returns untouched.
func (uc *scheduleUsecase) findSchedule(ctx context.Context, scheduleID string) (*models.Schedule, error) {
	schedule, err := uc.ScheduleRepository.FindScheduleByID(ctx, scheduleID)
	if err != nil {
		uc.Log.Error("scheduleUsecase cannot read schedule",
			zap.String(constvars.LoggingScheduleIDKey, scheduleID),
			zap.Error(err),
		)
		return nil, err
	}
	if schedule == nil {
		return nil, exceptions.ErrScheduleNotFound()
	}
	return schedule, nil
}

// saveWithDefaultRule persists the schedule, first demoting any other
// default the owner holds so at most one schedule carries the mark.
func (uc *scheduleUsecase) saveWithDefaultRule(ctx context.Context, schedule models.Schedule) (models.Schedule, error) {
	if schedule.IsDefault {
		existing, err := uc.ScheduleRepository.LoadSchedules(ctx, schedule.OwnerID)
		if err != nil {
			uc.Log.Error("scheduleUsecase cannot load schedules for default demotion", zap.Error(err))
			return models.Schedule{}, err
		}
		for _, other := range existing {
			if other.ID == schedule.ID || !other.IsDefault {
				continue
			}
			other.IsDefault = false
			other.SetUpdatedAt()
			if _, err := uc.ScheduleRepository.SaveSchedule(ctx, other); err != nil {
				uc.Log.Error("scheduleUsecase cannot demote previous default",
					zap.String(constvars.LoggingScheduleIDKey, other.ID),
					zap.Error(err),
				)
				return models.Schedule{}, err
			}
			uc.Log.Info("scheduleUsecase demoted previous default",
				zap.String(constvars.LoggingScheduleIDKey, other.ID),
			)
		}
	}

	saved, err := uc.ScheduleRepository.SaveSchedule(ctx, schedule)
	if err != nil {
		uc.Log.Error("scheduleUsecase cannot save schedule", zap.Error(err))
		return models.Schedule{}, err
	}
	return saved, nil
}
