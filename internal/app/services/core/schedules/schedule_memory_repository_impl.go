package schedules

import (
	"context"
	"sort"
	"sync"

	"scheduling-core/internal/app/contracts"
	"scheduling-core/internal/app/models"
	"scheduling-core/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// ScheduleMemoryRepository keeps schedules in their encoded persisted
// form, so every save and load passes through the JSON representation a
// real store would hold. That keeps the round trip honest instead of
// handing callers aliases of shared structs.
type ScheduleMemoryRepository struct {
	mu      sync.RWMutex
	encoded map[string][]byte
}

func NewScheduleMemoryRepository() contracts.ScheduleRepository {
	return &ScheduleMemoryRepository{
		encoded: make(map[string][]byte),
	}
}

func (repo *ScheduleMemoryRepository) LoadSchedules(ctx context.Context, ownerID string) ([]models.Schedule, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	schedules := make([]models.Schedule, 0)
	for _, raw := range repo.encoded {
		var schedule models.Schedule
		if err := json.Unmarshal(raw, &schedule); err != nil {
			return nil, exceptions.ErrStoreLoadSchedules(err)
		}
		if schedule.OwnerID == ownerID {
			schedules = append(schedules, schedule)
		}
	}

	sort.Slice(schedules, func(i, j int) bool {
		if !schedules[i].CreatedAt.Equal(schedules[j].CreatedAt) {
			return schedules[i].CreatedAt.Before(schedules[j].CreatedAt)
		}
		return schedules[i].ID < schedules[j].ID
	})
	return schedules, nil
}

func (repo *ScheduleMemoryRepository) FindScheduleByID(ctx context.Context, scheduleID string) (*models.Schedule, error) {
	repo.mu.RLock()
	raw, ok := repo.encoded[scheduleID]
	repo.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	var schedule models.Schedule
	if err := json.Unmarshal(raw, &schedule); err != nil {
		return nil, exceptions.ErrStoreLoadSchedules(err)
	}
	return &schedule, nil
}

func (repo *ScheduleMemoryRepository) SaveSchedule(ctx context.Context, schedule models.Schedule) (models.Schedule, error) {
	if schedule.ID == "" {
		schedule.ID = uuid.NewString()
	}

	raw, err := json.Marshal(schedule)
	if err != nil {
		return models.Schedule{}, exceptions.ErrStoreSaveSchedule(err)
	}

	repo.mu.Lock()
	repo.encoded[schedule.ID] = raw
	repo.mu.Unlock()
	return schedule, nil
}

func (repo *ScheduleMemoryRepository) DeleteSchedule(ctx context.Context, scheduleID string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	delete(repo.encoded, scheduleID)
	return nil
}
