package schedules

import (
	"context"
	"testing"
	"time"

	"scheduling-core/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureStoredSchedule(id, ownerID string, createdAt time.Time) models.Schedule {
	schedule := models.Schedule{
		ID:       id,
		OwnerID:  ownerID,
		Name:     "Working Hours",
		Timezone: "Asia/Jakarta",
		IsActive: true,
		TimeSlots: []models.TimeSlot{
			{ID: id + "-slot", Day: 0, StartTime: "09:00:00", EndTime: "10:00:00", IsActive: true},
		},
	}
	schedule.CreatedAt = createdAt
	schedule.UpdatedAt = createdAt
	return schedule
}

func TestScheduleMemoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Round Trips A Schedule Through Its Encoded Form", func(t *testing.T) {
		repo := NewScheduleMemoryRepository()
		createdAt := time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC)
		schedule := models.Schedule{
			ID:          "schedule-round-trip",
			OwnerID:     "practitioner-1",
			Name:        "Working Hours",
			Description: "Weekday mornings",
			Timezone:    "Asia/Jakarta",
			IsDefault:   true,
			IsActive:    true,
			TimeSlots: []models.TimeSlot{
				{ID: "slot-1", Day: 0, StartTime: "09:00:00", EndTime: "10:30:00", IsActive: true},
				{ID: "slot-2", Day: 4, StartTime: "13:00:00", EndTime: "14:00:00", IsActive: false},
			},
		}
		schedule.CreatedAt = createdAt
		schedule.UpdatedAt = createdAt

		saved, err := repo.SaveSchedule(ctx, schedule)
		require.NoError(t, err, "save should succeed")
		assert.Equal(t, schedule.ID, saved.ID, "save should keep the caller's id")

		loaded, err := repo.FindScheduleByID(ctx, schedule.ID)
		require.NoError(t, err, "find should succeed")
		require.NotNil(t, loaded, "stored schedule should be found")
		assert.Equal(t, schedule.OwnerID, loaded.OwnerID)
		assert.Equal(t, schedule.Name, loaded.Name)
		assert.Equal(t, schedule.Description, loaded.Description)
		assert.Equal(t, schedule.Timezone, loaded.Timezone)
		assert.Equal(t, schedule.IsDefault, loaded.IsDefault)
		assert.Equal(t, schedule.IsActive, loaded.IsActive)
		assert.Equal(t, schedule.TimeSlots, loaded.TimeSlots, "slots should survive the round trip unchanged")
		assert.True(t, createdAt.Equal(loaded.CreatedAt), "created at should survive the round trip")
		assert.True(t, createdAt.Equal(loaded.UpdatedAt), "updated at should survive the round trip")
	})

	t.Run("Assigns An ID When Missing", func(t *testing.T) {
		repo := NewScheduleMemoryRepository()
		schedule := fixtureStoredSchedule("", "practitioner-1", time.Now())

		saved, err := repo.SaveSchedule(ctx, schedule)
		require.NoError(t, err, "save should succeed")
		require.NotEmpty(t, saved.ID, "save should assign an id")

		loaded, err := repo.FindScheduleByID(ctx, saved.ID)
		require.NoError(t, err, "find should succeed")
		require.NotNil(t, loaded, "schedule should be stored under the assigned id")
	})

	t.Run("Find Unknown Returns Nothing", func(t *testing.T) {
		repo := NewScheduleMemoryRepository()

		loaded, err := repo.FindScheduleByID(ctx, "missing")
		assert.NoError(t, err, "a miss is not an error")
		assert.Nil(t, loaded, "a miss should return nothing")
	})

	t.Run("Hands Out Copies Not Aliases", func(t *testing.T) {
		repo := NewScheduleMemoryRepository()
		_, err := repo.SaveSchedule(ctx, fixtureStoredSchedule("schedule-copy", "practitioner-1", time.Now()))
		require.NoError(t, err, "save should succeed")

		first, err := repo.FindScheduleByID(ctx, "schedule-copy")
		require.NoError(t, err, "find should succeed")
		first.TimeSlots[0].StartTime = "23:00:00"
		first.Name = "Scribbled"

		second, err := repo.FindScheduleByID(ctx, "schedule-copy")
		require.NoError(t, err, "find should succeed")
		assert.Equal(t, "09:00:00", second.TimeSlots[0].StartTime, "mutating a loaded schedule must not touch the store")
		assert.Equal(t, "Working Hours", second.Name, "mutating a loaded schedule must not touch the store")
	})

	t.Run("Loads Only The Owner's Schedules In Creation Order", func(t *testing.T) {
		repo := NewScheduleMemoryRepository()
		base := time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC)

		later := fixtureStoredSchedule("schedule-later", "practitioner-1", base.Add(2*time.Hour))
		earlier := fixtureStoredSchedule("schedule-earlier", "practitioner-1", base)
		foreign := fixtureStoredSchedule("schedule-foreign", "practitioner-2", base.Add(time.Hour))

		for _, schedule := range []models.Schedule{later, earlier, foreign} {
			_, err := repo.SaveSchedule(ctx, schedule)
			require.NoError(t, err, "save should succeed")
		}

		schedules, err := repo.LoadSchedules(ctx, "practitioner-1")
		require.NoError(t, err, "load should succeed")
		require.Len(t, schedules, 2, "only the owner's schedules should load")
		assert.Equal(t, "schedule-earlier", schedules[0].ID, "older schedules should come first")
		assert.Equal(t, "schedule-later", schedules[1].ID)
	})

	t.Run("Breaks Creation Ties By ID", func(t *testing.T) {
		repo := NewScheduleMemoryRepository()
		createdAt := time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC)

		for _, id := range []string{"schedule-b", "schedule-a"} {
			_, err := repo.SaveSchedule(ctx, fixtureStoredSchedule(id, "practitioner-1", createdAt))
			require.NoError(t, err, "save should succeed")
		}

		schedules, err := repo.LoadSchedules(ctx, "practitioner-1")
		require.NoError(t, err, "load should succeed")
		require.Len(t, schedules, 2)
		assert.Equal(t, "schedule-a", schedules[0].ID, "equal timestamps should order by id")
	})

	t.Run("Load For An Unknown Owner Returns Empty", func(t *testing.T) {
		repo := NewScheduleMemoryRepository()

		schedules, err := repo.LoadSchedules(ctx, "practitioner-nobody")
		assert.NoError(t, err, "an empty result is not an error")
		assert.Empty(t, schedules)
	})

	t.Run("Delete Is Idempotent", func(t *testing.T) {
		repo := NewScheduleMemoryRepository()
		_, err := repo.SaveSchedule(ctx, fixtureStoredSchedule("schedule-delete", "practitioner-1", time.Now()))
		require.NoError(t, err, "save should succeed")

		assert.NoError(t, repo.DeleteSchedule(ctx, "schedule-delete"), "first delete should succeed")
		assert.NoError(t, repo.DeleteSchedule(ctx, "schedule-delete"), "repeated delete should stay quiet")

		loaded, err := repo.FindScheduleByID(ctx, "schedule-delete")
		assert.NoError(t, err)
		assert.Nil(t, loaded, "deleted schedule should be gone")
	})
}
