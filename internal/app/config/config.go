package config

import (
	"time"

	"scheduling-core/internal/pkg/constvars"
	"scheduling-core/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:      utils.GetEnvString("APP_ENV", "development"),
			Name:     utils.GetEnvString("APP_NAME", "scheduling-core"),
			Version:  utils.GetEnvString("APP_VERSION", "v1.0"),
			Timezone: utils.GetEnvString("APP_TIMEZONE", "Asia/Jakarta"),
		},
		Schedule: Schedule{
			DefaultTimezone:  utils.GetEnvString("SCHEDULE_DEFAULT_TIMEZONE", "Asia/Jakarta"),
			RescheduleCutoff: utils.GetEnvDuration("SCHEDULE_RESCHEDULE_CUTOFF", constvars.DEFAULT_RESCHEDULE_CUTOFF_HOURS*time.Hour),
			PreviewSlotCount: utils.GetEnvInt("SCHEDULE_PREVIEW_SLOT_COUNT", 2),
			StrictTimezone:   utils.GetEnvBool("SCHEDULE_STRICT_TIMEZONE", true),
		},
	}
}
