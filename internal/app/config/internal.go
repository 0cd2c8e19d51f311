package config

import "time"

type InternalConfig struct {
	App      App      `mapstructure:"app"`
	Schedule Schedule `mapstructure:"schedule"`
}

type App struct {
	Env      string `mapstructure:"env"`
	Name     string `mapstructure:"name"`
	Version  string `mapstructure:"version"`
	Timezone string `mapstructure:"timezone"`
}

// Schedule holds the knobs the availability model reads at runtime.
type Schedule struct {
	// DefaultTimezone is assigned to schedules created without one.
	DefaultTimezone string `mapstructure:"default_timezone"`
	// RescheduleCutoff is the minimum lead time before a booked start
	// below which rescheduling is refused.
	RescheduleCutoff time.Duration `mapstructure:"reschedule_cutoff"`
	// PreviewSlotCount caps how many slots list views show per day.
	PreviewSlotCount int `mapstructure:"preview_slot_count"`
	// StrictTimezone rejects schedules whose timezone the host has no
	// IANA data for instead of falling back to the default.
	StrictTimezone bool `mapstructure:"strict_timezone"`
}
