package utils

import (
	"time"

	"scheduling-core/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("clock_time", validateClockTime)
	validate.RegisterValidation("day_of_week", validateDayOfWeek)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// clock_time accepts the canonical HH:MM:SS form and the HH:MM form
// editors send before seconds are normalized in.
func validateClockTime(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if _, err := time.Parse(constvars.ClockLayoutSeconds, raw); err == nil {
		return true
	}
	_, err := time.Parse(constvars.ClockLayoutMinutes, raw)
	return err == nil
}

func validateDayOfWeek(fl validator.FieldLevel) bool {
	day := fl.Field().Int()
	return day >= constvars.DayMonday && day <= constvars.DaySunday
}
