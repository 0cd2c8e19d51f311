package exceptions

import (
	"fmt"

	"scheduling-core/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrInvalidClockFormat = func(err error, field string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevInvalidFormat, field))
	}
	ErrSlotEndNotAfterStart = func() *CustomError {
		return WrapWithoutError(constvars.StatusUnprocessableEntity, constvars.ErrClientEndNotAfterStart, constvars.ErrDevSlotEndNotAfterStart)
	}
	ErrSlotOverlap = func(day int) *CustomError {
		return WrapWithoutError(constvars.StatusConflict, constvars.ErrClientSlotOverlap, fmt.Sprintf(constvars.ErrDevSlotOverlap, day))
	}
	ErrInvalidDayOfWeek = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevInvalidDayOfWeek)
	}
	ErrInvalidTimezone = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevInvalidTimezone)
	}
	ErrScheduleNotFound = func() *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientScheduleNotFound, constvars.ErrDevScheduleNotFound)
	}
	ErrStoreSaveSchedule = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevStoreFailedToSave)
	}
	ErrStoreLoadSchedules = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevStoreFailedToLoad)
	}
)
