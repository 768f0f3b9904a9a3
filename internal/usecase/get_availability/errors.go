package get_availability

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда площадка не найдена
	ErrFacilityNotFound = errors.New("facility not found")

	// ErrAppointmentTypeNotFound возвращается, когда тип записи не найден
	ErrAppointmentTypeNotFound = errors.New("appointment type not found")

	// ErrInvalidDate возвращается при некорректной дате запроса
	ErrInvalidDate = errors.New("invalid date")

	// ErrFacilityTimezone возвращается при некорректной таймзоне площадки
	ErrFacilityTimezone = errors.New("invalid facility timezone")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
