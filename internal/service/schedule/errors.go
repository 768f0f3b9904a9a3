package schedule

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда площадка не найдена
	ErrFacilityNotFound = errors.New("schedule.service: facility not found")

	// ErrAppointmentTypeNotFound возвращается, когда тип записи не найден
	ErrAppointmentTypeNotFound = errors.New("schedule.service: appointment type not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedule.service: invalid input")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule.service: internal error")
)
