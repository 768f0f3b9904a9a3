package get_availability

import (
	"context"
	"time"

	"github.com/akash925/Dock-BookingService/internal/domain"
)

// FacilityRepository интерфейс репозитория площадок
type FacilityRepository interface {
	// GetByID получает площадку вместе с её часами работы и переопределениями праздников
	GetByID(ctx context.Context, organizationID, facilityID int64) (*domain.Facility, error)
}

// AppointmentTypeRepository интерфейс репозитория типов записей
type AppointmentTypeRepository interface {
	// GetByID получает тип записи вместе с его переопределениями часов
	GetByID(ctx context.Context, organizationID, appointmentTypeID int64) (*domain.AppointmentType, error)
}

// ScheduleRepository интерфейс репозитория расписаний организации
type ScheduleRepository interface {
	// GetDefaultHours получает дефолтные часы организации по дням недели
	GetDefaultHours(ctx context.Context, organizationID int64) ([]*domain.OrganizationDefaultHours, error)

	// GetHolidays получает праздники организации
	GetHolidays(ctx context.Context, organizationID int64) ([]*domain.OrganizationHoliday, error)
}

// AppointmentRepository интерфейс репозитория бронирований
type AppointmentRepository interface {
	// GetByFacilityWithFilter получает бронирования площадки за период
	GetByFacilityWithFilter(ctx context.Context, filter domain.FacilityAppointmentsFilter) ([]*domain.Appointment, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
