package schedule

import (
	"context"

	"github.com/akash925/Dock-BookingService/internal/domain"
)

// FacilityRepository интерфейс репозитория площадок
type FacilityRepository interface {
	GetByID(ctx context.Context, organizationID, facilityID int64) (*domain.Facility, error)
}

// AppointmentTypeRepository интерфейс репозитория типов записей
type AppointmentTypeRepository interface {
	GetByID(ctx context.Context, organizationID, appointmentTypeID int64) (*domain.AppointmentType, error)
}

// ScheduleRepository интерфейс репозитория расписаний организации
type ScheduleRepository interface {
	GetDefaultHours(ctx context.Context, organizationID int64) ([]*domain.OrganizationDefaultHours, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
