package get_availability

import (
	"time"

	"github.com/akash925/Dock-BookingService/internal/domain"
)

// Request модель запроса на расчёт доступности
type Request struct {
	TenantID          int64     // ID организации (tenant)
	FacilityID        int64     // ID площадки
	AppointmentTypeID int64     // ID типа записи
	Date              time.Time // Дата для расчёта (без времени, в таймзоне площадки)
}

// Response модель ответа со списком слотов на день
type Response struct {
	Date              time.Time                 // Дата, на которую считалась доступность
	FacilityID        int64                     // ID площадки
	AppointmentTypeID int64                     // ID типа записи
	Slots             []domain.AvailabilitySlot // Слоты в порядке времени начала

	// ClosedReason заполняется, когда весь день заблокирован
	// (праздник, выходной, нет часов работы) и список слотов пуст
	ClosedReason *domain.UnavailableReason
}
