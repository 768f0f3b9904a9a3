package models

import (
	"time"

	"github.com/akash925/Dock-BookingService/internal/domain"
)

// GetFacilityScheduleRequest запрос эффективного недельного расписания
type GetFacilityScheduleRequest struct {
	TenantID          int64
	FacilityID        int64
	AppointmentTypeID int64
}

// DaySchedule эффективные часы одного дня недели с указанием яруса-источника
type DaySchedule struct {
	Weekday    string  `json:"weekday"`
	Source     string  `json:"source"`
	IsOpen     bool    `json:"isOpen"`
	Open       *string `json:"open,omitempty"`
	Close      *string `json:"close,omitempty"`
	BreakStart *string `json:"breakStart,omitempty"`
	BreakEnd   *string `json:"breakEnd,omitempty"`
}

// WeekScheduleResponse эффективное недельное расписание площадки
// для конкретного типа записи
type WeekScheduleResponse struct {
	FacilityID        int64         `json:"facilityId"`
	AppointmentTypeID int64         `json:"appointmentTypeId"`
	Timezone          string        `json:"timezone"`
	Days              []DaySchedule `json:"days"`
}

// FromResolvedHours конвертирует результат цепочки переопределений в модель ответа
func FromResolvedHours(weekday time.Weekday, resolved domain.ResolvedHours) DaySchedule {
	day := DaySchedule{
		Weekday: weekday.String(),
		Source:  string(resolved.Source),
		IsOpen:  resolved.IsOpen(),
	}

	if !day.IsOpen {
		return day
	}

	open := resolved.Hours.Open.String()
	close := resolved.Hours.Close.String()
	day.Open = &open
	day.Close = &close

	if resolved.Hours.HasBreak() {
		bStart := resolved.Hours.BreakStart.String()
		bEnd := resolved.Hours.BreakEnd.String()
		day.BreakStart = &bStart
		day.BreakEnd = &bEnd
	}

	return day
}
