package get_availability

import (
	"time"

	"github.com/akash925/Dock-BookingService/internal/domain"
)

// isHolidayBlocked определяет, полностью ли заблокирован день праздником организации.
// День заблокирован, если дата совпадает с праздником организации И площадка
// не объявила для этой даты переопределение с OverrideOrgHoliday = true.
// Если площадка переопределила праздник, день обрабатывается как обычный рабочий.
func isHolidayBlocked(holidays []*domain.OrganizationHoliday, facility *domain.Facility, date time.Time) bool {
	matched := false
	for _, h := range holidays {
		if h.Matches(date) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}

	if o := facility.HolidayOverrideFor(date); o != nil && o.OverrideOrgHoliday {
		return false
	}

	return true
}
