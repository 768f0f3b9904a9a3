package get_availability

import (
	"fmt"
	"time"

	"github.com/akash925/Dock-BookingService/internal/domain"
	"github.com/akash925/Dock-BookingService/pkg/types"
)

// dayWindow окно работы дня в минутах от полуночи
type dayWindow struct {
	openM  int
	closeM int

	hasBreak    bool
	breakStartM int
	breakEndM   int
}

// newDayWindow парсит эффективные часы дня в минутное представление
func newDayWindow(hours domain.DayHours) (dayWindow, error) {
	openM, err := hours.Open.MinutesOfDay()
	if err != nil {
		return dayWindow{}, fmt.Errorf("invalid open time: %v", err)
	}
	closeM, err := hours.Close.MinutesOfDay()
	if err != nil {
		return dayWindow{}, fmt.Errorf("invalid close time: %v", err)
	}

	w := dayWindow{openM: openM, closeM: closeM}

	if hours.HasBreak() {
		bStart, err := hours.BreakStart.MinutesOfDay()
		if err != nil {
			return dayWindow{}, fmt.Errorf("invalid break start: %v", err)
		}
		bEnd, err := hours.BreakEnd.MinutesOfDay()
		if err != nil {
			return dayWindow{}, fmt.Errorf("invalid break end: %v", err)
		}
		w.hasBreak = true
		w.breakStartM = bStart
		w.breakEndM = bEnd
	}

	return w, nil
}

// generateSlotStarts генерирует времена начала слотов от открытия с шагом
// intervalMinutes. Последний слот должен полностью завершиться до закрытия:
// генерация останавливается, как только start + duration > close.
func generateSlotStarts(w dayWindow, durationMinutes, intervalMinutes int) []int {
	starts := make([]int, 0)
	if durationMinutes <= 0 || intervalMinutes <= 0 {
		return starts
	}

	for start := w.openM; start+durationMinutes <= w.closeM; start += intervalMinutes {
		starts = append(starts, start)
	}

	return starts
}

// overlapsBreak проверяет пересечение интервала слота [startM, endM)
// с окном перерыва [breakStart, breakEnd). Граничащие интервалы
// пересечением не считаются.
func overlapsBreak(w dayWindow, startM, endM int) bool {
	if !w.hasBreak {
		return false
	}
	return w.breakStartM < endM && w.breakEndM > startM
}

// countOverlappingAppointments подсчитывает бронирования ТОГО ЖЕ типа,
// интервал которых пересекается с интервалом слота. Бронирования других
// типов никогда не уменьшают ёмкость этого типа: пулы ёмкости полностью
// разделены по типам записи.
//
// Пересечение проверяется строго (полуоткрытые интервалы):
// existing.start < slot.end && existing.end > slot.start.
func countOverlappingAppointments(slotStart, slotEnd time.Time, appointmentTypeID int64, existing []domain.ExistingAppointment) int {
	count := 0
	for _, appt := range existing {
		if appt.AppointmentTypeID != appointmentTypeID {
			continue
		}
		if appt.Overlaps(slotStart, slotEnd) {
			count++
		}
	}
	return count
}

// minutesToTimeString конвертирует минуты от полуночи в "HH:MM"
func minutesToTimeString(m int) types.TimeString {
	return types.TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60))
}
