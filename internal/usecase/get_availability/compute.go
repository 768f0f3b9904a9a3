package get_availability

import (
	"fmt"
	"time"

	"github.com/akash925/Dock-BookingService/internal/domain"
)

// computeInput полный набор входных данных чистого расчёта доступности.
// Всё, что нужно расчёту, передаётся снаружи: у движка нет ни своего
// состояния, ни обращений к часам или хранилищу.
type computeInput struct {
	Date            time.Time      // календарная дата (в таймзоне площадки)
	Location        *time.Location // таймзона площадки
	Facility        *domain.Facility
	AppointmentType *domain.AppointmentType
	OrgDefaultHours map[time.Weekday]domain.DayHours
	Holidays        []*domain.OrganizationHoliday
	Existing        []domain.ExistingAppointment
	Now             time.Time // текущий момент (передаётся вызывающим)
	BlockWeekends   bool      // глобальный флаг запрета выходных
}

// dayAvailability результат расчёта на день
type dayAvailability struct {
	Slots        []domain.AvailabilitySlot
	ClosedReason *domain.UnavailableReason
}

func closedDay(reason domain.UnavailableReason) dayAvailability {
	return dayAvailability{
		Slots:        []domain.AvailabilitySlot{},
		ClosedReason: &reason,
	}
}

// computeAvailability чистая функция расчёта доступности слотов на день.
//
// Фиксированный конвейер:
//
//	праздники -> выходные -> часы работы -> генерация слотов ->
//	(по каждому слоту) перерыв -> минимальное время до записи -> ёмкость
//
// Дневные гейты (праздник, выходной, отсутствие часов) обрывают конвейер
// и возвращают пустой список с причиной. Послотовые аннотаторы всегда
// отрабатывают до конца, чтобы каждый слот нёс явный вердикт и причину.
func computeAvailability(in computeInput) (dayAvailability, error) {
	date := in.Date
	weekday := date.Weekday()

	// 1. Праздничный гейт: праздник организации без переопределения
	// площадкой блокирует день целиком.
	if isHolidayBlocked(in.Holidays, in.Facility, date) {
		return closedDay(domain.ReasonHoliday), nil
	}

	// 2. Гейт выходных: глобальный флаг имеет приоритет над любыми
	// настроенными часами субботы и воскресенья.
	if in.BlockWeekends && (weekday == time.Saturday || weekday == time.Sunday) {
		return closedDay(domain.ReasonWeekendBlocked), nil
	}

	// 3. Эффективные часы работы по цепочке переопределений.
	resolved := domain.ResolveDayHours(weekday, in.Facility, in.AppointmentType, in.OrgDefaultHours)
	if !resolved.IsOpen() {
		return closedDay(domain.ReasonOutsideHours), nil
	}

	window, err := newDayWindow(resolved.Hours)
	if err != nil {
		return dayAvailability{}, fmt.Errorf("resolved hours (source=%s): %v", resolved.Source, err)
	}

	// 4. Генерация кандидатов.
	duration := in.AppointmentType.DurationMinutes
	interval := in.AppointmentType.EffectiveInterval()
	starts := generateSlotStarts(window, duration, interval)

	// 5. Порог минимального времени до записи. Применяется только если
	// запрошенная дата - "сегодня" по календарю площадки; будущие даты
	// под правило не попадают.
	leadTimeThreshold := -1
	nowLocal := in.Now.In(in.Location)
	if isSameDay(nowLocal, date) {
		leadTimeThreshold = nowLocal.Hour()*60 + nowLocal.Minute() + in.AppointmentType.BufferTimeMinutes
	}

	slots := make([]domain.AvailabilitySlot, 0, len(starts))
	for _, startM := range starts {
		endM := startM + duration

		slotStart := time.Date(date.Year(), date.Month(), date.Day(), startM/60, startM%60, 0, 0, in.Location)
		slotEnd := slotStart.Add(time.Duration(duration) * time.Minute)

		// Ёмкость считается для каждого слота независимо от остальных
		// вердиктов, чтобы вызывающий всегда видел остаток мест.
		overlapping := countOverlappingAppointments(slotStart, slotEnd, in.AppointmentType.ID, in.Existing)
		remaining := in.AppointmentType.MaxConcurrent - overlapping
		if remaining < 0 {
			remaining = 0
		}

		var reason domain.UnavailableReason
		switch {
		case !in.AppointmentType.AllowThroughBreaks && overlapsBreak(window, startM, endM):
			reason = domain.ReasonBreak
		// Граница включительно: слот ровно в now + buffer доступен.
		case leadTimeThreshold >= 0 && startM < leadTimeThreshold:
			reason = domain.ReasonLeadTime
		case remaining == 0:
			reason = domain.ReasonCapacityFull
		}

		slots = append(slots, domain.AvailabilitySlot{
			StartTime:         minutesToTimeString(startM),
			Available:         reason == "",
			RemainingCapacity: remaining,
			Reason:            reason,
		})
	}

	return dayAvailability{Slots: slots}, nil
}

// isSameDay проверяет, что два момента приходятся на один календарный день
func isSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
