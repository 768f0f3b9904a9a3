package get_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akash925/Dock-BookingService/internal/domain"
	appointmentRepo "github.com/akash925/Dock-BookingService/internal/infra/storage/appointment"
	appointmentTypeRepo "github.com/akash925/Dock-BookingService/internal/infra/storage/appointmenttype"
	facilityRepo "github.com/akash925/Dock-BookingService/internal/infra/storage/facility"
)

// UseCase use case расчёта доступных слотов на день.
// Сам расчёт - чистая функция; use case только собирает входные данные
// из хранилища и передаёт их в конвейер.
type UseCase struct {
	facilityRepo    FacilityRepository
	typeRepo        AppointmentTypeRepository
	scheduleRepo    ScheduleRepository
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger

	// blockWeekends инжектируется из конфигурации при старте,
	// а не читается глобально при вызове - это сохраняет расчёт
	// детерминированным и тестируемым в обоих состояниях флага.
	blockWeekends bool
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	facilityRepo FacilityRepository,
	typeRepo AppointmentTypeRepository,
	scheduleRepo ScheduleRepository,
	appointmentRepo AppointmentRepository,
	blockWeekends bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		facilityRepo:    facilityRepo,
		typeRepo:        typeRepo,
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
		blockWeekends:   blockWeekends,
	}
}

// Execute выполняет расчёт доступности слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: tenant=%d, facility=%d, type=%d, date=%s",
		req.TenantID, req.FacilityID, req.AppointmentTypeID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем площадку (с часами и переопределениями праздников)
	facility, err := uc.facilityRepo.GetByID(ctx, req.TenantID, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			uc.logger.Warn("GetAvailability: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("GetAvailability: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	// 4. Резолвим таймзону площадки - вся дальнейшая арифметика
	// ведётся в локальном времени площадки
	loc, err := facility.Location()
	if err != nil {
		uc.logger.Error("GetAvailability: facility id=%d has invalid timezone %q: %v",
			facility.ID, facility.Timezone, err)
		return nil, fmt.Errorf("%w: %q", ErrFacilityTimezone, facility.Timezone)
	}

	// Нормализуем запрошенную дату в календарь площадки
	date := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, loc)

	// 5. Проверяем, что дата не в прошлом (по календарю площадки)
	if err := validateDate(date, now.In(loc)); err != nil {
		uc.logger.Warn("GetAvailability: date validation failed: %v", err)
		return nil, err
	}

	// 6. Получаем тип записи
	appointmentType, err := uc.typeRepo.GetByID(ctx, req.TenantID, req.AppointmentTypeID)
	if err != nil {
		if errors.Is(err, appointmentTypeRepo.ErrAppointmentTypeNotFound) {
			uc.logger.Warn("GetAvailability: appointment type id=%d not found", req.AppointmentTypeID)
			return nil, ErrAppointmentTypeNotFound
		}
		uc.logger.Error("GetAvailability: failed to get appointment type id=%d: %v", req.AppointmentTypeID, err)
		return nil, fmt.Errorf("%w: failed to get appointment type: %v", ErrInternal, err)
	}

	// 7. Получаем дефолтные часы и праздники организации
	defaultHours, err := uc.scheduleRepo.GetDefaultHours(ctx, req.TenantID)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get default hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get default hours: %v", ErrInternal, err)
	}

	holidays, err := uc.scheduleRepo.GetHolidays(ctx, req.TenantID)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get holidays: %v", err)
		return nil, fmt.Errorf("%w: failed to get holidays: %v", ErrInternal, err)
	}

	// 8. Получаем существующие бронирования площадки, пересекающие
	// локальные сутки запрошенной даты. Только активные: отменённые и
	// no-show ёмкость не занимают.
	dayStart := date
	dayEnd := date.AddDate(0, 0, 1)
	filter := domain.FacilityAppointmentsFilter{
		OrganizationID: req.TenantID,
		FacilityID:     req.FacilityID,
		StartDate:      &dayStart,
		EndDate:        &dayEnd,
	}

	appointments, err := uc.appointmentRepo.GetByFacilityWithFilter(ctx, filter)
	if err != nil {
		if !errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Error("GetAvailability: failed to get appointments: %v", err)
			return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}
		appointments = nil
	}

	existing := make([]domain.ExistingAppointment, 0, len(appointments))
	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}
		existing = append(existing, appt.AsExisting())
	}

	// 9. Запускаем чистый конвейер расчёта
	result, err := computeAvailability(computeInput{
		Date:            date,
		Location:        loc,
		Facility:        facility,
		AppointmentType: appointmentType,
		OrgDefaultHours: domain.DefaultHoursByWeekday(defaultHours),
		Holidays:        holidays,
		Existing:        existing,
		Now:             now,
		BlockWeekends:   uc.blockWeekends,
	})
	if err != nil {
		uc.logger.Error("GetAvailability: compute failed: facility=%d, type=%d, date=%s: %v",
			req.FacilityID, req.AppointmentTypeID, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: compute availability: %v", ErrInternal, err)
	}

	if result.ClosedReason != nil {
		uc.logger.Info("GetAvailability: day closed (%s): facility=%d, type=%d, date=%s",
			*result.ClosedReason, req.FacilityID, req.AppointmentTypeID, date.Format(domain.DateFormat))
	} else {
		uc.logger.Info("GetAvailability: computed %d slots: facility=%d, type=%d, date=%s",
			len(result.Slots), req.FacilityID, req.AppointmentTypeID, date.Format(domain.DateFormat))
	}

	return &Response{
		Date:              date,
		FacilityID:        req.FacilityID,
		AppointmentTypeID: req.AppointmentTypeID,
		Slots:             result.Slots,
		ClosedReason:      result.ClosedReason,
	}, nil
}
