package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akash925/Dock-BookingService/internal/domain"
	appointmentTypeRepo "github.com/akash925/Dock-BookingService/internal/infra/storage/appointmenttype"
	facilityRepo "github.com/akash925/Dock-BookingService/internal/infra/storage/facility"
	"github.com/akash925/Dock-BookingService/internal/service/schedule/models"
)

// Service сервис чтения эффективных расписаний.
// Использует ту же цепочку переопределений часов, что и расчёт
// доступности, поэтому расписание в дашборде и слоты всегда согласованы.
type Service struct {
	facilityRepo FacilityRepository
	typeRepo     AppointmentTypeRepository
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	facilityRepo FacilityRepository,
	typeRepo AppointmentTypeRepository,
	scheduleRepo ScheduleRepository,
	logger Logger,
) *Service {
	return &Service{
		facilityRepo: facilityRepo,
		typeRepo:     typeRepo,
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// weekdays порядок дней в ответе (неделя начинается с понедельника)
var weekdays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// GetFacilitySchedule возвращает эффективное недельное расписание
// площадки для типа записи: по каждому дню недели - победивший ярус
// цепочки переопределений и его часы
func (s *Service) GetFacilitySchedule(ctx context.Context, req *models.GetFacilityScheduleRequest) (*models.WeekScheduleResponse, error) {
	s.logger.Info("GetFacilitySchedule: tenant=%d, facility=%d, type=%d",
		req.TenantID, req.FacilityID, req.AppointmentTypeID)

	if req.TenantID <= 0 || req.FacilityID <= 0 || req.AppointmentTypeID <= 0 {
		return nil, fmt.Errorf("%w: ids must be positive", ErrInvalidInput)
	}

	facility, err := s.facilityRepo.GetByID(ctx, req.TenantID, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			s.logger.Warn("GetFacilitySchedule: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("GetFacilitySchedule: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	appointmentType, err := s.typeRepo.GetByID(ctx, req.TenantID, req.AppointmentTypeID)
	if err != nil {
		if errors.Is(err, appointmentTypeRepo.ErrAppointmentTypeNotFound) {
			s.logger.Warn("GetFacilitySchedule: appointment type id=%d not found", req.AppointmentTypeID)
			return nil, ErrAppointmentTypeNotFound
		}
		s.logger.Error("GetFacilitySchedule: failed to get appointment type id=%d: %v", req.AppointmentTypeID, err)
		return nil, fmt.Errorf("%w: failed to get appointment type: %v", ErrInternal, err)
	}

	defaultHours, err := s.scheduleRepo.GetDefaultHours(ctx, req.TenantID)
	if err != nil {
		s.logger.Error("GetFacilitySchedule: failed to get default hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get default hours: %v", ErrInternal, err)
	}

	orgHours := domain.DefaultHoursByWeekday(defaultHours)

	days := make([]models.DaySchedule, 0, len(weekdays))
	for _, weekday := range weekdays {
		resolved := domain.ResolveDayHours(weekday, facility, appointmentType, orgHours)
		days = append(days, models.FromResolvedHours(weekday, resolved))
	}

	s.logger.Info("GetFacilitySchedule: resolved schedule for facility=%d, type=%d", req.FacilityID, req.AppointmentTypeID)

	return &models.WeekScheduleResponse{
		FacilityID:        req.FacilityID,
		AppointmentTypeID: req.AppointmentTypeID,
		Timezone:          facility.Timezone,
		Days:              days,
	}, nil
}
