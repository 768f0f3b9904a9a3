package get_facility_schedule

import (
	"context"

	"github.com/akash925/Dock-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetFacilitySchedule(ctx context.Context, req *models.GetFacilityScheduleRequest) (*models.WeekScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
