package get_facility_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/akash925/Dock-BookingService/internal/api/handlers"
	"github.com/akash925/Dock-BookingService/internal/domain"
	scheduleService "github.com/akash925/Dock-BookingService/internal/service/schedule"
	"github.com/akash925/Dock-BookingService/internal/service/schedule/models"
)

const (
	msgInvalidFacilityID       = "некорректный ID площадки"
	msgInvalidTypeID           = "некорректный ID типа записи"
	msgMissingTypeID           = "ID типа записи обязателен"
	msgInvalidTenantID         = "некорректный ID организации"
	msgFacilityNotFound        = "площадка не найдена"
	msgAppointmentTypeNotFound = "тип записи не найден"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facilityId}/schedule
// Query params: appointmentTypeId (required)
// Header: X-Tenant-ID (optional, default 1)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	facilityIDStr := vars["facilityId"]
	facilityID, err := strconv.ParseInt(facilityIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/schedule - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	typeIDStr := r.URL.Query().Get("appointmentTypeId")
	if typeIDStr == "" {
		h.logger.Warn("GET /facilities/{id}/schedule - Missing appointment type ID")
		handlers.RespondBadRequest(w, msgMissingTypeID)
		return
	}

	typeID, err := strconv.ParseInt(typeIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/schedule - Invalid appointment type ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTypeID)
		return
	}

	tenantID := int64(domain.DefaultTenantID)
	if tenantStr := r.Header.Get("X-Tenant-ID"); tenantStr != "" {
		tenantID, err = strconv.ParseInt(tenantStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /facilities/{id}/schedule - Invalid tenant ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTenantID)
			return
		}
	}

	result, err := h.service.GetFacilitySchedule(r.Context(), &models.GetFacilityScheduleRequest{
		TenantID:          tenantID,
		FacilityID:        facilityID,
		AppointmentTypeID: typeID,
	})
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrFacilityNotFound):
			h.logger.Warn("GET /facilities/{id}/schedule - Facility not found: facility_id=%d", facilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, scheduleService.ErrAppointmentTypeNotFound):
			h.logger.Warn("GET /facilities/{id}/schedule - Appointment type not found: type_id=%d", typeID)
			handlers.RespondNotFound(w, msgAppointmentTypeNotFound)

		case errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("GET /facilities/{id}/schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /facilities/{id}/schedule - Failed to get schedule: facility_id=%d, type_id=%d, error=%v",
				facilityID, typeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{id}/schedule - Schedule retrieved: facility_id=%d, type_id=%d", facilityID, typeID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
