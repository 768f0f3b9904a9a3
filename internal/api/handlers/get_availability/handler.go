package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/akash925/Dock-BookingService/internal/api/handlers"
	"github.com/akash925/Dock-BookingService/internal/domain"
	getAvailability "github.com/akash925/Dock-BookingService/internal/usecase/get_availability"
)

const (
	msgInvalidFacilityID       = "некорректный ID площадки"
	msgInvalidTypeID           = "некорректный ID типа записи"
	msgMissingTypeID           = "ID типа записи обязателен"
	msgMissingDate             = "дата обязательна"
	msgInvalidDate             = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateInPast              = "дата в прошлом"
	msgInvalidTenantID         = "некорректный ID организации"
	msgFacilityNotFound        = "площадка не найдена"
	msgAppointmentTypeNotFound = "тип записи не найден"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facilityId}/availability
// Query params: appointmentTypeId (required), date (required, YYYY-MM-DD)
// Header: X-Tenant-ID (optional, default 1)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем facilityId из URL
	facilityIDStr := vars["facilityId"]
	facilityID, err := strconv.ParseInt(facilityIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/availability - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	// Извлекаем appointmentTypeId из query параметров
	typeIDStr := r.URL.Query().Get("appointmentTypeId")
	if typeIDStr == "" {
		h.logger.Warn("GET /facilities/{id}/availability - Missing appointment type ID")
		handlers.RespondBadRequest(w, msgMissingTypeID)
		return
	}

	typeID, err := strconv.ParseInt(typeIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/availability - Invalid appointment type ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTypeID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /facilities/{id}/availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Определяем организацию (tenant) из заголовка
	tenantID := int64(domain.DefaultTenantID)
	if tenantStr := r.Header.Get("X-Tenant-ID"); tenantStr != "" {
		tenantID, err = strconv.ParseInt(tenantStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /facilities/{id}/availability - Invalid tenant ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTenantID)
			return
		}
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(tenantID, facilityID, typeID, dateStr)
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, getAvailability.ErrFacilityNotFound):
			h.logger.Warn("GET /facilities/{id}/availability - Facility not found: facility_id=%d", facilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, getAvailability.ErrAppointmentTypeNotFound):
			h.logger.Warn("GET /facilities/{id}/availability - Appointment type not found: type_id=%d", typeID)
			handlers.RespondNotFound(w, msgAppointmentTypeNotFound)

		case errors.Is(err, getAvailability.ErrInvalidDate):
			h.logger.Warn("GET /facilities/{id}/availability - Date in the past: facility_id=%d, date=%s", facilityID, dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /facilities/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /facilities/{id}/availability - Failed to compute availability: facility_id=%d, type_id=%d, error=%v",
				facilityID, typeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /facilities/{id}/availability - Availability computed: facility_id=%d, type_id=%d, slots_count=%d",
		facilityID, typeID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
