package get_availability

import (
	"time"

	"github.com/akash925/Dock-BookingService/internal/domain"
	getAvailability "github.com/akash925/Dock-BookingService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date              string             `json:"date"`
	FacilityID        int64              `json:"facilityId"`
	AppointmentTypeID int64              `json:"appointmentTypeId"`
	Slots             []AvailabilitySlot `json:"slots"`
	ClosedReason      *string            `json:"closedReason,omitempty"`
}

// AvailabilitySlot модель слота в HTTP ответе
type AvailabilitySlot struct {
	Time              string `json:"time"`
	Available         bool   `json:"available"`
	RemainingCapacity int    `json:"remainingCapacity"`
	Reason            string `json:"reason,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]AvailabilitySlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailabilitySlot{
			Time:              slot.StartTime.String(),
			Available:         slot.Available,
			RemainingCapacity: slot.RemainingCapacity,
			Reason:            string(slot.Reason),
		}
	}

	out := &AvailabilityResponse{
		Date:              resp.Date.Format(domain.DateFormat),
		FacilityID:        resp.FacilityID,
		AppointmentTypeID: resp.AppointmentTypeID,
		Slots:             slots,
	}

	if resp.ClosedReason != nil {
		reason := string(*resp.ClosedReason)
		out.ClosedReason = &reason
	}

	return out
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(tenantID, facilityID, appointmentTypeID int64, dateStr string) (*getAvailability.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		TenantID:          tenantID,
		FacilityID:        facilityID,
		AppointmentTypeID: appointmentTypeID,
		Date:              date,
	}, nil
}
