package domain

import "time"

// AppointmentStatus represents the status of a booked appointment
type AppointmentStatus string

const (
	StatusScheduled  AppointmentStatus = "scheduled"
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
	StatusNoShow     AppointmentStatus = "no_show"
)

// Appointment represents a booked dock appointment as stored.
// The availability engine never creates or mutates these; it only
// counts them through the ExistingAppointment projection.
type Appointment struct {
	ID                int64
	OrganizationID    int64
	FacilityID        int64
	AppointmentTypeID int64

	StartTime time.Time // absolute instant (UTC in storage)
	EndTime   time.Time
	Status    AppointmentStatus

	// Denormalized carrier data for history
	CarrierName   *string
	TruckNumber   *string
	TrailerNumber *string
	Notes         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies dock capacity.
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled && a.Status != StatusNoShow
}

// AsExisting returns the read-only projection the availability engine
// consumes.
func (a *Appointment) AsExisting() ExistingAppointment {
	return ExistingAppointment{
		AppointmentTypeID: a.AppointmentTypeID,
		StartTime:         a.StartTime,
		EndTime:           a.EndTime,
	}
}

// ExistingAppointment is the projection of a booked appointment used for
// overlap counting: the type it belongs to and its absolute interval.
type ExistingAppointment struct {
	AppointmentTypeID int64
	StartTime         time.Time
	EndTime           time.Time
}

// Overlaps reports whether the appointment's [StartTime, EndTime)
// interval overlaps [start, end). Touching boundaries do not overlap.
func (e ExistingAppointment) Overlaps(start, end time.Time) bool {
	return e.StartTime.Before(end) && e.EndTime.After(start)
}

// FacilityAppointmentsFilter фильтр для выборки бронирований площадки
type FacilityAppointmentsFilter struct {
	OrganizationID    int64      // Обязательный параметр (tenant)
	FacilityID        int64      // Обязательный параметр
	AppointmentTypeID *int64     // Фильтр по типу (опционально)
	StartDate         *time.Time // Начало периода (опционально)
	EndDate           *time.Time // Конец периода (опционально)
	IncludeInactive   bool       // Включать ли отменённые и no-show
}
