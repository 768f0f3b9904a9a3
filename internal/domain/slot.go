package domain

import "github.com/akash925/Dock-BookingService/pkg/types"

// UnavailableReason explains why a slot (or a whole day) is not
// bookable. Blocking conditions are data, not errors, so callers can
// render "why" to end users.
type UnavailableReason string

const (
	ReasonHoliday        UnavailableReason = "holiday"
	ReasonOutsideHours   UnavailableReason = "outside-hours"
	ReasonBreak          UnavailableReason = "break"
	ReasonWeekendBlocked UnavailableReason = "weekend-blocked"
	ReasonLeadTime       UnavailableReason = "lead-time"
	ReasonCapacityFull   UnavailableReason = "capacity-full"
)

// AvailabilitySlot is one candidate appointment start time with its
// availability verdict. It is a transient view computed per request,
// never persisted.
type AvailabilitySlot struct {
	StartTime         types.TimeString
	Available         bool
	RemainingCapacity int
	Reason            UnavailableReason // empty when Available
}

// IsFull returns true if the slot has no remaining capacity.
func (s *AvailabilitySlot) IsFull() bool {
	return s.RemainingCapacity <= 0
}

// HoursSource tags which tier of the override chain produced the
// effective hours for a day.
type HoursSource string

const (
	HoursSourceAppointmentType HoursSource = "appointment_type"
	HoursSourceFacility        HoursSource = "facility"
	HoursSourceOrganization    HoursSource = "organization"
	HoursSourceNone            HoursSource = "none"
)

// ResolvedHours is the outcome of the hours override chain for one
// weekday: exactly one source wins, or no tier declares the day open.
type ResolvedHours struct {
	Source HoursSource
	Hours  DayHours
}

// IsOpen returns true if the winning tier declares the day open.
func (r ResolvedHours) IsOpen() bool {
	return r.Source != HoursSourceNone && r.Hours.IsOpen
}
