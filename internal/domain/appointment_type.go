package domain

import "time"

// AppointmentType represents a bookable dock operation kind
// (e.g. inbound trailer, outbound container, LTL pickup).
type AppointmentType struct {
	ID             int64
	OrganizationID int64
	Name           string

	// DurationMinutes is how long one appointment of this type occupies
	// a dock. IntervalMinutes is the booking granularity at which slot
	// start times are offered; the two are independent.
	DurationMinutes int
	IntervalMinutes int

	// BufferTimeMinutes is the minimum notice before the earliest
	// bookable slot when booking for the current day.
	BufferTimeMinutes int

	// MaxConcurrent caps how many appointments of this type may overlap
	// in time. Capacity is partitioned per type, never shared.
	MaxConcurrent int

	// Hours optionally declares type-specific weekly hours. They only
	// take effect when OverrideFacilityHours is set, in which case they
	// fully replace facility and organization hours for that weekday.
	Hours                 WeekHours
	OverrideFacilityHours bool

	// AllowThroughBreaks permits slots that overlap the break window.
	AllowThroughBreaks bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SupportsParallelAppointments returns true if more than one appointment
// of this type may run at the same time.
func (t *AppointmentType) SupportsParallelAppointments() bool {
	return t.MaxConcurrent > 1
}

// EffectiveInterval returns the booking granularity, falling back to the
// appointment duration when no interval is configured.
func (t *AppointmentType) EffectiveInterval() int {
	if t.IntervalMinutes > 0 {
		return t.IntervalMinutes
	}
	return t.DurationMinutes
}
