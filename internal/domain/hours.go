package domain

import "time"

// HoursProvider is one tier of the hours override chain. It either
// returns definite hours for a weekday or nil to defer to the next
// tier.
type HoursProvider struct {
	Source  HoursSource
	Resolve func(weekday time.Weekday) *DayHours
}

// HoursChain builds the ordered override chain for a facility and
// appointment type:
//
//  1. Appointment type hours - consulted only when the type sets
//     OverrideFacilityHours, and then taken wholesale (its own break or
//     none; the facility's break is never inherited).
//  2. Facility hours, with the facility's break if declared.
//  3. Organization default hours.
//
// Exactly one tier wins for a given weekday; fields of different tiers
// are never mixed.
func HoursChain(facility *Facility, appointmentType *AppointmentType, orgHours map[time.Weekday]DayHours) []HoursProvider {
	return []HoursProvider{
		{
			Source: HoursSourceAppointmentType,
			Resolve: func(weekday time.Weekday) *DayHours {
				if !appointmentType.OverrideFacilityHours {
					return nil
				}
				return appointmentType.Hours.ForWeekday(weekday)
			},
		},
		{
			Source: HoursSourceFacility,
			Resolve: func(weekday time.Weekday) *DayHours {
				return facility.Hours.ForWeekday(weekday)
			},
		},
		{
			Source: HoursSourceOrganization,
			Resolve: func(weekday time.Weekday) *DayHours {
				if h, ok := orgHours[weekday]; ok {
					return &h
				}
				return nil
			},
		},
	}
}

// ResolveDayHours consults the override chain in fixed priority order
// and returns the effective hours for the weekday. When no tier
// declares hours the day is closed (HoursSourceNone); a configuration
// gap is not an error.
func ResolveDayHours(weekday time.Weekday, facility *Facility, appointmentType *AppointmentType, orgHours map[time.Weekday]DayHours) ResolvedHours {
	for _, provider := range HoursChain(facility, appointmentType, orgHours) {
		if h := provider.Resolve(weekday); h != nil {
			return ResolvedHours{Source: provider.Source, Hours: *h}
		}
	}
	return ResolvedHours{Source: HoursSourceNone}
}

// DefaultHoursByWeekday indexes organization default hours records by
// weekday. At most one record per (organization, weekday) is expected
// from storage; on duplicates the first one wins.
func DefaultHoursByWeekday(records []*OrganizationDefaultHours) map[time.Weekday]DayHours {
	out := make(map[time.Weekday]DayHours, len(records))
	for _, rec := range records {
		if _, ok := out[rec.Weekday]; ok {
			continue
		}
		out[rec.Weekday] = rec.Hours
	}
	return out
}
