package domain

import (
	"time"

	"github.com/akash925/Dock-BookingService/pkg/types"
)

// Facility represents a dock facility (warehouse, distribution center)
// where appointments take place. Hours and holiday decisions are always
// made in the facility's own timezone.
type Facility struct {
	ID             int64
	OrganizationID int64
	Name           string
	Timezone       string // IANA name, e.g. "America/Chicago"

	// Hours holds the facility-specific weekly schedule. A weekday with
	// no explicit facility hours falls through to the organization
	// default hours for that weekday.
	Hours WeekHours

	// HolidayOverrides lists dates on which this facility deviates from
	// the organization holiday calendar.
	HolidayOverrides []FacilityHolidayOverride

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location resolves the facility's IANA timezone.
func (f *Facility) Location() (*time.Location, error) {
	return time.LoadLocation(f.Timezone)
}

// HolidayOverrideFor returns the override declared for the given
// calendar date, or nil if the facility has none.
func (f *Facility) HolidayOverrideFor(date time.Time) *FacilityHolidayOverride {
	for i := range f.HolidayOverrides {
		o := &f.HolidayOverrides[i]
		if sameCalendarDate(o.Date, date) {
			return o
		}
	}
	return nil
}

// FacilityHolidayOverride marks a date on which a facility diverges from
// the organization holiday calendar. With OverrideOrgHoliday set the
// facility stays open on an organization holiday.
type FacilityHolidayOverride struct {
	ID         int64
	FacilityID int64
	Date       time.Time

	OverrideOrgHoliday bool
}

// DayHours describes the operating window for a single weekday,
// with an optional break window inside it.
type DayHours struct {
	IsOpen     bool
	Open       types.TimeString
	Close      types.TimeString
	BreakStart *types.TimeString
	BreakEnd   *types.TimeString
}

// HasBreak returns true if a break window is configured.
func (d DayHours) HasBreak() bool {
	return d.BreakStart != nil && d.BreakEnd != nil
}

// WeekHours holds per-weekday operating hours. A nil entry means the
// weekday declares nothing at this tier and defers to the next one.
type WeekHours struct {
	Monday    *DayHours
	Tuesday   *DayHours
	Wednesday *DayHours
	Thursday  *DayHours
	Friday    *DayHours
	Saturday  *DayHours
	Sunday    *DayHours
}

// ForWeekday returns the hours declared for the given weekday, or nil
// if this tier defers.
func (w WeekHours) ForWeekday(weekday time.Weekday) *DayHours {
	switch weekday {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return nil
	}
}

// SetForWeekday stores hours for the given weekday.
func (w *WeekHours) SetForWeekday(weekday time.Weekday, hours *DayHours) {
	switch weekday {
	case time.Monday:
		w.Monday = hours
	case time.Tuesday:
		w.Tuesday = hours
	case time.Wednesday:
		w.Wednesday = hours
	case time.Thursday:
		w.Thursday = hours
	case time.Friday:
		w.Friday = hours
	case time.Saturday:
		w.Saturday = hours
	case time.Sunday:
		w.Sunday = hours
	}
}

func sameCalendarDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
