package domain

import "time"

// OrganizationDefaultHours is the lowest tier of the hours hierarchy:
// one record per (organization, weekday), used only when neither the
// appointment type nor the facility declares hours for that weekday.
type OrganizationDefaultHours struct {
	ID             int64
	OrganizationID int64
	Weekday        time.Weekday
	Hours          DayHours

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrganizationHoliday is a non-operating day that applies to every
// facility under the organization unless a facility declares an
// override for the same date. A holiday is either fixed to a single
// calendar date or recurs every year on Month/Day.
type OrganizationHoliday struct {
	ID             int64
	OrganizationID int64
	Name           string

	Date      time.Time
	Recurring bool
	Month     time.Month // used only when Recurring
	Day       int        // used only when Recurring

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Matches reports whether the holiday falls on the given calendar date.
func (h *OrganizationHoliday) Matches(date time.Time) bool {
	if h.Recurring {
		return date.Month() == h.Month && date.Day() == h.Day
	}
	return sameCalendarDate(h.Date, date)
}
