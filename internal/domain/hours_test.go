package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akash925/Dock-BookingService/pkg/ptr"
	"github.com/akash925/Dock-BookingService/pkg/types"
)

func day(open, close string) DayHours {
	return DayHours{
		IsOpen: true,
		Open:   types.TimeString(open),
		Close:  types.TimeString(close),
	}
}

func TestResolveDayHours_Precedence(t *testing.T) {
	orgHours := map[time.Weekday]DayHours{
		time.Monday: day("09:00", "18:00"),
	}

	t.Run("type tier wins when override flag is set", func(t *testing.T) {
		facility := &Facility{}
		facility.Hours.SetForWeekday(time.Monday, ptr.Ptr(day("08:00", "16:00")))

		appointmentType := &AppointmentType{OverrideFacilityHours: true}
		appointmentType.Hours.SetForWeekday(time.Monday, ptr.Ptr(day("10:00", "14:00")))

		resolved := ResolveDayHours(time.Monday, facility, appointmentType, orgHours)
		assert.Equal(t, HoursSourceAppointmentType, resolved.Source)
		assert.Equal(t, "10:00", resolved.Hours.Open.String())
		assert.Equal(t, "14:00", resolved.Hours.Close.String())
	})

	t.Run("type tier skipped without override flag", func(t *testing.T) {
		facility := &Facility{}
		facility.Hours.SetForWeekday(time.Monday, ptr.Ptr(day("08:00", "16:00")))

		appointmentType := &AppointmentType{OverrideFacilityHours: false}
		appointmentType.Hours.SetForWeekday(time.Monday, ptr.Ptr(day("10:00", "14:00")))

		resolved := ResolveDayHours(time.Monday, facility, appointmentType, orgHours)
		assert.Equal(t, HoursSourceFacility, resolved.Source)
		assert.Equal(t, "08:00", resolved.Hours.Open.String())
	})

	t.Run("type tier defers for weekdays it does not declare", func(t *testing.T) {
		facility := &Facility{}
		facility.Hours.SetForWeekday(time.Monday, ptr.Ptr(day("08:00", "16:00")))

		appointmentType := &AppointmentType{OverrideFacilityHours: true}
		appointmentType.Hours.SetForWeekday(time.Tuesday, ptr.Ptr(day("10:00", "14:00")))

		resolved := ResolveDayHours(time.Monday, facility, appointmentType, orgHours)
		assert.Equal(t, HoursSourceFacility, resolved.Source)
	})

	t.Run("organization tier is the final fallback", func(t *testing.T) {
		resolved := ResolveDayHours(time.Monday, &Facility{}, &AppointmentType{}, orgHours)
		assert.Equal(t, HoursSourceOrganization, resolved.Source)
		assert.Equal(t, "09:00", resolved.Hours.Open.String())
	})

	t.Run("no tier declares hours", func(t *testing.T) {
		resolved := ResolveDayHours(time.Sunday, &Facility{}, &AppointmentType{}, orgHours)
		assert.Equal(t, HoursSourceNone, resolved.Source)
		assert.False(t, resolved.IsOpen())
	})
}

func TestResolveDayHours_ClosedDayStopsChain(t *testing.T) {
	// Явный закрытый день на ярусе площадки побеждает открытые часы
	// организации: закрытие - тоже определённый ответ, а не "пропустить"
	facility := &Facility{}
	facility.Hours.SetForWeekday(time.Monday, &DayHours{IsOpen: false})

	orgHours := map[time.Weekday]DayHours{
		time.Monday: day("09:00", "18:00"),
	}

	resolved := ResolveDayHours(time.Monday, facility, &AppointmentType{}, orgHours)
	assert.Equal(t, HoursSourceFacility, resolved.Source)
	assert.False(t, resolved.IsOpen())
}

func TestResolveDayHours_WinningTierTakenWholesale(t *testing.T) {
	// Перерыв площадки не наследуется часами типа записи
	facilityDay := day("08:00", "16:00")
	facilityDay.BreakStart = ptr.Ptr(types.TimeString("12:00"))
	facilityDay.BreakEnd = ptr.Ptr(types.TimeString("13:00"))

	facility := &Facility{}
	facility.Hours.SetForWeekday(time.Monday, &facilityDay)

	appointmentType := &AppointmentType{OverrideFacilityHours: true}
	appointmentType.Hours.SetForWeekday(time.Monday, ptr.Ptr(day("10:00", "14:00")))

	resolved := ResolveDayHours(time.Monday, facility, appointmentType, nil)
	require.Equal(t, HoursSourceAppointmentType, resolved.Source)
	assert.False(t, resolved.Hours.HasBreak())
}

func TestDefaultHoursByWeekday(t *testing.T) {
	records := []*OrganizationDefaultHours{
		{OrganizationID: 1, Weekday: time.Monday, Hours: day("09:00", "18:00")},
		{OrganizationID: 1, Weekday: time.Tuesday, Hours: day("10:00", "17:00")},
		// Дубликат: побеждает первая запись
		{OrganizationID: 1, Weekday: time.Monday, Hours: day("07:00", "15:00")},
	}

	indexed := DefaultHoursByWeekday(records)

	require.Len(t, indexed, 2)
	assert.Equal(t, "09:00", indexed[time.Monday].Open.String())
	assert.Equal(t, "10:00", indexed[time.Tuesday].Open.String())
}

func TestWeekHours_ForWeekday(t *testing.T) {
	var week WeekHours
	week.SetForWeekday(time.Wednesday, ptr.Ptr(day("08:00", "16:00")))

	require.NotNil(t, week.ForWeekday(time.Wednesday))
	assert.Nil(t, week.ForWeekday(time.Thursday))
}
