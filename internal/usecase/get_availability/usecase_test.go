package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akash925/Dock-BookingService/internal/domain"
	appointmentRepo "github.com/akash925/Dock-BookingService/internal/infra/storage/appointment"
	appointmentTypeRepo "github.com/akash925/Dock-BookingService/internal/infra/storage/appointmenttype"
	facilityRepo "github.com/akash925/Dock-BookingService/internal/infra/storage/facility"
)

// Фейки репозиториев для тестов use case

type fakeFacilityRepo struct {
	facility *domain.Facility
	err      error
}

func (f *fakeFacilityRepo) GetByID(_ context.Context, _, _ int64) (*domain.Facility, error) {
	return f.facility, f.err
}

type fakeTypeRepo struct {
	appointmentType *domain.AppointmentType
	err             error
}

func (f *fakeTypeRepo) GetByID(_ context.Context, _, _ int64) (*domain.AppointmentType, error) {
	return f.appointmentType, f.err
}

type fakeScheduleRepo struct {
	defaultHours []*domain.OrganizationDefaultHours
	holidays     []*domain.OrganizationHoliday
	err          error
}

func (f *fakeScheduleRepo) GetDefaultHours(_ context.Context, _ int64) ([]*domain.OrganizationDefaultHours, error) {
	return f.defaultHours, f.err
}

func (f *fakeScheduleRepo) GetHolidays(_ context.Context, _ int64) ([]*domain.OrganizationHoliday, error) {
	return f.holidays, f.err
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error

	gotFilter *domain.FacilityAppointmentsFilter
}

func (f *fakeAppointmentRepo) GetByFacilityWithFilter(_ context.Context, filter domain.FacilityAppointmentsFilter) ([]*domain.Appointment, error) {
	f.gotFilter = &filter
	return f.appointments, f.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type ucFixture struct {
	uc           *UseCase
	facilities   *fakeFacilityRepo
	types        *fakeTypeRepo
	schedules    *fakeScheduleRepo
	appointments *fakeAppointmentRepo
}

// newFixture собирает use case с фейками: понедельник 2025-11-03,
// площадка в UTC с часами 08:00-16:00, тип записи на 60 минут.
func newFixture(blockWeekends bool) *ucFixture {
	facility := testFacility()
	facility.Hours.Monday = openDay("08:00", "16:00")

	f := &ucFixture{
		facilities:   &fakeFacilityRepo{facility: facility},
		types:        &fakeTypeRepo{appointmentType: testAppointmentType()},
		schedules:    &fakeScheduleRepo{},
		appointments: &fakeAppointmentRepo{},
	}

	f.uc = NewUseCase(f.facilities, f.types, f.schedules, f.appointments, blockWeekends, nopLogger{})
	f.uc.timeProvider = &fixedTimeProvider{now: time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)}
	return f
}

func validRequest() *Request {
	return &Request{
		TenantID:          1,
		FacilityID:        1,
		AppointmentTypeID: 10,
		Date:              time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC),
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	f := newFixture(false)

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.FacilityID)
	assert.Equal(t, int64(10), resp.AppointmentTypeID)
	assert.Nil(t, resp.ClosedReason)
	assert.Equal(t, "08:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "15:00", resp.Slots[len(resp.Slots)-1].StartTime.String())
}

func TestUseCase_Execute_QueriesAppointmentsForLocalDay(t *testing.T) {
	f := newFixture(false)

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	filter := f.appointments.gotFilter
	require.NotNil(t, filter)
	assert.Equal(t, int64(1), filter.OrganizationID)
	assert.Equal(t, int64(1), filter.FacilityID)
	require.NotNil(t, filter.StartDate)
	require.NotNil(t, filter.EndDate)
	assert.Equal(t, time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC), *filter.StartDate)
	assert.Equal(t, time.Date(2025, 11, 4, 0, 0, 0, 0, time.UTC), *filter.EndDate)
}

func TestUseCase_Execute_InactiveAppointmentsDoNotOccupyCapacity(t *testing.T) {
	f := newFixture(false)
	day := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	f.appointments.appointments = []*domain.Appointment{
		{
			ID: 1, OrganizationID: 1, FacilityID: 1, AppointmentTypeID: 10,
			StartTime: day.Add(10 * time.Hour), EndTime: day.Add(11 * time.Hour),
			Status: domain.StatusCancelled,
		},
		{
			ID: 2, OrganizationID: 1, FacilityID: 1, AppointmentTypeID: 10,
			StartTime: day.Add(10 * time.Hour), EndTime: day.Add(11 * time.Hour),
			Status: domain.StatusNoShow,
		},
	}

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	slot := findSlot(t, resp.Slots, "10:00")
	assert.True(t, slot.Available)
	assert.Equal(t, 1, slot.RemainingCapacity)
}

func TestUseCase_Execute_ScheduledAppointmentOccupiesCapacity(t *testing.T) {
	f := newFixture(false)
	day := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	f.appointments.appointments = []*domain.Appointment{
		{
			ID: 1, OrganizationID: 1, FacilityID: 1, AppointmentTypeID: 10,
			StartTime: day.Add(10 * time.Hour), EndTime: day.Add(11 * time.Hour),
			Status: domain.StatusScheduled,
		},
	}

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	slot := findSlot(t, resp.Slots, "10:00")
	assert.False(t, slot.Available)
	assert.Equal(t, domain.ReasonCapacityFull, slot.Reason)
	assert.Equal(t, 0, slot.RemainingCapacity)
}

func TestUseCase_Execute_HolidayReturnsClosedDay(t *testing.T) {
	f := newFixture(false)
	f.schedules.holidays = []*domain.OrganizationHoliday{
		{OrganizationID: 1, Name: "Founders Day", Date: time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)},
	}

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	require.NotNil(t, resp.ClosedReason)
	assert.Equal(t, domain.ReasonHoliday, *resp.ClosedReason)
}

func TestUseCase_Execute_BlockWeekendsFlagWiring(t *testing.T) {
	saturdayReq := func() *Request {
		req := validRequest()
		req.Date = time.Date(2025, 11, 8, 0, 0, 0, 0, time.UTC)
		return req
	}

	t.Run("flag on blocks saturday", func(t *testing.T) {
		f := newFixture(true)
		f.facilities.facility.Hours.Saturday = openDay("09:00", "13:00")

		resp, err := f.uc.Execute(context.Background(), saturdayReq())
		require.NoError(t, err)

		assert.Empty(t, resp.Slots)
		require.NotNil(t, resp.ClosedReason)
		assert.Equal(t, domain.ReasonWeekendBlocked, *resp.ClosedReason)
	})

	t.Run("flag off honors saturday hours", func(t *testing.T) {
		f := newFixture(false)
		f.facilities.facility.Hours.Saturday = openDay("09:00", "13:00")

		resp, err := f.uc.Execute(context.Background(), saturdayReq())
		require.NoError(t, err)

		assert.Nil(t, resp.ClosedReason)
		assert.NotEmpty(t, resp.Slots)
	})
}

func TestUseCase_Execute_OrgDefaultHoursFallback(t *testing.T) {
	f := newFixture(false)
	f.facilities.facility.Hours.Monday = nil
	f.schedules.defaultHours = []*domain.OrganizationDefaultHours{
		{OrganizationID: 1, Weekday: time.Monday, Hours: *openDay("09:00", "12:00")},
	}

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, slotTimes(resp.Slots))
}

func TestUseCase_Execute_ValidationErrors(t *testing.T) {
	f := newFixture(false)

	req := validRequest()
	req.FacilityID = 0

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_PastDateRejected(t *testing.T) {
	f := newFixture(false)

	req := validRequest()
	req.Date = time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestUseCase_Execute_FacilityNotFound(t *testing.T) {
	f := newFixture(false)
	f.facilities.facility = nil
	f.facilities.err = facilityRepo.ErrFacilityNotFound

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestUseCase_Execute_AppointmentTypeNotFound(t *testing.T) {
	f := newFixture(false)
	f.types.appointmentType = nil
	f.types.err = appointmentTypeRepo.ErrAppointmentTypeNotFound

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrAppointmentTypeNotFound)
}

func TestUseCase_Execute_InvalidTimezone(t *testing.T) {
	f := newFixture(false)
	f.facilities.facility.Timezone = "Mars/Olympus_Mons"

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrFacilityTimezone)
}

func TestUseCase_Execute_StorageErrorWrappedAsInternal(t *testing.T) {
	f := newFixture(false)
	f.schedules.err = errors.New("connection refused")

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestUseCase_Execute_NoAppointmentsIsNotAnError(t *testing.T) {
	f := newFixture(false)
	f.appointments.err = appointmentRepo.ErrAppointmentNotFound

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Slots)
}
