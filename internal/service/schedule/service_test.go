package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akash925/Dock-BookingService/internal/domain"
	facilityRepo "github.com/akash925/Dock-BookingService/internal/infra/storage/facility"
	"github.com/akash925/Dock-BookingService/internal/service/schedule/models"
	"github.com/akash925/Dock-BookingService/pkg/ptr"
	"github.com/akash925/Dock-BookingService/pkg/types"
)

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
	err          error
}

func (f *fakeScheduleRepo) GetDefaultHours(_ context.Context, _ int64) ([]*domain.OrganizationDefaultHours, error) {
	return f.defaultHours, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func openDay(open, close string) *domain.DayHours {
	return &domain.DayHours{
		IsOpen: true,
		Open:   types.TimeString(open),
		Close:  types.TimeString(close),
	}
}

func validRequest() *models.GetFacilityScheduleRequest {
	return &models.GetFacilityScheduleRequest{TenantID: 1, FacilityID: 1, AppointmentTypeID: 10}
}

func TestService_GetFacilitySchedule(t *testing.T) {
	facility := &domain.Facility{ID: 1, OrganizationID: 1, Timezone: "America/Chicago"}
	facility.Hours.Monday = openDay("08:00", "16:00")
	facility.Hours.Monday.BreakStart = ptr.Ptr(types.TimeString("12:00"))
	facility.Hours.Monday.BreakEnd = ptr.Ptr(types.TimeString("13:00"))

	appointmentType := &domain.AppointmentType{ID: 10, OrganizationID: 1, OverrideFacilityHours: true}
	appointmentType.Hours.Tuesday = openDay("10:00", "14:00")

	svc := NewService(
		&fakeFacilityRepo{facility: facility},
		&fakeTypeRepo{appointmentType: appointmentType},
		&fakeScheduleRepo{defaultHours: []*domain.OrganizationDefaultHours{
			{OrganizationID: 1, Weekday: time.Wednesday, Hours: *openDay("09:00", "18:00")},
		}},
		nopLogger{},
	)

	resp, err := svc.GetFacilitySchedule(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "America/Chicago", resp.Timezone)
	require.Len(t, resp.Days, 7)
	// Неделя начинается с понедельника
	assert.Equal(t, "Monday", resp.Days[0].Weekday)
	assert.Equal(t, "Sunday", resp.Days[6].Weekday)

	monday := resp.Days[0]
	assert.Equal(t, string(domain.HoursSourceFacility), monday.Source)
	require.NotNil(t, monday.Open)
	assert.Equal(t, "08:00", *monday.Open)
	require.NotNil(t, monday.BreakStart)
	assert.Equal(t, "12:00", *monday.BreakStart)

	tuesday := resp.Days[1]
	assert.Equal(t, string(domain.HoursSourceAppointmentType), tuesday.Source)
	require.NotNil(t, tuesday.Open)
	assert.Equal(t, "10:00", *tuesday.Open)
	assert.Nil(t, tuesday.BreakStart)

	wednesday := resp.Days[2]
	assert.Equal(t, string(domain.HoursSourceOrganization), wednesday.Source)

	thursday := resp.Days[3]
	assert.Equal(t, string(domain.HoursSourceNone), thursday.Source)
	assert.False(t, thursday.IsOpen)
	assert.Nil(t, thursday.Open)
}

func TestService_GetFacilitySchedule_InvalidInput(t *testing.T) {
	svc := NewService(&fakeFacilityRepo{}, &fakeTypeRepo{}, &fakeScheduleRepo{}, nopLogger{})

	req := validRequest()
	req.AppointmentTypeID = 0

	_, err := svc.GetFacilitySchedule(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetFacilitySchedule_FacilityNotFound(t *testing.T) {
	svc := NewService(
		&fakeFacilityRepo{err: facilityRepo.ErrFacilityNotFound},
		&fakeTypeRepo{},
		&fakeScheduleRepo{},
		nopLogger{},
	)

	_, err := svc.GetFacilitySchedule(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestService_GetFacilitySchedule_StorageError(t *testing.T) {
	facility := &domain.Facility{ID: 1, OrganizationID: 1, Timezone: "UTC"}
	svc := NewService(
		&fakeFacilityRepo{facility: facility},
		&fakeTypeRepo{appointmentType: &domain.AppointmentType{ID: 10}},
		&fakeScheduleRepo{err: errors.New("connection refused")},
		nopLogger{},
	)

	_, err := svc.GetFacilitySchedule(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
