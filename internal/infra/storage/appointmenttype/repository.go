package appointmenttype

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/akash925/Dock-BookingService/internal/domain"
	"github.com/akash925/Dock-BookingService/pkg/psqlbuilder"
	"github.com/akash925/Dock-BookingService/pkg/types"
)

// DBExecutor интерфейс для выполнения запросов к БД
type DBExecutor interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// Repository репозиторий для чтения типов записей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория типов записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает тип записи вместе с его недельными переопределениями часов
func (r *Repository) GetByID(ctx context.Context, organizationID, appointmentTypeID int64) (*domain.AppointmentType, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"organization_id",
		"name",
		"duration_minutes",
		"interval_minutes",
		"buffer_time_minutes",
		"max_concurrent",
		"override_facility_hours",
		"allow_through_breaks",
		"created_at",
		"updated_at",
	).
		From("appointment_types").
		Where(squirrel.Eq{"id": appointmentTypeID, "organization_id": organizationID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var at domain.AppointmentType
	var createdAt, updatedAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&at.ID,
		&at.OrganizationID,
		&at.Name,
		&at.DurationMinutes,
		&at.IntervalMinutes,
		&at.BufferTimeMinutes,
		&at.MaxConcurrent,
		&at.OverrideFacilityHours,
		&at.AllowThroughBreaks,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAppointmentTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment type: %v", ErrScanRow, err)
	}

	at.CreatedAt = createdAt.Time
	at.UpdatedAt = updatedAt.Time

	if at.Hours, err = r.getWeekHours(ctx, at.ID); err != nil {
		return nil, err
	}

	return &at, nil
}

// getWeekHours получает недельные переопределения часов типа записи.
// Они вступают в силу только при override_facility_hours = true.
func (r *Repository) getWeekHours(ctx context.Context, appointmentTypeID int64) (domain.WeekHours, error) {
	var week domain.WeekHours

	query, args, err := psqlbuilder.Select(
		"weekday",
		"is_open",
		"open_time",
		"close_time",
		"break_start",
		"break_end",
	).
		From("appointment_type_hours").
		Where(squirrel.Eq{"appointment_type_id": appointmentTypeID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return week, fmt.Errorf("%w: getWeekHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return week, fmt.Errorf("%w: getWeekHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			weekday              int16
			hours                domain.DayHours
			breakStart, breakEnd sql.NullString
		)

		if err := rows.Scan(&weekday, &hours.IsOpen, &hours.Open, &hours.Close, &breakStart, &breakEnd); err != nil {
			return week, fmt.Errorf("%w: getWeekHours - scan row: %v", ErrScanRow, err)
		}

		if breakStart.Valid && breakEnd.Valid {
			bStart, err := parseStoredTime(breakStart.String)
			if err != nil {
				return week, fmt.Errorf("%w: getWeekHours - parse break start: %v", ErrScanRow, err)
			}
			bEnd, err := parseStoredTime(breakEnd.String)
			if err != nil {
				return week, fmt.Errorf("%w: getWeekHours - parse break end: %v", ErrScanRow, err)
			}
			hours.BreakStart = &bStart
			hours.BreakEnd = &bEnd
		}

		week.SetForWeekday(time.Weekday(weekday), &hours)
	}

	if err := rows.Err(); err != nil {
		return week, fmt.Errorf("%w: getWeekHours - rows error: %v", ErrScanRow, err)
	}

	return week, nil
}

// parseStoredTime парсит TIME колонку ("HH:MM:SS" или "HH:MM") в TimeString
func parseStoredTime(s string) (types.TimeString, error) {
	if len(s) > 5 {
		s = s[:5]
	}
	return types.NewTimeStringFromString(s)
}
