package facility

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

// Repository репозиторий для чтения площадок.
// Движок доступности потребляет площадки только на чтение.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория площадок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает площадку вместе с её недельными часами работы
// и переопределениями праздников
func (r *Repository) GetByID(ctx context.Context, organizationID, facilityID int64) (*domain.Facility, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"organization_id",
		"name",
		"timezone",
		"created_at",
		"updated_at",
	).
		From("facilities").
		Where(squirrel.Eq{"id": facilityID, "organization_id": organizationID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var facility domain.Facility
	var createdAt, updatedAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&facility.ID,
		&facility.OrganizationID,
		&facility.Name,
		&facility.Timezone,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrFacilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan facility: %v", ErrScanRow, err)
	}

	facility.CreatedAt = createdAt.Time
	facility.UpdatedAt = updatedAt.Time

	if facility.Hours, err = r.getWeekHours(ctx, facility.ID); err != nil {
		return nil, err
	}
	if facility.HolidayOverrides, err = r.getHolidayOverrides(ctx, facility.ID); err != nil {
		return nil, err
	}

	return &facility, nil
}

// getWeekHours получает недельные часы работы площадки.
// Отсутствие строки для дня недели означает, что площадка не объявляет
// часы на этот день и решение уходит на ярус организации.
func (r *Repository) getWeekHours(ctx context.Context, facilityID int64) (domain.WeekHours, error) {
	var week domain.WeekHours

	query, args, err := psqlbuilder.Select(
		"weekday",
		"is_open",
		"open_time",
		"close_time",
		"break_start",
		"break_end",
	).
		From("facility_hours").
		Where(squirrel.Eq{"facility_id": facilityID}).
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
		weekday, hours, err := scanDayHours(rows)
		if err != nil {
			return week, fmt.Errorf("%w: getWeekHours - scan row: %v", ErrScanRow, err)
		}
		week.SetForWeekday(weekday, hours)
	}

	if err := rows.Err(); err != nil {
		return week, fmt.Errorf("%w: getWeekHours - rows error: %v", ErrScanRow, err)
	}

	return week, nil
}

// getHolidayOverrides получает переопределения праздников площадки
func (r *Repository) getHolidayOverrides(ctx context.Context, facilityID int64) ([]domain.FacilityHolidayOverride, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"facility_id",
		"date",
		"override_org_holiday",
	).
		From("facility_holiday_overrides").
		Where(squirrel.Eq{"facility_id": facilityID}).
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getHolidayOverrides - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getHolidayOverrides - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	overrides := make([]domain.FacilityHolidayOverride, 0)
	for rows.Next() {
		var o domain.FacilityHolidayOverride
		if err := rows.Scan(&o.ID, &o.FacilityID, &o.Date, &o.OverrideOrgHoliday); err != nil {
			return nil, fmt.Errorf("%w: getHolidayOverrides - scan row: %v", ErrScanRow, err)
		}
		overrides = append(overrides, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getHolidayOverrides - rows error: %v", ErrScanRow, err)
	}

	return overrides, nil
}

// scanDayHours сканирует строку часов одного дня недели
func scanDayHours(rows *sql.Rows) (time.Weekday, *domain.DayHours, error) {
	var (
		weekday              int16
		hours                domain.DayHours
		breakStart, breakEnd sql.NullString
	)

	if err := rows.Scan(&weekday, &hours.IsOpen, &hours.Open, &hours.Close, &breakStart, &breakEnd); err != nil {
		return 0, nil, err
	}

	if breakStart.Valid && breakEnd.Valid {
		bStart, err := parseStoredTime(breakStart.String)
		if err != nil {
			return 0, nil, err
		}
		bEnd, err := parseStoredTime(breakEnd.String)
		if err != nil {
			return 0, nil, err
		}
		hours.BreakStart = &bStart
		hours.BreakEnd = &bEnd
	}

	return time.Weekday(weekday), &hours, nil
}

// parseStoredTime парсит TIME колонку ("HH:MM:SS" или "HH:MM") в TimeString
func parseStoredTime(s string) (types.TimeString, error) {
	if len(s) > 5 {
		s = s[:5]
	}
	return types.NewTimeStringFromString(s)
}
