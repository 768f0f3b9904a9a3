package schedule

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

// Repository репозиторий расписаний организации:
// дефолтные часы по дням недели и календарь праздников
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetDefaultHours получает дефолтные часы организации.
// Уникальность (организация, день недели) обеспечивается constraint'ом в БД.
func (r *Repository) GetDefaultHours(ctx context.Context, organizationID int64) ([]*domain.OrganizationDefaultHours, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"organization_id",
		"weekday",
		"is_open",
		"open_time",
		"close_time",
		"break_start",
		"break_end",
		"created_at",
		"updated_at",
	).
		From("organization_default_hours").
		Where(squirrel.Eq{"organization_id": organizationID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDefaultHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDefaultHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]*domain.OrganizationDefaultHours, 0)
	for rows.Next() {
		var (
			rec                  domain.OrganizationDefaultHours
			weekday              int16
			breakStart, breakEnd sql.NullString
			createdAt, updatedAt sql.NullTime
		)

		err := rows.Scan(
			&rec.ID,
			&rec.OrganizationID,
			&weekday,
			&rec.Hours.IsOpen,
			&rec.Hours.Open,
			&rec.Hours.Close,
			&breakStart,
			&breakEnd,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetDefaultHours - scan row: %v", ErrScanRow, err)
		}

		rec.Weekday = time.Weekday(weekday)
		rec.CreatedAt = createdAt.Time
		rec.UpdatedAt = updatedAt.Time

		if breakStart.Valid && breakEnd.Valid {
			bStart, err := parseStoredTime(breakStart.String)
			if err != nil {
				return nil, fmt.Errorf("%w: GetDefaultHours - parse break start: %v", ErrScanRow, err)
			}
			bEnd, err := parseStoredTime(breakEnd.String)
			if err != nil {
				return nil, fmt.Errorf("%w: GetDefaultHours - parse break end: %v", ErrScanRow, err)
			}
			rec.Hours.BreakStart = &bStart
			rec.Hours.BreakEnd = &bEnd
		}

		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetDefaultHours - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}

// GetHolidays получает праздники организации (разовые и ежегодные)
func (r *Repository) GetHolidays(ctx context.Context, organizationID int64) ([]*domain.OrganizationHoliday, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"organization_id",
		"name",
		"date",
		"recurring",
		"month",
		"day",
		"created_at",
		"updated_at",
	).
		From("organization_holidays").
		Where(squirrel.Eq{"organization_id": organizationID}).
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetHolidays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetHolidays - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	holidays := make([]*domain.OrganizationHoliday, 0)
	for rows.Next() {
		var (
			h                    domain.OrganizationHoliday
			month                sql.NullInt16
			day                  sql.NullInt16
			createdAt, updatedAt sql.NullTime
		)

		err := rows.Scan(
			&h.ID,
			&h.OrganizationID,
			&h.Name,
			&h.Date,
			&h.Recurring,
			&month,
			&day,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetHolidays - scan row: %v", ErrScanRow, err)
		}

		if month.Valid {
			h.Month = time.Month(month.Int16)
		}
		if day.Valid {
			h.Day = int(day.Int16)
		}
		h.CreatedAt = createdAt.Time
		h.UpdatedAt = updatedAt.Time

		holidays = append(holidays, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetHolidays - rows error: %v", ErrScanRow, err)
	}

	return holidays, nil
}

// parseStoredTime парсит TIME колонку ("HH:MM:SS" или "HH:MM") в TimeString
func parseStoredTime(s string) (types.TimeString, error) {
	if len(s) > 5 {
		s = s[:5]
	}
	return types.NewTimeStringFromString(s)
}
