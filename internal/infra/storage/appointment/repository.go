package appointment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/akash925/Dock-BookingService/internal/domain"
	"github.com/akash925/Dock-BookingService/pkg/psqlbuilder"
)

// DBExecutor интерфейс для выполнения запросов к БД
type DBExecutor interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// Repository репозиторий для чтения бронирований.
// Движок доступности использует бронирования только для подсчёта
// пересечений; консистентность чтения относительно конфигурации
// обеспечивает вызывающий.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByFacilityWithFilter получает бронирования площадки с фильтрацией.
// Поддерживает фильтрацию по:
// - Окну времени (StartDate, EndDate - абсолютные моменты): выбираются
//   бронирования, интервал которых пересекает [StartDate, EndDate)
// - Типу записи (AppointmentTypeID) - опционально
// - Включению неактивных бронирований (IncludeInactive)
//
// Примеры использования:
//
//  1. Активные бронирования площадки за локальные сутки:
//     filter := domain.FacilityAppointmentsFilter{
//     OrganizationID: 1, FacilityID: 42, StartDate: &dayStart, EndDate: &dayEnd}
//
//  2. Бронирования одного типа, включая отменённые:
//     filter := domain.FacilityAppointmentsFilter{
//     OrganizationID: 1, FacilityID: 42, AppointmentTypeID: &typeID, IncludeInactive: true}
func (r *Repository) GetByFacilityWithFilter(ctx context.Context, filter domain.FacilityAppointmentsFilter) ([]*domain.Appointment, error) {
	selectBuilder := psqlbuilder.Select(
		"id",
		"organization_id",
		"facility_id",
		"appointment_type_id",
		"start_time",
		"end_time",
		"status",
		"carrier_name",
		"truck_number",
		"trailer_number",
		"notes",
		"created_at",
		"updated_at",
	).
		From("appointments").
		Where(squirrel.Eq{
			"organization_id": filter.OrganizationID,
			"facility_id":     filter.FacilityID,
		})

	// Фильтрация по типу записи (если указан)
	if filter.AppointmentTypeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"appointment_type_id": *filter.AppointmentTypeID})
	}

	// Пересечение с окном времени (полуоткрытые интервалы)
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_time": *filter.EndDate})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"end_time": *filter.StartDate})
	}

	// Исключаем неактивные статусы, если они не запрошены явно
	if !filter.IncludeInactive {
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	selectBuilder = selectBuilder.OrderBy("start_time ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFacilityWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFacilityWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// scanAppointments сканирует результаты запроса в слайс бронирований
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var appt domain.Appointment
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&appt.ID,
			&appt.OrganizationID,
			&appt.FacilityID,
			&appt.AppointmentTypeID,
			&appt.StartTime,
			&appt.EndTime,
			&appt.Status,
			&appt.CarrierName,
			&appt.TruckNumber,
			&appt.TrailerNumber,
			&appt.Notes,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		appt.CreatedAt = createdAt.Time
		appt.UpdatedAt = updatedAt.Time

		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
