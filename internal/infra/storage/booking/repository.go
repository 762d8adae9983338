package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"provider_id",
	"service_id",
	"start_at",
	"end_at",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для чтения бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActiveOverlapping получает активные (не отменённые) бронирования провайдера,
// пересекающиеся с [filter.From, filter.To)
//
// Если указан filter.ExcludeBookingID, это бронирование исключается из выборки:
// при переносе бронирование не должно конфликтовать само с собой.
func (r *Repository) GetActiveOverlapping(ctx context.Context, filter domain.CommitmentsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := activeOverlappingQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// activeOverlappingQuery строит запрос активных бронирований, пересекающихся с периодом
func activeOverlappingQuery(filter domain.CommitmentsFilter) squirrel.SelectBuilder {
	inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
	for i, s := range domain.InactiveStatuses {
		inactiveStatusStrings[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"provider_id": filter.ProviderID}).
		Where(squirrel.NotEq{"status": inactiveStatusStrings}).
		Where(squirrel.Lt{"start_at": filter.To}).
		Where(squirrel.Gt{"end_at": filter.From})

	if filter.ExcludeBookingID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *filter.ExcludeBookingID})
	}

	return selectBuilder.OrderBy("start_at ASC")
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.ProviderID,
			&booking.ServiceID,
			&booking.StartAt,
			&booking.EndAt,
			&booking.Status,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.StartAt = booking.StartAt.UTC()
		booking.EndAt = booking.EndAt.UTC()
		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
