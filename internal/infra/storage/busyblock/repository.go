package busyblock

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения занятых интервалов провайдера
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория занятых интервалов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetOverlapping получает занятые интервалы провайдера, пересекающиеся с [filter.From, filter.To).
// ExcludeBookingID к занятым интервалам не применяется.
func (r *Repository) GetOverlapping(ctx context.Context, filter domain.CommitmentsFilter) ([]*domain.BusyBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"provider_id",
		"start_at",
		"end_at",
		"reason",
		"created_at",
	).
		From("busy_blocks").
		Where(squirrel.Eq{"provider_id": filter.ProviderID}).
		Where(squirrel.Lt{"start_at": filter.To}).
		Where(squirrel.Gt{"end_at": filter.From}).
		OrderBy("start_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]*domain.BusyBlock, 0)

	for rows.Next() {
		var block domain.BusyBlock
		var reason sql.NullString
		var createdAt sql.NullTime

		err := rows.Scan(
			&block.ID,
			&block.ProviderID,
			&block.StartAt,
			&block.EndAt,
			&reason,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: GetOverlapping - scan row: %v", ErrScanRow, err)
		}

		if reason.Valid {
			block.Reason = &reason.String
		}
		block.StartAt = block.StartAt.UTC()
		block.EndAt = block.EndAt.UTC()
		block.CreatedAt = createdAt.Time

		blocks = append(blocks, &block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}
