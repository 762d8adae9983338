package availability

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения недельных правил доступности и настроек провайдера
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetSettings получает настройки доступности провайдера.
// Возвращает ErrSettingsNotFound, если провайдер их ещё не сохранял.
func (r *Repository) GetSettings(ctx context.Context, providerID uuid.UUID) (*domain.AvailabilitySettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"provider_id",
		"buffer_before_minutes",
		"buffer_after_minutes",
		"min_notice_minutes",
		"horizon_days",
		"created_at",
		"updated_at",
	).
		From("availability_settings").
		Where(squirrel.Eq{"provider_id": providerID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSettings - build select query: %v", ErrBuildQuery, err)
	}

	var settings domain.AvailabilitySettings
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.ProviderID,
		&settings.BufferBeforeMinutes,
		&settings.BufferAfterMinutes,
		&settings.MinNoticeMinutes,
		&settings.HorizonDays,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSettings - scan settings: %v", ErrScanRow, err)
	}

	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	return &settings, nil
}

// GetRulesByDay получает правила доступности провайдера на день недели
// (0 = воскресенье .. 6 = суббота), упорядоченные по времени начала
func (r *Repository) GetRulesByDay(ctx context.Context, providerID uuid.UUID, dayOfWeek int) ([]*domain.AvailabilityRule, error) {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDayOfWeek, dayOfWeek)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"provider_id",
		"day_of_week",
		"start_time",
		"end_time",
		"created_at",
		"updated_at",
	).
		From("availability_rules").
		Where(squirrel.Eq{"provider_id": providerID, "day_of_week": dayOfWeek}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRulesByDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRulesByDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.AvailabilityRule, 0)

	for rows.Next() {
		var rule domain.AvailabilityRule
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&rule.ID,
			&rule.ProviderID,
			&rule.DayOfWeek,
			&rule.StartTime,
			&rule.EndTime,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: GetRulesByDay - scan row: %v", ErrScanRow, err)
		}

		rule.CreatedAt = createdAt.Time
		rule.UpdatedAt = updatedAt.Time

		rules = append(rules, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRulesByDay - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}
