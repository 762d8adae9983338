package service

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

// Repository репозиторий для чтения услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByIDAndProvider получает услугу по ID в рамках провайдера.
// Услуга другого провайдера считается ненайденной.
// Удалённые (в корзине) услуги не возвращаются.
func (r *Repository) GetByIDAndProvider(ctx context.Context, id, providerID uuid.UUID) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"provider_id",
		"name",
		"duration_minutes",
		"created_at",
		"updated_at",
	).
		From("services").
		Where(squirrel.Eq{"id": id, "provider_id": providerID, "deleted_at": nil}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDAndProvider - build select query: %v", ErrBuildQuery, err)
	}

	var svc domain.Service
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&svc.ID,
		&svc.ProviderID,
		&svc.Name,
		&svc.DurationMinutes,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDAndProvider - scan service: %v", ErrScanRow, err)
	}

	svc.CreatedAt = createdAt.Time
	svc.UpdatedAt = updatedAt.Time

	return &svc, nil
}
