package provider

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

// Repository репозиторий для чтения провайдеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория провайдеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает провайдера по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Provider, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByUsername получает провайдера по публичному username (регистр не учитывается)
func (r *Repository) GetByUsername(ctx context.Context, username string) (*domain.Provider, error) {
	return r.getOne(ctx, "GetByUsername", squirrel.Expr("lower(username) = lower(?)", username))
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.Provider, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"username",
		"timezone",
		"created_at",
		"updated_at",
	).
		From("providers").
		Where(where).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var provider domain.Provider
	var timezone sql.NullString
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&provider.ID,
		&provider.Username,
		&timezone,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProviderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan provider: %v", ErrScanRow, op, err)
	}

	// NULL в колонке timezone трактуется как пустая строка (= UTC по умолчанию)
	provider.Timezone = timezone.String
	provider.CreatedAt = createdAt.Time
	provider.UpdatedAt = updatedAt.Time

	return &provider, nil
}
