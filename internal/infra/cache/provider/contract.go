package provider

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Repository источник провайдеров, который кэшируется
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Provider, error)
	GetByUsername(ctx context.Context, username string) (*domain.Provider, error)
}

// Client подмножество команд redis, используемых кэшем
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
