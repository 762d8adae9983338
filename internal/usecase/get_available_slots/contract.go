package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ProviderRepository интерфейс репозитория провайдеров
type ProviderRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Provider, error)
	GetByUsername(ctx context.Context, username string) (*domain.Provider, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	// GetByIDAndProvider получает услугу по ID только в рамках указанного провайдера
	GetByIDAndProvider(ctx context.Context, id, providerID uuid.UUID) (*domain.Service, error)
}

// AvailabilityRepository интерфейс репозитория правил и настроек доступности
type AvailabilityRepository interface {
	GetSettings(ctx context.Context, providerID uuid.UUID) (*domain.AvailabilitySettings, error)
	GetRulesByDay(ctx context.Context, providerID uuid.UUID, dayOfWeek int) ([]*domain.AvailabilityRule, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetActiveOverlapping получает не отменённые бронирования, пересекающиеся с периодом фильтра
	GetActiveOverlapping(ctx context.Context, filter domain.CommitmentsFilter) ([]*domain.Booking, error)
}

// BusyBlockRepository интерфейс репозитория занятых интервалов
type BusyBlockRepository interface {
	GetOverlapping(ctx context.Context, filter domain.CommitmentsFilter) ([]*domain.BusyBlock, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// SlotsObserver получает количество слотов в каждом ответе (метрики)
type SlotsObserver interface {
	ObserveSlots(count int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// FixedTimeProvider всегда возвращает одно и то же время
type FixedTimeProvider struct {
	At time.Time
}

// Now возвращает зафиксированное время
func (p *FixedTimeProvider) Now() time.Time {
	return p.At
}
