package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Provider         string  // UUID провайдера или его username
	ServiceID        string  // UUID услуги
	Date             string  // Дата в формате YYYY-MM-DD (в часовом поясе провайдера)
	ExcludeBookingID *string // Бронирование, которое переносится (не учитывается как конфликт)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	ProviderID      uuid.UUID
	ServiceID       uuid.UUID
	Date            time.Time // Полночь запрошенной даты в часовом поясе провайдера
	Timezone        string
	DurationMinutes int
	Slots           []domain.Slot // Отсортированы по началу, время в UTC
}

// parsedRequest провалидированный запрос
type parsedRequest struct {
	providerID       *uuid.UUID // nil, если провайдер задан через username
	username         string
	serviceID        uuid.UUID
	year             int
	month            time.Month
	day              int
	excludeBookingID *uuid.UUID
}

// slotContext всё, что нужно для расчёта слотов на одну дату
type slotContext struct {
	provider    *domain.Provider
	service     *domain.Service
	settings    *domain.AvailabilitySettings
	rules       []*domain.AvailabilityRule
	commitments []domain.Interval
	location    *time.Location
}
