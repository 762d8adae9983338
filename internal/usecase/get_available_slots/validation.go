package get_available_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) (*parsedRequest, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	parsed := &parsedRequest{}

	provider := strings.TrimSpace(req.Provider)
	if provider == "" {
		return nil, fmt.Errorf("%w: provider is required", ErrInvalidInput)
	}
	// Идентификатор в формате UUID трактуется как ID, всё остальное - как username
	if id, err := uuid.Parse(provider); err == nil {
		parsed.providerID = &id
	} else {
		parsed.username = provider
	}

	serviceID := strings.TrimSpace(req.ServiceID)
	if serviceID == "" {
		return nil, fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}
	id, err := uuid.Parse(serviceID)
	if err != nil {
		return nil, fmt.Errorf("%w: serviceID must be a UUID", ErrInvalidInput)
	}
	parsed.serviceID = id

	year, month, day, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	parsed.year, parsed.month, parsed.day = year, month, day

	if req.ExcludeBookingID != nil && strings.TrimSpace(*req.ExcludeBookingID) != "" {
		excludeID, err := uuid.Parse(strings.TrimSpace(*req.ExcludeBookingID))
		if err != nil {
			return nil, fmt.Errorf("%w: excludeBookingID must be a UUID", ErrInvalidInput)
		}
		parsed.excludeBookingID = &excludeID
	}

	return parsed, nil
}

// parseDate разбирает календарную дату YYYY-MM-DD без привязки к часовому поясу
func parseDate(value string) (int, time.Month, int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, 0, 0, fmt.Errorf("%w: %w: date is required", ErrInvalidInput, ErrInvalidDate)
	}

	t, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %w: %q, expected YYYY-MM-DD", ErrInvalidInput, ErrInvalidDate, value)
	}

	year, month, day := t.Date()
	return year, month, day, nil
}

// validateService проверяет, что услугу можно использовать для расчёта слотов
func validateService(service *domain.Service) error {
	if service.DurationMinutes <= 0 || service.DurationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: service id=%s has duration %d, allowed 1..%d",
			ErrInvalidDuration, service.ID, service.DurationMinutes, domain.MaxServiceDurationMinutes)
	}
	return nil
}

// loadLocation разрешает часовой пояс провайдера (пустой = UTC)
func loadLocation(provider *domain.Provider) (*time.Location, error) {
	name := provider.TimezoneOrDefault()
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTimezone, name, err)
	}
	return loc, nil
}
