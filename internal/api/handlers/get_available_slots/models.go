package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	ProviderID      string          `json:"providerId"`
	ServiceID       string          `json:"serviceId"`
	Date            string          `json:"date"`
	Timezone        string          `json:"timezone"`
	DurationMinutes int             `json:"durationMinutes"`
	Slots           []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота, время в UTC (RFC3339)
type AvailableSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Start: slot.Start.UTC().Format(time.RFC3339),
			End:   slot.End.UTC().Format(time.RFC3339),
		}
	}

	return &AvailableSlotsResponse{
		ProviderID:      resp.ProviderID.String(),
		ServiceID:       resp.ServiceID.String(),
		Date:            resp.Date.Format(domain.DateFormat),
		Timezone:        resp.Timezone,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров пути и query
func ToUseCaseRequest(provider, serviceID, date, excludeBookingID string) *getAvailableSlots.Request {
	req := &getAvailableSlots.Request{
		Provider:  provider,
		ServiceID: serviceID,
		Date:      date,
	}
	if excludeBookingID != "" {
		req.ExcludeBookingID = &excludeBookingID
	}
	return req
}
