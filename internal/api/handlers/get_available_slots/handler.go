package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput     = "некорректные параметры запроса"
	msgProviderNotFound = "провайдер не найден"
	msgServiceNotFound  = "услуга не найдена"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{provider}/services/{serviceId}/available-slots
// Query params: date (required, YYYY-MM-DD), excludeBookingId (optional, UUID)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	provider := vars["provider"]
	serviceID := vars["serviceId"]

	query := r.URL.Query()

	// Извлекаем date из query параметров
	date := query.Get("date")
	if date == "" {
		h.logger.Warn("GET /providers/{provider}/services/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq := ToUseCaseRequest(provider, serviceID, date, query.Get("excludeBookingId"))

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /providers/{provider}/services/{id}/available-slots - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /providers/{provider}/services/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailableSlots.ErrProviderNotFound):
			h.logger.Warn("GET /providers/{provider}/services/{id}/available-slots - Provider not found: provider=%s", provider)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /providers/{provider}/services/{id}/available-slots - Service not found: provider=%s, service_id=%s",
				provider, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("GET /providers/{provider}/services/{id}/available-slots - Failed to get slots: provider=%s, service_id=%s, error=%v",
				provider, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /providers/{provider}/services/{id}/available-slots - Slots retrieved successfully: provider=%s, service_id=%s, date=%s, slots_count=%d",
		provider, serviceID, date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
