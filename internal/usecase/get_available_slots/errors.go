package get_available_slots

import "errors"

var (
	// ErrProviderNotFound возвращается, когда провайдер не найден ни по ID, ни по username
	ErrProviderNotFound = errors.New("provider not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена или принадлежит другому провайдеру
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate возвращается при некорректной дате (ожидается YYYY-MM-DD)
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidDuration возвращается, когда длительность услуги не положительна
	ErrInvalidDuration = errors.New("service duration must be positive")

	// ErrInvalidTimezone возвращается, когда у провайдера сохранён неизвестный часовой пояс
	ErrInvalidTimezone = errors.New("unknown provider timezone")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
