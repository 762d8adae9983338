package availability

import "errors"

var (
	// ErrSettingsNotFound возвращается, когда у провайдера нет сохранённых настроек
	ErrSettingsNotFound = errors.New("availability.repository: settings not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability.repository: failed to scan row")

	// ErrInvalidDayOfWeek возвращается при дне недели вне диапазона 0..6
	ErrInvalidDayOfWeek = errors.New("availability.repository: invalid day of week")
)
