package provider

import "errors"

var (
	// ErrProviderNotFound возвращается, когда провайдер не найден
	ErrProviderNotFound = errors.New("provider.repository: provider not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("provider.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("provider.repository: failed to scan row")
)
