package busyblock

import "github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
