package domain

// Default configuration values
const (
	DefaultTimezone            = "UTC"
	DefaultBufferBeforeMinutes = 0
	DefaultBufferAfterMinutes  = 0
	DefaultMinNoticeMinutes    = 0
	DefaultHorizonDays         = 0 // 0 = unlimited
)

// SlotStepMinutes is the fixed distance between consecutive candidate slot starts
// inside one availability window. It does not depend on the service duration.
const SlotStepMinutes = 15

// MaxServiceDurationMinutes is the longest service that can fit into a single
// availability window: rules never extend past 24:00 of their day.
const MaxServiceDurationMinutes = 24 * 60

// DateFormat is the calendar date layout (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// InactiveStatuses список статусов бронирований, не занимающих время
// Используется для фильтрации при выборке конфликтов
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}
