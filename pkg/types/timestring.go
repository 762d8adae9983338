package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("types: invalid time string, expected HH:MM or HH:MM:SS")

// ErrTimeOutOfRange возвращается, когда время выходит за пределы суток
var ErrTimeOutOfRange = errors.New("types: time out of day range")

// TimeString is a wall-clock time of day without date or timezone.
// The valid range is 00:00:00..24:00:00; 24:00:00 means the end of the day.
type TimeString struct {
	seconds int
}

// NewTimeString извлекает время суток из time.Time (в его собственной локации)
func NewTimeString(t time.Time) TimeString {
	return TimeString{seconds: t.Hour()*secondsPerHour + t.Minute()*secondsPerMinute + t.Second()}
}

// NewTimeStringFromString парсит строку формата HH:MM или HH:MM:SS
func NewTimeStringFromString(s string) (TimeString, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	values := make([]int, 3)
	for i, part := range parts {
		if len(part) != 2 {
			return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
		}
		v, err := strconv.Atoi(part)
		if err != nil || v < 0 {
			return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
		}
		values[i] = v
	}

	hours, minutes, seconds := values[0], values[1], values[2]
	if minutes > 59 || seconds > 59 || hours > 24 {
		return TimeString{}, fmt.Errorf("%w: %q", ErrTimeOutOfRange, s)
	}
	if hours == 24 && (minutes != 0 || seconds != 0) {
		return TimeString{}, fmt.Errorf("%w: %q", ErrTimeOutOfRange, s)
	}

	return TimeString{seconds: hours*secondsPerHour + minutes*secondsPerMinute + seconds}, nil
}

// MustTimeString паникует при ошибке парсинга. Только для тестов и констант.
func MustTimeString(s string) TimeString {
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

func (t TimeString) Hour() int   { return t.seconds / secondsPerHour }
func (t TimeString) Minute() int { return t.seconds % secondsPerHour / secondsPerMinute }
func (t TimeString) Second() int { return t.seconds % secondsPerMinute }

// Seconds возвращает количество секунд от полуночи
// String возвращает время в формате HH:MM:SS
func (t TimeString) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// IsBefore сравнивает время внутри суток
func (t TimeString) IsBefore(other TimeString) bool { return t.seconds < other.seconds }

// On composes the wall-clock time with a calendar date in loc.
// 24:00:00 resolves to midnight of the following day.
func (t TimeString) On(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), 0, loc)
}

// Scan реализует sql.Scanner (колонки типа time / text)
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*t = NewTimeString(v)
		// lib/pq отдаёт 24:00:00 как полночь следующего дня (0000-01-02)
		if t.seconds == 0 && v.YearDay() > 1 {
			*t = TimeString{seconds: secondsPerDay}
		}
		return nil
	case []byte:
		return t.parseInto(string(v))
	case string:
		return t.parseInto(v)
	case nil:
		return fmt.Errorf("%w: NULL", ErrInvalidTimeString)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeString, src)
	}
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	return t.String(), nil
}

func (t TimeString) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeString, err)
	}
	return t.parseInto(s)
}

func (t *TimeString) parseInto(s string) error {
	// postgres may return fractional seconds for time columns
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		s = s[:idx]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
