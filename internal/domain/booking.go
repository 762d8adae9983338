package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking is a client's reservation of a provider's time.
// StartAt and EndAt are absolute instants stored in UTC.
type Booking struct {
	ID         uuid.UUID
	ProviderID uuid.UUID
	ServiceID  uuid.UUID
	StartAt    time.Time
	EndAt      time.Time
	Status     BookingStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsActive returns true if the booking still occupies the provider's time
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// Interval returns the occupied interval of the booking
func (b *Booking) Interval() Interval {
	return NewInterval(b.StartAt, b.EndAt)
}

// BusyBlock is an ad-hoc period the provider marked as unavailable.
// Busy blocks have no status and always participate in conflict checks.
type BusyBlock struct {
	ID         uuid.UUID
	ProviderID uuid.UUID
	StartAt    time.Time
	EndAt      time.Time
	Reason     *string
	CreatedAt  time.Time
}

// Interval returns the occupied interval of the busy block
func (b *BusyBlock) Interval() Interval {
	return NewInterval(b.StartAt, b.EndAt)
}

// CommitmentsFilter фильтр для выборки бронирований и занятых интервалов провайдера
type CommitmentsFilter struct {
	ProviderID       uuid.UUID  // Обязательный параметр
	From             time.Time  // Начало периода (включительно)
	To               time.Time  // Конец периода (не включительно)
	ExcludeBookingID *uuid.UUID // Бронирование, которое не учитывается (перенос)
}
