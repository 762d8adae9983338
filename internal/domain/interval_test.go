package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, time.January, 20, hour, minute, 0, 0, time.UTC)
}

func TestInterval_Overlaps(t *testing.T) {
	slot := Interval{Start: at(11, 30), End: at(12, 0)}

	tests := []struct {
		name  string
		other Interval
		want  bool
	}{
		{name: "partial overlap", other: Interval{Start: at(11, 20), End: at(11, 40)}, want: true},
		{name: "contains slot", other: Interval{Start: at(11, 0), End: at(13, 0)}, want: true},
		{name: "touches before", other: Interval{Start: at(11, 0), End: at(11, 30)}, want: false},
		{name: "touches after", other: Interval{Start: at(12, 0), End: at(12, 30)}, want: false},
		{name: "disjoint", other: Interval{Start: at(14, 0), End: at(15, 0)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slot.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(slot))
		})
	}
}

func TestInterval_ExpandAndContains(t *testing.T) {
	booking := Interval{Start: at(10, 0), End: at(10, 30)}
	busy := booking.Expand(15*time.Minute, 15*time.Minute)

	assert.Equal(t, at(9, 45), busy.Start)
	assert.Equal(t, at(10, 45), busy.End)
	assert.True(t, busy.Contains(booking))
	assert.False(t, booking.Contains(busy))
	assert.Equal(t, time.Hour, busy.Duration())
}

func TestInterval_IsEmpty(t *testing.T) {
	assert.True(t, Interval{Start: at(9, 0), End: at(9, 0)}.IsEmpty())
	assert.True(t, Interval{Start: at(10, 0), End: at(9, 0)}.IsEmpty())
	assert.False(t, Interval{Start: at(9, 0), End: at(9, 15)}.IsEmpty())
}

func TestNewInterval_NormalizesToUTC(t *testing.T) {
	sydney, err := time.LoadLocation("Australia/Sydney")
	assert.NoError(t, err)

	i := NewInterval(time.Date(2025, 1, 20, 9, 0, 0, 0, sydney), time.Date(2025, 1, 20, 10, 0, 0, 0, sydney))
	assert.Equal(t, time.UTC, i.Start.Location())
	assert.Equal(t, at(0, 0).Add(-2*time.Hour), i.Start)
}

func TestBooking_IsActive(t *testing.T) {
	for _, status := range []BookingStatus{StatusPending, StatusConfirmed, StatusCompleted} {
		b := Booking{Status: status}
		assert.True(t, b.IsActive(), status)
	}
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
}

func TestProvider_TimezoneOrDefault(t *testing.T) {
	assert.Equal(t, "UTC", (&Provider{}).TimezoneOrDefault())
	assert.Equal(t, "Europe/Moscow", (&Provider{Timezone: "Europe/Moscow"}).TimezoneOrDefault())
}

func TestService_BelongsTo(t *testing.T) {
	owner := uuid.New()
	s := Service{ProviderID: owner, DurationMinutes: 45}

	assert.True(t, s.BelongsTo(owner))
	assert.False(t, s.BelongsTo(uuid.New()))
}

func TestDefaultAvailabilitySettings(t *testing.T) {
	s := DefaultAvailabilitySettings(uuid.New())

	assert.Zero(t, s.BufferBefore())
	assert.Zero(t, s.BufferAfter())
	assert.Zero(t, s.MinNotice())
}
