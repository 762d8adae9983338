package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// AvailabilityRule is one weekly recurrence of working time.
// StartTime and EndTime are wall-clock values in the provider's timezone.
// Rules of the same day may overlap or be disjoint.
type AvailabilityRule struct {
	ID         uuid.UUID
	ProviderID uuid.UUID
	DayOfWeek  int // 0 = Sunday .. 6 = Saturday
	StartTime  types.TimeString
	EndTime    types.TimeString
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AvailabilitySettings represents per-provider booking policies.
// A provider without stored settings uses DefaultAvailabilitySettings.
type AvailabilitySettings struct {
	ProviderID          uuid.UUID
	BufferBeforeMinutes int
	BufferAfterMinutes  int
	MinNoticeMinutes    int
	HorizonDays         int // enforced by callers, 0 = unlimited
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// DefaultAvailabilitySettings returns settings with no buffers and no notice
func DefaultAvailabilitySettings(providerID uuid.UUID) *AvailabilitySettings {
	return &AvailabilitySettings{
		ProviderID:          providerID,
		BufferBeforeMinutes: DefaultBufferBeforeMinutes,
		BufferAfterMinutes:  DefaultBufferAfterMinutes,
		MinNoticeMinutes:    DefaultMinNoticeMinutes,
		HorizonDays:         DefaultHorizonDays,
	}
}

// BufferBefore returns the padding applied before every commitment
func (s *AvailabilitySettings) BufferBefore() time.Duration {
	return time.Duration(s.BufferBeforeMinutes) * time.Minute
}

// BufferAfter returns the padding applied after every commitment
func (s *AvailabilitySettings) BufferAfter() time.Duration {
	return time.Duration(s.BufferAfterMinutes) * time.Minute
}

// MinNotice returns the minimal lead time before a slot may start
func (s *AvailabilitySettings) MinNotice() time.Duration {
	return time.Duration(s.MinNoticeMinutes) * time.Minute
}
