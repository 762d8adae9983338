package domain

import (
	"time"

	"github.com/google/uuid"
)

// Provider is the owner of a schedule (a specialist or a business account)
type Provider struct {
	ID        uuid.UUID
	Username  string
	Timezone  string // IANA name, empty = DefaultTimezone
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TimezoneOrDefault returns the provider timezone, falling back to DefaultTimezone
func (p *Provider) TimezoneOrDefault() string {
	if p.Timezone == "" {
		return DefaultTimezone
	}
	return p.Timezone
}

// Service is a bookable offering of a provider
type Service struct {
	ID              uuid.UUID
	ProviderID      uuid.UUID
	Name            string
	DurationMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// BelongsTo returns true if the service is owned by the provider
func (s *Service) BelongsTo(providerID uuid.UUID) bool {
	return s.ProviderID == providerID
}
