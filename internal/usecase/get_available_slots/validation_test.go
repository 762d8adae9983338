package get_available_slots

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func TestValidateRequest(t *testing.T) {
	serviceID := uuid.New()

	t.Run("provider given as uuid", func(t *testing.T) {
		providerID := uuid.New()

		parsed, err := validateRequest(&Request{
			Provider:  providerID.String(),
			ServiceID: serviceID.String(),
			Date:      "2025-01-15",
		})

		require.NoError(t, err)
		require.NotNil(t, parsed.providerID)
		assert.Equal(t, providerID, *parsed.providerID)
		assert.Empty(t, parsed.username)
		assert.Equal(t, serviceID, parsed.serviceID)
		assert.Equal(t, 2025, parsed.year)
		assert.Equal(t, time.January, parsed.month)
		assert.Equal(t, 15, parsed.day)
		assert.Nil(t, parsed.excludeBookingID)
	})

	t.Run("provider given as username", func(t *testing.T) {
		parsed, err := validateRequest(&Request{
			Provider:  "  anna ",
			ServiceID: serviceID.String(),
			Date:      "2025-01-15",
		})

		require.NoError(t, err)
		assert.Nil(t, parsed.providerID)
		assert.Equal(t, "anna", parsed.username)
	})

	t.Run("blank exclude booking id is ignored", func(t *testing.T) {
		blank := ""
		parsed, err := validateRequest(&Request{
			Provider:         "anna",
			ServiceID:        serviceID.String(),
			Date:             "2025-01-15",
			ExcludeBookingID: &blank,
		})

		require.NoError(t, err)
		assert.Nil(t, parsed.excludeBookingID)
	})

	t.Run("malformed service id", func(t *testing.T) {
		_, err := validateRequest(&Request{
			Provider:  "anna",
			ServiceID: "wash-basic",
			Date:      "2025-01-15",
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.NotErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("malformed exclude booking id", func(t *testing.T) {
		bad := "booking-1"
		_, err := validateRequest(&Request{
			Provider:         "anna",
			ServiceID:        serviceID.String(),
			Date:             "2025-01-15",
			ExcludeBookingID: &bad,
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestParseDate(t *testing.T) {
	year, month, day, err := parseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, 2024, year)
	assert.Equal(t, time.February, month)
	assert.Equal(t, 29, day)

	for _, value := range []string{"", "2025-1-5", "2025-13-01", "2025-01-15T10:00:00Z"} {
		_, _, _, err := parseDate(value)
		assert.ErrorIs(t, err, ErrInvalidInput, value)
		assert.ErrorIs(t, err, ErrInvalidDate, value)
	}
}

func TestLoadLocation(t *testing.T) {
	loc, err := loadLocation(&domain.Provider{})
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	loc, err = loadLocation(&domain.Provider{Timezone: "Europe/Moscow"})
	require.NoError(t, err)
	assert.Equal(t, "Europe/Moscow", loc.String())

	_, err = loadLocation(&domain.Provider{Timezone: "Nowhere/City"})
	assert.ErrorIs(t, err, ErrInvalidTimezone)
}

func TestValidateService(t *testing.T) {
	assert.NoError(t, validateService(&domain.Service{DurationMinutes: 15}))
	assert.NoError(t, validateService(&domain.Service{DurationMinutes: domain.MaxServiceDurationMinutes}))

	for _, minutes := range []int{-30, 0, domain.MaxServiceDurationMinutes + 1, 307445735} {
		assert.ErrorIs(t, validateService(&domain.Service{DurationMinutes: minutes}), ErrInvalidDuration, minutes)
	}
}
