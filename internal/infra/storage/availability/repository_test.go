package availability

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGetRulesByDay_InvalidDayOfWeek(t *testing.T) {
	repo := NewRepository(nil)

	for _, day := range []int{-1, 7} {
		rules, err := repo.GetRulesByDay(context.Background(), uuid.New(), day)

		assert.ErrorIs(t, err, ErrInvalidDayOfWeek)
		assert.Nil(t, rules)
	}
}
