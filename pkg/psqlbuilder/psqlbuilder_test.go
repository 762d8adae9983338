package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id", "timezone").
		From("providers").
		Where(squirrel.Eq{"username": "anna"}).
		Where(squirrel.Lt{"created_at": "2025-01-01"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, timezone FROM providers WHERE username = $1 AND created_at < $2", query)
	assert.Equal(t, []interface{}{"anna", "2025-01-01"}, args)
}
