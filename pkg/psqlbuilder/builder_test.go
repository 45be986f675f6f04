package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id", "status").
		From("bookings").
		Where(squirrel.Eq{"room_id": "#005"}).
		Where(squirrel.NotEq{"status": "cancelled"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, status FROM bookings WHERE room_id = $1 AND status <> $2", query)
	assert.Equal(t, []interface{}{"#005", "cancelled"}, args)
}

func TestUpdate_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Update("rooms").
		Set("status", "inactive").
		Where(squirrel.Eq{"id": "#001"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "UPDATE rooms SET status = $1 WHERE id = $2", query)
	assert.Equal(t, []interface{}{"inactive", "#001"}, args)
}
