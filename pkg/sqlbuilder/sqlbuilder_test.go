package sqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Placeholders(t *testing.T) {
	query, args, err := New(DialectPostgres).Delete("reservations").Where(squirrel.Eq{"id": []string{"a", "b"}}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM reservations WHERE id IN ($1,$2)", query)
	assert.Equal(t, []interface{}{"a", "b"}, args)

	query, _, err = New(DialectSQLite).Delete("reservations").Where(squirrel.Eq{"id": []string{"a", "b"}}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM reservations WHERE id IN (?,?)", query)
}
