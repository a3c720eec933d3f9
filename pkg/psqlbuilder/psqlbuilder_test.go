package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_DollarPlaceholders(t *testing.T) {
	query, args, err := Select("a", "b").
		From("t").
		Where(squirrel.Eq{"id": "x"}).
		Where(squirrel.Eq{"kind": 2}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT a, b FROM t WHERE id = $1 AND kind = $2", query)
	assert.Equal(t, []interface{}{"x", 2}, args)
}

func TestInsert_DollarPlaceholders(t *testing.T) {
	query, args, err := Insert("t").
		Columns("a", "b").
		Values(1, "two").
		Suffix("RETURNING id").
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO t (a,b) VALUES ($1,$2) RETURNING id", query)
	assert.Equal(t, []interface{}{1, "two"}, args)
}
