//go:build unit

package pgconv_test

import (
	"testing"

	"studio-search/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullableConversions(t *testing.T) {
	assert.Nil(t, pgconv.Float64PtrFromPgtype(pgtype.Float8{}))
	assert.Nil(t, pgconv.IntPtrFromPgtype(pgtype.Int4{}))
	assert.Nil(t, pgconv.Int64PtrFromPgtype(pgtype.Int8{}))

	f := pgconv.Float64PtrFromPgtype(pgtype.Float8{Float64: 32.5, Valid: true})
	require.NotNil(t, f)
	assert.Equal(t, 32.5, *f)

	i := pgconv.IntPtrFromPgtype(pgtype.Int4{Int32: 10, Valid: true})
	require.NotNil(t, i)
	assert.Equal(t, 10, *i)

	p := pgconv.Int64PtrFromPgtype(pgtype.Int8{Int64: 0, Valid: true})
	require.NotNil(t, p)
	assert.Equal(t, int64(0), *p)
}
