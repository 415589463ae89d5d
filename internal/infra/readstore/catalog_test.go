//go:build unit

package readstore

import (
	"context"
	"testing"

	"studio-search/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	called := m.Called(ctx, sql)
	rows, _ := called.Get(0).(pgx.Rows)
	return rows, called.Error(1)
}

func TestCatalogReadStoreFetch(t *testing.T) {
	t.Run("query error is wrapped as DB_FAILURE", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("Query", mock.Anything, listRateRecords).Return(nil, assert.AnError)

		store := NewCatalogReadStore(db, nil)
		records, err := store.Fetch(context.Background())

		require.Error(t, err)
		assert.Nil(t, records)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.ErrorIs(t, err, assert.AnError)
		db.AssertExpectations(t)
	})
}

func TestToRecordFromRow(t *testing.T) {

	row := catalogRow{
		StudioID:       "st-1",
		StudioName:     "スタジオA",
		Area:           "渋谷",
		RoomName:       "A",
		AreaSqm:        pgtype.Float8{Float64: 32.5, Valid: true},
		RecommendedMax: pgtype.Int4{Int32: 10, Valid: true},
		RateName:       "通常",
		DaysOfWeek:     "毎日",
		StartTime:      "10:00",
		EndTime:        "22:00",
		MinPrice:       pgtype.Int8{Int64: 2200, Valid: true},
	}

	rec := toRecordFromRow(row)

	assert.Equal(t, "st-1", rec.StudioID)
	require.NotNil(t, rec.RecommendedMax)
	assert.Equal(t, 10, *rec.RecommendedMax)
	require.NotNil(t, rec.AreaSqm)
	assert.Equal(t, 32.5, *rec.AreaSqm)
	assert.Equal(t, int64(2200), *rec.MinPrice)

	row.RecommendedMax = pgtype.Int4{}
	row.MinPrice = pgtype.Int8{}
	rec = toRecordFromRow(row)
	assert.Nil(t, rec.RecommendedMax)
	assert.Nil(t, rec.MinPrice)
}
