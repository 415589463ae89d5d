//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"studio-search/internal/domain/studio"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const insertRateRecord = `
INSERT INTO rate_records (
    studio_id, studio_name, official_url, area,
    room_id, room_name, area_sqm, recommended_max, notes,
    rate_name, days_of_week, start_time, end_time, min_price
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

// InsertRateRecords stores records in order, so declaration order survives ORDER BY id.
func InsertRateRecords(t *testing.T, db DBLike, records ...studio.Record) {
	t.Helper()

	ctx := context.Background()
	for _, r := range records {
		_, err := db.Exec(ctx, insertRateRecord,
			r.StudioID, r.StudioName, r.OfficialURL, r.Area,
			r.RoomID, r.RoomName, r.AreaSqm, r.RecommendedMax, r.Notes,
			r.RateName, r.DaysOfWeek, r.StartTime, r.EndTime, r.MinPrice)
		require.NoError(t, err)
	}
}

// ResetDB empties the catalog and restarts ids, so insertion order is stable across subtests.
func ResetDB(db DBLike) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := db.Exec(ctx, "TRUNCATE rate_records RESTART IDENTITY")
	return err
}
