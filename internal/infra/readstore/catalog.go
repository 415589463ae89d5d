package readstore

import (
	"context"
	"log/slog"

	"studio-search/internal/domain/studio"
	"studio-search/internal/infra"
	"studio-search/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is the subset of pgxpool.Pool the read store needs.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

const listRateRecords = `
SELECT studio_id, studio_name, official_url, area,
       room_id, room_name, area_sqm, recommended_max, notes,
       rate_name, days_of_week, start_time, end_time, min_price
FROM rate_records
ORDER BY id`

type catalogRow struct {
	StudioID       string        `db:"studio_id"`
	StudioName     string        `db:"studio_name"`
	OfficialURL    string        `db:"official_url"`
	Area           string        `db:"area"`
	RoomID         string        `db:"room_id"`
	RoomName       string        `db:"room_name"`
	AreaSqm        pgtype.Float8 `db:"area_sqm"`
	RecommendedMax pgtype.Int4   `db:"recommended_max"`
	Notes          string        `db:"notes"`
	RateName       string        `db:"rate_name"`
	DaysOfWeek     string        `db:"days_of_week"`
	StartTime      string        `db:"start_time"`
	EndTime        string        `db:"end_time"`
	MinPrice       pgtype.Int8   `db:"min_price"`
}

type CatalogReadStore struct {
	db     DBTX
	logger *slog.Logger
}

func NewCatalogReadStore(db DBTX, logger *slog.Logger) *CatalogReadStore {
	return &CatalogReadStore{
		db:     db,
		logger: logger,
	}
}

func (r *CatalogReadStore) Name() string {
	return "postgres"
}

func (r *CatalogReadStore) Fetch(ctx context.Context) ([]studio.Record, error) {
	rows, err := r.db.Query(ctx, listRateRecords)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to query rate records", err)
	}

	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[catalogRow])
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan rate records", err)
	}

	result := make([]studio.Record, len(collected))
	for i, row := range collected {
		result[i] = toRecordFromRow(row)
	}

	return result, nil
}

func toRecordFromRow(row catalogRow) studio.Record {
	return studio.Record{
		StudioID:       row.StudioID,
		StudioName:     row.StudioName,
		OfficialURL:    row.OfficialURL,
		Area:           row.Area,
		RoomID:         row.RoomID,
		RoomName:       row.RoomName,
		AreaSqm:        pgconv.Float64PtrFromPgtype(row.AreaSqm),
		RecommendedMax: pgconv.IntPtrFromPgtype(row.RecommendedMax),
		Notes:          row.Notes,
		RateName:       row.RateName,
		DaysOfWeek:     row.DaysOfWeek,
		StartTime:      row.StartTime,
		EndTime:        row.EndTime,
		MinPrice:       pgconv.Int64PtrFromPgtype(row.MinPrice),
	}
}
