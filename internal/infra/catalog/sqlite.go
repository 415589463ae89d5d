package catalog

import (
	"context"
	"log/slog"

	"studio-search/internal/domain/studio"
	"studio-search/internal/infra"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// rateRecordModel mirrors migrations/001_initial_schema.sql so a local SQLite file
// can carry the same rows as the postgres catalog.
type rateRecordModel struct {
	ID             uint `gorm:"primaryKey"`
	StudioID       string
	StudioName     string
	OfficialURL    string
	Area           string `gorm:"index"`
	RoomID         string
	RoomName       string
	AreaSqm        *float64
	RecommendedMax *int
	Notes          string
	RateName       string
	DaysOfWeek     string
	StartTime      string
	EndTime        string
	MinPrice       *int64
}

func (rateRecordModel) TableName() string {
	return "rate_records"
}

type SQLiteSource struct {
	db     *gorm.DB
	logger *slog.Logger
}

// OpenSQLite opens (and creates if needed) the catalog database at dsn.
func OpenSQLite(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&rateRecordModel{}); err != nil {
		return nil, err
	}
	return db, nil
}

func NewSQLiteSource(db *gorm.DB, logger *slog.Logger) *SQLiteSource {
	return &SQLiteSource{db: db, logger: logger}
}

func (s *SQLiteSource) Name() string {
	return "sqlite"
}

func (s *SQLiteSource) Fetch(ctx context.Context) ([]studio.Record, error) {
	var rows []rateRecordModel
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to read sqlite catalog", err)
	}

	records := make([]studio.Record, len(rows))
	for i, row := range rows {
		records[i] = studio.Record{
			StudioID:       row.StudioID,
			StudioName:     row.StudioName,
			OfficialURL:    row.OfficialURL,
			Area:           row.Area,
			RoomID:         row.RoomID,
			RoomName:       row.RoomName,
			AreaSqm:        row.AreaSqm,
			RecommendedMax: row.RecommendedMax,
			Notes:          row.Notes,
			RateName:       row.RateName,
			DaysOfWeek:     row.DaysOfWeek,
			StartTime:      row.StartTime,
			EndTime:        row.EndTime,
			MinPrice:       row.MinPrice,
		}
	}
	return records, nil
}

// Import appends records in order; used to seed a local catalog file.
func (s *SQLiteSource) Import(ctx context.Context, records []studio.Record) error {
	if len(records) == 0 {
		return nil
	}
	models := make([]rateRecordModel, len(records))
	for i, r := range records {
		models[i] = rateRecordModel{
			StudioID:       r.StudioID,
			StudioName:     r.StudioName,
			OfficialURL:    r.OfficialURL,
			Area:           r.Area,
			RoomID:         r.RoomID,
			RoomName:       r.RoomName,
			AreaSqm:        r.AreaSqm,
			RecommendedMax: r.RecommendedMax,
			Notes:          r.Notes,
			RateName:       r.RateName,
			DaysOfWeek:     r.DaysOfWeek,
			StartTime:      r.StartTime,
			EndTime:        r.EndTime,
			MinPrice:       r.MinPrice,
		}
	}
	if err := s.db.WithContext(ctx).Create(&models).Error; err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to import sqlite catalog", err)
	}
	return nil
}
