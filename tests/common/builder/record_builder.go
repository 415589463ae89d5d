//go:build unit || e2e

package builder

import (
	"studio-search/internal/domain/rate"
	"studio-search/internal/domain/studio"
)

type RecordBuilder struct {
	StudioID       string
	StudioName     string
	OfficialURL    string
	Area           string
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

func NewRecordBuilder() *RecordBuilder {
	sqm := 40.0
	recommended := 8
	price := int64(1000)
	return &RecordBuilder{
		StudioID:       "st-001",
		StudioName:     "スタジオA",
		OfficialURL:    "https://studio-a.example.com",
		Area:           "渋谷",
		RoomID:         "rm-001",
		RoomName:       "Aスタ",
		AreaSqm:        &sqm,
		RecommendedMax: &recommended,
		Notes:          "鏡あり",
		RateName:       "通常料金",
		DaysOfWeek:     rate.EveryDayScope,
		StartTime:      "00:00",
		EndTime:        "24:00",
		MinPrice:       &price,
	}
}

func (b *RecordBuilder) With(mutate func(*RecordBuilder)) *RecordBuilder {
	mutate(b)
	return b
}

func (b *RecordBuilder) WithStudio(id, name string) *RecordBuilder {
	b.StudioID = id
	b.StudioName = name
	return b
}

func (b *RecordBuilder) WithRoom(id, name string) *RecordBuilder {
	b.RoomID = id
	b.RoomName = name
	return b
}

func (b *RecordBuilder) WithArea(area string) *RecordBuilder {
	b.Area = area
	return b
}

func (b *RecordBuilder) WithAreaSqm(sqm float64) *RecordBuilder {
	b.AreaSqm = &sqm
	return b
}

func (b *RecordBuilder) WithUnknownAreaSqm() *RecordBuilder {
	b.AreaSqm = nil
	return b
}

func (b *RecordBuilder) WithRate(name, days, start, end string, price int64) *RecordBuilder {
	b.RateName = name
	b.DaysOfWeek = days
	b.StartTime = start
	b.EndTime = end
	b.MinPrice = &price
	return b
}

func (b *RecordBuilder) WithNightPack(days string, price int64) *RecordBuilder {
	return b.WithRate("深夜パック", days, "22:00", "05:00", price)
}

// Build methods
func (b *RecordBuilder) BuildRecord() studio.Record {
	return studio.Record{
		StudioID:       b.StudioID,
		StudioName:     b.StudioName,
		OfficialURL:    b.OfficialURL,
		Area:           b.Area,
		RoomID:         b.RoomID,
		RoomName:       b.RoomName,
		AreaSqm:        b.AreaSqm,
		RecommendedMax: b.RecommendedMax,
		Notes:          b.Notes,
		RateName:       b.RateName,
		DaysOfWeek:     b.DaysOfWeek,
		StartTime:      b.StartTime,
		EndTime:        b.EndTime,
		MinPrice:       b.MinPrice,
	}
}

func (b *RecordBuilder) BuildRule() (rate.Rule, error) {
	var price int64
	if b.MinPrice != nil {
		price = *b.MinPrice
	}
	return rate.NewRule(b.RateName, b.DaysOfWeek, b.StartTime, b.EndTime, price)
}
