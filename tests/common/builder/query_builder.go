//go:build unit || e2e

package builder

import (
	"time"

	"studio-search/internal/domain/search"
)

var Tokyo = time.FixedZone("Asia/Tokyo", 9*60*60)

type QueryBuilder struct {
	Date          string
	StartTime     string
	EndTime       string
	MaxPrice      *int64
	People        int
	Areas         []string
	AreaPerPerson *float64
	Mode          string
}

// 2025-01-06 is a Monday.
func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{
		Date:      "2025-01-06",
		StartTime: "18:00",
		EndTime:   "20:00",
		People:    5,
		Mode:      string(search.ModeDay),
	}
}

func (b *QueryBuilder) With(mutate func(*QueryBuilder)) *QueryBuilder {
	mutate(b)
	return b
}

func (b *QueryBuilder) WithWindow(start, end string) *QueryBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *QueryBuilder) WithMaxPrice(p int64) *QueryBuilder {
	b.MaxPrice = &p
	return b
}

func (b *QueryBuilder) WithAreaPerPerson(v float64) *QueryBuilder {
	b.AreaPerPerson = &v
	return b
}

func (b *QueryBuilder) WithAreas(areas ...string) *QueryBuilder {
	b.Areas = areas
	return b
}

func (b *QueryBuilder) AsNight() *QueryBuilder {
	b.Mode = string(search.ModeNight)
	return b
}

// Build methods
func (b *QueryBuilder) BuildInput() search.QueryInput {
	return search.QueryInput{
		Date:          b.Date,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		MaxPrice:      b.MaxPrice,
		People:        b.People,
		Areas:         b.Areas,
		AreaPerPerson: b.AreaPerPerson,
		Mode:          b.Mode,
	}
}

func (b *QueryBuilder) BuildDomain() (search.Query, error) {
	return search.NewQuery(b.BuildInput(), Tokyo)
}
