package queries

import (
	"time"

	"studio-search/internal/domain/search"
	"studio-search/internal/pkg/clock"
	"studio-search/internal/pkg/config"
)

// Conditions is the saved search form state.
type Conditions struct {
	Date          string   `json:"date"`
	StartTime     string   `json:"startTime"`
	EndTime       string   `json:"endTime"`
	Price         *int64   `json:"price"`
	People        int      `json:"people"`
	Mode          string   `json:"mode"`
	Areas         []string `json:"areas"`
	AreaPerPerson float64  `json:"areaPerPerson"`
}

type ConditionQueries interface {
	Defaults() Conditions
	FromQuery(q search.Query) Conditions
}

type conditionQueriesImpl struct {
	clock clock.Clock
	cfg   config.SearchConfig
	loc   *time.Location
}

func NewConditionQueries(clk clock.Clock, cfg config.SearchConfig) ConditionQueries {
	return &conditionQueriesImpl{clock: clk, cfg: cfg, loc: cfg.Location()}
}

func (q *conditionQueriesImpl) Defaults() Conditions {
	price := q.cfg.DefaultMaxPrice
	return Conditions{
		Date:          clock.Today(q.clock, q.loc),
		StartTime:     q.cfg.DefaultStartTime,
		EndTime:       q.cfg.DefaultEndTime,
		Price:         &price,
		People:        q.cfg.DefaultPeople,
		Mode:          string(search.ModeDay),
		Areas:         []string{},
		AreaPerPerson: q.cfg.AreaPerPerson,
	}
}

func (q *conditionQueriesImpl) FromQuery(query search.Query) Conditions {
	c := Conditions{
		Date:          query.Date(),
		StartTime:     query.StartText(),
		EndTime:       query.EndText(),
		People:        query.People(),
		Mode:          string(query.Mode()),
		Areas:         append([]string{}, query.Areas()...),
		AreaPerPerson: query.AreaPerPerson(),
	}
	if limit, ok := query.Budget().Limit(); ok {
		c.Price = &limit
	}
	return c
}
