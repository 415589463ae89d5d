package search

import (
	"studio-search/internal/domain/rate"
	"studio-search/internal/domain/studio"
)

type Result struct {
	StudioKey   string
	StudioName  string
	OfficialURL string
	Area        string
	Room        *studio.Room
	TotalCost   int64
	Applied     []rate.Rule
}

func (r Result) PerPersonCost(people int) float64 {
	if people <= 0 {
		return 0
	}
	return float64(r.TotalCost) / float64(people)
}

func (r Result) AreaFits(required float64) bool {
	sqm := r.Room.AreaSqm()
	return sqm != nil && *sqm >= required
}
