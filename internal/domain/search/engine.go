package search

import (
	"sort"

	"studio-search/internal/domain/pricing"
	"studio-search/internal/domain/studio"
)

type SkipReason string

const (
	SkipCoverageGap SkipReason = "coverage_gap"
	SkipNoNightPack SkipReason = "no_night_pack"
	SkipOverBudget  SkipReason = "over_budget"
)

// Skip records a room dropped at the pricing stage.
type Skip struct {
	StudioKey string
	RoomName  string
	Reason    SkipReason
	Cost      int64
	Err       error
}

type Outcome struct {
	Results []Result
	Skips   []Skip
	Issues  []studio.RecordIssue
}

// Engine holds no state between runs; Run is safe to call concurrently.
type Engine struct {
	calc pricing.PriceCalculator
}

func NewEngine(calc pricing.PriceCalculator) *Engine {
	return &Engine{calc: calc}
}

// Search groups raw records and runs the query over them.
func (e *Engine) Search(records []studio.Record, q Query) Outcome {
	studios, issues := studio.GroupRecords(records)
	out := e.Run(studios, q)
	out.Issues = issues
	return out
}

// Run filters by area tag then floor area, prices each room, and ranks by cost.
// Equal costs keep grouping order.
func (e *Engine) Run(studios []*studio.Studio, q Query) Outcome {
	out := Outcome{Results: []Result{}}
	required := q.RequiredArea()

	for _, s := range studios {
		if !q.WantsArea(s.Area()) {
			continue
		}
		for _, room := range s.Rooms() {
			if sqm := room.AreaSqm(); sqm == nil || *sqm < required {
				continue
			}

			quote, skip, ok := e.price(room, q)
			if !ok {
				skip.StudioKey = s.Key()
				skip.RoomName = room.Name()
				out.Skips = append(out.Skips, skip)
				continue
			}

			out.Results = append(out.Results, Result{
				StudioKey:   s.Key(),
				StudioName:  s.Name(),
				OfficialURL: s.OfficialURL(),
				Area:        s.Area(),
				Room:        room,
				TotalCost:   quote.Total,
				Applied:     quote.Applied,
			})
		}
	}

	sort.SliceStable(out.Results, func(i, j int) bool {
		return out.Results[i].TotalCost < out.Results[j].TotalCost
	})
	return out
}

func (e *Engine) price(room *studio.Room, q Query) (pricing.Quote, Skip, bool) {
	var quote pricing.Quote

	switch q.Mode() {
	case ModeNight:
		var found bool
		quote, found = e.calc.CheapestNightPack(room.Rates(), q.Day())
		if !found {
			return pricing.Quote{}, Skip{Reason: SkipNoNightPack}, false
		}
	default:
		var err error
		quote, err = e.calc.HourlyCost(room.Rates(), q.Start(), q.End(), q.Day())
		if err != nil {
			return pricing.Quote{}, Skip{Reason: SkipCoverageGap, Err: err}, false
		}
	}

	if !q.Budget().Allows(quote.Total) {
		return pricing.Quote{}, Skip{Reason: SkipOverBudget, Cost: quote.Total}, false
	}
	return quote, Skip{}, true
}
