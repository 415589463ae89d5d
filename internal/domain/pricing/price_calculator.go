package pricing

import (
	"errors"
	"fmt"

	"studio-search/internal/domain/rate"
)

var ErrCoverageGap = errors.New("no rate covers the requested hour")

// CoverageGapError reports the first hour bucket no hourly rule covers.
type CoverageGapError struct {
	Day    rate.Weekday
	Minute rate.Minute
}

func (e *CoverageGapError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrCoverageGap.Error(), e.Day, e.Minute)
}

func (e *CoverageGapError) Is(target error) bool {
	return target == ErrCoverageGap
}

// Quote is a priced request: the total and the distinct rules that produced it.
type Quote struct {
	Total   int64
	Applied []rate.Rule
}

type PriceCalculator interface {
	HourlyCost(rules []rate.Rule, start, end rate.Minute, day rate.Weekday) (Quote, error)
	CheapestNightPack(rules []rate.Rule, day rate.Weekday) (Quote, bool)
}

type DefaultPriceCalculator struct{}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{}
}

// HourCount is the number of whole-hour buckets billed for [start, end).
func HourCount(start, end rate.Minute) int {
	span := int(end - start)
	if span <= 0 {
		return 0
	}
	return (span + rate.MinutesPerHour - 1) / rate.MinutesPerHour
}

// HourlyCost charges each bucket at the first matching hourly rule in declaration order.
// A trailing partial bucket is billed as a full hour.
func (pc *DefaultPriceCalculator) HourlyCost(rules []rate.Rule, start, end rate.Minute, day rate.Weekday) (Quote, error) {
	quote := Quote{Applied: []rate.Rule{}}
	seen := make(map[string]struct{})

	for h := 0; h < HourCount(start, end); h++ {
		bucket := start + rate.Minute(h*rate.MinutesPerHour)

		matched, ok := firstHourly(rules, day, bucket)
		if !ok {
			return Quote{}, &CoverageGapError{Day: day, Minute: bucket}
		}

		quote.Total += matched.Price()
		if _, dup := seen[matched.Key()]; !dup {
			seen[matched.Key()] = struct{}{}
			quote.Applied = append(quote.Applied, matched)
		}
	}

	return quote, nil
}

func firstHourly(rules []rate.Rule, day rate.Weekday, minute rate.Minute) (rate.Rule, bool) {
	for _, r := range rules {
		if r.IsNightPack() {
			continue
		}
		if r.Matches(day, minute) {
			return r, true
		}
	}
	return rate.Rule{}, false
}

// CheapestNightPack picks the lowest-priced night-pack rule for day; ties keep the first seen.
func (pc *DefaultPriceCalculator) CheapestNightPack(rules []rate.Rule, day rate.Weekday) (Quote, bool) {
	var (
		best  rate.Rule
		found bool
	)
	for _, r := range rules {
		if !r.IsNightPack() || !r.MatchesDay(day) {
			continue
		}
		if !found || r.Price() < best.Price() {
			best = r
			found = true
		}
	}
	if !found {
		return Quote{}, false
	}
	return Quote{Total: best.Price(), Applied: []rate.Rule{best}}, true
}
