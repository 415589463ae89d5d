package rate

import (
	"errors"
	"fmt"
	"strings"
)

// NightPackMarker flags a rule as a flat night-pack rate when found in its name.
const NightPackMarker = "深夜"

var (
	ErrEmptyDayScope = errors.New("days_of_week is empty")
	ErrNegativePrice = errors.New("price cannot be negative")
	ErrInvalidWindow = errors.New("invalid rate time window")
)

type Rule struct {
	name      string
	days      DayScope
	startText string
	endText   string
	start     Minute
	end       Minute
	price     int64
	nightPack bool
}

func NewRule(name, days, start, end string, price int64) (Rule, error) {
	r := Rule{
		name:      strings.TrimSpace(name),
		days:      ParseDayScope(days),
		startText: strings.TrimSpace(start),
		endText:   strings.TrimSpace(end),
		price:     price,
	}
	r.nightPack = strings.Contains(r.name, NightPackMarker)

	if r.days.IsEmpty() {
		return Rule{}, ErrEmptyDayScope
	}
	if price < 0 {
		return Rule{}, ErrNegativePrice
	}

	// night packs apply for the whole day, their times are display-only
	if r.nightPack {
		return r, nil
	}

	var err error
	if r.start, err = ParseClock(r.startText); err != nil {
		return Rule{}, fmt.Errorf("%w: start_time: %w", ErrInvalidWindow, err)
	}
	if r.end, err = ParseClock(r.endText); err != nil {
		return Rule{}, fmt.Errorf("%w: end_time: %w", ErrInvalidWindow, err)
	}
	return r, nil
}

func (r Rule) Name() string      { return r.name }
func (r Rule) Days() DayScope    { return r.days }
func (r Rule) StartText() string { return r.startText }
func (r Rule) EndText() string   { return r.endText }
func (r Rule) Start() Minute     { return r.start }
func (r Rule) End() Minute       { return r.end }
func (r Rule) Price() int64      { return r.price }
func (r Rule) IsNightPack() bool { return r.nightPack }

func (r Rule) MatchesDay(day Weekday) bool {
	return r.days.Matches(day)
}

// Matches applies day-scope and, for hourly rules, the half-open window [start, end).
func (r Rule) Matches(day Weekday, minute Minute) bool {
	if !r.days.Matches(day) {
		return false
	}
	if r.nightPack {
		return true
	}
	return r.start <= minute && minute < r.end
}

// Key identifies a rule for de-duplication of applied rates.
func (r Rule) Key() string {
	return fmt.Sprintf("%s-%s-%s-%d", r.days.raw, r.startText, r.endText, r.price)
}
