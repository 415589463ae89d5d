package search

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"studio-search/internal/domain/pricing"
	"studio-search/internal/domain/rate"
)

const DefaultAreaPerPerson = 5.0

type Mode string

const (
	ModeDay   Mode = "day"
	ModeNight Mode = "night"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeDay:
		return ModeDay, nil
	case ModeNight:
		return ModeNight, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

var (
	ErrInvalidQuery         = errors.New("invalid search query")
	ErrInvalidPeople        = errors.New("people must be at least 1")
	ErrInvalidMode          = errors.New("mode must be day or night")
	ErrInvalidDate          = errors.New("date must be YYYY-MM-DD")
	ErrInvalidTimeRange     = errors.New("start time must be before end time")
	ErrInvalidAreaPerPerson = errors.New("area per person must be positive")
	ErrNegativeBudget       = errors.New("budget cannot be negative")
)

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidQuery, err)
}

// Budget is an inclusive upper bound on cost; the zero value is unbounded.
type Budget struct {
	limit   int64
	bounded bool
}

func Unbounded() Budget {
	return Budget{}
}

func NewBudget(limit int64) (Budget, error) {
	if limit < 0 {
		return Budget{}, ErrNegativeBudget
	}
	return Budget{limit: limit, bounded: true}, nil
}

func (b Budget) Allows(cost int64) bool {
	return !b.bounded || cost <= b.limit
}

func (b Budget) Limit() (int64, bool) {
	return b.limit, b.bounded
}

type QueryInput struct {
	Date          string
	StartTime     string
	EndTime       string
	MaxPrice      *int64
	People        int
	Areas         []string
	AreaPerPerson *float64
	Mode          string
}

type Query struct {
	date          string
	day           rate.Weekday
	startText     string
	endText       string
	start         rate.Minute
	end           rate.Minute
	budget        Budget
	people        int
	areas         []string
	areaPerPerson float64
	mode          Mode
}

// NewQuery validates input. loc decides the calendar day of Date.
func NewQuery(in QueryInput, loc *time.Location) (Query, error) {
	mode, err := ParseMode(in.Mode)
	if err != nil {
		return Query{}, invalid(err)
	}
	if in.People < 1 {
		return Query{}, invalid(ErrInvalidPeople)
	}

	q := Query{
		date:          strings.TrimSpace(in.Date),
		people:        in.People,
		mode:          mode,
		areaPerPerson: DefaultAreaPerPerson,
		areas:         normalizeAreas(in.Areas),
	}

	if in.AreaPerPerson != nil {
		if *in.AreaPerPerson <= 0 {
			return Query{}, invalid(ErrInvalidAreaPerPerson)
		}
		q.areaPerPerson = *in.AreaPerPerson
	}

	if in.MaxPrice != nil {
		if q.budget, err = NewBudget(*in.MaxPrice); err != nil {
			return Query{}, invalid(err)
		}
	}

	if q.date != "" {
		q.day = rate.DayOfWeek(q.date, loc)
		if q.day == rate.NoWeekday {
			return Query{}, invalid(fmt.Errorf("%w: %q", ErrInvalidDate, q.date))
		}
	}

	// night packs cover the whole day, so the time window is only checked in day mode
	if mode == ModeNight {
		q.startText = strings.TrimSpace(in.StartTime)
		q.endText = strings.TrimSpace(in.EndTime)
		return q, nil
	}

	if q.date == "" {
		return Query{}, invalid(ErrInvalidDate)
	}
	if q.start, err = rate.ParseClock(in.StartTime); err != nil {
		return Query{}, invalid(fmt.Errorf("startTime: %w", err))
	}
	if q.end, err = rate.ParseClock(in.EndTime); err != nil {
		return Query{}, invalid(fmt.Errorf("endTime: %w", err))
	}
	if q.start >= q.end {
		return Query{}, invalid(ErrInvalidTimeRange)
	}
	q.startText = q.start.String()
	q.endText = q.end.String()

	return q, nil
}

func normalizeAreas(in []string) []string {
	out := make([]string, 0, len(in))
	for _, a := range in {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}

func (q Query) Date() string           { return q.date }
func (q Query) Day() rate.Weekday      { return q.day }
func (q Query) Start() rate.Minute     { return q.start }
func (q Query) End() rate.Minute       { return q.end }
func (q Query) StartText() string      { return q.startText }
func (q Query) EndText() string        { return q.endText }
func (q Query) Budget() Budget         { return q.budget }
func (q Query) People() int            { return q.people }
func (q Query) Areas() []string        { return q.areas }
func (q Query) AreaPerPerson() float64 { return q.areaPerPerson }
func (q Query) Mode() Mode             { return q.mode }

// RequiredArea is people × area-per-person in square meters.
func (q Query) RequiredArea() float64 {
	return float64(q.people) * q.areaPerPerson
}

// Hours is the number of billed hours in day mode.
func (q Query) Hours() int {
	if q.mode != ModeDay {
		return 0
	}
	return pricing.HourCount(q.start, q.end)
}

// WantsArea reports whether area passes the area tag filter; no selection means every area.
func (q Query) WantsArea(area string) bool {
	if len(q.areas) == 0 {
		return true
	}
	for _, a := range q.areas {
		if a == area {
			return true
		}
	}
	return false
}
