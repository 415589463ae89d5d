package rate

import "strings"

const (
	EveryDayScope = "毎日"
	WeekdaysScope = "平日"
	WeekendScope  = "土日祝"
)

var scopeAliases = map[string]string{
	"every day":       EveryDayScope,
	"weekdays":        WeekdaysScope,
	"weekend/holiday": WeekendScope,
}

// DayScope is the parsed days_of_week column of a rate rule.
type DayScope struct {
	raw      string
	everyDay bool
	entries  []string
}

func ParseDayScope(text string) DayScope {
	raw := strings.TrimSpace(text)
	scope := DayScope{raw: raw}

	if canonicalScope(raw) == EveryDayScope {
		scope.everyDay = true
		return scope
	}

	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		scope.entries = append(scope.entries, canonicalScope(part))
	}
	return scope
}

func canonicalScope(s string) string {
	if alias, ok := scopeAliases[strings.ToLower(s)]; ok {
		return alias
	}
	return s
}

// Matches resolves, in order: every day, explicit day, weekdays, weekend/holiday.
// An unknown day is not a weekend day, so it falls under the weekdays scope.
func (s DayScope) Matches(day Weekday) bool {
	if s.everyDay {
		return true
	}
	if s.contains(string(day)) {
		return true
	}
	if s.contains(WeekdaysScope) && !day.IsWeekend() {
		return true
	}
	if s.contains(WeekendScope) && day.IsWeekend() {
		return true
	}
	return false
}

func (s DayScope) contains(entry string) bool {
	for _, e := range s.entries {
		if e == entry {
			return true
		}
	}
	return false
}

func (s DayScope) IsEmpty() bool {
	return !s.everyDay && len(s.entries) == 0
}

func (s DayScope) String() string {
	return s.raw
}
