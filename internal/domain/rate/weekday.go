package rate

import "time"

// Weekday is the localized day label used by rate data.
type Weekday string

const (
	Sunday    Weekday = "日曜"
	Monday    Weekday = "月曜"
	Tuesday   Weekday = "火曜"
	Wednesday Weekday = "水曜"
	Thursday  Weekday = "木曜"
	Friday    Weekday = "金曜"
	Saturday  Weekday = "土曜"

	// NoWeekday is returned for an absent or unparsable date.
	NoWeekday Weekday = ""
)

const DateLayout = "2006-01-02"

var weekdays = [...]Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

func WeekdayOf(t time.Time) Weekday {
	return weekdays[t.Weekday()]
}

// DayOfWeek maps a YYYY-MM-DD date to its label in loc.
func DayOfWeek(dateText string, loc *time.Location) Weekday {
	if dateText == "" {
		return NoWeekday
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, dateText, loc)
	if err != nil {
		return NoWeekday
	}
	return WeekdayOf(t)
}

func (d Weekday) IsWeekend() bool {
	return d == Saturday || d == Sunday
}

func (d Weekday) String() string {
	return string(d)
}
