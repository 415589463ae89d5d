package rate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrEmptyClock     = errors.New("clock text is empty")
	ErrMalformedClock = errors.New("clock text is malformed")
)

// Minute is a minute-of-day offset. Values past 24:00 are allowed.
type Minute int

const MinutesPerHour = 60

// ParseClock converts "HH:MM" into minutes since midnight.
// Hour and minute are not range-checked, so "24:00" and "25:30" pass through arithmetically.
func ParseClock(text string) (Minute, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrEmptyClock
	}

	hh, mm, ok := strings.Cut(text, ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMalformedClock, text)
	}

	h, err := strconv.Atoi(strings.TrimSpace(hh))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedClock, text)
	}
	m, err := strconv.Atoi(strings.TrimSpace(mm))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedClock, text)
	}

	return Minute(h*MinutesPerHour + m), nil
}

func (m Minute) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/MinutesPerHour, int(m)%MinutesPerHour)
}
