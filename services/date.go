package services

import "time"

// DateLayout is the calendar-date format used for action records and the
// last-visit marker. Day granularity, UTC, no time-of-day component.
const DateLayout = "2006-01-02"

// Today returns the current UTC calendar date.
func Today() string {
	return time.Now().UTC().Format(DateLayout)
}

// DiffDays returns the number of whole days from `to` until `from`
// (positive when `from` is later). Unparsable inputs count as zero days so
// a corrupted marker resets instead of producing a penalty.
func DiffDays(from, to string) int {
	t1, err := time.Parse(DateLayout, from)
	if err != nil {
		return 0
	}
	t2, err := time.Parse(DateLayout, to)
	if err != nil {
		return 0
	}
	return int(t1.Sub(t2) / (24 * time.Hour))
}
