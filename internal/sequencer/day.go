package sequencer

import "time"

const DateLayout = "2006-01-02"

// DayWindow returns the [start, end) bounds of the local calendar day containing t.
func DayWindow(t time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.Local
	}
	lt := t.In(loc)
	start := time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// WorkDate returns the local calendar date of t as a midnight value in loc.
func WorkDate(t time.Time, loc *time.Location) time.Time {
	start, _ := DayWindow(t, loc)
	return start
}
