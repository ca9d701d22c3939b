package writer

import "time"

const msPerDay = 24 * 60 * 60 * 1000

// oaEpoch is day zero of the OLE Automation date system.
var oaEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// OADate converts the wall clock of t into an OLE Automation date: whole
// days since 1899-12-30 plus the time of day as a fraction. Values outside
// years 100 through 9999 cannot be represented and report false.
func OADate(t time.Time) (float64, bool) {
	year := t.Year()
	if year < 100 || year > 9999 {
		return 0, false
	}

	wall := time.Date(year, t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
	ms := (wall.Unix()-oaEpoch.Unix())*1000 + int64(wall.Nanosecond()/int(time.Millisecond))

	// Before the epoch the integer part counts days backwards while the
	// fraction still runs forward through the day.
	if ms < 0 {
		if frac := ms % msPerDay; frac != 0 {
			ms -= (msPerDay + frac) * 2
		}
	}
	return float64(ms) / msPerDay, true
}
