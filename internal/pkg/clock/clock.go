package clock

import "time"

// IST is the business timezone. Attendance dates default to "today" at
// a fixed UTC+5:30 offset regardless of the host timezone, so a fixed
// zone is used instead of the tz database.
var IST = time.FixedZone("IST", 5*60*60+30*60)

// Clock supplies the current time. Injected so tests can pin it.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// System returns a Clock backed by time.Now.
func System() Clock {
	return systemClock{}
}

// TodayIST formats the clock's current day in IST as an ISO date.
func TodayIST(c Clock) string {
	return c.Now().In(IST).Format("2006-01-02")
}

// NowIST returns the clock's current time in IST.
func NowIST(c Clock) time.Time {
	return c.Now().In(IST)
}

// Fixed returns a Clock pinned to t.
func Fixed(t time.Time) Clock {
	return fixedClock{t: t}
}

type fixedClock struct {
	t time.Time
}

func (f fixedClock) Now() time.Time {
	return f.t
}
