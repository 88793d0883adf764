package metrics

import (
	"math"
	"time"
)

type CountdownResult struct {
	// DaysLeft rounds partial days up; it is zero or negative once the
	// deadline has passed.
	DaysLeft int
	Expired  bool

	Remaining time.Duration
	Days      int
	Hours     int
	Minutes   int
	Seconds   int
}

// Countdown measures the time from now until deadline. The breakdown
// fields are zero once the deadline has passed.
func Countdown(deadline, now time.Time) CountdownResult {
	diff := deadline.Sub(now)
	res := CountdownResult{
		DaysLeft: int(math.Ceil(diff.Hours() / 24)),
		Expired:  diff < 0,
	}
	if res.Expired {
		return res
	}
	res.Remaining = diff
	total := int64(diff / time.Second)
	res.Days = int(total / 86400)
	res.Hours = int(total % 86400 / 3600)
	res.Minutes = int(total % 3600 / 60)
	res.Seconds = int(total % 60)
	return res
}
