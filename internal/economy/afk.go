package economy

import "time"

// AFKEarnings computes passive income for the elapsed idle time. There is no
// upper bound on elapsed: a user idle for days accrues proportionally.
func AFKEarnings(elapsed time.Duration, multiplier float64) float64 {
	hours := elapsed.Seconds() / 3600
	return hours * AFKHourlyRate * multiplier
}
