package availability

import "time"

// IsReschedulable reports whether a booked start is still far enough away
// to move. The cutoff is exclusive: a booking exactly cutoff ahead is
// already too late, and starts in the past are never reschedulable.
func IsReschedulable(scheduledStart, now time.Time, cutoff time.Duration) bool {
	return scheduledStart.Sub(now) > cutoff
}
