package clock

import "time"

// Clock is the time source for the app services. Join dates, due dates and
// audit timestamps all flow through it so tests can pin the clock.
type Clock interface {
	Now() time.Time
}
