package domain

import "time"

// ActivityDetailsLimit bounds the free-text details column.
const ActivityDetailsLimit = 2000

// ActivityEntry is one append-only audit record. Entries are immutable once
// written.
type ActivityEntry struct {
	ID             string
	UserIdentifier string
	Action         string
	Details        string
	CreatedAt      time.Time
}

// TruncateDetails enforces ActivityDetailsLimit on free-text details.
func TruncateDetails(s string) string {
	r := []rune(s)
	if len(r) <= ActivityDetailsLimit {
		return s
	}
	return string(r[:ActivityDetailsLimit])
}
