package activitylog

import (
	"context"

	"github.com/ironhaven-fitness/gym-api/internal/domain"
)

// Log is the append-only audit trail. Entries are immutable once written;
// there is no update or delete.
type Log interface {
	Append(ctx context.Context, e domain.ActivityEntry) error

	// ListRecent returns up to limit entries, newest first.
	ListRecent(ctx context.Context, limit int) ([]domain.ActivityEntry, error)
}
