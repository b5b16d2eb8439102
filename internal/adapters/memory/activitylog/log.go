package activitylog

import (
	"context"
	"sort"
	"sync"

	"github.com/ironhaven-fitness/gym-api/internal/domain"
)

// Log is an in-memory implementation of activitylog.Log.
// It is safe for concurrent use.
type Log struct {
	mu      sync.RWMutex
	entries []domain.ActivityEntry
}

func NewLog() *Log {
	return &Log{}
}

func (l *Log) Append(ctx context.Context, e domain.ActivityEntry) error {
	_ = ctx
	e.Details = domain.TruncateDetails(e.Details)
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, e)
	return nil
}

func (l *Log) ListRecent(ctx context.Context, limit int) ([]domain.ActivityEntry, error) {
	_ = ctx
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.ActivityEntry, len(l.entries))
	copy(out, l.entries)
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// All returns every entry in append order. Test helper.
func (l *Log) All() []domain.ActivityEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.ActivityEntry, len(l.entries))
	copy(out, l.entries)
	return out
}
