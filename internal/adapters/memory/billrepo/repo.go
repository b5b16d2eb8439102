package billrepo

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/ironhaven-fitness/gym-api/internal/domain"
	"github.com/ironhaven-fitness/gym-api/internal/ports/out/billrepo"
)

// Repo is an in-memory implementation of billrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu   sync.RWMutex
	byID map[domain.BillID]domain.Bill
}

func NewRepo() *Repo {
	return &Repo{byID: make(map[domain.BillID]domain.Bill)}
}

func (r *Repo) Create(ctx context.Context, b domain.Bill) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[b.ID] = b
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.BillID) (domain.Bill, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byID[id]
	if !ok {
		return domain.Bill{}, billrepo.ErrNotFound
	}
	return b, nil
}

func (r *Repo) List(ctx context.Context) ([]domain.Bill, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Bill, 0, len(r.byID))
	for _, b := range r.byID {
		out = append(out, b)
	}
	sortBillsNewestFirst(out)
	return out, nil
}

func (r *Repo) ListByMember(ctx context.Context, memberID domain.MemberID) ([]domain.Bill, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Bill, 0)
	for _, b := range r.byID {
		if b.MemberID == memberID {
			out = append(out, b)
		}
	}
	sortBillsNewestFirst(out)
	return out, nil
}

func (r *Repo) SearchByDescription(ctx context.Context, term string) ([]domain.Bill, error) {
	_ = ctx
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return []domain.Bill{}, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Bill, 0)
	for _, b := range r.byID {
		if strings.Contains(strings.ToLower(b.Description), needle) {
			out = append(out, b)
		}
	}
	sortBillsNewestFirst(out)
	return out, nil
}

func sortBillsNewestFirst(bs []domain.Bill) {
	sort.Slice(bs, func(i, j int) bool {
		if bs[i].CreatedAt.Equal(bs[j].CreatedAt) {
			return string(bs[i].ID) < string(bs[j].ID)
		}
		return bs[i].CreatedAt.After(bs[j].CreatedAt)
	})
}
