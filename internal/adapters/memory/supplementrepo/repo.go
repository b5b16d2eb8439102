package supplementrepo

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/ironhaven-fitness/gym-api/internal/domain"
	"github.com/ironhaven-fitness/gym-api/internal/ports/out/supplementrepo"
)

// Repo is an in-memory implementation of supplementrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu   sync.RWMutex
	byID map[domain.SupplementID]domain.Supplement
}

func NewRepo() *Repo {
	return &Repo{byID: make(map[domain.SupplementID]domain.Supplement)}
}

func (r *Repo) Create(ctx context.Context, s domain.Supplement) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[s.ID] = s
	return nil
}

func (r *Repo) Update(ctx context.Context, s domain.Supplement) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[s.ID]; !ok {
		return supplementrepo.ErrNotFound
	}
	r.byID[s.ID] = s
	return nil
}

func (r *Repo) Delete(ctx context.Context, id domain.SupplementID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return supplementrepo.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.SupplementID) (domain.Supplement, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return domain.Supplement{}, supplementrepo.ErrNotFound
	}
	return s, nil
}

func (r *Repo) List(ctx context.Context) ([]domain.Supplement, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Supplement, 0, len(r.byID))
	for _, s := range r.byID {
		out = append(out, s)
	}
	sortSupplementsByName(out)
	return out, nil
}

func (r *Repo) SearchByTerm(ctx context.Context, term string) ([]domain.Supplement, error) {
	_ = ctx
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return []domain.Supplement{}, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Supplement, 0)
	for _, s := range r.byID {
		if strings.Contains(strings.ToLower(s.Name), needle) || strings.Contains(strings.ToLower(s.Category), needle) {
			out = append(out, s)
		}
	}
	sortSupplementsByName(out)
	return out, nil
}

func (r *Repo) Count(ctx context.Context) (int, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID), nil
}

func sortSupplementsByName(ss []domain.Supplement) {
	sort.Slice(ss, func(i, j int) bool {
		ni := strings.ToLower(ss[i].Name)
		nj := strings.ToLower(ss[j].Name)
		if ni == nj {
			return string(ss[i].ID) < string(ss[j].ID)
		}
		return ni < nj
	})
}
