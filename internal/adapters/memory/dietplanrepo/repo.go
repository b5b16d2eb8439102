package dietplanrepo

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/ironhaven-fitness/gym-api/internal/domain"
	"github.com/ironhaven-fitness/gym-api/internal/ports/out/dietplanrepo"
)

// Repo is an in-memory implementation of dietplanrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu   sync.RWMutex
	byID map[domain.DietPlanID]domain.DietPlan
}

func NewRepo() *Repo {
	return &Repo{byID: make(map[domain.DietPlanID]domain.DietPlan)}
}

func (r *Repo) Create(ctx context.Context, p domain.DietPlan) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[p.ID] = p
	return nil
}

func (r *Repo) Update(ctx context.Context, p domain.DietPlan) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[p.ID]; !ok {
		return dietplanrepo.ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *Repo) Delete(ctx context.Context, id domain.DietPlanID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return dietplanrepo.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.DietPlanID) (domain.DietPlan, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return domain.DietPlan{}, dietplanrepo.ErrNotFound
	}
	return p, nil
}

func (r *Repo) List(ctx context.Context) ([]domain.DietPlan, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.DietPlan, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		ti := strings.ToLower(out[i].Title)
		tj := strings.ToLower(out[j].Title)
		if ti == tj {
			return string(out[i].ID) < string(out[j].ID)
		}
		return ti < tj
	})
	return out, nil
}

func (r *Repo) Count(ctx context.Context) (int, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID), nil
}
