package packagerepo

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/ironhaven-fitness/gym-api/internal/domain"
	"github.com/ironhaven-fitness/gym-api/internal/ports/out/packagerepo"
)

// Repo is an in-memory implementation of packagerepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu   sync.RWMutex
	byID map[domain.PackageID]domain.FeePackage
}

func NewRepo() *Repo {
	return &Repo{byID: make(map[domain.PackageID]domain.FeePackage)}
}

func (r *Repo) Create(ctx context.Context, p domain.FeePackage) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.byID {
		if strings.EqualFold(existing.Name, p.Name) {
			return packagerepo.ErrNameTaken
		}
	}
	r.byID[p.ID] = p
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.PackageID) (domain.FeePackage, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return domain.FeePackage{}, packagerepo.ErrNotFound
	}
	return p, nil
}

func (r *Repo) ExistsByName(ctx context.Context, name string) (bool, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.byID {
		if strings.EqualFold(p.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *Repo) List(ctx context.Context) ([]domain.FeePackage, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.FeePackage, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		ni := strings.ToLower(out[i].Name)
		nj := strings.ToLower(out[j].Name)
		if ni == nj {
			return string(out[i].ID) < string(out[j].ID)
		}
		return ni < nj
	})
	return out, nil
}

func (r *Repo) Count(ctx context.Context) (int, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID), nil
}
