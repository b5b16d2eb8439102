package accountrepo

import (
	"context"
	"sync"

	"github.com/ironhaven-fitness/gym-api/internal/ports/out/accountrepo"
)

// Repo is an in-memory implementation of accountrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu sync.RWMutex

	byEmail map[string]accountrepo.Account
}

func NewRepo() *Repo {
	return &Repo{byEmail: make(map[string]accountrepo.Account)}
}

func (r *Repo) Create(ctx context.Context, a accountrepo.Account) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[a.Email]; ok {
		return accountrepo.ErrEmailTaken
	}
	r.byEmail[a.Email] = a
	return nil
}

func (r *Repo) Update(ctx context.Context, a accountrepo.Account) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[a.Email]; !ok {
		return accountrepo.ErrNotFound
	}
	r.byEmail[a.Email] = a
	return nil
}

func (r *Repo) FindByEmail(ctx context.Context, email string) (accountrepo.Account, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byEmail[email]
	if !ok {
		return accountrepo.Account{}, accountrepo.ErrNotFound
	}
	return a, nil
}

func (r *Repo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *Repo) Count(ctx context.Context) (int, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byEmail), nil
}
