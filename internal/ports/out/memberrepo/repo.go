package memberrepo

import (
	"context"
	"time"

	"github.com/ironhaven-fitness/gym-api/internal/domain"
)

// Member is the persistence shape used by the member repository.
type Member struct {
	ID      domain.MemberID
	Name    string
	Email   string
	Phone   string
	Address string
	// JoinDate is stored date-only (midnight UTC).
	JoinDate time.Time
	Status   string
	Role     string

	// Package is the denormalized fee-package snapshot; nil means unassigned.
	Package *domain.PackageAssignment

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Repository provides access to persisted member records.
//
// Result ordering expectations:
// - List/Search return results ordered by Name ascending (case-insensitive)
//   to keep behavior deterministic.
type Repository interface {
	Create(ctx context.Context, m Member) error
	Update(ctx context.Context, m Member) error
	Delete(ctx context.Context, id domain.MemberID) error

	GetByID(ctx context.Context, id domain.MemberID) (Member, error)
	FindByEmail(ctx context.Context, email string) (Member, error)

	List(ctx context.Context) ([]Member, error)

	// SearchByTerm matches the term case-insensitively against name and
	// email, the way the admin console's search box expects.
	SearchByTerm(ctx context.Context, term string) ([]Member, error)

	Count(ctx context.Context) (int, error)
}
