package billrepo

import (
	"context"
	"errors"

	"github.com/ironhaven-fitness/gym-api/internal/domain"
)

// ErrNotFound indicates the requested bill does not exist.
var ErrNotFound = errors.New("bill not found")

// Repository provides access to persisted bills.
//
// Result ordering expectations: list/search results are ordered by CreatedAt
// descending, then ID, so the newest bill shows first.
type Repository interface {
	Create(ctx context.Context, b domain.Bill) error

	GetByID(ctx context.Context, id domain.BillID) (domain.Bill, error)
	List(ctx context.Context) ([]domain.Bill, error)
	ListByMember(ctx context.Context, memberID domain.MemberID) ([]domain.Bill, error)

	// SearchByDescription matches the term case-insensitively against the
	// bill description.
	SearchByDescription(ctx context.Context, term string) ([]domain.Bill, error)
}
