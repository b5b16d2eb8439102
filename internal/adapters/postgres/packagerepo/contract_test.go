package packagerepo

import (
	"testing"

	"github.com/ironhaven-fitness/gym-api/internal/adapters/contracttest"
	"github.com/ironhaven-fitness/gym-api/internal/adapters/postgres/testutil"
	packagerepoport "github.com/ironhaven-fitness/gym-api/internal/ports/out/packagerepo"
)

func TestContract_PostgresPackageRepo(t *testing.T) {
	pool := testutil.OpenMigratedPool(t)

	contracttest.RunPackageRepo(t, func(t *testing.T) (packagerepoport.Repository, func()) {
		t.Helper()
		return NewRepo(pool), nil
	})
}
