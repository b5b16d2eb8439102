package accountrepo

import (
	"testing"

	"github.com/ironhaven-fitness/gym-api/internal/adapters/contracttest"
	"github.com/ironhaven-fitness/gym-api/internal/adapters/postgres/testutil"
	accountrepoport "github.com/ironhaven-fitness/gym-api/internal/ports/out/accountrepo"
)

func TestContract_PostgresAccountRepo(t *testing.T) {
	pool := testutil.OpenMigratedPool(t)

	contracttest.RunAccountRepo(t, func(t *testing.T) (accountrepoport.Repository, func()) {
		t.Helper()
		return NewRepo(pool), nil
	})
}
