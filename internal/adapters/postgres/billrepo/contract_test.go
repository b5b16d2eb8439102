package billrepo

import (
	"testing"

	"github.com/ironhaven-fitness/gym-api/internal/adapters/contracttest"
	"github.com/ironhaven-fitness/gym-api/internal/adapters/postgres/testutil"
	billrepoport "github.com/ironhaven-fitness/gym-api/internal/ports/out/billrepo"
)

func TestContract_PostgresBillRepo(t *testing.T) {
	pool := testutil.OpenMigratedPool(t)

	contracttest.RunBillRepo(t, func(t *testing.T) (billrepoport.Repository, func()) {
		t.Helper()
		return NewRepo(pool), nil
	})
}
