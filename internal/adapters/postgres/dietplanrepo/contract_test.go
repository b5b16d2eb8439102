package dietplanrepo

import (
	"testing"

	"github.com/ironhaven-fitness/gym-api/internal/adapters/contracttest"
	"github.com/ironhaven-fitness/gym-api/internal/adapters/postgres/testutil"
	dietplanrepoport "github.com/ironhaven-fitness/gym-api/internal/ports/out/dietplanrepo"
)

func TestContract_PostgresDietPlanRepo(t *testing.T) {
	pool := testutil.OpenMigratedPool(t)

	contracttest.RunDietPlanRepo(t, func(t *testing.T) (dietplanrepoport.Repository, func()) {
		t.Helper()
		return NewRepo(pool), nil
	})
}
