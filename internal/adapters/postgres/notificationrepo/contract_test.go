package notificationrepo

import (
	"testing"

	"github.com/ironhaven-fitness/gym-api/internal/adapters/contracttest"
	"github.com/ironhaven-fitness/gym-api/internal/adapters/postgres/testutil"
	notificationrepoport "github.com/ironhaven-fitness/gym-api/internal/ports/out/notificationrepo"
)

func TestContract_PostgresNotificationRepo(t *testing.T) {
	pool := testutil.OpenMigratedPool(t)

	contracttest.RunNotificationRepo(t, func(t *testing.T) (notificationrepoport.Repository, func()) {
		t.Helper()
		return NewRepo(pool), nil
	})
}
