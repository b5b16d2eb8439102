package notificationrepo

import (
	"testing"

	"github.com/ironhaven-fitness/gym-api/internal/adapters/contracttest"
	notificationrepoport "github.com/ironhaven-fitness/gym-api/internal/ports/out/notificationrepo"
)

func TestContract_MemoryNotificationRepo(t *testing.T) {
	contracttest.RunNotificationRepo(t, func(t *testing.T) (notificationrepoport.Repository, func()) {
		t.Helper()
		return NewRepo(), nil
	})
}
