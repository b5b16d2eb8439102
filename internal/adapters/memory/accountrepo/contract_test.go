package accountrepo

import (
	"testing"

	"github.com/ironhaven-fitness/gym-api/internal/adapters/contracttest"
	accountrepoport "github.com/ironhaven-fitness/gym-api/internal/ports/out/accountrepo"
)

func TestContract_MemoryAccountRepo(t *testing.T) {
	contracttest.RunAccountRepo(t, func(t *testing.T) (accountrepoport.Repository, func()) {
		t.Helper()
		return NewRepo(), nil
	})
}
