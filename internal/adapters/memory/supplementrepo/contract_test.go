package supplementrepo

import (
	"testing"

	"github.com/ironhaven-fitness/gym-api/internal/adapters/contracttest"
	supplementrepoport "github.com/ironhaven-fitness/gym-api/internal/ports/out/supplementrepo"
)

func TestContract_MemorySupplementRepo(t *testing.T) {
	contracttest.RunSupplementRepo(t, func(t *testing.T) (supplementrepoport.Repository, func()) {
		t.Helper()
		return NewRepo(), nil
	})
}
