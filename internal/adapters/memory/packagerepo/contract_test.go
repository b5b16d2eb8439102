package packagerepo

import (
	"testing"

	"github.com/ironhaven-fitness/gym-api/internal/adapters/contracttest"
	packagerepoport "github.com/ironhaven-fitness/gym-api/internal/ports/out/packagerepo"
)

func TestContract_MemoryPackageRepo(t *testing.T) {
	contracttest.RunPackageRepo(t, func(t *testing.T) (packagerepoport.Repository, func()) {
		t.Helper()
		return NewRepo(), nil
	})
}
