package memberrepo

import (
	"testing"

	"github.com/ironhaven-fitness/gym-api/internal/adapters/contracttest"
	memberrepoport "github.com/ironhaven-fitness/gym-api/internal/ports/out/memberrepo"
)

func TestContract_MemoryMemberRepo(t *testing.T) {
	contracttest.RunMemberRepo(t, func(t *testing.T) (memberrepoport.Repository, func()) {
		t.Helper()
		return NewRepo(), nil
	})
}
