package members

import (
	"time"

	"github.com/oapi-codegen/nullable"
)

// CreateMemberInput captures an administrative member creation. Zero values
// fall back to the same defaults the signup flow uses.
type CreateMemberInput struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	JoinDate *time.Time
	Status   string
	Role     string
}

// UpdateMemberInput is a partial update. Unspecified fields keep their
// current value; explicit null clears the fields that may be cleared.
type UpdateMemberInput struct {
	Name     nullable.Nullable[string] // cannot be null
	Email    nullable.Nullable[string] // cannot be null
	Phone    nullable.Nullable[string] // may be null
	Address  nullable.Nullable[string] // may be null
	JoinDate nullable.Nullable[time.Time]
	Status   nullable.Nullable[string] // cannot be null
}
