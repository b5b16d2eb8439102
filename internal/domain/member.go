package domain

import "time"

// PackageAssignment is a denormalized snapshot of the fee package assigned to
// a member. Name and amount are copied at assignment time; later edits to the
// package do not flow back.
type PackageAssignment struct {
	PackageID     PackageID
	PackageName   string
	PackageAmount float64
	AssignedAt    time.Time
}

// Member is a gym member's business-domain record, distinct from but loosely
// linked to an Account via email.
type Member struct {
	ID      MemberID
	Name    string
	Email   string
	Phone   string
	Address string
	// JoinDate is date-only; the time portion is always midnight UTC.
	JoinDate time.Time
	Status   string
	// Role mirrors the account role as a lowercase string; it is kept in
	// sync manually by the signup flow, not by a constraint.
	Role string

	Package *PackageAssignment

	CreatedAt time.Time
	UpdatedAt time.Time
}
