package domain

import "time"

// FeePackage is a membership pricing tier.
type FeePackage struct {
	ID             PackageID
	Name           string
	Amount         float64
	DurationMonths int
	Description    string
	CreatedAt      time.Time
}

// Bill is a charge raised against a member.
type Bill struct {
	ID          BillID
	MemberID    MemberID
	Amount      float64
	Description string
	// DueDate is date-only; the time portion is always midnight UTC.
	DueDate time.Time
	// Status is "pending" until marked otherwise ("paid", "overdue", ...).
	Status    string
	CreatedAt time.Time
}
