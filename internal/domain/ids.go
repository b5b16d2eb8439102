package domain

// AccountID identifies a login credential record.
type AccountID string

// MemberID identifies a gym member record.
type MemberID string

// PackageID identifies a fee package.
type PackageID string

// BillID identifies a bill.
type BillID string

// SupplementID identifies a supplement inventory item.
type SupplementID string

// DietPlanID identifies a diet plan.
type DietPlanID string

// NotificationID identifies a notification.
type NotificationID string
