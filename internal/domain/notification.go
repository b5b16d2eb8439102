package domain

import "time"

// Notification is an announcement posted to an audience of users.
type Notification struct {
	ID      NotificationID
	Title   string
	Message string
	// Type is a presentation hint ("info", "warning", ...).
	Type string
	// TargetAudience scopes visibility: "all", "members" or "admins".
	TargetAudience string
	ReadFlag       bool
	CreatedAt      time.Time
}
