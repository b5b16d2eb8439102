package domain

import "time"

// Supplement is an item in the supplement store inventory.
type Supplement struct {
	ID          SupplementID
	Name        string
	Category    string
	Description string
	Price       float64
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DietPlan is a published nutrition plan members can follow.
type DietPlan struct {
	ID            DietPlanID
	Title         string
	Category      string
	Description   string
	MealPlan      string
	Calories      int
	DurationWeeks int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
