package httpapi

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/ironhaven-fitness/gym-api/internal/app/billing"
	"github.com/ironhaven-fitness/gym-api/internal/domain"
)

// View shapes rendered to the admin console. Date-only fields marshal as
// "2006-01-02"; timestamps as RFC 3339.

type memberView struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Email     string              `json:"email"`
	Phone     string              `json:"phone"`
	Address   string              `json:"address"`
	JoinDate  openapi_types.Date  `json:"joinDate"`
	Status    string              `json:"status"`
	Role      string              `json:"role"`
	Package   *packageAssignments `json:"package"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

type packageAssignments struct {
	PackageID     string    `json:"packageId"`
	PackageName   string    `json:"packageName"`
	PackageAmount float64   `json:"packageAmount"`
	AssignedAt    time.Time `json:"assignedAt"`
}

func toMemberView(m domain.Member) memberView {
	v := memberView{
		ID:        string(m.ID),
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Address:   m.Address,
		JoinDate:  openapi_types.Date{Time: m.JoinDate},
		Status:    m.Status,
		Role:      m.Role,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Package != nil {
		v.Package = &packageAssignments{
			PackageID:     string(m.Package.PackageID),
			PackageName:   m.Package.PackageName,
			PackageAmount: m.Package.PackageAmount,
			AssignedAt:    m.Package.AssignedAt,
		}
	}
	return v
}

func toMemberViews(ms []domain.Member) []memberView {
	out := make([]memberView, 0, len(ms))
	for _, m := range ms {
		out = append(out, toMemberView(m))
	}
	return out
}

type billView struct {
	ID          string             `json:"id"`
	MemberID    string             `json:"memberId"`
	MemberName  string             `json:"memberName"`
	Amount      float64            `json:"amount"`
	Description string             `json:"description"`
	DueDate     openapi_types.Date `json:"dueDate"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
}

func toBillView(b billing.Bill) billView {
	return billView{
		ID:          string(b.ID),
		MemberID:    string(b.MemberID),
		MemberName:  b.MemberName,
		Amount:      b.Amount,
		Description: b.Description,
		DueDate:     openapi_types.Date{Time: b.DueDate},
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
	}
}

func toBillViews(bs []billing.Bill) []billView {
	out := make([]billView, 0, len(bs))
	for _, b := range bs {
		out = append(out, toBillView(b))
	}
	return out
}

type feePackageView struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Amount         float64   `json:"amount"`
	DurationMonths int       `json:"durationMonths"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"createdAt"`
}

func toFeePackageView(p domain.FeePackage) feePackageView {
	return feePackageView{
		ID:             string(p.ID),
		Name:           p.Name,
		Amount:         p.Amount,
		DurationMonths: p.DurationMonths,
		Description:    p.Description,
		CreatedAt:      p.CreatedAt,
	}
}

type supplementView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toSupplementView(s domain.Supplement) supplementView {
	return supplementView{
		ID:          string(s.ID),
		Name:        s.Name,
		Category:    s.Category,
		Description: s.Description,
		Price:       s.Price,
		Stock:       s.Stock,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

type dietPlanView struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	MealPlan      string    `json:"mealPlan"`
	Calories      int       `json:"calories"`
	DurationWeeks int       `json:"durationWeeks"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func toDietPlanView(p domain.DietPlan) dietPlanView {
	return dietPlanView{
		ID:            string(p.ID),
		Title:         p.Title,
		Category:      p.Category,
		Description:   p.Description,
		MealPlan:      p.MealPlan,
		Calories:      p.Calories,
		DurationWeeks: p.DurationWeeks,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

type notificationView struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Type           string    `json:"type"`
	TargetAudience string    `json:"targetAudience"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"createdAt"`
}

func toNotificationView(n domain.Notification) notificationView {
	return notificationView{
		ID:             string(n.ID),
		Title:          n.Title,
		Message:        n.Message,
		Type:           n.Type,
		TargetAudience: n.TargetAudience,
		Read:           n.ReadFlag,
		CreatedAt:      n.CreatedAt,
	}
}

type activityEntryView struct {
	ID             string    `json:"id"`
	UserIdentifier string    `json:"userIdentifier"`
	Action         string    `json:"action"`
	Details        string    `json:"details"`
	CreatedAt      time.Time `json:"createdAt"`
}

func toActivityEntryView(e domain.ActivityEntry) activityEntryView {
	return activityEntryView{
		ID:             e.ID,
		UserIdentifier: e.UserIdentifier,
		Action:         e.Action,
		Details:        e.Details,
		CreatedAt:      e.CreatedAt,
	}
}
