// Package contracttest holds behavioral contracts shared by the memory and
// postgres adapters. Each adapter package runs these suites against its own
// implementation so both backends stay interchangeable.
package contracttest

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ironhaven-fitness/gym-api/internal/domain"
	accountrepoport "github.com/ironhaven-fitness/gym-api/internal/ports/out/accountrepo"
	activitylogport "github.com/ironhaven-fitness/gym-api/internal/ports/out/activitylog"
	billrepoport "github.com/ironhaven-fitness/gym-api/internal/ports/out/billrepo"
	dietplanrepoport "github.com/ironhaven-fitness/gym-api/internal/ports/out/dietplanrepo"
	memberrepoport "github.com/ironhaven-fitness/gym-api/internal/ports/out/memberrepo"
	notificationrepoport "github.com/ironhaven-fitness/gym-api/internal/ports/out/notificationrepo"
	packagerepoport "github.com/ironhaven-fitness/gym-api/internal/ports/out/packagerepo"
	supplementrepoport "github.com/ironhaven-fitness/gym-api/internal/ports/out/supplementrepo"
)

type CleanupFunc = func()

type AccountRepoFactory func(t *testing.T) (accountrepoport.Repository, CleanupFunc)
type MemberRepoFactory func(t *testing.T) (memberrepoport.Repository, CleanupFunc)
type ActivityLogFactory func(t *testing.T) (activitylogport.Log, CleanupFunc)
type PackageRepoFactory func(t *testing.T) (packagerepoport.Repository, CleanupFunc)
type BillRepoFactory func(t *testing.T) (billrepoport.Repository, CleanupFunc)
type SupplementRepoFactory func(t *testing.T) (supplementrepoport.Repository, CleanupFunc)
type DietPlanRepoFactory func(t *testing.T) (dietplanrepoport.Repository, CleanupFunc)
type NotificationRepoFactory func(t *testing.T) (notificationrepoport.Repository, CleanupFunc)

func RunAccountRepo(t *testing.T, newRepo AccountRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	now := time.Unix(1000, 0).UTC()
	a := accountrepoport.Account{
		ID:           domain.AccountID(uuid.NewString()),
		Email:        "alice@example.com",
		Name:         "Alice Johnson",
		Role:         domain.RoleAdmin,
		Status:       "active",
		PasswordHash: "$2a$04$fakehash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.FindByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if got.ID != a.ID || got.Role != domain.RoleAdmin || got.PasswordHash != a.PasswordHash {
		t.Fatalf("unexpected account: %+v", got)
	}

	// Email uniqueness.
	dup := a
	dup.ID = domain.AccountID(uuid.NewString())
	if err := repo.Create(ctx, dup); !errors.Is(err, accountrepoport.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	ok, err := repo.ExistsByEmail(ctx, "alice@example.com")
	if err != nil || !ok {
		t.Fatalf("ExistsByEmail: ok=%v err=%v", ok, err)
	}
	ok, err = repo.ExistsByEmail(ctx, "nobody@example.com")
	if err != nil || ok {
		t.Fatalf("ExistsByEmail miss: ok=%v err=%v", ok, err)
	}

	if _, err := repo.FindByEmail(ctx, "nobody@example.com"); !errors.Is(err, accountrepoport.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// Update round trip.
	got.Name = "Alice J."
	got.Status = "suspended"
	got.UpdatedAt = now.Add(time.Hour)
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got2, err := repo.FindByEmail(ctx, "alice@example.com")
	if err != nil || got2.Name != "Alice J." || got2.Status != "suspended" {
		t.Fatalf("update not visible: %+v err=%v", got2, err)
	}

	n, err := repo.Count(ctx)
	if err != nil || n != 1 {
		t.Fatalf("Count: n=%d err=%v", n, err)
	}
}

func RunMemberRepo(t *testing.T, newRepo MemberRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	now := time.Unix(2000, 0).UTC()
	join := domain.DateOnly(now)

	aID := domain.MemberID(uuid.NewString())
	if err := repo.Create(ctx, memberrepoport.Member{
		ID:        aID,
		Name:      "Alice Johnson",
		Email:     "alice@example.com",
		Phone:     "555-0100",
		JoinDate:  join,
		Status:    "active",
		Role:      "member",
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		t.Fatalf("Create a: %v", err)
	}
	bID := domain.MemberID(uuid.NewString())
	if err := repo.Create(ctx, memberrepoport.Member{
		ID:        bID,
		Name:      "bob stone",
		Email:     "bob@example.com",
		JoinDate:  join,
		Status:    "active",
		Role:      "member",
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		t.Fatalf("Create b: %v", err)
	}

	// Email uniqueness.
	if err := repo.Create(ctx, memberrepoport.Member{
		ID:        domain.MemberID(uuid.NewString()),
		Name:      "Alice Clone",
		Email:     "alice@example.com",
		JoinDate:  join,
		Status:    "active",
		Role:      "member",
		CreatedAt: now,
		UpdatedAt: now,
	}); !errors.Is(err, memberrepoport.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	got, err := repo.GetByID(ctx, aID)
	if err != nil || got.Email != "alice@example.com" {
		t.Fatalf("GetByID: %+v err=%v", got, err)
	}
	if !got.JoinDate.Equal(join) {
		t.Fatalf("join date not preserved: %v", got.JoinDate)
	}
	if got.Package != nil {
		t.Fatalf("expected no package snapshot, got %+v", got.Package)
	}

	if _, err := repo.FindByEmail(ctx, "bob@example.com"); err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if _, err := repo.FindByEmail(ctx, "nobody@example.com"); !errors.Is(err, memberrepoport.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// Case-insensitive name ordering.
	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 || all[0].Name != "Alice Johnson" || all[1].Name != "bob stone" {
		t.Fatalf("unexpected ordering: %#v", all)
	}

	// Search matches name and email, case-insensitively.
	res, err := repo.SearchByTerm(ctx, "ALICE")
	if err != nil || len(res) != 1 || res[0].ID != aID {
		t.Fatalf("SearchByTerm name: %#v err=%v", res, err)
	}
	res, err = repo.SearchByTerm(ctx, "bob@")
	if err != nil || len(res) != 1 || res[0].ID != bID {
		t.Fatalf("SearchByTerm email: %#v err=%v", res, err)
	}

	// Update with a package snapshot and an email change.
	got.Email = "alice.j@example.com"
	got.Package = &domain.PackageAssignment{
		PackageID:     domain.PackageID(uuid.NewString()),
		PackageName:   "Basic Plan",
		PackageAmount: 49.99,
		AssignedAt:    now,
	}
	got.UpdatedAt = now.Add(time.Hour)
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got2, err := repo.FindByEmail(ctx, "alice.j@example.com")
	if err != nil {
		t.Fatalf("FindByEmail after update: %v", err)
	}
	if got2.Package == nil || got2.Package.PackageName != "Basic Plan" || got2.Package.PackageAmount != 49.99 {
		t.Fatalf("package snapshot not persisted: %+v", got2.Package)
	}
	if _, err := repo.FindByEmail(ctx, "alice@example.com"); !errors.Is(err, memberrepoport.ErrNotFound) {
		t.Fatalf("old email still resolves: %v", err)
	}

	// Updating an email into one already in use fails.
	got2.Email = "bob@example.com"
	if err := repo.Update(ctx, got2); !errors.Is(err, memberrepoport.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken on update, got %v", err)
	}

	// Delete is terminal; second delete reports not found.
	if err := repo.Delete(ctx, bID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, bID); !errors.Is(err, memberrepoport.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}

	n, err := repo.Count(ctx)
	if err != nil || n != 1 {
		t.Fatalf("Count: n=%d err=%v", n, err)
	}
}

func RunActivityLog(t *testing.T, newLog ActivityLogFactory) {
	t.Helper()
	ctx := context.Background()

	log, cleanup := newLog(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	base := time.Unix(3000, 0).UTC()
	for i := 0; i < 3; i++ {
		err := log.Append(ctx, domain.ActivityEntry{
			ID:             uuid.NewString(),
			UserIdentifier: "alice@example.com",
			Action:         "LOGIN_ATTEMPT",
			Details:        "attempt",
			CreatedAt:      base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
	}

	// Newest first, limit respected.
	got, err := log.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if !got[0].CreatedAt.After(got[1].CreatedAt) {
		t.Fatalf("not newest first: %v then %v", got[0].CreatedAt, got[1].CreatedAt)
	}

	// Oversized details are truncated, not rejected.
	err = log.Append(ctx, domain.ActivityEntry{
		ID:             uuid.NewString(),
		UserIdentifier: "alice@example.com",
		Action:         "LOGIN_FAILED",
		Details:        strings.Repeat("x", domain.ActivityDetailsLimit+100),
		CreatedAt:      base.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Append oversized: %v", err)
	}
	got, err = log.ListRecent(ctx, 1)
	if err != nil || len(got) != 1 {
		t.Fatalf("ListRecent after oversized: %#v err=%v", got, err)
	}
	if len([]rune(got[0].Details)) != domain.ActivityDetailsLimit {
		t.Fatalf("details not truncated: %d runes", len([]rune(got[0].Details)))
	}
}

func RunPackageRepo(t *testing.T, newRepo PackageRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	now := time.Unix(4000, 0).UTC()
	basicID := domain.PackageID(uuid.NewString())
	if err := repo.Create(ctx, domain.FeePackage{
		ID:             basicID,
		Name:           "Basic Plan",
		Amount:         49.99,
		DurationMonths: 1,
		Description:    "Gym access",
		CreatedAt:      now,
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, domain.FeePackage{
		ID:             domain.PackageID(uuid.NewString()),
		Name:           "annual plan",
		Amount:         399,
		DurationMonths: 12,
		CreatedAt:      now,
	}); err != nil {
		t.Fatalf("Create second: %v", err)
	}

	// Name uniqueness is case-insensitive.
	if err := repo.Create(ctx, domain.FeePackage{
		ID:             domain.PackageID(uuid.NewString()),
		Name:           "BASIC PLAN",
		Amount:         1,
		DurationMonths: 1,
		CreatedAt:      now,
	}); !errors.Is(err, packagerepoport.ErrNameTaken) {
		t.Fatalf("expected ErrNameTaken, got %v", err)
	}

	ok, err := repo.ExistsByName(ctx, "basic plan")
	if err != nil || !ok {
		t.Fatalf("ExistsByName: ok=%v err=%v", ok, err)
	}

	got, err := repo.GetByID(ctx, basicID)
	if err != nil || got.Name != "Basic Plan" || got.Amount != 49.99 {
		t.Fatalf("GetByID: %+v err=%v", got, err)
	}
	if _, err := repo.GetByID(ctx, domain.PackageID(uuid.NewString())); !errors.Is(err, packagerepoport.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	all, err := repo.List(ctx)
	if err != nil || len(all) != 2 {
		t.Fatalf("List: %#v err=%v", all, err)
	}
	if all[0].Name != "annual plan" || all[1].Name != "Basic Plan" {
		t.Fatalf("unexpected ordering: %q then %q", all[0].Name, all[1].Name)
	}

	n, err := repo.Count(ctx)
	if err != nil || n != 2 {
		t.Fatalf("Count: n=%d err=%v", n, err)
	}
}

func RunBillRepo(t *testing.T, newRepo BillRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	now := time.Unix(5000, 0).UTC()
	memberA := domain.MemberID(uuid.NewString())
	memberB := domain.MemberID(uuid.NewString())

	oldID := domain.BillID(uuid.NewString())
	if err := repo.Create(ctx, domain.Bill{
		ID:          oldID,
		MemberID:    memberA,
		Amount:      49.99,
		Description: "Monthly membership",
		DueDate:     domain.DateOnly(now.AddDate(0, 1, 0)),
		Status:      "pending",
		CreatedAt:   now,
	}); err != nil {
		t.Fatalf("Create old: %v", err)
	}
	newID := domain.BillID(uuid.NewString())
	if err := repo.Create(ctx, domain.Bill{
		ID:          newID,
		MemberID:    memberB,
		Amount:      25,
		Description: "Personal training session",
		DueDate:     domain.DateOnly(now.AddDate(0, 1, 0)),
		Status:      "paid",
		CreatedAt:   now.Add(time.Hour),
	}); err != nil {
		t.Fatalf("Create new: %v", err)
	}

	got, err := repo.GetByID(ctx, oldID)
	if err != nil || got.Amount != 49.99 || got.Status != "pending" {
		t.Fatalf("GetByID: %+v err=%v", got, err)
	}
	if _, err := repo.GetByID(ctx, domain.BillID(uuid.NewString())); !errors.Is(err, billrepoport.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// Newest first.
	all, err := repo.List(ctx)
	if err != nil || len(all) != 2 {
		t.Fatalf("List: %#v err=%v", all, err)
	}
	if all[0].ID != newID || all[1].ID != oldID {
		t.Fatalf("unexpected ordering: %v then %v", all[0].ID, all[1].ID)
	}

	byMember, err := repo.ListByMember(ctx, memberA)
	if err != nil || len(byMember) != 1 || byMember[0].ID != oldID {
		t.Fatalf("ListByMember: %#v err=%v", byMember, err)
	}

	res, err := repo.SearchByDescription(ctx, "TRAINING")
	if err != nil || len(res) != 1 || res[0].ID != newID {
		t.Fatalf("SearchByDescription: %#v err=%v", res, err)
	}
	res, err = repo.SearchByDescription(ctx, "")
	if err != nil || len(res) != 0 {
		t.Fatalf("SearchByDescription empty term: %#v err=%v", res, err)
	}
}

func RunSupplementRepo(t *testing.T, newRepo SupplementRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	now := time.Unix(6000, 0).UTC()
	wheyID := domain.SupplementID(uuid.NewString())
	if err := repo.Create(ctx, domain.Supplement{
		ID:        wheyID,
		Name:      "Whey Protein",
		Category:  "Protein",
		Price:     29.99,
		Stock:     50,
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, domain.Supplement{
		ID:        domain.SupplementID(uuid.NewString()),
		Name:      "creatine",
		Category:  "Performance",
		Price:     19.99,
		Stock:     30,
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		t.Fatalf("Create second: %v", err)
	}

	// Name ordering, case-insensitive.
	all, err := repo.List(ctx)
	if err != nil || len(all) != 2 {
		t.Fatalf("List: %#v err=%v", all, err)
	}
	if all[0].Name != "creatine" || all[1].Name != "Whey Protein" {
		t.Fatalf("unexpected ordering: %q then %q", all[0].Name, all[1].Name)
	}

	// Search spans name and category.
	res, err := repo.SearchByTerm(ctx, "whey")
	if err != nil || len(res) != 1 || res[0].ID != wheyID {
		t.Fatalf("SearchByTerm name: %#v err=%v", res, err)
	}
	res, err = repo.SearchByTerm(ctx, "PERFORMANCE")
	if err != nil || len(res) != 1 || res[0].Name != "creatine" {
		t.Fatalf("SearchByTerm category: %#v err=%v", res, err)
	}

	got, err := repo.GetByID(ctx, wheyID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	got.Stock = 45
	got.Price = 27.5
	got.UpdatedAt = now.Add(time.Hour)
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got2, err := repo.GetByID(ctx, wheyID)
	if err != nil || got2.Stock != 45 || got2.Price != 27.5 {
		t.Fatalf("update not visible: %+v err=%v", got2, err)
	}

	if err := repo.Update(ctx, domain.Supplement{ID: domain.SupplementID(uuid.NewString()), Name: "ghost"}); !errors.Is(err, supplementrepoport.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on update, got %v", err)
	}

	if err := repo.Delete(ctx, wheyID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, wheyID); !errors.Is(err, supplementrepoport.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
	n, err := repo.Count(ctx)
	if err != nil || n != 1 {
		t.Fatalf("Count: n=%d err=%v", n, err)
	}
}

func RunDietPlanRepo(t *testing.T, newRepo DietPlanRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	now := time.Unix(7000, 0).UTC()
	starterID := domain.DietPlanID(uuid.NewString())
	if err := repo.Create(ctx, domain.DietPlan{
		ID:            starterID,
		Title:         "Weight Loss Starter",
		Category:      "weight-loss",
		MealPlan:      "Breakfast: oats",
		Calories:      1800,
		DurationWeeks: 8,
		CreatedAt:     now,
		UpdatedAt:     now,
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, domain.DietPlan{
		ID:            domain.DietPlanID(uuid.NewString()),
		Title:         "bulk basics",
		Category:      "muscle-gain",
		Calories:      3200,
		DurationWeeks: 12,
		CreatedAt:     now,
		UpdatedAt:     now,
	}); err != nil {
		t.Fatalf("Create second: %v", err)
	}

	all, err := repo.List(ctx)
	if err != nil || len(all) != 2 {
		t.Fatalf("List: %#v err=%v", all, err)
	}
	if all[0].Title != "bulk basics" || all[1].Title != "Weight Loss Starter" {
		t.Fatalf("unexpected ordering: %q then %q", all[0].Title, all[1].Title)
	}

	got, err := repo.GetByID(ctx, starterID)
	if err != nil || got.Calories != 1800 {
		t.Fatalf("GetByID: %+v err=%v", got, err)
	}
	got.Calories = 1700
	got.MealPlan = "Breakfast: eggs"
	got.UpdatedAt = now.Add(time.Hour)
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got2, err := repo.GetByID(ctx, starterID)
	if err != nil || got2.Calories != 1700 || got2.MealPlan != "Breakfast: eggs" {
		t.Fatalf("update not visible: %+v err=%v", got2, err)
	}

	if err := repo.Update(ctx, domain.DietPlan{ID: domain.DietPlanID(uuid.NewString()), Title: "ghost"}); !errors.Is(err, dietplanrepoport.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on update, got %v", err)
	}
	if err := repo.Delete(ctx, starterID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, starterID); !errors.Is(err, dietplanrepoport.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
	n, err := repo.Count(ctx)
	if err != nil || n != 1 {
		t.Fatalf("Count: n=%d err=%v", n, err)
	}
}

func RunNotificationRepo(t *testing.T, newRepo NotificationRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	now := time.Unix(8000, 0).UTC()
	allID := domain.NotificationID(uuid.NewString())
	if err := repo.Create(ctx, domain.Notification{
		ID:             allID,
		Title:          "Holiday hours",
		Message:        "Closed Sunday",
		Type:           "info",
		TargetAudience: "all",
		CreatedAt:      now,
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	memberID := domain.NotificationID(uuid.NewString())
	if err := repo.Create(ctx, domain.Notification{
		ID:             memberID,
		Title:          "Renewal reminder",
		Message:        "Your plan expires soon",
		Type:           "warning",
		TargetAudience: "members",
		CreatedAt:      now.Add(time.Hour),
	}); err != nil {
		t.Fatalf("Create second: %v", err)
	}
	adminID := domain.NotificationID(uuid.NewString())
	if err := repo.Create(ctx, domain.Notification{
		ID:             adminID,
		Title:          "Audit export ready",
		Message:        "Download from reports",
		Type:           "info",
		TargetAudience: "admins",
		CreatedAt:      now.Add(2 * time.Hour),
	}); err != nil {
		t.Fatalf("Create third: %v", err)
	}

	// Newest first.
	all, err := repo.List(ctx)
	if err != nil || len(all) != 3 {
		t.Fatalf("List: %#v err=%v", all, err)
	}
	if all[0].ID != adminID || all[2].ID != allID {
		t.Fatalf("unexpected ordering: %#v", all)
	}

	got, err := repo.ListByAudiences(ctx, []string{"members", "all"})
	if err != nil || len(got) != 2 {
		t.Fatalf("ListByAudiences: %#v err=%v", got, err)
	}
	if got[0].ID != memberID || got[1].ID != allID {
		t.Fatalf("unexpected audience ordering: %#v", got)
	}

	got, err = repo.ListByAudiences(ctx, nil)
	if err != nil || len(got) != 0 {
		t.Fatalf("ListByAudiences empty: %#v err=%v", got, err)
	}

	// Mark read round trip.
	n, err := repo.GetByID(ctx, allID)
	if err != nil || n.ReadFlag {
		t.Fatalf("GetByID: %+v err=%v", n, err)
	}
	n.ReadFlag = true
	if err := repo.Update(ctx, n); err != nil {
		t.Fatalf("Update: %v", err)
	}
	n2, err := repo.GetByID(ctx, allID)
	if err != nil || !n2.ReadFlag {
		t.Fatalf("read flag not persisted: %+v err=%v", n2, err)
	}
	if err := repo.Update(ctx, domain.Notification{ID: domain.NotificationID(uuid.NewString())}); !errors.Is(err, notificationrepoport.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on update, got %v", err)
	}
}
