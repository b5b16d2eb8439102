package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	memclock "github.com/ironhaven-fitness/gym-api/internal/adapters/memory/clock"
	memdietplanrepo "github.com/ironhaven-fitness/gym-api/internal/adapters/memory/dietplanrepo"
	mempackagerepo "github.com/ironhaven-fitness/gym-api/internal/adapters/memory/packagerepo"
	memsupplementrepo "github.com/ironhaven-fitness/gym-api/internal/adapters/memory/supplementrepo"
	"github.com/ironhaven-fitness/gym-api/internal/app/apperr"
)

func newService(t *testing.T) (*Service, *memclock.ManualClock) {
	t.Helper()
	clk := memclock.NewManualClock(time.Unix(1_700_000_000, 0).UTC())
	svc := NewService(mempackagerepo.NewRepo(), memsupplementrepo.NewRepo(), memdietplanrepo.NewRepo(), clk)
	return svc, clk
}

func TestCreatePackageDuplicateName(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.CreatePackage(ctx, CreatePackageInput{Name: "Basic Plan", Amount: 49.99, DurationMonths: 1})
	require.NoError(t, err)

	// Uniqueness is case-insensitive.
	_, err = svc.CreatePackage(ctx, CreatePackageInput{Name: "basic plan", Amount: 10, DurationMonths: 1})
	ae := (*apperr.Error)(nil)
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 400, ae.Status)
	require.Equal(t, "PACKAGE_NAME_TAKEN", ae.Code)
}

func TestCreatePackageValidation(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)
	ctx := context.Background()

	ae := (*apperr.Error)(nil)
	_, err := svc.CreatePackage(ctx, CreatePackageInput{Name: "  ", Amount: 10})
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 422, ae.Status)

	_, err = svc.CreatePackage(ctx, CreatePackageInput{Name: "X", Amount: -1})
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 422, ae.Status)
}

func TestSupplementLifecycle(t *testing.T) {
	t.Parallel()
	svc, clk := newService(t)
	ctx := context.Background()

	created, err := svc.CreateSupplement(ctx, SupplementInput{
		Name:     "  Whey   Protein ",
		Category: "Protein",
		Price:    29.99,
		Stock:    50,
	})
	require.NoError(t, err)
	require.Equal(t, "Whey Protein", created.Name)
	require.Equal(t, clk.Now(), created.CreatedAt)

	clk.Advance(time.Hour)
	updated, err := svc.UpdateSupplement(ctx, created.ID, SupplementInput{
		Name:     "Whey Protein",
		Category: "Protein",
		Price:    27.5,
		Stock:    45,
	})
	require.NoError(t, err)
	require.Equal(t, 27.5, updated.Price)
	require.Equal(t, 45, updated.Stock)
	require.Equal(t, clk.Now(), updated.UpdatedAt)
	require.Equal(t, created.CreatedAt, updated.CreatedAt)

	require.NoError(t, svc.DeleteSupplement(ctx, created.ID))

	err = svc.DeleteSupplement(ctx, created.ID)
	ae := (*apperr.Error)(nil)
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 404, ae.Status)
	require.Equal(t, "SUPPLEMENT_NOT_FOUND", ae.Code)
}

func TestListSupplementsFiltersByTerm(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.CreateSupplement(ctx, SupplementInput{Name: "Whey Protein", Category: "Protein", Price: 29.99, Stock: 50})
	require.NoError(t, err)
	_, err = svc.CreateSupplement(ctx, SupplementInput{Name: "Creatine", Category: "Performance", Price: 19.99, Stock: 30})
	require.NoError(t, err)

	all, err := svc.ListSupplements(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	got, err := svc.ListSupplements(ctx, "protein")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Whey Protein", got[0].Name)
}

func TestSupplementValidation(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)
	ctx := context.Background()

	ae := (*apperr.Error)(nil)
	_, err := svc.CreateSupplement(ctx, SupplementInput{Name: "", Price: 1})
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 422, ae.Status)

	_, err = svc.CreateSupplement(ctx, SupplementInput{Name: "X", Price: -1})
	require.ErrorAs(t, err, &ae)

	_, err = svc.CreateSupplement(ctx, SupplementInput{Name: "X", Price: 1, Stock: -1})
	require.ErrorAs(t, err, &ae)
}

func TestDietPlanLifecycle(t *testing.T) {
	t.Parallel()
	svc, clk := newService(t)
	ctx := context.Background()

	created, err := svc.CreateDietPlan(ctx, DietPlanInput{
		Title:         "Weight Loss Starter",
		Category:      "weight-loss",
		MealPlan:      "Breakfast: oats",
		Calories:      1800,
		DurationWeeks: 8,
	})
	require.NoError(t, err)

	clk.Advance(time.Hour)
	updated, err := svc.UpdateDietPlan(ctx, created.ID, DietPlanInput{
		Title:         "Weight Loss Starter",
		Category:      "weight-loss",
		MealPlan:      "Breakfast: eggs",
		Calories:      1700,
		DurationWeeks: 8,
	})
	require.NoError(t, err)
	require.Equal(t, 1700, updated.Calories)
	require.Equal(t, "Breakfast: eggs", updated.MealPlan)

	require.NoError(t, svc.DeleteDietPlan(ctx, created.ID))

	_, err = svc.UpdateDietPlan(ctx, created.ID, DietPlanInput{Title: "X", Calories: 1, DurationWeeks: 1})
	ae := (*apperr.Error)(nil)
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 404, ae.Status)
	require.Equal(t, "DIET_PLAN_NOT_FOUND", ae.Code)
}

func TestDietPlanValidation(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)
	ctx := context.Background()

	ae := (*apperr.Error)(nil)
	_, err := svc.CreateDietPlan(ctx, DietPlanInput{Title: "", Calories: 1800, DurationWeeks: 8})
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 422, ae.Status)

	_, err = svc.CreateDietPlan(ctx, DietPlanInput{Title: "X", Calories: 0, DurationWeeks: 8})
	require.ErrorAs(t, err, &ae)

	_, err = svc.CreateDietPlan(ctx, DietPlanInput{Title: "X", Calories: 1800, DurationWeeks: 0})
	require.ErrorAs(t, err, &ae)
}

func TestListPackagesOrdered(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.CreatePackage(ctx, CreatePackageInput{Name: "Premium Plan", Amount: 99, DurationMonths: 1})
	require.NoError(t, err)
	_, err = svc.CreatePackage(ctx, CreatePackageInput{Name: "basic plan", Amount: 49, DurationMonths: 1})
	require.NoError(t, err)

	ps, err := svc.ListPackages(ctx)
	require.NoError(t, err)
	require.Len(t, ps, 2)
	require.Equal(t, []string{"basic plan", "Premium Plan"}, []string{ps[0].Name, ps[1].Name})
}
