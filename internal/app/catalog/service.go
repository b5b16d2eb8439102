// Package catalog carries the fee-package, supplement and diet-plan use
// cases. All three are simple administrative CRUD over their stores.
package catalog

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ironhaven-fitness/gym-api/internal/app/apperr"
	"github.com/ironhaven-fitness/gym-api/internal/domain"
	clockport "github.com/ironhaven-fitness/gym-api/internal/ports/out/clock"
	"github.com/ironhaven-fitness/gym-api/internal/ports/out/dietplanrepo"
	"github.com/ironhaven-fitness/gym-api/internal/ports/out/packagerepo"
	"github.com/ironhaven-fitness/gym-api/internal/ports/out/supplementrepo"
)

type Service struct {
	packages    packagerepo.Repository
	supplements supplementrepo.Repository
	dietplans   dietplanrepo.Repository
	clk         clockport.Clock

	newPackageID    func() domain.PackageID
	newSupplementID func() domain.SupplementID
	newDietPlanID   func() domain.DietPlanID
}

func NewService(packages packagerepo.Repository, supplements supplementrepo.Repository, dietplans dietplanrepo.Repository, clk clockport.Clock) *Service {
	return &Service{
		packages:    packages,
		supplements: supplements,
		dietplans:   dietplans,
		clk:         clk,
		newPackageID: func() domain.PackageID {
			return domain.PackageID(uuid.NewString())
		},
		newSupplementID: func() domain.SupplementID {
			return domain.SupplementID(uuid.NewString())
		},
		newDietPlanID: func() domain.DietPlanID {
			return domain.DietPlanID(uuid.NewString())
		},
	}
}

// --- fee packages ---

type CreatePackageInput struct {
	Name           string
	Amount         float64
	DurationMonths int
	Description    string
}

func (s *Service) ListPackages(ctx context.Context) ([]domain.FeePackage, error) {
	return s.packages.List(ctx)
}

func (s *Service) CreatePackage(ctx context.Context, in CreatePackageInput) (domain.FeePackage, error) {
	name := domain.NormalizeHumanName(in.Name)
	if name == "" {
		return domain.FeePackage{}, validationError("name", "must be non-empty")
	}
	if in.Amount < 0 {
		return domain.FeePackage{}, validationError("amount", "must not be negative")
	}

	taken, err := s.packages.ExistsByName(ctx, name)
	if err != nil {
		return domain.FeePackage{}, err
	}
	if taken {
		return domain.FeePackage{}, errPackageNameTaken()
	}

	p := domain.FeePackage{
		ID:             s.newPackageID(),
		Name:           name,
		Amount:         in.Amount,
		DurationMonths: in.DurationMonths,
		Description:    strings.TrimSpace(in.Description),
		CreatedAt:      s.clk.Now(),
	}
	if err := s.packages.Create(ctx, p); err != nil {
		if errors.Is(err, packagerepo.ErrNameTaken) {
			return domain.FeePackage{}, errPackageNameTaken()
		}
		return domain.FeePackage{}, err
	}
	return p, nil
}

// --- supplements ---

type SupplementInput struct {
	Name        string
	Category    string
	Description string
	Price       float64
	Stock       int
}

func (s *Service) ListSupplements(ctx context.Context, term string) ([]domain.Supplement, error) {
	if strings.TrimSpace(term) == "" {
		return s.supplements.List(ctx)
	}
	return s.supplements.SearchByTerm(ctx, term)
}

func (s *Service) CreateSupplement(ctx context.Context, in SupplementInput) (domain.Supplement, error) {
	if err := validateSupplement(in); err != nil {
		return domain.Supplement{}, err
	}
	now := s.clk.Now()
	sup := domain.Supplement{
		ID:          s.newSupplementID(),
		Name:        domain.NormalizeHumanName(in.Name),
		Category:    strings.TrimSpace(in.Category),
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Stock:       in.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.supplements.Create(ctx, sup); err != nil {
		return domain.Supplement{}, err
	}
	return sup, nil
}

// UpdateSupplement is a full replacement of the editable fields, matching the
// admin console's edit form.
func (s *Service) UpdateSupplement(ctx context.Context, id domain.SupplementID, in SupplementInput) (domain.Supplement, error) {
	if err := validateSupplement(in); err != nil {
		return domain.Supplement{}, err
	}
	sup, err := s.supplements.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, supplementrepo.ErrNotFound) {
			return domain.Supplement{}, errSupplementNotFound()
		}
		return domain.Supplement{}, err
	}

	sup.Name = domain.NormalizeHumanName(in.Name)
	sup.Category = strings.TrimSpace(in.Category)
	sup.Description = strings.TrimSpace(in.Description)
	sup.Price = in.Price
	sup.Stock = in.Stock
	sup.UpdatedAt = s.clk.Now()

	if err := s.supplements.Update(ctx, sup); err != nil {
		return domain.Supplement{}, err
	}
	return sup, nil
}

func (s *Service) DeleteSupplement(ctx context.Context, id domain.SupplementID) error {
	if err := s.supplements.Delete(ctx, id); err != nil {
		if errors.Is(err, supplementrepo.ErrNotFound) {
			return errSupplementNotFound()
		}
		return err
	}
	return nil
}

// --- diet plans ---

type DietPlanInput struct {
	Title         string
	Category      string
	Description   string
	MealPlan      string
	Calories      int
	DurationWeeks int
}

func (s *Service) ListDietPlans(ctx context.Context) ([]domain.DietPlan, error) {
	return s.dietplans.List(ctx)
}

func (s *Service) CreateDietPlan(ctx context.Context, in DietPlanInput) (domain.DietPlan, error) {
	if err := validateDietPlan(in); err != nil {
		return domain.DietPlan{}, err
	}
	now := s.clk.Now()
	p := domain.DietPlan{
		ID:            s.newDietPlanID(),
		Title:         domain.NormalizeHumanName(in.Title),
		Category:      strings.TrimSpace(in.Category),
		Description:   strings.TrimSpace(in.Description),
		MealPlan:      in.MealPlan,
		Calories:      in.Calories,
		DurationWeeks: in.DurationWeeks,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.dietplans.Create(ctx, p); err != nil {
		return domain.DietPlan{}, err
	}
	return p, nil
}

func (s *Service) UpdateDietPlan(ctx context.Context, id domain.DietPlanID, in DietPlanInput) (domain.DietPlan, error) {
	if err := validateDietPlan(in); err != nil {
		return domain.DietPlan{}, err
	}
	p, err := s.dietplans.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, dietplanrepo.ErrNotFound) {
			return domain.DietPlan{}, errDietPlanNotFound()
		}
		return domain.DietPlan{}, err
	}

	p.Title = domain.NormalizeHumanName(in.Title)
	p.Category = strings.TrimSpace(in.Category)
	p.Description = strings.TrimSpace(in.Description)
	p.MealPlan = in.MealPlan
	p.Calories = in.Calories
	p.DurationWeeks = in.DurationWeeks
	p.UpdatedAt = s.clk.Now()

	if err := s.dietplans.Update(ctx, p); err != nil {
		return domain.DietPlan{}, err
	}
	return p, nil
}

func (s *Service) DeleteDietPlan(ctx context.Context, id domain.DietPlanID) error {
	if err := s.dietplans.Delete(ctx, id); err != nil {
		if errors.Is(err, dietplanrepo.ErrNotFound) {
			return errDietPlanNotFound()
		}
		return err
	}
	return nil
}

// --- helpers ---

func validateSupplement(in SupplementInput) error {
	if domain.NormalizeHumanName(in.Name) == "" {
		return validationError("name", "must be non-empty")
	}
	if in.Price < 0 {
		return validationError("price", "must not be negative")
	}
	if in.Stock < 0 {
		return validationError("stock", "must not be negative")
	}
	return nil
}

func validateDietPlan(in DietPlanInput) error {
	if domain.NormalizeHumanName(in.Title) == "" {
		return validationError("title", "must be non-empty")
	}
	if in.Calories <= 0 {
		return validationError("calories", "must be positive")
	}
	if in.DurationWeeks <= 0 {
		return validationError("durationWeeks", "must be positive")
	}
	return nil
}

func validationError(field, msg string) *apperr.Error {
	return &apperr.Error{
		Status:  http.StatusUnprocessableEntity,
		Code:    "VALIDATION_ERROR",
		Message: "invalid " + field,
		Details: map[string]any{field: msg},
	}
}

func errPackageNameTaken() *apperr.Error {
	return apperr.New(http.StatusBadRequest, "PACKAGE_NAME_TAKEN", "a fee package with this name already exists")
}

func errSupplementNotFound() *apperr.Error {
	return apperr.New(http.StatusNotFound, "SUPPLEMENT_NOT_FOUND", "No supplement exists with the given id.")
}

func errDietPlanNotFound() *apperr.Error {
	return apperr.New(http.StatusNotFound, "DIET_PLAN_NOT_FOUND", "No diet plan exists with the given id.")
}
