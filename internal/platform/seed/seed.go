// Package seed populates an empty store with the demo data set the admin
// console expects on first boot.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ironhaven-fitness/gym-api/internal/domain"
	"github.com/ironhaven-fitness/gym-api/internal/ports/out/accountrepo"
	clockport "github.com/ironhaven-fitness/gym-api/internal/ports/out/clock"
	"github.com/ironhaven-fitness/gym-api/internal/ports/out/dietplanrepo"
	"github.com/ironhaven-fitness/gym-api/internal/ports/out/memberrepo"
	"github.com/ironhaven-fitness/gym-api/internal/ports/out/packagerepo"
	"github.com/ironhaven-fitness/gym-api/internal/ports/out/supplementrepo"
)

// Seeder writes the initial data set. Each section is guarded by a Count
// check so rerunning against a populated store is a no-op.
type Seeder struct {
	Accounts    accountrepo.Repository
	Members     memberrepo.Repository
	Packages    packagerepo.Repository
	Supplements supplementrepo.Repository
	DietPlans   dietplanrepo.Repository
	Clock       clockport.Clock
	Logger      *slog.Logger

	// HashCost is the bcrypt cost for the seeded passwords. Tests lower it.
	HashCost int
}

func (s *Seeder) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

func (s *Seeder) hashCost() int {
	if s.HashCost > 0 {
		return s.HashCost
	}
	return bcrypt.DefaultCost
}

// Run seeds accounts, members, fee packages, supplements and diet plans.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedAccounts(ctx); err != nil {
		return fmt.Errorf("seed accounts: %w", err)
	}
	if err := s.seedMembers(ctx); err != nil {
		return fmt.Errorf("seed members: %w", err)
	}
	if err := s.seedPackages(ctx); err != nil {
		return fmt.Errorf("seed fee packages: %w", err)
	}
	if err := s.seedSupplements(ctx); err != nil {
		return fmt.Errorf("seed supplements: %w", err)
	}
	if err := s.seedDietPlans(ctx); err != nil {
		return fmt.Errorf("seed diet plans: %w", err)
	}
	return nil
}

func (s *Seeder) seedAccounts(ctx context.Context) error {
	n, err := s.Accounts.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	now := s.Clock.Now()
	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin123"), s.hashCost())
	if err != nil {
		return err
	}
	if err := s.Accounts.Create(ctx, accountrepo.Account{
		ID:           domain.AccountID(uuid.NewString()),
		Email:        "admin@gym.com",
		Name:         "Gym Admin",
		Role:         domain.RoleAdmin,
		Status:       "active",
		PasswordHash: string(adminHash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}); err != nil {
		return err
	}

	memberHash, err := bcrypt.GenerateFromPassword([]byte("member123"), s.hashCost())
	if err != nil {
		return err
	}
	if err := s.Accounts.Create(ctx, accountrepo.Account{
		ID:           domain.AccountID(uuid.NewString()),
		Email:        "member@gym.com",
		Name:         "John Doe",
		Role:         domain.RoleMember,
		Status:       "active",
		PasswordHash: string(memberHash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}); err != nil {
		return err
	}

	s.logger().Info("seeded accounts", slog.String("admin", "admin@gym.com"), slog.String("member", "member@gym.com"))
	return nil
}

func (s *Seeder) seedMembers(ctx context.Context) error {
	n, err := s.Members.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	now := s.Clock.Now()
	return s.Members.Create(ctx, memberrepo.Member{
		ID:        domain.MemberID(uuid.NewString()),
		Name:      "John Doe",
		Email:     "member@gym.com",
		Phone:     "555-0101",
		JoinDate:  domain.DateOnly(now),
		Status:    "active",
		Role:      "member",
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *Seeder) seedPackages(ctx context.Context) error {
	n, err := s.Packages.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	return s.Packages.Create(ctx, domain.FeePackage{
		ID:             domain.PackageID(uuid.NewString()),
		Name:           "Basic Plan",
		Amount:         49.99,
		DurationMonths: 1,
		Description:    "Access to gym floor and standard equipment",
		CreatedAt:      s.Clock.Now(),
	})
}

func (s *Seeder) seedSupplements(ctx context.Context) error {
	n, err := s.Supplements.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	now := s.Clock.Now()
	return s.Supplements.Create(ctx, domain.Supplement{
		ID:          domain.SupplementID(uuid.NewString()),
		Name:        "Whey Protein",
		Category:    "Protein",
		Description: "Whey protein concentrate, 1kg",
		Price:       29.99,
		Stock:       50,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *Seeder) seedDietPlans(ctx context.Context) error {
	n, err := s.DietPlans.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	now := s.Clock.Now()
	return s.DietPlans.Create(ctx, domain.DietPlan{
		ID:            domain.DietPlanID(uuid.NewString()),
		Title:         "Weight Loss Starter",
		Category:      "weight-loss",
		Description:   "A calorie-controlled plan for new members",
		MealPlan:      "Breakfast: oats with berries. Lunch: grilled chicken salad. Dinner: baked fish with vegetables.",
		Calories:      1800,
		DurationWeeks: 8,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
}
