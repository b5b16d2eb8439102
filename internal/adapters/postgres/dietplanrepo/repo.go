package dietplanrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ironhaven-fitness/gym-api/internal/domain"
	"github.com/ironhaven-fitness/gym-api/internal/ports/out/dietplanrepo"
)

const planColumns = "id, title, category, description, meal_plan, calories, duration_weeks, created_at, updated_at"

// Repo is a Postgres implementation of dietplanrepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Create(ctx context.Context, p domain.DietPlan) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	id, err := uuid.Parse(string(p.ID))
	if err != nil {
		return fmt.Errorf("invalid diet plan id: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO diet_plans (id, title, category, description, meal_plan, calories, duration_weeks, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		id,
		p.Title,
		p.Category,
		p.Description,
		p.MealPlan,
		p.Calories,
		p.DurationWeeks,
		p.CreatedAt.UTC(),
		p.UpdatedAt.UTC(),
	)
	return err
}

func (r *Repo) Update(ctx context.Context, p domain.DietPlan) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	id, err := uuid.Parse(string(p.ID))
	if err != nil {
		return dietplanrepo.ErrNotFound
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE diet_plans
		SET title = $2, category = $3, description = $4, meal_plan = $5, calories = $6, duration_weeks = $7, updated_at = $8
		WHERE id = $1
	`,
		id,
		p.Title,
		p.Category,
		p.Description,
		p.MealPlan,
		p.Calories,
		p.DurationWeeks,
		p.UpdatedAt.UTC(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return dietplanrepo.ErrNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id domain.DietPlanID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	uid, err := uuid.Parse(string(id))
	if err != nil {
		return dietplanrepo.ErrNotFound
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM diet_plans WHERE id = $1`, uid)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return dietplanrepo.ErrNotFound
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.DietPlanID) (domain.DietPlan, error) {
	if r.pool == nil {
		return domain.DietPlan{}, errors.New("nil postgres pool")
	}
	uid, err := uuid.Parse(string(id))
	if err != nil {
		return domain.DietPlan{}, dietplanrepo.ErrNotFound
	}
	row := r.pool.QueryRow(ctx, `SELECT `+planColumns+` FROM diet_plans WHERE id = $1`, uid)
	return scanPlan(row)
}

func (r *Repo) List(ctx context.Context) ([]domain.DietPlan, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `SELECT `+planColumns+` FROM diet_plans ORDER BY lower(title), id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]domain.DietPlan, 0)
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) Count(ctx context.Context) (int, error) {
	if r.pool == nil {
		return 0, errors.New("nil postgres pool")
	}
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM diet_plans`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanPlan(row pgx.Row) (domain.DietPlan, error) {
	var (
		id            uuid.UUID
		title         string
		category      string
		description   string
		mealPlan      string
		calories      int
		durationWeeks int
		createdAt     time.Time
		updatedAt     time.Time
	)
	if err := row.Scan(&id, &title, &category, &description, &mealPlan, &calories, &durationWeeks, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.DietPlan{}, dietplanrepo.ErrNotFound
		}
		return domain.DietPlan{}, err
	}
	return domain.DietPlan{
		ID:            domain.DietPlanID(id.String()),
		Title:         title,
		Category:      category,
		Description:   description,
		MealPlan:      mealPlan,
		Calories:      calories,
		DurationWeeks: durationWeeks,
		CreatedAt:     createdAt.UTC(),
		UpdatedAt:     updatedAt.UTC(),
	}, nil
}
