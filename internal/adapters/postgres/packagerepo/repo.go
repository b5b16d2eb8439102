package packagerepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/ironhaven-fitness/gym-api/internal/adapters/postgres"
	"github.com/ironhaven-fitness/gym-api/internal/domain"
	"github.com/ironhaven-fitness/gym-api/internal/ports/out/packagerepo"
)

// Repo is a Postgres implementation of packagerepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Create(ctx context.Context, p domain.FeePackage) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	id, err := uuid.Parse(string(p.ID))
	if err != nil {
		return fmt.Errorf("invalid package id: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO fee_packages (id, name, amount, duration_months, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		id,
		p.Name,
		p.Amount,
		p.DurationMonths,
		p.Description,
		p.CreatedAt.UTC(),
	)
	if err != nil {
		if postgres.IsUniqueViolation(err, "fee_packages_name_unique") {
			return packagerepo.ErrNameTaken
		}
		return err
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.PackageID) (domain.FeePackage, error) {
	if r.pool == nil {
		return domain.FeePackage{}, errors.New("nil postgres pool")
	}
	uid, err := uuid.Parse(string(id))
	if err != nil {
		return domain.FeePackage{}, packagerepo.ErrNotFound
	}
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, amount, duration_months, description, created_at
		FROM fee_packages
		WHERE id = $1
	`, uid)
	return scanPackage(row)
}

func (r *Repo) ExistsByName(ctx context.Context, name string) (bool, error) {
	if r.pool == nil {
		return false, errors.New("nil postgres pool")
	}
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM fee_packages WHERE lower(name) = lower($1))`, name).Scan(&exists)
	return exists, err
}

func (r *Repo) List(ctx context.Context) ([]domain.FeePackage, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, amount, duration_months, description, created_at
		FROM fee_packages
		ORDER BY lower(name) ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.FeePackage, 0)
	for rows.Next() {
		p, err := scanPackage(rows)
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
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM fee_packages`).Scan(&n)
	return n, err
}

func scanPackage(row pgx.Row) (domain.FeePackage, error) {
	var (
		id             uuid.UUID
		name           string
		amount         float64
		durationMonths int
		description    string
		createdAt      time.Time
	)
	if err := row.Scan(&id, &name, &amount, &durationMonths, &description, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.FeePackage{}, packagerepo.ErrNotFound
		}
		return domain.FeePackage{}, err
	}
	return domain.FeePackage{
		ID:             domain.PackageID(id.String()),
		Name:           name,
		Amount:         amount,
		DurationMonths: durationMonths,
		Description:    description,
		CreatedAt:      createdAt.UTC(),
	}, nil
}
