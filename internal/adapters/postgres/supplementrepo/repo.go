package supplementrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ironhaven-fitness/gym-api/internal/domain"
	"github.com/ironhaven-fitness/gym-api/internal/ports/out/supplementrepo"
)

const supplementColumns = "id, name, category, description, price, stock, created_at, updated_at"

// Repo is a Postgres implementation of supplementrepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Create(ctx context.Context, s domain.Supplement) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	id, err := uuid.Parse(string(s.ID))
	if err != nil {
		return fmt.Errorf("invalid supplement id: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO supplements (id, name, category, description, price, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		id,
		s.Name,
		s.Category,
		s.Description,
		s.Price,
		s.Stock,
		s.CreatedAt.UTC(),
		s.UpdatedAt.UTC(),
	)
	return err
}

func (r *Repo) Update(ctx context.Context, s domain.Supplement) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	id, err := uuid.Parse(string(s.ID))
	if err != nil {
		return supplementrepo.ErrNotFound
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE supplements
		SET name = $2, category = $3, description = $4, price = $5, stock = $6, updated_at = $7
		WHERE id = $1
	`,
		id,
		s.Name,
		s.Category,
		s.Description,
		s.Price,
		s.Stock,
		s.UpdatedAt.UTC(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return supplementrepo.ErrNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id domain.SupplementID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	uid, err := uuid.Parse(string(id))
	if err != nil {
		return supplementrepo.ErrNotFound
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM supplements WHERE id = $1`, uid)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return supplementrepo.ErrNotFound
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.SupplementID) (domain.Supplement, error) {
	if r.pool == nil {
		return domain.Supplement{}, errors.New("nil postgres pool")
	}
	uid, err := uuid.Parse(string(id))
	if err != nil {
		return domain.Supplement{}, supplementrepo.ErrNotFound
	}
	row := r.pool.QueryRow(ctx, `SELECT `+supplementColumns+` FROM supplements WHERE id = $1`, uid)
	return scanSupplement(row)
}

func (r *Repo) List(ctx context.Context) ([]domain.Supplement, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `SELECT `+supplementColumns+` FROM supplements ORDER BY lower(name), id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSupplements(rows)
}

func (r *Repo) SearchByTerm(ctx context.Context, term string) ([]domain.Supplement, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return r.List(ctx)
	}
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(needle)
	rows, err := r.pool.Query(ctx, `
		SELECT `+supplementColumns+`
		FROM supplements
		WHERE lower(name) LIKE $1 OR lower(category) LIKE $1
		ORDER BY lower(name), id
	`, "%"+escaped+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSupplements(rows)
}

func (r *Repo) Count(ctx context.Context) (int, error) {
	if r.pool == nil {
		return 0, errors.New("nil postgres pool")
	}
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM supplements`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func collectSupplements(rows pgx.Rows) ([]domain.Supplement, error) {
	out := make([]domain.Supplement, 0)
	for rows.Next() {
		s, err := scanSupplement(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanSupplement(row pgx.Row) (domain.Supplement, error) {
	var (
		id          uuid.UUID
		name        string
		category    string
		description string
		price       float64
		stock       int
		createdAt   time.Time
		updatedAt   time.Time
	)
	if err := row.Scan(&id, &name, &category, &description, &price, &stock, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Supplement{}, supplementrepo.ErrNotFound
		}
		return domain.Supplement{}, err
	}
	return domain.Supplement{
		ID:          domain.SupplementID(id.String()),
		Name:        name,
		Category:    category,
		Description: description,
		Price:       price,
		Stock:       stock,
		CreatedAt:   createdAt.UTC(),
		UpdatedAt:   updatedAt.UTC(),
	}, nil
}
