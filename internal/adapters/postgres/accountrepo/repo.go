package accountrepo

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
	"github.com/ironhaven-fitness/gym-api/internal/ports/out/accountrepo"
)

// Repo is a Postgres implementation of accountrepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Create(ctx context.Context, a accountrepo.Account) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	id, err := uuid.Parse(string(a.ID))
	if err != nil {
		return fmt.Errorf("invalid account id: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO accounts (id, email, name, role, status, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		id,
		a.Email,
		a.Name,
		string(a.Role),
		a.Status,
		a.PasswordHash,
		a.CreatedAt.UTC(),
		a.UpdatedAt.UTC(),
	)
	if err != nil {
		if postgres.IsUniqueViolation(err, "accounts_email_unique") {
			return accountrepo.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *Repo) Update(ctx context.Context, a accountrepo.Account) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	id, err := uuid.Parse(string(a.ID))
	if err != nil {
		return fmt.Errorf("invalid account id: %w", err)
	}

	ct, err := r.pool.Exec(ctx, `
		UPDATE accounts
		SET name = $2,
		    role = $3,
		    status = $4,
		    password_hash = $5,
		    updated_at = $6
		WHERE id = $1
	`,
		id,
		a.Name,
		string(a.Role),
		a.Status,
		a.PasswordHash,
		a.UpdatedAt.UTC(),
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return accountrepo.ErrNotFound
	}
	return nil
}

func (r *Repo) FindByEmail(ctx context.Context, email string) (accountrepo.Account, error) {
	if r.pool == nil {
		return accountrepo.Account{}, errors.New("nil postgres pool")
	}
	row := r.pool.QueryRow(ctx, `
		SELECT id, email, name, role, status, password_hash, created_at, updated_at
		FROM accounts
		WHERE email = $1
	`, email)
	return scanAccount(row)
}

func (r *Repo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if r.pool == nil {
		return false, errors.New("nil postgres pool")
	}
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM accounts WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}

func (r *Repo) Count(ctx context.Context) (int, error) {
	if r.pool == nil {
		return 0, errors.New("nil postgres pool")
	}
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM accounts`).Scan(&n)
	return n, err
}

func scanAccount(row pgx.Row) (accountrepo.Account, error) {
	var (
		id           uuid.UUID
		email        string
		name         string
		role         string
		status       string
		passwordHash string
		createdAt    time.Time
		updatedAt    time.Time
	)
	if err := row.Scan(&id, &email, &name, &role, &status, &passwordHash, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return accountrepo.Account{}, accountrepo.ErrNotFound
		}
		return accountrepo.Account{}, err
	}
	return accountrepo.Account{
		ID:           domain.AccountID(id.String()),
		Email:        email,
		Name:         name,
		Role:         domain.Role(role),
		Status:       status,
		PasswordHash: passwordHash,
		CreatedAt:    createdAt.UTC(),
		UpdatedAt:    updatedAt.UTC(),
	}, nil
}
