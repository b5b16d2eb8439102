package billrepo

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
	"github.com/ironhaven-fitness/gym-api/internal/ports/out/billrepo"
)

// Repo is a Postgres implementation of billrepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Create(ctx context.Context, b domain.Bill) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	id, err := uuid.Parse(string(b.ID))
	if err != nil {
		return fmt.Errorf("invalid bill id: %w", err)
	}
	memberID, err := uuid.Parse(string(b.MemberID))
	if err != nil {
		return fmt.Errorf("invalid member id: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO bills (id, member_id, amount, description, due_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		id,
		memberID,
		b.Amount,
		b.Description,
		b.DueDate,
		b.Status,
		b.CreatedAt.UTC(),
	)
	return err
}

func (r *Repo) GetByID(ctx context.Context, id domain.BillID) (domain.Bill, error) {
	if r.pool == nil {
		return domain.Bill{}, errors.New("nil postgres pool")
	}
	uid, err := uuid.Parse(string(id))
	if err != nil {
		return domain.Bill{}, billrepo.ErrNotFound
	}
	row := r.pool.QueryRow(ctx, `
		SELECT id, member_id, amount, description, due_date, status, created_at
		FROM bills
		WHERE id = $1
	`, uid)
	return scanBill(row)
}

func (r *Repo) List(ctx context.Context) ([]domain.Bill, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, member_id, amount, description, due_date, status, created_at
		FROM bills
		ORDER BY created_at DESC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBills(rows)
}

func (r *Repo) ListByMember(ctx context.Context, memberID domain.MemberID) ([]domain.Bill, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	uid, err := uuid.Parse(string(memberID))
	if err != nil {
		return []domain.Bill{}, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, member_id, amount, description, due_date, status, created_at
		FROM bills
		WHERE member_id = $1
		ORDER BY created_at DESC, id ASC
	`, uid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBills(rows)
}

func (r *Repo) SearchByDescription(ctx context.Context, term string) ([]domain.Bill, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return []domain.Bill{}, nil
	}
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(needle)
	rows, err := r.pool.Query(ctx, `
		SELECT id, member_id, amount, description, due_date, status, created_at
		FROM bills
		WHERE lower(description) LIKE $1
		ORDER BY created_at DESC, id ASC
	`, "%"+escaped+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBills(rows)
}

func collectBills(rows pgx.Rows) ([]domain.Bill, error) {
	out := make([]domain.Bill, 0)
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanBill(row pgx.Row) (domain.Bill, error) {
	var (
		id          uuid.UUID
		memberID    uuid.UUID
		amount      float64
		description string
		dueDate     time.Time
		status      string
		createdAt   time.Time
	)
	if err := row.Scan(&id, &memberID, &amount, &description, &dueDate, &status, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Bill{}, billrepo.ErrNotFound
		}
		return domain.Bill{}, err
	}
	return domain.Bill{
		ID:          domain.BillID(id.String()),
		MemberID:    domain.MemberID(memberID.String()),
		Amount:      amount,
		Description: description,
		DueDate:     domain.DateOnly(dueDate),
		Status:      status,
		CreatedAt:   createdAt.UTC(),
	}, nil
}
