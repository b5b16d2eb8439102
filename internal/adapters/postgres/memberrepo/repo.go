package memberrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/ironhaven-fitness/gym-api/internal/adapters/postgres"
	"github.com/ironhaven-fitness/gym-api/internal/domain"
	"github.com/ironhaven-fitness/gym-api/internal/ports/out/memberrepo"
)

// Repo is a Postgres implementation of memberrepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const memberColumns = `
	m.id,
	m.name,
	m.email,
	m.phone,
	m.address,
	m.join_date,
	m.status,
	m.role,
	m.package_id,
	m.package_name,
	m.package_amount,
	m.assigned_at,
	m.created_at,
	m.updated_at
`

func (r *Repo) Create(ctx context.Context, m memberrepo.Member) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	id, err := uuid.Parse(string(m.ID))
	if err != nil {
		return fmt.Errorf("invalid member id: %w", err)
	}

	pkgID, pkgName, pkgAmount, assignedAt := packageColumns(m.Package)
	_, err = r.pool.Exec(ctx, `
		INSERT INTO members (
			id, name, email, phone, address, join_date, status, role,
			package_id, package_name, package_amount, assigned_at,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`,
		id,
		m.Name,
		m.Email,
		m.Phone,
		m.Address,
		m.JoinDate,
		m.Status,
		m.Role,
		pkgID,
		pkgName,
		pkgAmount,
		assignedAt,
		m.CreatedAt.UTC(),
		m.UpdatedAt.UTC(),
	)
	if err != nil {
		if postgres.IsUniqueViolation(err, "members_email_unique") {
			return memberrepo.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *Repo) Update(ctx context.Context, m memberrepo.Member) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	id, err := uuid.Parse(string(m.ID))
	if err != nil {
		return fmt.Errorf("invalid member id: %w", err)
	}

	pkgID, pkgName, pkgAmount, assignedAt := packageColumns(m.Package)
	ct, err := r.pool.Exec(ctx, `
		UPDATE members
		SET name = $2,
		    email = $3,
		    phone = $4,
		    address = $5,
		    join_date = $6,
		    status = $7,
		    role = $8,
		    package_id = $9,
		    package_name = $10,
		    package_amount = $11,
		    assigned_at = $12,
		    updated_at = $13
		WHERE id = $1
	`,
		id,
		m.Name,
		m.Email,
		m.Phone,
		m.Address,
		m.JoinDate,
		m.Status,
		m.Role,
		pkgID,
		pkgName,
		pkgAmount,
		assignedAt,
		m.UpdatedAt.UTC(),
	)
	if err != nil {
		if postgres.IsUniqueViolation(err, "members_email_unique") {
			return memberrepo.ErrEmailTaken
		}
		return err
	}
	if ct.RowsAffected() == 0 {
		return memberrepo.ErrNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id domain.MemberID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	uid, err := uuid.Parse(string(id))
	if err != nil {
		return memberrepo.ErrNotFound
	}
	ct, err := r.pool.Exec(ctx, `DELETE FROM members WHERE id = $1`, uid)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return memberrepo.ErrNotFound
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.MemberID) (memberrepo.Member, error) {
	if r.pool == nil {
		return memberrepo.Member{}, errors.New("nil postgres pool")
	}
	uid, err := uuid.Parse(string(id))
	if err != nil {
		return memberrepo.Member{}, memberrepo.ErrNotFound
	}
	row := r.pool.QueryRow(ctx, `SELECT `+memberColumns+` FROM members m WHERE m.id = $1`, uid)
	return scanMember(row)
}

func (r *Repo) FindByEmail(ctx context.Context, email string) (memberrepo.Member, error) {
	if r.pool == nil {
		return memberrepo.Member{}, errors.New("nil postgres pool")
	}
	row := r.pool.QueryRow(ctx, `SELECT `+memberColumns+` FROM members m WHERE m.email = $1`, email)
	return scanMember(row)
}

func (r *Repo) List(ctx context.Context) ([]memberrepo.Member, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+memberColumns+`
		FROM members m
		ORDER BY lower(m.name) ASC, m.id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMembers(rows)
}

func (r *Repo) SearchByTerm(ctx context.Context, term string) ([]memberrepo.Member, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+memberColumns+`
		FROM members m
		WHERE lower(m.name) LIKE $1 OR lower(m.email) LIKE $1
		ORDER BY lower(m.name) ASC, m.id ASC
	`, "%"+likeEscapeLower(term)+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMembers(rows)
}

func (r *Repo) Count(ctx context.Context) (int, error) {
	if r.pool == nil {
		return 0, errors.New("nil postgres pool")
	}
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM members`).Scan(&n)
	return n, err
}

// --- helpers ---

func packageColumns(p *domain.PackageAssignment) (pkgID *uuid.UUID, pkgName *string, pkgAmount *float64, assignedAt *time.Time) {
	if p == nil {
		return nil, nil, nil, nil
	}
	if parsed, err := uuid.Parse(string(p.PackageID)); err == nil {
		pkgID = &parsed
	}
	name := p.PackageName
	amount := p.PackageAmount
	at := p.AssignedAt.UTC()
	return pkgID, &name, &amount, &at
}

// likeEscapeLower lowercases the term and escapes LIKE metacharacters so user
// input cannot act as a wildcard.
func likeEscapeLower(term string) string {
	out := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
	return strings.ToLower(strings.TrimSpace(out))
}

func collectMembers(rows pgx.Rows) ([]memberrepo.Member, error) {
	out := make([]memberrepo.Member, 0)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanMember(row pgx.Row) (memberrepo.Member, error) {
	var (
		id        uuid.UUID
		name      string
		email     string
		phone     string
		address   string
		joinDate  time.Time
		status    string
		role      string
		createdAt time.Time
		updatedAt time.Time

		pkgID      *uuid.UUID
		pkgName    *string
		pkgAmount  *float64
		assignedAt *time.Time
	)
	if err := row.Scan(
		&id,
		&name,
		&email,
		&phone,
		&address,
		&joinDate,
		&status,
		&role,
		&pkgID,
		&pkgName,
		&pkgAmount,
		&assignedAt,
		&createdAt,
		&updatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return memberrepo.Member{}, memberrepo.ErrNotFound
		}
		return memberrepo.Member{}, err
	}

	var pkg *domain.PackageAssignment
	if pkgID != nil && pkgName != nil && pkgAmount != nil && assignedAt != nil {
		pkg = &domain.PackageAssignment{
			PackageID:     domain.PackageID(pkgID.String()),
			PackageName:   *pkgName,
			PackageAmount: *pkgAmount,
			AssignedAt:    assignedAt.UTC(),
		}
	}
	return memberrepo.Member{
		ID:        domain.MemberID(id.String()),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Address:   address,
		JoinDate:  domain.DateOnly(joinDate),
		Status:    status,
		Role:      role,
		Package:   pkg,
		CreatedAt: createdAt.UTC(),
		UpdatedAt: updatedAt.UTC(),
	}, nil
}
