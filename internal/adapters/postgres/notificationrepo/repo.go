package notificationrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ironhaven-fitness/gym-api/internal/domain"
	"github.com/ironhaven-fitness/gym-api/internal/ports/out/notificationrepo"
)

const notificationColumns = "id, title, message, type, target_audience, read_flag, created_at"

// Repo is a Postgres implementation of notificationrepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Create(ctx context.Context, n domain.Notification) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	id, err := uuid.Parse(string(n.ID))
	if err != nil {
		return fmt.Errorf("invalid notification id: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO notifications (id, title, message, type, target_audience, read_flag, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		id,
		n.Title,
		n.Message,
		n.Type,
		n.TargetAudience,
		n.ReadFlag,
		n.CreatedAt.UTC(),
	)
	return err
}

func (r *Repo) Update(ctx context.Context, n domain.Notification) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	id, err := uuid.Parse(string(n.ID))
	if err != nil {
		return notificationrepo.ErrNotFound
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE notifications
		SET title = $2, message = $3, type = $4, target_audience = $5, read_flag = $6
		WHERE id = $1
	`,
		id,
		n.Title,
		n.Message,
		n.Type,
		n.TargetAudience,
		n.ReadFlag,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return notificationrepo.ErrNotFound
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.NotificationID) (domain.Notification, error) {
	if r.pool == nil {
		return domain.Notification{}, errors.New("nil postgres pool")
	}
	uid, err := uuid.Parse(string(id))
	if err != nil {
		return domain.Notification{}, notificationrepo.ErrNotFound
	}
	row := r.pool.QueryRow(ctx, `SELECT `+notificationColumns+` FROM notifications WHERE id = $1`, uid)
	return scanNotification(row)
}

func (r *Repo) List(ctx context.Context) ([]domain.Notification, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+notificationColumns+`
		FROM notifications
		ORDER BY created_at DESC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectNotifications(rows)
}

func (r *Repo) ListByAudiences(ctx context.Context, audiences []string) ([]domain.Notification, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	if len(audiences) == 0 {
		return []domain.Notification{}, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+notificationColumns+`
		FROM notifications
		WHERE target_audience = ANY($1)
		ORDER BY created_at DESC, id ASC
	`, audiences)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectNotifications(rows)
}

func collectNotifications(rows pgx.Rows) ([]domain.Notification, error) {
	out := make([]domain.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanNotification(row pgx.Row) (domain.Notification, error) {
	var (
		id        uuid.UUID
		title     string
		message   string
		typ       string
		audience  string
		readFlag  bool
		createdAt time.Time
	)
	if err := row.Scan(&id, &title, &message, &typ, &audience, &readFlag, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Notification{}, notificationrepo.ErrNotFound
		}
		return domain.Notification{}, err
	}
	return domain.Notification{
		ID:             domain.NotificationID(id.String()),
		Title:          title,
		Message:        message,
		Type:           typ,
		TargetAudience: audience,
		ReadFlag:       readFlag,
		CreatedAt:      createdAt.UTC(),
	}, nil
}
