package activitylog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ironhaven-fitness/gym-api/internal/domain"
)

// Log is a Postgres implementation of activitylog.Log. Rows are append-only;
// no update or delete statements exist in this package.
type Log struct {
	pool *pgxpool.Pool
}

func NewLog(pool *pgxpool.Pool) *Log {
	return &Log{pool: pool}
}

func (l *Log) Append(ctx context.Context, e domain.ActivityEntry) error {
	if l.pool == nil {
		return errors.New("nil postgres pool")
	}
	id, err := uuid.Parse(e.ID)
	if err != nil {
		return fmt.Errorf("invalid activity entry id: %w", err)
	}
	_, err = l.pool.Exec(ctx, `
		INSERT INTO activity_logs (id, user_identifier, action, details, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`,
		id,
		e.UserIdentifier,
		e.Action,
		domain.TruncateDetails(e.Details),
		e.CreatedAt.UTC(),
	)
	return err
}

func (l *Log) ListRecent(ctx context.Context, limit int) ([]domain.ActivityEntry, error) {
	if l.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	if limit <= 0 {
		limit = 100
	}
	rows, err := l.pool.Query(ctx, `
		SELECT id, user_identifier, action, details, created_at
		FROM activity_logs
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.ActivityEntry, 0, limit)
	for rows.Next() {
		var (
			id        uuid.UUID
			user      string
			action    string
			details   string
			createdAt time.Time
		)
		if err := rows.Scan(&id, &user, &action, &details, &createdAt); err != nil {
			return nil, err
		}
		out = append(out, domain.ActivityEntry{
			ID:             id.String(),
			UserIdentifier: user,
			Action:         action,
			Details:        details,
			CreatedAt:      createdAt.UTC(),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
