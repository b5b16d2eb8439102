package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ironhaven-fitness/gym-api/internal/domain"
	"github.com/ironhaven-fitness/gym-api/internal/ports/out/activitylog"
	clockport "github.com/ironhaven-fitness/gym-api/internal/ports/out/clock"
)

// Recorder appends entries to the activity log on a best-effort basis.
//
// Auditing must never block or fail the primary operation: persistence
// failures are logged to the diagnostic channel and swallowed. Callers never
// observe an error.
type Recorder struct {
	log    activitylog.Log
	clk    clockport.Clock
	logger *slog.Logger

	newEntryID func() string
}

func NewRecorder(log activitylog.Log, clk clockport.Clock, logger *slog.Logger) *Recorder {
	return &Recorder{
		log:        log,
		clk:        clk,
		logger:     logger,
		newEntryID: uuid.NewString,
	}
}

// Record writes one audit entry. Fire-and-forget.
func (r *Recorder) Record(ctx context.Context, userID, action, details string) {
	r.logger.Info("activity",
		slog.String("user", userID),
		slog.String("action", action),
		slog.String("details", details),
	)
	entry := domain.ActivityEntry{
		ID:             r.newEntryID(),
		UserIdentifier: userID,
		Action:         action,
		Details:        domain.TruncateDetails(details),
		CreatedAt:      r.clk.Now(),
	}
	if err := r.log.Append(ctx, entry); err != nil {
		r.logger.Error("activity log write failed",
			slog.String("action", action),
			slog.String("error", err.Error()),
		)
	}
}
