// Package audit persists auth events on a best-effort basis. Recorder
// failures are surfaced to the caller, which logs and discards them; an
// audit write must never change the outcome of the request that triggered
// it.
package audit

import (
	"context"
	"fmt"

	"github.com/rcatalasan0/491-Project/db"
	"github.com/rcatalasan0/491-Project/internal/auth/domain"
)

type PostgresRecorder struct {
	db db.Querier
}

func NewPostgresRecorder(db db.Querier) *PostgresRecorder {
	return &PostgresRecorder{db: db}
}

func (r *PostgresRecorder) Record(ctx context.Context, event domain.AuditEvent) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO auth_events (id, action, email, user_id, ip_address, created_at)
		VALUES (gen_random_uuid(), $1, $2, NULLIF($3, ''), $4, now())
	`, event.Action, event.Email, event.UserID, event.IPAddress)
	if err != nil {
		return fmt.Errorf("failed to record auth event: %w", err)
	}

	return nil
}

// NopRecorder discards events. Wired when no audit store is configured.
type NopRecorder struct{}

func (NopRecorder) Record(ctx context.Context, event domain.AuditEvent) error {
	return nil
}
