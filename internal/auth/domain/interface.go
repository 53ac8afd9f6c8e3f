package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/rcatalasan0/491-Project/internal/auth/domain UserRepository
//go:generate mockgen -destination=../../mocks/mock_audit_recorder.go -package=mocks github.com/rcatalasan0/491-Project/internal/auth/domain AuditRecorder
//go:generate mockgen -destination=../../mocks/mock_rate_limiter.go -package=mocks github.com/rcatalasan0/491-Project/internal/auth/domain LoginRateLimiter

import (
	"context"
	"time"
)

// UserRepository is the account store gateway. GetByEmail returns (nil, nil)
// when no account matches. Create returns autherror.ErrDuplicateEmail when
// the insert loses a race on the email unique constraint.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
	UpdateLastLogin(ctx context.Context, userID string, at time.Time) error
}

// AuditRecorder persists auth events. Callers treat failures as advisory.
type AuditRecorder interface {
	Record(ctx context.Context, event AuditEvent) error
}

// LoginRateLimiter throttles login attempts per client key. Allow records
// the attempt at now and reports whether it may proceed.
type LoginRateLimiter interface {
	Allow(key string, now time.Time) bool
}
