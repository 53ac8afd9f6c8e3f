package domain

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	LastLogin    *time.Time
}

// AuditEvent records the outcome of an auth attempt. UserID is empty when
// the attempt never resolved to an account.
type AuditEvent struct {
	Action    string
	Email     string
	UserID    string
	IPAddress string
}
