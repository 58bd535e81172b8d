// Package session persists the logged-in account between client runs.
package session

import (
	"context"
	"time"
)

// Session is the locally remembered login.
type Session struct {
	Email       string
	AccountID   string
	AccessToken string
	SavedAt     time.Time
}

// Repository stores at most one session. Load returns (nil, nil) when no one
// is logged in.
type Repository interface {
	Load(ctx context.Context) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Clear(ctx context.Context) error
}
