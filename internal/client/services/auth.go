// Package services holds client-side flows that combine remote calls with
// the local session store.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/presskit/internal/client/client"
	"github.com/dmitrijs2005/presskit/internal/client/repositories/session"
)

// ErrNotLoggedIn is returned when a command needs a session and there is none.
var ErrNotLoggedIn = errors.New("not logged in")

type AuthService struct {
	client   client.Client
	sessions session.Repository
	current  *session.Session
}

func NewAuthService(c client.Client, sessions session.Repository) *AuthService {
	return &AuthService{client: c, sessions: sessions}
}

// Restore picks up the session saved by a previous run, if any.
func (s *AuthService) Restore(ctx context.Context) (*session.Session, error) {
	saved, err := s.sessions.Load(ctx)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, nil
	}
	s.current = saved
	s.client.SetAccessToken(saved.AccessToken)
	return saved, nil
}

// Login authenticates against the server and remembers the session locally.
func (s *AuthService) Login(ctx context.Context, email, password string) (*session.Session, error) {
	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	current := &session.Session{Email: resp.Account.Email, AccountID: resp.Account.ID, AccessToken: resp.AccessToken}
	if err := s.sessions.Save(ctx, current); err != nil {
		return nil, fmt.Errorf("error saving session: %w", err)
	}
	s.current = current
	return current, nil
}

// Logout forgets the session locally. Access tokens simply expire server-side.
func (s *AuthService) Logout(ctx context.Context) error {
	s.current = nil
	s.client.SetAccessToken("")
	return s.sessions.Clear(ctx)
}

func (s *AuthService) Current() (*session.Session, error) {
	if s.current == nil {
		return nil, ErrNotLoggedIn
	}
	return s.current, nil
}
