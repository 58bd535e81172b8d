// Package memory keeps accounts and press kits in process memory. It honours
// the same uniqueness rules, not-found results and atomic updates as the
// PostgreSQL repositories and is selected with the "memory" database DSN.
package memory

import (
	"sync"

	"github.com/dmitrijs2005/presskit/internal/server/models"
)

// Store is the shared state behind the in-memory repositories. Deleting an
// account removes its press kits, mirroring the ON DELETE CASCADE key.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]*models.Account
	kits     map[string]*models.PressKit
}

func NewStore() *Store {
	return &Store{
		accounts: make(map[string]*models.Account),
		kits:     make(map[string]*models.PressKit),
	}
}

func (s *Store) Accounts() *AccountRepository {
	return &AccountRepository{s: s}
}

func (s *Store) PressKits() *PressKitRepository {
	return &PressKitRepository{s: s}
}

func cloneAccount(a *models.Account) *models.Account {
	c := *a
	if a.ResetTokenExpiresAt != nil {
		t := *a.ResetTokenExpiresAt
		c.ResetTokenExpiresAt = &t
	}
	if a.LastLoginAt != nil {
		t := *a.LastLoginAt
		c.LastLoginAt = &t
	}
	return &c
}
