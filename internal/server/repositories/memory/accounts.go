package memory

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/presskit/internal/common"
	"github.com/dmitrijs2005/presskit/internal/server/models"
)

type AccountRepository struct {
	s *Store
}

// find returns the live record; callers must hold the lock.
func (r *AccountRepository) find(match func(*models.Account) bool) (*models.Account, error) {
	for _, a := range r.s.accounts {
		if match(a) {
			return a, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *AccountRepository) lookup(match func(*models.Account) bool) (*models.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, err := r.find(match)
	if err != nil {
		return nil, err
	}
	return cloneAccount(a), nil
}

// update applies fn to the live record under the write lock.
func (r *AccountRepository) update(id string, fn func(*models.Account) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.accounts[id]
	if !ok {
		return common.ErrorNotFound
	}
	return fn(a)
}

func (r *AccountRepository) Create(_ context.Context, a *models.Account) (*models.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, err := r.find(func(x *models.Account) bool { return x.Email == a.Email }); err == nil {
		return nil, &common.DuplicateKeyError{Field: "email"}
	}
	if _, ok := r.s.accounts[a.ID]; ok {
		return nil, &common.DuplicateKeyError{Field: "id"}
	}
	now := time.Now().UTC()
	a.CreatedAt, a.UpdatedAt = now, now
	r.s.accounts[a.ID] = cloneAccount(a)
	return a, nil
}

func (r *AccountRepository) GetByID(_ context.Context, id string) (*models.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, ok := r.s.accounts[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return cloneAccount(a), nil
}

func (r *AccountRepository) GetByIDForUpdate(ctx context.Context, id string) (*models.Account, error) {
	return r.GetByID(ctx, id)
}

func (r *AccountRepository) GetByEmail(_ context.Context, email string) (*models.Account, error) {
	return r.lookup(func(a *models.Account) bool { return a.Email == email })
}

func (r *AccountRepository) GetByResetTokenHash(_ context.Context, digest string) (*models.Account, error) {
	if digest == "" {
		return nil, common.ErrorNotFound
	}
	return r.lookup(func(a *models.Account) bool { return a.ResetTokenHash == digest })
}

func (r *AccountRepository) GetByVerificationTokenHash(_ context.Context, digest string) (*models.Account, error) {
	if digest == "" {
		return nil, common.ErrorNotFound
	}
	return r.lookup(func(a *models.Account) bool { return a.VerificationTokenHash == digest })
}

func (r *AccountRepository) UpdateProfile(_ context.Context, in *models.Account) error {
	return r.update(in.ID, func(a *models.Account) error {
		a.FirstName = in.FirstName
		a.LastName = in.LastName
		a.ArtistName = in.ArtistName
		a.Bio = in.Bio
		a.ProfileImageURL = in.ProfileImageURL
		a.UpdatedAt = time.Now().UTC()
		return nil
	})
}

func (r *AccountRepository) UpdatePasswordHash(_ context.Context, id, hash string) error {
	return r.update(id, func(a *models.Account) error {
		a.PasswordHash = hash
		a.ResetTokenHash = ""
		a.ResetTokenExpiresAt = nil
		a.UpdatedAt = time.Now().UTC()
		return nil
	})
}

func (r *AccountRepository) SetResetToken(_ context.Context, id, digest string, expiresAt time.Time) error {
	return r.update(id, func(a *models.Account) error {
		a.ResetTokenHash = digest
		a.ResetTokenExpiresAt = &expiresAt
		a.UpdatedAt = time.Now().UTC()
		return nil
	})
}

func (r *AccountRepository) ClearResetToken(_ context.Context, id string) error {
	return r.update(id, func(a *models.Account) error {
		a.ResetTokenHash = ""
		a.ResetTokenExpiresAt = nil
		a.UpdatedAt = time.Now().UTC()
		return nil
	})
}

func (r *AccountRepository) ConsumeResetToken(_ context.Context, id, digest, hash string, now time.Time) error {
	err := r.update(id, func(a *models.Account) error {
		if digest == "" || a.ResetTokenHash != digest || a.ResetTokenExpiresAt == nil || !a.ResetTokenExpiresAt.After(now) {
			return common.ErrTokenInvalid
		}
		a.PasswordHash = hash
		a.ResetTokenHash = ""
		a.ResetTokenExpiresAt = nil
		a.UpdatedAt = time.Now().UTC()
		return nil
	})
	if errors.Is(err, common.ErrorNotFound) {
		return common.ErrTokenInvalid
	}
	return err
}

func (r *AccountRepository) SetVerificationToken(_ context.Context, id, digest string) error {
	return r.update(id, func(a *models.Account) error {
		a.VerificationTokenHash = digest
		a.UpdatedAt = time.Now().UTC()
		return nil
	})
}

func (r *AccountRepository) ConfirmVerification(_ context.Context, id, digest string) error {
	err := r.update(id, func(a *models.Account) error {
		if digest == "" || a.VerificationTokenHash != digest {
			return common.ErrTokenInvalid
		}
		a.IsVerified = true
		a.VerificationTokenHash = ""
		a.UpdatedAt = time.Now().UTC()
		return nil
	})
	if errors.Is(err, common.ErrorNotFound) {
		return common.ErrTokenInvalid
	}
	return err
}

func (r *AccountRepository) TouchLastLogin(_ context.Context, id string, at time.Time) error {
	return r.update(id, func(a *models.Account) error {
		a.LastLoginAt = &at
		return nil
	})
}

func (r *AccountRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.accounts[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.s.accounts, id)
	for kid, k := range r.s.kits {
		if k.OwnerID == id {
			delete(r.s.kits, kid)
		}
	}
	return nil
}
