// Package accounts stores identity records: credentials, profile fields and
// the reset/verification token digests.
package accounts

import (
	"context"
	"time"

	"github.com/dmitrijs2005/presskit/internal/server/models"
)

// Repository is the persistence contract for accounts. Lookups return
// common.ErrorNotFound for missing rows; a duplicate email surfaces as a
// *common.DuplicateKeyError with Field "email".
type Repository interface {
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	GetByID(ctx context.Context, id string) (*models.Account, error)
	GetByIDForUpdate(ctx context.Context, id string) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByResetTokenHash(ctx context.Context, digest string) (*models.Account, error)
	GetByVerificationTokenHash(ctx context.Context, digest string) (*models.Account, error)

	UpdateProfile(ctx context.Context, account *models.Account) error
	// UpdatePasswordHash replaces the credential and clears any pending reset.
	UpdatePasswordHash(ctx context.Context, id, hash string) error
	SetResetToken(ctx context.Context, id, digest string, expiresAt time.Time) error
	ClearResetToken(ctx context.Context, id string) error
	// ConsumeResetToken swaps the credential only while digest is still the
	// stored, unexpired reset token; otherwise it returns common.ErrTokenInvalid.
	ConsumeResetToken(ctx context.Context, id, digest, hash string, now time.Time) error
	SetVerificationToken(ctx context.Context, id, digest string) error
	// ConfirmVerification marks the account verified and clears the token
	// when digest still matches; otherwise it returns common.ErrTokenInvalid.
	ConfirmVerification(ctx context.Context, id, digest string) error
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
}
