// Package services contains server-side business logic. AccountService owns
// identity records: registration, password credentials, login, reset and
// verification tokens and the safe account projection. PressKitService owns
// press kits and only ever sees an account through its id.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/presskit/internal/common"
	"github.com/dmitrijs2005/presskit/internal/dbx"
	"github.com/dmitrijs2005/presskit/internal/logging"
	"github.com/dmitrijs2005/presskit/internal/server/auth"
	"github.com/dmitrijs2005/presskit/internal/server/config"
	"github.com/dmitrijs2005/presskit/internal/server/credential"
	"github.com/dmitrijs2005/presskit/internal/server/metrics"
	"github.com/dmitrijs2005/presskit/internal/server/models"
	"github.com/dmitrijs2005/presskit/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// tokenBytes is the amount of randomness in reset and verification tokens.
const tokenBytes = 32

// generateToken is a seam for tests.
var generateToken = func() (string, error) {
	return common.MakeRandHexString(tokenBytes)
}

// RegisterInput carries the fields accepted at sign-up.
type RegisterInput struct {
	Email      string
	Password   string
	FirstName  string
	LastName   string
	ArtistName string
	Bio        string
}

// ProfileInput is a partial profile update; nil fields are left unchanged.
type ProfileInput struct {
	FirstName       *string
	LastName        *string
	ArtistName      *string
	Bio             *string
	ProfileImageURL *string
}

type AccountService struct {
	repomanager repomanager.RepositoryManager
	hasher      *credential.Hasher
	log         logging.Logger
	metrics     metrics.Recorder

	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	resetTokenValidityDuration  time.Duration

	now func() time.Time
}

// NewAccountService constructs an AccountService using repositories and server config.
func NewAccountService(m repomanager.RepositoryManager, hasher *credential.Hasher, cfg *config.Config,
	log logging.Logger, rec metrics.Recorder) *AccountService {
	return &AccountService{
		repomanager:                 m,
		hasher:                      hasher,
		log:                         log,
		metrics:                     rec,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		resetTokenValidityDuration:  cfg.ResetTokenValidityDuration,
		now:                         time.Now,
	}
}

// CreateAccount validates the sign-up fields, hashes the password and
// stores the new account. A taken email is a validation error on "email".
func (s *AccountService) CreateAccount(ctx context.Context, in RegisterInput) (*models.Account, error) {
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}
	first, err := requiredText("firstName", in.FirstName)
	if err != nil {
		return nil, err
	}
	last, err := requiredText("lastName", in.LastName)
	if err != nil {
		return nil, err
	}
	bio, err := validateBio(in.Bio)
	if err != nil {
		return nil, err
	}
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}

	repo := s.repomanager.Accounts(s.repomanager.Conn())

	_, err = repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, common.NewValidationError("email", "already in use")
	case !errors.Is(err, common.ErrorNotFound):
		return nil, fmt.Errorf("error looking up email: %w", err)
	}

	hash, err := s.hasher.Hash(ctx, in.Password)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    first,
		LastName:     last,
		ArtistName:   strings.TrimSpace(in.ArtistName),
		Bio:          bio,
	}
	created, err := repo.Create(ctx, account)
	if err != nil {
		if common.IsDuplicateOn(err, "email") {
			return nil, common.NewValidationError("email", "already in use")
		}
		return nil, fmt.Errorf("error creating account: %w", err)
	}

	s.log.Info(ctx, "account created", "account_id", created.ID)
	s.metrics.RecordAccountCreated()
	return created, nil
}

// VerifyCredential reports whether candidate is the account's password. A nil
// account still costs one bcrypt comparison. It fails only with the context
// error when ctx ends before a comparison could run.
func (s *AccountService) VerifyCredential(ctx context.Context, account *models.Account, candidate string) (bool, error) {
	if account == nil {
		return false, s.hasher.CompareDummy(ctx, candidate)
	}
	return s.hasher.Compare(ctx, account.PasswordHash, candidate)
}

// Authenticate checks email and password, records the login time and returns
// the account with a signed access token. Every credential failure is
// ErrorUnauthorized; a context that ends while waiting for the hasher is
// returned as is.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*models.Account, string, error) {
	repo := s.repomanager.Accounts(s.repomanager.Conn())

	var account *models.Account
	if normalized, err := normalizeEmail(email); err == nil {
		account, err = repo.GetByEmail(ctx, normalized)
		if err != nil && !errors.Is(err, common.ErrorNotFound) {
			return nil, "", fmt.Errorf("error looking up account: %w", err)
		}
	}

	ok, err := s.VerifyCredential(ctx, account, password)
	if err != nil {
		return nil, "", err
	}
	if !ok {
		s.metrics.RecordLogin(false)
		return nil, "", common.ErrorUnauthorized
	}

	now := s.now().UTC()
	if err := repo.TouchLastLogin(ctx, account.ID, now); err != nil {
		return nil, "", fmt.Errorf("error recording login: %w", err)
	}
	account.LastLoginAt = &now

	token, err := auth.GenerateToken(account.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	s.metrics.RecordLogin(true)
	s.log.Info(ctx, "account logged in", "account_id", account.ID)
	return account, token, nil
}

// ChangeCredential replaces the password hash and drops any pending reset token.
func (s *AccountService) ChangeCredential(ctx context.Context, accountID, newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	if !validID(accountID) {
		return common.ErrorNotFound
	}
	hash, err := s.hasher.Hash(ctx, newPassword)
	if err != nil {
		return err
	}
	if err := s.repomanager.Accounts(s.repomanager.Conn()).UpdatePasswordHash(ctx, accountID, hash); err != nil {
		return fmt.Errorf("error updating credential: %w", err)
	}
	s.log.Info(ctx, "credential changed", "account_id", accountID)
	return nil
}

// ChangePassword is ChangeCredential gated on the current password.
func (s *AccountService) ChangePassword(ctx context.Context, accountID, current, next string) error {
	account, err := s.GetAccount(ctx, accountID)
	if err != nil {
		return err
	}
	ok, err := s.VerifyCredential(ctx, account, current)
	if err != nil {
		return err
	}
	if !ok {
		return common.ErrorUnauthorized
	}
	return s.ChangeCredential(ctx, accountID, next)
}

// IssueResetToken stores a fresh reset token digest for the account with the
// given email and returns the plaintext token for delivery.
func (s *AccountService) IssueResetToken(ctx context.Context, email string) (string, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return "", err
	}
	repo := s.repomanager.Accounts(s.repomanager.Conn())
	account, err := repo.GetByEmail(ctx, normalized)
	if err != nil {
		return "", err
	}

	token, err := generateToken()
	if err != nil {
		return "", common.ErrorInternal
	}
	expires := s.now().UTC().Add(s.resetTokenValidityDuration)
	if err := repo.SetResetToken(ctx, account.ID, common.DigestHex(token), expires); err != nil {
		return "", fmt.Errorf("error storing reset token: %w", err)
	}

	s.log.Info(ctx, "reset token issued", "account_id", account.ID, "expires_at", expires)
	s.metrics.RecordResetToken(metrics.ResetIssued)
	return token, nil
}

// ConsumeResetToken sets a new password if token is the account's current,
// unexpired reset token. An expired token is cleared and reported as
// ErrTokenExpired; a second use of the same token gets ErrTokenInvalid.
func (s *AccountService) ConsumeResetToken(ctx context.Context, token, newPassword string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		s.metrics.RecordResetToken(metrics.ResetInvalid)
		return common.ErrTokenInvalid
	}
	digest := common.DigestHex(token)
	repo := s.repomanager.Accounts(s.repomanager.Conn())

	account, err := repo.GetByResetTokenHash(ctx, digest)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.metrics.RecordResetToken(metrics.ResetInvalid)
			return common.ErrTokenInvalid
		}
		return fmt.Errorf("error looking up reset token: %w", err)
	}

	now := s.now().UTC()
	if account.ResetTokenExpiresAt == nil || !now.Before(*account.ResetTokenExpiresAt) {
		if err := repo.ClearResetToken(ctx, account.ID); err != nil {
			s.log.Warn(ctx, "clearing expired reset token failed", "account_id", account.ID, "error", err)
		}
		s.metrics.RecordResetToken(metrics.ResetExpired)
		return common.ErrTokenExpired
	}

	if err := validatePassword(newPassword); err != nil {
		return err
	}
	hash, err := s.hasher.Hash(ctx, newPassword)
	if err != nil {
		return err
	}

	if err := repo.ConsumeResetToken(ctx, account.ID, digest, hash, now); err != nil {
		if errors.Is(err, common.ErrTokenInvalid) {
			s.metrics.RecordResetToken(metrics.ResetInvalid)
			return err
		}
		return fmt.Errorf("error consuming reset token: %w", err)
	}

	s.log.Info(ctx, "reset token consumed", "account_id", account.ID)
	s.metrics.RecordResetToken(metrics.ResetConsumed)
	return nil
}

// IssueVerificationToken stores a fresh verification token digest for an
// unverified account and returns the plaintext token.
func (s *AccountService) IssueVerificationToken(ctx context.Context, accountID string) (string, error) {
	account, err := s.GetAccount(ctx, accountID)
	if err != nil {
		return "", err
	}
	if account.IsVerified {
		return "", common.ErrorAlreadyVerified
	}

	token, err := generateToken()
	if err != nil {
		return "", common.ErrorInternal
	}
	repo := s.repomanager.Accounts(s.repomanager.Conn())
	if err := repo.SetVerificationToken(ctx, account.ID, common.DigestHex(token)); err != nil {
		return "", fmt.Errorf("error storing verification token: %w", err)
	}

	s.log.Info(ctx, "verification token issued", "account_id", account.ID)
	return token, nil
}

// ConfirmVerification marks the token's account verified and clears the token.
func (s *AccountService) ConfirmVerification(ctx context.Context, token string) (*models.Account, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, common.ErrTokenInvalid
	}
	digest := common.DigestHex(token)
	repo := s.repomanager.Accounts(s.repomanager.Conn())

	account, err := repo.GetByVerificationTokenHash(ctx, digest)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrTokenInvalid
		}
		return nil, fmt.Errorf("error looking up verification token: %w", err)
	}
	if err := repo.ConfirmVerification(ctx, account.ID, digest); err != nil {
		if errors.Is(err, common.ErrTokenInvalid) {
			return nil, err
		}
		return nil, fmt.Errorf("error confirming verification: %w", err)
	}

	account.IsVerified = true
	account.VerificationTokenHash = ""
	s.log.Info(ctx, "account verified", "account_id", account.ID)
	return account, nil
}

// UpdateProfile applies a partial profile update under a row lock so
// concurrent partial updates do not overwrite each other's fields.
func (s *AccountService) UpdateProfile(ctx context.Context, accountID string, in ProfileInput) (*models.Account, error) {
	if !validID(accountID) {
		return nil, common.ErrorNotFound
	}

	var updated *models.Account
	err := s.repomanager.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Accounts(tx)
		account, err := repo.GetByIDForUpdate(ctx, accountID)
		if err != nil {
			return err
		}
		if err := applyProfile(account, in); err != nil {
			return err
		}
		if err := repo.UpdateProfile(ctx, account); err != nil {
			return err
		}
		updated = account
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func applyProfile(a *models.Account, in ProfileInput) error {
	var err error
	if in.FirstName != nil {
		if a.FirstName, err = requiredText("firstName", *in.FirstName); err != nil {
			return err
		}
	}
	if in.LastName != nil {
		if a.LastName, err = requiredText("lastName", *in.LastName); err != nil {
			return err
		}
	}
	if in.ArtistName != nil {
		a.ArtistName = strings.TrimSpace(*in.ArtistName)
	}
	if in.Bio != nil {
		if a.Bio, err = validateBio(*in.Bio); err != nil {
			return err
		}
	}
	if in.ProfileImageURL != nil {
		a.ProfileImageURL = strings.TrimSpace(*in.ProfileImageURL)
	}
	return nil
}

func (s *AccountService) GetAccount(ctx context.Context, accountID string) (*models.Account, error) {
	if !validID(accountID) {
		return nil, common.ErrorNotFound
	}
	return s.repomanager.Accounts(s.repomanager.Conn()).GetByID(ctx, accountID)
}

// GetAccountByEmail looks an account up by its normalized email.
func (s *AccountService) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	return s.repomanager.Accounts(s.repomanager.Conn()).GetByEmail(ctx, normalized)
}

// DeleteAccount removes the account; its press kits go with it.
func (s *AccountService) DeleteAccount(ctx context.Context, accountID string) error {
	if !validID(accountID) {
		return common.ErrorNotFound
	}
	if err := s.repomanager.Accounts(s.repomanager.Conn()).Delete(ctx, accountID); err != nil {
		return err
	}
	s.log.Info(ctx, "account deleted", "account_id", accountID)
	return nil
}

// Project returns the external-safe view of account.
func (s *AccountService) Project(account *models.Account) models.AccountView {
	return account.View()
}
