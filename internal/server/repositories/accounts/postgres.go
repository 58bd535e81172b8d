package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/presskit/internal/common"
	"github.com/dmitrijs2005/presskit/internal/dbx"
	"github.com/dmitrijs2005/presskit/internal/server/models"
)

const emailConstraint = "accounts_email_unique"

const selectColumns = `id, email, password_hash, first_name, last_name, artist_name, bio,
		        profile_image_url, reset_token_hash, reset_token_expires_at,
		        verification_token_hash, is_verified, last_login_at, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*models.Account, error) {
	var (
		a            models.Account
		resetHash    sql.NullString
		resetExpires sql.NullTime
		verifyHash   sql.NullString
		lastLogin    sql.NullTime
	)
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.FirstName, &a.LastName, &a.ArtistName, &a.Bio,
		&a.ProfileImageURL, &resetHash, &resetExpires, &verifyHash, &a.IsVerified, &lastLogin,
		&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	a.ResetTokenHash = resetHash.String
	if resetExpires.Valid {
		t := resetExpires.Time
		a.ResetTokenExpiresAt = &t
	}
	a.VerificationTokenHash = verifyHash.String
	if lastLogin.Valid {
		t := lastLogin.Time
		a.LastLoginAt = &t
	}
	return &a, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func translate(err error) error {
	if name, ok := dbx.UniqueViolation(err); ok && name == emailConstraint {
		return &common.DuplicateKeyError{Field: "email", Err: err}
	}
	return fmt.Errorf("db error: %w", err)
}

// execOne runs an UPDATE/DELETE that must touch exactly one row; zero rows
// is reported as miss.
func (r *PostgresRepository) execOne(ctx context.Context, miss error, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return translate(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return miss
	}
	return nil
}

func (r *PostgresRepository) Create(ctx context.Context, a *models.Account) (*models.Account, error) {
	query :=
		`INSERT INTO accounts (id, email, password_hash, first_name, last_name, artist_name, bio,
		                       profile_image_url, verification_token_hash, is_verified)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		a.ID, a.Email, a.PasswordHash, a.FirstName, a.LastName, a.ArtistName, a.Bio,
		a.ProfileImageURL, nullString(a.VerificationTokenHash), a.IsVerified,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return a, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	query := `SELECT ` + selectColumns + `
		 FROM accounts WHERE id = $1`
	return scanAccount(r.db.QueryRowContext(ctx, query, id))
}

// GetByIDForUpdate locks the row for the rest of the surrounding transaction.
func (r *PostgresRepository) GetByIDForUpdate(ctx context.Context, id string) (*models.Account, error) {
	query := `SELECT ` + selectColumns + `
		 FROM accounts WHERE id = $1 FOR UPDATE`
	return scanAccount(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := `SELECT ` + selectColumns + `
		 FROM accounts WHERE email = $1`
	return scanAccount(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) GetByResetTokenHash(ctx context.Context, digest string) (*models.Account, error) {
	query := `SELECT ` + selectColumns + `
		 FROM accounts WHERE reset_token_hash = $1`
	return scanAccount(r.db.QueryRowContext(ctx, query, digest))
}

func (r *PostgresRepository) GetByVerificationTokenHash(ctx context.Context, digest string) (*models.Account, error) {
	query := `SELECT ` + selectColumns + `
		 FROM accounts WHERE verification_token_hash = $1`
	return scanAccount(r.db.QueryRowContext(ctx, query, digest))
}

func (r *PostgresRepository) UpdateProfile(ctx context.Context, a *models.Account) error {
	query :=
		`UPDATE accounts
		 SET first_name = $2, last_name = $3, artist_name = $4, bio = $5,
		     profile_image_url = $6, updated_at = now()
		 WHERE id = $1`
	return r.execOne(ctx, common.ErrorNotFound, query,
		a.ID, a.FirstName, a.LastName, a.ArtistName, a.Bio, a.ProfileImageURL)
}

func (r *PostgresRepository) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	query :=
		`UPDATE accounts
		 SET password_hash = $2, reset_token_hash = NULL, reset_token_expires_at = NULL, updated_at = now()
		 WHERE id = $1`
	return r.execOne(ctx, common.ErrorNotFound, query, id, hash)
}

func (r *PostgresRepository) SetResetToken(ctx context.Context, id, digest string, expiresAt time.Time) error {
	query :=
		`UPDATE accounts
		 SET reset_token_hash = $2, reset_token_expires_at = $3, updated_at = now()
		 WHERE id = $1`
	return r.execOne(ctx, common.ErrorNotFound, query, id, digest, expiresAt)
}

func (r *PostgresRepository) ClearResetToken(ctx context.Context, id string) error {
	query :=
		`UPDATE accounts
		 SET reset_token_hash = NULL, reset_token_expires_at = NULL, updated_at = now()
		 WHERE id = $1`
	return r.execOne(ctx, common.ErrorNotFound, query, id)
}

func (r *PostgresRepository) ConsumeResetToken(ctx context.Context, id, digest, hash string, now time.Time) error {
	query :=
		`UPDATE accounts
		 SET password_hash = $3, reset_token_hash = NULL, reset_token_expires_at = NULL, updated_at = now()
		 WHERE id = $1 AND reset_token_hash = $2 AND reset_token_expires_at > $4`
	return r.execOne(ctx, common.ErrTokenInvalid, query, id, digest, hash, now)
}

func (r *PostgresRepository) SetVerificationToken(ctx context.Context, id, digest string) error {
	query :=
		`UPDATE accounts
		 SET verification_token_hash = $2, updated_at = now()
		 WHERE id = $1`
	return r.execOne(ctx, common.ErrorNotFound, query, id, digest)
}

func (r *PostgresRepository) ConfirmVerification(ctx context.Context, id, digest string) error {
	query :=
		`UPDATE accounts
		 SET is_verified = TRUE, verification_token_hash = NULL, updated_at = now()
		 WHERE id = $1 AND verification_token_hash = $2`
	return r.execOne(ctx, common.ErrTokenInvalid, query, id, digest)
}

func (r *PostgresRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE accounts SET last_login_at = $2 WHERE id = $1`
	return r.execOne(ctx, common.ErrorNotFound, query, id, at)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM accounts WHERE id = $1`
	return r.execOne(ctx, common.ErrorNotFound, query, id)
}
