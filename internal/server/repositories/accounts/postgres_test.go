package accounts

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/presskit/internal/common"
	"github.com/dmitrijs2005/presskit/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var accountCols = []string{
	"id", "email", "password_hash", "first_name", "last_name", "artist_name", "bio",
	"profile_image_url", "reset_token_hash", "reset_token_expires_at",
	"verification_token_hash", "is_verified", "last_login_at", "created_at", "updated_at",
}

const insertQ = `(?s)^INSERT\s+INTO\s+accounts\s*\(id,\s*email,.*\)\s*VALUES\s*\(\$1,.*\$10\)\s*RETURNING\s+created_at,\s*updated_at$`

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(insertQ).
		WithArgs("a-1", "jane@x.io", "$2a$10$hash", "Jane", "Doe", "", "", "",
			sql.NullString{String: "digest", Valid: true}, false).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	a := &models.Account{ID: "a-1", Email: "jane@x.io", PasswordHash: "$2a$10$hash",
		FirstName: "Jane", LastName: "Doe", VerificationTokenHash: "digest"}
	got, err := repo.Create(context.Background(), a)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if !got.CreatedAt.Equal(now) || !got.UpdatedAt.Equal(now) {
		t.Fatalf("timestamps not populated: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQ).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "accounts_email_unique"})

	_, err := repo.Create(context.Background(), &models.Account{ID: "a-1", Email: "jane@x.io"})
	if !errors.Is(err, common.ErrDuplicateKey) || !common.IsDuplicateOn(err, "email") {
		t.Fatalf("expected duplicate on email, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQ).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Account{ID: "a-1"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
	if errors.Is(err, common.ErrDuplicateKey) {
		t.Fatalf("plain db error must not be a duplicate")
	}
}

func TestGetByEmail_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	expires := now.Add(time.Hour)
	q := `(?s)^SELECT\s+id,\s*email,.*FROM\s+accounts\s+WHERE\s+email\s*=\s*\$1$`
	mock.ExpectQuery(q).
		WithArgs("jane@x.io").
		WillReturnRows(sqlmock.NewRows(accountCols).AddRow(
			"a-1", "jane@x.io", "hash", "Jane", "Doe", "Midnight Echo", "bio", "",
			"reset-digest", expires, nil, true, nil, now, now))

	a, err := repo.GetByEmail(context.Background(), "jane@x.io")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if a.ID != "a-1" || a.ArtistName != "Midnight Echo" || !a.IsVerified {
		t.Fatalf("unexpected account: %+v", a)
	}
	if a.ResetTokenHash != "reset-digest" || a.ResetTokenExpiresAt == nil || !a.ResetTokenExpiresAt.Equal(expires) {
		t.Fatalf("reset token not mapped: %+v", a)
	}
	if a.VerificationTokenHash != "" || a.LastLoginAt != nil {
		t.Fatalf("null columns should map to zero values: %+v", a)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,.*FROM\s+accounts\s+WHERE\s+id\s*=\s*\$1$`
	mock.ExpectQuery(q).WithArgs("missing").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestGetByIDForUpdate_LocksRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	q := `(?s)^SELECT\s+id,.*FROM\s+accounts\s+WHERE\s+id\s*=\s*\$1\s+FOR\s+UPDATE$`
	mock.ExpectQuery(q).WithArgs("a-1").
		WillReturnRows(sqlmock.NewRows(accountCols).AddRow(
			"a-1", "jane@x.io", "hash", "Jane", "Doe", "", "", "",
			nil, nil, nil, false, now, now, now))

	a, err := repo.GetByIDForUpdate(context.Background(), "a-1")
	if err != nil {
		t.Fatalf("GetByIDForUpdate error: %v", err)
	}
	if a.LastLoginAt == nil {
		t.Fatalf("last login should be set")
	}
}

func TestGetByResetTokenHash_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,.*WHERE\s+reset_token_hash\s*=\s*\$1$`
	mock.ExpectQuery(q).WithArgs("d").WillReturnError(errors.New("boom"))

	_, err := repo.GetByResetTokenHash(context.Background(), "d")
	if err == nil || errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected db error, got %v", err)
	}
}

func TestConsumeResetToken(t *testing.T) {
	q := `(?s)^UPDATE\s+accounts\s+SET\s+password_hash\s*=\s*\$3,.*WHERE\s+id\s*=\s*\$1\s+AND\s+reset_token_hash\s*=\s*\$2\s+AND\s+reset_token_expires_at\s*>\s*\$4$`
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("swapped", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()
		mock.ExpectExec(q).WithArgs("a-1", "digest", "newhash", now).
			WillReturnResult(sqlmock.NewResult(0, 1))
		if err := repo.ConsumeResetToken(context.Background(), "a-1", "digest", "newhash", now); err != nil {
			t.Fatalf("ConsumeResetToken error: %v", err)
		}
	})

	t.Run("condition failed", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()
		mock.ExpectExec(q).WithArgs("a-1", "digest", "newhash", now).
			WillReturnResult(sqlmock.NewResult(0, 0))
		err := repo.ConsumeResetToken(context.Background(), "a-1", "digest", "newhash", now)
		if !errors.Is(err, common.ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid, got %v", err)
		}
	})
}

func TestConfirmVerification_NoMatch(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+accounts\s+SET\s+is_verified\s*=\s*TRUE,.*WHERE\s+id\s*=\s*\$1\s+AND\s+verification_token_hash\s*=\s*\$2$`
	mock.ExpectExec(q).WithArgs("a-1", "digest").WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.ConfirmVerification(context.Background(), "a-1", "digest"); !errors.Is(err, common.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestUpdatePasswordHash_ClearsReset(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+accounts\s+SET\s+password_hash\s*=\s*\$2,\s*reset_token_hash\s*=\s*NULL,\s*reset_token_expires_at\s*=\s*NULL,.*WHERE\s+id\s*=\s*\$1$`
	mock.ExpectExec(q).WithArgs("a-1", "h").WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdatePasswordHash(context.Background(), "a-1", "h"); err != nil {
		t.Fatalf("UpdatePasswordHash error: %v", err)
	}
}

func TestSetResetToken_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	exp := time.Now().Add(time.Hour)
	q := `(?s)^UPDATE\s+accounts\s+SET\s+reset_token_hash\s*=\s*\$2,\s*reset_token_expires_at\s*=\s*\$3,.*WHERE\s+id\s*=\s*\$1$`
	mock.ExpectExec(q).WithArgs("nobody", "d", exp).WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.SetResetToken(context.Background(), "nobody", "d", exp); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+accounts\s+SET\s+first_name\s*=\s*\$2,.*WHERE\s+id\s*=\s*\$1$`
	mock.ExpectExec(q).WithArgs("a-1", "Jane", "Doe", "Midnight Echo", "bio", "https://cdn/x.png").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateProfile(context.Background(), &models.Account{
		ID: "a-1", FirstName: "Jane", LastName: "Doe", ArtistName: "Midnight Echo",
		Bio: "bio", ProfileImageURL: "https://cdn/x.png",
	})
	if err != nil {
		t.Fatalf("UpdateProfile error: %v", err)
	}
}

func TestExec_RowsAffectedError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^DELETE\s+FROM\s+accounts\s+WHERE\s+id\s*=\s*\$1$`
	mock.ExpectExec(q).WithArgs("a-1").WillReturnResult(sqlmock.NewErrorResult(errors.New("no count")))

	err := repo.Delete(context.Background(), "a-1")
	if err == nil || !regexp.MustCompile(`db error: .*no count`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped rows affected error, got %v", err)
	}
}

func TestTouchLastLogin_ExecError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	at := time.Now()
	q := `(?s)^UPDATE\s+accounts\s+SET\s+last_login_at\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$1$`
	mock.ExpectExec(q).WithArgs("a-1", at).WillReturnError(errors.New("db down"))

	if err := repo.TouchLastLogin(context.Background(), "a-1", at); err == nil {
		t.Fatal("expected error")
	}
}
