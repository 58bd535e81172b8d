package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/presskit/internal/common"
	"github.com/dmitrijs2005/presskit/internal/dbx"
	"github.com/dmitrijs2005/presskit/internal/server/auth"
	"github.com/dmitrijs2005/presskit/internal/server/models"
	"github.com/dmitrijs2005/presskit/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/presskit/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAccount_NormalizesAndHashes(t *testing.T) {
	f := newFixture(t)
	a, err := f.accounts.CreateAccount(context.Background(), RegisterInput{
		Email: "  Jane@Example.COM ", Password: testPassword,
		FirstName: " Jane ", LastName: "Doe", ArtistName: " Midnight Echo ",
	})
	require.NoError(t, err)

	assert.Equal(t, "jane@example.com", a.Email)
	assert.Equal(t, "Jane", a.FirstName)
	assert.Equal(t, "Midnight Echo", a.DisplayName())
	assert.False(t, a.IsVerified)
	assert.NotEqual(t, testPassword, a.PasswordHash)
	assert.True(t, strings.HasPrefix(a.PasswordHash, "$2"), "bcrypt hash expected, got %q", a.PasswordHash)
	assert.True(t, f.verify(t, a, testPassword))
	assert.False(t, f.verify(t, a, "wrong password"))
}

func TestCreateAccount_Validation(t *testing.T) {
	f := newFixture(t)
	ok := RegisterInput{Email: "jane@x.io", Password: testPassword, FirstName: "Jane", LastName: "Doe"}

	cases := []struct {
		name  string
		mod   func(*RegisterInput)
		field string
	}{
		{"empty email", func(in *RegisterInput) { in.Email = " " }, "email"},
		{"malformed email", func(in *RegisterInput) { in.Email = "jane@nowhere" }, "email"},
		{"short password", func(in *RegisterInput) { in.Password = "1234567" }, "password"},
		{"short multibyte password", func(in *RegisterInput) { in.Password = "ééééé" }, "password"},
		{"long password", func(in *RegisterInput) { in.Password = strings.Repeat("p", 73) }, "password"},
		{"missing first name", func(in *RegisterInput) { in.FirstName = "  " }, "firstName"},
		{"missing last name", func(in *RegisterInput) { in.LastName = "" }, "lastName"},
		{"bio too long", func(in *RegisterInput) { in.Bio = strings.Repeat("é", MaxBioLength+1) }, "bio"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := ok
			tc.mod(&in)
			_, err := f.accounts.CreateAccount(context.Background(), in)
			var ve *common.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
			assert.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestCreateAccount_BioAtLimit(t *testing.T) {
	f := newFixture(t)
	_, err := f.accounts.CreateAccount(context.Background(), RegisterInput{
		Email: "jane@x.io", Password: testPassword, FirstName: "Jane", LastName: "Doe",
		Bio: strings.Repeat("é", MaxBioLength),
	})
	require.NoError(t, err)
}

func TestCreateAccount_DuplicateEmail(t *testing.T) {
	f := newFixture(t)
	f.register(t, "jane@x.io")

	_, err := f.accounts.CreateAccount(context.Background(), RegisterInput{
		Email: "JANE@x.io", Password: testPassword, FirstName: "J", LastName: "D",
	})
	var ve *common.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "email", ve.Field)
}

// lateDuplicateManager reports every email as free but fails the insert,
// like a concurrent registration winning between lookup and write.
type lateDuplicateManager struct{ repomanager.RepositoryManager }

type lateDuplicateRepo struct{ accounts.Repository }

func (m lateDuplicateManager) Accounts(db dbx.DBTX) accounts.Repository {
	return lateDuplicateRepo{m.RepositoryManager.Accounts(db)}
}

func (lateDuplicateRepo) Create(context.Context, *models.Account) (*models.Account, error) {
	return nil, &common.DuplicateKeyError{Field: "email"}
}

func TestCreateAccount_DuplicateAtInsert(t *testing.T) {
	f := newFixtureWith(t, lateDuplicateManager{repomanager.NewMemoryRepositoryManager()})
	_, err := f.accounts.CreateAccount(context.Background(), RegisterInput{
		Email: "jane@x.io", Password: testPassword, FirstName: "J", LastName: "D",
	})
	var ve *common.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "email", ve.Field)
	assert.Equal(t, "already in use", ve.Reason)
}

func TestProject_HasNoSecrets(t *testing.T) {
	f := newFixture(t)
	a := f.register(t, "jane@x.io")
	_, err := f.accounts.IssueResetToken(context.Background(), "jane@x.io")
	require.NoError(t, err)
	a, err = f.accounts.GetAccount(context.Background(), a.ID)
	require.NoError(t, err)
	require.NotEmpty(t, a.ResetTokenHash)

	b, err := json.Marshal(f.accounts.Project(a))
	require.NoError(t, err)
	var fields map[string]any
	require.NoError(t, json.Unmarshal(b, &fields))

	for _, k := range []string{"password", "passwordHash", "resetPasswordToken", "resetTokenHash",
		"resetPasswordExpires", "resetTokenExpiresAt", "verificationToken", "verificationTokenHash"} {
		assert.NotContains(t, fields, k)
	}
	assert.NotContains(t, string(b), a.PasswordHash)
	assert.NotContains(t, string(b), a.ResetTokenHash)
	assert.Equal(t, "jane@x.io", fields["email"])
	assert.Equal(t, "Jane Doe", fields["displayName"])
}

func TestAuthenticate(t *testing.T) {
	f := newFixture(t)
	a := f.register(t, "jane@x.io")
	ctx := context.Background()
	fixed := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	f.accounts.now = func() time.Time { return fixed }

	got, token, err := f.accounts.Authenticate(ctx, " JANE@x.io", testPassword)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
	require.NotNil(t, got.LastLoginAt)
	assert.True(t, got.LastLoginAt.Equal(fixed))

	id, err := auth.GetAccountIDFromToken(token, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, a.ID, id)

	stored, err := f.accounts.GetAccount(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.LastLoginAt)

	_, _, err = f.accounts.Authenticate(ctx, "jane@x.io", "wrong password")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, _, err = f.accounts.Authenticate(ctx, "nobody@x.io", testPassword)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, _, err = f.accounts.Authenticate(ctx, "not-an-email", testPassword)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestVerifyCredential_NilAccount(t *testing.T) {
	f := newFixture(t)
	assert.False(t, f.verify(t, nil, testPassword))
}

func TestAuthenticate_ContextEnded(t *testing.T) {
	f := newFixture(t)
	f.register(t, "jane@x.io")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := f.accounts.Authenticate(ctx, "jane@x.io", testPassword)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, common.ErrorUnauthorized)

	_, _, err = f.accounts.Authenticate(ctx, "nobody@x.io", testPassword)
	assert.ErrorIs(t, err, context.Canceled, "unknown email waits for the hasher too")

	_, err = f.accounts.VerifyCredential(ctx, nil, testPassword)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int64(0), f.rec.failedLogins.Load(), "an abandoned login is not a failed one")
}

func TestChangePassword_ContextEnded(t *testing.T) {
	f := newFixture(t)
	a := f.register(t, "jane@x.io")

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	err := f.accounts.ChangePassword(ctx, a.ID, testPassword, "brand new secret")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotErrorIs(t, err, common.ErrorUnauthorized)
	assert.True(t, f.verify(t, a, testPassword), "credential untouched")
}

func TestChangeCredential(t *testing.T) {
	f := newFixture(t)
	a := f.register(t, "jane@x.io")
	ctx := context.Background()
	_, err := f.accounts.IssueResetToken(ctx, "jane@x.io")
	require.NoError(t, err)

	require.NoError(t, f.accounts.ChangeCredential(ctx, a.ID, "brand new secret"))

	stored, err := f.accounts.GetAccount(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, stored.HasPendingReset(), "changing the credential clears a pending reset")
	assert.True(t, f.verify(t, stored, "brand new secret"))
	assert.False(t, f.verify(t, stored, testPassword))

	var ve *common.ValidationError
	assert.ErrorAs(t, f.accounts.ChangeCredential(ctx, a.ID, "short"), &ve)
	assert.ErrorIs(t, f.accounts.ChangeCredential(ctx, "not-a-uuid", "long enough pw"), common.ErrorNotFound)
}

func TestChangePassword_RequiresCurrent(t *testing.T) {
	f := newFixture(t)
	a := f.register(t, "jane@x.io")
	ctx := context.Background()

	assert.ErrorIs(t, f.accounts.ChangePassword(ctx, a.ID, "wrong password", "brand new secret"), common.ErrorUnauthorized)
	require.NoError(t, f.accounts.ChangePassword(ctx, a.ID, testPassword, "brand new secret"))
}

func TestResetToken_Lifecycle(t *testing.T) {
	f := newFixture(t)
	a := f.register(t, "jane@x.io")
	ctx := context.Background()
	start := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	f.accounts.now = func() time.Time { return start }

	_, err := f.accounts.IssueResetToken(ctx, "nobody@x.io")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	token, err := f.accounts.IssueResetToken(ctx, "Jane@x.io")
	require.NoError(t, err)
	assert.Len(t, token, 2*tokenBytes)

	stored, err := f.accounts.GetAccount(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, common.DigestHex(token), stored.ResetTokenHash, "only the digest is persisted")
	assert.True(t, stored.ResetTokenExpiresAt.Equal(start.Add(time.Hour)))

	assert.ErrorIs(t, f.accounts.ConsumeResetToken(ctx, "bogus", "brand new secret"), common.ErrTokenInvalid)
	assert.ErrorIs(t, f.accounts.ConsumeResetToken(ctx, "", "brand new secret"), common.ErrTokenInvalid)

	var ve *common.ValidationError
	require.ErrorAs(t, f.accounts.ConsumeResetToken(ctx, token, "short"), &ve)

	require.NoError(t, f.accounts.ConsumeResetToken(ctx, token, "brand new secret"))
	stored, err = f.accounts.GetAccount(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, f.verify(t, stored, "brand new secret"))
	assert.False(t, stored.HasPendingReset())

	assert.ErrorIs(t, f.accounts.ConsumeResetToken(ctx, token, "another secret"), common.ErrTokenInvalid, "second use")
}

func TestResetToken_Expired(t *testing.T) {
	f := newFixture(t)
	a := f.register(t, "jane@x.io")
	ctx := context.Background()
	start := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	f.accounts.now = func() time.Time { return start }

	token, err := f.accounts.IssueResetToken(ctx, "jane@x.io")
	require.NoError(t, err)

	f.accounts.now = func() time.Time { return start.Add(time.Hour) }
	assert.ErrorIs(t, f.accounts.ConsumeResetToken(ctx, token, "brand new secret"), common.ErrTokenExpired)

	stored, err := f.accounts.GetAccount(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, stored.HasPendingReset(), "expired token is cleared")
	assert.True(t, f.verify(t, stored, testPassword), "credential untouched")

	assert.ErrorIs(t, f.accounts.ConsumeResetToken(ctx, token, "brand new secret"), common.ErrTokenInvalid)
}

func TestResetToken_ConcurrentConsumersOneWins(t *testing.T) {
	f := newFixture(t)
	f.register(t, "jane@x.io")
	ctx := context.Background()

	token, err := f.accounts.IssueResetToken(ctx, "jane@x.io")
	require.NoError(t, err)

	const consumers = 8
	errs := make([]error, consumers)
	var wg sync.WaitGroup
	wg.Add(consumers)
	for i := 0; i < consumers; i++ {
		go func(i int) {
			defer wg.Done()
			errs[i] = f.accounts.ConsumeResetToken(ctx, token, "brand new secret")
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
			continue
		}
		assert.ErrorIs(t, err, common.ErrTokenInvalid)
	}
	assert.Equal(t, 1, wins)
}

func TestResetToken_GeneratorFailure(t *testing.T) {
	f := newFixture(t)
	f.register(t, "jane@x.io")

	orig := generateToken
	t.Cleanup(func() { generateToken = orig })
	generateToken = func() (string, error) { return "", errors.New("entropy exhausted") }

	_, err := f.accounts.IssueResetToken(context.Background(), "jane@x.io")
	assert.ErrorIs(t, err, common.ErrorInternal)
}

func TestVerification(t *testing.T) {
	f := newFixture(t)
	a := f.register(t, "jane@x.io")
	ctx := context.Background()

	token, err := f.accounts.IssueVerificationToken(ctx, a.ID)
	require.NoError(t, err)

	_, err = f.accounts.ConfirmVerification(ctx, "bogus")
	assert.ErrorIs(t, err, common.ErrTokenInvalid)

	verified, err := f.accounts.ConfirmVerification(ctx, token)
	require.NoError(t, err)
	assert.True(t, verified.IsVerified)
	assert.Empty(t, verified.VerificationTokenHash)

	_, err = f.accounts.ConfirmVerification(ctx, token)
	assert.ErrorIs(t, err, common.ErrTokenInvalid, "tokens are one-time")

	_, err = f.accounts.IssueVerificationToken(ctx, a.ID)
	assert.ErrorIs(t, err, common.ErrorAlreadyVerified)

	_, err = f.accounts.IssueVerificationToken(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUpdateProfile_Partial(t *testing.T) {
	f := newFixture(t)
	a := f.register(t, "jane@x.io")
	ctx := context.Background()

	bio := "  Synth-pop from Riga.  "
	got, err := f.accounts.UpdateProfile(ctx, a.ID, ProfileInput{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "Synth-pop from Riga.", got.Bio)
	assert.Equal(t, "Jane", got.FirstName)

	artist := "Midnight Echo"
	image := "accounts/x/profile/1.png"
	_, err = f.accounts.UpdateProfile(ctx, a.ID, ProfileInput{ArtistName: &artist, ProfileImageURL: &image})
	require.NoError(t, err)

	stored, err := f.accounts.GetAccount(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Synth-pop from Riga.", stored.Bio)
	assert.Equal(t, "Midnight Echo", stored.ArtistName)
	assert.Equal(t, image, stored.ProfileImageURL)

	empty := " "
	_, err = f.accounts.UpdateProfile(ctx, a.ID, ProfileInput{FirstName: &empty})
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = f.accounts.UpdateProfile(ctx, "nope", ProfileInput{Bio: &bio})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDeleteAccount_RemovesPressKits(t *testing.T) {
	f := newFixture(t)
	a := f.register(t, "jane@x.io")
	k := f.createKit(t, a.ID, "Midnight Echo")
	ctx := context.Background()

	require.NoError(t, f.accounts.DeleteAccount(ctx, a.ID))

	_, err := f.accounts.GetAccount(ctx, a.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, err = f.kits.Get(ctx, a.ID, k.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.ErrorIs(t, f.accounts.DeleteAccount(ctx, a.ID), common.ErrorNotFound)
}

func TestGetAccountByEmail(t *testing.T) {
	f := newFixture(t)
	a := f.register(t, "jane@x.io")
	ctx := context.Background()

	got, err := f.accounts.GetAccountByEmail(ctx, " JANE@x.io ")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	_, err = f.accounts.GetAccountByEmail(ctx, "nobody@x.io")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = f.accounts.GetAccountByEmail(ctx, "not-an-email")
	assert.ErrorIs(t, err, common.ErrValidation)
}
