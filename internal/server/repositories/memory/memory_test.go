package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/presskit/internal/common"
	"github.com/dmitrijs2005/presskit/internal/server/models"
	"github.com/dmitrijs2005/presskit/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/presskit/internal/server/repositories/presskits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ accounts.Repository  = (*AccountRepository)(nil)
	_ presskits.Repository = (*PressKitRepository)(nil)
)

func seedAccount(t *testing.T, s *Store, id, email string) {
	t.Helper()
	_, err := s.Accounts().Create(context.Background(), &models.Account{ID: id, Email: email, FirstName: "Jane", LastName: "Doe"})
	require.NoError(t, err)
}

func newKit(id, owner, s string) *models.PressKit {
	return &models.PressKit{ID: id, OwnerID: owner, Title: s, Slug: s, Template: models.DefaultTemplate,
		Customization: models.DefaultCustomization()}
}

func TestAccounts_EmailUnique(t *testing.T) {
	s := NewStore()
	seedAccount(t, s, "a-1", "jane@x.io")

	_, err := s.Accounts().Create(context.Background(), &models.Account{ID: "a-2", Email: "jane@x.io"})
	assert.True(t, common.IsDuplicateOn(err, "email"), "got %v", err)
}

func TestAccounts_ReturnsCopies(t *testing.T) {
	s := NewStore()
	seedAccount(t, s, "a-1", "jane@x.io")
	ctx := context.Background()

	a, err := s.Accounts().GetByID(ctx, "a-1")
	require.NoError(t, err)
	a.Email = "mutated@x.io"

	again, err := s.Accounts().GetByEmail(ctx, "jane@x.io")
	require.NoError(t, err)
	assert.Equal(t, "a-1", again.ID)
}

func TestAccounts_ResetTokenLifecycle(t *testing.T) {
	s := NewStore()
	seedAccount(t, s, "a-1", "jane@x.io")
	repo := s.Accounts()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.SetResetToken(ctx, "a-1", "d1", now.Add(time.Hour)))
	got, err := repo.GetByResetTokenHash(ctx, "d1")
	require.NoError(t, err)
	assert.True(t, got.HasPendingReset())

	assert.ErrorIs(t, repo.ConsumeResetToken(ctx, "a-1", "wrong", "h", now), common.ErrTokenInvalid)
	assert.ErrorIs(t, repo.ConsumeResetToken(ctx, "a-1", "d1", "h", now.Add(2*time.Hour)), common.ErrTokenInvalid)
	require.NoError(t, repo.ConsumeResetToken(ctx, "a-1", "d1", "h", now))
	assert.ErrorIs(t, repo.ConsumeResetToken(ctx, "a-1", "d1", "h", now), common.ErrTokenInvalid, "second use")

	got, err = repo.GetByID(ctx, "a-1")
	require.NoError(t, err)
	assert.Equal(t, "h", got.PasswordHash)
	assert.False(t, got.HasPendingReset())

	_, err = repo.GetByResetTokenHash(ctx, "")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestAccounts_ConfirmVerification(t *testing.T) {
	s := NewStore()
	seedAccount(t, s, "a-1", "jane@x.io")
	repo := s.Accounts()
	ctx := context.Background()

	require.NoError(t, repo.SetVerificationToken(ctx, "a-1", "v1"))
	assert.ErrorIs(t, repo.ConfirmVerification(ctx, "a-1", "v2"), common.ErrTokenInvalid)
	require.NoError(t, repo.ConfirmVerification(ctx, "a-1", "v1"))
	assert.ErrorIs(t, repo.ConfirmVerification(ctx, "a-1", "v1"), common.ErrTokenInvalid)
	assert.ErrorIs(t, repo.ConfirmVerification(ctx, "nobody", "v1"), common.ErrTokenInvalid)

	a, err := repo.GetByID(ctx, "a-1")
	require.NoError(t, err)
	assert.True(t, a.IsVerified)
	assert.Empty(t, a.VerificationTokenHash)
}

func TestAccounts_DeleteCascadesPressKits(t *testing.T) {
	s := NewStore()
	seedAccount(t, s, "a-1", "jane@x.io")
	ctx := context.Background()
	_, err := s.PressKits().Create(ctx, newKit("k-1", "a-1", "midnight-echo"))
	require.NoError(t, err)

	require.NoError(t, s.Accounts().Delete(ctx, "a-1"))
	_, err = s.PressKits().GetByID(ctx, "k-1")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.ErrorIs(t, s.Accounts().Delete(ctx, "a-1"), common.ErrorNotFound)
}

func TestPressKits_SlugUniqueAndCount(t *testing.T) {
	s := NewStore()
	seedAccount(t, s, "a-1", "jane@x.io")
	repo := s.PressKits()
	ctx := context.Background()

	for i, sl := range []string{"midnight-echo", "midnight-echo-2", "midnight-echoes", "midnight-echo-x"} {
		_, err := repo.Create(ctx, newKit(string(rune('a'+i)), "a-1", sl))
		require.NoError(t, err)
	}

	_, err := repo.Create(ctx, newKit("z", "a-1", "midnight-echo-2"))
	assert.True(t, common.IsDuplicateOn(err, "slug"))

	n, err := repo.CountSlugMatches(ctx, "midnight-echo", "")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = repo.CountSlugMatches(ctx, "midnight-echo", "a")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.True(t, common.IsDuplicateOn(repo.UpdateTitle(ctx, "a", "t", "midnight-echoes", "u"), "slug"))
	require.NoError(t, repo.UpdateTitle(ctx, "a", "t", "midnight-echo", "u"), "own slug is not a conflict")
}

func TestPressKits_CreateRequiresOwner(t *testing.T) {
	s := NewStore()
	_, err := s.PressKits().Create(context.Background(), newKit("k-1", "ghost", "x"))
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestPressKits_ConcurrentIncrements(t *testing.T) {
	s := NewStore()
	seedAccount(t, s, "a-1", "jane@x.io")
	repo := s.PressKits()
	ctx := context.Background()
	_, err := repo.Create(ctx, newKit("k-1", "a-1", "x"))
	require.NoError(t, err)

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, _ = repo.IncrementViewCount(ctx, "k-1")
		}()
	}
	wg.Wait()

	k, err := repo.GetByID(ctx, "k-1")
	require.NoError(t, err)
	assert.Equal(t, int64(workers), k.ViewCount)

	_, err = repo.IncrementViewCount(ctx, "nope")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestPressKits_StoredSectionsAreIsolated(t *testing.T) {
	s := NewStore()
	seedAccount(t, s, "a-1", "jane@x.io")
	repo := s.PressKits()
	ctx := context.Background()
	_, err := repo.Create(ctx, newKit("k-1", "a-1", "x"))
	require.NoError(t, err)

	sections := []models.Section{{ID: "s1", Type: models.SectionBio, Title: "About", Content: []byte(`{"a":1}`), IsVisible: true}}
	require.NoError(t, repo.UpdateSections(ctx, "k-1", sections))
	sections[0].Title = "changed"

	k, err := repo.GetByID(ctx, "k-1")
	require.NoError(t, err)
	assert.Equal(t, "About", k.Sections[0].Title)
}

func TestPressKits_ListByOwnerNewestFirst(t *testing.T) {
	s := NewStore()
	seedAccount(t, s, "a-1", "jane@x.io")
	seedAccount(t, s, "a-2", "john@x.io")
	repo := s.PressKits()
	ctx := context.Background()

	_, err := repo.Create(ctx, newKit("k-1", "a-1", "one"))
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	_, err = repo.Create(ctx, newKit("k-2", "a-1", "two"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newKit("k-3", "a-2", "three"))
	require.NoError(t, err)

	kits, err := repo.ListByOwner(ctx, "a-1")
	require.NoError(t, err)
	require.Len(t, kits, 2)
	assert.Equal(t, "k-2", kits[0].ID)

	none, err := repo.ListByOwner(ctx, "a-3")
	require.NoError(t, err)
	assert.Empty(t, none)
}
