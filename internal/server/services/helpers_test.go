package services

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/presskit/internal/common"
	"github.com/dmitrijs2005/presskit/internal/dbx"
	"github.com/dmitrijs2005/presskit/internal/logging"
	"github.com/dmitrijs2005/presskit/internal/server/config"
	"github.com/dmitrijs2005/presskit/internal/server/credential"
	"github.com/dmitrijs2005/presskit/internal/server/metrics"
	"github.com/dmitrijs2005/presskit/internal/server/models"
	"github.com/dmitrijs2005/presskit/internal/server/repositories/presskits"
	"github.com/dmitrijs2005/presskit/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "correct horse battery"

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                   "test-secret",
		AccessTokenValidityDuration: time.Minute,
		ResetTokenValidityDuration:  time.Hour,
		PublicBaseURL:               "https://presskit.example/",
		S3Region:                    "us-east-1",
		S3RootUser:                  "minioadmin",
		S3RootPassword:              "minioadmin",
		S3BaseEndpoint:              "http://127.0.0.1:9000",
		S3Bucket:                    "presskit-media",
	}
}

// countingRecorder counts slug retries, conflicts, views and failed logins;
// everything else is dropped.
type countingRecorder struct {
	metrics.Nop
	retries      atomic.Int64
	conflicts    atomic.Int64
	views        atomic.Int64
	failedLogins atomic.Int64
}

func (r *countingRecorder) RecordSlugRetry()    { r.retries.Add(1) }
func (r *countingRecorder) RecordSlugConflict() { r.conflicts.Add(1) }
func (r *countingRecorder) RecordView()         { r.views.Add(1) }

func (r *countingRecorder) RecordLogin(success bool) {
	if !success {
		r.failedLogins.Add(1)
	}
}

type fixture struct {
	manager  repomanager.RepositoryManager
	accounts *AccountService
	kits     *PressKitService
	rec      *countingRecorder
}

func newFixtureWith(t *testing.T, m repomanager.RepositoryManager) *fixture {
	t.Helper()
	cfg := testConfig()
	rec := &countingRecorder{}
	hasher := credential.NewHasher(bcrypt.MinCost, 4)
	return &fixture{
		manager:  m,
		accounts: NewAccountService(m, hasher, cfg, logging.Nop{}, rec),
		kits:     NewPressKitService(m, cfg, logging.Nop{}, rec),
		rec:      rec,
	}
}

func newFixture(t *testing.T) *fixture {
	return newFixtureWith(t, repomanager.NewMemoryRepositoryManager())
}

func (f *fixture) register(t *testing.T, email string) *models.Account {
	t.Helper()
	a, err := f.accounts.CreateAccount(context.Background(), RegisterInput{
		Email: email, Password: testPassword, FirstName: "Jane", LastName: "Doe",
	})
	require.NoError(t, err)
	return a
}

func (f *fixture) verify(t *testing.T, a *models.Account, candidate string) bool {
	t.Helper()
	ok, err := f.accounts.VerifyCredential(context.Background(), a, candidate)
	require.NoError(t, err)
	return ok
}

func (f *fixture) createKit(t *testing.T, ownerID, title string) *models.PressKit {
	t.Helper()
	k, err := f.kits.Create(context.Background(), ownerID, CreatePressKitInput{Title: title})
	require.NoError(t, err)
	return k
}

// racyManager wraps a real manager and makes the first failCreates kit
// writes fail as if another writer had just taken the slug.
type racyManager struct {
	repomanager.RepositoryManager
	failWrites int64
	writes     atomic.Int64
}

func (m *racyManager) PressKits(db dbx.DBTX) presskits.Repository {
	return &racyRepo{Repository: m.RepositoryManager.PressKits(db), m: m}
}

type racyRepo struct {
	presskits.Repository
	m *racyManager
}

func (r *racyRepo) fail() bool {
	return r.m.writes.Add(1) <= r.m.failWrites
}

func (r *racyRepo) Create(ctx context.Context, k *models.PressKit) (*models.PressKit, error) {
	if r.fail() {
		return nil, &common.DuplicateKeyError{Field: "slug"}
	}
	return r.Repository.Create(ctx, k)
}

func (r *racyRepo) UpdateTitle(ctx context.Context, id, title, s, u string) error {
	if r.fail() {
		return &common.DuplicateKeyError{Field: "slug"}
	}
	return r.Repository.UpdateTitle(ctx, id, title, s, u)
}
