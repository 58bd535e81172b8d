// Package credential hashes and verifies account passwords with bcrypt.
package credential

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// ErrTooLong is returned for plaintexts longer than bcrypt can hash.
var ErrTooLong = errors.New("password longer than 72 bytes")

// MaxLength is bcrypt's input limit in bytes.
const MaxLength = 72

// Hasher hashes passwords with a salted bcrypt hash. Hash calls are CPU heavy,
// so at most N run at once; waiting callers give up when their context ends.
type Hasher struct {
	cost int
	sem  *semaphore.Weighted

	// dummy is compared against when no account matches a login, so unknown
	// emails cost the same as wrong passwords.
	dummy []byte
}

// NewHasher returns a Hasher with the given bcrypt cost (clamped to bcrypt's
// valid range) allowing concurrency parallel hashes (GOMAXPROCS when <= 0).
func NewHasher(cost, concurrency int) *Hasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}
	h := &Hasher{cost: cost, sem: semaphore.NewWeighted(int64(concurrency))}
	h.dummy, _ = bcrypt.GenerateFromPassword([]byte("presskit-dummy-credential"), cost)
	return h
}

// Cost returns the bcrypt cost new hashes are produced with.
func (h *Hasher) Cost() int { return h.cost }

// Hash returns the bcrypt hash of plaintext.
func (h *Hasher) Hash(ctx context.Context, plaintext string) (string, error) {
	if len(plaintext) > MaxLength {
		return "", ErrTooLong
	}
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer h.sem.Release(1)

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Compare reports whether candidate matches hash. bcrypt compares in constant
// time; an empty or malformed hash never matches. The error is non-nil only
// when ctx ends while waiting for a hashing slot.
func (h *Hasher) Compare(ctx context.Context, hash, candidate string) (bool, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return false, err
	}
	defer h.sem.Release(1)

	if hash == "" {
		_ = bcrypt.CompareHashAndPassword(h.dummy, []byte(candidate))
		return false, nil
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil, nil
}

// CompareDummy burns one comparison against a throwaway hash.
func (h *Hasher) CompareDummy(ctx context.Context, candidate string) error {
	_, err := h.Compare(ctx, "", candidate)
	return err
}
