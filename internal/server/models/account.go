package models

import (
	"strings"
	"time"
)

// Account is the persisted identity record. Secret-bearing fields carry
// json:"-" so an accidental direct encode never leaks them; external callers
// should still go through AccountView.
type Account struct {
	ID                    string     `json:"id"`
	Email                 string     `json:"email"`
	PasswordHash          string     `json:"-"`
	FirstName             string     `json:"firstName"`
	LastName              string     `json:"lastName"`
	ArtistName            string     `json:"artistName,omitempty"`
	Bio                   string     `json:"bio,omitempty"`
	ProfileImageURL       string     `json:"profileImageUrl,omitempty"`
	ResetTokenHash        string     `json:"-"`
	ResetTokenExpiresAt   *time.Time `json:"-"`
	VerificationTokenHash string     `json:"-"`
	IsVerified            bool       `json:"isVerified"`
	LastLoginAt           *time.Time `json:"lastLogin,omitempty"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

// FullName returns "first last".
func (a *Account) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// DisplayName is the artist name when set, otherwise the full name.
func (a *Account) DisplayName() string {
	if a.ArtistName != "" {
		return a.ArtistName
	}
	return a.FullName()
}

// HasPendingReset reports whether a reset token has been issued and not yet
// consumed or cleared.
func (a *Account) HasPendingReset() bool {
	return a.ResetTokenHash != "" && a.ResetTokenExpiresAt != nil
}

// AccountView is the external-safe projection of an Account. It has no
// fields for the password hash, reset token, reset expiry or verification
// token.
type AccountView struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	ArtistName      string     `json:"artistName,omitempty"`
	DisplayName     string     `json:"displayName"`
	Bio             string     `json:"bio,omitempty"`
	ProfileImageURL string     `json:"profileImageUrl,omitempty"`
	IsVerified      bool       `json:"isVerified"`
	LastLoginAt     *time.Time `json:"lastLogin,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// View projects the account for callers outside the identity store.
func (a *Account) View() AccountView {
	return AccountView{
		ID:              a.ID,
		Email:           a.Email,
		FirstName:       a.FirstName,
		LastName:        a.LastName,
		ArtistName:      a.ArtistName,
		DisplayName:     a.DisplayName(),
		Bio:             a.Bio,
		ProfileImageURL: a.ProfileImageURL,
		IsVerified:      a.IsVerified,
		LastLoginAt:     a.LastLoginAt,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}
