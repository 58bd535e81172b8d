package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_DisplayName(t *testing.T) {
	a := &Account{FirstName: "Nina", LastName: "Simone"}
	assert.Equal(t, "Nina Simone", a.DisplayName())

	a.ArtistName = "The High Priestess"
	assert.Equal(t, "The High Priestess", a.DisplayName())
}

func TestAccount_ViewOmitsSecrets(t *testing.T) {
	expires := time.Now().Add(time.Hour)
	a := &Account{
		ID:                    "acc-1",
		Email:                 "nina@example.com",
		PasswordHash:          "$2a$10$hashhashhashhashhashhash",
		FirstName:             "Nina",
		LastName:              "Simone",
		ResetTokenHash:        "reset-digest-value",
		ResetTokenExpiresAt:   &expires,
		VerificationTokenHash: "verify-digest-value",
	}

	for _, v := range []any{a.View(), a} {
		b, err := json.Marshal(v)
		require.NoError(t, err)
		out := string(b)

		assert.NotContains(t, out, a.PasswordHash)
		assert.NotContains(t, out, a.ResetTokenHash)
		assert.NotContains(t, out, a.VerificationTokenHash)

		var fields map[string]any
		require.NoError(t, json.Unmarshal(b, &fields))
		for _, k := range []string{"password", "passwordHash", "PasswordHash", "passwordResetToken", "passwordResetExpires", "verificationToken", "ResetTokenExpiresAt"} {
			assert.NotContains(t, fields, k)
		}
	}

	view := a.View()
	assert.Equal(t, "Nina Simone", view.DisplayName)
	assert.Equal(t, "nina@example.com", view.Email)
}

func TestAccount_HasPendingReset(t *testing.T) {
	a := &Account{}
	assert.False(t, a.HasPendingReset())

	exp := time.Now()
	a.ResetTokenHash, a.ResetTokenExpiresAt = "d", &exp
	assert.True(t, a.HasPendingReset())
}

func TestSectionType_Valid(t *testing.T) {
	for _, st := range []SectionType{"bio", "photos", "music", "videos", "press", "contact", "tour", "discography"} {
		assert.True(t, st.Valid(), st)
	}
	for _, st := range []SectionType{"", "Bio", "merch", "links"} {
		assert.False(t, st.Valid(), st)
	}
}

func TestPressKit_CloneIsDeep(t *testing.T) {
	p := &PressKit{
		Sections:    []Section{{ID: "s1", Content: json.RawMessage(`{"text":"a"}`)}},
		SocialLinks: []SocialLink{{ID: "l1", Platform: "bandcamp"}},
	}
	c := p.Clone()
	c.Sections[0].Content[2] = 'X'
	c.SocialLinks[0].Platform = "other"

	assert.JSONEq(t, `{"text":"a"}`, string(p.Sections[0].Content))
	assert.Equal(t, "bandcamp", p.SocialLinks[0].Platform)
}

func TestPressKit_PublicView(t *testing.T) {
	p := &PressKit{Sections: []Section{
		{ID: "tour", Order: 2, IsVisible: true},
		{ID: "hidden", Order: 0, IsVisible: false},
		{ID: "bio", Order: 1, IsVisible: true},
		{ID: "press", Order: 1, IsVisible: true},
	}}

	v := p.PublicView()

	ids := make([]string, 0, len(v.Sections))
	for _, s := range v.Sections {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"bio", "press", "tour"}, ids)
	assert.Len(t, p.Sections, 4, "original untouched")
	assert.Equal(t, "tour", p.Sections[0].ID)
}

func TestDefaultCustomization(t *testing.T) {
	c := DefaultCustomization()
	assert.Equal(t, "#000000", c.PrimaryColor)
	assert.Equal(t, "#ffffff", c.SecondaryColor)
	assert.Equal(t, "Arial, sans-serif", c.FontFamily)
	assert.Empty(t, c.LogoURL)
}
