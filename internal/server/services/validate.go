package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/presskit/internal/common"
	"github.com/dmitrijs2005/presskit/internal/server/credential"
	"github.com/dmitrijs2005/presskit/internal/server/models"
	"github.com/google/uuid"
)

// MaxBioLength is the bio limit in characters.
const MaxBioLength = 5000

var (
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	colorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

func normalizeEmail(email string) (string, error) {
	e := strings.ToLower(strings.TrimSpace(email))
	if e == "" {
		return "", common.NewValidationError("email", "is required")
	}
	if !emailPattern.MatchString(e) {
		return "", common.NewValidationError("email", "is not a valid address")
	}
	return e, nil
}

func requiredText(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", common.NewValidationError(field, "is required")
	}
	return v, nil
}

func validateBio(bio string) (string, error) {
	bio = strings.TrimSpace(bio)
	if utf8.RuneCountInString(bio) > MaxBioLength {
		return "", common.NewValidationError("bio", fmt.Sprintf("must be at most %d characters", MaxBioLength))
	}
	return bio, nil
}

func validatePassword(password string) error {
	if utf8.RuneCountInString(password) < common.MinPasswordLength {
		return common.NewValidationError("password", fmt.Sprintf("must be at least %d characters", common.MinPasswordLength))
	}
	if len(password) > credential.MaxLength {
		return common.NewValidationError("password", fmt.Sprintf("must be at most %d bytes", credential.MaxLength))
	}
	return nil
}

func validColor(field, c string) (string, error) {
	c = strings.TrimSpace(c)
	if !colorPattern.MatchString(c) {
		return "", common.NewValidationError(field, "must be a #rgb or #rrggbb color")
	}
	return c, nil
}

func absoluteURL(field, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", common.NewValidationError(field, "is required")
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return "", common.NewValidationError(field, "must be an absolute URL")
	}
	return raw, nil
}

// validID reports whether id looks like a stored identifier; anything else
// can never match a row.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// SectionInput is a caller-supplied section. Nil IsVisible and Order take
// their defaults (true and 0); an empty ID gets a fresh one.
type SectionInput struct {
	ID        string          `json:"id,omitempty"`
	Type      string          `json:"type"`
	Title     string          `json:"title"`
	Content   json.RawMessage `json:"content"`
	IsVisible *bool           `json:"isVisible,omitempty"`
	Order     *int            `json:"order,omitempty"`
}

// SocialLinkInput is a caller-supplied social link.
type SocialLinkInput struct {
	ID       string `json:"id,omitempty"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// CustomizationInput is a partial customization; nil fields are left as they are.
type CustomizationInput struct {
	PrimaryColor   *string `json:"primaryColor,omitempty"`
	SecondaryColor *string `json:"secondaryColor,omitempty"`
	FontFamily     *string `json:"fontFamily,omitempty"`
	LogoURL        *string `json:"logoUrl,omitempty"`
}

func buildSections(in []SectionInput) ([]models.Section, error) {
	out := make([]models.Section, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for i, s := range in {
		field := fmt.Sprintf("sections[%d]", i)

		t := models.SectionType(strings.TrimSpace(s.Type))
		if !t.Valid() {
			return nil, common.NewValidationError(field+".type", fmt.Sprintf("unknown section type %q", s.Type))
		}
		title, err := requiredText(field+".title", s.Title)
		if err != nil {
			return nil, err
		}
		content := bytes.TrimSpace(s.Content)
		if len(content) == 0 || bytes.Equal(content, []byte("null")) {
			return nil, common.NewValidationError(field+".content", "is required")
		}
		if !json.Valid(content) {
			return nil, common.NewValidationError(field+".content", "must be valid JSON")
		}

		id := strings.TrimSpace(s.ID)
		if id == "" {
			id = uuid.NewString()
		}
		if _, dup := seen[id]; dup {
			return nil, common.NewValidationError(field+".id", "is duplicated")
		}
		seen[id] = struct{}{}

		section := models.Section{
			ID:        id,
			Type:      t,
			Title:     title,
			Content:   append(json.RawMessage(nil), content...),
			IsVisible: true,
		}
		if s.IsVisible != nil {
			section.IsVisible = *s.IsVisible
		}
		if s.Order != nil {
			section.Order = *s.Order
		}
		out = append(out, section)
	}
	return out, nil
}

func buildSocialLinks(in []SocialLinkInput) ([]models.SocialLink, error) {
	out := make([]models.SocialLink, 0, len(in))
	for i, l := range in {
		field := fmt.Sprintf("socialLinks[%d]", i)
		platform, err := requiredText(field+".platform", l.Platform)
		if err != nil {
			return nil, err
		}
		u, err := absoluteURL(field+".url", l.URL)
		if err != nil {
			return nil, err
		}
		id := strings.TrimSpace(l.ID)
		if id == "" {
			id = uuid.NewString()
		}
		out = append(out, models.SocialLink{ID: id, Platform: platform, URL: u})
	}
	return out, nil
}

// applyCustomization returns base with the non-nil fields of in applied.
func applyCustomization(base models.Customization, in CustomizationInput) (models.Customization, error) {
	var err error
	if in.PrimaryColor != nil {
		if base.PrimaryColor, err = validColor("customization.primaryColor", *in.PrimaryColor); err != nil {
			return base, err
		}
	}
	if in.SecondaryColor != nil {
		if base.SecondaryColor, err = validColor("customization.secondaryColor", *in.SecondaryColor); err != nil {
			return base, err
		}
	}
	if in.FontFamily != nil {
		if base.FontFamily, err = requiredText("customization.fontFamily", *in.FontFamily); err != nil {
			return base, err
		}
	}
	if in.LogoURL != nil {
		base.LogoURL = strings.TrimSpace(*in.LogoURL)
	}
	return base, nil
}
