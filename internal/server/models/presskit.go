// Package models defines server-side data models persisted in the database.
package models

import (
	"encoding/json"
	"sort"
	"time"
)

// SectionType is the closed set of content block kinds a press kit may hold.
type SectionType string

const (
	SectionBio         SectionType = "bio"
	SectionPhotos      SectionType = "photos"
	SectionMusic       SectionType = "music"
	SectionVideos      SectionType = "videos"
	SectionPress       SectionType = "press"
	SectionContact     SectionType = "contact"
	SectionTour        SectionType = "tour"
	SectionDiscography SectionType = "discography"
)

var sectionTypes = map[SectionType]struct{}{
	SectionBio: {}, SectionPhotos: {}, SectionMusic: {}, SectionVideos: {},
	SectionPress: {}, SectionContact: {}, SectionTour: {}, SectionDiscography: {},
}

// Valid reports whether t is one of the known section types.
func (t SectionType) Valid() bool {
	_, ok := sectionTypes[t]
	return ok
}

// Default press kit values.
const (
	DefaultTemplate       = "default"
	DefaultPrimaryColor   = "#000000"
	DefaultSecondaryColor = "#ffffff"
	DefaultFontFamily     = "Arial, sans-serif"
)

// Section is one typed content block. Content is an opaque JSON payload whose
// shape depends on Type; the server only checks that it is present and valid.
type Section struct {
	ID        string          `json:"id"`
	Type      SectionType     `json:"type"`
	Title     string          `json:"title"`
	Content   json.RawMessage `json:"content"`
	IsVisible bool            `json:"isVisible"`
	Order     int             `json:"order"`
}

// SocialLink is a platform label plus a URL.
type SocialLink struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// Customization holds the visual settings of a press kit.
type Customization struct {
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	FontFamily     string `json:"fontFamily"`
	LogoURL        string `json:"logoUrl,omitempty"`
}

// DefaultCustomization returns the customization a new press kit starts with.
func DefaultCustomization() Customization {
	return Customization{
		PrimaryColor:   DefaultPrimaryColor,
		SecondaryColor: DefaultSecondaryColor,
		FontFamily:     DefaultFontFamily,
	}
}

// PressKit is an artist profile page made of ordered sections.
type PressKit struct {
	ID            string        `json:"id"`
	OwnerID       string        `json:"userId"`
	Title         string        `json:"title"`
	Slug          string        `json:"slug"`
	Template      string        `json:"template"`
	IsPublished   bool          `json:"isPublished"`
	Customization Customization `json:"customization"`
	Sections      []Section     `json:"sections"`
	SocialLinks   []SocialLink  `json:"socialLinks"`
	ViewCount     int64         `json:"viewCount"`
	ShareableURL  string        `json:"shareableUrl,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// Clone returns a deep copy; repositories hand out clones so callers cannot
// mutate stored state through shared slices.
func (p *PressKit) Clone() *PressKit {
	c := *p
	c.Sections = make([]Section, len(p.Sections))
	for i, s := range p.Sections {
		s.Content = append(json.RawMessage(nil), s.Content...)
		c.Sections[i] = s
	}
	c.SocialLinks = append(make([]SocialLink, 0, len(p.SocialLinks)), p.SocialLinks...)
	return &c
}

// PublicView is what a visitor sees: visible sections only, ordered by Order
// (ties keep their stored position).
func (p *PressKit) PublicView() *PressKit {
	c := p.Clone()
	visible := c.Sections[:0]
	for _, s := range c.Sections {
		if s.IsVisible {
			visible = append(visible, s)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool { return visible[i].Order < visible[j].Order })
	c.Sections = visible
	return c
}
