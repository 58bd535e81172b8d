package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/presskit/internal/common"
	"github.com/dmitrijs2005/presskit/internal/dbx"
	"github.com/dmitrijs2005/presskit/internal/logging"
	"github.com/dmitrijs2005/presskit/internal/server/config"
	"github.com/dmitrijs2005/presskit/internal/server/metrics"
	"github.com/dmitrijs2005/presskit/internal/server/models"
	"github.com/dmitrijs2005/presskit/internal/server/repositories/presskits"
	"github.com/dmitrijs2005/presskit/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/presskit/internal/server/slug"
	"github.com/google/uuid"
)

// maxSlugRetries bounds how often a slug write is retried after losing a
// race on the unique constraint.
const maxSlugRetries = 1

// CreatePressKitInput carries the fields accepted when a press kit is created.
// Everything but Title is optional.
type CreatePressKitInput struct {
	Title         string
	Template      string
	Customization *CustomizationInput
	Sections      []SectionInput
	SocialLinks   []SocialLinkInput
}

type PressKitService struct {
	repomanager   repomanager.RepositoryManager
	publicBaseURL string
	log           logging.Logger
	metrics       metrics.Recorder
}

func NewPressKitService(m repomanager.RepositoryManager, cfg *config.Config, log logging.Logger, rec metrics.Recorder) *PressKitService {
	return &PressKitService{
		repomanager:   m,
		publicBaseURL: cfg.PublicBaseURL,
		log:           log,
		metrics:       rec,
	}
}

func (s *PressKitService) repo() presskits.Repository {
	return s.repomanager.PressKits(s.repomanager.Conn())
}

// Create stores a new press kit for ownerID with a unique slug derived from
// the title and a shareable URL built from that slug.
func (s *PressKitService) Create(ctx context.Context, ownerID string, in CreatePressKitInput) (*models.PressKit, error) {
	if !validID(ownerID) {
		return nil, common.ErrorForbidden
	}
	title, err := requiredText("title", in.Title)
	if err != nil {
		return nil, err
	}
	base := slug.Normalize(title)
	if base == "" {
		return nil, common.NewValidationError("title", "must contain a latin letter or digit")
	}

	template := strings.TrimSpace(in.Template)
	if template == "" {
		template = models.DefaultTemplate
	}
	custom := models.DefaultCustomization()
	if in.Customization != nil {
		if custom, err = applyCustomization(custom, *in.Customization); err != nil {
			return nil, err
		}
	}
	sections, err := buildSections(in.Sections)
	if err != nil {
		return nil, err
	}
	links, err := buildSocialLinks(in.SocialLinks)
	if err != nil {
		return nil, err
	}

	kit := &models.PressKit{
		ID:            uuid.NewString(),
		OwnerID:       ownerID,
		Title:         title,
		Template:      template,
		Customization: custom,
		Sections:      sections,
		SocialLinks:   links,
	}

	repo := s.repo()
	assigned, err := s.writeWithSlug(ctx, repo, base, kit.ID, func(candidate string) error {
		kit.Slug = candidate
		kit.ShareableURL = slug.URL(s.publicBaseURL, candidate)
		_, err := repo.Create(ctx, kit)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "press kit created", "press_kit_id", kit.ID, "owner_id", ownerID, "slug", assigned)
	return kit, nil
}

// writeWithSlug counts the kits already using base (ignoring selfID), picks
// the next slug and hands it to write. When write loses a race on the slug
// constraint it recounts and tries once more; if the recount lands on the
// candidate that just failed, the next suffix is used instead.
func (s *PressKitService) writeWithSlug(ctx context.Context, repo presskits.Repository, base, selfID string,
	write func(candidate string) error) (string, error) {

	var last string
	for attempt := 0; ; attempt++ {
		count, err := repo.CountSlugMatches(ctx, base, selfID)
		if err != nil {
			return "", fmt.Errorf("error counting slugs: %w", err)
		}
		candidate := slug.WithCount(base, count)
		if candidate == last {
			candidate = slug.WithCount(base, count+1)
		}

		err = write(candidate)
		if err == nil {
			return candidate, nil
		}
		if !common.IsDuplicateOn(err, "slug") {
			return "", err
		}
		if attempt >= maxSlugRetries {
			s.metrics.RecordSlugConflict()
			s.log.Warn(ctx, "slug conflict persisted after retry", "slug", candidate)
			return "", common.ErrSlugConflict
		}
		s.metrics.RecordSlugRetry()
		s.log.Warn(ctx, "slug taken concurrently, retrying", "slug", candidate)
		last = candidate
	}
}

// owned loads the kit and checks it belongs to ownerID.
func (s *PressKitService) owned(ctx context.Context, repo presskits.Repository, ownerID, id string, forUpdate bool) (*models.PressKit, error) {
	if !validID(id) {
		return nil, common.ErrorNotFound
	}
	var (
		kit *models.PressKit
		err error
	)
	if forUpdate {
		kit, err = repo.GetByIDForUpdate(ctx, id)
	} else {
		kit, err = repo.GetByID(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	if kit.OwnerID != ownerID {
		return nil, common.ErrorForbidden
	}
	return kit, nil
}

// Rename changes the title. The slug is recomputed only when the trimmed
// title differs; the shareable URL is never overwritten once set.
func (s *PressKitService) Rename(ctx context.Context, ownerID, id, newTitle string) (*models.PressKit, error) {
	title, err := requiredText("title", newTitle)
	if err != nil {
		return nil, err
	}
	repo := s.repo()
	kit, err := s.owned(ctx, repo, ownerID, id, false)
	if err != nil {
		return nil, err
	}
	if title == kit.Title {
		return kit, nil
	}
	base := slug.Normalize(title)
	if base == "" {
		return nil, common.NewValidationError("title", "must contain a latin letter or digit")
	}

	shareable := kit.ShareableURL
	newSlug, err := s.writeWithSlug(ctx, repo, base, kit.ID, func(candidate string) error {
		url := shareable
		if url == "" {
			url = slug.URL(s.publicBaseURL, candidate)
		}
		if err := repo.UpdateTitle(ctx, kit.ID, title, candidate, url); err != nil {
			return err
		}
		kit.ShareableURL = url
		return nil
	})
	if err != nil {
		return nil, err
	}

	if newSlug != kit.Slug {
		s.log.Info(ctx, "press kit slug changed", "press_kit_id", kit.ID, "from", kit.Slug, "to", newSlug)
	}
	kit.Title = title
	kit.Slug = newSlug
	return kit, nil
}

// SetSections replaces the kit's sections.
func (s *PressKitService) SetSections(ctx context.Context, ownerID, id string, in []SectionInput) (*models.PressKit, error) {
	sections, err := buildSections(in)
	if err != nil {
		return nil, err
	}
	repo := s.repo()
	kit, err := s.owned(ctx, repo, ownerID, id, false)
	if err != nil {
		return nil, err
	}
	if err := repo.UpdateSections(ctx, kit.ID, sections); err != nil {
		return nil, err
	}
	kit.Sections = sections
	return kit, nil
}

// SetSocialLinks replaces the kit's social links.
func (s *PressKitService) SetSocialLinks(ctx context.Context, ownerID, id string, in []SocialLinkInput) (*models.PressKit, error) {
	links, err := buildSocialLinks(in)
	if err != nil {
		return nil, err
	}
	repo := s.repo()
	kit, err := s.owned(ctx, repo, ownerID, id, false)
	if err != nil {
		return nil, err
	}
	if err := repo.UpdateSocialLinks(ctx, kit.ID, links); err != nil {
		return nil, err
	}
	kit.SocialLinks = links
	return kit, nil
}

// SetCustomization applies a partial customization under a row lock.
func (s *PressKitService) SetCustomization(ctx context.Context, ownerID, id string, in CustomizationInput) (*models.PressKit, error) {
	var updated *models.PressKit
	err := s.repomanager.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.PressKits(tx)
		kit, err := s.owned(ctx, repo, ownerID, id, true)
		if err != nil {
			return err
		}
		custom, err := applyCustomization(kit.Customization, in)
		if err != nil {
			return err
		}
		if err := repo.UpdateCustomization(ctx, kit.ID, custom); err != nil {
			return err
		}
		kit.Customization = custom
		updated = kit
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *PressKitService) setPublished(ctx context.Context, ownerID, id string, published bool) (*models.PressKit, error) {
	repo := s.repo()
	kit, err := s.owned(ctx, repo, ownerID, id, false)
	if err != nil {
		return nil, err
	}
	if err := repo.SetPublished(ctx, kit.ID, published); err != nil {
		return nil, err
	}
	kit.IsPublished = published
	s.log.Info(ctx, "press kit publish state changed", "press_kit_id", kit.ID, "published", published)
	return kit, nil
}

func (s *PressKitService) Publish(ctx context.Context, ownerID, id string) (*models.PressKit, error) {
	return s.setPublished(ctx, ownerID, id, true)
}

func (s *PressKitService) Unpublish(ctx context.Context, ownerID, id string) (*models.PressKit, error) {
	return s.setPublished(ctx, ownerID, id, false)
}

// RecordView adds exactly one view and returns the new total.
func (s *PressKitService) RecordView(ctx context.Context, id string) (int64, error) {
	if !validID(id) {
		return 0, common.ErrorNotFound
	}
	count, err := s.repo().IncrementViewCount(ctx, id)
	if err != nil {
		return 0, err
	}
	s.metrics.RecordView()
	return count, nil
}

func (s *PressKitService) Get(ctx context.Context, ownerID, id string) (*models.PressKit, error) {
	return s.owned(ctx, s.repo(), ownerID, id, false)
}

// ListByOwner returns the owner's kits, newest first.
func (s *PressKitService) ListByOwner(ctx context.Context, ownerID string) ([]*models.PressKit, error) {
	if !validID(ownerID) {
		return []*models.PressKit{}, nil
	}
	return s.repo().ListByOwner(ctx, ownerID)
}

// GetPublished returns the public view of a published kit. Unpublished kits
// are reported as not found.
func (s *PressKitService) GetPublished(ctx context.Context, kitSlug string) (*models.PressKit, error) {
	kitSlug = strings.ToLower(strings.TrimSpace(kitSlug))
	if kitSlug == "" {
		return nil, common.ErrorNotFound
	}
	kit, err := s.repo().GetBySlug(ctx, kitSlug)
	if err != nil {
		return nil, err
	}
	if !kit.IsPublished {
		return nil, common.ErrorNotFound
	}
	return kit.PublicView(), nil
}

func (s *PressKitService) Delete(ctx context.Context, ownerID, id string) error {
	repo := s.repo()
	kit, err := s.owned(ctx, repo, ownerID, id, false)
	if err != nil {
		return err
	}
	if err := repo.Delete(ctx, kit.ID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		return fmt.Errorf("error deleting press kit: %w", err)
	}
	s.log.Info(ctx, "press kit deleted", "press_kit_id", kit.ID)
	return nil
}
