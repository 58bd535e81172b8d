package memory

import (
	"context"
	"sort"
	"time"

	"github.com/dmitrijs2005/presskit/internal/common"
	"github.com/dmitrijs2005/presskit/internal/server/models"
	"github.com/dmitrijs2005/presskit/internal/server/slug"
)

type PressKitRepository struct {
	s *Store
}

// slugTaken reports whether another kit already holds candidate; callers
// must hold the lock.
func (r *PressKitRepository) slugTaken(candidate, selfID string) bool {
	for id, k := range r.s.kits {
		if id != selfID && k.Slug == candidate {
			return true
		}
	}
	return false
}

func (r *PressKitRepository) update(id string, fn func(*models.PressKit) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	k, ok := r.s.kits[id]
	if !ok {
		return common.ErrorNotFound
	}
	return fn(k)
}

func (r *PressKitRepository) Create(_ context.Context, p *models.PressKit) (*models.PressKit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.accounts[p.OwnerID]; !ok {
		return nil, common.ErrorNotFound
	}
	if _, ok := r.s.kits[p.ID]; ok {
		return nil, &common.DuplicateKeyError{Field: "id"}
	}
	if r.slugTaken(p.Slug, p.ID) {
		return nil, &common.DuplicateKeyError{Field: "slug"}
	}
	now := time.Now().UTC()
	p.CreatedAt, p.UpdatedAt = now, now
	p.ViewCount = 0
	if p.Sections == nil {
		p.Sections = []models.Section{}
	}
	if p.SocialLinks == nil {
		p.SocialLinks = []models.SocialLink{}
	}
	r.s.kits[p.ID] = p.Clone()
	return p, nil
}

func (r *PressKitRepository) GetByID(_ context.Context, id string) (*models.PressKit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	k, ok := r.s.kits[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return k.Clone(), nil
}

func (r *PressKitRepository) GetByIDForUpdate(ctx context.Context, id string) (*models.PressKit, error) {
	return r.GetByID(ctx, id)
}

func (r *PressKitRepository) GetBySlug(_ context.Context, s string) (*models.PressKit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, k := range r.s.kits {
		if k.Slug == s {
			return k.Clone(), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *PressKitRepository) ListByOwner(_ context.Context, ownerID string) ([]*models.PressKit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	result := make([]*models.PressKit, 0)
	for _, k := range r.s.kits {
		if k.OwnerID == ownerID {
			result = append(result, k.Clone())
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *PressKitRepository) CountSlugMatches(_ context.Context, base, excludeID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for id, k := range r.s.kits {
		if id != excludeID && slug.Matches(base, k.Slug) {
			n++
		}
	}
	return n, nil
}

func (r *PressKitRepository) UpdateTitle(_ context.Context, id, title, newSlug, shareableURL string) error {
	return r.update(id, func(k *models.PressKit) error {
		if r.slugTaken(newSlug, id) {
			return &common.DuplicateKeyError{Field: "slug"}
		}
		k.Title = title
		k.Slug = newSlug
		k.ShareableURL = shareableURL
		k.UpdatedAt = time.Now().UTC()
		return nil
	})
}

func (r *PressKitRepository) UpdateSections(_ context.Context, id string, sections []models.Section) error {
	return r.update(id, func(k *models.PressKit) error {
		tmp := models.PressKit{Sections: sections}
		k.Sections = tmp.Clone().Sections
		k.UpdatedAt = time.Now().UTC()
		return nil
	})
}

func (r *PressKitRepository) UpdateSocialLinks(_ context.Context, id string, links []models.SocialLink) error {
	return r.update(id, func(k *models.PressKit) error {
		k.SocialLinks = append(make([]models.SocialLink, 0, len(links)), links...)
		k.UpdatedAt = time.Now().UTC()
		return nil
	})
}

func (r *PressKitRepository) UpdateCustomization(_ context.Context, id string, c models.Customization) error {
	return r.update(id, func(k *models.PressKit) error {
		k.Customization = c
		k.UpdatedAt = time.Now().UTC()
		return nil
	})
}

func (r *PressKitRepository) SetPublished(_ context.Context, id string, published bool) error {
	return r.update(id, func(k *models.PressKit) error {
		k.IsPublished = published
		k.UpdatedAt = time.Now().UTC()
		return nil
	})
}

func (r *PressKitRepository) IncrementViewCount(_ context.Context, id string) (int64, error) {
	var count int64
	err := r.update(id, func(k *models.PressKit) error {
		k.ViewCount++
		count = k.ViewCount
		return nil
	})
	return count, err
}

func (r *PressKitRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.kits[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.s.kits, id)
	return nil
}
