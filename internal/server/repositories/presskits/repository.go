package presskits

import (
	"context"

	"github.com/dmitrijs2005/presskit/internal/server/models"
)

// Repository persists press kits. A slug collision surfaces as a
// *common.DuplicateKeyError with Field "slug"; missing rows as
// common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, kit *models.PressKit) (*models.PressKit, error)
	GetByID(ctx context.Context, id string) (*models.PressKit, error)
	GetByIDForUpdate(ctx context.Context, id string) (*models.PressKit, error)
	GetBySlug(ctx context.Context, slug string) (*models.PressKit, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.PressKit, error)

	// CountSlugMatches counts kits whose slug is base or base-<digits>,
	// ignoring the kit with id excludeID (empty excludes nothing).
	CountSlugMatches(ctx context.Context, base, excludeID string) (int, error)

	UpdateTitle(ctx context.Context, id, title, slug, shareableURL string) error
	UpdateSections(ctx context.Context, id string, sections []models.Section) error
	UpdateSocialLinks(ctx context.Context, id string, links []models.SocialLink) error
	UpdateCustomization(ctx context.Context, id string, c models.Customization) error
	SetPublished(ctx context.Context, id string, published bool) error
	// IncrementViewCount adds one in a single atomic step and returns the new count.
	IncrementViewCount(ctx context.Context, id string) (int64, error)
	Delete(ctx context.Context, id string) error
}
