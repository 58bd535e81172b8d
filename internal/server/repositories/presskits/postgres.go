// Package presskits stores press kits in PostgreSQL. Sections, social links
// and customization are kept as JSONB columns on the press_kits row.
package presskits

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/presskit/internal/common"
	"github.com/dmitrijs2005/presskit/internal/dbx"
	"github.com/dmitrijs2005/presskit/internal/server/models"
	"github.com/dmitrijs2005/presskit/internal/server/slug"
)

const slugConstraint = "press_kits_slug_unique"

const selectColumns = `id, owner_id, title, slug, template, is_published, customization,
		        sections, social_links, view_count, shareable_url, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPressKit(row rowScanner) (*models.PressKit, error) {
	var (
		p                            models.PressKit
		custom, sections, socialLink []byte
	)
	err := row.Scan(&p.ID, &p.OwnerID, &p.Title, &p.Slug, &p.Template, &p.IsPublished, &custom,
		&sections, &socialLink, &p.ViewCount, &p.ShareableURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	p.Customization = models.DefaultCustomization()
	if err := unmarshalColumn(custom, &p.Customization); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(sections, &p.Sections); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(socialLink, &p.SocialLinks); err != nil {
		return nil, err
	}
	if p.Sections == nil {
		p.Sections = []models.Section{}
	}
	if p.SocialLinks == nil {
		p.SocialLinks = []models.SocialLink{}
	}
	return &p, nil
}

func unmarshalColumn(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode jsonb column: %w", err)
	}
	return nil
}

func marshalColumn(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode jsonb column: %w", err)
	}
	return string(b), nil
}

func translate(err error) error {
	if name, ok := dbx.UniqueViolation(err); ok && name == slugConstraint {
		return &common.DuplicateKeyError{Field: "slug", Err: err}
	}
	if dbx.ForeignKeyViolation(err) {
		return fmt.Errorf("owner: %w", common.ErrorNotFound)
	}
	return fmt.Errorf("db error: %w", err)
}

func (r *PostgresRepository) execOne(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return translate(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.PressKit) (*models.PressKit, error) {
	custom, err := marshalColumn(p.Customization)
	if err != nil {
		return nil, err
	}
	sections, err := marshalColumn(nonNilSections(p.Sections))
	if err != nil {
		return nil, err
	}
	links, err := marshalColumn(nonNilLinks(p.SocialLinks))
	if err != nil {
		return nil, err
	}

	query :=
		`INSERT INTO press_kits (id, owner_id, title, slug, template, is_published,
		                         customization, sections, social_links, shareable_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb, $8::jsonb, $9::jsonb, $10)
		 RETURNING view_count, created_at, updated_at`

	err = r.db.QueryRowContext(ctx, query,
		p.ID, p.OwnerID, p.Title, p.Slug, p.Template, p.IsPublished,
		custom, sections, links, p.ShareableURL,
	).Scan(&p.ViewCount, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return p, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.PressKit, error) {
	query := `SELECT ` + selectColumns + `
		 FROM press_kits WHERE id = $1`
	return scanPressKit(r.db.QueryRowContext(ctx, query, id))
}

// GetByIDForUpdate locks the row for the rest of the surrounding transaction.
func (r *PostgresRepository) GetByIDForUpdate(ctx context.Context, id string) (*models.PressKit, error) {
	query := `SELECT ` + selectColumns + `
		 FROM press_kits WHERE id = $1 FOR UPDATE`
	return scanPressKit(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) GetBySlug(ctx context.Context, slug string) (*models.PressKit, error) {
	query := `SELECT ` + selectColumns + `
		 FROM press_kits WHERE slug = $1`
	return scanPressKit(r.db.QueryRowContext(ctx, query, slug))
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.PressKit, error) {
	query := `SELECT ` + selectColumns + `
		 FROM press_kits WHERE owner_id = $1
		 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.PressKit, 0)
	for rows.Next() {
		p, err := scanPressKit(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) CountSlugMatches(ctx context.Context, base, excludeID string) (int, error) {
	var (
		count int
		err   error
	)
	if excludeID == "" {
		query := `SELECT COUNT(*) FROM press_kits WHERE slug ~ $1`
		err = r.db.QueryRowContext(ctx, query, slug.Pattern(base)).Scan(&count)
	} else {
		query := `SELECT COUNT(*) FROM press_kits WHERE slug ~ $1 AND id <> $2`
		err = r.db.QueryRowContext(ctx, query, slug.Pattern(base), excludeID).Scan(&count)
	}
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return count, nil
}

func (r *PostgresRepository) UpdateTitle(ctx context.Context, id, title, slug, shareableURL string) error {
	query :=
		`UPDATE press_kits
		 SET title = $2, slug = $3, shareable_url = $4, updated_at = now()
		 WHERE id = $1`
	return r.execOne(ctx, query, id, title, slug, shareableURL)
}

func (r *PostgresRepository) UpdateSections(ctx context.Context, id string, sections []models.Section) error {
	data, err := marshalColumn(nonNilSections(sections))
	if err != nil {
		return err
	}
	query := `UPDATE press_kits SET sections = $2::jsonb, updated_at = now() WHERE id = $1`
	return r.execOne(ctx, query, id, data)
}

func (r *PostgresRepository) UpdateSocialLinks(ctx context.Context, id string, links []models.SocialLink) error {
	data, err := marshalColumn(nonNilLinks(links))
	if err != nil {
		return err
	}
	query := `UPDATE press_kits SET social_links = $2::jsonb, updated_at = now() WHERE id = $1`
	return r.execOne(ctx, query, id, data)
}

func (r *PostgresRepository) UpdateCustomization(ctx context.Context, id string, c models.Customization) error {
	data, err := marshalColumn(c)
	if err != nil {
		return err
	}
	query := `UPDATE press_kits SET customization = $2::jsonb, updated_at = now() WHERE id = $1`
	return r.execOne(ctx, query, id, data)
}

func (r *PostgresRepository) SetPublished(ctx context.Context, id string, published bool) error {
	query := `UPDATE press_kits SET is_published = $2, updated_at = now() WHERE id = $1`
	return r.execOne(ctx, query, id, published)
}

func (r *PostgresRepository) IncrementViewCount(ctx context.Context, id string) (int64, error) {
	query :=
		`UPDATE press_kits SET view_count = view_count + 1
		 WHERE id = $1
		 RETURNING view_count`

	var count int64
	err := r.db.QueryRowContext(ctx, query, id).Scan(&count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return count, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	return r.execOne(ctx, `DELETE FROM press_kits WHERE id = $1`, id)
}

func nonNilSections(s []models.Section) []models.Section {
	if s == nil {
		return []models.Section{}
	}
	return s
}

func nonNilLinks(l []models.SocialLink) []models.SocialLink {
	if l == nil {
		return []models.SocialLink{}
	}
	return l
}
