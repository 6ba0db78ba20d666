package repositories

import (
	"context"
	"time"

	"storefront-api/config"
	"storefront-api/models"
)

type SeoRepository struct{}

func NewSeoRepository() *SeoRepository {
	return &SeoRepository{}
}

func (r *SeoRepository) GetByPageSlug(pageSlug string) (*models.PageSeo, error) {
	var s models.PageSeo
	err := config.DB.QueryRow(context.Background(), `
		SELECT id, page_slug, page_type, title, description, keywords, og_image, updated_at
		FROM page_seo WHERE page_slug = $1`,
		pageSlug).Scan(&s.ID, &s.PageSlug, &s.PageType, &s.Title,
		&s.Description, &s.Keywords, &s.OgImage, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Upsert writes the SEO record for a page, creating it on first save.
func (r *SeoRepository) Upsert(s *models.PageSeo) error {
	return config.DB.QueryRow(context.Background(), `
		INSERT INTO page_seo (page_slug, page_type, title, description, keywords, og_image, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (page_slug) DO UPDATE SET
			page_type = EXCLUDED.page_type,
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			keywords = EXCLUDED.keywords,
			og_image = EXCLUDED.og_image,
			updated_at = EXCLUDED.updated_at
		RETURNING id, updated_at`,
		s.PageSlug, s.PageType, s.Title, s.Description, s.Keywords, s.OgImage, time.Now(),
	).Scan(&s.ID, &s.UpdatedAt)
}
