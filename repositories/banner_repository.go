package repositories

import (
	"context"

	"storefront-api/config"
	"storefront-api/models"
)

type BannerRepository struct{}

func NewBannerRepository() *BannerRepository {
	return &BannerRepository{}
}

const bannerColumns = "id, title, image_url, image_public_id, link_url, sort_order, is_active, created_at"

func (r *BannerRepository) GetAll(activeOnly bool) ([]models.Banner, error) {
	query := "SELECT " + bannerColumns + " FROM banners"
	if activeOnly {
		query += " WHERE is_active = TRUE"
	}
	query += " ORDER BY sort_order, id"

	rows, err := config.DB.Query(context.Background(), query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	banners := []models.Banner{}
	for rows.Next() {
		var b models.Banner
		if err := rows.Scan(&b.ID, &b.Title, &b.ImageURL, &b.ImagePublicID,
			&b.LinkURL, &b.Order, &b.IsActive, &b.CreatedAt); err != nil {
			return nil, err
		}
		banners = append(banners, b)
	}
	return banners, rows.Err()
}

func (r *BannerRepository) GetByID(id int) (*models.Banner, error) {
	var b models.Banner
	err := config.DB.QueryRow(context.Background(),
		"SELECT "+bannerColumns+" FROM banners WHERE id = $1",
		id).Scan(&b.ID, &b.Title, &b.ImageURL, &b.ImagePublicID,
		&b.LinkURL, &b.Order, &b.IsActive, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BannerRepository) Create(b *models.Banner) error {
	return config.DB.QueryRow(context.Background(), `
		INSERT INTO banners (title, image_url, image_public_id, link_url, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		b.Title, b.ImageURL, b.ImagePublicID, b.LinkURL, b.Order, b.IsActive,
	).Scan(&b.ID, &b.CreatedAt)
}

func (r *BannerRepository) Update(b *models.Banner) error {
	_, err := config.DB.Exec(context.Background(), `
		UPDATE banners SET title = $1, image_url = $2, link_url = $3, sort_order = $4, is_active = $5
		WHERE id = $6`,
		b.Title, b.ImageURL, b.LinkURL, b.Order, b.IsActive, b.ID)
	return err
}

func (r *BannerRepository) Delete(id int) (bool, error) {
	tag, err := config.DB.Exec(context.Background(),
		"DELETE FROM banners WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
