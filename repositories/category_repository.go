package repositories

import (
	"context"

	"storefront-api/config"
	"storefront-api/models"
)

type CategoryRepository struct{}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

func (r *CategoryRepository) GetAll() ([]models.Category, error) {
	rows, err := config.DB.Query(context.Background(),
		"SELECT id, name, slug, created_at FROM categories ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Slug, &cat.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) GetByID(id int) (*models.Category, error) {
	var cat models.Category
	err := config.DB.QueryRow(context.Background(),
		"SELECT id, name, slug, created_at FROM categories WHERE id = $1",
		id).Scan(&cat.ID, &cat.Name, &cat.Slug, &cat.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) SlugExists(slug string) (bool, error) {
	var count int
	err := config.DB.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM categories WHERE slug = $1", slug).Scan(&count)
	return count > 0, err
}

func (r *CategoryRepository) Create(cat *models.Category) error {
	return config.DB.QueryRow(context.Background(),
		"INSERT INTO categories (name, slug) VALUES ($1, $2) RETURNING id, created_at",
		cat.Name, cat.Slug).Scan(&cat.ID, &cat.CreatedAt)
}

func (r *CategoryRepository) Update(cat *models.Category) error {
	_, err := config.DB.Exec(context.Background(),
		"UPDATE categories SET name = $1, slug = $2 WHERE id = $3",
		cat.Name, cat.Slug, cat.ID)
	return err
}

func (r *CategoryRepository) Delete(id int) (bool, error) {
	tag, err := config.DB.Exec(context.Background(),
		"DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
