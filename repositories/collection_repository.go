package repositories

import (
	"context"

	"storefront-api/config"
	"storefront-api/models"
)

type CollectionRepository struct{}

func NewCollectionRepository() *CollectionRepository {
	return &CollectionRepository{}
}

func (r *CollectionRepository) GetAll() ([]models.Collection, error) {
	rows, err := config.DB.Query(context.Background(),
		"SELECT id, name, created_at FROM collections ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	collections := []models.Collection{}
	for rows.Next() {
		var col models.Collection
		if err := rows.Scan(&col.ID, &col.Name, &col.CreatedAt); err != nil {
			return nil, err
		}
		collections = append(collections, col)
	}
	return collections, rows.Err()
}

func (r *CollectionRepository) GetByID(id int) (*models.Collection, error) {
	var col models.Collection
	err := config.DB.QueryRow(context.Background(),
		"SELECT id, name, created_at FROM collections WHERE id = $1",
		id).Scan(&col.ID, &col.Name, &col.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &col, nil
}

func (r *CollectionRepository) Create(col *models.Collection) error {
	return config.DB.QueryRow(context.Background(),
		"INSERT INTO collections (name) VALUES ($1) RETURNING id, created_at",
		col.Name).Scan(&col.ID, &col.CreatedAt)
}

func (r *CollectionRepository) Update(col *models.Collection) error {
	_, err := config.DB.Exec(context.Background(),
		"UPDATE collections SET name = $1 WHERE id = $2", col.Name, col.ID)
	return err
}

func (r *CollectionRepository) Delete(id int) (bool, error) {
	tag, err := config.DB.Exec(context.Background(),
		"DELETE FROM collections WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
