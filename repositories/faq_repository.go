package repositories

import (
	"context"
	"time"

	"storefront-api/config"
	"storefront-api/models"
)

type FAQRepository struct{}

func NewFAQRepository() *FAQRepository {
	return &FAQRepository{}
}

func (r *FAQRepository) GetAll() ([]models.FAQ, error) {
	rows, err := config.DB.Query(context.Background(),
		"SELECT id, question, answer, sort_order, created_at, updated_at FROM faqs ORDER BY sort_order, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	faqs := []models.FAQ{}
	for rows.Next() {
		var f models.FAQ
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.Order, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		faqs = append(faqs, f)
	}
	return faqs, rows.Err()
}

func (r *FAQRepository) GetByID(id int) (*models.FAQ, error) {
	var f models.FAQ
	err := config.DB.QueryRow(context.Background(),
		"SELECT id, question, answer, sort_order, created_at, updated_at FROM faqs WHERE id = $1",
		id).Scan(&f.ID, &f.Question, &f.Answer, &f.Order, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FAQRepository) Create(f *models.FAQ) error {
	now := time.Now()
	return config.DB.QueryRow(context.Background(), `
		INSERT INTO faqs (question, answer, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING id, created_at, updated_at`,
		f.Question, f.Answer, f.Order, now,
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
}

func (r *FAQRepository) Update(f *models.FAQ) error {
	_, err := config.DB.Exec(context.Background(),
		"UPDATE faqs SET question = $1, answer = $2, sort_order = $3, updated_at = $4 WHERE id = $5",
		f.Question, f.Answer, f.Order, time.Now(), f.ID)
	return err
}

func (r *FAQRepository) Delete(id int) (bool, error) {
	tag, err := config.DB.Exec(context.Background(),
		"DELETE FROM faqs WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
