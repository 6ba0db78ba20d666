package repositories

import (
	"context"
	"time"

	"storefront-api/config"
	"storefront-api/models"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var u models.User
	err := config.DB.QueryRow(context.Background(),
		"SELECT id, email, password_hash, full_name, role, created_at, updated_at FROM users WHERE email = $1",
		email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(user *models.User) error {
	now := time.Now()
	return config.DB.QueryRow(context.Background(), `
		INSERT INTO users (email, password_hash, full_name, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id, created_at, updated_at`,
		user.Email, user.PasswordHash, user.FullName, user.Role, now,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *UserRepository) EmailExists(email string) (bool, error) {
	var count int
	err := config.DB.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM users WHERE email = $1", email).Scan(&count)
	return count > 0, err
}
