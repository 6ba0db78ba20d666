package services

import (
	"errors"

	"storefront-api/models"
	"storefront-api/repositories"
	"storefront-api/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)

// UserStore is the persistence surface the auth service needs.
type UserStore interface {
	FindByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	EmailExists(email string) (bool, error)
}

type AuthService struct {
	userRepo UserStore
}

func NewAuthService() *AuthService {
	return &AuthService{userRepo: repositories.NewUserRepository()}
}

func NewAuthServiceWithStore(store UserStore) *AuthService {
	return &AuthService{userRepo: store}
}

// Login verifies credentials and issues a session token. The same error is
// returned for an unknown email and a wrong password.
func (s *AuthService) Login(req models.LoginRequest) (string, *models.SessionUser, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	valid, err := utils.VerifyPassword(user.PasswordHash, req.Password)
	if err != nil || !valid {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.FullName, user.Role)
	if err != nil {
		return "", nil, err
	}

	return token, &models.SessionUser{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
	}, nil
}

func (s *AuthService) Register(req models.RegisterRequest) (string, *models.SessionUser, error) {
	taken, err := s.userRepo.EmailExists(req.Email)
	if err != nil {
		return "", nil, err
	}
	if taken {
		return "", nil, ErrEmailTaken
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return "", nil, err
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         models.RoleCustomer,
	}
	if err := s.userRepo.Create(user); err != nil {
		return "", nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.FullName, user.Role)
	if err != nil {
		return "", nil, err
	}

	return token, &models.SessionUser{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
	}, nil
}
