package services

import (
	"testing"

	"storefront-api/models"
	"storefront-api/utils"
)

type fakeUserStore struct {
	users   map[string]*models.User
	created *models.User
}

func (f *fakeUserStore) FindByEmail(email string) (*models.User, error) {
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, errNoRows{}
}

func (f *fakeUserStore) Create(user *models.User) error {
	user.ID = 42
	f.created = user
	return nil
}

func (f *fakeUserStore) EmailExists(email string) (bool, error) {
	_, ok := f.users[email]
	return ok, nil
}

func storeWithUser(t *testing.T, email, password, role string) *fakeUserStore {
	t.Helper()
	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	return &fakeUserStore{users: map[string]*models.User{
		email: {ID: 1, Email: email, PasswordHash: hash, FullName: "Store Admin", Role: role},
	}}
}

func TestLoginSuccess(t *testing.T) {
	svc := NewAuthServiceWithStore(storeWithUser(t, "admin@store.test", "hunter22", models.RoleAdmin))

	token, user, err := svc.Login(models.LoginRequest{Email: "admin@store.test", Password: "hunter22"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Error("expected a session token")
	}
	if user.Role != models.RoleAdmin || user.Email != "admin@store.test" {
		t.Errorf("user = %+v", user)
	}

	claims, err := utils.ValidateToken(token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.Role != models.RoleAdmin {
		t.Errorf("token role = %q", claims.Role)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewAuthServiceWithStore(storeWithUser(t, "admin@store.test", "hunter22", models.RoleAdmin))

	_, _, err := svc.Login(models.LoginRequest{Email: "admin@store.test", Password: "hunter23"})
	if err != ErrInvalidCredentials {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthServiceWithStore(&fakeUserStore{users: map[string]*models.User{}})

	_, _, err := svc.Login(models.LoginRequest{Email: "nobody@store.test", Password: "whatever"})
	if err != ErrInvalidCredentials {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterAssignsCustomerRole(t *testing.T) {
	store := &fakeUserStore{users: map[string]*models.User{}}
	svc := NewAuthServiceWithStore(store)

	_, user, err := svc.Register(models.RegisterRequest{
		Email: "new@store.test", Password: "secret123", FullName: "New Customer",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Role != models.RoleCustomer {
		t.Errorf("role = %q, want customer", user.Role)
	}
	if store.created == nil || store.created.PasswordHash == "secret123" {
		t.Error("password must be stored hashed")
	}
}

func TestRegisterRejectsTakenEmail(t *testing.T) {
	svc := NewAuthServiceWithStore(storeWithUser(t, "taken@store.test", "pw123456", models.RoleCustomer))

	_, _, err := svc.Register(models.RegisterRequest{
		Email: "taken@store.test", Password: "pw123456", FullName: "Someone",
	})
	if err != ErrEmailTaken {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}
