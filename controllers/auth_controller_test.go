package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront-api/config"
	"storefront-api/middleware"
	"storefront-api/models"
	"storefront-api/services"
	"storefront-api/utils"

	"github.com/gin-gonic/gin"
)

type fakeUserStore struct {
	users map[string]*models.User
}

func (s *fakeUserStore) FindByEmail(email string) (*models.User, error) {
	if u, ok := s.users[email]; ok {
		return u, nil
	}
	return nil, http.ErrNoCookie
}

func (s *fakeUserStore) Create(user *models.User) error {
	user.ID = 10
	s.users[user.Email] = user
	return nil
}

func (s *fakeUserStore) EmailExists(email string) (bool, error) {
	_, ok := s.users[email]
	return ok, nil
}

func loginRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.LoadConfig()

	hash, err := utils.HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	store := &fakeUserStore{users: map[string]*models.User{
		"admin@store.test": {ID: 1, Email: "admin@store.test", PasswordHash: hash, FullName: "Admin", Role: "admin"},
	}}

	ctrl := NewAuthControllerWithService(services.NewAuthServiceWithStore(store))
	router := gin.New()
	router.POST("/api/auth/login", ctrl.Login)
	return router
}

func postLogin(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func authCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.AuthCookieName {
			return c
		}
	}
	return nil
}

func TestLoginSetsSevenDayCookie(t *testing.T) {
	router := loginRouter(t)

	w := postLogin(router, `{"email": "admin@store.test", "password": "hunter22"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	cookie := authCookie(w)
	if cookie == nil {
		t.Fatal("authToken cookie not set")
	}
	if cookie.MaxAge != 604800 {
		t.Errorf("cookie MaxAge = %d, want 604800", cookie.MaxAge)
	}
	if !cookie.HttpOnly {
		t.Error("cookie must be HTTP-only")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Errorf("cookie SameSite = %v, want Lax", cookie.SameSite)
	}

	claims, err := utils.ValidateToken(cookie.Value)
	if err != nil {
		t.Fatalf("cookie token does not validate: %v", err)
	}
	if claims.Role != "admin" {
		t.Errorf("token role = %q", claims.Role)
	}
}

func TestLoginWrongPasswordSetsNoCookie(t *testing.T) {
	router := loginRouter(t)

	w := postLogin(router, `{"email": "admin@store.test", "password": "wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if authCookie(w) != nil {
		t.Error("no cookie may be set on failed login")
	}
}

func TestLoginMissingFields(t *testing.T) {
	router := loginRouter(t)

	w := postLogin(router, `{"email": "admin@store.test"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
