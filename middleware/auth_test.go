package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-api/utils"

	"github.com/gin-gonic/gin"
)

func adminRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	admin := router.Group("/admin")
	admin.Use(AuthMiddleware(), AdminMiddleware())
	admin.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": c.GetString("user_role")})
	})
	return router
}

func requestWithCookie(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: token})
	}
	return req
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	router := adminRouter()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, requestWithCookie(""))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	router := adminRouter()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, requestWithCookie("garbage.token.value"))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAdminMiddlewareRejectsCustomer(t *testing.T) {
	token, err := utils.GenerateToken(2, "shopper@store.test", "Shopper", "customer")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	router := adminRouter()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, requestWithCookie(token))

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}

func TestAdminMiddlewareAllowsAdmin(t *testing.T) {
	token, err := utils.GenerateToken(1, "admin@store.test", "Admin", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	router := adminRouter()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, requestWithCookie(token))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
}

func TestAuthMiddlewareBearerFallback(t *testing.T) {
	token, err := utils.GenerateToken(1, "admin@store.test", "Admin", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	router := adminRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}
