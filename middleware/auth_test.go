package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/CKONG1301/Day96-Online-Shop/middleware"
	"github.com/CKONG1301/Day96-Online-Shop/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func newAdminRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/add", middleware.RequireLogin, middleware.RequireAdmin, func(c *gin.Context) {
		c.String(http.StatusOK, "form")
	})
	return r
}

func signedToken(t *testing.T, role, secret string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": 1,
		"role":    role,
		"name":    "Chee Kong",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	return token
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "session", Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnonymousRedirectedToLogin(t *testing.T) {
	r := newAdminRouter(t)

	w := get(r, "/add", "")
	if w.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestCustomerForbiddenFromAdminRoute(t *testing.T) {
	r := newAdminRouter(t)

	w := get(r, "/add", signedToken(t, models.RoleCustomer, "test-secret"))
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestAdminAllowed(t *testing.T) {
	r := newAdminRouter(t)

	w := get(r, "/add", signedToken(t, models.RoleAdmin, "test-secret"))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestForgedTokenRejected(t *testing.T) {
	r := newAdminRouter(t)

	w := get(r, "/add", signedToken(t, models.RoleAdmin, "wrong-secret"))
	if w.Code != http.StatusFound {
		t.Fatalf("expected redirect for forged token, got %d", w.Code)
	}
}
