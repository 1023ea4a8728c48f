package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/db/dbtest"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func newRouter(t *testing.T) (*gin.Engine, *config.Config, map[string]*models.User) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb := dbtest.New(t)
	cfg := &config.Config{JWTSecret: "test-secret", JWTTTL: time.Hour}

	users := map[string]*models.User{
		"customer": {Name: "Ana", Email: "ana@example.com", PasswordHash: "x"},
		"barber":   {Name: "Luis", Email: "luis@barbero.com", PasswordHash: "x"},
		"admin":    {Name: "Root", Email: "root@example.com", PasswordHash: "x", IsAdmin: true},
	}
	for _, u := range users {
		if err := gdb.Create(u).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	r := gin.New()
	auth := r.Group("/", AuthMiddleware(cfg, gdb))
	auth.GET("/me", func(c *gin.Context) {
		c.String(http.StatusOK, CurrentUser(c).Name)
	})
	auth.GET("/staff", RequireStaff("@barbero.com"), func(c *gin.Context) { c.Status(http.StatusOK) })
	auth.GET("/admin", RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusOK) })

	return r, cfg, users
}

func do(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r, cfg, users := newRouter(t)

	if w := do(r, "/me", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("no token: status = %d, want 401", w.Code)
	}
	if w := do(r, "/me", "garbage"); w.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: status = %d, want 401", w.Code)
	}

	expired, _ := IssueToken(cfg, users["customer"], time.Now().Add(-2*time.Hour))
	if w := do(r, "/me", expired); w.Code != http.StatusUnauthorized {
		t.Fatalf("expired token: status = %d, want 401", w.Code)
	}

	token, err := IssueToken(cfg, users["customer"], time.Now())
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	w := do(r, "/me", token)
	if w.Code != http.StatusOK || w.Body.String() != "Ana" {
		t.Fatalf("status = %d body = %q", w.Code, w.Body.String())
	}
}

func TestRoleGuards(t *testing.T) {
	r, cfg, users := newRouter(t)

	cases := []struct {
		user  string
		path  string
		wants int
	}{
		{"customer", "/staff", http.StatusForbidden},
		{"barber", "/staff", http.StatusOK},
		{"admin", "/staff", http.StatusOK},
		{"barber", "/admin", http.StatusForbidden},
		{"admin", "/admin", http.StatusOK},
	}
	for _, tc := range cases {
		token, _ := IssueToken(cfg, users[tc.user], time.Now())
		if w := do(r, tc.path, token); w.Code != tc.wants {
			t.Errorf("%s %s: status = %d, want %d", tc.user, tc.path, w.Code, tc.wants)
		}
	}
}

func TestRequestLogger_SetsID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := do(r, "/", "")
	if w.Header().Get(HeaderRequestID) == "" {
		t.Fatalf("missing %s header", HeaderRequestID)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(HeaderRequestID); got != "abc" {
		t.Fatalf("request id = %q, want abc", got)
	}
}
