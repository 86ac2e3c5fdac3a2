package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"scholarly_backend/internal/auth"
	"scholarly_backend/internal/models"
	"scholarly_backend/internal/repositories"
)

type stubUserRepo struct {
	repositories.UserRepository
	users map[string]models.User
}

func (r *stubUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	if u, ok := r.users[email]; ok {
		return &u, nil
	}
	return nil, repositories.ErrUserNotFound
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func newRouter(t *testing.T, tokens *auth.TokenManager, guard gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(DBMiddleware(newTestDB(t)))

	handlers := []gin.HandlerFunc{AuthMiddleware(tokens)}
	if guard != nil {
		handlers = append(handlers, guard)
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": SessionEmail(c), "data": "secret"})
	})
	r.GET("/protected", handlers...)
	return r
}

func doRequest(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAuthMiddlewareRejectsMissingAndBadTokens(t *testing.T) {
	tokens := auth.NewTokenManager("secret", "scholarly", time.Hour)
	r := newRouter(t, tokens, nil)

	w := doRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	body := decode(t, w)
	assert.Equal(t, "unauthorized access", body["message"])
	assert.Equal(t, "UNAUTHORIZED", body["code"])

	w = doRequest(r, "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareAttachesSessionEmail(t *testing.T) {
	tokens := auth.NewTokenManager("secret", "scholarly", time.Hour)
	r := newRouter(t, tokens, nil)

	token, err := tokens.Generate(auth.Identity{Email: "s@x.com"})
	require.NoError(t, err)

	w := doRequest(r, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "s@x.com", decode(t, w)["email"])
}

func TestRequireRoleDeniesExplicitly(t *testing.T) {
	tokens := auth.NewTokenManager("secret", "scholarly", time.Hour)
	repo := &stubUserRepo{users: map[string]models.User{
		"admin@x.com": {Email: "admin@x.com", Role: models.UserRoleAdmin},
		"mod@x.com":   {Email: "mod@x.com", Role: models.UserRoleModerator},
		"s@x.com":     {Email: "s@x.com", Role: models.UserRoleStudent},
	}}
	r := newRouter(t, tokens, RequireRole(repo, models.UserRoleModerator))

	cases := map[string]int{
		"admin@x.com": http.StatusOK,
		"mod@x.com":   http.StatusOK,
		"s@x.com":     http.StatusForbidden,
		"ghost@x.com": http.StatusForbidden,
	}
	for email, status := range cases {
		token, err := tokens.Generate(auth.Identity{Email: email})
		require.NoError(t, err)

		w := doRequest(r, token)
		assert.Equal(t, status, w.Code, email)
		if status == http.StatusForbidden {
			assert.NotContains(t, w.Body.String(), "secret")
			assert.Equal(t, "Forbidden access denied", decode(t, w)["message"])
		}
	}
}

func TestRequirePermissionUsesCapabilityTable(t *testing.T) {
	tokens := auth.NewTokenManager("secret", "scholarly", time.Hour)
	repo := &stubUserRepo{users: map[string]models.User{
		"admin@x.com": {Email: "admin@x.com", Role: models.UserRoleAdmin},
		"mod@x.com":   {Email: "mod@x.com", Role: models.UserRoleModerator},
	}}
	r := newRouter(t, tokens, RequirePermission(repo, auth.PermReviewsDelete))

	adminToken, _ := tokens.Generate(auth.Identity{Email: "admin@x.com"})
	modToken, _ := tokens.Generate(auth.Identity{Email: "mod@x.com"})

	assert.Equal(t, http.StatusOK, doRequest(r, adminToken).Code)
	assert.Equal(t, http.StatusForbidden, doRequest(r, modToken).Code)
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware([]string{"http://localhost:5173/"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/jwt", NewRateLimiter(1, 2).Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/jwt", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}
