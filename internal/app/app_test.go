package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"scholarly_backend/internal/config"
)

func testConfig(env string) *config.Config {
	cfg := &config.Config{}
	cfg.Server.Env = env
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Issuer = "scholarly"
	cfg.JWT.TTL = 60
	cfg.CORS.AllowedOrigins = []string{"http://localhost:5173"}
	cfg.RateLimit.RequestsPerSecond = 5
	cfg.RateLimit.Burst = 10
	cfg.Pagination.DefaultLimit = 6
	cfg.Pagination.MaxLimit = 100
	return cfg
}

func newRouter(t *testing.T, env string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	router, container := SetupRouter(testConfig(env), db)
	require.NotNil(t, container.UserService)
	return router
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRouterServesBannerAndMetrics(t *testing.T) {
	router := newRouter(t, config.EnvDevelopment)

	w := get(router, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Scholarly server is running!", w.Body.String())

	w = get(router, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "scholarly_http_requests_total")
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	router := newRouter(t, config.EnvDevelopment)

	for _, path := range []string{"/users", "/applications", "/reviews", "/wishlists?email=a@b.c", "/scholarships/abc"} {
		w := get(router, path)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestSwaggerOnlyOutsideProduction(t *testing.T) {
	dev := newRouter(t, config.EnvDevelopment)
	assert.Equal(t, http.StatusOK, get(dev, "/swagger/index.html").Code)

	prod := newRouter(t, config.EnvProduction)
	assert.Equal(t, http.StatusNotFound, get(prod, "/swagger/index.html").Code)
}

var (
	ginParam = regexp.MustCompile(`:(\w+)`)
	docRef   = regexp.MustCompile(`"#/definitions/([\w.]+)"`)
)

type swaggerOperation struct {
	Produces []string `json:"produces"`
}

func TestSwaggerDocMatchesRouter(t *testing.T) {
	router := newRouter(t, config.EnvDevelopment)

	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var doc struct {
		Paths       map[string]map[string]swaggerOperation `json:"paths"`
		Definitions map[string]json.RawMessage             `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	served := map[string]bool{}
	for _, route := range router.Routes() {
		if route.Path == "/metrics" || strings.HasPrefix(route.Path, "/swagger/") {
			continue
		}
		path := ginParam.ReplaceAllString(route.Path, "{$1}")
		method := strings.ToLower(route.Method)
		served[method+" "+path] = true

		_, ok := doc.Paths[path][method]
		assert.True(t, ok, "undocumented route %s %s", route.Method, route.Path)
	}

	for path, ops := range doc.Paths {
		for method := range ops {
			assert.True(t, served[method+" "+path], "documented route %s %s is not served", method, path)
		}
	}

	assert.Equal(t, []string{"text/plain"}, doc.Paths["/"]["get"].Produces)

	refs := docRef.FindAllStringSubmatch(raw, -1)
	require.NotEmpty(t, refs)
	for _, ref := range refs {
		assert.Contains(t, doc.Definitions, ref[1])
	}
	assert.Contains(t, doc.Definitions, "apperrors.AppError")
}
