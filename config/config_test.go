package config

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LANDLORD_ACCOUNT", "alice")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "roombook")
	t.Setenv("DB_NAME", "hotel")
	t.Setenv("ROOM_CACHE_TTL", "30s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8083", cfg.Port)
	assert.Equal(t, "alice", cfg.LandlordAccount)
	assert.Equal(t, "@hourly", cfg.AuditSchedule)
	assert.Equal(t, 30*time.Second, cfg.RoomCacheTTL)
	assert.Contains(t, cfg.DSN(), "host=db user=roombook")
	assert.Contains(t, cfg.DSN(), "dbname=hotel port=5432")

	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/hotel")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@localhost/hotel", cfg.DSN())
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := Load()
	assert.Error(t, err)
}

func TestCorsConfig_OnlyConfiguredOrigins(t *testing.T) {
	_, ok := corsConfig(&Config{})
	assert.False(t, ok)
	_, ok = corsConfig(&Config{AllowedOrigins: []string{"*", " "}})
	assert.False(t, ok)

	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://hotel.example.com/, http://localhost:3000")
	cfg, err := Load()
	require.NoError(t, err)

	configCors, ok := corsConfig(cfg)
	require.True(t, ok)
	assert.Equal(t, []string{"https://hotel.example.com", "http://localhost:3000"}, configCors.AllowOrigins)
	assert.False(t, configCors.AllowAllOrigins)
	assert.Nil(t, configCors.AllowOriginFunc)
	assert.True(t, configCors.AllowCredentials)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(cors.New(configCors))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://hotel.example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://hotel.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example.net")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
