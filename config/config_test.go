package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("DB_PASSWORD", "pw")
	for _, k := range []string{"PORT", "APP_ENV", "DATABASE_URL", "DB_HOST", "DB_USER", "DB_NAME", "DB_PORT", "DB_SSLMODE", "JWT_TTL", "FOOD_CACHE_TTL", "UPLOAD_DRIVER", "DEV_ROUTES", "TRUSTED_PROXIES"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 168*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 5*time.Minute, cfg.FoodCacheTTL)
	assert.Equal(t, "local", cfg.UploadDriver)
	assert.True(t, cfg.DevRoutes)
	assert.Nil(t, cfg.TrustedProxyList())
	assert.Equal(t, "host=localhost user=postgres password=pw dbname=nutriscan port=5432 sslmode=disable", cfg.DSN())
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := Load()
	assert.EqualError(t, err, "JWT_SECRET is required")
}

func TestValidateUploadDriver(t *testing.T) {
	cfg := &Config{JWTSecret: "x", UploadDriver: "s3"}
	assert.Error(t, cfg.Validate())

	cfg.S3Bucket = "nutriscan-images"
	assert.NoError(t, cfg.Validate())

	cfg.UploadDriver = "ftp"
	assert.Error(t, cfg.Validate())
}

func TestConfigHelpers(t *testing.T) {
	cfg := &Config{
		DatabaseURL: "postgres://u:p@db:5432/app",
		AWSRegion:   "ap-southeast-1",
		CORSOrigins: "https://app.example.com/, http://localhost:8081 ,",
	}
	assert.Equal(t, "postgres://u:p@db:5432/app", cfg.DSN())
	assert.Equal(t, "ap-southeast-1", cfg.Region())
	assert.Equal(t, []string{"https://app.example.com", "http://localhost:8081"}, cfg.AllowedOrigins())

	cfg.S3Region = "us-east-1"
	assert.Equal(t, "us-east-1", cfg.Region())
}

func TestNewLogger(t *testing.T) {
	log := NewLogger(&Config{AppEnv: "production", LogLevel: "debug"})
	assert.Equal(t, "debug", log.GetLevel().String())

	log = NewLogger(&Config{AppEnv: "development", LogLevel: "nonsense"})
	assert.Equal(t, "info", log.GetLevel().String())
}

func TestTrustedProxies(t *testing.T) {
	cfg := &Config{JWTSecret: "x", UploadDriver: "local", TrustedProxies: " 10.0.0.1, 172.16.0.0/12 ,"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []string{"10.0.0.1", "172.16.0.0/12"}, cfg.TrustedProxyList())

	cfg.TrustedProxies = "load-balancer"
	assert.EqualError(t, cfg.Validate(), `invalid TRUSTED_PROXIES entry "load-balancer"`)
}
