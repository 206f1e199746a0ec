package config

import (
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

type Config struct {
	Port     string `env:"PORT,default=8080"`
	AppEnv   string `env:"APP_ENV,default=development"`
	LogLevel string `env:"LOG_LEVEL,default=info"`

	DatabaseURL string `env:"DATABASE_URL"`
	DBHost      string `env:"DB_HOST,default=localhost"`
	DBUser      string `env:"DB_USER,default=postgres"`
	DBPassword  string `env:"DB_PASSWORD"`
	DBName      string `env:"DB_NAME,default=nutriscan"`
	DBPort      string `env:"DB_PORT,default=5432"`
	DBSSLMode   string `env:"DB_SSLMODE,default=disable"`

	JWTSecret string        `env:"JWT_SECRET"`
	JWTTTL    time.Duration `env:"JWT_TTL,default=168h"`

	CORSOrigins string `env:"CORS_ORIGINS,default=*"`
	// TrustedProxies lists proxy IPs or CIDRs whose X-Forwarded-For is believed.
	// Empty means client IPs come from the socket peer only.
	TrustedProxies string `env:"TRUSTED_PROXIES"`

	UploadDriver string `env:"UPLOAD_DRIVER,default=local"` // local | s3
	UploadDir    string `env:"UPLOAD_DIR,default=uploads"`
	S3Bucket     string `env:"S3_BUCKET"`
	S3Region     string `env:"S3_REGION"`
	AWSRegion    string `env:"AWS_REGION"`
	CDNURL       string `env:"CDN_URL"`
	SESEmail     string `env:"SES_EMAIL"`

	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	FoodCacheTTL  time.Duration `env:"FOOD_CACHE_TTL,default=5m"`

	AuthRatePerSec float64 `env:"AUTH_RATE_PER_SEC,default=5"`
	AuthRateBurst  int     `env:"AUTH_RATE_BURST,default=10"`

	DevRoutes bool `env:"DEV_ROUTES,default=true"`
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env")
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && err != envdecode.ErrNoTargetFieldsAreSet {
		return nil, errors.Wrap(err, "decode env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	switch c.UploadDriver {
	case "local":
	case "s3":
		if c.S3Bucket == "" {
			return errors.New("S3_BUCKET is required when UPLOAD_DRIVER=s3")
		}
	default:
		return fmt.Errorf("unknown UPLOAD_DRIVER %q", c.UploadDriver)
	}
	for _, p := range c.TrustedProxyList() {
		if net.ParseIP(p) == nil {
			if _, _, err := net.ParseCIDR(p); err != nil {
				return fmt.Errorf("invalid TRUSTED_PROXIES entry %q", p)
			}
		}
	}
	return nil
}

func (c *Config) IsDevelopment() bool { return strings.EqualFold(c.AppEnv, "development") }

func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}

// Region prefers S3_REGION and falls back to AWS_REGION.
func (c *Config) Region() string {
	if c.S3Region != "" {
		return c.S3Region
	}
	return c.AWSRegion
}

func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range splitList(c.CORSOrigins) {
		if o = strings.TrimRight(o, "/"); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// TrustedProxyList is nil when TRUSTED_PROXIES is unset.
func (c *Config) TrustedProxyList() []string { return splitList(c.TrustedProxies) }

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
