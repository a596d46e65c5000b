package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
	DriverMongo    = "mongo"
)

type Config struct {
	HTTPPort    int
	APIPrefix   string
	CORSOrigins []string
	LogLevel    string

	// TrustedProxies lists the proxy IPs or CIDRs whose X-Forwarded-For
	// header names the client. Empty means the socket address is used.
	TrustedProxies []string

	DBDriver    string
	DatabaseURL string
	SqlitePath  string
	MongoURL    string
	DBName      string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	ArticleCacheTTL    time.Duration
	RateLimitPerMinute int
	PrometheusPort     int
	SeedOnStartup      bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTP_PORT", 8000)
	v.SetDefault("API_PREFIX", "/api")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "INFO")
	v.SetDefault("TRUSTED_PROXIES", "")

	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "serenity")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_TIMEZONE", "UTC")
	v.SetDefault("DB_DATABASE", "serenity.db")
	v.SetDefault("MONGO_URL", "mongodb://localhost:27017")

	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ARTICLE_CACHE_TTL", "10m")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 120)
	v.SetDefault("PROMETHEUS_PORT", 2112)
	v.SetDefault("SEED_ON_STARTUP", true)
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		HTTPPort:           v.GetInt("HTTP_PORT"),
		APIPrefix:          normalizePrefix(v.GetString("API_PREFIX")),
		CORSOrigins:        splitList(v.GetString("CORS_ORIGINS")),
		LogLevel:           strings.ToUpper(v.GetString("LOG_LEVEL")),
		TrustedProxies:     splitValues(v.GetString("TRUSTED_PROXIES")),
		DBDriver:           strings.ToLower(v.GetString("DB_DRIVER")),
		DatabaseURL:        v.GetString("DATABASE_URL"),
		SqlitePath:         v.GetString("DB_DATABASE"),
		MongoURL:           v.GetString("MONGO_URL"),
		DBName:             v.GetString("DB_NAME"),
		RedisAddr:          v.GetString("REDIS_ADDR"),
		RedisPassword:      v.GetString("REDIS_PASSWORD"),
		RedisDB:            v.GetInt("REDIS_DB"),
		ArticleCacheTTL:    v.GetDuration("ARTICLE_CACHE_TTL"),
		RateLimitPerMinute: v.GetInt("RATE_LIMIT_PER_MINUTE"),
		PrometheusPort:     v.GetInt("PROMETHEUS_PORT"),
		SeedOnStartup:      v.GetBool("SEED_ON_STARTUP"),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
			v.GetString("DB_HOST"),
			v.GetString("DB_USER"),
			v.GetString("DB_PASSWORD"),
			cfg.DBName,
			v.GetInt("DB_PORT"),
			v.GetString("DB_SSLMODE"),
			v.GetString("DB_TIMEZONE"),
		)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverPostgres, DriverSqlite, DriverMongo:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q: use postgres, sqlite or mongo", c.DBDriver)
	}
	if c.HTTPPort <= 0 {
		return fmt.Errorf("invalid HTTP_PORT %d", c.HTTPPort)
	}
	if c.ArticleCacheTTL < 0 {
		return fmt.Errorf("invalid ARTICLE_CACHE_TTL %s", c.ArticleCacheTTL)
	}
	return nil
}

func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

func normalizePrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" || prefix == "/" {
		return ""
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	return strings.TrimRight(prefix, "/")
}

func splitList(raw string) []string {
	out := splitValues(raw)
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func splitValues(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
