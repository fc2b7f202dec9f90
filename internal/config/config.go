package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverRedis    = "redis"
)

type Config struct {
	App           AppConfig
	Store         StoreConfig
	Database      DatabaseConfig
	Redis         RedisConfig
	MigrationsDir string
}

type AppConfig struct {
	AppName        string
	Environment    string
	HTTPPort       string
	RequestTimeout time.Duration
	LogLevel       string
}

type StoreConfig struct {
	Driver string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type RedisConfig struct {
	Host      string
	Port      string
	Password  string
	DB        int
	KeyPrefix string
}

func (r RedisConfig) Addr() string {
	return r.Host + ":" + r.Port
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

// Load reads configuration from the process environment. A .env file in the
// working directory is applied first; variables already set win over it.
func Load(envFiles ...string) (Config, error) {
	_ = godotenv.Load(envFiles...)

	cfg := Config{}

	var missing []string
	var invalid []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	optDefault := func(key, def string) string {
		if v := opt(key); v != "" {
			return v
		}
		return def
	}
	optDuration := func(key string, def time.Duration) time.Duration {
		raw := opt(key)
		if raw == "" {
			return def
		}
		d, err := time.ParseDuration(raw)
		if err != nil || d < 0 {
			invalid = append(invalid, key)
			return def
		}
		return d
	}
	optInt := func(key string, def int) int {
		raw := opt(key)
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			invalid = append(invalid, key)
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:        req("APP_NAME"),
		Environment:    req("APP_ENV"),
		HTTPPort:       req("HTTP_PORT"),
		RequestTimeout: optDuration("HTTP_REQUEST_TIMEOUT", 5*time.Second),
		LogLevel:       optDefault("LOG_LEVEL", "info"),
	}

	cfg.Store = StoreConfig{
		Driver: strings.ToLower(optDefault("STORE_DRIVER", StoreDriverPostgres)),
	}

	switch cfg.Store.Driver {
	case StoreDriverPostgres:
		cfg.Database = DatabaseConfig{
			DBHost:     req("DB_HOST"),
			DBPort:     req("DB_PORT"),
			DBName:     req("DB_NAME"),
			DBUser:     req("DB_USER"),
			DBPassword: opt("DB_PASSWORD"),
			DBSSLMode:  optDefault("DB_SSL_MODE", "disable"),
		}
	case StoreDriverRedis:
	default:
		invalid = append(invalid, "STORE_DRIVER")
	}

	cfg.Database.ConnectTimeout = optDuration("DB_CONNECT_TIMEOUT", 5*time.Second)
	cfg.Database.PoolMaxConns = int32(optInt("DB_POOL_MAX_CONNS", 0))
	cfg.Database.PoolMinConns = int32(optInt("DB_POOL_MIN_CONNS", 0))
	cfg.Database.PoolMaxConnLifetime = optDuration("DB_POOL_MAX_CONN_LIFETIME", 0)
	cfg.Database.PoolMaxConnIdleTime = optDuration("DB_POOL_MAX_CONN_IDLE_TIME", 0)
	cfg.Database.PoolHealthCheckPeriod = optDuration("DB_POOL_HEALTH_CHECK_PERIOD", 0)

	cfg.Redis = RedisConfig{
		Host:      optDefault("REDIS_HOST", "localhost"),
		Port:      optDefault("REDIS_PORT", "6379"),
		Password:  opt("REDIS_PASSWORD"),
		DB:        optInt("REDIS_DB", 0),
		KeyPrefix: optDefault("REDIS_KEY_PREFIX", "skillmatch"),
	}

	cfg.MigrationsDir = optDefault("MIGRATIONS_DIR", "migrations")

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}

	return cfg, nil
}
