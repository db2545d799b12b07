// Application configuration: defaults, optional YAML file, then environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	App      App      `yaml:"app"`
	Server   Server   `yaml:"server"`
	API      API      `yaml:"api"`
	Postgres Postgres `yaml:"postgres"`
	Redis    Redis    `yaml:"redis"`
	Security Security `yaml:"security"`
	Upload   Upload   `yaml:"upload"`
	Seed     Seed     `yaml:"seed"`
}

// App: environment name (local switches logger and gin into development mode).
type App struct {
	Env string `yaml:"env"`
}

// Server: HTTP intake server port and timeouts.
type Server struct {
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// API: REST backend used by the entity services and the seed RPC.
type API struct {
	BaseURL     string        `yaml:"base_url"`
	Token       string        `yaml:"token"`        // sent as Authorization: Bearer
	ClientToken string        `yaml:"client_token"` // sent as X-Client-Token when set
	Timeout     time.Duration `yaml:"timeout"`
}

// Postgres: DSN and pool limits (seed in postgres mode).
type Postgres struct {
	DSN             string        `yaml:"dsn"`
	MaxConns        int32         `yaml:"max_conns"`
	MinConns        int32         `yaml:"min_conns"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout"`
}

// Redis: rate limiting for the intake server. Disabled when Enabled is false.
type Redis struct {
	Enabled      bool          `yaml:"enabled"`
	Addr         string        `yaml:"addr"`
	Password     string        `yaml:"password"`
	DB           int           `yaml:"db"`
	PoolSize     int           `yaml:"pool_size"`
	MinIdleConns int           `yaml:"min_idle_conns"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// Security: request limits of the intake server.
type Security struct {
	RateLimitRPS int `yaml:"rate_limit_rps"`
}

// Upload: local disk intake directory and size cap.
type Upload struct {
	Dir          string `yaml:"dir"`
	MaxSizeBytes int64  `yaml:"max_size_bytes"`
}

// Seed: SQL file and executor ("rest" or "postgres").
type Seed struct {
	File   string `yaml:"file"`
	Driver string `yaml:"driver"`
}

const (
	SeedDriverREST     = "rest"
	SeedDriverPostgres = "postgres"
)

var ErrMissingBaseURL = errors.New("API_BASE_URL is required")

// Defaults returns the configuration used when neither a file nor env sets a value.
func Defaults() Config {
	return Config{
		App: App{Env: "production"},
		Server: Server{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		API: API{
			Timeout: 10 * time.Second,
		},
		Postgres: Postgres{
			MaxConns:        5,
			MinConns:        1,
			MaxConnLifetime: time.Hour,
			MaxConnIdleTime: 30 * time.Minute,
			ConnectTimeout:  5 * time.Second,
		},
		Redis: Redis{
			Addr:         "localhost:6379",
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Security: Security{RateLimitRPS: 20},
		Upload: Upload{
			Dir:          "uploads",
			MaxSizeBytes: 5 << 20,
		},
		Seed: Seed{
			File:   "", // empty: cmd/seed uses its embedded mock data
			Driver: SeedDriverREST,
		},
	}
}

// Load builds the config: defaults, then CONFIG_FILE (YAML) when set, then env variables.
func Load() (*Config, error) {
	cfg := Defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return nil, err
		}
	}
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("cannot parse config: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.App.Env = getEnv("APP_ENV", cfg.App.Env)

	cfg.Server.Port = getInt("SERVER_PORT", cfg.Server.Port)
	cfg.Server.ReadTimeout = getDuration("SERVER_READ_TIMEOUT", cfg.Server.ReadTimeout)
	cfg.Server.WriteTimeout = getDuration("SERVER_WRITE_TIMEOUT", cfg.Server.WriteTimeout)
	cfg.Server.ShutdownTimeout = getDuration("SERVER_SHUTDOWN_TIMEOUT", cfg.Server.ShutdownTimeout)

	cfg.API.BaseURL = strings.TrimRight(getEnv("API_BASE_URL", cfg.API.BaseURL), "/")
	cfg.API.Token = getEnv("API_TOKEN", cfg.API.Token)
	cfg.API.ClientToken = getEnv("API_CLIENT_TOKEN", cfg.API.ClientToken)
	cfg.API.Timeout = getDuration("API_TIMEOUT", cfg.API.Timeout)

	cfg.Postgres.DSN = getEnv("POSTGRES_DSN", cfg.Postgres.DSN)
	cfg.Postgres.MaxConns = int32(getInt("POSTGRES_MAX_CONNS", int(cfg.Postgres.MaxConns)))
	cfg.Postgres.MinConns = int32(getInt("POSTGRES_MIN_CONNS", int(cfg.Postgres.MinConns)))
	cfg.Postgres.MaxConnLifetime = getDuration("POSTGRES_MAX_CONN_LIFETIME", cfg.Postgres.MaxConnLifetime)
	cfg.Postgres.MaxConnIdleTime = getDuration("POSTGRES_MAX_CONN_IDLE_TIME", cfg.Postgres.MaxConnIdleTime)
	cfg.Postgres.ConnectTimeout = getDuration("POSTGRES_CONNECT_TIMEOUT", cfg.Postgres.ConnectTimeout)

	cfg.Redis.Enabled = getBool("REDIS_ENABLED", cfg.Redis.Enabled)
	cfg.Redis.Addr = getEnv("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = getInt("REDIS_DB", cfg.Redis.DB)
	cfg.Redis.PoolSize = getInt("REDIS_POOL_SIZE", cfg.Redis.PoolSize)
	cfg.Redis.MinIdleConns = getInt("REDIS_MIN_IDLE", cfg.Redis.MinIdleConns)
	cfg.Redis.DialTimeout = getDuration("REDIS_DIAL_TIMEOUT", cfg.Redis.DialTimeout)
	cfg.Redis.ReadTimeout = getDuration("REDIS_READ_TIMEOUT", cfg.Redis.ReadTimeout)
	cfg.Redis.WriteTimeout = getDuration("REDIS_WRITE_TIMEOUT", cfg.Redis.WriteTimeout)

	cfg.Security.RateLimitRPS = getInt("RATE_LIMIT_RPS", cfg.Security.RateLimitRPS)

	cfg.Upload.Dir = getEnv("UPLOAD_DIR", cfg.Upload.Dir)
	cfg.Upload.MaxSizeBytes = int64(getInt("UPLOAD_MAX_SIZE_BYTES", int(cfg.Upload.MaxSizeBytes)))

	cfg.Seed.File = getEnv("SEED_FILE", cfg.Seed.File)
	cfg.Seed.Driver = strings.ToLower(getEnv("SEED_DRIVER", cfg.Seed.Driver))
}

// Validate checks values that every command depends on.
func (c Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port out of range: %d", c.Server.Port)
	}
	if c.Upload.Dir == "" {
		return errors.New("upload dir is required")
	}
	if c.Upload.MaxSizeBytes <= 0 {
		return errors.New("upload max size must be positive")
	}
	switch c.Seed.Driver {
	case SeedDriverREST, SeedDriverPostgres:
	default:
		return fmt.Errorf("unknown seed driver %q (allowed: rest, postgres)", c.Seed.Driver)
	}
	return nil
}

// Validate is called by commands that talk to the REST backend.
func (a API) Validate() error {
	if a.BaseURL == "" {
		return ErrMissingBaseURL
	}
	return nil
}

// IsLocal reports whether development logging and gin debug mode should be used.
func (c Config) IsLocal() bool {
	return c.App.Env == "local"
}

// getEnv returns the environment value or def.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// getBool parses 1/true/yes as true and 0/false/no as false.
func getBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "yes":
			return true
		case "0", "false", "no":
			return false
		}
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
