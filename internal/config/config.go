package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

type Config struct {
	Server struct {
		Host string `yaml:"host" env:"SERVER_HOST"`
		Port int    `yaml:"port" env:"SERVER_PORT"`
		Env  string `yaml:"env" env:"SERVER_ENV"`
		// LogLevel переопределяет уровень по окружению: debug|info|warn|error
		LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`
	} `yaml:"server"`

	Database struct {
		Driver          string `yaml:"driver" env:"DATABASE_DRIVER"` // postgres | mysql
		DSN             string `yaml:"url" env:"DATABASE_URL"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DATABASE_MAX_OPEN_CONNS"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DATABASE_MAX_IDLE_CONNS"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime_minutes" env:"DATABASE_CONN_MAX_LIFETIME"`
		AutoMigrate     bool   `yaml:"auto_migrate" env:"DATABASE_AUTO_MIGRATE"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret" env:"JWT_SECRET"`
		Issuer string `yaml:"issuer" env:"JWT_ISSUER"`
		TTL    int    `yaml:"ttl" env:"JWT_TTL"` // минуты
	} `yaml:"jwt"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
		ClientURLs     string   `yaml:"-" env:"CLIENT_URLS"` // через запятую, дополняет allowed_origins
	} `yaml:"cors"`

	RateLimit struct {
		RequestsPerSecond int `yaml:"requests_per_second" env:"RATE_LIMIT_RPS"`
		Burst             int `yaml:"burst" env:"RATE_LIMIT_BURST"`
	} `yaml:"rate_limit"`

	Pagination struct {
		DefaultLimit int `yaml:"default_limit"`
		MaxLimit     int `yaml:"max_limit"`
	} `yaml:"pagination"`

	FirstAdminEmail string `yaml:"first_admin_email" env:"FIRST_ADMIN_EMAIL"`
}

var AppConfig *Config

// Load читает .env (если есть), config.yaml (если есть), затем переменные окружения.
// Переменные окружения имеют приоритет над файлом.
func Load(path string) (*Config, error) {
	var cfg Config

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = "config/config.yaml"
	}

	f, err := os.Open(path)
	switch {
	case err == nil:
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file at %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// без файла работаем только на переменных окружения
	default:
		return nil, fmt.Errorf("failed to open config file at %s: %w", path, err)
	}

	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("failed to decode environment: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig заполняет глобальный AppConfig
func LoadConfig() error {
	cfg, err := Load("")
	if err != nil {
		return err
	}
	AppConfig = cfg
	return nil
}

func GetConfig() *Config {
	return AppConfig
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 3000
	}
	if c.Server.Env == "" {
		c.Server.Env = EnvDevelopment
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 30
	}
	if c.JWT.Issuer == "" {
		c.JWT.Issuer = "scholarly"
	}
	if c.JWT.TTL <= 0 {
		c.JWT.TTL = 60
	}
	for _, origin := range strings.Split(c.CORS.ClientURLs, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			c.CORS.AllowedOrigins = append(c.CORS.AllowedOrigins, origin)
		}
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"http://localhost:5173", "http://localhost:5174"}
	}
	if c.RateLimit.RequestsPerSecond <= 0 {
		c.RateLimit.RequestsPerSecond = 5
	}
	if c.RateLimit.Burst <= 0 {
		c.RateLimit.Burst = 10
	}
	if c.Pagination.DefaultLimit <= 0 {
		c.Pagination.DefaultLimit = 6
	}
	if c.Pagination.MaxLimit <= 0 {
		c.Pagination.MaxLimit = 100
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return errors.New("database url is required (DATABASE_URL)")
	}
	if strings.TrimSpace(c.JWT.Secret) == "" {
		return errors.New("jwt secret is required (JWT_SECRET)")
	}
	switch c.Database.Driver {
	case "postgres", "mysql":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	switch c.Server.Env {
	case EnvDevelopment, EnvProduction, EnvTest:
	default:
		return fmt.Errorf("unsupported server env %q", c.Server.Env)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Server.Env == EnvProduction
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWT.TTL) * time.Minute
}

func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
