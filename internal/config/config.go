package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// EnvConfigPath переменная окружения, переопределяющая путь к конфигу
const EnvConfigPath = "CONFIG_PATH"

// DefaultPath путь к конфигу по умолчанию
const DefaultPath = "config.toml"

// ErrInvalidConfig возвращается, если конфиг не прошёл валидацию
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Redis    RedisConfig    `toml:"redis"`
}

// ServerConfig таймауты указываются в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RedisConfig кэш провайдеров; при Enabled = false запросы идут сразу в БД
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTL      int    `toml:"ttl"` // секунды
}

// Load читает конфиг из файла. Если задана CONFIG_PATH, используется она.
func Load(path string) (*Config, error) {
	if env := os.Getenv(EnvConfigPath); env != "" {
		path = env
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default возвращает конфиг со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "availability-service",
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
			TTL:  60,
		},
	}
}

// Validate проверяет обязательные поля и диапазоны значений
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, fmt.Sprintf("server.http_port out of range: %d", c.Server.HTTPPort))
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.IdleTimeout < 0 || c.Server.ShutdownTimeout < 0 {
		problems = append(problems, "server timeouts must not be negative")
	}

	if c.Database.Host == "" {
		problems = append(problems, "database.host is required")
	}
	if c.Database.DBName == "" {
		problems = append(problems, "database.dbname is required")
	}
	if c.Database.Port <= 0 || c.Database.Port > 65535 {
		problems = append(problems, fmt.Sprintf("database.port out of range: %d", c.Database.Port))
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		problems = append(problems, fmt.Sprintf("metrics.path must start with '/': %q", c.Metrics.Path))
	}

	if c.Redis.Enabled {
		if c.Redis.Addr == "" {
			problems = append(problems, "redis.addr is required when redis is enabled")
		}
		if c.Redis.TTL <= 0 {
			problems = append(problems, "redis.ttl must be positive")
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.DBName,
	}
	if d.User != "" {
		u.User = url.UserPassword(d.User, d.Password)
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// CacheTTL время жизни записи в кэше провайдеров
func (r RedisConfig) CacheTTL() time.Duration {
	return time.Duration(r.TTL) * time.Second
}
