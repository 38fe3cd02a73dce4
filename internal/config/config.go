// Package config собирает настройки клиента и тестового сервера:
// значения по умолчанию, YAML файл, .env файл и переменные окружения PATINFLY_*.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/iudanet/patinfly/internal/validation"
)

// EnvPrefix префикс переменных окружения
const EnvPrefix = "PATINFLY_"

// Драйверы локального кэша
const (
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
)

type Config struct {
	Remote   RemoteConfig   `koanf:"remote"`
	Cache    CacheConfig    `koanf:"cache"`
	Fixtures FixturesConfig `koanf:"fixtures"`
	HTTP     HTTPConfig     `koanf:"http"`
	Log      LogConfig      `koanf:"log"`
	UI       UIConfig       `koanf:"ui"`
}

// RemoteConfig удаленный сервис проката
type RemoteConfig struct {
	URL     string        `koanf:"url" validate:"required,url"`
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`
}

// CacheConfig локальный кэш
type CacheConfig struct {
	Driver      string `koanf:"driver" validate:"oneof=bolt sqlite redis"`
	Path        string `koanf:"path" validate:"required_unless=Driver redis"`
	RedisURL    string `koanf:"redis_url" validate:"required_if=Driver redis"`
	RedisPrefix string `koanf:"redis_prefix"`
}

// FixturesConfig каталог с JSON документами; пустой означает встроенные
type FixturesConfig struct {
	Dir string `koanf:"dir"`
}

// HTTPConfig тестовый сервер
type HTTPConfig struct {
	Address         string        `koanf:"address" validate:"required"`
	RateLimit       float64       `koanf:"rate_limit" validate:"gte=0"`
	RateBurst       int           `koanf:"rate_burst" validate:"gte=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json text"`
}

type UIConfig struct {
	Lang string `koanf:"lang" validate:"required"`
}

func defaults() map[string]any {
	return map[string]any{
		"remote.url":     "http://localhost:8080",
		"remote.timeout": "30s",

		"cache.driver":       DriverBolt,
		"cache.path":         "patinfly-cache.db",
		"cache.redis_prefix": "patinfly",

		"http.address":          ":8080",
		"http.rate_limit":       10.0,
		"http.rate_burst":       20,
		"http.shutdown_timeout": "10s",

		"log.level":  "info",
		"log.format": "text",

		"ui.lang": "en",
	}
}

var envKeyMap = map[string]string{
	"SERVER_URL":            "remote.url",
	"REMOTE_URL":            "remote.url",
	"REMOTE_TIMEOUT":        "remote.timeout",
	"CACHE_DRIVER":          "cache.driver",
	"CACHE_PATH":            "cache.path",
	"REDIS_URL":             "cache.redis_url",
	"REDIS_PREFIX":          "cache.redis_prefix",
	"FIXTURES_DIR":          "fixtures.dir",
	"HTTP_ADDRESS":          "http.address",
	"HTTP_RATE_LIMIT":       "http.rate_limit",
	"HTTP_RATE_BURST":       "http.rate_burst",
	"HTTP_SHUTDOWN_TIMEOUT": "http.shutdown_timeout",
	"LOG_LEVEL":             "log.level",
	"LOG_FORMAT":            "log.format",
	"LANG":                  "ui.lang",
}

func envKeyReplacer(s string) string {
	return envKeyMap[strings.TrimPrefix(s, EnvPrefix)]
}

// Load читает конфигурацию. Порядок (каждый следующий перекрывает предыдущий):
// значения по умолчанию, configPath (если задан), envFile (если существует),
// переменные окружения PATINFLY_*.
func Load(configPath, envFile string) (*Config, error) {
	k := koanf.New(".")

	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("set default %s: %w", key, err)
		}
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	if envFile != "" {
		// godotenv не перезаписывает уже заданные переменные
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file: %w", err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKeyReplacer), nil); err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения после всех переопределений, в том числе флагами
func (c *Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}

// DefaultEnvFile .env в текущем каталоге, если он есть
func DefaultEnvFile() string {
	if _, err := os.Stat(".env"); err == nil {
		return ".env"
	}
	return ""
}
