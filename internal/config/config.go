package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"weathertext.app/pkg/errors"
)

const (
	maxRedisDB      = 15
	maxPortNumber   = 65535
	maxFetchTimeout = 2 * time.Minute
)

// Config represents the process configuration. User-facing weather settings
// (provider, cache seconds, quick access control) live in the settings blob instead.
type Config struct {
	Server   ServerConfig   `split_words:"true"`
	Weather  WeatherConfig  `split_words:"true"`
	Settings SettingsConfig `split_words:"true"`
	Redis    RedisConfig    `split_words:"true"`
	Database DatabaseConfig `split_words:"true"`
	Log      LogConfig      `split_words:"true"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

type WeatherConfig struct {
	WttrURL         string        `envconfig:"WTTR_URL" default:"https://wttr.in/?format=3"`
	HTTPTimeout     time.Duration `envconfig:"WEATHER_HTTP_TIMEOUT" default:"10s"`
	EnableLogging   bool          `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
	LogFilePath     string        `envconfig:"WEATHER_LOG_FILE_PATH" default:""`
	CoalesceFetches bool          `envconfig:"WEATHER_COALESCE_FETCHES" default:"false"`
}

// SettingsStoreType represents where the settings blob is persisted
type SettingsStoreType int

const (
	SettingsStoreUnknown SettingsStoreType = iota
	SettingsStoreFile
	SettingsStoreRedis
	SettingsStoreDatabase
)

// String returns the string representation of the store type
func (s SettingsStoreType) String() string {
	switch s {
	case SettingsStoreFile:
		return "file"
	case SettingsStoreRedis:
		return "redis"
	case SettingsStoreDatabase:
		return "database"
	default:
		return "unknown"
	}
}

// IsValid checks if the store type is valid
func (s SettingsStoreType) IsValid() bool {
	return s == SettingsStoreFile || s == SettingsStoreRedis || s == SettingsStoreDatabase
}

// SettingsStoreTypeFromString converts string to SettingsStoreType enum
func SettingsStoreTypeFromString(s string) SettingsStoreType {
	switch s {
	case "file":
		return SettingsStoreFile
	case "redis":
		return SettingsStoreRedis
	case "database":
		return SettingsStoreDatabase
	default:
		return SettingsStoreUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (s *SettingsStoreType) UnmarshalText(text []byte) error {
	*s = SettingsStoreTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (s SettingsStoreType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type SettingsConfig struct {
	Store    SettingsStoreType `envconfig:"SETTINGS_STORE" default:"file"`
	FilePath string            `envconfig:"SETTINGS_FILE_PATH" default:"data/settings.json"`
	RedisKey string            `envconfig:"SETTINGS_REDIS_KEY" default:"weathertext:settings"`
	Name     string            `envconfig:"SETTINGS_NAME" default:"default"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type DatabaseConfig struct {
	Driver   string `envconfig:"DB_DRIVER" default:"postgres"`
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"weathertext"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	Path     string `envconfig:"DB_PATH" default:"data/weathertext.db"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Settings.Validate(); err != nil {
		return err
	}
	if c.Settings.Store == SettingsStoreRedis {
		if err := c.Redis.Validate(); err != nil {
			return err
		}
	}
	if c.Settings.Store == SettingsStoreDatabase {
		if err := c.Database.Validate(); err != nil {
			return err
		}
	}
	return c.Log.Validate()
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (w *WeatherConfig) Validate() error {
	if w.WttrURL == "" {
		return errors.NewConfigurationError("WTTR_URL cannot be empty", nil)
	}
	if !strings.HasPrefix(w.WttrURL, "http://") && !strings.HasPrefix(w.WttrURL, "https://") {
		return errors.NewConfigurationError("WTTR_URL must start with http:// or https://", nil)
	}
	if w.HTTPTimeout <= 0 || w.HTTPTimeout > maxFetchTimeout {
		return errors.NewConfigurationError("WEATHER_HTTP_TIMEOUT must be positive and at most 2m", nil)
	}
	return nil
}

func (s *SettingsConfig) Validate() error {
	if !s.Store.IsValid() {
		return errors.NewConfigurationError("SETTINGS_STORE must be one of: file, redis, database", nil)
	}
	if s.Store == SettingsStoreFile && s.FilePath == "" {
		return errors.NewConfigurationError("SETTINGS_FILE_PATH cannot be empty when using file store", nil)
	}
	if s.Store == SettingsStoreRedis && s.RedisKey == "" {
		return errors.NewConfigurationError("SETTINGS_REDIS_KEY cannot be empty when using redis store", nil)
	}
	if s.Name == "" {
		return errors.NewConfigurationError("SETTINGS_NAME cannot be empty", nil)
	}
	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis store", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	switch d.Driver {
	case "postgres":
		if d.Host == "" {
			return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
		}
		if d.Port < 1 || d.Port > maxPortNumber {
			return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
		}
		if d.User == "" {
			return errors.NewConfigurationError("DB_USER cannot be empty", nil)
		}
		if d.Name == "" {
			return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
		}
		return d.ValidateSSLMode()
	case "sqlite":
		if d.Path == "" {
			return errors.NewConfigurationError("DB_PATH cannot be empty when DB_DRIVER is sqlite", nil)
		}
		return nil
	default:
		return errors.NewConfigurationError("DB_DRIVER must be one of: postgres, sqlite", nil)
	}
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (l *LogConfig) Validate() error {
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return errors.NewConfigurationError("LOG_FORMAT must be one of: json, text", nil)
	}
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
	}
	return nil
}
