package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// DefaultUserAgent is the default User-Agent string sent with all HTTP requests.
const DefaultUserAgent = "GameHub/1.0 (+https://github.com/Belphemur/GameHub)"

// DefaultBaseURL is the RAWG API root.
const DefaultBaseURL = "https://api.rawg.io/api"

// ErrMissingAPIKey is returned by Validate when no RAWG access key is configured.
var ErrMissingAPIKey = errors.New("rawg.api_key is required (set APP_RAWG_API_KEY or RAWG_API_KEY)")

type Config struct {
	Rawg struct {
		APIKey            string  `mapstructure:"api_key" yaml:"api_key"`
		BaseURL           string  `mapstructure:"base_url" yaml:"base_url"`
		RequestsPerSecond float64 `mapstructure:"requests_per_second" yaml:"requests_per_second"` // 0 disables outbound rate limiting
	} `mapstructure:"rawg" yaml:"rawg"`
	ProxyConnectionString string `mapstructure:"proxy_connection_string" yaml:"proxy_connection_string"`
	ClientTimeout         string `mapstructure:"client_timeout" yaml:"client_timeout"` // Go duration string like "30s", "1h", etc.
	UserAgent             string `mapstructure:"user_agent" yaml:"user_agent"`
	Server                struct {
		Port    int    `mapstructure:"port" yaml:"port"`
		Address string `mapstructure:"address" yaml:"address"`
	} `mapstructure:"server" yaml:"server"`
	GRPC struct {
		Enabled bool `mapstructure:"enabled" yaml:"enabled"`
		Port    int  `mapstructure:"port" yaml:"port"`
	} `mapstructure:"grpc" yaml:"grpc"`
	Metrics struct {
		Enabled bool `mapstructure:"enabled" yaml:"enabled"`
		Port    int  `mapstructure:"port" yaml:"port"`
	} `mapstructure:"metrics" yaml:"metrics"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	Cache    struct {
		Provider string `mapstructure:"provider" yaml:"provider"` // "memory" or "redis"
		Size     int    `mapstructure:"size" yaml:"size"`         // Maximum number of entries in the LRU cache
		TTL      string `mapstructure:"ttl" yaml:"ttl"`           // Revalidation window of detail lookups
		Redis    struct {
			Address  string `mapstructure:"address" yaml:"address"`
			Password string `mapstructure:"password" yaml:"password"`
			DB       int    `mapstructure:"db" yaml:"db"`
		} `mapstructure:"redis" yaml:"redis"`
	} `mapstructure:"cache" yaml:"cache"`
	Search struct {
		Debounce string `mapstructure:"debounce" yaml:"debounce"` // Quiet period before a live search query is issued
		PageSize int    `mapstructure:"page_size" yaml:"page_size"`
	} `mapstructure:"search" yaml:"search"`
	Sentry struct {
		DSN         string `mapstructure:"dsn" yaml:"dsn"`
		Environment string `mapstructure:"environment" yaml:"environment"`
	} `mapstructure:"sentry" yaml:"sentry"`
}

var (
	mu           sync.RWMutex
	globalConfig *Config
	activeViper  *viper.Viper
	logger       zerolog.Logger
)

func init() {
	// Initialize zerolog with console writer for human-readable output
	logger = newConsoleLogger(os.Stdout)
}

func newConsoleLogger(out io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:     out,
		NoColor: false,
	}).With().Timestamp().Logger()
}

// SetLogOutput redirects the global logger, keeping its level. Commands whose
// stdout is data or a terminal UI send logs elsewhere.
func SetLogOutput(out io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = newConsoleLogger(out).Level(logger.GetLevel())
}

// Load reads the configuration, configures the global log level and stores
// the result so that GetConfig returns it. An empty path searches config.yaml
// in "." and "./config".
func Load(path string) (*Config, error) {
	// A missing .env is the normal case outside of local development
	_ = godotenv.Load(".env")

	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || path != "" {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}
	if config.Rawg.BaseURL == "" {
		config.Rawg.BaseURL = DefaultBaseURL
	}

	ConfigureLogLevel(config.LogLevel)

	mu.Lock()
	globalConfig = &config
	activeViper = v
	mu.Unlock()

	log := GetLogger()
	log.Info().Str("file", v.ConfigFileUsed()).Msg("Configuration loaded successfully")
	return &config, nil
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variable support
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("log_level", "LOG_LEVEL", "APP_LOG_LEVEL")
	_ = v.BindEnv("rawg.api_key", "APP_RAWG_API_KEY", "RAWG_API_KEY")
	_ = v.BindEnv("sentry.dsn", "APP_SENTRY_DSN", "SENTRY_DSN")

	// Defaults also register every key so AutomaticEnv can override it
	v.SetDefault("rawg.api_key", "")
	v.SetDefault("rawg.base_url", DefaultBaseURL)
	v.SetDefault("rawg.requests_per_second", 0)
	v.SetDefault("proxy_connection_string", "")
	v.SetDefault("client_timeout", "15s")
	v.SetDefault("user_agent", DefaultUserAgent)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.address", "localhost")
	v.SetDefault("grpc.enabled", false)
	v.SetDefault("grpc.port", 8081)
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.port", 9090)
	v.SetDefault("log_level", "info")
	v.SetDefault("cache.provider", "memory")
	v.SetDefault("cache.size", 500)
	v.SetDefault("cache.ttl", "1h")
	v.SetDefault("cache.redis.address", "")
	v.SetDefault("cache.redis.password", "")
	v.SetDefault("cache.redis.db", 0)
	v.SetDefault("search.debounce", "400ms")
	v.SetDefault("search.page_size", 5)
	v.SetDefault("sentry.dsn", "")
	v.SetDefault("sentry.environment", "production")
	return v
}

// Validate checks the settings every command talking to the catalog needs.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Rawg.APIKey) == "" {
		return ErrMissingAPIKey
	}
	if c.Cache.Provider == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("cache.redis.address is required when cache.provider is redis")
	}
	return nil
}

// ClientTimeoutDuration returns the HTTP client timeout, 15s when unset or invalid.
func (c *Config) ClientTimeoutDuration() time.Duration {
	return parseDuration("client_timeout", c.ClientTimeout, 15*time.Second)
}

// CacheTTL returns the revalidation window of cached detail lookups, 1h when unset or invalid.
func (c *Config) CacheTTL() time.Duration {
	return parseDuration("cache.ttl", c.Cache.TTL, time.Hour)
}

// SearchDebounce returns the live search quiet period, 400ms when unset or invalid.
func (c *Config) SearchDebounce() time.Duration {
	return parseDuration("search.debounce", c.Search.Debounce, 400*time.Millisecond)
}

// SearchPageSize returns the number of live search results requested, 5 when unset.
func (c *Config) SearchPageSize() int {
	if c.Search.PageSize <= 0 {
		return 5
	}
	return c.Search.PageSize
}

func parseDuration(key, value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		log := GetLogger()
		log.Warn().Err(err).Str("key", key).Str("value", value).Dur("default", fallback).Msg("Invalid duration, using default")
		return fallback
	}
	return parsed
}

// Redacted returns a copy of the configuration with secrets masked, for display.
func (c *Config) Redacted() Config {
	out := *c
	out.Rawg.APIKey = mask(out.Rawg.APIKey)
	out.Cache.Redis.Password = mask(out.Cache.Redis.Password)
	out.Sentry.DSN = mask(out.Sentry.DSN)
	return out
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 4 {
		return "****"
	}
	return secret[:4] + strings.Repeat("*", len(secret)-4)
}

// ConfigureLogLevel parses and applies the global log level, defaulting to info.
func ConfigureLogLevel(value string) {
	level := zerolog.InfoLevel // default
	if value != "" {
		if parsedLevel, err := zerolog.ParseLevel(value); err == nil {
			level = parsedLevel
		} else {
			log := GetLogger()
			log.Warn().Str("invalid_level", value).Msg("Invalid log level, using default 'info'")
		}
	}

	// Set the global log level
	zerolog.SetGlobalLevel(level)

	mu.Lock()
	logger = logger.Level(level)
	log := logger
	mu.Unlock()

	log.Debug().Str("level", level.String()).Msg("Logging configured")
}

// WatchLogLevel re-applies log_level whenever the loaded config file changes.
// It is a no-op when no config file was found.
func WatchLogLevel() {
	mu.RLock()
	v := activeViper
	mu.RUnlock()
	if v == nil || v.ConfigFileUsed() == "" {
		return
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		level := v.GetString("log_level")
		log := GetLogger()
		log.Info().Str("file", e.Name).Str("level", level).Msg("Config file changed, reloading log level")
		ConfigureLogLevel(level)
	})
	v.WatchConfig()
}

// GetConfig returns the configuration stored by the last successful Load, or nil.
func GetConfig() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return globalConfig
}

// GetUserAgent returns the configured User-Agent, or the default one.
func GetUserAgent() string {
	if cfg := GetConfig(); cfg != nil && cfg.UserAgent != "" {
		return cfg.UserAgent
	}

	return DefaultUserAgent
}

func GetLogger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}
