// Package config loads brainbytes settings from an optional YAML file, a
// .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/abhisek/brainbytes/internal/llm"
	"github.com/abhisek/brainbytes/internal/store"
)

// EnvPrefix prefixes every environment override, e.g.
// BRAINBYTES_SERVER_PORT for server.port.
const EnvPrefix = "BRAINBYTES"

type Config struct {
	Store  StoreConfig  `mapstructure:"store"`
	Server ServerConfig `mapstructure:"server"`
	Tutor  TutorConfig  `mapstructure:"tutor"`
	Log    LogConfig    `mapstructure:"log"`
	LLM    llm.Config   `mapstructure:"llm"`
}

type StoreConfig struct {
	Driver string `mapstructure:"driver"` // "sqlite" or "postgres"
	DSN    string `mapstructure:"dsn"`    // sqlite file path or postgres URL; empty sqlite uses the default path
}

type ServerConfig struct {
	Port           int           `mapstructure:"port"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	RateLimit      float64       `mapstructure:"rate_limit"` // requests per second, 0 disables
	RateBurst      int           `mapstructure:"rate_burst"`
}

type TutorConfig struct {
	ContextTTL      time.Duration `mapstructure:"context_ttl"`
	MaxUsers        int           `mapstructure:"max_users"`
	JanitorInterval time.Duration `mapstructure:"janitor_interval"`

	// Seed fixes the random source for wrappers and follow-up order.
	// Zero picks a random seed.
	Seed uint64 `mapstructure:"seed"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "text" or "json"
}

// envBindings maps config keys to the conventional variable names the
// deployment already uses.
var envBindings = map[string]string{
	"llm.huggingface.token":  "HUGGINGFACE_TOKEN",
	"llm.openai.api_key":     "OPENAI_API_KEY",
	"llm.anthropic.api_key":  "ANTHROPIC_API_KEY",
	"llm.gemini.api_key":     "GEMINI_API_KEY",
	"llm.openrouter.api_key": "OPENROUTER_API_KEY",
	"server.port":            "PORT",
	"store.dsn":              "DATABASE_URL",
}

func setDefaults(v *viper.Viper) {
	d := llm.DefaultConfig()

	v.SetDefault("store.driver", store.DriverSQLite)
	v.SetDefault("store.dsn", "")

	v.SetDefault("server.port", 3000)
	v.SetDefault("server.request_timeout", 15*time.Second)
	v.SetDefault("server.rate_limit", 10.0)
	v.SetDefault("server.rate_burst", 20)

	v.SetDefault("tutor.context_ttl", 24*time.Hour)
	v.SetDefault("tutor.max_users", 10000)
	v.SetDefault("tutor.janitor_interval", 10*time.Minute)
	v.SetDefault("tutor.seed", uint64(0))

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("llm.provider", d.Provider)
	v.SetDefault("llm.timeout", d.Timeout)
	v.SetDefault("llm.max_tokens", d.MaxTokens)
	v.SetDefault("llm.huggingface.token", "")
	v.SetDefault("llm.huggingface.endpoint", d.HuggingFace.Endpoint)
	v.SetDefault("llm.huggingface.model", d.HuggingFace.Model)
	v.SetDefault("llm.anthropic.api_key", "")
	v.SetDefault("llm.anthropic.model", d.Anthropic.Model)
	v.SetDefault("llm.openai.api_key", "")
	v.SetDefault("llm.openai.model", d.OpenAI.Model)
	v.SetDefault("llm.openai.base_url", "")
	v.SetDefault("llm.gemini.api_key", "")
	v.SetDefault("llm.gemini.model", d.Gemini.Model)
	v.SetDefault("llm.openrouter.api_key", "")
	v.SetDefault("llm.openrouter.model", d.OpenRouter.Model)
	v.SetDefault("llm.openrouter.base_url", "")
}

// Load reads configuration. An empty path searches for config.yaml in the
// working directory and the user config dir, and a missing file is not an
// error; an explicit path must exist. A .env file in the working
// directory is loaded first when present and never overrides variables
// that are already set.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, name := range envBindings {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, name); err != nil {
			return nil, fmt.Errorf("bind %s: %w", name, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "brainbytes"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges and the selected generator's settings.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case store.DriverSQLite:
	case store.DriverPostgres:
		if c.Store.DSN == "" {
			return errors.New("store.dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown store driver: %q", c.Store.Driver)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.RequestTimeout <= 0 {
		return fmt.Errorf("server.request_timeout must be positive, got %s", c.Server.RequestTimeout)
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit must not be negative, got %g", c.Server.RateLimit)
	}
	if c.Server.RateLimit > 0 && c.Server.RateBurst <= 0 {
		return errors.New("server.rate_burst must be positive when rate limiting is enabled")
	}

	if c.Tutor.ContextTTL < 0 {
		return errors.New("tutor.context_ttl must not be negative")
	}
	if c.Tutor.MaxUsers < 0 {
		return errors.New("tutor.max_users must not be negative")
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}

	if err := c.LLM.Validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}
	return nil
}
