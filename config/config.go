package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed default-config.yaml
var defaultConfigYAML string

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type RateLimitConfig struct {
	Capacity int           `yaml:"capacity"`
	Refill   time.Duration `yaml:"refill"`
}

type CacheConfig struct {
	Driver    string        `yaml:"driver"`
	RedisAddr string        `yaml:"redis_addr"`
	TTL       time.Duration `yaml:"ttl"`
}

type EventsConfig struct {
	Sink         string `yaml:"sink"`
	RedisChannel string `yaml:"redis_channel"`
}

type SessionsConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

type ExplanationConfig struct {
	Enabled bool          `yaml:"enabled"`
	Model   string        `yaml:"model"`
	APIURL  string        `yaml:"api_url"`
	APIKey  string        `yaml:"-"`
	Timeout time.Duration `yaml:"timeout"`
}

type Config struct {
	Env         string            `yaml:"env"`
	Server      ServerConfig      `yaml:"server"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
	Cache       CacheConfig       `yaml:"cache"`
	Events      EventsConfig      `yaml:"events"`
	Sessions    SessionsConfig    `yaml:"sessions"`
	Explanation ExplanationConfig `yaml:"explanation"`
}

// Default returns the embedded configuration.
func Default() (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal([]byte(defaultConfigYAML), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse default config: %w", err)
	}
	return &cfg, nil
}

// Load reads the defaults, overlays the file at path when path is not
// empty, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv(os.Getenv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	if env := getenv("MORTGAGE_ENV"); env != "" {
		c.Env = env
	}
	if port := getenv("PORT"); port != "" {
		c.Server.Addr = ":" + strings.TrimPrefix(port, ":")
	}
	if addr := getenv("REDIS_ADDR"); addr != "" {
		c.Cache.RedisAddr = addr
	}
	if key := getenv("OPENAI_API_KEY"); key != "" {
		c.Explanation.APIKey = key
	}
}

func (c *Config) Validate() error {
	switch c.Cache.Driver {
	case "memory", "redis":
	default:
		return fmt.Errorf("unknown cache driver %q", c.Cache.Driver)
	}

	switch c.Events.Sink {
	case "log", "redis", "none":
	default:
		return fmt.Errorf("unknown event sink %q", c.Events.Sink)
	}

	if c.RateLimit.Capacity <= 0 || c.RateLimit.Refill <= 0 {
		return fmt.Errorf("rate limit capacity and refill must be positive")
	}
	return nil
}

// UsesRedis reports whether any component needs a Redis connection.
func (c *Config) UsesRedis() bool {
	return c.Cache.Driver == "redis" || c.Events.Sink == "redis"
}
