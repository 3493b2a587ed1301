// Package config loads the application configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Server struct {
	Addr string `mapstructure:"addr"`
}

type DB struct {
	Path string `mapstructure:"path"`
}

type LLM struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key" validate:"required"`
	Model   string `mapstructure:"model"`
	RPM     int    `mapstructure:"rpm"`
	Burst   int    `mapstructure:"burst"`
}

type Insight struct {
	TTL        time.Duration `mapstructure:"ttl"`
	WindowDays int           `mapstructure:"window_days"`
}

type Config struct {
	Server  Server  `mapstructure:"server"`
	DB      DB      `mapstructure:"db"`
	LLM     LLM     `mapstructure:"llm"`
	Insight Insight `mapstructure:"insight"`
}

// Load reads the configuration file at path. Values can be overridden through
// LIFE_-prefixed environment variables (e.g. LIFE_LLM_API_KEY).
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("server.addr", "localhost:8080")
	v.SetDefault("db.path", "life-atlas.db")
	v.SetDefault("llm.model", "gpt-4o-mini")
	v.SetDefault("llm.rpm", 60)
	v.SetDefault("llm.burst", 5)
	v.SetDefault("insight.ttl", 6*time.Hour)
	v.SetDefault("insight.window_days", 7)

	v.SetEnvPrefix("LIFE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvs(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &config, nil
}

// bindEnvs makes AutomaticEnv see nested keys: viper only consults the
// environment for keys it already knows about.
func bindEnvs(v *viper.Viper) {
	for _, key := range []string{
		"server.addr",
		"db.path",
		"llm.base_url",
		"llm.api_key",
		"llm.model",
		"llm.rpm",
		"llm.burst",
		"insight.ttl",
		"insight.window_days",
	} {
		_ = v.BindEnv(key)
	}
}
