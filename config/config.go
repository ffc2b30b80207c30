package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"
)

// Config holds the admin client settings. Values come from an optional YAML
// file, overridden by environment variables, with sane defaults for anything
// left unset.
type Config struct {
	API struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"api"`
	Poll struct {
		IntervalSeconds int `yaml:"interval_seconds"`
	} `yaml:"poll"`
	ErrorLog struct {
		ThrottleSeconds int `yaml:"throttle_seconds"`
		Capacity        int `yaml:"capacity"`
	} `yaml:"error_log"`
}

func defaults() *Config {
	cfg := &Config{}
	cfg.API.BaseURL = "http://localhost:8080/api/v1"
	cfg.API.TimeoutSeconds = 30
	cfg.Poll.IntervalSeconds = 30
	cfg.ErrorLog.ThrottleSeconds = 5
	cfg.ErrorLog.Capacity = 50
	return cfg
}

// Load reads the YAML file at path (skipped when path is empty or the file
// does not exist) and applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("config: api.base_url must not be empty")
	}
	return cfg, nil
}

func (cfg *Config) applyEnv() {
	if v := os.Getenv("ADMIN_API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := getEnvInt("ADMIN_API_TIMEOUT_SECONDS"); v > 0 {
		cfg.API.TimeoutSeconds = v
	}
	if v := getEnvInt("ADMIN_POLL_INTERVAL_SECONDS"); v > 0 {
		cfg.Poll.IntervalSeconds = v
	}
}

func getEnvInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func (cfg *Config) APITimeout() time.Duration {
	return time.Duration(cfg.API.TimeoutSeconds) * time.Second
}

func (cfg *Config) PollInterval() time.Duration {
	return time.Duration(cfg.Poll.IntervalSeconds) * time.Second
}

func (cfg *Config) ErrorThrottle() time.Duration {
	return time.Duration(cfg.ErrorLog.ThrottleSeconds) * time.Second
}
