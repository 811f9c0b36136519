package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	AI struct {
		BaseURL string `yaml:"baseURL"`
		Model   string `yaml:"model"`
		// APIKey is env-only; never committed to the config file.
		APIKey string `yaml:"-"`
	} `yaml:"ai"`
}

const (
	defaultPort    = 8000
	defaultBaseURL = "https://openrouter.ai/api/v1"
	defaultModel   = "meta-llama/llama-3.3-70b-instruct:free"
)

// Load baca file config.yaml kalau ada, lalu apply env overrides.
// A missing file is fine; the service can run on env vars alone.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	case os.IsNotExist(err):
		// env-only deployment
	default:
		return nil, err
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort
	}
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = p
		}
	}
	if cfg.AI.BaseURL == "" {
		cfg.AI.BaseURL = defaultBaseURL
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = defaultModel
	}
	cfg.AI.APIKey = os.Getenv("OPENROUTER_API_KEY")

	return &cfg, nil
}
