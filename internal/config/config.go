package config

import "github.com/caarlos0/env/v11"

// Config is the environment-driven application configuration
type Config struct {
	Host        string `env:"HOST"`
	Port        int    `env:"PORT" envDefault:"8080"`
	StorageType string `env:"STORAGE_TYPE" envDefault:"memory"`
	RedisURL    string `env:"REDIS_URL"`

	// Generation settings. Dialogue degrades to static fallback
	// phrases when no API key is configured.
	OpenAIAPIKey         string `env:"OPENAI_API_KEY"`
	OpenAIModel          string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	OpenAICompletionsURL string `env:"OPENAI_COMPLETIONS_URL"`
}

// Load parses configuration from the environment
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
