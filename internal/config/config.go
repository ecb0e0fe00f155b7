package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds everything the planner needs at startup.
type Config struct {
	HTTPAddr         string        `env:"HTTP_ADDR" env-default:":8080"`
	YouTubeAPIKey    string        `env:"DEVELOPER_KEY" env-required:"true"`
	YouTubeEndpoint  string        `env:"YOUTUBE_ENDPOINT"`
	OpenAIAPIKey     string        `env:"OPENAI_API_KEY" env-required:"true"`
	OpenAIBaseURL    string        `env:"OPENAI_BASE_URL"`
	SearchMaxResults int           `env:"SEARCH_MAX_RESULTS" env-default:"50"`
	SessionIdleTTL   time.Duration `env:"SESSION_IDLE_TTL" env-default:"24h"`
	Logger           LoggerConfig
}

// LoggerConfig is mapped onto logger.Config by the binaries.
type LoggerConfig struct {
	Level      string `env:"LOG_LEVEL" env-default:"info"`
	Encoding   string `env:"LOG_ENCODING" env-default:"json"`
	OutputPath string `env:"LOG_OUTPUT_PATH"`
}

// Load reads an optional .env file and then the process environment.
// Both provider credentials are required; a missing one is returned as an error.
func Load() (*Config, error) {
	// .env is optional, real environment wins
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", err)
	}

	// cleanenv accepts a variable that is set but empty
	if strings.TrimSpace(cfg.YouTubeAPIKey) == "" {
		return nil, fmt.Errorf("DEVELOPER_KEY environment variable must be set")
	}
	if strings.TrimSpace(cfg.OpenAIAPIKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable must be set")
	}
	if cfg.SearchMaxResults <= 0 {
		return nil, fmt.Errorf("SEARCH_MAX_RESULTS must be positive, got %d", cfg.SearchMaxResults)
	}

	return &cfg, nil
}

// MaskKey hides all but the last four characters of a credential for logging.
func MaskKey(key string) string {
	if len(key) <= 4 {
		return "[masked]"
	}
	return "[masked]" + key[len(key)-4:]
}
