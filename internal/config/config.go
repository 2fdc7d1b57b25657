package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Server ServerConfig
	Gemini GeminiConfig
	Sarvam SarvamConfig
	Debug  DebugConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type SarvamConfig struct {
	APIKey  string
	BaseURL string
}

type DebugConfig struct {
	// AudioDir, when set, enables saving each synthesized clip to disk.
	AudioDir string
}

// Load reads configuration from the environment. Missing API keys are
// not a startup error: the synthesis endpoint reports them per-request,
// before any network call is made.
func Load() (*Config, error) {
	port, err := getEnvInt("SERVER_PORT", 8080)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: port,
		},
		Gemini: GeminiConfig{
			APIKey:  getEnv("GEMINI_API_KEY", ""),
			BaseURL: getEnv("GEMINI_BASE_URL", ""),
			Model:   getEnv("GEMINI_MODEL", "gemini-2.0-flash-exp"),
		},
		Sarvam: SarvamConfig{
			APIKey:  getEnv("SARVAM_API_KEY", ""),
			BaseURL: getEnv("SARVAM_BASE_URL", ""),
		},
		Debug: DebugConfig{
			AudioDir: getEnv("DEBUG_AUDIO_DIR", ""),
		},
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}
