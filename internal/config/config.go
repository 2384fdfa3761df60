package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Gemini GeminiConfig
	App    AppConfig
}

type ServerConfig struct {
	Host string
	Port string
}

type GeminiConfig struct {
	// APIKey is the first non-empty value of GEMINI_API_KEY or
	// GOOGLE_API_KEY. Empty when neither is set; that is not an error
	// here — it is reported at submit time.
	APIKey  string
	Model   string
	Timeout time.Duration
}

type AppConfig struct {
	MaxUploadSize     int64
	AllowedFormats    []string
	ImageDisplayWidth int
}

// apiKeyVars lists the candidate environment variables in resolution order.
var apiKeyVars = []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"}

func Load() (*Config, error) {
	// Best effort: a missing .env file is fine, the environment may
	// already carry everything.
	_ = godotenv.Load()

	viper.SetDefault("SERVER_HOST", "localhost")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GEMINI_MODEL", "gemini-3-flash-preview")
	viper.SetDefault("GEMINI_TIMEOUT_SECONDS", 120)
	viper.SetDefault("APP_MAX_UPLOAD_SIZE", 10*1024*1024) // 10MB
	viper.SetDefault("APP_ALLOWED_FORMATS", []string{".jpg", ".jpeg", ".png"})
	viper.SetDefault("APP_IMAGE_DISPLAY_WIDTH", 500)

	viper.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("SERVER_HOST"),
			Port: viper.GetString("SERVER_PORT"),
		},
		Gemini: GeminiConfig{
			APIKey:  resolveAPIKey(),
			Model:   viper.GetString("GEMINI_MODEL"),
			Timeout: time.Duration(viper.GetInt("GEMINI_TIMEOUT_SECONDS")) * time.Second,
		},
		App: AppConfig{
			MaxUploadSize:     viper.GetInt64("APP_MAX_UPLOAD_SIZE"),
			AllowedFormats:    viper.GetStringSlice("APP_ALLOWED_FORMATS"),
			ImageDisplayWidth: viper.GetInt("APP_IMAGE_DISPLAY_WIDTH"),
		},
	}

	if cfg.Gemini.Timeout <= 0 {
		return nil, fmt.Errorf("GEMINI_TIMEOUT_SECONDS must be positive, got %v", cfg.Gemini.Timeout)
	}
	if cfg.App.MaxUploadSize <= 0 {
		return nil, fmt.Errorf("APP_MAX_UPLOAD_SIZE must be positive, got %d", cfg.App.MaxUploadSize)
	}

	return cfg, nil
}

func resolveAPIKey() string {
	for _, name := range apiKeyVars {
		if v := strings.TrimSpace(viper.GetString(name)); v != "" {
			return v
		}
	}
	return ""
}
