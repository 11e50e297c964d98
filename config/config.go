// Package config loads application settings from a .env file and environment variables.
// Environment variables always take precedence over .env file values.
package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	// Sanity content repository.
	ProjectID  string
	Dataset    string
	APIVersion string
	UseCDN     bool

	// Timeout applied to every content-repository request. A hung request
	// fails its own page section instead of hanging forever.
	HTTPTimeout time.Duration

	// Preview-mode signing secret. Empty disables preview routes.
	PreviewSecret string

	// Server
	Debug      bool
	Port       string
	TLSDomains []string
	StaticDir  string
}

// Load reads configuration from a .env file (if present) and then from
// environment variables. Environment variables always win.
func Load() *Config {
	v := newViper()

	// Defaults
	v.SetDefault("SANITY_DATASET", "production")
	v.SetDefault("SANITY_API_VERSION", "2024-05-31")
	v.SetDefault("SANITY_USE_CDN", true)
	v.SetDefault("HTTP_TIMEOUT", "15s")
	v.SetDefault("PORT", ":9000")
	v.SetDefault("STATIC_DIR", "build")
	v.SetDefault("TLS_DOMAINS", "lucasforesti.com.br,www.lucasforesti.com.br")
	v.SetDefault("DEBUG", false)

	cfg := &Config{
		ProjectID:     v.GetString("SANITY_PROJECT_ID"),
		Dataset:       v.GetString("SANITY_DATASET"),
		APIVersion:    v.GetString("SANITY_API_VERSION"),
		UseCDN:        v.GetBool("SANITY_USE_CDN"),
		HTTPTimeout:   v.GetDuration("HTTP_TIMEOUT"),
		PreviewSecret: v.GetString("PREVIEW_SECRET"),
		Debug:         v.GetBool("DEBUG"),
		Port:          v.GetString("PORT"),
		TLSDomains:    splitTrimmed(v.GetString("TLS_DOMAINS")),
		StaticDir:     v.GetString("STATIC_DIR"),
	}

	cfg.validate()
	return cfg
}

// PreviewKey returns the preview-token signing key as a byte slice.
func (c *Config) PreviewKey() []byte {
	return []byte(c.PreviewSecret)
}

// PreviewEnabled reports whether draft-preview routes should be registered.
func (c *Config) PreviewEnabled() bool {
	return c.PreviewSecret != ""
}

// validate fails fast only for values with no safe default. A wrong project
// ID silently returns empty results rather than erroring, so its absence is
// the one fatal misconfiguration.
func (c *Config) validate() {
	if c.ProjectID == "" {
		log.Fatal("config: SANITY_PROJECT_ID must be set")
	}
	if c.HTTPTimeout <= 0 {
		log.Fatal("config: HTTP_TIMEOUT must be positive")
	}
}

func newViper() *viper.Viper {
	// Silently load .env, OK if the file doesn't exist (production uses real env vars).
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using environment variables only")
	}

	v := viper.New()
	v.AutomaticEnv()
	return v
}

func splitTrimmed(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
