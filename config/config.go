package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	AppName     = "ecoscan"
	EnvFileName = "config.env"
)

// Environment variable names read by the pipeline.
const (
	EnvGeminiAPIKey  = "GEMINI_API_KEY"
	EnvReasonerURL   = "ECOSCAN_REASONER_URL"
	EnvReasonerModel = "ECOSCAN_REASONER_MODEL"
)

// Defaults for the local reasoning model service.
const (
	DefaultReasonerURL   = "http://localhost:11434"
	DefaultReasonerModel = "mistral"
)

// Credentials holds the external-service configuration for a single
// pipeline invocation. Stages accept it explicitly so the core stays
// testable without environment coupling; the zero value means "read
// from the environment at call time".
type Credentials struct {
	GeminiAPIKey  string
	ReasonerURL   string
	ReasonerModel string
}

// FromEnv fills any unset Credentials fields from the environment.
// Reads happen here, at call time, never at package init.
func (c Credentials) FromEnv() Credentials {
	if c.GeminiAPIKey == "" {
		c.GeminiAPIKey = os.Getenv(EnvGeminiAPIKey)
	}
	if c.ReasonerURL == "" {
		c.ReasonerURL = os.Getenv(EnvReasonerURL)
		if c.ReasonerURL == "" {
			c.ReasonerURL = DefaultReasonerURL
		}
	}
	if c.ReasonerModel == "" {
		c.ReasonerModel = os.Getenv(EnvReasonerModel)
		if c.ReasonerModel == "" {
			c.ReasonerModel = DefaultReasonerModel
		}
	}
	return c
}

// LoadEnvFile loads environment variables from the config file in the user's
// config directory. Errors are ignored since the file may not exist.
func LoadEnvFile() {
	configBase, err := os.UserConfigDir()
	if err == nil {
		configPath := filepath.Join(configBase, AppName, EnvFileName)
		_ = godotenv.Load(configPath)
	}

	// Also pick up a .env in the working directory for development.
	_ = godotenv.Load()
}

// CheckRequiredConfig returns the names of required environment variables
// that are not set.
func CheckRequiredConfig() []string {
	var missing []string
	if os.Getenv(EnvGeminiAPIKey) == "" {
		missing = append(missing, EnvGeminiAPIKey)
	}
	return missing
}
