// Package config resolves the API credential for gcommit.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// EnvAPIKey is the environment variable holding the provider credential.
const EnvAPIKey = "OPENAI_API_KEY"

// Config holds the resolved process configuration.
// The tool is deliberately configuration-free beyond the single credential.
type Config struct {
	APIKey string
}

// Load resolves the configuration once at startup. A .env file in the
// working directory is loaded into the process environment first; a missing
// or unreadable .env file is ignored. An absent credential is not an error
// here — the generation step rejects it before any network call.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		APIKey: os.Getenv(EnvAPIKey),
	}
}
