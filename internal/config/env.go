package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment.
// A .env file in the working directory is loaded first, if present;
// variables already set in the environment win over the file.
//
// Recognized variables:
//   - GOOGLE_CLOUD_PROJECT
//   - GOOGLE_APPLICATION_CREDENTIALS
//   - FIRESTORE_DATABASE
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("GOOGLE_CLOUD_PROJECT"); v != "" {
		cfg.ProjectID = v
	}
	if v := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); v != "" {
		cfg.CredentialsFile = v
	}
	if v := os.Getenv("FIRESTORE_DATABASE"); v != "" {
		cfg.Database = v
	}
}
