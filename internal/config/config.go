// Package config assembles the runtime configuration of the CLI from
// defaults, environment variables, an optional JSON file, and command-line
// flags. Later sources take precedence over earlier ones.
package config

// Config holds runtime settings for the Cloud To-Do CLI.
//
// Fields:
//   - ProjectID: the Google Cloud project hosting the Firestore database.
//   - CredentialsFile: path to a service account key JSON file. If empty,
//     Application Default Credentials are used.
//   - Database: Firestore database name; "(default)" unless overridden.
type Config struct {
	ProjectID       string
	CredentialsFile string
	Database        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ProjectID = ""
	c.CredentialsFile = "serviceAccountKey.json"
	c.Database = "(default)"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including a .env file if present), a JSON file (if given),
// and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
