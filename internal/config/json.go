package config

import (
	"encoding/json"
	"os"

	"github.com/Zaugg-M/Cloud-ToDo/internal/flagx"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. After parsing,
// values are copied into the runtime Config.
type JSONConfig struct {
	ProjectID       string `json:"project_id"`
	CredentialsFile string `json:"credentials_file"`
	Database        string `json:"database"`
}

// parseJSON overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags via flagx.ConfigFileFlag.
// If no path is given, nothing is loaded. Read or unmarshal errors panic;
// a broken config file should not be silently ignored.
//
// Only fields present in the file (non-empty) override the current values.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	var jc JSONConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ProjectID != "" {
		cfg.ProjectID = jc.ProjectID
	}
	if jc.CredentialsFile != "" {
		cfg.CredentialsFile = jc.CredentialsFile
	}
	if jc.Database != "" {
		cfg.Database = jc.Database
	}
}
