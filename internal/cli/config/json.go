package config

import (
	"encoding/json"
	"os"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Absent fields
// leave the current Config value in place.
type jsonConfig struct {
	BaseURL      *string `json:"base_url"`
	CredentialDB *string `json:"credential_db"`
	Verbose      *bool   `json:"verbose"`
}

// parseJSON overlays Config with values loaded from the JSON file named by
// the -c flag. No flag, no file, no overlay. Read or unmarshal errors panic;
// a broken config file should stop the CLI before it talks to the network.
func parseJSON(cfg *Config) {
	path := configFilePath(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != nil {
		cfg.BaseURL = *jc.BaseURL
	}
	if jc.CredentialDB != nil {
		cfg.CredentialDB = *jc.CredentialDB
	}
	if jc.Verbose != nil {
		cfg.Verbose = *jc.Verbose
	}
}
