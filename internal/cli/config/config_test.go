package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8000/api", c.BaseURL)
	assert.Equal(t, "pulse.db", c.CredentialDB)
	assert.False(t, c.Verbose)
}

func TestConfigFilePath(t *testing.T) {
	assert.Equal(t, "cfg.json", configFilePath([]string{"-a", "http://x", "-c", "cfg.json"}))
	assert.Equal(t, "cfg.json", configFilePath([]string{"--c", "cfg.json"}))
	assert.Empty(t, configFilePath([]string{"-a", "http://x"}))
	assert.Empty(t, configFilePath([]string{"-c"}))
}

func TestJSONOverlayKeepsAbsentFields(t *testing.T) {
	var c Config
	c.LoadDefaults()

	var jc jsonConfig
	require.NoError(t, json.Unmarshal([]byte(`{"base_url":"https://pulse.example/api"}`), &jc))
	if jc.BaseURL != nil {
		c.BaseURL = *jc.BaseURL
	}
	if jc.CredentialDB != nil {
		c.CredentialDB = *jc.CredentialDB
	}

	assert.Equal(t, "https://pulse.example/api", c.BaseURL)
	assert.Equal(t, "pulse.db", c.CredentialDB, "absent field must keep the default")
}
