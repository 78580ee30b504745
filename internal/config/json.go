package config

import (
	"encoding/json"
	"os"

	"github.com/dkarklins/gamebox/internal/flagx"
)

// JsonConfig is an intermediate DTO used only for reading JSON
// configuration files. After unmarshalling, its fields are copied into the
// runtime Config struct.
type JsonConfig struct {
	StorageDSN     string `json:"storage_dsn"`
	Namespace      string `json:"namespace"`
	AdminEmail     string `json:"admin_email"`
	AdminName      string `json:"admin_name"`
	AdminPassword  string `json:"admin_password"`
	AdminRecovery  string `json:"admin_recovery"`
	MinPasswordLen int    `json:"min_password_len"`
	WeakDigest     bool   `json:"weak_digest"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; when neither is set, no JSON file is loaded. Fields absent from
// the file keep their current values. If the file cannot be read or
// contains invalid JSON, the function panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.StorageDSN != "" {
		config.StorageDSN = c.StorageDSN
	}
	if c.Namespace != "" {
		config.Namespace = c.Namespace
	}
	if c.AdminEmail != "" {
		config.AdminEmail = c.AdminEmail
	}
	if c.AdminName != "" {
		config.AdminName = c.AdminName
	}
	if c.AdminPassword != "" {
		config.AdminPassword = c.AdminPassword
	}
	if c.AdminRecovery != "" {
		config.AdminRecovery = c.AdminRecovery
	}
	if c.MinPasswordLen > 0 {
		config.MinPasswordLen = c.MinPasswordLen
	}
	if c.WeakDigest {
		config.WeakDigest = true
	}
}
