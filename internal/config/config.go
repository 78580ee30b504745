// Package config handles configuration for the GameBox CLI, including
// defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for GameBox.
//
// Fields:
//   - StorageDSN: sqlite database file backing the key-value store.
//   - Namespace: key prefix inside the store, so several installations can
//     share one database file.
//   - AdminEmail / AdminName / AdminPassword / AdminRecovery: the built-in
//     administrator account seeded at startup. NOTE: the password default
//     is insecure and should be overridden.
//   - MinPasswordLen: minimum accepted password length at registration and
//     password reset.
//   - WeakDigest: force the degraded (non-cryptographic) digest mode.
type Config struct {
	StorageDSN     string
	Namespace      string
	AdminEmail     string
	AdminName      string
	AdminPassword  string
	AdminRecovery  string
	MinPasswordLen int
	WeakDigest     bool
}

// LoadDefaults populates Config with sensible development defaults.
func (c *Config) LoadDefaults() {
	c.StorageDSN = "gamebox.db"
	c.Namespace = "gamebox"
	c.AdminEmail = "admin@gamebox.local"
	c.AdminName = "Administrator"
	c.AdminPassword = "admin123"
	c.AdminRecovery = "blue giraffe"
	c.MinPasswordLen = 6
	c.WeakDigest = false
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
