package config

import (
	"flag"
	"os"

	"github.com/dkarklins/gamebox/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   storage database file (e.g., "gamebox.db")
//	-n string   store namespace
//	-e string   admin email
//	-a string   admin display name
//	-p string   admin password
//	-r string   admin recovery phrase
//	-l int      minimum password length
//	-w          use the weak (degraded-security) digest
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-n", "-e", "-a", "-p", "-r", "-l", "-w"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.StorageDSN, "d", config.StorageDSN, "storage database file")
	fs.StringVar(&config.Namespace, "n", config.Namespace, "store namespace")
	fs.StringVar(&config.AdminEmail, "e", config.AdminEmail, "admin email")
	fs.StringVar(&config.AdminName, "a", config.AdminName, "admin display name")
	fs.StringVar(&config.AdminPassword, "p", config.AdminPassword, "admin password")
	fs.StringVar(&config.AdminRecovery, "r", config.AdminRecovery, "admin recovery phrase")
	fs.IntVar(&config.MinPasswordLen, "l", config.MinPasswordLen, "minimum password length")
	fs.BoolVar(&config.WeakDigest, "w", config.WeakDigest, "use weak digest")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
