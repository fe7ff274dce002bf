// Package config loads runtime configuration for the account registry CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-f string   path of the accounts file (default "users.db")
//	-d string   password digest: djb2 or argon2id
//	-l string   log level: debug, info, warn, error
//	-p int      minimum password length accepted at registration
//
// # JSON schema
//
//	{
//	  "accounts_file": "users.db",
//	  "digest": "djb2",
//	  "log_level": "warn",
//	  "min_password_length": 4
//	}
//
// Keys missing from the JSON file keep their previous value.
package config
