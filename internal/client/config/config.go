package config

// Config holds runtime settings for the account registry CLI.
//
// Fields:
//   - AccountsFile: path of the line-per-account backing file.
//   - Digest: password digest algorithm name ("djb2" or "argon2id").
//   - LogLevel: minimum level written to stderr (debug|info|warn|error).
//   - MinPasswordLength: shortest password the shell accepts at registration.
type Config struct {
	AccountsFile      string
	Digest            string
	LogLevel          string
	MinPasswordLength int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.AccountsFile = "users.db"
	c.Digest = "djb2"
	c.LogLevel = "warn"
	c.MinPasswordLength = 4
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
