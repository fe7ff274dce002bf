package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	full := writeTempJSON(t, dir, "full.json", map[string]any{
		"accounts_file":       "/var/lib/registry/users.db",
		"digest":              "argon2id",
		"log_level":           "info",
		"min_password_length": 6,
	})
	partial := writeTempJSON(t, dir, "partial.json", map[string]any{
		"log_level": "debug",
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", full}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "/var/lib/registry/users.db", cfg.AccountsFile)
		assert.Equal(t, "argon2id", cfg.Digest)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, 6, cfg.MinPasswordLength)
	})

	t.Run("missing keys keep previous values", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", partial}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "users.db", cfg.AccountsFile)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, 4, cfg.MinPasswordLength)
	})

	t.Run("no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{AccountsFile: "keep.db", MinPasswordLength: 42}
		parseJson(cfg)

		assert.Equal(t, "keep.db", cfg.AccountsFile)
		assert.Equal(t, 42, cfg.MinPasswordLength)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(dir, "absent.json")}
		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
