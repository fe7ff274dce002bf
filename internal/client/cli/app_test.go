package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bhavatharanigopi7-cell/login-and-registration/internal/client/config"
	"github.com/bhavatharanigopi7-cell/login-and-registration/internal/cryptox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.AccountsFile = filepath.Join(t.TempDir(), "users.db")
	cfg.LogLevel = "error"
	return cfg
}

func TestNewApp_EmptyStore(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig(t))

	require.NoError(t, err)
	assert.Equal(t, 0, app.store.Len())
}

func TestNewApp_UnknownDigest(t *testing.T) {
	cfg := testConfig(t)
	cfg.Digest = "rot13"

	_, err := NewApp(context.Background(), cfg)
	require.ErrorIs(t, err, cryptox.ErrUnknownDigest)
}

func TestNewApp_BadLogLevel(t *testing.T) {
	cfg := testConfig(t)
	cfg.LogLevel = "chatty"

	_, err := NewApp(context.Background(), cfg)
	require.Error(t, err)
}

// TestApp_Session drives a full menu session over piped input against a
// real accounts file.
func TestApp_Session(t *testing.T) {
	stubTerminal(t, false, nil, nil)

	cfg := testConfig(t)
	app, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)

	var out bytes.Buffer
	app.out = &out
	app.reader = rdr(strings.Join([]string{
		"1", "carol", "c@x.com", "pw1234", // register
		"1", "carol", "other@x.com", "pw9999", // duplicate username
		"1", "dave", "d@x.com", "abc", // too short
		"2", "carol", "pw1234", // good login
		"2", "carol", "wrongpw", // bad password
		"2", "dave", "pw1234", // unknown user
		"3",
		"9",
		"4",
	}, "\n") + "\n")

	app.Run(context.Background())

	got := out.String()
	assert.Equal(t, 1, strings.Count(got, "Registration successful!"))
	assert.Equal(t, 1, strings.Count(got, "Username or email already exists."))
	assert.Equal(t, 1, strings.Count(got, "Password must be at least 4 characters long."))
	assert.Equal(t, 1, strings.Count(got, "Login successful. Welcome, carol!"))
	assert.Equal(t, 2, strings.Count(got, "Invalid username or password."))
	assert.Contains(t, got, "carol          c@x.com")
	assert.Contains(t, got, "Invalid option. Try again.")
	assert.True(t, strings.HasSuffix(got, "Exiting program. Goodbye!\n"))
	assert.NotContains(t, got, cryptox.DJB2{}.Digest("pw1234"))

	data, err := os.ReadFile(cfg.AccountsFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "carol,65315a5e936,c@x.com,"))

	// a second session sees the persisted account
	app2, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)
	assert.True(t, app2.store.Login(context.Background(), "carol", "pw1234"))
}
