package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"BOT_TOKEN", "DATABASE_PATH", "LOG_LEVEL", "LOG_FORMAT", "DEALER_STANDS_ON", "RESHUFFLE_BELOW", "BLACKJACK_CONFIG"} {
		t.Setenv(k, "")
	}
	chdir(t, t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "./blackjack.db", cfg.DatabasePath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 17, cfg.GameRules().DealerStandsOn)
	assert.Equal(t, 15, cfg.GameRules().ReshuffleBelow)
	assert.ErrorIs(t, cfg.RequireBotToken(), ErrNoBotToken)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)

	file := filepath.Join(t.TempDir(), "blackjack.toml")
	require.NoError(t, os.WriteFile(file, []byte(`
database_path = "/tmp/from-file.db"
log_level = "debug"

[rules]
dealer_stands_on = 16
reshuffle_below = 0
`), 0o644))

	t.Setenv("DATABASE_PATH", "/tmp/from-env.db")
	t.Setenv("BOT_TOKEN", "token")

	cfg, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-env.db", cfg.DatabasePath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 16, cfg.Rules.DealerStandsOn)
	assert.Equal(t, 0, cfg.Rules.ReshuffleBelow)
	assert.NoError(t, cfg.RequireBotToken())
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("RESHUFFLE_BELOW")
	require.NoError(t, os.WriteFile(".env", []byte("RESHUFFLE_BELOW=20\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Rules.ReshuffleBelow)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)

	t.Setenv("DEALER_STANDS_ON", "soft")
	_, err := Load("")
	assert.Error(t, err)

	t.Setenv("DEALER_STANDS_ON", "30")
	_, err = Load("")
	assert.Error(t, err)

	t.Setenv("DEALER_STANDS_ON", "")
	t.Setenv("RESHUFFLE_BELOW", "-1")
	_, err = Load("")
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test
// (equivalent to testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
