package config

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/logger"
)

// clearEnv unsets every matcalc variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvWidth, EnvPrecision, EnvWorkspace, EnvKeepResults, EnvLogLevel} {
		t.Setenv(k, "") // registers restore
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadFrom_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, &Config{
		Width:     DefaultWidth,
		Precision: DefaultPrecision,
		LogLevel:  logger.LevelWarn,
	}, cfg)
}

func TestLoadFrom_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvWidth, "8")
	t.Setenv(EnvPrecision, "3")
	t.Setenv(EnvWorkspace, "/tmp/ws.yaml")
	t.Setenv(EnvKeepResults, "true")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, 8, cfg.Width)
	require.Equal(t, 3, cfg.Precision)
	require.Equal(t, "/tmp/ws.yaml", cfg.WorkspaceFile)
	require.True(t, cfg.KeepResults)
	require.Equal(t, logger.LevelDebug, cfg.LogLevel)
}

func TestLoadFrom_DotEnvInParent(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"),
		[]byte("MATCALC_WIDTH=9\nMATCALC_KEEP_RESULTS=1\n"), 0o644))

	cfg, err := LoadFrom(nested)
	require.NoError(t, err)
	require.Equal(t, 9, cfg.Width)
	require.True(t, cfg.KeepResults)

	// process environment wins over the file
	t.Setenv(EnvWidth, "4")
	cfg, err = LoadFrom(nested)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Width)
}

func TestLoadFrom_DotEnvTooFarAway(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	nested := filepath.Join(root, "1", "2", "3", "4", "5")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("MATCALC_WIDTH=9\n"), 0o644))

	cfg, err := LoadFrom(nested)
	require.NoError(t, err)
	require.Equal(t, DefaultWidth, cfg.Width)
}

func TestLoadFrom_Errors(t *testing.T) {
	cases := []struct {
		key, val string
		target   error
	}{
		{EnvWidth, "wide", strconv.ErrSyntax},
		{EnvWidth, "0", ErrInvalidValue},
		{EnvPrecision, "-1", ErrInvalidValue},
		{EnvKeepResults, "maybe", strconv.ErrSyntax},
		{EnvLogLevel, "loud", nil},
	}
	for _, tc := range cases {
		t.Run(tc.key+"="+tc.val, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.val)
			_, err := LoadFrom(t.TempDir())
			require.Error(t, err)
			if tc.target != nil {
				require.ErrorIs(t, err, tc.target)
			}
		})
	}
}
