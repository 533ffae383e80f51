package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

const testConfig = `
log:
  level: debug
output:
  format: json
  precision: 4
`

// withProjectDir runs the test from a temporary project root holding config/config.test.yaml.
func withProjectDir(t *testing.T) {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "config"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "config", "config.test.yaml"), []byte(testConfig), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(root))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadFromFile(t *testing.T) {
	withProjectDir(t)

	cfg, err := Load("test")
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.GetLogLevel())
	require.Equal(t, "json", cfg.GetOutputFormat())
	require.Equal(t, 4, cfg.GetPrecision())
}

func TestLoadUsesEnvToPickFile(t *testing.T) {
	withProjectDir(t)
	t.Setenv("ENV", "test")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "json", cfg.GetOutputFormat())
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	withProjectDir(t)

	cfg, err := Load("missing")
	require.NoError(t, err)
	require.Equal(t, "info", cfg.GetLogLevel())
	require.Equal(t, "text", cfg.GetOutputFormat())
	require.Equal(t, -1, cfg.GetPrecision())
}

func TestEnvOverridesFile(t *testing.T) {
	withProjectDir(t)
	t.Setenv("PRECISION", "2")
	t.Setenv("OUTPUT_FORMAT", "text")

	cfg, err := Load("test")
	require.NoError(t, err)
	require.Equal(t, 2, cfg.GetPrecision())
	require.Equal(t, "text", cfg.GetOutputFormat())
	require.Equal(t, "debug", cfg.GetLogLevel())
}

func TestFlagsOverrideEnv(t *testing.T) {
	withProjectDir(t)
	t.Setenv("PRECISION", "2")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("precision", -1, "")
	flags.String("format", "text", "")
	flags.String("log-level", "info", "")
	require.NoError(t, flags.Parse([]string{"--precision", "6"}))

	cfg, err := Load("test")
	require.NoError(t, err)
	require.NoError(t, cfg.BindFlags(flags))

	require.Equal(t, 6, cfg.GetPrecision())
	// unset flags do not shadow the file
	require.Equal(t, "json", cfg.GetOutputFormat())
	require.Equal(t, "debug", cfg.GetLogLevel())
}
