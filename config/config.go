package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

// env-style key -> flag name
var flagKeys = map[string]string{
	"LOG_LEVEL":     "log-level",
	"OUTPUT_FORMAT": "format",
	"PRECISION":     "precision",
}

type Config struct {
	config *viper.Viper
}

func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	viperConfig.SetDefault("log.level", "info")
	viperConfig.SetDefault("output.format", "text")
	viperConfig.SetDefault("output.precision", -1)
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	viperConfig.AutomaticEnv()

	cfg := &Config{
		config: viperConfig,
	}

	return cfg, nil
}

// BindFlags lets command-line flags take precedence over env vars and the config file.
func (c *Config) BindFlags(flags *pflag.FlagSet) error {
	for key, name := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := c.config.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}

	return nil
}

func (c *Config) GetLogLevel() string {
	if c.config.IsSet("LOG_LEVEL") {
		return c.config.GetString("LOG_LEVEL")
	}

	return c.config.GetString("log.level")
}

func (c *Config) GetOutputFormat() string {
	if c.config.IsSet("OUTPUT_FORMAT") {
		return c.config.GetString("OUTPUT_FORMAT")
	}

	return c.config.GetString("output.format")
}

// GetPrecision is the number of digits after the decimal point, -1 for the
// shortest exact representation.
func (c *Config) GetPrecision() int {
	if c.config.IsSet("PRECISION") {
		return c.config.GetInt("PRECISION")
	}

	return c.config.GetInt("output.precision")
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
