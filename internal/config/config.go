package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/swiftinit-labs/swiftinit/internal/branding"
)

// Keys recognized in the config file. Unknown keys are reported by the
// schema validator but never rejected at read time.
const (
	KeyDefaultMode  = "default-mode"
	KeyCheckUpdates = "check-updates"
	KeyMirror       = "mirror"
)

const fileName = "config.yaml"

// Dir returns the settings directory, ~/.swiftinit by default. When the home
// directory cannot be resolved the directory is anchored at ".".
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the config file path inside Dir.
func FilePath() string {
	return filepath.Join(Dir(), fileName)
}

// Load points viper at the config file and the SWIFTINIT_* environment.
// Hyphenated keys map to underscored variables, so default-mode is
// overridable as SWIFTINIT_DEFAULT_MODE. A missing file is not an error;
// its keys simply read as unset.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

// Get returns the string value for key, or "" when unset.
func Get(key string) string {
	return viper.GetString(key)
}

// Set stores key = value and rewrites the config file, creating the settings
// directory on first use.
func Set(key, value string) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	viper.Set(key, value)
	if err := viper.WriteConfigAs(FilePath()); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
