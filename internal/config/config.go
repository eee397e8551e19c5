// Package config manages disk and keyring state for notioncli profiles.
// Tokens live in the OS keyring (NOTION_API_KEY overrides); everything else
// persists in ~/.config/notioncli/config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"
)

const (
	serviceName          = "notioncli"
	defaultNotionVersion = "2022-06-28"

	// EnvToken overrides the keyring credential when set.
	EnvToken = "NOTION_API_KEY"

	// DefaultProfile is used when --profile is not supplied.
	DefaultProfile = "default"

	defaultOutput   = "table"
	defaultPageSize = 100

	dirPermissions  = 0o700
	filePermissions = 0o600

	maskVisibleSuffix = 4
)

// ErrNoCredentials is returned when neither the keyring nor the environment
// carries a token for the requested profile. Surfaced before any remote call.
var ErrNoCredentials = errors.New("no credentials configured")

// Settings holds the per-profile preferences stored in the config file.
//
//nolint:govet // fieldalignment: small struct, readability wins.
type Settings struct {
	Output        string
	NotionVersion string
	PageSize      int
	Color         bool
}

// settingKeys lists the keys config set/get accept.
var settingKeys = map[string]bool{
	"output":         true,
	"color":          true,
	"page_size":      true,
	"notion_version": true,
}

// DefaultNotionVersion exposes the API version we pin to unless the user
// overrides it.
func DefaultNotionVersion() string {
	return defaultNotionVersion
}

// Dir returns the directory holding config and history files.
func Dir() (string, error) {
	return configDir()
}

// Path returns the config file location.
func Path() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "notioncli"), nil
}

func ensureConfigDir() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}
	return dir, nil
}

// SaveToken stores the integration token for the provided profile in the OS
// keyring.
func SaveToken(profile, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("token cannot be empty")
	}
	if profile == "" {
		return errors.New("profile name cannot be empty")
	}
	if err := keyring.Set(serviceName, profile, token); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

// DeleteToken removes the stored credential for a profile.
func DeleteToken(profile string) error {
	if profile == "" {
		return errors.New("profile name cannot be empty")
	}
	if err := keyring.Delete(serviceName, profile); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}

// LoadToken resolves the credential for a profile. The NOTION_API_KEY
// environment variable wins over the keyring; a missing credential in both
// places yields ErrNoCredentials.
func LoadToken(profile string) (string, error) {
	if env := strings.TrimSpace(os.Getenv(EnvToken)); env != "" {
		return env, nil
	}
	if profile == "" {
		return "", errors.New("profile name cannot be empty")
	}
	tok, err := keyring.Get(serviceName, profile)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", fmt.Errorf("profile %q: %w", profile, ErrNoCredentials)
		}
		return "", fmt.Errorf("load token: %w", err)
	}
	return tok, nil
}

// MaskToken obscures a credential for display, keeping the last few
// characters for recognition.
func MaskToken(token string) string {
	if token == "" {
		return "(not set)"
	}
	if len(token) <= maskVisibleSuffix {
		return strings.Repeat("*", len(token))
	}
	return "****" + token[len(token)-maskVisibleSuffix:]
}

// LoadSettings reads the profile's preferences, applying defaults for
// anything unset. A missing config file yields pure defaults.
func LoadSettings(profile string) (Settings, error) {
	if profile == "" {
		return Settings{}, errors.New("profile name cannot be empty")
	}

	settings := Settings{
		Output:        defaultOutput,
		NotionVersion: defaultNotionVersion,
		PageSize:      defaultPageSize,
		Color:         true,
	}

	cfg, err := openConfig()
	if err != nil {
		if isConfigNotFound(err) {
			return settings, nil
		}
		return Settings{}, err
	}

	prefix := "profiles." + profile + "."
	if v := cfg.GetString(prefix + "output"); v != "" {
		settings.Output = v
	}
	if v := cfg.GetString(prefix + "notion_version"); v != "" {
		settings.NotionVersion = v
	}
	if cfg.IsSet(prefix + "page_size") {
		settings.PageSize = cfg.GetInt(prefix + "page_size")
	}
	if cfg.IsSet(prefix + "color") {
		settings.Color = cfg.GetBool(prefix + "color")
	}
	return settings, nil
}

// SetSetting persists one preference key for a profile.
func SetSetting(profile, key, value string) error {
	if profile == "" {
		return errors.New("profile name cannot be empty")
	}
	if !settingKeys[key] {
		return fmt.Errorf("unknown setting %q (want output, color, page_size or notion_version)", key)
	}
	if key == "page_size" {
		if _, err := strconv.Atoi(value); err != nil {
			return fmt.Errorf("page_size must be an integer: %w", err)
		}
	}
	if key == "color" {
		if _, err := strconv.ParseBool(value); err != nil {
			return fmt.Errorf("color must be a boolean: %w", err)
		}
	}

	dir, err := ensureConfigDir()
	if err != nil {
		return err
	}

	cfg := viper.New()
	configPath := filepath.Join(dir, "config.yaml")
	cfg.SetConfigFile(configPath)
	readErr := cfg.ReadInConfig()
	if readErr != nil && !isConfigNotFound(readErr) {
		return fmt.Errorf("read config: %w", readErr)
	}

	cfg.Set(fmt.Sprintf("profiles.%s.%s", profile, key), value)

	if err := cfg.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := os.Chmod(configPath, filePermissions); err != nil {
		return fmt.Errorf("restrict config permissions: %w", err)
	}
	return nil
}

// UnsetSetting removes one preference key from a profile, restoring its
// default. Unsetting a key that is not stored is not an error.
func UnsetSetting(profile, key string) error {
	if profile == "" {
		return errors.New("profile name cannot be empty")
	}
	if !settingKeys[key] {
		return fmt.Errorf("unknown setting %q (want output, color, page_size or notion_version)", key)
	}

	cfg, err := openConfig()
	if err != nil {
		if isConfigNotFound(err) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	// Viper cannot delete keys, so rebuild the settings tree without this
	// one and rewrite the file.
	settings := cfg.AllSettings()
	profiles, ok := settings["profiles"].(map[string]any)
	if !ok {
		return nil
	}
	profileSettings, ok := profiles[strings.ToLower(profile)].(map[string]any)
	if !ok {
		return nil
	}
	if _, ok := profileSettings[key]; !ok {
		return nil
	}
	delete(profileSettings, key)

	out := viper.New()
	for k, v := range settings {
		out.Set(k, v)
	}

	dir, err := ensureConfigDir()
	if err != nil {
		return err
	}
	configPath := filepath.Join(dir, "config.yaml")
	if err := out.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := os.Chmod(configPath, filePermissions); err != nil {
		return fmt.Errorf("restrict config permissions: %w", err)
	}
	return nil
}

// GetSetting returns one preference value as a string, with defaults
// applied.
func GetSetting(profile, key string) (string, error) {
	if !settingKeys[key] {
		return "", fmt.Errorf("unknown setting %q (want output, color, page_size or notion_version)", key)
	}
	settings, err := LoadSettings(profile)
	if err != nil {
		return "", err
	}
	switch key {
	case "output":
		return settings.Output, nil
	case "color":
		return strconv.FormatBool(settings.Color), nil
	case "page_size":
		return strconv.Itoa(settings.PageSize), nil
	default:
		return settings.NotionVersion, nil
	}
}

func openConfig() (*viper.Viper, error) {
	dir, err := configDir()
	if err != nil {
		return nil, err
	}
	cfg := viper.New()
	cfg.SetConfigFile(filepath.Join(dir, "config.yaml"))
	if err := cfg.ReadInConfig(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func isConfigNotFound(err error) bool {
	if err == nil {
		return false
	}
	var nf viper.ConfigFileNotFoundError
	if errors.As(err, &nf) {
		return true
	}
	var pathErr *os.PathError
	if errors.As(err, &pathErr) && errors.Is(pathErr.Err, os.ErrNotExist) {
		return true
	}
	return errors.Is(err, os.ErrNotExist)
}
