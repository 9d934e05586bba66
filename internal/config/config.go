package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the launcher configuration
type Config struct {
	EnableRecentApps   bool     `yaml:"enable_recent_apps"`         // Seed results from recently launched apps
	EnablePowerOptions bool     `yaml:"enable_power_options"`       // Accept poweroff/restart/logout tokens
	MaxSearchResults   int      `yaml:"max_search_results"`         // Cap for seeded and searched results
	Timezone           string   `yaml:"timezone"`                   // IANA zone used by the clock
	RecentAppsLimit    int      `yaml:"recent_apps_limit"`          // Names kept in the recent cache
	Shell              string   `yaml:"shell"`                      // Interpreter used to run commands
	ApplicationDirs    []string `yaml:"application_dirs,omitempty"` // Overrides XDG data dirs
	LogLevel           string   `yaml:"log_level"`
}

// configFileName is the name of the config file
const configFileName = "config.yaml"

const (
	defaultMaxSearchResults = 5
	defaultRecentAppsLimit  = 10
	defaultShell            = "sh"
	defaultTimezone         = "Local"
	timeLayout              = "15:04:05"
)

// Default returns the default configuration
func Default() Config {
	return Config{
		EnableRecentApps:   true,
		EnablePowerOptions: false,
		MaxSearchResults:   defaultMaxSearchResults,
		Timezone:           defaultTimezone,
		RecentAppsLimit:    defaultRecentAppsLimit,
		Shell:              defaultShell,
		LogLevel:           "info",
	}
}

// ConfigDir returns the directory containing rocket config files
func ConfigDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "rocket")
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	return filepath.Join(ConfigDir(), configFileName)
}

// CacheDir returns the directory for the recent apps cache and the log file
func CacheDir() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		homeDir, _ := os.UserHomeDir()
		cacheDir = filepath.Join(homeDir, ".cache")
	}
	return filepath.Join(cacheDir, "rocket")
}

// RecentAppsPath returns the path to the recent apps cache file
func RecentAppsPath() string {
	return filepath.Join(CacheDir(), "recent.json")
}

// LogPath returns the path to the log file used while the TUI is running
func LogPath() string {
	return filepath.Join(CacheDir(), "rocket.log")
}

// Load loads the configuration from path, or from ConfigPath when path is empty.
// A missing file yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}

	cfg.normalize()
	return cfg, nil
}

// normalize replaces out-of-range values with defaults
func (c *Config) normalize() {
	if c.MaxSearchResults <= 0 {
		c.MaxSearchResults = defaultMaxSearchResults
	}
	if c.RecentAppsLimit <= 0 {
		c.RecentAppsLimit = defaultRecentAppsLimit
	}
	if strings.TrimSpace(c.Shell) == "" {
		c.Shell = defaultShell
	}
	if strings.TrimSpace(c.Timezone) == "" {
		c.Timezone = defaultTimezone
	}

	dirs := c.ApplicationDirs[:0]
	for _, d := range c.ApplicationDirs {
		if d = strings.TrimSpace(d); d != "" {
			dirs = append(dirs, d)
		}
	}
	c.ApplicationDirs = dirs
}

// Save writes the configuration to path, or to ConfigPath when path is empty
func (c Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Location returns the configured time zone, falling back to local time
func (c Config) Location() *time.Location {
	if c.Timezone == "" || c.Timezone == defaultTimezone {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// CurrentTime returns the current time formatted for the clock
func (c Config) CurrentTime() string {
	return FormatTime(time.Now(), c)
}

// FormatTime formats t in the configured time zone
func FormatTime(t time.Time, c Config) string {
	return t.In(c.Location()).Format(timeLayout)
}
