package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvPath names a configuration file to use instead of the default locations.
const EnvPath = "WCGRAB_CONFIG"

// Loader finds and reads the rc file.
type Loader struct {
	Version      string // build version; "dev" also searches the working directory
	OverridePath string // set at link time to pin the config location
}

// NewLoader creates a new Loader.
func NewLoader(version string, overridePath string) *Loader {
	return &Loader{
		Version:      version,
		OverridePath: overridePath,
	}
}

// Load parses the first existing candidate file. With no file present it
// returns the defaults.
func (l *Loader) Load() (*Config, error) {
	path := l.GetConfigPath()
	if path == "" {
		return New(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Candidates lists the config locations in lookup order: link-time override,
// $WCGRAB_CONFIG, ./.wcgrabrc for dev builds, then DefaultPath.
func (l *Loader) Candidates() []string {
	var paths []string
	if l.OverridePath != "" {
		paths = append(paths, l.OverridePath)
	}
	if p := os.Getenv(EnvPath); p != "" {
		paths = append(paths, p)
	}
	if l.Version == "dev" {
		if wd, err := os.Getwd(); err == nil {
			paths = append(paths, filepath.Join(wd, ".wcgrabrc"))
		}
	}
	if p := DefaultPath(); p != "" {
		paths = append(paths, p)
	}
	return paths
}

// GetConfigPath returns the first candidate that is a regular file, or "".
func (l *Loader) GetConfigPath() string {
	for _, p := range l.Candidates() {
		if fi, err := os.Stat(p); err == nil && fi.Mode().IsRegular() {
			return p
		}
	}
	return ""
}

// DefaultPath is where `config save` writes when no file exists yet.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "wc-grab", "config.rc")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "wc-grab", "config.rc")
}
