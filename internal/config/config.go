package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the launcher configuration
type Config struct {
	DescriptorDirs []string `yaml:"descriptor_dirs"` // Directories scanned for .desktop files
	IconRoots      []string `yaml:"icon_roots"`      // Icon search roots, in priority order
	Terminal       string   `yaml:"terminal"`        // Preferred terminal emulator (empty = auto)
	Debug          bool     `yaml:"debug"`           // Write a debug log to the config directory

	GlyphOverrides map[string]string `yaml:"-"` // Keyword -> glyph, from icons.json
	HomeDir        string            `yaml:"-"`
	Dir            string            `yaml:"-"` // Directory the config was loaded from
}

const (
	appName        = "cyberdesk"
	configFileName = "config.yaml"
	iconsFileName  = "icons.json"
	logFileName    = "cyberdesk.log"
)

// Default returns the default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		DescriptorDirs: DefaultDescriptorDirs(homeDir),
		IconRoots:      DefaultIconRoots(homeDir),
		GlyphOverrides: map[string]string{},
		HomeDir:        homeDir,
		Dir:            ConfigDir(),
	}
}

// DefaultDescriptorDirs returns the system and user application directories
func DefaultDescriptorDirs(homeDir string) []string {
	return []string{
		"/usr/share/applications",
		filepath.Join(homeDir, ".local", "share", "applications"),
	}
}

// DefaultIconRoots returns the icon roots searched by default.
// Order matters: the first root holding a match wins.
func DefaultIconRoots(homeDir string) []string {
	return []string{
		"/usr/share/pixmaps",
		"/usr/share/icons/hicolor",
		"/usr/share/icons/Adwaita",
		"/usr/share/icons/breeze",
		"/usr/share/icons/Papirus",
		filepath.Join(homeDir, ".local", "share", "icons"),
	}
}

// ConfigDir returns the directory containing cyberdesk config files
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", appName)
}

// ConfigPath returns the path to the config file
func (c *Config) ConfigPath() string {
	return filepath.Join(c.Dir, configFileName)
}

// IconsPath returns the path to the glyph override file
func (c *Config) IconsPath() string {
	return filepath.Join(c.Dir, iconsFileName)
}

// LogPath returns the path to the debug log
func (c *Config) LogPath() string {
	return filepath.Join(c.Dir, logFileName)
}

// Load loads the configuration from the default config directory
func Load() (*Config, error) {
	return LoadFrom(ConfigDir())
}

// LoadFrom loads config.yaml and icons.json from dir.
// A missing file is not an error. A malformed config.yaml yields the
// defaults together with the parse error, so callers can warn and go on.
func LoadFrom(dir string) (*Config, error) {
	cfg := Default()
	cfg.Dir = dir
	cfg.GlyphOverrides = LoadGlyphOverrides(cfg.IconsPath())

	data, err := os.ReadFile(cfg.ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", cfg.ConfigPath(), err)
	}

	if dirs := cfg.expandAll(file.DescriptorDirs); len(dirs) > 0 {
		cfg.DescriptorDirs = dirs
	}
	if roots := cfg.expandAll(file.IconRoots); len(roots) > 0 {
		cfg.IconRoots = roots
	}
	cfg.Terminal = strings.TrimSpace(file.Terminal)
	cfg.Debug = file.Debug

	return cfg, nil
}

// LoadGlyphOverrides reads the keyword -> glyph map.
// Missing or malformed files yield an empty map.
func LoadGlyphOverrides(path string) map[string]string {
	overrides := map[string]string{}

	data, err := os.ReadFile(path)
	if err != nil {
		return overrides
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return overrides
	}

	for k, v := range raw {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" || v == "" {
			continue
		}
		overrides[k] = v
	}
	return overrides
}

// EnsureDir creates the config directory
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0755)
}

// expandAll expands ~ in every path and drops blanks
func (c *Config) expandAll(paths []string) []string {
	var out []string
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, c.expandPath(p))
	}
	return out
}

// expandPath expands ~ to home directory
func (c *Config) expandPath(path string) string {
	if path == "~" {
		return c.HomeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(c.HomeDir, path[2:])
	}
	return path
}
