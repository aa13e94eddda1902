package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DirName is the per-project data directory
const DirName = ".typeahead"

// ErrUnknownKey is returned by Set and Value for keys the config doesn't have
var ErrUnknownKey = errors.New("unknown config key")

// Config represents the typeahead configuration
type Config struct {
	// UI preferences
	Theme       string `json:"theme"`
	Debug       bool   `json:"debug"`
	Placeholder string `json:"placeholder"`
	MaxRows     int    `json:"max_rows"`

	// Debounce quiet period in milliseconds
	DebounceMS int `json:"debounce_ms"`

	// Catalog settings
	CatalogPath       string  `json:"catalog_path"`
	SearchLimit       int     `json:"search_limit"`
	SearchesPerSecond float64 `json:"searches_per_second"`

	LogFile string `json:"log_file"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Theme:             "ember",
		Debug:             false,
		Placeholder:       "Search produce...",
		MaxRows:           8,
		DebounceMS:        700,
		CatalogPath:       filepath.Join(DirName, "catalog.db"),
		SearchLimit:       20,
		SearchesPerSecond: 4,
		LogFile:           filepath.Join(DirName, "typeahead.log"),
	}
}

// Keys lists the settable configuration keys
func Keys() []string {
	return []string{
		"theme", "debug", "placeholder", "max_rows", "debounce_ms",
		"catalog_path", "search_limit", "searches_per_second", "log_file",
	}
}

// Debounce returns the quiet period as a duration
func (c *Config) Debounce() time.Duration {
	if c.DebounceMS <= 0 {
		return 700 * time.Millisecond
	}
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// Manager handles configuration loading and saving
type Manager struct {
	projectPath string
	configPath  string
	config      *Config
}

// NewManager creates a new configuration manager rooted at projectPath
func NewManager(projectPath string) *Manager {
	return &Manager{
		projectPath: projectPath,
		configPath:  filepath.Join(projectPath, DirName, "config.json"),
		config:      DefaultConfig(),
	}
}

// Path returns the config file location
func (m *Manager) Path() string {
	return m.configPath
}

// Load reads the configuration from disk, creating defaults if needed
func (m *Manager) Load() error {
	dir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s directory: %w", DirName, err)
	}

	if err := m.ensureGitignore(); err != nil {
		return fmt.Errorf("failed to create .gitignore: %w", err)
	}

	if _, err := os.Stat(m.configPath); os.IsNotExist(err) {
		return m.Save()
	}

	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so keys missing from an older file keep sane values
	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config JSON: %w", err)
	}

	m.expandEnvVars(config)
	m.config = config
	return nil
}

// Save writes the current configuration to disk
func (m *Manager) Save() error {
	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(m.configPath), 0o755); err != nil {
		return fmt.Errorf("failed to create %s directory: %w", DirName, err)
	}

	if err := os.WriteFile(m.configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Get returns the current configuration
func (m *Manager) Get() *Config {
	return m.config
}

// Set updates a configuration value and saves
func (m *Manager) Set(key, value string) error {
	switch key {
	case "theme":
		m.config.Theme = value
	case "debug":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be true or false, got %q", key, value)
		}
		m.config.Debug = b
	case "placeholder":
		m.config.Placeholder = value
	case "catalog_path":
		m.config.CatalogPath = value
	case "log_file":
		m.config.LogFile = value
	case "max_rows", "debounce_ms", "search_limit":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%s must be a non-negative integer, got %q", key, value)
		}
		switch key {
		case "max_rows":
			m.config.MaxRows = n
		case "debounce_ms":
			m.config.DebounceMS = n
		case "search_limit":
			m.config.SearchLimit = n
		}
	case "searches_per_second":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 {
			return fmt.Errorf("%s must be a non-negative number, got %q", key, value)
		}
		m.config.SearchesPerSecond = f
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	return m.Save()
}

// Value returns a configuration value formatted as a string
func (m *Manager) Value(key string) (string, error) {
	c := m.config
	switch key {
	case "theme":
		return c.Theme, nil
	case "debug":
		return strconv.FormatBool(c.Debug), nil
	case "placeholder":
		return c.Placeholder, nil
	case "catalog_path":
		return c.CatalogPath, nil
	case "log_file":
		return c.LogFile, nil
	case "max_rows":
		return strconv.Itoa(c.MaxRows), nil
	case "debounce_ms":
		return strconv.Itoa(c.DebounceMS), nil
	case "search_limit":
		return strconv.Itoa(c.SearchLimit), nil
	case "searches_per_second":
		return strconv.FormatFloat(c.SearchesPerSecond, 'g', -1, 64), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
}

// ensureGitignore creates a .gitignore in the data directory
func (m *Manager) ensureGitignore() error {
	gitignorePath := filepath.Join(filepath.Dir(m.configPath), ".gitignore")

	if _, err := os.Stat(gitignorePath); !os.IsNotExist(err) {
		return nil
	}

	gitignoreContent := `# typeahead data directory
#
# Config is committed; the catalog database and logs are local.

*.db
*.db-wal
*.db-shm
*.log
*.log.gz

!config.json
!.gitignore
`

	return os.WriteFile(gitignorePath, []byte(gitignoreContent), 0o644)
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

func (m *Manager) expandEnvVars(config *Config) {
	config.Theme = expandString(config.Theme)
	config.Placeholder = expandString(config.Placeholder)
	config.CatalogPath = expandString(config.CatalogPath)
	config.LogFile = expandString(config.LogFile)
}

// expandString expands $VAR and ${VAR}; unknown variables are left as-is
func expandString(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		var varName string
		if strings.HasPrefix(match, "${") {
			varName = match[2 : len(match)-1]
		} else {
			varName = match[1:]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}
		return match
	})
}
