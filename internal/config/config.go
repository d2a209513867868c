package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/filemenu/internal/filelock"
	"github.com/harrison/filemenu/internal/fileutil"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory when --config is not given
const DefaultConfigFile = ".filemenu.yaml"

// DefaultLogSubdir is the log directory name under the target directory
const DefaultLogSubdir = "logs"

// DefaultExclude are names hidden from the menu unless overridden
var DefaultExclude = []string{".DS_Store", "Thumbs.db", "desktop.ini"}

var validLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Config holds every startup parameter of a browsing session
type Config struct {
	// TargetDir is the directory whose files are offered in the menu
	TargetDir string `yaml:"target_dir"`

	// Exclude lists file names or glob patterns hidden from the menu
	Exclude []string `yaml:"exclude"`

	// LogDir receives the action log (empty = <target_dir>/logs)
	LogDir string `yaml:"log_dir"`

	// LogLevel sets the diagnostic verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// NoColor disables colored console output
	NoColor bool `yaml:"no_color"`
}

// DefaultConfig returns a Config with the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		TargetDir: os.TempDir(),
		Exclude:   append([]string(nil), DefaultExclude...),
		LogDir:    "",
		LogLevel:  "warn",
		NoColor:   false,
	}
}

// LoadConfig reads a YAML config file over the defaults.
// A missing file yields the defaults without error; a malformed one is an error.
// Keys present in the file override defaults, including empty lists and false.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Detect which keys were actually set so that explicit zero values win
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if _, ok := rawMap["target_dir"]; ok && fileCfg.TargetDir != "" {
		cfg.TargetDir = fileCfg.TargetDir
	}
	if _, ok := rawMap["exclude"]; ok {
		cfg.Exclude = fileCfg.Exclude
	}
	if _, ok := rawMap["log_dir"]; ok {
		cfg.LogDir = fileCfg.LogDir
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(fileCfg.LogLevel)
	}
	if _, ok := rawMap["no_color"]; ok {
		cfg.NoColor = fileCfg.NoColor
	}

	return cfg, nil
}

// MergeWithFlags merges CLI flags into the configuration.
// Non-nil flag values override configuration values.
func (c *Config) MergeWithFlags(targetDir *string, exclude *[]string, logDir *string, logLevel *string, noColor *bool) {
	if targetDir != nil {
		c.TargetDir = *targetDir
	}
	if exclude != nil {
		c.Exclude = *exclude
	}
	if logDir != nil {
		c.LogDir = *logDir
	}
	if logLevel != nil {
		c.LogLevel = strings.ToLower(*logLevel)
	}
	if noColor != nil {
		c.NoColor = *noColor
	}
}

// ResolvedLogDir returns LogDir, or <TargetDir>/logs when unset
func (c *Config) ResolvedLogDir() string {
	if c.LogDir != "" {
		return c.LogDir
	}
	return filepath.Join(c.TargetDir, DefaultLogSubdir)
}

// Excluder compiles the exclusion list
func (c *Config) Excluder() (*fileutil.Excluder, error) {
	return fileutil.NewExcluder(c.Exclude)
}

// Validate validates the configuration values.
// An unreadable target directory is not a config error; it lists as empty.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.TargetDir) == "" {
		return fmt.Errorf("target_dir cannot be empty")
	}

	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if _, err := c.Excluder(); err != nil {
		return fmt.Errorf("invalid exclude list: %w", err)
	}

	return nil
}

// Exists reports whether a config file is present at path
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Marshal renders cfg as YAML
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// SaveConfig writes cfg as YAML to path atomically, creating parent directories
func SaveConfig(cfg *Config, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	if err := filelock.LockAndWrite(path, data); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
