package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/abdul-hamid-achik/toolbox/packages/timestamps"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the toolbox configuration
type Config struct {
	DefaultFormat string  `json:"defaultFormat,omitempty" yaml:"defaultFormat,omitempty"` // timestamp format when a call omits one
	Output        string  `json:"output,omitempty" yaml:"output,omitempty"`               // console or json
	NoColor       *bool   `json:"noColor,omitempty" yaml:"noColor,omitempty"`
	Verbose       *bool   `json:"verbose,omitempty" yaml:"verbose,omitempty"`
	Seed          *uint64 `json:"seed,omitempty" yaml:"seed,omitempty"` // fixes the random functions when set
}

// OutputFormats lists the accepted values for Output.
var OutputFormats = []string{"console", "json"}

// BoolPtr returns a pointer to b
func BoolPtr(b bool) *bool {
	return &b
}

// Uint64Ptr returns a pointer to n
func Uint64Ptr(n uint64) *uint64 {
	return &n
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// GetVerbose returns the verbose setting, defaulting to false
func (c *Config) GetVerbose() bool {
	return getBool(c.Verbose, false)
}

// Format returns the configured default timestamp format.
func (c *Config) Format() (timestamps.Format, error) {
	if c.DefaultFormat == "" {
		return timestamps.DefaultFormat, nil
	}
	return timestamps.ParseFormat(c.DefaultFormat)
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	if _, err := c.Format(); err != nil {
		return fmt.Errorf("defaultFormat: %w", err)
	}
	if c.Output != "" && !contains(OutputFormats, c.Output) {
		return fmt.Errorf("output: unsupported format %q (want one of %s)", c.Output, strings.Join(OutputFormats, ", "))
	}
	return nil
}

// ConfigFilenames contains the possible config file names
var ConfigFilenames = []string{
	".toolbox.yaml",
	".toolbox.yml",
	"toolbox.yaml",
	".toolbox.json",
	".toolboxrc",
}

// LoadConfig loads configuration from the specified path or searches for config files
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		return loadConfigFromFile(path)
	}

	// Search for config file in current directory
	return FindAndLoadConfig(".")
}

// FindAndLoadConfig searches for a config file in the given directory
func FindAndLoadConfig(dir string) (*Config, error) {
	for _, filename := range ConfigFilenames {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return loadConfigFromFile(configPath)
		}
	}

	// Return defaults if no config file found
	return DefaultConfig(), nil
}

// loadConfigFromFile loads configuration from a specific file. Files ending
// in .json or named .toolboxrc are JSON; everything else is YAML.
func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if isJSON(path) {
		err = json.Unmarshal(data, config)
	} else {
		err = yaml.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return config, nil
}

func isJSON(path string) bool {
	base := filepath.Base(path)
	return filepath.Ext(path) == ".json" || base == ".toolboxrc"
}

// LoadDotEnv loads KEY=value pairs from path into the process environment
// without overriding variables that are already set. A missing file is not
// an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("cannot load env file %s: %w", path, err)
	}
	return nil
}

// FromEnv builds a Config holding only the TOOLBOX_* variables that are set.
func FromEnv() (*Config, error) {
	c := &Config{
		DefaultFormat: os.Getenv("TOOLBOX_DEFAULT_FORMAT"),
		Output:        os.Getenv("TOOLBOX_OUTPUT"),
	}
	if v := os.Getenv("TOOLBOX_NO_COLOR"); v != "" {
		c.NoColor = BoolPtr(parseBool(v))
	}
	if v := os.Getenv("TOOLBOX_VERBOSE"); v != "" {
		c.Verbose = BoolPtr(parseBool(v))
	}
	if v := os.Getenv("TOOLBOX_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("TOOLBOX_SEED: %w", err)
		}
		c.Seed = Uint64Ptr(seed)
	}
	return c, nil
}

func parseBool(v string) bool {
	return v == "true" || v == "1" || v == "yes"
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c // Copy

	if other.DefaultFormat != "" {
		result.DefaultFormat = other.DefaultFormat
	}
	if other.Output != "" {
		result.Output = other.Output
	}

	// Pointer fields - only override if explicitly set in other config
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}
	if other.Verbose != nil {
		result.Verbose = other.Verbose
	}
	if other.Seed != nil {
		result.Seed = other.Seed
	}

	return &result
}

// SaveConfig saves the configuration to a file, as JSON or YAML depending on
// the file name.
func (c *Config) SaveConfig(path string) error {
	var (
		data []byte
		err  error
	)
	if isJSON(path) {
		data, err = json.MarshalIndent(c, "", "  ")
	} else {
		data, err = yaml.Marshal(c)
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
