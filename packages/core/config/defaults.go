package config

import "github.com/abdul-hamid-achik/toolbox/packages/timestamps"

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		DefaultFormat: string(timestamps.DefaultFormat),
		Output:        "console",
		NoColor:       BoolPtr(false),
		Verbose:       BoolPtr(false),
		Seed:          nil, // random functions draw from the global source
	}
}

// IsDefault returns true if the config matches defaults
func (c *Config) IsDefault() bool {
	defaults := DefaultConfig()
	return c.DefaultFormat == defaults.DefaultFormat &&
		c.Output == defaults.Output &&
		c.GetNoColor() == defaults.GetNoColor() &&
		c.GetVerbose() == defaults.GetVerbose() &&
		c.Seed == nil
}
