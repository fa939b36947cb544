// Package config handles configuration loading and management for toolbox.
//
// It provides functionality for:
//   - Loading configuration from .toolbox.yaml, .toolbox.yml or .toolbox.json files
//   - Default configuration values
//   - Environment overrides (TOOLBOX_*), optionally seeded from a .env file
package config
