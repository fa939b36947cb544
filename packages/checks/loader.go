package checks

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads, validates and parses a check file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read check file: %w", err)
	}
	return Parse(path, data)
}

// Parse validates and parses check file content. path is used for messages.
func Parse(path string, data []byte) (*File, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := validateDocument(path, doc); err != nil {
		return nil, err
	}

	root := doc.(map[string]any)
	f := &File{Path: path}
	f.Name, _ = root["name"].(string)
	if f.Name == "" {
		f.Name = filepath.Base(path)
	}

	for _, raw := range root["checks"].([]any) {
		m := raw.(map[string]any)
		c := &Check{Expr: m["expr"].(string)}
		c.Name, _ = m["name"].(string)
		if c.Name == "" {
			c.Name = c.Expr
		}
		c.Expect, c.HasExpect = m["expect"]
		c.ExpectError, _ = m["expectError"].(string)
		if tol, ok := toNumber(m["tolerance"]); ok {
			c.Tolerance = tol
		}
		f.Checks = append(f.Checks, c)
	}

	return f, nil
}

// IsCheckFile reports whether path names a check file.
func IsCheckFile(path string) bool {
	return strings.HasSuffix(path, ".checks.yaml") || strings.HasSuffix(path, ".checks.yml")
}

// CollectFiles expands files and directories into check file paths.
func CollectFiles(args []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", arg, err)
		}

		if info.IsDir() {
			err := filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if !info.IsDir() && IsCheckFile(path) {
					files = append(files, path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
		} else {
			// explicitly named files are taken regardless of suffix
			files = append(files, arg)
		}
	}

	return files, nil
}
