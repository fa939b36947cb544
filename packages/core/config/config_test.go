package config

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/abdul-hamid-achik/toolbox/packages/core/errors"
	"github.com/abdul-hamid-achik/toolbox/packages/timestamps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	assert.True(t, c.IsDefault())
	assert.Equal(t, "FULL", c.DefaultFormat)
	assert.Equal(t, "console", c.Output)
	assert.False(t, c.GetNoColor())
	assert.Nil(t, c.Seed)
	require.NoError(t, c.Validate())
}

func TestLoadConfig_YAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".toolbox.yaml", "defaultFormat: RELATIVE\noutput: json\nseed: 7\n")

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "RELATIVE", c.DefaultFormat)
	assert.Equal(t, "json", c.Output)
	require.NotNil(t, c.Seed)
	assert.Equal(t, uint64(7), *c.Seed)
	assert.False(t, c.GetVerbose(), "unset fields keep their defaults")
	assert.False(t, c.IsDefault())

	f, err := c.Format()
	require.NoError(t, err)
	assert.Equal(t, timestamps.Relative, f)
}

func TestLoadConfig_JSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".toolboxrc", `{"noColor": true, "verbose": true}`)

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, c.GetNoColor())
	assert.True(t, c.GetVerbose())
	assert.Equal(t, "FULL", c.DefaultFormat)
}

func TestLoadConfig_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.json", `{"output": `)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestFindAndLoadConfig(t *testing.T) {
	t.Run("no file returns defaults", func(t *testing.T) {
		c, err := FindAndLoadConfig(t.TempDir())
		require.NoError(t, err)
		assert.True(t, c.IsDefault())
	})

	t.Run("yaml wins over json", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ".toolbox.json", `{"output": "console"}`)
		writeFile(t, dir, ".toolbox.yml", "output: json\n")

		c, err := FindAndLoadConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, "json", c.Output)
	})
}

func TestValidate(t *testing.T) {
	c := DefaultConfig()
	c.DefaultFormat = "LONG"
	err := c.Validate()
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidArgument(err))

	c = DefaultConfig()
	c.Output = "xml"
	assert.Error(t, c.Validate())
}

func TestMerge(t *testing.T) {
	base := DefaultConfig()
	other := &Config{
		Output:  "json",
		NoColor: BoolPtr(true),
		Seed:    Uint64Ptr(3),
	}

	merged := base.Merge(other)
	assert.Equal(t, "json", merged.Output)
	assert.Equal(t, "FULL", merged.DefaultFormat)
	assert.True(t, merged.GetNoColor())
	assert.False(t, merged.GetVerbose())
	assert.Equal(t, uint64(3), *merged.Seed)

	assert.Equal(t, "console", base.Output, "merge must not mutate the receiver")
	assert.Same(t, base, base.Merge(nil))
}

func TestFromEnv(t *testing.T) {
	t.Setenv("TOOLBOX_DEFAULT_FORMAT", "DATE")
	t.Setenv("TOOLBOX_OUTPUT", "json")
	t.Setenv("TOOLBOX_NO_COLOR", "1")
	t.Setenv("TOOLBOX_VERBOSE", "")
	t.Setenv("TOOLBOX_SEED", "99")

	c, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "DATE", c.DefaultFormat)
	assert.Equal(t, "json", c.Output)
	assert.True(t, c.GetNoColor())
	assert.Nil(t, c.Verbose)
	assert.Equal(t, uint64(99), *c.Seed)

	t.Setenv("TOOLBOX_SEED", "nope")
	_, err = FromEnv()
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".env", "TOOLBOX_OUTPUT=json\n# comment\nTOOLBOX_DEFAULT_FORMAT=TIME\n")

	t.Setenv("TOOLBOX_OUTPUT", "console")
	t.Setenv("TOOLBOX_DEFAULT_FORMAT", "")
	require.NoError(t, os.Unsetenv("TOOLBOX_DEFAULT_FORMAT"))

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "console", os.Getenv("TOOLBOX_OUTPUT"), "existing variables are kept")
	assert.Equal(t, "TIME", os.Getenv("TOOLBOX_DEFAULT_FORMAT"))

	assert.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")))
}

func TestSaveConfig(t *testing.T) {
	dir := t.TempDir()
	c := DefaultConfig()
	c.Output = "json"

	for _, name := range []string{".toolbox.yaml", ".toolbox.json"} {
		path := filepath.Join(dir, name)
		require.NoError(t, c.SaveConfig(path))

		loaded, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "json", loaded.Output, name)
	}
}
