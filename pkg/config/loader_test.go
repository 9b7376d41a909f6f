// Test Type: Integration Test
// Description: Tests for layered configuration loading

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/massminify/pkg/config"
	"github.com/arthur-debert/massminify/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	return t.TempDir()
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := config.Load(config.LoadOptions{WorkDir: dir})
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Dir)
	assert.False(t, cfg.Recurse)
	assert.False(t, cfg.JS.Minify)
	assert.False(t, cfg.CSS.Minify)
	assert.Empty(t, cfg.Order)
	assert.Equal(t, ".min", cfg.Output.Suffix)
	assert.True(t, cfg.Output.SkipMinified)
	assert.Equal(t, 256, cfg.Output.CacheSize)
}

func TestLoad_ProjectTOML(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "massminify.toml"), `
dir = "web"
recurse = true

[js]
minify = true
consolidate = "site.js"

[[order]]
file = "jquery"
position = 1

[[order]]
file = "plugins/"
position = 2
`)

	cfg, err := config.Load(config.LoadOptions{WorkDir: dir})
	require.NoError(t, err)

	assert.Equal(t, "web", cfg.Dir)
	assert.True(t, cfg.Recurse)
	assert.True(t, cfg.JS.Minify)
	assert.Equal(t, "site.js", cfg.JS.Consolidate)
	assert.Equal(t, []config.OrderRule{
		{File: "jquery", Position: 1},
		{File: "plugins/", Position: 2},
	}, cfg.Order)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_ProjectYAML(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "massminify.yaml"), `
dir: assets
css:
  minify: true
  combine: all.css
order:
  - file: reset
    position: 1
`)

	cfg, err := config.Load(config.LoadOptions{WorkDir: dir})
	require.NoError(t, err)

	assert.Equal(t, "assets", cfg.Dir)
	assert.True(t, cfg.CSS.Minify)
	assert.Equal(t, "all.css", cfg.CSS.Combine)
	assert.Equal(t, []config.OrderRule{{File: "reset", Position: 1}}, cfg.Order)
}

func TestLoad_DotfileTakesPrecedence(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".massminify.toml"), `dir = "hidden"`)
	writeFile(t, filepath.Join(dir, "massminify.toml"), `dir = "visible"`)

	cfg, err := config.Load(config.LoadOptions{WorkDir: dir})
	require.NoError(t, err)
	assert.Equal(t, "hidden", cfg.Dir)
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "massminify.toml"), `dir = "ignored"`)
	explicit := filepath.Join(dir, "conf", "custom.toml")
	writeFile(t, explicit, `dir = "explicit"`)

	cfg, err := config.Load(config.LoadOptions{WorkDir: dir, ConfigFile: explicit})
	require.NoError(t, err)
	assert.Equal(t, "explicit", cfg.Dir)

	_, err = config.Load(config.LoadOptions{WorkDir: dir, ConfigFile: filepath.Join(dir, "nope.toml")})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.json")
	writeFile(t, path, `{}`)

	_, err := config.Load(config.LoadOptions{WorkDir: dir, ConfigFile: path})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoad_InvalidTOML(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "massminify.toml"), "dir = \n[[")

	_, err := config.Load(config.LoadOptions{WorkDir: dir})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestLoad_UserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	dir := t.TempDir()

	writeFile(t, filepath.Join(home, "massminify", "config.toml"), `
[output]
suffix = "-min"
keep_var_names = true
`)
	writeFile(t, filepath.Join(dir, "massminify.toml"), `
[output]
keep_var_names = false
`)

	assert.Equal(t, filepath.Join(home, "massminify", "config.toml"), config.UserConfigPath())

	cfg, err := config.Load(config.LoadOptions{WorkDir: dir})
	require.NoError(t, err)
	assert.Equal(t, "-min", cfg.Output.Suffix)
	assert.False(t, cfg.Output.KeepVarNames)

	cfg, err = config.Load(config.LoadOptions{WorkDir: dir, SkipUserConfig: true})
	require.NoError(t, err)
	assert.Equal(t, ".min", cfg.Output.Suffix)
}

func TestLoad_EnvLayers(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "massminify.toml"), `dir = "from-file"`)
	writeFile(t, filepath.Join(dir, ".env"), `
MASSMINIFY_DIR=from-dotenv
MASSMINIFY_JS_COMBINE=all.js
OTHER_SETTING=ignored
`)
	t.Setenv("MASSMINIFY_DIR", "from-env")
	t.Setenv("MASSMINIFY_RECURSE", "true")
	t.Setenv("MASSMINIFY_OUTPUT_SKIP_MINIFIED", "false")

	cfg, err := config.Load(config.LoadOptions{WorkDir: dir})
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Dir)
	assert.Equal(t, "all.js", cfg.JS.Combine)
	assert.True(t, cfg.Recurse)
	assert.False(t, cfg.Output.SkipMinified)
}

func TestLoad_Overrides(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "massminify.toml"), `
dir = "web"

[[order]]
file = "jquery"
position = 1
`)
	t.Setenv("MASSMINIFY_DIR", "from-env")

	cfg, err := config.Load(config.LoadOptions{
		WorkDir: dir,
		Overrides: map[string]interface{}{
			"dir":       "from-flag",
			"js.minify": true,
			"order": []interface{}{
				map[string]interface{}{"file": "app", "position": 2},
			},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "from-flag", cfg.Dir)
	assert.True(t, cfg.JS.Minify)
	assert.Equal(t, []config.OrderRule{{File: "app", Position: 2}}, cfg.Order)
}
