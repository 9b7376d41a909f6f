// Test Type: Unit Test
// Description: Tests for importing the legacy Ant build task

package config_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/massminify/pkg/config"
	"github.com/arthur-debert/massminify/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const buildXML = `<?xml version="1.0"?>
<project name="site" default="minify" basedir=".">
  <property name="web.dir" value="web"/>
  <property name="web.dir" value="ignored"/>
  <taskdef name="massminify" classname="com.adampresley.massminifier.MassMinify"/>

  <target name="minify">
    <massminify dir="${web.dir}/js" minifyjs="true" consolidatejs="all.min.js" recurse="yes">
      <order file="library.js" position="1"/>
      <order file="file2.js" position="2"/>
      <order file="last.js" position="4"/>
    </massminify>
  </target>

  <target name="styles">
    <massminify dir="/abs/css" minifycss="true" combinecss="all.min.css"/>
  </target>
</project>
`

func writeBuild(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "build.xml")
	writeFile(t, path, content)
	return path
}

func TestLoadAntBuild_FirstTask(t *testing.T) {
	path := writeBuild(t, buildXML)

	values, err := config.LoadAntBuild(path, "")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(filepath.Dir(path), "web", "js"), values["dir"])
	assert.Equal(t, true, values["js.minify"])
	assert.Equal(t, true, values["recurse"])
	assert.Equal(t, "all.min.js", values["js.consolidate"])
	assert.NotContains(t, values, "css.minify")
	assert.Equal(t, []interface{}{
		map[string]interface{}{"file": "library.js", "position": 1},
		map[string]interface{}{"file": "file2.js", "position": 2},
		map[string]interface{}{"file": "last.js", "position": 4},
	}, values["order"])
}

func TestLoadAntBuild_Target(t *testing.T) {
	path := writeBuild(t, buildXML)

	values, err := config.LoadAntBuild(path, "styles")
	require.NoError(t, err)

	assert.Equal(t, "/abs/css", values["dir"])
	assert.Equal(t, true, values["css.minify"])
	assert.Equal(t, "all.min.css", values["css.combine"])
	assert.NotContains(t, values, "order")
}

func TestLoadAntBuild_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		target  string
		code    errors.ErrorCode
	}{
		{"unknown target", buildXML, "deploy", errors.ErrConfigInvalid},
		{"no task", `<project><target name="x"/></project>`, "", errors.ErrConfigInvalid},
		{"target without task", `<project><target name="x"/></project>`, "x", errors.ErrConfigInvalid},
		{"bad boolean", `<project><massminify dir="a" minifyjs="maybe"/></project>`, "", errors.ErrConfigParse},
		{"bad position", `<project><massminify dir="a"><order file="a.js" position="first"/></massminify></project>`, "", errors.ErrConfigParse},
		{"malformed xml", `<project><massminify`, "", errors.ErrConfigParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadAntBuild(writeBuild(t, tt.content), tt.target)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err))
		})
	}
}

func TestLoadAntBuild_MissingFile(t *testing.T) {
	_, err := config.LoadAntBuild(filepath.Join(t.TempDir(), "build.xml"), "")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoad_AntLayer(t *testing.T) {
	dir := isolate(t)
	path := writeBuild(t, buildXML)
	writeFile(t, filepath.Join(dir, "massminify.toml"), `
dir = "overridden"

[output]
suffix = ".small"
`)

	cfg, err := config.Load(config.LoadOptions{WorkDir: dir, AntFile: path, AntTarget: "minify"})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(filepath.Dir(path), "web", "js"), cfg.Dir)
	assert.True(t, cfg.JS.Minify)
	assert.True(t, cfg.Recurse)
	assert.Equal(t, "all.min.js", cfg.JS.Consolidate)
	assert.Equal(t, ".small", cfg.Output.Suffix)
	assert.Len(t, cfg.Order, 3)
	assert.Equal(t, config.OrderRule{File: "last.js", Position: 4}, cfg.Order[2])
}
