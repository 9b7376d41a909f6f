package config_test

import (
	"strings"
	"testing"

	"github.com/arthur-debert/massminify/pkg/config"
	"github.com/arthur-debert/massminify/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultContent(t *testing.T) {
	content := config.DefaultContent()

	assert.Contains(t, content, "[js]")
	assert.Contains(t, content, "[output]")
	assert.Contains(t, content, `# suffix = ".min"`)

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "[") {
			continue
		}
		t.Errorf("uncommented value line: %q", line)
	}
}

func TestWriteDefaultConfig(t *testing.T) {
	fsys := testutil.NewTestFS()

	written, err := config.WriteDefaultConfig(fsys, "/project/massminify.toml")
	require.NoError(t, err)
	assert.True(t, written)
	assert.Equal(t, config.DefaultContent(), testutil.ReadString(t, fsys, "/project/massminify.toml"))

	require.NoError(t, fsys.WriteFile("/project/massminify.toml", []byte("dir = \"keep\""), 0644))
	written, err = config.WriteDefaultConfig(fsys, "/project/massminify.toml")
	require.NoError(t, err)
	assert.False(t, written)
	assert.Equal(t, "dir = \"keep\"", testutil.ReadString(t, fsys, "/project/massminify.toml"))
}
