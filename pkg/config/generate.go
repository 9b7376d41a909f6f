package config

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/massminify/pkg/errors"
	"github.com/arthur-debert/massminify/pkg/types"
)

// DefaultFileName is the project config written by genconfig
const DefaultFileName = "massminify.toml"

// DefaultContent returns the embedded defaults with every value commented
// out, ready to be saved as a project config.
func DefaultContent() string {
	return commentOutConfigValues(string(defaultConfig))
}

// WriteDefaultConfig writes DefaultContent to path unless a file already
// exists there. It reports whether the file was written.
func WriteDefaultConfig(fsys types.FS, path string) (bool, error) {
	if _, err := fsys.Stat(path); err == nil {
		return false, nil
	} else if !stderrors.Is(err, fs.ErrNotExist) {
		return false, errors.Wrapf(err, errors.ErrFileWrite, "failed to check %s", path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := fsys.MkdirAll(dir, 0755); err != nil {
			return false, errors.Wrapf(err, errors.ErrFileWrite, "failed to create %s", dir)
		}
	}
	if err := fsys.WriteFile(path, []byte(DefaultContent()), 0644); err != nil {
		return false, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}
	return true, nil
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines as-is
		if trimmed == "" {
			result = append(result, line)
			continue
		}

		// Keep lines that are already comments
		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep section headers (e.g., [js], [output]) as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		// Comment out configuration value lines
		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
