package filesystem

import (
	stderrors "errors"
	"io/fs"
	"strings"

	"github.com/arthur-debert/massminify/pkg/errors"
	"github.com/arthur-debert/massminify/pkg/types"
)

// CheckDir verifies that dir exists, is a directory and can be listed.
// An empty dir is a caller error and reported as ErrInvalidInput, distinct
// from the runtime errors for a missing or unreadable directory.
func CheckDir(fsys types.FS, dir string) error {
	if strings.TrimSpace(dir) == "" {
		return errors.New(errors.ErrInvalidInput, "directory should never be empty")
	}

	info, err := fsys.Stat(dir)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return errors.Wrapf(err, errors.ErrDirNotFound, "directory does not exist: %s", dir).
				WithDetail("path", dir)
		}
		return errors.Wrapf(err, errors.ErrDirAccess, "cannot stat %s", dir).
			WithDetail("path", dir)
	}

	if !info.IsDir() {
		return errors.Newf(errors.ErrNotDirectory, "%s is not a directory", dir).
			WithDetail("path", dir)
	}

	if _, err := fsys.ReadDir(dir); err != nil {
		return errors.Wrapf(err, errors.ErrDirAccess, "%s cannot be read", dir).
			WithDetail("path", dir)
	}

	return nil
}
