package types

import (
	"io/fs"
)

// FS is the filesystem interface required for massminify operations
type FS interface {
	// Read operations
	Stat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	ReadFile(name string) ([]byte, error)

	// Write operations, used only by the grouping policy
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
}
