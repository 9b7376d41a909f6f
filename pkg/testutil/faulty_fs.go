package testutil

import (
	"io/fs"
	"sync"

	"github.com/arthur-debert/massminify/pkg/types"
)

// FaultyFS wraps a types.FS and returns injected errors for chosen paths.
type FaultyFS struct {
	types.FS

	mu          sync.Mutex
	readErrors  map[string]error
	listErrors  map[string]error
	writeErrors map[string]error
	writes      []string
}

// NewFaultyFS wraps base with no faults configured
func NewFaultyFS(base types.FS) *FaultyFS {
	return &FaultyFS{
		FS:          base,
		readErrors:  make(map[string]error),
		listErrors:  make(map[string]error),
		writeErrors: make(map[string]error),
	}
}

// FailRead makes ReadFile(path) return err
func (f *FaultyFS) FailRead(path string, err error) *FaultyFS {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.readErrors[path] = err
	return f
}

// FailList makes ReadDir(path) return err
func (f *FaultyFS) FailList(path string, err error) *FaultyFS {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listErrors[path] = err
	return f
}

// FailWrite makes WriteFile(path) return err
func (f *FaultyFS) FailWrite(path string, err error) *FaultyFS {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writeErrors[path] = err
	return f
}

// Writes returns the paths successfully written, in order
func (f *FaultyFS) Writes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.writes...)
}

func (f *FaultyFS) ReadFile(name string) ([]byte, error) {
	f.mu.Lock()
	err := f.readErrors[name]
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return f.FS.ReadFile(name)
}

func (f *FaultyFS) ReadDir(name string) ([]fs.DirEntry, error) {
	f.mu.Lock()
	err := f.listErrors[name]
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return f.FS.ReadDir(name)
}

func (f *FaultyFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	f.mu.Lock()
	err := f.writeErrors[name]
	f.mu.Unlock()
	if err != nil {
		return err
	}
	if err := f.FS.WriteFile(name, data, perm); err != nil {
		return err
	}
	f.mu.Lock()
	f.writes = append(f.writes, name)
	f.mu.Unlock()
	return nil
}
