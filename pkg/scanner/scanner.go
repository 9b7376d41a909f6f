package scanner

import (
	"cmp"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/arthur-debert/massminify/pkg/errors"
	"github.com/arthur-debert/massminify/pkg/filesystem"
	"github.com/arthur-debert/massminify/pkg/logging"
	"github.com/arthur-debert/massminify/pkg/rules"
	"github.com/arthur-debert/massminify/pkg/types"
	"github.com/rs/zerolog"
)

// Result holds the two disjoint working sets produced by a scan
type Result struct {
	Ordered   []types.CandidateFile
	Unordered []types.CandidateFile
}

// Len returns the total number of candidates
func (r Result) Len() int {
	return len(r.Ordered) + len(r.Unordered)
}

// Scanner walks a directory tree and classifies asset files
type Scanner struct {
	fs             types.FS
	rules          *rules.RuleSet
	excludes       map[string]bool
	excludePaths   map[string]bool
	minifiedSuffix string
	logger         zerolog.Logger
}

// New creates a scanner reading through fsys and positioning files with rs.
// A nil rule set leaves every file unordered.
func New(fsys types.FS, rs *rules.RuleSet, opts ...Option) *Scanner {
	s := &Scanner{
		fs:           fsys,
		rules:        rs,
		excludes:     make(map[string]bool),
		excludePaths: make(map[string]bool),
		logger:       logging.GetLogger("scanner"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan walks root and returns the ordered and unordered candidates of the
// enabled classes. The root is validated before any file is classified.
// When recursive is false, subdirectories are skipped entirely. Symlinked
// directories are followed unless they point back at a directory being walked.
// Both sets are sorted by position descending, then path.
func (s *Scanner) Scan(ctx context.Context, root string, recursive bool, classes types.ClassSet) (Result, error) {
	if err := filesystem.CheckDir(s.fs, root); err != nil {
		return Result{}, err
	}
	rootInfo, err := s.fs.Stat(root)
	if err != nil {
		return Result{}, errors.Wrapf(err, errors.ErrScan, "failed to stat %s", root).
			WithDetail("path", root)
	}

	s.logger.Debug().
		Str("root", root).
		Bool("recursive", recursive).
		Int("ruleCount", s.rules.Len()).
		Msg("Starting scan")

	var res Result
	if err := s.walk(ctx, root, recursive, classes, []fs.FileInfo{rootInfo}, &res); err != nil {
		return Result{}, err
	}

	sortSet(res.Ordered)
	sortSet(res.Unordered)

	s.logger.Debug().
		Int("ordered", len(res.Ordered)).
		Int("unordered", len(res.Unordered)).
		Msg("Scan complete")

	return res, nil
}

// sortSet orders a working set by position descending, then path
func sortSet(files []types.CandidateFile) {
	slices.SortFunc(files, func(a, b types.CandidateFile) int {
		if n := cmp.Compare(b.Position, a.Position); n != 0 {
			return n
		}
		return cmp.Compare(a.Path, b.Path)
	})
}

// walk visits dir. ancestors holds the directories on the current path from
// the root, used to detect symlink cycles.
func (s *Scanner) walk(ctx context.Context, dir string, recursive bool, classes types.ClassSet, ancestors []fs.FileInfo, res *Result) error {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrScan, "failed to read directory %s", dir).
			WithDetail("path", dir)
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, errors.ErrScan, "scan cancelled")
		}

		path := filepath.Join(dir, entry.Name())

		if entry.IsDir() || entry.Type()&fs.ModeSymlink != 0 {
			info, err := s.fs.Stat(path)
			if err != nil {
				s.logger.Debug().Err(err).Str("path", path).Msg("Skipping dangling symlink")
				continue
			}
			if info.IsDir() {
				if !recursive {
					continue
				}
				if revisits(ancestors, info) {
					s.logger.Debug().Str("path", path).Msg("Skipping symlink cycle")
					continue
				}
				if err := s.walk(ctx, path, recursive, classes, append(ancestors, info), res); err != nil {
					return err
				}
				continue
			}
		}

		class, ok := types.ClassForPath(path)
		if !ok || !classes.Has(class) {
			continue
		}
		if s.skip(path, entry.Name()) {
			s.logger.Trace().Str("path", path).Msg("Skipping generated file")
			continue
		}

		candidate := types.CandidateFile{
			Path:     path,
			Dir:      dir,
			Position: s.rules.Position(path),
			Class:    class,
		}

		if candidate.IsOrdered() {
			res.Ordered = append(res.Ordered, candidate)
		} else {
			res.Unordered = append(res.Unordered, candidate)
		}

		s.logger.Trace().
			Str("path", path).
			Str("class", class.String()).
			Int("position", candidate.Position).
			Msg("Classified file")
	}

	return nil
}

// revisits reports whether info is one of the directories being walked
func revisits(ancestors []fs.FileInfo, info fs.FileInfo) bool {
	for _, a := range ancestors {
		if os.SameFile(a, info) {
			return true
		}
	}
	return false
}

// skip reports whether a file is an excluded output or already minified
func (s *Scanner) skip(path, name string) bool {
	if s.excludes[name] || s.excludePaths[filepath.Clean(path)] {
		return true
	}
	if s.minifiedSuffix == "" {
		return false
	}
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	return strings.HasSuffix(stem, s.minifiedSuffix)
}
