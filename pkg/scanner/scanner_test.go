// Test Type: Unit Test
// Description: Tests for the candidate scanner - walking, filtering and classifying assets

package scanner_test

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/massminify/pkg/errors"
	"github.com/arthur-debert/massminify/pkg/filesystem"
	"github.com/arthur-debert/massminify/pkg/rules"
	"github.com/arthur-debert/massminify/pkg/scanner"
	"github.com/arthur-debert/massminify/pkg/testutil"
	"github.com/arthur-debert/massminify/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var both = types.NewClassSet(types.Script, types.Stylesheet)

func siteFS(t *testing.T) types.FS {
	return testutil.NewTestFSWithFiles(t, map[string]string{
		"/site/app.js":            "app()",
		"/site/jquery.js":         "jq()",
		"/site/site.css":          "body{}",
		"/site/README.md":         "# readme",
		"/site/lib/plugin.js":     "plugin()",
		"/site/lib/theme.css":     "h1{}",
		"/site/lib/deep/extra.js": "extra()",
	})
}

func paths(files []types.CandidateFile) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Path
	}
	return out
}

func TestScan_Classification(t *testing.T) {
	rs := rules.MustCompile([]rules.Rule{
		{Pattern: "jquery", Position: 1},
		{Pattern: "lib/", Position: 3},
	})
	s := scanner.New(siteFS(t), rs)

	res, err := s.Scan(context.Background(), "/site", true, both)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/site/lib/deep/extra.js",
		"/site/lib/plugin.js",
		"/site/lib/theme.css",
		"/site/jquery.js",
	}, paths(res.Ordered), "position descending, then path")
	assert.Equal(t, []string{"/site/app.js", "/site/site.css"}, paths(res.Unordered))
	assert.Equal(t, 6, res.Len())

	for _, f := range res.Ordered {
		assert.Greater(t, f.Position, 0)
	}
	for _, f := range res.Unordered {
		assert.Equal(t, 0, f.Position)
	}
}

func TestScan_CandidateFields(t *testing.T) {
	s := scanner.New(siteFS(t), nil)

	res, err := s.Scan(context.Background(), "/site", true, both)
	require.NoError(t, err)
	assert.Empty(t, res.Ordered)

	byPath := map[string]types.CandidateFile{}
	for _, f := range res.Unordered {
		byPath[f.Path] = f
	}
	require.Contains(t, byPath, "/site/lib/theme.css")
	assert.Equal(t, types.Stylesheet, byPath["/site/lib/theme.css"].Class)
	assert.Equal(t, "/site/lib", byPath["/site/lib/theme.css"].Dir)
	assert.Equal(t, types.Script, byPath["/site/app.js"].Class)
}

func TestScan_NonRecursiveSkipsSubdirectories(t *testing.T) {
	s := scanner.New(siteFS(t), nil)

	res, err := s.Scan(context.Background(), "/site", false, both)
	require.NoError(t, err)

	assert.Equal(t, []string{"/site/app.js", "/site/jquery.js", "/site/site.css"}, paths(res.Unordered))
}

func TestScan_EnabledClassesFilter(t *testing.T) {
	s := scanner.New(siteFS(t), nil)

	res, err := s.Scan(context.Background(), "/site", true, types.NewClassSet(types.Stylesheet))
	require.NoError(t, err)
	assert.Equal(t, []string{"/site/lib/theme.css", "/site/site.css"}, paths(res.Unordered))

	res, err = s.Scan(context.Background(), "/site", true, types.NewClassSet())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Len())
}

func TestScan_RootValidation(t *testing.T) {
	fsys := siteFS(t)
	s := scanner.New(fsys, nil)

	tests := []struct {
		name string
		root string
		code errors.ErrorCode
	}{
		{"empty root is a caller error", "", errors.ErrInvalidInput},
		{"missing root", "/missing", errors.ErrDirNotFound},
		{"file as root", "/site/app.js", errors.ErrNotDirectory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Scan(context.Background(), tt.root, true, both)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err))
		})
	}

	t.Run("unreadable root", func(t *testing.T) {
		faulty := testutil.NewFaultyFS(fsys).FailList("/site", stderrors.New("permission denied"))
		_, err := scanner.New(faulty, nil).Scan(context.Background(), "/site", true, both)
		require.Error(t, err)
		assert.Equal(t, errors.ErrDirAccess, errors.GetErrorCode(err))
	})
}

func TestScan_SubdirectoryReadErrorAborts(t *testing.T) {
	faulty := testutil.NewFaultyFS(siteFS(t)).FailList("/site/lib", stderrors.New("io error"))
	s := scanner.New(faulty, nil)

	_, err := s.Scan(context.Background(), "/site", true, both)
	require.Error(t, err)
	assert.Equal(t, errors.ErrScan, errors.GetErrorCode(err))
}

func TestScan_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := scanner.New(siteFS(t), nil).Scan(ctx, "/site", true, both)
	require.Error(t, err)
	assert.Equal(t, errors.ErrScan, errors.GetErrorCode(err))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScan_SkipsGeneratedFiles(t *testing.T) {
	fsys := testutil.NewTestFSWithFiles(t, map[string]string{
		"/site/app.js":       "app()",
		"/site/app.min.js":   "app()",
		"/site/all.js":       "combined",
		"/site/site.min.css": "body{}",
		"/site/site.css":     "body{}",
	})

	s := scanner.New(fsys, nil, scanner.WithMinifiedSuffix(".min"), scanner.WithExcludes("all.js", ""))
	res, err := s.Scan(context.Background(), "/site", true, both)
	require.NoError(t, err)
	assert.Equal(t, []string{"/site/app.js", "/site/site.css"}, paths(res.Unordered))

	plain := scanner.New(fsys, nil)
	res, err = plain.Scan(context.Background(), "/site", true, both)
	require.NoError(t, err)
	assert.Len(t, res.Unordered, 5)
}

func TestScan_Idempotent(t *testing.T) {
	fsys := siteFS(t)
	rs := rules.MustCompile([]rules.Rule{{Pattern: "plugin", Position: 2}})

	first, err := scanner.New(fsys, rs).Scan(context.Background(), "/site", true, both)
	require.NoError(t, err)
	second, err := scanner.New(fsys, rs).Scan(context.Background(), "/site", true, both)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestScan_ExcludePathsOnlyMatchExactOutput(t *testing.T) {
	fsys := testutil.NewTestFSWithFiles(t, map[string]string{
		"/site/all.js":     "consolidated",
		"/site/app.js":     "app()",
		"/site/lib/all.js": "a real source",
	})

	s := scanner.New(fsys, nil, scanner.WithExcludePaths("/site/./all.js"))
	res, err := s.Scan(context.Background(), "/site", true, both)
	require.NoError(t, err)
	assert.Equal(t, []string{"/site/app.js", "/site/lib/all.js"}, paths(res.Unordered))
}

func symlinkOrSkip(t *testing.T, target, link string) {
	t.Helper()
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
}

func TestScan_FollowsSymlinkedDirectories(t *testing.T) {
	root := t.TempDir()
	shared := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "app.js"), []byte("app()"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(shared, "lib.js"), []byte("lib()"), 0644))
	symlinkOrSkip(t, shared, filepath.Join(root, "vendor"))

	s := scanner.New(filesystem.NewOS(), nil)

	res, err := s.Scan(context.Background(), root, true, both)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "app.js"),
		filepath.Join(root, "vendor", "lib.js"),
	}, paths(res.Unordered))

	res, err = s.Scan(context.Background(), root, false, both)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "app.js")}, paths(res.Unordered))
}

func TestScan_SymlinkCycleTerminates(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "sub")
	require.NoError(t, os.MkdirAll(sub, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "a.js"), []byte("a()"), 0644))
	symlinkOrSkip(t, root, filepath.Join(sub, "loop"))

	res, err := scanner.New(filesystem.NewOS(), nil).Scan(context.Background(), root, true, both)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(sub, "a.js")}, paths(res.Unordered))
}
