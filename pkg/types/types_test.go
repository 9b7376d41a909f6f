// pkg/types/types_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test asset classes and candidate ordering helpers

package types_test

import (
	"testing"

	"github.com/arthur-debert/massminify/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassForPath(t *testing.T) {
	tests := []struct {
		path   string
		class  types.AssetClass
		wantOK bool
	}{
		{"assets/app.js", types.Script, true},
		{"assets/site.css", types.Stylesheet, true},
		{"assets/app.min.js", types.Script, true},
		{"assets/readme.md", 0, false},
		{"assets/APP.JS", 0, false},
		{"assets/js", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			class, ok := types.ClassForPath(tt.path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.class, class)
		})
	}
}

func TestParseAssetClass(t *testing.T) {
	for _, in := range []string{"js", "Script", "javascript"} {
		c, err := types.ParseAssetClass(in)
		require.NoError(t, err)
		assert.Equal(t, types.Script, c)
	}
	for _, in := range []string{"css", "STYLESHEET"} {
		c, err := types.ParseAssetClass(in)
		require.NoError(t, err)
		assert.Equal(t, types.Stylesheet, c)
	}
	_, err := types.ParseAssetClass("html")
	assert.Error(t, err)
}

func TestAssetClass_TextRoundTrip(t *testing.T) {
	text, err := types.Stylesheet.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "css", string(text))

	var c types.AssetClass
	require.NoError(t, c.UnmarshalText([]byte("js")))
	assert.Equal(t, types.Script, c)

	_, err = types.AssetClass(0).MarshalText()
	assert.Error(t, err)
}

func TestClassSet(t *testing.T) {
	set := types.NewClassSet(types.Stylesheet, types.Script)
	assert.True(t, set.Has(types.Script))
	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []types.AssetClass{types.Script, types.Stylesheet}, set.Classes())

	empty := types.NewClassSet()
	assert.Equal(t, 0, empty.Len())
	assert.False(t, empty.Has(types.Script))
}

func TestSortCandidates(t *testing.T) {
	files := []types.CandidateFile{
		{Path: "c.js", Position: 2},
		{Path: "b.js", Position: 1},
		{Path: "a.js", Position: 2},
		{Path: "z.js", Position: 0},
	}

	types.SortCandidates(files)

	seq := types.OrderedSequence(files)
	assert.Equal(t, []string{"z.js", "b.js", "a.js", "c.js"}, seq.Paths())
	assert.Equal(t, []int{0, 1, 2, 2}, seq.Positions())
	assert.True(t, seq.IsSorted())
}

func TestOrderedSequence_ByClass(t *testing.T) {
	seq := types.OrderedSequence{
		{Path: "a.css", Position: 1, Class: types.Stylesheet},
		{Path: "b.js", Position: 1, Class: types.Script},
		{Path: "c.css", Position: 2, Class: types.Stylesheet},
	}

	assert.Equal(t, []string{"a.css", "c.css"}, seq.ByClass(types.Stylesheet).Paths())
	assert.Equal(t, []string{"b.js"}, seq.ByClass(types.Script).Paths())
	assert.NotNil(t, types.OrderedSequence{}.ByClass(types.Script))
}

func TestCandidateFile_String(t *testing.T) {
	f := types.CandidateFile{Path: "lib/jquery.js", Position: 1}
	assert.Equal(t, "lib/jquery.js at position 1", f.String())
	assert.True(t, f.IsOrdered())
	assert.False(t, types.CandidateFile{Path: "x.js"}.IsOrdered())
}
