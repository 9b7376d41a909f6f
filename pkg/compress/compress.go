package compress

import (
	"github.com/arthur-debert/massminify/pkg/errors"
	"github.com/arthur-debert/massminify/pkg/types"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/js"
)

// Compressor turns source text of one asset class into minified text
type Compressor interface {
	Compress(class types.AssetClass, src []byte) ([]byte, error)
}

// Func adapts a plain function to the Compressor interface
type Func func(class types.AssetClass, src []byte) ([]byte, error)

// Compress calls f
func (f Func) Compress(class types.AssetClass, src []byte) ([]byte, error) {
	return f(class, src)
}

// Media types registered with the minifier
const (
	mediaJS  = "application/javascript"
	mediaCSS = "text/css"
)

// Options tune the minifier
type Options struct {
	// Precision is the number of significant digits kept for numbers; 0 keeps all
	Precision int
	// KeepVarNames disables renaming of local JavaScript variables
	KeepVarNames bool
}

// Minifier is the default Compressor
type Minifier struct {
	m *minify.M
}

// NewMinifier creates a minifier for scripts and stylesheets
func NewMinifier(opts Options) *Minifier {
	m := minify.New()
	m.Add(mediaJS, &js.Minifier{
		Precision:    opts.Precision,
		KeepVarNames: opts.KeepVarNames,
	})
	m.Add(mediaCSS, &css.Minifier{
		Precision: opts.Precision,
	})
	return &Minifier{m: m}
}

// Compress minifies src according to its class
func (m *Minifier) Compress(class types.AssetClass, src []byte) ([]byte, error) {
	var mediaType string
	switch class {
	case types.Script:
		mediaType = mediaJS
	case types.Stylesheet:
		mediaType = mediaCSS
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "cannot compress asset class %s", class)
	}

	out, err := m.m.Bytes(mediaType, src)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCompress, "failed to minify %s", class)
	}
	return out, nil
}
