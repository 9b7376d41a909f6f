package grouping

import (
	"bytes"
	"context"
	"path/filepath"

	"github.com/arthur-debert/massminify/pkg/compress"
	"github.com/arthur-debert/massminify/pkg/errors"
	"github.com/arthur-debert/massminify/pkg/logging"
	"github.com/arthur-debert/massminify/pkg/types"
	"github.com/rs/zerolog"
)

// Output describes one written file
type Output struct {
	Path    string           `json:"path" yaml:"path" toml:"path"`
	Class   types.AssetClass `json:"class" yaml:"class" toml:"class"`
	Mode    string           `json:"mode" yaml:"mode" toml:"mode"`
	Sources []string         `json:"sources" yaml:"sources" toml:"sources"`
	Bytes   int              `json:"bytes" yaml:"bytes" toml:"bytes"`
}

// Failure records a file that was skipped
type Failure struct {
	Path    string           `json:"path" yaml:"path" toml:"path"`
	Code    errors.ErrorCode `json:"code" yaml:"code" toml:"code"`
	Message string           `json:"message" yaml:"message" toml:"message"`
}

// Report is the outcome of applying a plan
type Report struct {
	Outputs  []Output  `json:"outputs" yaml:"outputs" toml:"outputs"`
	Failures []Failure `json:"failures" yaml:"failures" toml:"failures"`
}

// Failed reports whether any file was skipped
func (r Report) Failed() bool {
	return len(r.Failures) > 0
}

func (r *Report) fail(path string, err error) {
	r.Failures = append(r.Failures, Failure{
		Path:    path,
		Code:    errors.GetErrorCode(err),
		Message: err.Error(),
	})
}

// Grouper applies a Plan to an OrderedSequence
type Grouper struct {
	fs         types.FS
	compressor compress.Compressor
	logger     zerolog.Logger
}

// New creates a grouper reading and writing through fsys
func New(fsys types.FS, c compress.Compressor) *Grouper {
	return &Grouper{
		fs:         fsys,
		compressor: c,
		logger:     logging.GetLogger("grouping"),
	}
}

// group is an output under construction
type group struct {
	path    string
	bodies  [][]byte
	sources []string
}

// Apply runs the plan over seq. Per-file failures never abort the run; the
// only error returned is context cancellation.
func (g *Grouper) Apply(ctx context.Context, plan Plan, seq types.OrderedSequence) (Report, error) {
	report := Report{Outputs: []Output{}, Failures: []Failure{}}

	for _, cp := range plan.Classes {
		files := seq.ByClass(cp.Class)
		if len(files) == 0 {
			continue
		}

		g.logger.Debug().
			Str("class", cp.Class.String()).
			Str("mode", cp.Mode.String()).
			Int("files", len(files)).
			Msg("Applying grouping policy")

		var err error
		switch cp.Mode {
		case ModeCombine, ModeConsolidate:
			err = g.concatenate(ctx, plan, cp, files, &report)
		default:
			err = g.minifyEach(ctx, plan, cp, files, &report)
		}
		if err != nil {
			return report, err
		}
	}

	return report, nil
}

func (g *Grouper) minifyEach(ctx context.Context, plan Plan, cp ClassPlan, files types.OrderedSequence, report *Report) error {
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, errors.ErrCancelled, "grouping cancelled")
		}

		body, err := g.compressFile(f)
		if err != nil {
			report.fail(f.Path, err)
			continue
		}

		out := MinifiedName(f.Path, plan.Suffix)
		if err := g.write(out, body); err != nil {
			report.fail(out, err)
			continue
		}
		report.Outputs = append(report.Outputs, Output{
			Path:    out,
			Class:   cp.Class,
			Mode:    cp.Mode.String(),
			Sources: []string{f.Path},
			Bytes:   len(body),
		})
	}
	return nil
}

func (g *Grouper) concatenate(ctx context.Context, plan Plan, cp ClassPlan, files types.OrderedSequence, report *Report) error {
	var groups []*group
	byPath := make(map[string]*group)

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, errors.ErrCancelled, "grouping cancelled")
		}

		var out string
		if cp.Mode == ModeConsolidate {
			out = filepath.Join(plan.Root, cp.Target)
		} else {
			out = filepath.Join(f.Dir, cp.Target)
		}
		grp, ok := byPath[out]
		if !ok {
			grp = &group{path: out}
			byPath[out] = grp
			groups = append(groups, grp)
		}

		body, err := g.compressFile(f)
		if err != nil {
			report.fail(f.Path, err)
			continue
		}
		grp.bodies = append(grp.bodies, body)
		grp.sources = append(grp.sources, f.Path)
	}

	for _, grp := range groups {
		if len(grp.bodies) == 0 {
			g.logger.Warn().Str("output", grp.path).Msg("No file could be compressed, skipping output")
			continue
		}
		data := bytes.Join(grp.bodies, []byte(separator(cp.Class)))
		if err := g.write(grp.path, data); err != nil {
			report.fail(grp.path, err)
			continue
		}
		report.Outputs = append(report.Outputs, Output{
			Path:    grp.path,
			Class:   cp.Class,
			Mode:    cp.Mode.String(),
			Sources: grp.sources,
			Bytes:   len(data),
		})
	}
	return nil
}

func (g *Grouper) compressFile(f types.CandidateFile) ([]byte, error) {
	src, err := g.fs.ReadFile(f.Path)
	if err != nil {
		err = errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", f.Path)
		g.logger.Error().Err(err).Str("path", f.Path).Msg("Skipping file")
		return nil, err
	}

	out, err := g.compressor.Compress(f.Class, src)
	if err != nil {
		if !errors.IsErrorCode(err, errors.ErrCompress) {
			err = errors.Wrapf(err, errors.ErrCompress, "failed to compress %s", f.Path)
		}
		g.logger.Error().Err(err).Str("path", f.Path).Msg("Skipping file")
		return nil, err
	}

	g.logger.Debug().
		Str("path", f.Path).
		Int("before", len(src)).
		Int("after", len(out)).
		Msg("Compressed file")
	return out, nil
}

func (g *Grouper) write(path string, data []byte) error {
	if err := g.fs.WriteFile(path, data, 0644); err != nil {
		err = errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
		g.logger.Error().Err(err).Str("path", path).Msg("Failed to write output")
		return err
	}
	g.logger.Info().Str("path", path).Int("bytes", len(data)).Msg("Wrote output")
	return nil
}
