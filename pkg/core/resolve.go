package core

import (
	"context"

	"github.com/arthur-debert/massminify/pkg/config"
	"github.com/arthur-debert/massminify/pkg/logging"
	"github.com/arthur-debert/massminify/pkg/ordering"
	"github.com/arthur-debert/massminify/pkg/scanner"
	"github.com/arthur-debert/massminify/pkg/types"
	"github.com/rs/zerolog"
)

// Resolution is the ordered view of one directory walk
type Resolution struct {
	Root      string
	Recursive bool
	Sequence  types.OrderedSequence
	// Gap is the position unordered files were placed at; HasGap is false
	// when no file matched an order rule
	Gap       int
	HasGap    bool
	Ordered   int
	Unordered int
}

// Resolve validates cfg, scans its directory and returns the resolved
// sequence. Configuration errors are reported before any filesystem access.
func Resolve(ctx context.Context, cfg *config.Config, fsys types.FS) (*Resolution, error) {
	logger := logging.GetLogger("core.resolve")

	if err := cfg.Validate(); err != nil {
		logger.Error().Err(err).Msg("Invalid configuration")
		return nil, err
	}
	rs, err := cfg.RuleSet()
	if err != nil {
		return nil, err
	}

	logConfig(logger, cfg)

	done := logging.LogOperationStart(logger, "scan")
	s := scanner.New(fsys, rs,
		scanner.WithExcludes(cfg.ExcludeNames()...),
		scanner.WithExcludePaths(cfg.ExcludePaths()...),
		scanner.WithMinifiedSuffix(cfg.MinifiedSuffix()),
	)
	found, err := s.Scan(ctx, cfg.Dir, cfg.Recurse, cfg.EnabledClasses())
	done()
	if err != nil {
		logger.Error().Err(err).Str("dir", cfg.Dir).Msg("Scan failed")
		return nil, err
	}

	gap, hasGap := ordering.FindGap(found.Ordered)
	seq := ordering.Resolve(found.Ordered, found.Unordered)

	for _, f := range seq {
		logger.Info().
			Int("position", f.Position).
			Str("class", f.Class.String()).
			Str("path", f.Path).
			Msg("sorted")
	}

	return &Resolution{
		Root:      cfg.Dir,
		Recursive: cfg.Recurse,
		Sequence:  seq,
		Gap:       gap,
		HasGap:    hasGap,
		Ordered:   len(found.Ordered),
		Unordered: len(found.Unordered),
	}, nil
}

// logConfig records the effective settings of a run
func logConfig(logger zerolog.Logger, cfg *config.Config) {
	logger.Info().
		Str("dir", cfg.Dir).
		Bool("recurse", cfg.Recurse).
		Bool("minifyjs", cfg.JS.Minify).
		Str("combinejs", cfg.JS.Combine).
		Str("consolidatejs", cfg.JS.Consolidate).
		Bool("minifycss", cfg.CSS.Minify).
		Str("combinecss", cfg.CSS.Combine).
		Str("consolidatecss", cfg.CSS.Consolidate).
		Int("orderRules", len(cfg.Order)).
		Msg("Effective configuration")
}
