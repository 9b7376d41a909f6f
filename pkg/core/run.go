package core

import (
	"context"

	"github.com/arthur-debert/massminify/pkg/compress"
	"github.com/arthur-debert/massminify/pkg/config"
	"github.com/arthur-debert/massminify/pkg/errors"
	"github.com/arthur-debert/massminify/pkg/filesystem"
	"github.com/arthur-debert/massminify/pkg/grouping"
	"github.com/arthur-debert/massminify/pkg/logging"
	"github.com/arthur-debert/massminify/pkg/types"
)

// RunOptions contains options for a full pipeline run
type RunOptions struct {
	// FileSystem defaults to the OS filesystem
	FileSystem types.FS
	// Compressor defaults to a cached minifier configured from cfg.Output
	Compressor compress.Compressor
	// DryRun keeps every write in memory. It only applies when FileSystem
	// is nil; a caller supplying its own filesystem controls where writes go.
	DryRun bool
}

// Result is the outcome of Run
type Result struct {
	Resolution  *Resolution
	Report      grouping.Report
	DryRun      bool
	CacheHits   int64
	CacheMisses int64
}

// Run resolves the sequence of cfg and applies its grouping policy.
// Per-file failures are collected in Result.Report; the returned error is
// reserved for configuration, scan and cancellation failures.
func Run(ctx context.Context, cfg *config.Config, opts RunOptions) (*Result, error) {
	logger := logging.GetLogger("core.run")

	fsys := opts.FileSystem
	if fsys == nil {
		if opts.DryRun {
			fsys = filesystem.NewDryRun()
		} else {
			fsys = filesystem.NewOS()
		}
	}

	res, err := Resolve(ctx, cfg, fsys)
	if err != nil {
		return nil, err
	}

	comp := opts.Compressor
	var cached *compress.Cached
	if comp == nil {
		minifier := compress.NewMinifier(compress.Options{
			Precision:    cfg.Output.Precision,
			KeepVarNames: cfg.Output.KeepVarNames,
		})
		cached, err = compress.NewCached(minifier, cfg.Output.CacheSize)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to create compression cache")
		}
		comp = cached
	}

	done := logging.LogOperationStart(logger, "group")
	report, err := grouping.New(fsys, comp).Apply(ctx, BuildPlan(cfg), res.Sequence)
	done()

	result := &Result{Resolution: res, Report: report, DryRun: opts.DryRun}
	if cached != nil {
		result.CacheHits, result.CacheMisses = cached.Stats()
	}
	if err != nil {
		return result, err
	}

	logger.Info().
		Int("outputs", len(report.Outputs)).
		Int("failures", len(report.Failures)).
		Bool("dryRun", opts.DryRun).
		Msg("Run complete")

	return result, nil
}

// BuildPlan derives the grouping plan of the enabled classes
func BuildPlan(cfg *config.Config) grouping.Plan {
	plan := grouping.Plan{Root: cfg.Dir, Suffix: cfg.Suffix()}
	for _, class := range cfg.EnabledClasses().Classes() {
		a := cfg.Asset(class)
		cp := grouping.ClassPlan{Class: class, Mode: grouping.ModeMinify}
		switch {
		case a.Consolidate != "":
			cp.Mode = grouping.ModeConsolidate
			cp.Target = a.Consolidate
		case a.Combine != "":
			cp.Mode = grouping.ModeCombine
			cp.Target = a.Combine
		}
		plan.Classes = append(plan.Classes, cp)
	}
	return plan
}
