package massminify

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/arthur-debert/massminify/internal/version"
	"github.com/arthur-debert/massminify/pkg/cobrax/topics"
	"github.com/arthur-debert/massminify/pkg/config"
	"github.com/arthur-debert/massminify/pkg/core"
	"github.com/arthur-debert/massminify/pkg/errors"
	"github.com/arthur-debert/massminify/pkg/filesystem"
	"github.com/arthur-debert/massminify/pkg/logging"
	"github.com/arthur-debert/massminify/pkg/output"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "massminify",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			logging.LogCommand(cmd.CommandPath(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	tm, err := topics.Load(topicsFS, "topics", topics.Options{
		Extensions: []string{".txt", ".md"},
		Renderer:   topics.NewGlamourRenderer(),
	})
	if err != nil {
		// the topics are embedded, so this only fails on a broken build
		panic(err)
	}

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newOrderCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newExplainCmd(tm))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	tm.Install(rootCmd)

	return rootCmd
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// outputFormat parses --format and resolves auto against the command output
func outputFormat(cmd *cobra.Command, raw string) (output.Format, error) {
	format, err := output.ParseFormat(raw)
	if err != nil {
		return format, err
	}
	if format != output.FormatAuto {
		return format, nil
	}
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		return format.Resolve(f), nil
	}
	return output.FormatText, nil
}

func newRunCmd() *cobra.Command {
	var (
		sel    selectionFlags
		dryRun bool
		strict bool
		format string
	)

	cmd := &cobra.Command{
		Use:     "run [dir]",
		Short:   MsgRunShort,
		Long:    MsgRunLong,
		Example: MsgRunExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer logging.LogDuration(time.Now(), "run")

			cfg, err := sel.load(cmd, args)
			if err != nil {
				return err
			}
			fmtOut, err := outputFormat(cmd, format)
			if err != nil {
				return err
			}

			logger := logging.WithFields(map[string]interface{}{
				"component": "cmd.run",
				"dir":       cfg.Dir,
				"dryRun":    dryRun,
			})
			logger.Info().Msg("Starting run")

			result, err := core.Run(commandContext(cmd), cfg, core.RunOptions{DryRun: dryRun})
			if err != nil {
				return err
			}

			logger.Debug().
				Int64("cacheHits", result.CacheHits).
				Int64("cacheMisses", result.CacheMisses).
				Msg("Compression cache")

			summary := output.NewSummary(cfg.Dir, dryRun, len(result.Resolution.Sequence), result.Report)
			if err := output.NewRenderer(cmd.OutOrStdout(), fmtOut).RenderSummary(summary); err != nil {
				return err
			}

			if strict && result.Report.Failed() {
				return errors.Newf(errors.ErrPartial, MsgErrPartial,
					len(result.Report.Failures), len(result.Resolution.Sequence))
			}
			return nil
		},
	}

	sel.register(cmd)
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, MsgFlagDryRun)
	cmd.Flags().BoolVar(&strict, "strict", false, MsgFlagStrict)
	cmd.Flags().StringVarP(&format, "format", "f", "auto", MsgFlagFormat)

	return cmd
}

func newOrderCmd() *cobra.Command {
	var (
		sel    selectionFlags
		format string
	)

	cmd := &cobra.Command{
		Use:     "order [dir]",
		Short:   MsgOrderShort,
		Long:    MsgOrderLong,
		Example: MsgOrderExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := sel.load(cmd, args)
			if err != nil {
				return err
			}
			fmtOut, err := outputFormat(cmd, format)
			if err != nil {
				return err
			}

			res, err := core.Resolve(commandContext(cmd), cfg, filesystem.NewOS())
			if err != nil {
				return err
			}

			gap := 0
			if res.HasGap {
				gap = res.Gap
			}
			m := output.NewManifest(res.Root, res.Recursive, gap, res.Sequence)
			return output.NewRenderer(cmd.OutOrStdout(), fmtOut).RenderManifest(m)
		},
	}

	sel.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "auto", MsgFlagFormat)

	return cmd
}

func newGenConfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "genconfig [path]",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !write {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), config.DefaultContent())
				return err
			}

			path := config.DefaultFileName
			if len(args) > 0 {
				path = args[0]
			}
			written, err := config.WriteDefaultConfig(filesystem.NewOS(), path)
			if err != nil {
				return err
			}
			if written {
				fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, path)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), MsgConfigExists, path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	return cmd
}

func newExplainCmd(tm *topics.Manager) *cobra.Command {
	return &cobra.Command{
		Use:       "explain [topic]",
		Short:     MsgExplainShort,
		GroupID:   "misc",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: tm.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "ordering"
			if len(args) > 0 {
				name = args[0]
			}
			rendered, ok := tm.Render(name)
			if !ok {
				return errors.Newf(errors.ErrInvalidInput, MsgErrUnknownTopic, name).
					WithDetail("topics", tm.Names())
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), rendered)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

func newManCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		GroupID: "misc",
		Hidden:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, "failed to create %s", dir)
			}
			header := &doc.GenManHeader{
				Title:   "MASSMINIFY",
				Section: "1",
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return errors.Wrap(err, errors.ErrFileWrite, "failed to generate man pages")
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgManWritten, dir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", ".", MsgFlagManDir)
	return cmd
}
