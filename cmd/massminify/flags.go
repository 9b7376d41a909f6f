package massminify

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/massminify/pkg/config"
	"github.com/arthur-debert/massminify/pkg/errors"
	"github.com/spf13/cobra"
)

// selectionFlags are shared by run and order
type selectionFlags struct {
	configFile string
	antFile    string
	antTarget  string

	recurse        bool
	js             bool
	css            bool
	combineJS      string
	consolidateJS  string
	combineCSS     string
	consolidateCSS string
	order          []string
	suffix         string
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.configFile, "config", "c", "", MsgFlagConfig)
	flags.StringVar(&f.antFile, "ant", "", MsgFlagAnt)
	flags.StringVar(&f.antTarget, "ant-target", "", MsgFlagAntTarget)
	flags.BoolVarP(&f.recurse, "recurse", "r", false, MsgFlagRecurse)
	flags.BoolVar(&f.js, "js", false, MsgFlagJS)
	flags.BoolVar(&f.css, "css", false, MsgFlagCSS)
	flags.StringVar(&f.combineJS, "combine-js", "", MsgFlagCombineJS)
	flags.StringVar(&f.consolidateJS, "consolidate-js", "", MsgFlagConsolidateJS)
	flags.StringVar(&f.combineCSS, "combine-css", "", MsgFlagCombineCSS)
	flags.StringVar(&f.consolidateCSS, "consolidate-css", "", MsgFlagConsolidateCSS)
	flags.StringArrayVarP(&f.order, "order", "o", nil, MsgFlagOrder)
	flags.StringVar(&f.suffix, "suffix", "", MsgFlagSuffix)

	_ = cmd.MarkFlagFilename("config", "toml", "yaml", "yml")
	_ = cmd.MarkFlagFilename("ant", "xml")
}

// overrides returns the config values set on the command line. Only flags
// the user changed are included, so lower layers keep their values.
func (f *selectionFlags) overrides(cmd *cobra.Command, args []string) (map[string]interface{}, error) {
	out := make(map[string]interface{})
	if len(args) > 0 {
		out["dir"] = args[0]
	}

	changed := cmd.Flags().Changed
	set := func(flag, key string, value interface{}) {
		if changed(flag) {
			out[key] = value
		}
	}
	set("recurse", "recurse", f.recurse)
	set("js", "js.minify", f.js)
	set("css", "css.minify", f.css)
	set("combine-js", "js.combine", f.combineJS)
	set("consolidate-js", "js.consolidate", f.consolidateJS)
	set("combine-css", "css.combine", f.combineCSS)
	set("consolidate-css", "css.consolidate", f.consolidateCSS)
	set("suffix", "output.suffix", f.suffix)

	if len(f.order) > 0 {
		rules := make([]interface{}, 0, len(f.order))
		for _, raw := range f.order {
			rule, err := parseOrder(raw)
			if err != nil {
				return nil, err
			}
			rules = append(rules, map[string]interface{}{"file": rule.File, "position": rule.Position})
		}
		out["order"] = rules
	}
	return out, nil
}

// load builds the effective configuration of a command
func (f *selectionFlags) load(cmd *cobra.Command, args []string) (*config.Config, error) {
	overrides, err := f.overrides(cmd, args)
	if err != nil {
		return nil, err
	}
	return config.Load(config.LoadOptions{
		ConfigFile: f.configFile,
		AntFile:    f.antFile,
		AntTarget:  f.antTarget,
		Overrides:  overrides,
	})
}

// parseOrder splits PATTERN=POSITION at the last '=', so patterns may
// contain '=' themselves
func parseOrder(raw string) (config.OrderRule, error) {
	i := strings.LastIndex(raw, "=")
	if i <= 0 {
		return config.OrderRule{}, errors.Newf(errors.ErrInvalidInput, MsgErrOrderFlag, raw)
	}
	pos, err := strconv.Atoi(strings.TrimSpace(raw[i+1:]))
	if err != nil {
		return config.OrderRule{}, errors.Wrapf(err, errors.ErrInvalidInput, MsgErrOrderFlag, raw)
	}
	return config.OrderRule{File: raw[:i], Position: pos}, nil
}
