package config

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/massminify/pkg/errors"
	"github.com/arthur-debert/massminify/pkg/filesystem"
	"github.com/arthur-debert/massminify/pkg/grouping"
	"github.com/arthur-debert/massminify/pkg/rules"
	"github.com/arthur-debert/massminify/pkg/types"
)

// Config is the effective configuration of one run
type Config struct {
	Dir     string       `koanf:"dir"`
	Recurse bool         `koanf:"recurse"`
	JS      AssetConfig  `koanf:"js"`
	CSS     AssetConfig  `koanf:"css"`
	Order   []OrderRule  `koanf:"order"`
	Output  OutputConfig `koanf:"output"`
}

// AssetConfig holds the policy of one asset class
type AssetConfig struct {
	Minify      bool   `koanf:"minify"`
	Combine     string `koanf:"combine"`
	Consolidate string `koanf:"consolidate"`
}

// OrderRule is the configuration form of rules.Rule
type OrderRule struct {
	File     string `koanf:"file"`
	Position int    `koanf:"position"`
}

// OutputConfig controls how outputs are named and compressed
type OutputConfig struct {
	Suffix       string `koanf:"suffix"`
	SkipMinified bool   `koanf:"skip_minified"`
	CacheSize    int    `koanf:"cache_size"`
	KeepVarNames bool   `koanf:"keep_var_names"`
	Precision    int    `koanf:"precision"`
}

// Asset returns the policy of class
func (c *Config) Asset(class types.AssetClass) AssetConfig {
	switch class {
	case types.Script:
		return c.JS
	case types.Stylesheet:
		return c.CSS
	default:
		return AssetConfig{}
	}
}

// EnabledClasses returns the asset classes selected for processing
func (c *Config) EnabledClasses() types.ClassSet {
	set := types.NewClassSet()
	for _, class := range types.AllClasses {
		if c.Asset(class).Minify {
			set[class] = true
		}
	}
	return set
}

// Rules converts the configured order entries into rules
func (c *Config) Rules() []rules.Rule {
	out := make([]rules.Rule, 0, len(c.Order))
	for _, o := range c.Order {
		out = append(out, rules.Rule{Pattern: o.File, Position: o.Position})
	}
	return out
}

// RuleSet compiles the configured order rules
func (c *Config) RuleSet() (*rules.RuleSet, error) {
	return rules.Compile(c.Rules())
}

// ExcludeNames returns the combine targets of the enabled classes. Combine
// writes one output per directory, so the name is skipped at every depth.
func (c *Config) ExcludeNames() []string {
	var names []string
	for _, class := range c.EnabledClasses().Classes() {
		if target := c.Asset(class).Combine; target != "" {
			names = append(names, target)
		}
	}
	return names
}

// ExcludePaths returns the consolidate outputs of the enabled classes. They
// are written once at the root, so only that exact path is skipped.
func (c *Config) ExcludePaths() []string {
	var paths []string
	for _, class := range c.EnabledClasses().Classes() {
		if target := c.Asset(class).Consolidate; target != "" {
			paths = append(paths, filepath.Join(c.Dir, target))
		}
	}
	return paths
}

// Suffix is the name suffix of minified outputs, falling back to
// grouping.DefaultSuffix when unset.
func (c *Config) Suffix() string {
	if c.Output.Suffix == "" {
		return grouping.DefaultSuffix
	}
	return c.Output.Suffix
}

// MinifiedSuffix is the suffix the scanner skips, or "" when reruns should
// consider already minified files.
func (c *Config) MinifiedSuffix() string {
	if !c.Output.SkipMinified {
		return ""
	}
	return c.Suffix()
}

// Validate checks the configuration without touching the filesystem. All
// failures carry ErrConfigInvalid.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Dir) == "" {
		return errors.New(errors.ErrConfigInvalid, "please provide a valid source directory to scan")
	}
	if !c.JS.Minify && !c.CSS.Minify {
		return errors.New(errors.ErrConfigInvalid, "you must choose to minify either JavaScript or CSS")
	}
	if c.JS.Combine != "" && c.JS.Consolidate != "" {
		return errors.New(errors.ErrConfigInvalid, "you cannot both combine and consolidate JavaScript, pick one or the other").
			WithDetails(map[string]interface{}{"combine": c.JS.Combine, "consolidate": c.JS.Consolidate})
	}
	if c.CSS.Combine != "" && c.CSS.Consolidate != "" {
		return errors.New(errors.ErrConfigInvalid, "you cannot both combine and consolidate CSS, pick one or the other").
			WithDetails(map[string]interface{}{"combine": c.CSS.Combine, "consolidate": c.CSS.Consolidate})
	}
	for _, class := range types.AllClasses {
		a := c.Asset(class)
		for _, target := range []string{a.Combine, a.Consolidate} {
			if target != "" && filepath.Base(target) != target {
				return errors.Newf(errors.ErrConfigInvalid, "%s output %q must be a file name, not a path", class, target)
			}
		}
	}
	if strings.ContainsAny(c.Output.Suffix, `/\`) {
		return errors.Newf(errors.ErrConfigInvalid, "output suffix %q must not contain a path separator", c.Output.Suffix)
	}
	if _, err := c.RuleSet(); err != nil {
		return err
	}
	return nil
}

// ValidateWithFS runs Validate and then checks that Dir is a readable
// directory of fsys.
func (c *Config) ValidateWithFS(fsys types.FS) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return filesystem.CheckDir(fsys, c.Dir)
}
