package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/massminify/pkg/errors"
	"github.com/arthur-debert/massminify/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment variable read as configuration
	EnvPrefix = "MASSMINIFY_"
	// AppDirName is the directory name under the XDG config home
	AppDirName = "massminify"
	// UserConfigName is the file name of the user config
	UserConfigName = "config.toml"
	// EnvFileName is the dotenv file read from the working directory
	EnvFileName = ".env"
)

// ProjectConfigNames are searched, in order, in the working directory when
// no explicit config file is given. The first one found is loaded.
var ProjectConfigNames = []string{
	".massminify.toml",
	"massminify.toml",
	".massminify.yaml",
	"massminify.yaml",
	"massminify.yml",
}

// LoadOptions selects the layers read by Load
type LoadOptions struct {
	// WorkDir is searched for project config and .env; defaults to "."
	WorkDir string
	// ConfigFile is an explicit project config, which must exist
	ConfigFile string
	// AntFile is a legacy build.xml holding a <massminify> task
	AntFile string
	// AntTarget selects the target containing the task; empty takes the first
	AntTarget string
	// SkipUserConfig ignores the XDG user config
	SkipUserConfig bool
	// Overrides are applied last, keyed by dotted config path
	Overrides map[string]interface{}
}

// Load builds the effective configuration from all layers. It does not
// validate the result; call Validate before using it.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config.loader")
	k := koanf.New(".")

	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load embedded defaults")
	}

	// 2. User config
	if !opts.SkipUserConfig {
		path := UserConfigPath()
		if fileExists(path) {
			if err := loadFile(k, path); err != nil {
				return nil, err
			}
			logger.Debug().Str("path", path).Msg("Loaded user config")
		}
	}

	// 3. Project config
	if path, err := projectConfigPath(workDir, opts.ConfigFile); err != nil {
		return nil, err
	} else if path != "" {
		if err := loadFile(k, path); err != nil {
			return nil, err
		}
		logger.Debug().Str("path", path).Msg("Loaded project config")
	}

	// 4. Ant build file
	if opts.AntFile != "" {
		values, err := LoadAntBuild(opts.AntFile, opts.AntTarget)
		if err != nil {
			return nil, err
		}
		if err := k.Load(confmap.Provider(values, "."), nil); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to merge %s", opts.AntFile)
		}
		logger.Debug().Str("path", opts.AntFile).Msg("Loaded Ant build task")
	}

	// 5. .env file
	envPath := filepath.Join(workDir, EnvFileName)
	if fileExists(envPath) {
		values, err := godotenv.Read(envPath)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", envPath)
		}
		if err := k.Load(confmap.Provider(envToConfMap(values), "."), nil); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to merge %s", envPath)
		}
		logger.Debug().Str("path", envPath).Msg("Loaded .env file")
	}

	// 6. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 7. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	return &cfg, nil
}

// UserConfigPath returns the location of the user config file
func UserConfigPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = xdg.ConfigHome
	}
	return filepath.Join(base, AppDirName, UserConfigName)
}

func projectConfigPath(workDir, explicit string) (string, error) {
	if explicit != "" {
		if !fileExists(explicit) {
			return "", errors.Newf(errors.ErrConfigLoad, "config file %s not found", explicit).
				WithDetail("path", explicit)
		}
		return explicit, nil
	}
	for _, name := range ProjectConfigNames {
		path := filepath.Join(workDir, name)
		if fileExists(path) {
			return path, nil
		}
	}
	return "", nil
}

func loadFile(k *koanf.Koanf, path string) error {
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".toml", "":
		parser = toml.Parser()
	default:
		return errors.Newf(errors.ErrConfigLoad, "unsupported config format %q", filepath.Ext(path)).
			WithDetail("path", path)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
	}
	return nil
}

// envKey maps MASSMINIFY_JS_COMBINE to js.combine. Only the first
// underscore after the prefix separates sections, so
// MASSMINIFY_OUTPUT_SKIP_MINIFIED maps to output.skip_minified.
func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
}

func envToConfMap(values map[string]string) map[string]interface{} {
	out := make(map[string]interface{})
	for name, value := range values {
		if !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		out[envKey(name)] = value
	}
	return out
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
