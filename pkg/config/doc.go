// Package config loads and validates massminify configuration.
//
// Values are layered with koanf, each layer overriding the previous one:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. user config ($XDG_CONFIG_HOME/massminify/config.toml)
//  3. project config (--config, or .massminify.toml, massminify.toml,
//     massminify.yaml in the working directory)
//  4. a legacy Ant build.xml <massminify> task
//  5. MASSMINIFY_* entries of a .env file
//  6. MASSMINIFY_* environment variables
//  7. command line overrides
package config
