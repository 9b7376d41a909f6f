package massminify

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Minify, combine and consolidate JavaScript and CSS in order"
	MsgRunShort        = "Minify the assets of a directory"
	MsgOrderShort      = "Print the resolved file order without writing"
	MsgGenConfigShort  = "Print or write a configuration template"
	MsgExplainShort    = "Explain order rules and the gap"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Status messages
	MsgConfigWritten = "Wrote configuration template to %s\n"
	MsgConfigExists  = "%s already exists, leaving it untouched\n"
	MsgVersionFormat = "massminify version %s\n  commit: %s\n  built:  %s\n"
	MsgManWritten    = "Wrote man pages to %s\n"

	// Error messages
	MsgErrOrderFlag    = "invalid --order %q, expected PATTERN=POSITION"
	MsgErrPartial      = "%d of %d files failed"
	MsgErrNoCommand    = "no command specified"
	MsgErrUnknownTopic = "unknown topic %q"

	// Hints printed after an error, by category
	MsgHintConfig = "Nothing was processed. Check the configuration file, environment and flags (massminify genconfig prints a template)."
	MsgHintScan   = "Nothing was processed. Check that the source directory exists and is readable."

	// Flag descriptions
	MsgFlagVerbose        = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig         = "Configuration file (default: massminify.toml in the working directory)"
	MsgFlagAnt            = "Read settings from the <massminify> task of an Ant build file"
	MsgFlagAntTarget      = "Ant target holding the task (default: first task found)"
	MsgFlagRecurse        = "Descend into subdirectories"
	MsgFlagJS             = "Process JavaScript files"
	MsgFlagCSS            = "Process CSS files"
	MsgFlagCombineJS      = "Join the scripts of each directory into this file"
	MsgFlagConsolidateJS  = "Join every script of the walk into this file at the root"
	MsgFlagCombineCSS     = "Join the stylesheets of each directory into this file"
	MsgFlagConsolidateCSS = "Join every stylesheet of the walk into this file at the root"
	MsgFlagOrder          = "Order rule PATTERN=POSITION, repeatable"
	MsgFlagSuffix         = "Suffix inserted before the extension of minified files"
	MsgFlagDryRun         = "Preview the run without writing any file"
	MsgFlagStrict         = "Exit with an error when any file fails"
	MsgFlagFormat         = "Output format: auto, term, text, json, yaml or toml"
	MsgFlagWrite          = "Write the template to a file instead of stdout"
	MsgFlagManDir         = "Directory to write man pages into"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/run-long.txt
	msgRunLongRaw string
	MsgRunLong    = strings.TrimSpace(msgRunLongRaw)

	//go:embed msgs/run-example.txt
	msgRunExampleRaw string
	MsgRunExample    = strings.TrimRight(msgRunExampleRaw, "\n")

	//go:embed msgs/order-long.txt
	msgOrderLongRaw string
	MsgOrderLong    = strings.TrimSpace(msgOrderLongRaw)

	//go:embed msgs/order-example.txt
	msgOrderExampleRaw string
	MsgOrderExample    = strings.TrimRight(msgOrderExampleRaw, "\n")

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
