package consolecss

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort         = "Style console output with HTML-like markup"
	MsgRenderShort       = "Render markup into console arguments"
	MsgLogShort          = "Render markup and print it as a console call"
	MsgDeclarationsShort = "List the declarations loaded from stylesheets"
	MsgConfigShort       = "Inspect and create the configuration file"
	MsgConfigShowShort   = "Print the effective configuration"
	MsgConfigInitShort   = "Write the default configuration file"
	MsgVersionShort      = "Print version information"
	MsgCompletionShort   = "Generate shell completion script"
	MsgManShort          = "Print the man page"

	MsgConfigWritten = "Wrote default configuration to %s\n"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig     = "Read this config file after the user and local ones"
	MsgFlagNoColor    = "Disable styled terminal output"
	MsgFlagCSS        = "Add inline declarations like '.warn { color: orange; }' (repeatable)"
	MsgFlagStylesheet = "Load declarations from a stylesheet file (repeatable)"
	MsgFlagFormat     = "Output format: json, yaml, ansi or plain (default from config)"
	MsgFlagMethod     = "Console method to call"
	MsgFlagForce      = "Overwrite an existing configuration file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimRight(msgRenderExampleRaw, "\n")

	//go:embed msgs/log-long.txt
	msgLogLongRaw string
	MsgLogLong    = strings.TrimSpace(msgLogLongRaw)

	//go:embed msgs/log-example.txt
	msgLogExampleRaw string
	MsgLogExample    = strings.TrimRight(msgLogExampleRaw, "\n")

	//go:embed msgs/declarations-long.txt
	msgDeclarationsLongRaw string
	MsgDeclarationsLong    = strings.TrimSpace(msgDeclarationsLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
