package logstyle

import (
	"embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Style, space and pace a text-adventure game log"
	MsgRenderShort     = "Render markup to the terminal or another sink"
	MsgStripShort      = "Remove markup and print the plain text"
	MsgKeywordsShort   = "Wrap known keywords in color markup"
	MsgAnimateShort    = "Animate the brightness mask and undulating templates"
	MsgTemplatesShort  = "List color templates"
	MsgPaletteShort    = "List color codes"
	MsgSpacingShort    = "Show blank lines for a sequence of block types"
	MsgConfigShort     = "Show or create configuration"
	MsgConfigDumpShort = "Print the effective configuration"
	MsgConfigInitShort = "Write a commented configuration file"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig       = "Configuration file (default: $XDG_CONFIG_HOME/logstyle/config.toml)"
	MsgFlagSet          = "Override a configuration key, e.g. --set mask.intensity=8 (repeatable)"
	MsgFlagFormat       = "Output format: auto, term, canvas, text, json, xml"
	MsgFlagBlock        = "Block type of the rendered lines"
	MsgFlagKeywords     = "Color keywords before rendering"
	MsgFlagGroups       = "Only use these keyword groups (comma separated)"
	MsgFlagNames        = "Character names to highlight, as name=pattern (repeatable)"
	MsgFlagSignificance = "Adjust colors to a significance level (trivial..critical)"
	MsgFlagMask         = "Apply the brightness mask"
	MsgFlagPace         = "Pause after each block as configured under [pacing]"
	MsgFlagDepth        = "Tint default text for room/total, warm near the entrance and cool deep in"
	MsgFlagLength       = "Print the display length instead of the text"
	MsgFlagFrames       = "Number of frames to draw"
	MsgFlagInterval     = "Delay between frames (default: mask.interval_ms)"
	MsgFlagTemplate     = "Undulating template to animate"
	MsgFlagDumpFormat   = "Dump format: toml or yaml"
	MsgFlagForce        = "Overwrite an existing file"
	MsgFlagSample       = "Sample text shown with each template"

	// Output
	MsgVersionFormat    = "logstyle version %s\n  commit: %s\n  built:  %s\n"
	MsgConfigWritten    = "Wrote configuration to %s"
	MsgConfigExists     = "configuration file %s already exists (use --force to overwrite)"
	MsgNoInput          = "no input: pass text as arguments or on stdin"
	MsgInvalidSet       = "invalid --set %q: expected key=value"
	MsgInvalidName      = "invalid --name %q: expected name=pattern"
	MsgInvalidDepth     = "invalid --depth %q: expected room/total, e.g. 3/10"
	MsgUnknownBlockType = "unknown block type %q"
)

//go:embed msgs/*.txt
var msgFiles embed.FS

// Long messages from embedded files
var (
	MsgRootLong      = mustMsg("root-long.txt")
	MsgRenderLong    = mustMsg("render-long.txt")
	MsgRenderExample = mustMsg("render-example.txt")
	MsgKeywordsLong  = mustMsg("keywords-long.txt")
	MsgSpacingLong   = mustMsg("spacing-long.txt")
	MsgAnimateLong   = mustMsg("animate-long.txt")
	MsgConfigLong    = mustMsg("config-long.txt")
	MsgUsageTemplate = mustMsg("usage-template.txt")
)

func mustMsg(name string) string {
	data, err := msgFiles.ReadFile("msgs/" + name)
	if err != nil {
		panic("missing message file " + name)
	}
	return strings.TrimSpace(string(data))
}
