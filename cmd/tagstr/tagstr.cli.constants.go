package main

// Command names
const (
	CmdNameDedent  = "dedent"
	CmdNameCook    = "cook"
	CmdNameVersion = "version"
	CmdNameHelp    = "help"
)

// Flag names - long form
const (
	FlagInput     = "input"
	FlagOutput    = "output"
	FlagTrimStart = "trim-start"
	FlagTrimEnd   = "trim-end"
)

// Flag names - short form
const (
	FlagInputShort  = "i"
	FlagOutputShort = "o"
)

// Flag default values
const (
	FlagDefaultInput  = "-" // stdin
	FlagDefaultOutput = "-" // stdout
)

// Input source markers
const (
	InputSourceStdin = "-"
)

// Exit codes
const (
	ExitCodeSuccess    = 0
	ExitCodeError      = 1
	ExitCodeUsageError = 2
	ExitCodeInputError = 3
)

// Error messages
const (
	ErrMsgReadInputFailed   = "failed to read input"
	ErrMsgWriteOutputFailed = "failed to write output"
	ErrMsgInvalidFlags      = "invalid flags"
)

// Format strings
const (
	FmtErrorWithCause = "error: %s: %v\n"
	FmtUnknownCommand = "unknown command: %s\n\n"
)

// Version information
const (
	Version = "1.0.0"
)

// File permissions for output files
const FilePermissions = 0o644

// HelpText is the full usage text.
const HelpText = `tagstr - template text tooling

Usage:
  tagstr <command> [flags]

Commands:
  dedent    Strip the common leading indentation from template text
  cook      Apply backtick-literal escape processing to raw text
  version   Print version information
  help      Show this help

Dedent flags:
  -i, --input   Input file (default: stdin)
  -o, --output  Output file (default: stdout)
  --trim-start  Remove one leading line break after dedenting
  --trim-end    Remove one trailing line break after dedenting

Cook flags:
  -i, --input   Input file (default: stdin)
  -o, --output  Output file (default: stdout)

Examples:
  tagstr dedent --trim-start --trim-end < template.txt
  tagstr cook -i raw.txt -o cooked.txt
`
