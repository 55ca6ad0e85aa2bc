package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/itsatony/go-tagstr"
)

// dedentConfig holds parsed dedent command configuration
type dedentConfig struct {
	inputPath  string
	outputPath string
	trimStart  bool
	trimEnd    bool
}

func runDedent(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseDedentFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	input, err := readInput(cfg.inputPath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadInputFailed, err)
		return ExitCodeInputError
	}

	var opts []tagstr.TrimOption
	if cfg.trimStart {
		opts = append(opts, tagstr.TrimEOLAtStart())
	}
	if cfg.trimEnd {
		opts = append(opts, tagstr.TrimEOLAtEnd())
	}
	result := tagstr.Dedent(string(input), opts...)

	if err := writeOutput(cfg.outputPath, []byte(result), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}
	return ExitCodeSuccess
}

func parseDedentFlags(args []string) (*dedentConfig, error) {
	fs := flag.NewFlagSet(CmdNameDedent, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &dedentConfig{}

	fs.StringVar(&cfg.inputPath, FlagInput, FlagDefaultInput, "")
	fs.StringVar(&cfg.inputPath, FlagInputShort, FlagDefaultInput, "")
	fs.StringVar(&cfg.outputPath, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, FlagDefaultOutput, "")
	fs.BoolVar(&cfg.trimStart, FlagTrimStart, false, "")
	fs.BoolVar(&cfg.trimEnd, FlagTrimEnd, false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return cfg, nil
}
