package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/itsatony/go-tagstr"
)

// cookConfig holds parsed cook command configuration
type cookConfig struct {
	inputPath  string
	outputPath string
}

func runCook(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseCookFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	input, err := readInput(cfg.inputPath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadInputFailed, err)
		return ExitCodeInputError
	}

	// Lit derives the cooked view from raw text.
	cooked := tagstr.Lit(string(input)).Cooked[0]

	if err := writeOutput(cfg.outputPath, []byte(cooked), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}
	return ExitCodeSuccess
}

func parseCookFlags(args []string) (*cookConfig, error) {
	fs := flag.NewFlagSet(CmdNameCook, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &cookConfig{}

	fs.StringVar(&cfg.inputPath, FlagInput, FlagDefaultInput, "")
	fs.StringVar(&cfg.inputPath, FlagInputShort, FlagDefaultInput, "")
	fs.StringVar(&cfg.outputPath, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, FlagDefaultOutput, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return cfg, nil
}
