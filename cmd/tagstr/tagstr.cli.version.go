package main

import (
	"fmt"
	"io"
	"runtime"
)

func runVersion(args []string, stdout, stderr io.Writer) int {
	if len(args) != 0 {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, args)
		return ExitCodeUsageError
	}
	fmt.Fprintf(stdout, "tagstr %s (%s)\n", Version, runtime.Version())
	return ExitCodeSuccess
}
