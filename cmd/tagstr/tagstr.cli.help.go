package main

import (
	"fmt"
	"io"
)

// runHelp prints usage. When args names an unknown command, an error
// line precedes the help text.
func runHelp(args []string, stdout io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(stdout, FmtUnknownCommand, args[0])
	}
	fmt.Fprint(stdout, HelpText)
	return ExitCodeSuccess
}
