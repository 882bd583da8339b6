// Command gitlet is the CLI shell around the core: one cobra.Command per
// subcommand in §6's operand table, operand counts checked by the custom
// exactArgs validator (which always fails with "Incorrect operands."),
// checkout's three forms checked inside its RunE, and the preserved "exit 0
// on command error" legacy behavior at the boundary.
package main

import (
	"fmt"
	"os"

	"github.com/gitlet-go/gitlet/internal/diag"
	"github.com/gitlet-go/gitlet/internal/gitliberr"
)

func main() {
	root := newRootCommand()
	err := root.Execute()
	if err == nil {
		return
	}

	if ce, ok := err.(*gitliberr.CommandError); ok {
		fmt.Println(ce.Error())
		os.Exit(0)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func init() {
	if os.Getenv("GITLET_DEBUG") != "" {
		diag.Enable(os.Stderr)
	}
}
