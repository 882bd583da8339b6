// Package ui is the user-facing output channel for a command's normal
// output (init's confirmation, status, log, global-log, find), written
// against an explicit io.Writer instead of the teacher's direct
// log.Println/fmt.Printf calls against process-global stdout, so CLI-level
// tests can capture output in a bytes.Buffer. The §7 messages do not go
// through here: they are returned as *gitliberr.CommandError and printed
// by cmd/gitlet's main.
package ui

import (
	"fmt"
	"io"
)

// Printer writes command output to w.
type Printer struct {
	w io.Writer
}

func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Line prints msg followed by a newline.
func (p *Printer) Line(msg string) {
	fmt.Fprintln(p.w, msg)
}

// Linef formats and prints a line.
func (p *Printer) Linef(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Blank prints an empty line, matching the blank-line separators the
// teacher's printStatus puts between status sections.
func (p *Printer) Blank() {
	fmt.Fprintln(p.w)
}
