// SPDX-License-Identifier: MIT

package check

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// ExitStatus is the process status used by ExitReporter.FailNow.
const ExitStatus = 1

// ExitReporter is a require.TestingT that prints diagnostics and then
// terminates the process. It reproduces the hard-stop behavior of standalone
// test binaries: the first mismatch ends the run with ExitStatus.
type ExitReporter struct {
	out   io.Writer
	exit  func(int)
	paint *color.Color
}

// Abort writes to stdout and calls os.Exit(ExitStatus) on the first failure.
var Abort = NewExitReporter(os.Stdout, os.Exit)

// NewExitReporter returns a reporter writing to w and terminating through
// exit. Diagnostics are painted red only when w is the process stdout or
// stderr (and the color library detects a terminal).
func NewExitReporter(w io.Writer, exit func(int)) *ExitReporter {
	paint := color.New(color.FgRed, color.Bold)
	if w != os.Stdout && w != os.Stderr {
		paint.DisableColor()
	}

	return &ExitReporter{out: w, exit: exit, paint: paint}
}

// Errorf writes one diagnostic line.
func (r *ExitReporter) Errorf(format string, args ...interface{}) {
	_, _ = r.paint.Fprintf(r.out, format, args...)
	_, _ = fmt.Fprintln(r.out)
}

// FailNow terminates through the configured exit function.
func (r *ExitReporter) FailNow() {
	r.exit(ExitStatus)
}
