// SPDX-License-Identifier: MIT
// Package check_test contains test helpers
//
// Purpose:
//   - Provide a recording require.TestingT so failure paths can be asserted
//     without failing the enclosing test.

package check_test

import (
	"fmt"
	"strings"
)

// recordingT captures Errorf output and FailNow calls.
// FailNow does not stop the goroutine, which lets tests observe that the
// assertion itself stopped after the first mismatch.
type recordingT struct {
	messages []string
	failNows int
}

func (r *recordingT) Errorf(format string, args ...interface{}) {
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}

func (r *recordingT) FailNow() { r.failNows++ }

// failed reports whether any failure was recorded.
func (r *recordingT) failed() bool { return r.failNows > 0 }

// output joins all recorded messages.
func (r *recordingT) output() string { return strings.Join(r.messages, "\n") }
