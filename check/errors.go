// SPDX-License-Identifier: MIT

package check

import (
	"errors"
	"fmt"
)

// ErrComparisonMismatch is the sentinel matched by every *Mismatch.
var ErrComparisonMismatch = errors.New("check: comparison mismatch")

// Mismatch describes the first lane that failed a comparison.
type Mismatch struct {
	Path   string  // lane path, e.g. "packed.Mat33.m21"; empty for scalars
	X, Y   any     // the compared values, in argument order
	Diff   float64 // |X − Y| (weak comparisons only)
	Eps    float64 // tolerance in effect (weak comparisons only)
	Strict bool    // true for exact comparisons
}

// Error renders the diagnostic line.
//   - strict: "<x> does not equal <y>"
//   - weak:   "<x %f> does not equal <y %f> <|x−y| %.20e>"
//
// A non-empty Path is prepended as "<path>: ".
func (m *Mismatch) Error() string {
	var msg string
	if m.Strict {
		msg = fmt.Sprintf("%v does not equal %v", m.X, m.Y)
	} else {
		msg = fmt.Sprintf("%f does not equal %f %.20e", m.X, m.Y, m.Diff)
	}
	if m.Path == "" {
		return msg
	}

	return m.Path + ": " + msg
}

// Unwrap lets errors.Is match ErrComparisonMismatch.
func (m *Mismatch) Unwrap() error { return ErrComparisonMismatch }
