// SPDX-License-Identifier: MIT

package check

import (
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rigidcheck/packed"
)

// PrintMat33 writes a to stdout (see FprintMat33).
func PrintMat33(a packed.Mat33) {
	_ = FprintMat33(os.Stdout, a)
}

// FprintMat33 writes a as three rows of three %f values, reading row i from
// the padded column-major slots i, 4+i, 8+i:
//
//	[a0 a4 a8]
//	[a1 a5 a9]
//	[a2 a6 a10]
//
// The padding lanes (3, 7, 11) are not printed.
func FprintMat33(w io.Writer, a packed.Mat33) error {
	for row := 0; row < 3; row++ {
		_, err := fmt.Fprintf(w, "[%f %f %f]\n",
			a.At(packed.FlatIndex(row, 0)),
			a.At(packed.FlatIndex(row, 1)),
			a.At(packed.FlatIndex(row, 2)),
		)
		if err != nil {
			return err
		}
	}

	return nil
}

// PrintColumn writes column 0 of x to stdout, one value per line.
func PrintColumn(x mat.Matrix) {
	_ = FprintColumn(os.Stdout, x)
}

// FprintColumn writes column 0 of x, one %g value per line. A matrix with no
// columns prints nothing.
func FprintColumn(w io.Writer, x mat.Matrix) error {
	r, c := x.Dims()
	if c == 0 {
		return nil
	}
	for i := 0; i < r; i++ {
		if _, err := fmt.Fprintf(w, "%g\n", x.At(i, 0)); err != nil {
			return err
		}
	}

	return nil
}
