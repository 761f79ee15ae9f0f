// SPDX-License-Identifier: MIT

package convert

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates that a requested block does not fit inside the
	// reference matrix at the given offset.
	ErrOutOfRange = errors.New("convert: index out of range")

	// ErrNilMatrix indicates that a nil reference matrix was passed.
	ErrNilMatrix = errors.New("convert: nil matrix")
)

// blockErrorf wraps err with the helper name and block offset.
func blockErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", method, row, col, err)
}
