// SPDX-License-Identifier: MIT

package packed

import (
	"errors"
	"fmt"
)

// ErrSlotRange is the panic payload for flat slot reads outside the layout
// (Mat33.At with k∉[0,12), SymMat33.At with k∉[0,6), Real3.At with i∉[0,3)).
// Value types index like arrays, so a bad slot is a programmer error.
var ErrSlotRange = errors.New("packed: slot index out of range")

// slotError tags ErrSlotRange with the accessor and the offending slot.
func slotError(method string, k int) error {
	return fmt.Errorf("%s(%d): %w", method, k, ErrSlotRange)
}
