// SPDX-License-Identifier: MIT

package check

import (
	"fmt"

	"github.com/katalvlaran/rigidcheck/packed"
)

// CompareWeakSymMat33 compares the six independent entries of sym against
// the matching lower-triangle slots of dense.
// MAIN DESCRIPTION:
//   - Slot k of sym is compared with dense.At(packed.SymPosition(k).Flat()),
//     i.e. dense flat offsets 0, 1, 2, 5, 6, 10.
//
// Behavior highlights:
//   - The strictly-upper triangle (offsets 4, 8, 9) and the padding lanes of
//     dense are never read, so an unsymmetrized dense result still passes.
//   - First failing slot wins.
//
// Complexity:
//   - Time O(1), Space O(1).
func CompareWeakSymMat33(sym packed.SymMat33, dense packed.Mat33, opts ...Option) error {
	cmp := weakLane(gatherOptions(opts...).eps)
	names := sym.Components()
	for k := 0; k < packed.SymMat33Slots; k++ {
		flat := packed.SymPosition(k).Flat()
		if m := cmp(sym.At(k), dense.At(flat)); m != nil {
			m.Path = fmt.Sprintf("packed.SymMat33.%s/packed.Mat33[%d]", names[k].Name, flat)
			return m
		}
	}

	return nil
}
