// SPDX-License-Identifier: MIT

// Package packed holds the SIMD-friendly value types of the rigid-body math
// layer: 3-vectors, 4-vectors, scalar-first quaternions, column-major 3x3
// matrices and symmetric 3x3 matrices.
//
// The packed layout mirrors what the vectorized kernels operate on:
//
//   - Real3 fills a 4-lane register; the fourth lane is padding.
//   - Mat33 is three Real3 columns, so its flat view has 12 slots and
//     column i occupies slots [4i, 4i+3] with slot 4i+3 always zero.
//   - SymMat33 stores only the 6 independent lower-triangle entries.
//
// The flat views (Mat33.At, SymMat33.At) and the layout table (FlatIndex,
// SymPosition) are the single source of truth for slot numbering; the
// check and convert packages never hard-code offsets.
//
// Only a minimal kernel set lives here (add/sub/scale, dot/cross, Hamilton
// product, mat-vec, mat-mat, transpose, normal equations). It exists so unit
// tests can compare packed results against a dense reference library.
package packed
