// SPDX-License-Identifier: MIT

package matrix

// Index returns the row-major offset of (row, col) in a buffer whose rows are
// stride elements long. It performs no bounds checking; callers validate shape
// once up front and then index in their inner loops.
//
// Complexity: O(1).
func Index(row, col, stride int) int {
	return row*stride + col
}
