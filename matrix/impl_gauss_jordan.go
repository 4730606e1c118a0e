// SPDX-License-Identifier: MIT
// Package matrix - Gauss-Jordan row reduction and augmented-identity inversion.
//
// Purpose:
//   - GaussJordan: reduce any rectangular matrix to reduced row-echelon form
//     (RREF) with partial pivoting, on a private working copy.
//   - Inverse: build [A | I], reduce it, reject singular inputs, return the right half.
//
// Determinism & Policy:
//   - Fixed col→row loop orders; pivot ties resolve to the first (topmost) row.
//   - The degenerate-column test and the singularity test compare against an
//     exact zero (ZeroPivot), not a tolerance.
//   - Inputs are never mutated.

package matrix

import "math"

// GaussJordan returns the reduced row-echelon form of m.
//
// Implementation (row := 0; for col := 0..C-1 while row < R):
//   - Stage 1 (pivot): maxRow = argmax |a[i][col]| over i in [row, R); first max wins.
//   - Stage 2 (degenerate): if a[maxRow][col] == 0 exactly, skip the column (row unchanged).
//   - Stage 3 (swap): exchange rows row and maxRow.
//   - Stage 4 (eliminate): for every i != row, a[i][col:] -= a[row][col:] * (a[i][col]/pivot).
//   - Stage 5 (normalize): a[row][col:] /= pivot, then row++.
//
// Behavior highlights:
//   - Every pivoted column holds a single 1 in its pivot row and 0 elsewhere
//     (up to rounding); degenerate columns are left unreduced.
//   - Reducing a matrix that is already in RREF returns it unchanged.
//   - Step 4 runs for every other row, so a non-finite value in the pivot
//     row reaches rows that were already clear (0*Inf is NaN).
//
// Inputs:
//   - m: any non-nil rectangular matrix.
//
// Returns:
//   - Matrix: a new *Dense of the same shape.
//
// Errors:
//   - ErrNilMatrix only; every rectangular input is reducible.
//
// Complexity:
//   - Time O(R*C*min(R,C)), Space O(R*C) for the working copy.
func GaussJordan(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opGaussJordan, err)
	}
	a, err := toDense(m) // private working buffer; no aliasing with the caller
	if err != nil {
		return nil, matrixErrorf(opGaussJordan, err)
	}
	reduceInPlace(a)

	return a, nil
}

// reduceInPlace runs the Gauss-Jordan procedure on a's flat buffer.
// Callers must own a exclusively.
func reduceInPlace(a *Dense) {
	rows, cols := a.r, a.c
	data := a.data

	var (
		row, col, i, j, maxRow int
		pivot, divider         float64
		pivotBase, base        int
	)
	for col, row = 0, 0; col < cols && row < rows; col++ {
		// Stage 1: partial pivoting on |a[i][col]|.
		maxRow = row
		for i = row + 1; i < rows; i++ {
			if math.Abs(data[i*cols+col]) > math.Abs(data[maxRow*cols+col]) {
				maxRow = i
			}
		}

		// Stage 2: exact-zero pivot means nothing to eliminate in this column.
		if data[maxRow*cols+col] == ZeroPivot {
			continue
		}

		// Stage 3: bring the pivot row up.
		a.swapRows(row, maxRow)

		// Stage 4: clear column col in every other row.
		pivotBase = row * cols
		pivot = data[pivotBase+col]
		for i = 0; i < rows; i++ {
			if i == row {
				continue
			}
			base = i * cols
			divider = data[base+col] / pivot
			for j = col; j < cols; j++ {
				data[base+j] -= data[pivotBase+j] * divider
			}
		}

		// Stage 5: scale the pivot row so the pivot becomes 1.
		for j = col; j < cols; j++ {
			data[pivotBase+j] /= pivot
		}
		row++
	}
}

// Inverse computes A^{-1} by reducing the augmented matrix [A | I_n].
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m).
//   - Stage 2: Augment(m, I_n) and reduce it with the Gauss-Jordan kernel.
//   - Stage 3: if any row is all exact zeros across the first n columns → ErrSingular.
//   - Stage 4: SliceCols(n, 2n) is the inverse.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - The singularity test only looks for an all-zero left-half row; it does not
//     confirm the left half equals I_n.
func Inverse(m Matrix) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := m.Rows()
	id, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	aug, err := Augment(m, id)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	reduceInPlace(aug) // aug is freshly allocated and owned here

	for i := 0; i < n; i++ {
		if isZeroPrefix(aug.data[i*aug.c:i*aug.c+n]) {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
	}

	inv, err := SliceCols(aug, n, 2*n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}

// isZeroPrefix reports whether every value in row equals ZeroPivot exactly.
func isZeroPrefix(row []float64) bool {
	for _, v := range row {
		if v != ZeroPivot {
			return false
		}
	}

	return true
}
