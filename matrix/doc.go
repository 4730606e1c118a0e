// Package matrix is the numerical engine of matcalc: dense real-valued
// matrices and the operations a calculator needs on them.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix behind the Matrix interface, with
//     bounds-checked At/Set and a finite-only numeric policy.
//   - Elementwise kernels: Add, Sub, Scale (aliases Sum, Diff, ScaleBy).
//   - Mul, the dot-product composition A × B (alias Product).
//   - GaussJordan, reduction to reduced row-echelon form with partial
//     pivoting (alias RREF).
//   - Inverse, inversion by reducing the augmented matrix [A | I].
//   - Format, fixed-width rendering for terminals.
//
// Every operation is a pure function of its inputs: operands are never
// mutated and every result is a freshly allocated *Dense. Failures are the
// sentinels in errors.go (ErrDimensionMismatch, ErrNonSquare, ErrSingular, ...)
// wrapped with an operation tag; match them with errors.Is.
//
// Quick example:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
//	inv, err := matrix.Inverse(a) // [[-2 1] [1.5 -0.5]]
package matrix
