// SPDX-License-Identifier: MIT

package shell

import "github.com/katalvlaran/matcalc/matrix"

// operation is one entry of the operate menu.
type operation struct {
	key     string
	label   string
	prompt  string // operand selection prompt
	heading string // printed above the result
	arity   int    // number of workspace operands (1 or 2)
	scalar  bool   // also reads a number
	apply   func(ms []matrix.Matrix, k float64) (matrix.Matrix, error)
}

// operations lists the menu in display order.
var operations = []operation{
	{
		key: "x", label: "scalar multiply", arity: 1, scalar: true,
		prompt:  "Select the matrix to perform a scalar multiply on (e.g., '1'): ",
		heading: "Result of scalar multiplication:",
		apply: func(ms []matrix.Matrix, k float64) (matrix.Matrix, error) {
			return matrix.Scale(ms[0], k)
		},
	},
	{
		key: "i", label: "matrix inverse", arity: 1,
		prompt:  "Select the matrix for inverse (e.g., '1'): ",
		heading: "Result of Inverse:",
		apply: func(ms []matrix.Matrix, _ float64) (matrix.Matrix, error) {
			return matrix.Inverse(ms[0])
		},
	},
	{
		key: "a", label: "matrix addition", arity: 2,
		prompt:  "Select the matrices to perform addition on (e.g., '1 2'): ",
		heading: "Result of addition:",
		apply: func(ms []matrix.Matrix, _ float64) (matrix.Matrix, error) {
			return matrix.Add(ms[0], ms[1])
		},
	},
	{
		key: "s", label: "matrix subtraction", arity: 2,
		prompt:  "Select the matrices to perform a subtraction on (e.g., '1 2'): ",
		heading: "Result of subtraction:",
		apply: func(ms []matrix.Matrix, _ float64) (matrix.Matrix, error) {
			return matrix.Sub(ms[0], ms[1])
		},
	},
	{
		key: "m", label: "matrix multiplication", arity: 2,
		prompt:  "Select the matrices to perform a matrix multiply on (e.g., '1 2'): ",
		heading: "Result of multiplication:",
		apply: func(ms []matrix.Matrix, _ float64) (matrix.Matrix, error) {
			return matrix.Mul(ms[0], ms[1])
		},
	},
	{
		key: "g", label: "Gauss_Jordan elimination", arity: 1,
		prompt:  "Select the matrix for Gauss-Jordan elimination (e.g., '1'): ",
		heading: "Result of Gauss-Jordan Elimination:",
		apply: func(ms []matrix.Matrix, _ float64) (matrix.Matrix, error) {
			return matrix.GaussJordan(ms[0])
		},
	},
}

func lookupOperation(key string) (operation, bool) {
	for _, op := range operations {
		if op.key == key {
			return op, true
		}
	}

	return operation{}, false
}
