// Package matrix_test contains unit tests for universal Matrix (linear algebra) operations.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/matrix"
)

var (
	sampleA = [][]float64{{1, 2}, {3, 4}}
	sampleB = [][]float64{{5, 6}, {7, 8}}
)

// TestHelpers_InterfaceHiding_Fallback ensures that using a wrapper which
// hides the concrete type forces the interface fallback path and produces
// the same results as with the bare Dense.
func TestHelpers_InterfaceHiding_Fallback(t *testing.T) {
	t.Parallel()

	base := RandFilledDense(t, 3, 4, 7)
	other := RandFilledDense(t, 3, 4, 8)
	square := RandFilledDense(t, 4, 2, 9)

	ops := []struct {
		name string
		fast func() (matrix.Matrix, error)
		slow func() (matrix.Matrix, error)
	}{
		{"Add", func() (matrix.Matrix, error) { return matrix.Add(base, other) },
			func() (matrix.Matrix, error) { return matrix.Add(hide{base}, hide{other}) }},
		{"Sub", func() (matrix.Matrix, error) { return matrix.Sub(base, other) },
			func() (matrix.Matrix, error) { return matrix.Sub(hide{base}, other) }},
		{"Mul", func() (matrix.Matrix, error) { return matrix.Mul(base, square) },
			func() (matrix.Matrix, error) { return matrix.Mul(hide{base}, hide{square}) }},
		{"Scale", func() (matrix.Matrix, error) { return matrix.Scale(base, -2.5) },
			func() (matrix.Matrix, error) { return matrix.Scale(hide{base}, -2.5) }},
		{"GaussJordan", func() (matrix.Matrix, error) { return matrix.GaussJordan(base) },
			func() (matrix.Matrix, error) { return matrix.GaussJordan(hide{base}) }},
	}
	for _, op := range ops {
		fast, err := op.fast()
		require.NoError(t, err, op.name)
		slow, err := op.slow()
		require.NoError(t, err, op.name)
		CompareClose(t, fast, slow, RtolTiny, AtolTiny)
	}
}

// ---------- Add ----------

func TestAdd_FastPath_6x6_Correctness(t *testing.T) {
	t.Parallel()

	const rows, cols = 6, 6
	var i, j int

	A := MustDense(t, rows, cols)
	B := MustDense(t, rows, cols)

	// A[i,j] = i+j; B[i,j] = 10 - (i+j)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			MustSet(t, A, i, j, float64(i+j))
			MustSet(t, B, i, j, float64(10-(i+j)))
		}
	}

	S, err := matrix.Add(A, B)
	require.NoError(t, err)

	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if got := MustAt(t, S, i, j); got != 10.0 {
				t.Fatalf("at [%d,%d]: got %v, want 10", i, j, got)
			}
		}
	}
}

func TestAdd_Fallback_4x5_Correctness(t *testing.T) {
	t.Parallel()

	const rows, cols = 4, 5
	var i, j int

	Araw := MustDense(t, rows, cols)
	Braw := MustDense(t, rows, cols)

	// A[i,j] = 2*i + j; B[i,j] = i - 3*j
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			MustSet(t, Araw, i, j, float64(2*i+j))
			MustSet(t, Braw, i, j, float64(i-3*j))
		}
	}

	S, err := matrix.Add(hide{Araw}, hide{Braw})
	require.NoError(t, err)

	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			require.Equal(t, MustAt(t, Araw, i, j)+MustAt(t, Braw, i, j), MustAt(t, S, i, j))
		}
	}
}

func TestAdd_KnownValues(t *testing.T) {
	S, err := matrix.Add(FromRows(t, sampleA), FromRows(t, sampleB))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{6, 8}, {10, 12}}, S)
}

func TestAdd_DimensionMismatch(t *testing.T) {
	t.Parallel()

	_, err := matrix.Add(MustDense(t, 3, 4), MustDense(t, 4, 3))
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Sum(MustDense(t, 2, 2), MustDense(t, 2, 3))
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Add(nil, MustDense(t, 2, 2))
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAdd_ZeroRowOperands(t *testing.T) {
	S, err := matrix.Add(zeroRows{cols: 2}, zeroRows{cols: 7})
	require.NoError(t, err)
	require.Equal(t, 0, S.Rows())
}

func TestAdd_Properties(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			A := RandFilledDense(t, 3, 5, seed)
			B := RandFilledDense(t, 3, 5, seed+100)

			// identity element
			Z := MustDense(t, 3, 5)
			got, err := matrix.Add(A, Z)
			require.NoError(t, err)
			CompareClose(t, A, got, 0, 0)

			// commutativity
			ab, err := matrix.Add(A, B)
			require.NoError(t, err)
			ba, err := matrix.Add(B, A)
			require.NoError(t, err)
			CompareClose(t, ab, ba, 0, 0)
		})
	}
}

// ---------- Sub ----------

func TestSub_KnownValues(t *testing.T) {
	D, err := matrix.Sub(FromRows(t, sampleB), FromRows(t, sampleA))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{4, 4}, {4, 4}}, D)

	D, err = matrix.Diff(hide{FromRows(t, sampleA)}, FromRows(t, sampleB))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-4, -4}, {-4, -4}}, D)
}

func TestSub_SelfIsZero(t *testing.T) {
	A := RandFilledDense(t, 4, 3, 42)
	D, err := matrix.Sub(A, A)
	require.NoError(t, err)
	CompareClose(t, MustDense(t, 4, 3), D, 0, 0)
}

func TestSub_DimensionMismatch(t *testing.T) {
	_, err := matrix.Sub(MustDense(t, 2, 3), MustDense(t, 3, 2))
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// ---------- Mul ----------

func TestMul_KnownValues(t *testing.T) {
	P, err := matrix.Mul(FromRows(t, sampleA), FromRows(t, sampleB))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{19, 22}, {43, 50}}, P)
}

func TestMul_Rectangular_Fallback(t *testing.T) {
	// (2×3) × (3×2)
	A := FromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	B := FromRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})
	want := [][]float64{{58, 64}, {139, 154}}

	P, err := matrix.Mul(A, B)
	require.NoError(t, err)
	CompareExact(t, want, P)
	require.Equal(t, 2, P.Rows())
	require.Equal(t, 2, P.Cols())

	P, err = matrix.Product(hide{A}, hide{B})
	require.NoError(t, err)
	CompareExact(t, want, P)
}

func TestMul_KeepsFractions(t *testing.T) {
	P, err := matrix.Mul(FromRows(t, [][]float64{{0.5, 0.25}}), FromRows(t, [][]float64{{3}, {2}}))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{2}}, P)
}

func TestMul_Identity(t *testing.T) {
	for _, n := range []int{1, 3, 6} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			A := RandFilledDense(t, n, n, int64(n))
			I := IdentityDense(t, n)

			AI, err := matrix.Mul(A, I)
			require.NoError(t, err)
			CompareClose(t, A, AI, 0, 0)

			IA, err := matrix.Mul(I, A)
			require.NoError(t, err)
			CompareClose(t, A, IA, 0, 0)
		})
	}
}

// A zero times an infinity is NaN on both paths; the fast path must not
// drop zero terms of the dot product.
func TestMul_NonFinite_FastMatchesFallback(t *testing.T) {
	A, err := matrix.NewDenseFromRows([][]float64{{0, 1}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	B, err := matrix.NewDenseFromRows([][]float64{{math.Inf(1)}, {2}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	fast, err := matrix.Mul(A, B)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{A}, hide{B})
	require.NoError(t, err)

	require.True(t, math.IsNaN(MustAt(t, fast, 0, 0)), "fast path")
	require.True(t, math.IsNaN(MustAt(t, slow, 0, 0)), "fallback path")
}

func TestMul_DimensionMismatch(t *testing.T) {
	_, err := matrix.Mul(MustDense(t, 2, 3), MustDense(t, 2, 2))
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMul_DoesNotMutateInputs(t *testing.T) {
	A := FromRows(t, sampleA)
	B := FromRows(t, sampleB)
	_, err := matrix.Mul(A, B)
	require.NoError(t, err)
	CompareExact(t, sampleA, A)
	CompareExact(t, sampleB, B)
}

// ---------- Scale ----------

func TestScale_KnownValues(t *testing.T) {
	S, err := matrix.Scale(FromRows(t, [][]float64{{1.5, -2}, {0, 4}}), 3)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{4.5, -6}, {0, 12}}, S)

	// fractions survive on the fallback path too
	S, err = matrix.ScaleBy(hide{FromRows(t, [][]float64{{1}})}, 0.1)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0.1}}, S)
}

func TestScale_SpecialAlphas(t *testing.T) {
	A := RandFilledDense(t, 3, 4, 5)

	one, err := matrix.Scale(A, 1)
	require.NoError(t, err)
	CompareClose(t, A, one, 0, 0)

	zero, err := matrix.Scale(A, 0)
	require.NoError(t, err)
	CompareClose(t, MustDense(t, 3, 4), zero, 0, 0)
}

func TestScale_Nil(t *testing.T) {
	_, err := matrix.Scale(nil, 2)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- Augment / SliceCols ----------

func TestAugment(t *testing.T) {
	A := FromRows(t, sampleA)
	aug, err := matrix.Augment(A, IdentityDense(t, 2))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2, 1, 0}, {3, 4, 0, 1}}, aug)

	aug, err = matrix.Augment(hide{A}, FromRows(t, [][]float64{{9}, {8}}))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2, 9}, {3, 4, 8}}, aug)

	_, err = matrix.Augment(A, MustDense(t, 3, 1))
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSliceCols(t *testing.T) {
	M := FromRows(t, [][]float64{{1, 2, 3, 4}, {5, 6, 7, 8}})

	s, err := matrix.SliceCols(M, 1, 3)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{2, 3}, {6, 7}}, s)

	s, err = matrix.SliceCols(hide{M}, 3, 4)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{4}, {8}}, s)

	_, err = matrix.SliceCols(M, 2, 5)
	AssertErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.SliceCols(M, 3, 1)
	AssertErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.SliceCols(M, 2, 2)
	AssertErrorIs(t, err, matrix.ErrBadShape)
}

// ---------- AllClose / Equal ----------

func TestAllClose(t *testing.T) {
	A := FromRows(t, [][]float64{{1, 2}})
	B := FromRows(t, [][]float64{{1 + 1e-13, 2}})

	ok, err := matrix.AllClose(A, B, 0, 1e-12)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.Equal(A, B)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = matrix.AllClose(hide{A}, hide{B}, 0, 1e-12)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = matrix.AllClose(A, MustDense(t, 2, 1), 0, 0)
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
}
