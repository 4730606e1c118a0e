// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private options and the reduction kernel.
//
// Purpose:
//   - Expose resolved option snapshots and the in-place reducer to matrix_test ONLY.
//   - The file name ends in _test.go, so nothing here reaches production builds.

// OptionsSnapshot is a read-only view of resolved construction options.
type OptionsSnapshot struct {
	ValidateNaNInf bool
}

// FormatSnapshot is a read-only view of resolved display options.
type FormatSnapshot struct {
	Width     int
	Precision int
}

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicWidthInvalid_TestOnly     = panicWidthInvalid
	PanicPrecisionInvalid_TestOnly = panicPrecisionInvalid
)

// GatherOptionsSnapshot_TestOnly resolves opts on top of the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{ValidateNaNInf: o.validateNaNInf}
}

// GatherFormatSnapshot_TestOnly resolves display opts on top of the defaults.
func GatherFormatSnapshot_TestOnly(opts ...FormatOption) FormatSnapshot {
	o := gatherFormatOptions(opts...)

	return FormatSnapshot{Width: o.width, Precision: o.precision}
}

// ReduceInPlace_TestOnly runs the Gauss-Jordan kernel directly on d.
func ReduceInPlace_TestOnly(d *Dense) { reduceInPlace(d) }
