// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for dense construction and
// display. This file defines:
//   - Option / Options (numeric policy applied to constructed *Dense values),
//   - FormatOption / formatOptions (field width and precision used by Format),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions / gatherFormatOptions helpers that resolve setters.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// Display policy (Format).
const (
	// DefaultWidth is the minimum field width of a rendered element.
	DefaultWidth = 5

	// DefaultPrecision is the number of significant digits of a rendered element.
	DefaultPrecision = 5
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWidthInvalid     = "matrix: WithWidth: width must be positive"
	panicPrecisionInvalid = "matrix: WithPrecision: precision must be >= 1"
)

// ---------- Numeric policy options ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf enables the finite-only guard on Set and ingestion.
// Complexity: O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables the finite-only guard.
// Use only for controlled ingestion where NaN/Inf are meaningful.
// Complexity: O(1).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies user-provided setters on top of defaults.
// Last writer wins. Complexity: O(k) for k setters.
func gatherOptions(user ...Option) Options {
	o := Options{validateNaNInf: DefaultValidateNaNInf}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// ---------- Display options ----------

// FormatOption mutates display options used by Format.
type FormatOption func(*formatOptions)

type formatOptions struct {
	width     int // DefaultWidth
	precision int // DefaultPrecision
}

// WithWidth sets the minimum field width of each rendered element.
// Panics when width <= 0 (programmer error).
func WithWidth(width int) FormatOption {
	if width <= 0 {
		panic(panicWidthInvalid)
	}

	return func(o *formatOptions) { o.width = width }
}

// WithPrecision sets the number of significant digits of each rendered element.
// Panics when precision < 1 (programmer error).
func WithPrecision(precision int) FormatOption {
	if precision < 1 {
		panic(panicPrecisionInvalid)
	}

	return func(o *formatOptions) { o.precision = precision }
}

func gatherFormatOptions(user ...FormatOption) formatOptions {
	o := formatOptions{width: DefaultWidth, precision: DefaultPrecision}
	for _, set := range user {
		set(&o)
	}

	return o
}
