// Package matcalc is an interactive calculator for dense real-valued matrices.
//
// What is in the box?
//
//	• Numerical engine: scalar multiply, add, subtract, multiply,
//	  Gauss-Jordan reduction and inversion over a row-major Dense matrix
//	• Workspace: an ordered, 1-based collection of matrices with YAML snapshots
//	• Shell: the menu-driven read-loop that ties the two together
//
// Layout:
//
//	matrix/      - Matrix interface, Dense, kernels, validators, Format
//	workspace/   - thread-safe matrix collection and persistence
//	shell/       - interactive session over any io.Reader / io.Writer
//	config/      - environment and .env settings
//	logger/      - leveled diagnostics over the standard log package
//	cmd/matcalc/ - the binary
//	examples/    - runnable programs using the matrix package directly
//
// Quick start:
//
//	go run ./cmd/matcalc
package matcalc
