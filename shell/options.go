// SPDX-License-Identifier: MIT

package shell

import (
	"github.com/katalvlaran/matcalc/logger"
	"github.com/katalvlaran/matcalc/matrix"
)

// Option configures a Shell.
type Option func(*options)

type options struct {
	width         int
	precision     int
	keepResults   bool
	workspaceFile string
	log           *logger.Logger
}

func gatherOptions(user ...Option) options {
	o := options{
		width:     matrix.DefaultWidth,
		precision: matrix.DefaultPrecision,
		log:       logger.Discard(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// WithWidth sets the field width used to render matrices.
// Panics when width <= 0.
func WithWidth(width int) Option {
	matrix.WithWidth(width) // validates
	return func(o *options) { o.width = width }
}

// WithPrecision sets the significant digits used to render matrices.
// Panics when precision < 1.
func WithPrecision(precision int) Option {
	matrix.WithPrecision(precision) // validates
	return func(o *options) { o.precision = precision }
}

// WithKeepResults appends every operation result to the workspace.
func WithKeepResults(keep bool) Option {
	return func(o *options) { o.keepResults = keep }
}

// WithWorkspaceFile sets the YAML file used by the save and load commands.
// An empty path disables both.
func WithWorkspaceFile(path string) Option {
	return func(o *options) { o.workspaceFile = path }
}

// WithLogger routes diagnostics to l. A nil l keeps the silent default.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}
