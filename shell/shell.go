// SPDX-License-Identifier: MIT
// Package shell is matcalc's interactive read-loop.
//
// The shell owns a workspace of matrices, reads commands and operands from a
// token stream, dispatches to package matrix and renders the results. Invalid
// input is reported and re-prompted; failing operations are reported and the
// loop continues. End of input ends the session cleanly.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/workspace"
)

// User-facing text.
const (
	msgWelcome      = "Welcome to our Matrix Calculator!\nStart by creating the matrices.\n\n"
	msgMainMenu     = "Press 'c' to enter matrices, 'd' to perform operations, 'w' to save the workspace, 'l' to load it, or 'e' to exit: "
	msgInvalidInput = "Invalid input. Please try again.\n"
	msgRowsPrompt   = "Enter the number of rows: "
	msgColsPrompt   = "Enter the number of columns: "
	msgBadRows      = "Invalid input for the number of rows. Please enter a valid positive integer.\n"
	msgBadCols      = "Invalid input for the number of columns. Please enter a valid positive integer.\n"
	msgEntering     = "Entering Matrix elements...\n"
	msgBadElement   = "Invalid input for matrix element. Please enter a valid number.\n"
	msgNoMatrices   = "Must create matrices first!\n"
	msgEntered      = "Entered Matrices:\n"
	msgOpMenuHeader = "What operation would you like to perform?\n"
	msgBadOperation = "Invalid operation!\n"
	msgScalarPrompt = "\nEnter a number to multiply by: "
	msgBadScalar    = "Invalid input for the scalar. Please enter a valid number.\n"
	msgErrorPrefix  = "An error occurred: "
	msgNoWorkspace  = "No workspace file configured.\n"
	msgBadSelection = "Invalid matrix selection. Please enter numbers between 1 and %d.\n"
	msgStored       = "Stored as matrix %d.\n\n"
	msgSaved        = "Workspace saved to %s (%d matrices).\n\n"
	msgLoaded       = "Workspace loaded from %s (%d matrices).\n\n"
)

// Shell is one interactive session.
type Shell struct {
	in   *tokenReader
	out  io.Writer
	ws   *workspace.Workspace
	opts options
}

// New creates a Shell reading from in and writing to out. A nil ws starts
// with an empty workspace.
func New(in io.Reader, out io.Writer, ws *workspace.Workspace, opts ...Option) *Shell {
	if ws == nil {
		ws = workspace.New()
	}

	return &Shell{
		in:   newTokenReader(in),
		out:  out,
		ws:   ws,
		opts: gatherOptions(opts...),
	}
}

// Workspace returns the session's workspace.
func (s *Shell) Workspace() *workspace.Workspace { return s.ws }

// Run drives the main menu until the user exits, input ends or ctx is
// cancelled. Cancellation is observed even while waiting for input and is
// returned as ctx.Err(); end of input returns nil. A Shell runs once.
func (s *Shell) Run(ctx context.Context) error {
	defer s.in.stop()

	s.print(msgWelcome)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.print(msgMainMenu)
		tok, err := s.in.next(ctx)
		if err != nil {
			return endOfInput(err)
		}
		s.print("\n")

		cmd := strings.ToLower(tok)
		s.opts.log.Debug("command %q", cmd)
		switch cmd {
		case "c":
			err = s.create(ctx)
		case "d":
			err = s.operate(ctx)
		case "w":
			s.save()
		case "l":
			s.load()
		case "e":
			return nil
		default:
			s.print(msgInvalidInput)
			err = s.in.discard(ctx)
		}
		if err != nil {
			return endOfInput(err)
		}
	}
}

// create reads a matrix from the user and appends it to the workspace.
func (s *Shell) create(ctx context.Context) error {
	rows, err := s.readPositiveInt(ctx, msgRowsPrompt, msgBadRows)
	if err != nil {
		return err
	}
	cols, err := s.readPositiveInt(ctx, msgColsPrompt, msgBadCols)
	if err != nil {
		return err
	}
	s.print("\n")

	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return err
	}
	s.print(msgEntering)
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = s.readFloat(ctx, fmt.Sprintf("row %d column %d: ", i+1, j+1), msgBadElement); err != nil {
				return err
			}
			if err = m.Set(i, j, v); err != nil {
				return err
			}
		}
	}

	pos, err := s.ws.Add(m)
	if err != nil {
		return err
	}
	s.opts.log.Debug("created matrix %d (%dx%d)", pos, rows, cols)
	s.printf(msgStored, pos)

	return nil
}

// operate lists the workspace, runs one operation and renders its result.
func (s *Shell) operate(ctx context.Context) error {
	n := s.ws.Len()
	if n == 0 {
		s.print(msgNoMatrices)
		return nil
	}

	s.print(msgEntered)
	var renderErr error
	s.ws.Each(func(pos int, m matrix.Matrix) bool {
		s.printf("Matrix %d:\n", pos)
		renderErr = s.render(m)
		return renderErr == nil
	})
	if renderErr != nil {
		return renderErr
	}
	s.print("\n")

	s.print(msgOpMenuHeader)
	for _, op := range operations {
		s.printf("%s - %s\n", op.key, op.label)
	}
	s.print("\n")

	key, err := s.in.next(ctx)
	if err != nil {
		return err
	}
	op, ok := lookupOperation(strings.ToLower(key))
	if !ok {
		s.print(msgBadOperation)
		return s.in.discard(ctx)
	}

	operands, err := s.readOperands(ctx, op.prompt, op.arity, n)
	if err != nil {
		return err
	}
	var k float64
	if op.scalar {
		if k, err = s.readFloat(ctx, msgScalarPrompt, msgBadScalar); err != nil {
			return err
		}
	}

	ms := make([]matrix.Matrix, len(operands))
	for i, pos := range operands {
		if ms[i], err = s.ws.Get(pos); err != nil {
			s.report(op.key, err)
			return nil
		}
	}

	s.opts.log.Debug("apply %s to %v", op.label, operands)
	result, err := op.apply(ms, k)
	if err != nil {
		s.report(op.key, err)
		return nil
	}

	s.printf("%s\n\n", op.heading)
	if err = s.render(result); err != nil {
		return err
	}
	if s.opts.keepResults {
		pos, err := s.ws.Add(result)
		if err != nil {
			s.report(op.key, err)
			return nil
		}
		s.printf(msgStored, pos)
	}

	return nil
}

func (s *Shell) save() {
	path := s.opts.workspaceFile
	if path == "" {
		s.print(msgNoWorkspace)
		return
	}
	if err := s.ws.Save(path); err != nil {
		s.report("save", err)
		return
	}
	s.opts.log.Info("workspace saved to %s", path)
	s.printf(msgSaved, path, s.ws.Len())
}

func (s *Shell) load() {
	path := s.opts.workspaceFile
	if path == "" {
		s.print(msgNoWorkspace)
		return
	}
	if err := s.ws.Load(path); err != nil {
		s.report("load", err)
		return
	}
	s.opts.log.Info("workspace loaded from %s", path)
	s.printf(msgLoaded, path, s.ws.Len())
}

// readPositiveInt prompts until a positive integer is entered.
func (s *Shell) readPositiveInt(ctx context.Context, prompt, invalid string) (int, error) {
	for {
		s.print(prompt)
		tok, err := s.in.next(ctx)
		if err != nil {
			return 0, err
		}
		if n, err := strconv.Atoi(tok); err == nil && n > 0 {
			return n, nil
		}
		s.print(invalid)
		if err = s.in.discard(ctx); err != nil {
			return 0, err
		}
	}
}

// readFloat prompts until a finite number is entered.
func (s *Shell) readFloat(ctx context.Context, prompt, invalid string) (float64, error) {
	for {
		s.print(prompt)
		tok, err := s.in.next(ctx)
		if err != nil {
			return 0, err
		}
		if v, err := strconv.ParseFloat(tok, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
			return v, nil
		}
		s.print(invalid)
		if err = s.in.discard(ctx); err != nil {
			return 0, err
		}
	}
}

// readOperands prompts until count positions in 1..n are entered.
func (s *Shell) readOperands(ctx context.Context, prompt string, count, n int) ([]int, error) {
	positions := make([]int, count)
	for {
		s.print(prompt)
		valid := true
		for i := 0; i < count; i++ {
			tok, err := s.in.next(ctx)
			if err != nil {
				return nil, err
			}
			pos, err := strconv.Atoi(tok)
			if err != nil || pos < 1 || pos > n {
				valid = false
				break
			}
			positions[i] = pos
		}
		if valid {
			s.print("\n")
			return positions, nil
		}
		s.printf(msgBadSelection, n)
		if err := s.in.discard(ctx); err != nil {
			return nil, err
		}
	}
}

func (s *Shell) render(m matrix.Matrix) error {
	return matrix.Format(s.out, m, matrix.WithWidth(s.opts.width), matrix.WithPrecision(s.opts.precision))
}

func (s *Shell) report(op string, err error) {
	s.opts.log.Warn("%s failed: %v", op, err)
	s.printf("%s%v\n\n", msgErrorPrefix, err)
}

func (s *Shell) print(text string) { _, _ = io.WriteString(s.out, text) }

func (s *Shell) printf(format string, args ...interface{}) { _, _ = fmt.Fprintf(s.out, format, args...) }

// endOfInput maps running out of input to a clean exit.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}

	return err
}
