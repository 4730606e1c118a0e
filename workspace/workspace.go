// SPDX-License-Identifier: MIT
// Package workspace holds the calculator's ordered collection of matrices.
//
// Matrices are addressed by 1-based position, in insertion order. The
// collection only grows (Add) or is replaced wholesale (Clear, Restore);
// positions of existing entries never shift.
//
// Concurrency:
//   - Workspace guards its slice with a sync.RWMutex; readers (Get, Len, Each,
//     Snapshot) share the lock, writers (Add, Clear, Restore) take it exclusively.
//   - Stored matrices are private clones; callers never alias workspace state.
package workspace

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/matcalc/matrix"
)

// Sentinel errors.
var (
	// ErrNoSuchMatrix is returned when a position is outside 1..Len().
	ErrNoSuchMatrix = errors.New("workspace: no such matrix")

	// ErrEmptySnapshot is returned when restoring a snapshot that holds no matrices.
	ErrEmptySnapshot = errors.New("workspace: snapshot holds no matrices")
)

// Workspace is an ordered, growable collection of matrices.
type Workspace struct {
	mu       sync.RWMutex
	matrices []matrix.Matrix
}

// New returns an empty Workspace.
func New() *Workspace {
	return &Workspace{}
}

// Add stores a clone of m and returns its 1-based position.
func (w *Workspace) Add(m matrix.Matrix) (int, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return 0, fmt.Errorf("Add: %w", err)
	}
	c := m.Clone()

	w.mu.Lock()
	defer w.mu.Unlock()
	w.matrices = append(w.matrices, c)

	return len(w.matrices), nil
}

// Get returns a clone of the matrix at 1-based position pos.
func (w *Workspace) Get(pos int) (matrix.Matrix, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if pos < 1 || pos > len(w.matrices) {
		return nil, fmt.Errorf("Get(%d): %w", pos, ErrNoSuchMatrix)
	}

	return w.matrices[pos-1].Clone(), nil
}

// Len reports how many matrices are stored.
func (w *Workspace) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return len(w.matrices)
}

// Each calls fn for every matrix in order with its 1-based position.
// Iteration stops early when fn returns false. fn receives the stored value
// and must not modify it; it must not call back into w's writers.
func (w *Workspace) Each(fn func(pos int, m matrix.Matrix) bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for i, m := range w.matrices {
		if !fn(i+1, m) {
			return
		}
	}
}

// Clear drops every stored matrix.
func (w *Workspace) Clear() {
	w.mu.Lock()
	w.matrices = nil
	w.mu.Unlock()
}
