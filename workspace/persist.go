// SPDX-License-Identifier: MIT

package workspace

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/matcalc/matrix"
)

// SnapshotVersion is the current on-disk format version.
const SnapshotVersion = 1

// Snapshot is the serializable form of a Workspace.
type Snapshot struct {
	Version  int     `yaml:"version"`
	Matrices []Entry `yaml:"matrices"`
}

// Entry is one stored matrix as nested rows.
type Entry struct {
	Rows [][]float64 `yaml:"rows,flow"`
}

// Snapshot captures the current contents in order.
func (w *Workspace) Snapshot() (Snapshot, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	s := Snapshot{Version: SnapshotVersion, Matrices: make([]Entry, 0, len(w.matrices))}
	for i, m := range w.matrices {
		rows, err := rowsOf(m)
		if err != nil {
			return Snapshot{}, fmt.Errorf("Snapshot: matrix %d: %w", i+1, err)
		}
		s.Matrices = append(s.Matrices, Entry{Rows: rows})
	}

	return s, nil
}

// Restore replaces the contents with s. Every entry is validated first; on
// any failure the workspace is left untouched.
func (w *Workspace) Restore(s Snapshot) error {
	loaded, err := s.build()
	if err != nil {
		return fmt.Errorf("Restore: %w", err)
	}

	w.mu.Lock()
	w.matrices = loaded
	w.mu.Unlock()

	return nil
}

// Validate reports whether Restore would accept s.
func (s Snapshot) Validate() error {
	_, err := s.build()
	return err
}

// build turns every entry into a finite-only *Dense.
func (s Snapshot) build() ([]matrix.Matrix, error) {
	if len(s.Matrices) == 0 {
		return nil, ErrEmptySnapshot
	}
	if s.Version != SnapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", s.Version)
	}

	loaded := make([]matrix.Matrix, 0, len(s.Matrices))
	for i, e := range s.Matrices {
		d, err := matrix.NewDenseFromRows(e.Rows)
		if err != nil {
			return nil, fmt.Errorf("matrix %d: %w", i+1, err)
		}
		loaded = append(loaded, d)
	}

	return loaded, nil
}

// savable captures a snapshot and refuses anything Restore would reject,
// so every file written can be loaded back.
func (w *Workspace) savable() (Snapshot, error) {
	s, err := w.Snapshot()
	if err != nil {
		return Snapshot{}, err
	}
	if err = s.Validate(); err != nil {
		return Snapshot{}, fmt.Errorf("Save: %w", err)
	}

	return s, nil
}

// SaveTo writes the workspace as YAML to out.
func (w *Workspace) SaveTo(out io.Writer) error {
	s, err := w.savable()
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err = enc.Encode(s); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}

	return enc.Close()
}

// LoadFrom replaces the workspace with the YAML snapshot read from in.
func (w *Workspace) LoadFrom(in io.Reader) error {
	var s Snapshot
	if err := yaml.NewDecoder(in).Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptySnapshot
		}
		return fmt.Errorf("yaml decode: %w", err)
	}

	return w.Restore(s)
}

// Save writes the workspace to the file at path, replacing it.
// Nothing is written when the workspace is empty or holds non-finite values.
func (w *Workspace) Save(path string) error {
	s, err := w.savable()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// Load replaces the workspace with the snapshot stored at path.
// A missing file reports an error wrapping os.ErrNotExist.
func (w *Workspace) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	defer f.Close()

	if err = w.LoadFrom(f); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	return nil
}

// rowsOf copies m into nested slices.
func rowsOf(m matrix.Matrix) ([][]float64, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d.RowsData(), nil
	}
	var err error
	rows := make([][]float64, m.Rows())
	for i := range rows {
		rows[i] = make([]float64, m.Cols())
		for j := range rows[i] {
			if rows[i][j], err = m.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return rows, nil
}
