// Package baseline stores generated component sources as golden files and
// compares fresh runs against them, so layout or token regressions surface
// as a diff instead of a silent output change.
package baseline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store reads and writes golden files under a single directory, one file
// per component.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir. The directory is created on the
// first Save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the golden file path for a component.
func (s *Store) Path(component string) string {
	return filepath.Join(s.dir, component+".tsx")
}

// Save writes (or overwrites) the golden file for a component.
func (s *Store) Save(component, code string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("baseline: create %s: %w", s.dir, err)
	}
	path := s.Path(component)
	if err := os.WriteFile(path, []byte(code), 0o644); err != nil {
		return fmt.Errorf("baseline: write %s: %w", path, err)
	}
	return nil
}

// Exists reports whether a baseline has been saved for the component.
func (s *Store) Exists(component string) bool {
	_, err := os.Stat(s.Path(component))
	return err == nil
}

// Diff is the result of comparing fresh output against a baseline.
type Diff struct {
	Match bool

	// FirstLine is the 1-based line number of the first difference, 0 when
	// the outputs match.
	FirstLine int
	Expected  string
	Actual    string
}

// Compare checks fresh output against the stored baseline. A missing
// baseline is an error so callers can distinguish "never saved" from
// "changed".
func (s *Store) Compare(component, code string) (*Diff, error) {
	path := s.Path(component)
	r, err := openReader(path)
	if err != nil {
		return nil, fmt.Errorf("baseline: open %s: %w", path, err)
	}
	defer r.Close()

	want := string(r.Bytes())
	if want == code {
		return &Diff{Match: true}, nil
	}

	wantLines := strings.Split(want, "\n")
	gotLines := strings.Split(code, "\n")
	for i := 0; i < len(wantLines) || i < len(gotLines); i++ {
		var w, g string
		if i < len(wantLines) {
			w = wantLines[i]
		}
		if i < len(gotLines) {
			g = gotLines[i]
		}
		if w != g {
			return &Diff{FirstLine: i + 1, Expected: w, Actual: g}, nil
		}
	}
	// Byte difference without a line difference means trailing content.
	return &Diff{FirstLine: len(wantLines), Expected: want, Actual: code}, nil
}
