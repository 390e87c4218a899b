package vasp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"dwbuilder/internal/domain"
)

// Writer renders domain structures as vasp5 POSCAR files, atoms grouped by
// species in alphabetical order.
type Writer struct{}

// NewWriter returns a POSCAR writer.
func NewWriter() *Writer { return &Writer{} }

// WriteFile writes s to path, creating parent directories as needed.
func (w *Writer) WriteFile(path string, s domain.Structure) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, s); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// Write renders s as a POSCAR document.
func Write(out io.Writer, s domain.Structure) error {
	species := s.Species()
	sort.Strings(species)

	grouped := make(map[string][]domain.Atom, len(species))
	for _, a := range s.Atoms {
		grouped[a.Species] = append(grouped[a.Species], a)
	}

	bw := bufio.NewWriter(out)
	comment := s.Comment
	if comment == "" {
		comment = "Generated Supercell"
	}
	fmt.Fprintln(bw, comment)
	fmt.Fprintln(bw, "1.0")
	for i := 0; i < 3; i++ {
		fmt.Fprintf(bw, " %20.10f %20.10f %20.10f\n", s.Cell[i][0], s.Cell[i][1], s.Cell[i][2])
	}
	fmt.Fprintln(bw, strings.Join(species, " "))
	counts := make([]string, len(species))
	for i, sp := range species {
		counts[i] = fmt.Sprintf("%d", len(grouped[sp]))
	}
	fmt.Fprintln(bw, strings.Join(counts, " "))
	fmt.Fprintln(bw, "Direct")
	for _, sp := range species {
		for _, a := range grouped[sp] {
			fmt.Fprintf(bw, " %20.10f %20.10f %20.10f\n", a.Frac[0], a.Frac[1], a.Frac[2])
		}
	}
	return bw.Flush()
}

var _ domain.StructureWriter = (*Writer)(nil)
