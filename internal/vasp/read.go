package vasp

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"dwbuilder/internal/domain"
	"dwbuilder/internal/lattice"
)

// Reader parses POSCAR files into domain structures.
type Reader struct{}

// NewReader returns a POSCAR reader.
func NewReader() *Reader { return &Reader{} }

// ReadFile parses the POSCAR file at path.
func (r *Reader) ReadFile(path string) (domain.Structure, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Structure{}, err
	}
	defer f.Close()
	s, err := Read(f)
	if err != nil {
		return domain.Structure{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Read parses a POSCAR document.
func Read(in io.Reader) (domain.Structure, error) {
	sc := bufio.NewScanner(in)
	next := func() (string, error) {
		for sc.Scan() {
			return sc.Text(), nil
		}
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}

	var s domain.Structure
	line, err := next()
	if err != nil {
		return s, err
	}
	s.Comment = strings.TrimSpace(line)

	line, err = next()
	if err != nil {
		return s, err
	}
	scale, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return s, fmt.Errorf("bad scale line: %w", err)
	}

	for i := 0; i < 3; i++ {
		line, err = next()
		if err != nil {
			return s, err
		}
		v, err := parseVector(line)
		if err != nil {
			return s, fmt.Errorf("bad lattice row %d: %w", i+1, err)
		}
		s.Cell[i] = v
	}
	// A negative scale is the target cell volume.
	if scale < 0 {
		vol := lattice.Volume(s.Cell)
		if vol == 0 {
			return s, domain.ErrZeroLengthVector
		}
		scale = math.Cbrt(-scale / vol)
	}
	for i := 0; i < 3; i++ {
		s.Cell[i] = lattice.Scale(s.Cell[i], scale)
	}

	line, err = next()
	if err != nil {
		return s, err
	}
	species := strings.Fields(line)
	if len(species) == 0 {
		return s, fmt.Errorf("empty species line")
	}
	if _, err := strconv.Atoi(species[0]); err == nil {
		return s, fmt.Errorf("vasp4 POSCAR (no species names) is not supported")
	}

	line, err = next()
	if err != nil {
		return s, err
	}
	countFields := strings.Fields(line)
	if len(countFields) != len(species) {
		return s, fmt.Errorf("species/count mismatch: %d names, %d counts", len(species), len(countFields))
	}
	counts := make([]int, len(countFields))
	total := 0
	for i, f := range countFields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return s, fmt.Errorf("bad atom count %q", f)
		}
		counts[i] = n
		total += n
	}

	line, err = next()
	if err != nil {
		return s, err
	}
	if mode := strings.ToLower(strings.TrimSpace(line)); strings.HasPrefix(mode, "s") {
		// Selective dynamics; flags on coordinate lines are ignored.
		line, err = next()
		if err != nil {
			return s, err
		}
	}
	cartesian := false
	switch mode := strings.ToLower(strings.TrimSpace(line)); {
	case strings.HasPrefix(mode, "d"):
	case strings.HasPrefix(mode, "c"), strings.HasPrefix(mode, "k"):
		cartesian = true
	default:
		return s, fmt.Errorf("unknown coordinate mode %q", strings.TrimSpace(line))
	}

	var toFrac domain.Matrix
	if cartesian {
		toFrac, err = lattice.Inverse(lattice.Transpose(s.Cell))
		if err != nil {
			return s, fmt.Errorf("degenerate cell: %w", err)
		}
	}
	s.Atoms = make([]domain.Atom, 0, total)
	for si, sp := range species {
		for k := 0; k < counts[si]; k++ {
			line, err = next()
			if err != nil {
				return s, fmt.Errorf("truncated coordinates: %w", err)
			}
			v, err := parseVector(line)
			if err != nil {
				return s, fmt.Errorf("bad coordinate line: %w", err)
			}
			if cartesian {
				v = lattice.MulVec(toFrac, lattice.Scale(v, scale))
			}
			s.Atoms = append(s.Atoms, domain.Atom{Species: sp, Frac: lattice.Wrap(v)})
		}
	}
	return s, nil
}

func parseVector(line string) (domain.Vector, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return domain.Vector{}, fmt.Errorf("want 3 values, got %d", len(fields))
	}
	var v domain.Vector
	for i := 0; i < 3; i++ {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return domain.Vector{}, err
		}
		v[i] = x
	}
	return v, nil
}

var _ domain.StructureReader = (*Reader)(nil)
