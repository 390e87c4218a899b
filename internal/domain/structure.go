package domain

// Vector is a 3-component row vector.
type Vector [3]float64

// Matrix is a 3x3 matrix whose rows are the a, b and c lattice vectors
// (or, for a transformation, the cut vectors expressed in the old basis).
type Matrix [3]Vector

// Identity is the 3x3 identity transformation.
var Identity = Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// Atom is a single site: a species label plus a fractional position in the
// owning cell. Fractional coordinates are kept in [0, 1).
type Atom struct {
	Species string
	Frac    Vector
}

// Structure is an ordered list of atoms inside a periodic cell.
type Structure struct {
	Comment string
	Cell    Matrix
	Atoms   []Atom
}

// NumAtoms returns the number of sites in the structure.
func (s Structure) NumAtoms() int { return len(s.Atoms) }

// Copy returns a deep copy; Atoms of the original and the copy are
// independent slices.
func (s Structure) Copy() Structure {
	out := s
	out.Atoms = make([]Atom, len(s.Atoms))
	copy(out.Atoms, s.Atoms)
	return out
}

// Species returns the distinct species labels in first-appearance order.
func (s Structure) Species() []string {
	seen := make(map[string]bool, 4)
	var order []string
	for _, a := range s.Atoms {
		if !seen[a.Species] {
			seen[a.Species] = true
			order = append(order, a.Species)
		}
	}
	return order
}
