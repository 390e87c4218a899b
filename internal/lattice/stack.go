package lattice

import (
	"fmt"

	"dwbuilder/internal/domain"
)

// prewrapTol: fractional coordinates above this value are shifted down one
// period before alternating stacking, so boundary atoms stay attached to
// their own layer after compression.
const prewrapTol = 0.97

// Stack joins two domain blocks along the given axis. The combined cell
// takes its in-plane vectors from d1 (the reference domain) and its
// stacking vector from the sum of both blocks' stacking vectors; d2's atoms
// are translated by d1's stacking vector. In-plane disagreement is never
// rescaled away; it is the caller's job to report it as strain.
func Stack(d1, d2 domain.Structure, axis int) (domain.Structure, error) {
	if axis < 0 || axis > 2 {
		return domain.Structure{}, fmt.Errorf("stacking axis must be 0, 1 or 2, got %d", axis)
	}
	v1, v2 := d1.Cell[axis], d2.Cell[axis]
	if Norm(v1) < degenerateTol || Norm(v2) < degenerateTol {
		return domain.Structure{}, fmt.Errorf("%w: zero-length stacking vector", domain.ErrIncompatibleStacking)
	}
	if Dot(v1, v2) <= 0 {
		return domain.Structure{}, fmt.Errorf("%w: stacking vectors are not parallel", domain.ErrIncompatibleStacking)
	}

	cell := d1.Cell
	cell[axis] = Add(v1, v2)
	toFrac, err := Inverse(Transpose(cell))
	if err != nil {
		return domain.Structure{}, fmt.Errorf("%w: combined cell is degenerate", domain.ErrIncompatibleStacking)
	}

	out := domain.Structure{Comment: d1.Comment, Cell: cell}
	out.Atoms = make([]domain.Atom, 0, len(d1.Atoms)+len(d2.Atoms))
	for _, a := range d1.Atoms {
		cart := Cartesian(d1.Cell, a.Frac)
		out.Atoms = append(out.Atoms, domain.Atom{Species: a.Species, Frac: Wrap(MulVec(toFrac, cart))})
	}
	for _, a := range d2.Atoms {
		cart := Add(Cartesian(d2.Cell, a.Frac), v1)
		out.Atoms = append(out.Atoms, domain.Atom{Species: a.Species, Frac: Wrap(MulVec(toFrac, cart))})
	}
	return out, nil
}

// StackAlternating builds the multi-domain cell used by the hexagonal
// neutral and charged walls: n periods along the stacking axis, the first
// half filled from p1 and the rest from p2, all inside one cell whose
// stacking vector is p1's scaled by n.
func StackAlternating(p1, p2 domain.Structure, n, axis int) (domain.Structure, error) {
	if n < 2 {
		return domain.Structure{}, fmt.Errorf("alternating stack needs at least 2 periods, got %d", n)
	}
	if axis < 0 || axis > 2 {
		return domain.Structure{}, fmt.Errorf("stacking axis must be 0, 1 or 2, got %d", axis)
	}
	if len(p1.Atoms) != len(p2.Atoms) {
		return domain.Structure{}, fmt.Errorf("%w: polarization states have %d and %d atoms",
			domain.ErrIncompatibleStacking, len(p1.Atoms), len(p2.Atoms))
	}

	out := domain.Structure{Comment: p1.Comment, Cell: p1.Cell}
	out.Cell[axis] = Scale(p1.Cell[axis], float64(n))
	out.Atoms = make([]domain.Atom, 0, len(p1.Atoms)*n)
	for i := 1; i <= n; i++ {
		src := p1
		if 2*i > n {
			src = p2
		}
		for _, a := range src.Atoms {
			f := prewrap(a.Frac)
			f[axis] = (f[axis] + float64(i-1)) / float64(n)
			out.Atoms = append(out.Atoms, domain.Atom{Species: a.Species, Frac: Wrap(f)})
		}
	}
	return out, nil
}

func prewrap(f domain.Vector) domain.Vector {
	for i := 0; i < 3; i++ {
		if f[i] > prewrapTol {
			f[i] -= 1
		}
	}
	return f
}
