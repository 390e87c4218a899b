package lattice

import (
	"fmt"
	"math"

	"dwbuilder/internal/domain"
)

// fracTol is the half-open interval tolerance for deciding whether a
// transformed fractional coordinate belongs to the new cell.
const fracTol = 1e-7

// Transform re-expresses s in the basis M*cell. Cartesian positions are
// invariant: each atom's fractional coordinates are recomputed against the
// new lattice, with periodic images added so the new cell is fully
// populated. For an integer matrix the result holds exactly
// round(|det(M)|) * len(s.Atoms) atoms.
func Transform(s domain.Structure, m domain.Matrix) (domain.Structure, error) {
	det := Det(m)
	if math.Abs(det) < degenerateTol {
		return domain.Structure{}, domain.ErrDegenerateTransform
	}

	// f_old + n = M^T f_new, so candidate integer translations n live in
	// the image of the new unit cube under M^T.
	invMT, err := Inverse(Transpose(m))
	if err != nil {
		return domain.Structure{}, err
	}
	lo, hi := translationBounds(m)

	out := domain.Structure{
		Comment: s.Comment,
		Cell:    Mul(m, s.Cell),
	}
	for _, a := range s.Atoms {
		for nx := lo[0]; nx <= hi[0]; nx++ {
			for ny := lo[1]; ny <= hi[1]; ny++ {
				for nz := lo[2]; nz <= hi[2]; nz++ {
					shifted := Add(a.Frac, domain.Vector{float64(nx), float64(ny), float64(nz)})
					f := MulVec(invMT, shifted)
					if !inCell(f) {
						continue
					}
					out.Atoms = append(out.Atoms, domain.Atom{Species: a.Species, Frac: clampFrac(f)})
				}
			}
		}
	}

	// Integer matrices tile the old cell exactly; anything else is a
	// geometry bug. Non-integer cut vectors (e.g. the deliberate 1.01
	// entries of the tetragonal 180 wall) over- or under-fill by design
	// and are cleaned up by the junction pruner.
	if isInteger(m, degenerateTol) {
		want := int(math.Round(math.Abs(det))) * len(s.Atoms)
		if len(out.Atoms) != want {
			return domain.Structure{}, fmt.Errorf("transform produced %d atoms, want %d", len(out.Atoms), want)
		}
	}
	return out, nil
}

// translationBounds returns the integer translation box covering the image
// of the unit cube under M^T, padded by one cell on every side.
func translationBounds(m domain.Matrix) (lo, hi [3]int) {
	mt := Transpose(m)
	first := true
	var min, max domain.Vector
	for cx := 0.0; cx <= 1; cx++ {
		for cy := 0.0; cy <= 1; cy++ {
			for cz := 0.0; cz <= 1; cz++ {
				p := MulVec(mt, domain.Vector{cx, cy, cz})
				for i := 0; i < 3; i++ {
					if first || p[i] < min[i] {
						min[i] = p[i]
					}
					if first || p[i] > max[i] {
						max[i] = p[i]
					}
				}
				first = false
			}
		}
	}
	for i := 0; i < 3; i++ {
		lo[i] = int(math.Floor(min[i])) - 1
		hi[i] = int(math.Ceil(max[i])) + 1
	}
	return lo, hi
}

func inCell(f domain.Vector) bool {
	for i := 0; i < 3; i++ {
		if f[i] < -fracTol || f[i] >= 1-fracTol {
			return false
		}
	}
	return true
}

func clampFrac(f domain.Vector) domain.Vector {
	for i := 0; i < 3; i++ {
		if f[i] < 0 {
			f[i] = 0
		}
	}
	return f
}

// Wrap maps every component of f into [0, 1), snapping values within
// fracTol of 1 down to 0.
func Wrap(f domain.Vector) domain.Vector {
	for i := 0; i < 3; i++ {
		f[i] -= math.Floor(f[i])
		if f[i] >= 1-fracTol {
			f[i] = 0
		}
	}
	return f
}

// Orient rigidly rotates the cell into the standard Cartesian frame: a
// along x, b in the xy plane. Fractional coordinates are unchanged; the
// cell's handedness is preserved.
func Orient(s domain.Structure) domain.Structure {
	a, b, c := s.Cell[0], s.Cell[1], s.Cell[2]
	la := Norm(a)
	n := Cross(a, b)
	ln := Norm(n)
	if la < degenerateTol || ln < degenerateTol {
		return s
	}
	e1 := Scale(a, 1/la)
	e3 := Scale(n, 1/ln)
	e2 := Cross(e3, e1)

	out := s.Copy()
	out.Cell = domain.Matrix{
		{la, 0, 0},
		{Dot(b, e1), Dot(b, e2), 0},
		{Dot(c, e1), Dot(c, e2), Dot(c, e3)},
	}
	return out
}
