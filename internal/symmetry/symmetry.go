// Package symmetry reports the Bravais lattice type implied by a cell's
// lengths and angles. It is an operator hint only; the symmetry family
// driving the catalog is always a user-supplied label.
package symmetry

import (
	"math"

	"dwbuilder/internal/domain"
	"dwbuilder/internal/lattice"
)

// tol is the relative tolerance for comparing lengths and the absolute
// tolerance in degrees for comparing angles.
const tol = 1e-3

// LatticeType classifies the cell's lattice system from its parameters.
func LatticeType(cell domain.Matrix) string {
	a := lattice.Norm(cell[0])
	b := lattice.Norm(cell[1])
	c := lattice.Norm(cell[2])
	alpha := angleDeg(cell[1], cell[2])
	beta := angleDeg(cell[0], cell[2])
	gamma := angleDeg(cell[0], cell[1])

	eqAB := close(a, b)
	eqBC := close(b, c)
	eqAC := close(a, c)
	right := closeDeg(alpha, 90) && closeDeg(beta, 90) && closeDeg(gamma, 90)

	switch {
	case eqAB && eqBC && eqAC && right:
		return "cubic"
	case eqAB && right:
		return "tetragonal"
	case right:
		return "orthorhombic"
	case eqAB && closeDeg(alpha, 90) && closeDeg(beta, 90) && closeDeg(gamma, 120):
		return "hexagonal"
	case eqAB && eqBC && eqAC && closeDeg(alpha, beta) && closeDeg(beta, gamma):
		return "rhombohedral"
	case closeDeg(alpha, 90) && closeDeg(gamma, 90):
		return "monoclinic"
	default:
		return "triclinic"
	}
}

func angleDeg(u, v domain.Vector) float64 {
	cos := lattice.Dot(u, v) / (lattice.Norm(u) * lattice.Norm(v))
	return math.Acos(math.Max(-1, math.Min(1, cos))) * 180 / math.Pi
}

func close(x, y float64) bool { return math.Abs(x-y) <= tol*math.Max(x, y) }

func closeDeg(x, y float64) bool { return math.Abs(x-y) <= 0.1 }
