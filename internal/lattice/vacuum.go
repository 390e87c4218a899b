package lattice

import (
	"fmt"

	"dwbuilder/internal/domain"
)

// AddVacuum extends one lattice vector by the given length without moving
// atoms in Cartesian space: the axis is lengthened and the fractional
// coordinates along it are compressed to compensate.
func AddVacuum(s domain.Structure, axis int, size float64) (domain.Structure, error) {
	if axis < 0 || axis > 2 {
		return domain.Structure{}, fmt.Errorf("vacuum axis must be 0, 1 or 2, got %d", axis)
	}
	if size < 0 {
		return domain.Structure{}, fmt.Errorf("vacuum size must be non-negative, got %g", size)
	}
	l := Norm(s.Cell[axis])
	if l < degenerateTol {
		return domain.Structure{}, domain.ErrZeroLengthVector
	}
	scale := (l + size) / l

	out := s.Copy()
	out.Cell[axis] = Scale(s.Cell[axis], scale)
	for i := range out.Atoms {
		out.Atoms[i].Frac[axis] /= scale
	}
	return out, nil
}
