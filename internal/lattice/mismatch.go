package lattice

import (
	"fmt"
	"math"

	"dwbuilder/internal/domain"
)

// Mismatch computes the per-axis lattice mismatch between two transformed
// cells: percentage length strain (|L2|-|L1|)/|L1|*100 with c1 as the
// reference, and the angle between corresponding lattice vectors in
// radians. Pure function; a zero-length reference vector is an input error.
func Mismatch(c1, c2 domain.Matrix) (domain.MismatchReport, error) {
	var rep domain.MismatchReport
	axes := [3]string{"a", "b", "c"}
	for i := 0; i < 3; i++ {
		n1, n2 := Norm(c1[i]), Norm(c2[i])
		if n1 < degenerateTol || n2 < degenerateTol {
			return domain.MismatchReport{}, fmt.Errorf("%w along %s", domain.ErrZeroLengthVector, axes[i])
		}
		rep.Strain[i] = (n2 - n1) / n1 * 100
		cos := Dot(c1[i], c2[i]) / (n1 * n2)
		rep.Angle[i] = math.Acos(math.Max(-1, math.Min(1, cos)))
	}
	return rep, nil
}
