package lattice

import (
	"fmt"

	"dwbuilder/internal/domain"
)

// Replicate tiles s by the integer factors (na, nb, nc). Every atom gains
// na*nb*nc periodic images; no deduplication happens here.
func Replicate(s domain.Structure, na, nb, nc int) (domain.Structure, error) {
	if na < 1 || nb < 1 || nc < 1 {
		return domain.Structure{}, fmt.Errorf("replication factors must be positive, got (%d, %d, %d)", na, nb, nc)
	}
	n := [3]int{na, nb, nc}

	out := domain.Structure{Comment: s.Comment, Cell: s.Cell}
	for i := 0; i < 3; i++ {
		out.Cell[i] = Scale(s.Cell[i], float64(n[i]))
	}

	out.Atoms = make([]domain.Atom, 0, len(s.Atoms)*na*nb*nc)
	for ia := 0; ia < na; ia++ {
		for ib := 0; ib < nb; ib++ {
			for ic := 0; ic < nc; ic++ {
				off := [3]int{ia, ib, ic}
				for _, a := range s.Atoms {
					f := a.Frac
					for i := 0; i < 3; i++ {
						f[i] = (f[i] + float64(off[i])) / float64(n[i])
					}
					out.Atoms = append(out.Atoms, domain.Atom{Species: a.Species, Frac: f})
				}
			}
		}
	}
	return out, nil
}
