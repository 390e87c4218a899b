package lattice

import (
	"math"

	"dwbuilder/internal/domain"
)

// minImage returns the shortest periodic-image distance between fractional
// positions fi and fj, plus the integer cell offset of the minimizing
// image. Exact for separations below half the cell extent, which covers
// every physically meaningful pruning cutoff.
func minImage(cell domain.Matrix, fi, fj domain.Vector) (float64, [3]int) {
	raw := Sub(fj, fi)
	best := math.Inf(1)
	var bestOff [3]int
	for nx := -1; nx <= 1; nx++ {
		for ny := -1; ny <= 1; ny++ {
			for nz := -1; nz <= 1; nz++ {
				cand := Add(raw, domain.Vector{float64(nx), float64(ny), float64(nz)})
				d := Norm(Cartesian(cell, cand))
				if d < best {
					best = d
					bestOff = [3]int{nx, ny, nz}
				}
			}
		}
	}
	return best, bestOff
}

// prune removes the higher-index atom of every pair closer than cutoff,
// unless skip spares the pair. Greedy single pass in assembly order: of any
// close pair exactly one atom is discarded, never both. A cutoff of zero
// disables pruning.
func prune(s domain.Structure, cutoff float64, skip func(i, j int, off [3]int) bool) domain.Structure {
	if cutoff <= 0 {
		return s.Copy()
	}
	removed := make([]bool, len(s.Atoms))
	for i := range s.Atoms {
		if removed[i] {
			continue
		}
		for j := i + 1; j < len(s.Atoms); j++ {
			if removed[j] {
				continue
			}
			d, off := minImage(s.Cell, s.Atoms[i].Frac, s.Atoms[j].Frac)
			if d >= cutoff || skip(i, j, off) {
				continue
			}
			removed[j] = true
		}
	}

	out := domain.Structure{Comment: s.Comment, Cell: s.Cell}
	out.Atoms = make([]domain.Atom, 0, len(s.Atoms))
	for i, a := range s.Atoms {
		if !removed[i] {
			out.Atoms = append(out.Atoms, a)
		}
	}
	return out
}

// RemoveClose prunes every close pair regardless of where it sits. Used on
// single-domain slabs, where any contact under the cutoff is an artifact.
func RemoveClose(s domain.Structure, cutoff float64) domain.Structure {
	return prune(s, cutoff, func(i, j int, off [3]int) bool { return false })
}

// PruneJunction prunes only pairs that straddle a junction introduced by
// stacking or cutting: the atoms come from different blocks (assembly order
// splits at n1) or their minimum image crosses a periodic boundary. Pairs
// fully interior to one domain are never touched; duplicate boundary layers
// (over-filled non-integer cuts) always are.
func PruneJunction(s domain.Structure, n1 int, cutoff float64) domain.Structure {
	return prune(s, cutoff, func(i, j int, off [3]int) bool {
		sameBlock := (i < n1) == (j < n1)
		return sameBlock && off == [3]int{0, 0, 0}
	})
}

// HasCloseContacts reports whether any atom pair remains closer than
// cutoff. Used after pruning to surface the residual-artifact warning.
func HasCloseContacts(s domain.Structure, cutoff float64) bool {
	if cutoff <= 0 {
		return false
	}
	for i := range s.Atoms {
		for j := i + 1; j < len(s.Atoms); j++ {
			if d, _ := minImage(s.Cell, s.Atoms[i].Frac, s.Atoms[j].Frac); d < cutoff {
				return true
			}
		}
	}
	return false
}
