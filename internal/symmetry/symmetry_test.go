package symmetry_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"dwbuilder/internal/domain"
	"dwbuilder/internal/symmetry"
)

func TestLatticeType(t *testing.T) {
	cos60 := 0.5
	sin60 := math.Sqrt(3) / 2

	cases := []struct {
		name string
		cell domain.Matrix
		want string
	}{
		{"cubic", domain.Matrix{{4, 0, 0}, {0, 4, 0}, {0, 0, 4}}, "cubic"},
		{"tetragonal", domain.Matrix{{4, 0, 0}, {0, 4, 0}, {0, 0, 5}}, "tetragonal"},
		{"orthorhombic", domain.Matrix{{3, 0, 0}, {0, 4, 0}, {0, 0, 5}}, "orthorhombic"},
		{"hexagonal", domain.Matrix{{4, 0, 0}, {-4 * cos60, 4 * sin60, 0}, {0, 0, 6}}, "hexagonal"},
		{"monoclinic", domain.Matrix{{3, 0, 0}, {0, 4, 0}, {1, 0, 5}}, "monoclinic"},
		{"triclinic", domain.Matrix{{3, 0.2, 0}, {0.1, 4, 0.3}, {1, 0.4, 5}}, "triclinic"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, symmetry.LatticeType(tc.cell))
		})
	}
}

func TestLatticeType_Rhombohedral(t *testing.T) {
	// Equal lengths, equal non-right angles.
	a := domain.Vector{4, 0, 0}
	b := domain.Vector{4 * math.Cos(1.2), 4 * math.Sin(1.2), 0}
	// Pick c so that cos(alpha) == cos(beta) == cos(1.2).
	cx := 4 * math.Cos(1.2)
	cy := 4 * (math.Cos(1.2) - math.Cos(1.2)*math.Cos(1.2)) / math.Sin(1.2)
	cz := math.Sqrt(16 - cx*cx - cy*cy)
	c := domain.Vector{cx, cy, cz}

	got := symmetry.LatticeType(domain.Matrix{a, b, c})
	assert.Equal(t, "rhombohedral", got)
}
