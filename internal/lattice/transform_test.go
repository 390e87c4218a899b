package lattice_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dwbuilder/internal/domain"
	"dwbuilder/internal/lattice"
)

func cubic(atoms ...domain.Atom) domain.Structure {
	return domain.Structure{
		Comment: "cubic test cell",
		Cell:    domain.Identity,
		Atoms:   atoms,
	}
}

func TestTransform_DoublesCell(t *testing.T) {
	s := cubic(domain.Atom{Species: "Sr", Frac: domain.Vector{0, 0, 0}})
	m := domain.Matrix{{1, 1, 0}, {1, -1, 0}, {0, 0, 1}}

	got, err := lattice.Transform(s, m)
	require.NoError(t, err)

	assert.InDelta(t, 2, lattice.Volume(got.Cell), 1e-12)
	require.Len(t, got.Atoms, 2)

	// Both images sit on the original lattice.
	want := []domain.Vector{{0, 0, 0}, {0.5, 0.5, 0}}
	for _, w := range want {
		found := false
		for _, a := range got.Atoms {
			assert.Equal(t, "Sr", a.Species)
			if math.Abs(a.Frac[0]-w[0]) < 1e-9 &&
				math.Abs(a.Frac[1]-w[1]) < 1e-9 &&
				math.Abs(a.Frac[2]-w[2]) < 1e-9 {
				found = true
			}
		}
		assert.True(t, found, "missing image at %v", w)
	}
}

func TestTransform_RoundTrip(t *testing.T) {
	s := cubic(domain.Atom{Species: "Ti", Frac: domain.Vector{0.5, 0.5, 0.5}})
	m := domain.Matrix{{1, 1, 0}, {1, -1, 0}, {0, 0, 1}}

	big, err := lattice.Transform(s, m)
	require.NoError(t, err)
	require.Len(t, big.Atoms, 2)

	inv, err := lattice.Inverse(m)
	require.NoError(t, err)

	back, err := lattice.Transform(big, inv)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, s.Cell[i][j], back.Cell[i][j], 1e-9)
		}
	}
	require.Len(t, back.Atoms, 1)
	for k := 0; k < 3; k++ {
		assert.InDelta(t, 0.5, back.Atoms[0].Frac[k], 1e-9)
	}
}

func TestTransform_Degenerate(t *testing.T) {
	s := cubic(domain.Atom{Species: "O", Frac: domain.Vector{0, 0, 0}})
	m := domain.Matrix{{1, 0, 0}, {1, 0, 0}, {0, 0, 1}}

	_, err := lattice.Transform(s, m)
	require.ErrorIs(t, err, domain.ErrDegenerateTransform)
}

func TestTransform_PreservesDensity(t *testing.T) {
	s := cubic(
		domain.Atom{Species: "Ba", Frac: domain.Vector{0, 0, 0}},
		domain.Atom{Species: "Ti", Frac: domain.Vector{0.5, 0.5, 0.5}},
		domain.Atom{Species: "O", Frac: domain.Vector{0.5, 0.5, 0}},
		domain.Atom{Species: "O", Frac: domain.Vector{0.5, 0, 0.5}},
		domain.Atom{Species: "O", Frac: domain.Vector{0, 0.5, 0.5}},
	)
	m := domain.Matrix{{2, 1, 0}, {-1, 1, 0}, {0, 0, 1}}

	got, err := lattice.Transform(s, m)
	require.NoError(t, err)

	det := math.Abs(lattice.Det(m))
	assert.Equal(t, int(math.Round(det))*s.NumAtoms(), got.NumAtoms())
	for _, a := range got.Atoms {
		for k := 0; k < 3; k++ {
			assert.GreaterOrEqual(t, a.Frac[k], 0.0)
			assert.Less(t, a.Frac[k], 1.0)
		}
	}
}

func TestWrap(t *testing.T) {
	got := lattice.Wrap(domain.Vector{1.25, -0.25, 0.5})
	assert.InDelta(t, 0.25, got[0], 1e-12)
	assert.InDelta(t, 0.75, got[1], 1e-12)
	assert.InDelta(t, 0.5, got[2], 1e-12)

	// Values a rounding hair below 1 snap to 0.
	got = lattice.Wrap(domain.Vector{1 - 1e-9, 0, 0})
	assert.Equal(t, 0.0, got[0])
}

func TestOrient_LowerTriangular(t *testing.T) {
	s := domain.Structure{
		Cell: domain.Matrix{{1, 1, 0}, {0, 0, 1}, {1, -1, 0}},
		Atoms: []domain.Atom{
			{Species: "Pb", Frac: domain.Vector{0.25, 0.5, 0.75}},
		},
	}
	got := lattice.Orient(s)

	assert.InDelta(t, 0, got.Cell[0][1], 1e-12)
	assert.InDelta(t, 0, got.Cell[0][2], 1e-12)
	assert.InDelta(t, 0, got.Cell[1][2], 1e-12)

	// Rigid rotation preserves lengths, volume and fractional coordinates.
	for i := 0; i < 3; i++ {
		assert.InDelta(t, lattice.Norm(s.Cell[i]), lattice.Norm(got.Cell[i]), 1e-12)
	}
	assert.InDelta(t, lattice.Volume(s.Cell), lattice.Volume(got.Cell), 1e-12)
	assert.Equal(t, s.Atoms[0].Frac, got.Atoms[0].Frac)
}
