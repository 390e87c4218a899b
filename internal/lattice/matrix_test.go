package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dwbuilder/internal/domain"
	"dwbuilder/internal/lattice"
)

func TestDetAndVolume(t *testing.T) {
	m := domain.Matrix{{1, 1, 0}, {1, -1, 0}, {0, 0, 1}}
	assert.InDelta(t, -2, lattice.Det(m), 1e-12)
	assert.InDelta(t, 2, lattice.Volume(m), 1e-12)
}

func TestInverse_RoundTrip(t *testing.T) {
	m := domain.Matrix{{1, 1, 0}, {1, -1, 0}, {0, 0, 1}}
	inv, err := lattice.Inverse(m)
	require.NoError(t, err)

	prod := lattice.Mul(m, inv)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, domain.Identity[i][j], prod[i][j], 1e-12)
		}
	}
}

func TestInverse_Singular(t *testing.T) {
	m := domain.Matrix{{1, 0, 0}, {2, 0, 0}, {0, 0, 1}}
	_, err := lattice.Inverse(m)
	require.ErrorIs(t, err, domain.ErrDegenerateTransform)
}

func TestCross(t *testing.T) {
	got := lattice.Cross(domain.Vector{1, 0, 0}, domain.Vector{0, 1, 0})
	assert.Equal(t, domain.Vector{0, 0, 1}, got)
}

func TestCartesian(t *testing.T) {
	cell := domain.Matrix{{2, 0, 0}, {0, 3, 0}, {0, 0, 4}}
	got := lattice.Cartesian(cell, domain.Vector{0.5, 0.5, 0.25})
	assert.InDelta(t, 1, got[0], 1e-12)
	assert.InDelta(t, 1.5, got[1], 1e-12)
	assert.InDelta(t, 1, got[2], 1e-12)
}
