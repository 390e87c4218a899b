package wall_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dwbuilder/internal/domain"
	"dwbuilder/internal/services/wall"
)

func perovskite() domain.Structure {
	return domain.Structure{
		Comment: "BaTiO3",
		Cell:    domain.Matrix{{4, 0, 0}, {0, 4, 0}, {0, 0, 4}},
		Atoms: []domain.Atom{
			{Species: "Ba", Frac: domain.Vector{0, 0, 0}},
			{Species: "Ti", Frac: domain.Vector{0.5, 0.5, 0.5}},
			{Species: "O", Frac: domain.Vector{0.5, 0.5, 0}},
			{Species: "O", Frac: domain.Vector{0.5, 0, 0.5}},
			{Species: "O", Frac: domain.Vector{0, 0.5, 0.5}},
		},
	}
}

func newService() *wall.Service { return wall.New(zerolog.Nop()) }

func TestBuild_R180(t *testing.T) {
	req := domain.WallRequest{
		Input:    perovskite(),
		Family:   domain.FamilyR3m,
		Wall:     domain.WallR180,
		WallSize: 1,
	}

	results := newService().Build(req)
	require.Len(t, results, 1)
	res := results[0]
	require.NoError(t, res.Err)
	assert.Equal(t, domain.WallR180, res.Wall)

	// Each cut matrix has |det| = 2, so each domain carries 10 atoms and
	// the stacked bicrystal 20.
	assert.Equal(t, 10, res.Domain1.NumAtoms())
	assert.Equal(t, 10, res.Domain2.NumAtoms())
	assert.Equal(t, 20, res.Stacked.NumAtoms())

	// Both domains cut from the same cubic cell: zero mismatch.
	for k := 0; k < 3; k++ {
		assert.InDelta(t, 0, res.Report.Strain[k], 1e-9)
		assert.InDelta(t, 0, res.Report.Angle[k], 1e-9)
	}
	assert.False(t, res.Residual)
}

func TestBuild_WallSizeAndSupercell(t *testing.T) {
	req := domain.WallRequest{
		Input:     perovskite(),
		Family:    domain.FamilyR3m,
		Wall:      domain.WallR109, // stacks along a
		WallSize:  2,
		Supercell: [3]int{0, 3, 1},
	}

	results := newService().Build(req)
	require.Len(t, results, 1)
	res := results[0]
	require.NoError(t, res.Err)

	// Identity cuts, so each domain is 2x3x1 = 6 cells of 5 atoms.
	assert.Equal(t, 30, res.Domain1.NumAtoms())
	assert.Equal(t, 60, res.Stacked.NumAtoms())
}

func TestBuild_All(t *testing.T) {
	req := domain.WallRequest{
		Input:    perovskite(),
		Family:   domain.FamilyR3m,
		Wall:     domain.WallAll,
		WallSize: 1,
	}

	results := newService().Build(req)
	require.Len(t, results, 3)
	assert.Equal(t, domain.WallR180, results[0].Wall)
	assert.Equal(t, domain.WallR71, results[1].Wall)
	assert.Equal(t, domain.WallR109, results[2].Wall)
	for _, res := range results {
		assert.NoError(t, res.Err, "wall %s", res.Wall)
		assert.Greater(t, res.Stacked.NumAtoms(), 0)
	}
}

func TestBuild_CatalogMiss(t *testing.T) {
	req := domain.WallRequest{
		Input:    perovskite(),
		Family:   domain.FamilyR3m,
		Wall:     domain.WallT90,
		WallSize: 1,
	}

	results := newService().Build(req)
	require.Len(t, results, 1)
	require.Error(t, results[0].Err)
	assert.True(t, wall.IsCatalogMiss(results[0].Err))
}

func TestBuild_Manual(t *testing.T) {
	req := domain.WallRequest{
		Input:    perovskite(),
		WallSize: 1,
		Manual: &domain.Orientation{
			D1:        domain.Matrix{{1, 1, 0}, {0, 0, 1}, {1, -1, 0}},
			D2:        domain.Matrix{{-1, -1, 0}, {0, 0, -1}, {1, -1, 0}},
			StackAxis: 2,
		},
	}

	results := newService().Build(req)
	require.Len(t, results, 1)
	res := results[0]
	require.NoError(t, res.Err)
	assert.Equal(t, domain.WallManual, res.Wall)
	assert.Equal(t, 20, res.Stacked.NumAtoms())
}

func TestBuild_ManualDegenerate(t *testing.T) {
	req := domain.WallRequest{
		Input:    perovskite(),
		WallSize: 1,
		Manual: &domain.Orientation{
			D1:        domain.Matrix{{1, 0, 0}, {1, 0, 0}, {0, 0, 1}},
			D2:        domain.Identity,
			StackAxis: 2,
		},
	}

	results := newService().Build(req)
	require.Len(t, results, 1)
	require.ErrorIs(t, results[0].Err, domain.ErrDegenerateTransform)
}

func TestBuild_BadWallSize(t *testing.T) {
	req := domain.WallRequest{
		Input:  perovskite(),
		Family: domain.FamilyR3m,
		Wall:   domain.WallR180,
	}

	results := newService().Build(req)
	require.Len(t, results, 1)
	require.Error(t, results[0].Err)
}

func TestBuild_AlternatingNeedsSecondState(t *testing.T) {
	req := domain.WallRequest{
		Input:    perovskite(),
		Family:   domain.FamilyP63cm,
		Wall:     domain.WallNDW,
		WallSize: 4,
	}

	results := newService().Build(req)
	require.Len(t, results, 1)
	require.Error(t, results[0].Err)
}

func TestBuild_Alternating(t *testing.T) {
	p2 := perovskite()
	p2.Atoms[1].Frac = domain.Vector{0.5, 0.5, 0.45}

	req := domain.WallRequest{
		Input:    perovskite(),
		Input2:   &p2,
		Family:   domain.FamilyP63cm,
		Wall:     domain.WallNDW,
		WallSize: 4,
	}

	results := newService().Build(req)
	require.Len(t, results, 1)
	res := results[0]
	require.NoError(t, res.Err)
	assert.Equal(t, 20, res.Stacked.NumAtoms())
	assert.False(t, res.Residual)
}

func TestBuild_T180RemovesDuplicateBoundaryLayer(t *testing.T) {
	req := domain.WallRequest{
		Input:    perovskite(),
		Family:   domain.FamilyP4mm,
		Wall:     domain.WallT180,
		WallSize: 1,
		Cutoff:   0.5,
	}

	results := newService().Build(req)
	require.Len(t, results, 1)
	res := results[0]
	require.NoError(t, res.Err)

	// The 1.01 cut entries over-fill each block with a duplicate layer
	// along a and c: 10 atoms per raw block instead of 5. Pruning must
	// remove every duplicate, leaving two clean 5-atom blocks and no
	// residual close contacts.
	assert.Equal(t, 10, res.Stacked.NumAtoms())
	assert.Equal(t, 5, res.Domain1.NumAtoms())
	assert.Equal(t, 5, res.Domain2.NumAtoms())
	assert.False(t, res.Residual)
}

func TestBuild_R3cUsesPseudoCubicCell(t *testing.T) {
	req := domain.WallRequest{
		Input:    perovskite(),
		Family:   domain.FamilyR3c,
		Wall:     domain.WallR180,
		WallSize: 1,
	}

	results := newService().Build(req)
	require.Len(t, results, 1)
	res := results[0]
	require.NoError(t, res.Err)

	// The pseudo-cubic prerequisite has |det| = 4 and the R180 cuts
	// |det| = 2, so each domain carries 4*2*5 = 40 atoms.
	assert.Equal(t, 40, res.Domain1.NumAtoms())
	assert.Equal(t, 80, res.Stacked.NumAtoms())
}
