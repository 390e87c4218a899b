package catalog

import (
	"fmt"

	"dwbuilder/internal/domain"
)

// Mode selects how the two domains are combined.
type Mode int

const (
	// ModeBicrystal stacks two transformed blocks end to end.
	ModeBicrystal Mode = iota
	// ModeAlternating interleaves two polarization states inside one cell
	// (hexagonal neutral/charged walls).
	ModeAlternating
)

// Entry is one orientation relationship: the cut matrix for each domain
// plus the axis the blocks are stacked along.
type Entry struct {
	Family    domain.Family
	Wall      domain.WallType
	D1, D2    domain.Matrix
	StackAxis int
	Mode      Mode
}

// walls lists every entry per family in a fixed order; Lookup and Walls
// preserve it, so batch runs are deterministic.
var walls = map[domain.Family][]Entry{
	domain.FamilyR3m: {
		{
			Family: domain.FamilyR3m, Wall: domain.WallR180, StackAxis: 2,
			D1: domain.Matrix{{1, 1, 0}, {0, 0, 1}, {1, -1, 0}},
			D2: domain.Matrix{{-1, -1, 0}, {0, 0, -1}, {1, -1, 0}},
		},
		{
			Family: domain.FamilyR3m, Wall: domain.WallR71, StackAxis: 0,
			D1: domain.Matrix{{1, 1, 0}, {0, 0, 1}, {1, -1, 0}},
			D2: domain.Matrix{{1, 1, 0}, {0, 0, -1}, {-1, 1, 0}},
		},
		{
			Family: domain.FamilyR3m, Wall: domain.WallR109, StackAxis: 0,
			D1: domain.Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
			D2: domain.Matrix{{1, 0, 0}, {0, -1, 0}, {0, 0, -1}},
		},
	},
	domain.FamilyR3c: {
		{
			Family: domain.FamilyR3c, Wall: domain.WallR109, StackAxis: 2,
			D1: domain.Matrix{{0, 1, 0}, {1, 0, 0}, {0, 0, 1}},
			D2: domain.Matrix{{0, -1, 0}, {-1, 0, 0}, {0, 0, 1}},
		},
		{
			Family: domain.FamilyR3c, Wall: domain.WallR71, StackAxis: 2,
			D1: domain.Matrix{{1, -1, 0}, {0, 0, 1}, {1, 1, 0}},
			D2: domain.Matrix{{-1, 1, 0}, {0, 0, -1}, {1, 1, 0}},
		},
		{
			Family: domain.FamilyR3c, Wall: domain.WallR180, StackAxis: 2,
			D1: domain.Matrix{{1, 1, 0}, {0, 0, -1}, {-1, 1, 0}},
			D2: domain.Matrix{{-1, -1, 0}, {0, 0, 1}, {-1, 1, 0}},
		},
	},
	domain.FamilyP4mm: {
		{
			// The 1.01 entries deliberately over-cut by one boundary
			// layer; the junction pruner removes the duplicates.
			Family: domain.FamilyP4mm, Wall: domain.WallT180, StackAxis: 1,
			D1: domain.Matrix{{1.01, 0, 0}, {0, 1, 0}, {0, 0, 1.01}},
			D2: domain.Matrix{{-1.01, 0, 0}, {0, 1, 0}, {0, 0, -1.01}},
		},
		{
			Family: domain.FamilyP4mm, Wall: domain.WallT90, StackAxis: 2,
			D1: domain.Matrix{{0, 1, 0}, {-1, 0, 1}, {1, 0, 1}},
			D2: domain.Matrix{{0, -1, 0}, {1, 0, -1}, {1, 0, 1}},
		},
	},
	domain.FamilyPnma: {
		{
			Family: domain.FamilyPnma, Wall: domain.WallFDW, StackAxis: 2,
			D1: domain.Matrix{{1, 1, 0}, {0, 0, 1}, {1, -1, 0}},
			D2: domain.Matrix{{-1, 1, 0}, {0, 0, 1}, {1, 1, 0}},
		},
	},
	domain.FamilyPmc21: {
		{
			Family: domain.FamilyPmc21, Wall: domain.WallO120HHTT, StackAxis: 1,
			D1: domain.Matrix{{-1, -2, 0}, {2, -1, 0}, {0, 0, 1}},
			D2: domain.Matrix{{-1, 2, 0}, {-2, -1, 0}, {0, 0, 1}},
		},
		{
			Family: domain.FamilyPmc21, Wall: domain.WallO120HT, StackAxis: 0,
			D1: domain.Matrix{{-1, -2, 0}, {2, -1, 0}, {0, 0, 1}},
			D2: domain.Matrix{{-1, 2, 0}, {-2, -1, 0}, {0, 0, 1}},
		},
		{
			Family: domain.FamilyPmc21, Wall: domain.WallO180, StackAxis: 1,
			D1: domain.Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
			D2: domain.Matrix{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}},
		},
		{
			Family: domain.FamilyPmc21, Wall: domain.WallO90, StackAxis: 0,
			D1: domain.Matrix{{0, 1, 0}, {-1, 0, 0}, {0, 0, 1}},
			D2: domain.Matrix{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}},
		},
	},
	domain.FamilyP63cm: {
		{
			Family: domain.FamilyP63cm, Wall: domain.WallNDW, StackAxis: 1, Mode: ModeAlternating,
			D1: domain.Identity, D2: domain.Identity,
		},
		{
			Family: domain.FamilyP63cm, Wall: domain.WallCDW, StackAxis: 2, Mode: ModeAlternating,
			D1: domain.Identity, D2: domain.Identity,
		},
	},
}

// pseudoCubic re-expresses a rhombohedral R3c cell in a near-cubic
// reference frame. Applied before any per-wall matrix for that family.
var pseudoCubic = domain.Matrix{{1, 1, -1}, {-1, 1, 1}, {1, -1, 1}}

// polarAxisCuts rotate a Pmc2_1 cell so the chosen polar axis ends up in
// the catalog's reference position.
var polarAxisCuts = map[string]domain.Matrix{
	"a": domain.Identity,
	"b": {{0, 1, 0}, {0, 0, 1}, {1, 0, 0}},
	"c": {{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
}

// Lookup returns the entry for one (family, wall) pair. A miss returns
// domain.ErrCatalogMiss so the caller can fall back to manual matrices.
func Lookup(f domain.Family, w domain.WallType) (Entry, error) {
	for _, e := range walls[f] {
		if e.Wall == w {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %s/%s", domain.ErrCatalogMiss, f, w)
}

// Walls returns every entry defined for the family, in catalog order.
func Walls(f domain.Family) ([]Entry, error) {
	es, ok := walls[f]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrCatalogMiss, f)
	}
	out := make([]Entry, len(es))
	copy(out, es)
	return out, nil
}

// Prerequisite returns the fixed basis change attached to the family (not
// the wall type), to be composed with the per-wall matrices before use.
// polarAxis is consulted for Pmc2_1 only; empty defaults to "c".
func Prerequisite(f domain.Family, polarAxis string) (domain.Matrix, bool) {
	switch f {
	case domain.FamilyR3c:
		return pseudoCubic, true
	case domain.FamilyPmc21:
		if polarAxis == "" {
			polarAxis = "c"
		}
		m, ok := polarAxisCuts[polarAxis]
		return m, ok
	}
	return domain.Identity, false
}
