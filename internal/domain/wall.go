package domain

import "fmt"

// Family identifies the crystal symmetry family of the input cell. The
// label is supplied by the user (or an external symmetry detector); this
// package never classifies space groups itself.
type Family string

const (
	FamilyR3m    Family = "R3m"
	FamilyR3c    Family = "R3c"
	FamilyP4mm   Family = "P4mm"
	FamilyPmc21  Family = "Pmc2_1"
	FamilyPnma   Family = "Pnma"
	FamilyP63cm  Family = "P6_3cm"
	FamilyManual Family = "Manual"
)

// ParseFamily validates a user-supplied family label.
func ParseFamily(s string) (Family, error) {
	switch Family(s) {
	case FamilyR3m, FamilyR3c, FamilyP4mm, FamilyPmc21, FamilyPnma, FamilyP63cm, FamilyManual:
		return Family(s), nil
	}
	return "", fmt.Errorf("unknown symmetry family %q", s)
}

// WallType names a class of domain wall by the polarization angle change
// across it, or by charge neutrality for the hexagonal walls.
type WallType string

const (
	WallR180     WallType = "R180"
	WallR71      WallType = "R71"
	WallR109     WallType = "R109"
	WallT180     WallType = "T180"
	WallT90      WallType = "T90"
	WallFDW      WallType = "FDW"
	WallO120HHTT WallType = "O120_HH_TT"
	WallO120HT   WallType = "O120_HT"
	WallO180     WallType = "O180"
	WallO90      WallType = "O90"
	WallNDW      WallType = "NDW"
	WallCDW      WallType = "CDW"

	// WallManual marks a run driven by user-supplied matrices.
	WallManual WallType = "OR"

	// WallAll requests every wall type defined for a family.
	WallAll WallType = "ALL"
)

// Orientation is a manually supplied orientation relationship: one cut
// matrix per domain plus the stacking axis (0=a, 1=b, 2=c).
type Orientation struct {
	D1, D2    Matrix
	StackAxis int
}

// MismatchReport holds the per-axis lattice mismatch between two domains'
// transformed cells. Strain is the percentage length difference
// (|L2|-|L1|)/|L1|*100; Angle is the angle between corresponding lattice
// vectors in radians.
type MismatchReport struct {
	Strain Vector
	Angle  Vector
}
