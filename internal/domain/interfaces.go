package domain

// StructureReader parses an atomic-structure file into a Structure.
type StructureReader interface {
	ReadFile(path string) (Structure, error)
}

// StructureWriter renders a Structure to an atomic-structure file.
type StructureWriter interface {
	WriteFile(path string, s Structure) error
}

// WallBuilder runs the domain-wall pipeline for one wall type, or for every
// wall type the family defines. Per-wall failures are reported inside the
// returned results, never as a batch-level error.
type WallBuilder interface {
	Build(req WallRequest) []WallResult
}

// HeteroBuilder joins two different bulk phases at a shared interface.
type HeteroBuilder interface {
	Build(req HeteroRequest) (HeteroResult, error)
}

// WallRequest describes one domain-wall construction run.
type WallRequest struct {
	Input Structure
	// Input2 is the second polarization state, used only by the
	// alternating hexagonal walls (NDW/CDW).
	Input2 *Structure

	Family    Family
	Wall      WallType // WallAll requests every entry for the family
	PolarAxis string   // "a", "b" or "c"; consulted for Pmc2_1 only

	// Manual bypasses the catalog and supplies the orientation
	// relationship directly. Used when Family is FamilyManual.
	Manual *Orientation

	WallSize  int    // unit cells per domain along the stacking axis
	Supercell [3]int // in-plane multipliers; the stacking axis entry is ignored
	Cutoff    float64
}

// WallResult is the outcome of one wall-type run.
type WallResult struct {
	Wall    WallType
	Stacked Structure
	Domain1 Structure
	Domain2 Structure
	Report  MismatchReport

	// Residual is set when pruning left atom pairs closer than the
	// cutoff; the output still needs manual inspection.
	Residual bool

	// Err aborts this wall type only; sibling runs are unaffected.
	Err error
}

// HeteroRequest describes a bi-material interface construction run.
type HeteroRequest struct {
	Phase1, Phase2 Structure
	M1, M2         Matrix
	StackAxis      int
	Cutoff         float64
}

// HeteroResult is the outcome of an interface run.
type HeteroResult struct {
	Slab1, Slab2 Structure
	Interface    Structure
	Cleaned      Structure
	Report       MismatchReport
	Residual     bool
}
