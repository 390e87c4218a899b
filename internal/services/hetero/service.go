package hetero

import (
	"fmt"

	"github.com/rs/zerolog"

	"dwbuilder/internal/domain"
	"dwbuilder/internal/lattice"
)

// Service builds bi-material interface structures.
type Service struct {
	log zerolog.Logger
}

// New returns an interface-building service.
func New(log zerolog.Logger) *Service { return &Service{log: log} }

// Build cuts both phases, stacks them along the requested axis and prunes
// the junction. The mismatch report compares the two oriented slabs with
// phase 1 as the reference.
func (s *Service) Build(req domain.HeteroRequest) (domain.HeteroResult, error) {
	var res domain.HeteroResult

	slab1, err := lattice.Transform(req.Phase1, req.M1)
	if err != nil {
		return res, fmt.Errorf("cut phase 1: %w", err)
	}
	slab2, err := lattice.Transform(req.Phase2, req.M2)
	if err != nil {
		return res, fmt.Errorf("cut phase 2: %w", err)
	}
	res.Slab1 = lattice.Orient(slab1)
	res.Slab2 = lattice.Orient(slab2)

	res.Report, err = lattice.Mismatch(res.Slab1.Cell, res.Slab2.Cell)
	if err != nil {
		return res, err
	}

	res.Interface, err = lattice.Stack(res.Slab1, res.Slab2, req.StackAxis)
	if err != nil {
		return res, err
	}
	res.Cleaned = lattice.PruneJunction(res.Interface, res.Slab1.NumAtoms(), req.Cutoff)
	res.Residual = lattice.HasCloseContacts(res.Cleaned, req.Cutoff)

	ev := s.log.Info().
		Int("stack_axis", req.StackAxis).
		Int("atoms", res.Cleaned.NumAtoms())
	for i, ax := range [3]string{"a", "b", "c"} {
		ev = ev.Float64("strain_"+ax+"_pct", res.Report.Strain[i]).
			Float64("angle_"+ax+"_rad", res.Report.Angle[i])
	}
	ev.Msg("interface built")
	if res.Residual {
		s.log.Warn().Msg("pruning left close contacts at the interface; inspect the output manually")
	}
	return res, nil
}

var _ domain.HeteroBuilder = (*Service)(nil)
