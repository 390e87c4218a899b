package wall

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"dwbuilder/internal/catalog"
	"dwbuilder/internal/domain"
	"dwbuilder/internal/lattice"
)

// Service builds domain-wall structures from a unit cell and a catalog (or
// manual) orientation relationship.
type Service struct {
	log zerolog.Logger
}

// New returns a wall-building service that logs pipeline steps to log.
func New(log zerolog.Logger) *Service { return &Service{log: log} }

// Build runs one pipeline per resolved wall type and collects the results.
// A catalog miss or invalid request surfaces as a single errored result.
func (s *Service) Build(req domain.WallRequest) []domain.WallResult {
	entries, err := s.resolve(req)
	if err != nil {
		return []domain.WallResult{{Wall: req.Wall, Err: err}}
	}
	results := make([]domain.WallResult, 0, len(entries))
	for _, e := range entries {
		results = append(results, s.buildOne(req, e))
	}
	return results
}

// resolve maps the request onto catalog entries. Manual matrices bypass the
// catalog entirely; WallAll expands to every entry for the family.
func (s *Service) resolve(req domain.WallRequest) ([]catalog.Entry, error) {
	if req.Manual != nil {
		return []catalog.Entry{{
			Family:    domain.FamilyManual,
			Wall:      domain.WallManual,
			D1:        req.Manual.D1,
			D2:        req.Manual.D2,
			StackAxis: req.Manual.StackAxis,
		}}, nil
	}
	if req.Wall == domain.WallAll {
		return catalog.Walls(req.Family)
	}
	e, err := catalog.Lookup(req.Family, req.Wall)
	if err != nil {
		return nil, err
	}
	return []catalog.Entry{e}, nil
}

func (s *Service) buildOne(req domain.WallRequest, e catalog.Entry) domain.WallResult {
	res := domain.WallResult{Wall: e.Wall}
	if req.WallSize < 1 {
		res.Err = fmt.Errorf("wall size must be at least 1 unit cell, got %d", req.WallSize)
		return res
	}
	if e.Mode == catalog.ModeAlternating {
		s.buildAlternating(req, e, &res)
	} else {
		s.buildBicrystal(req, e, &res)
	}
	if res.Err != nil {
		s.log.Error().Str("wall", string(e.Wall)).Err(res.Err).Msg("wall-type run aborted")
		return res
	}
	ev := s.log.Info().
		Str("family", string(e.Family)).
		Str("wall", string(e.Wall)).
		Int("stack_axis", e.StackAxis).
		Int("atoms", res.Stacked.NumAtoms())
	for i, ax := range [3]string{"a", "b", "c"} {
		ev = ev.Float64("strain_"+ax+"_pct", res.Report.Strain[i])
	}
	ev.Msg("domain wall built")
	if res.Residual {
		s.log.Warn().Str("wall", string(e.Wall)).
			Msg("pruning left close contacts at the junction; inspect the output manually")
	}
	return res
}

// buildBicrystal is the simple two-block pipeline: transform both domains,
// report their mismatch, replicate, stack and prune.
func (s *Service) buildBicrystal(req domain.WallRequest, e catalog.Entry, res *domain.WallResult) {
	m1, m2 := e.D1, e.D2
	if pre, ok := catalog.Prerequisite(e.Family, req.PolarAxis); ok {
		m1 = lattice.Mul(m1, pre)
		m2 = lattice.Mul(m2, pre)
	}

	input2 := req.Input
	if req.Input2 != nil {
		input2 = *req.Input2
	}
	t1, err := lattice.Transform(req.Input, m1)
	if err != nil {
		res.Err = fmt.Errorf("transform domain 1: %w", err)
		return
	}
	t2, err := lattice.Transform(input2, m2)
	if err != nil {
		res.Err = fmt.Errorf("transform domain 2: %w", err)
		return
	}
	t1, t2 = lattice.Orient(t1), lattice.Orient(t2)

	res.Report, err = lattice.Mismatch(t1.Cell, t2.Cell)
	if err != nil {
		res.Err = err
		return
	}

	n := replication(req, e.StackAxis)
	d1, err := lattice.Replicate(t1, n[0], n[1], n[2])
	if err != nil {
		res.Err = err
		return
	}
	d2, err := lattice.Replicate(t2, n[0], n[1], n[2])
	if err != nil {
		res.Err = err
		return
	}

	stacked, err := lattice.Stack(d1, d2, e.StackAxis)
	if err != nil {
		res.Err = err
		return
	}
	res.Stacked = lattice.PruneJunction(stacked, d1.NumAtoms(), req.Cutoff)
	res.Residual = lattice.HasCloseContacts(res.Stacked, req.Cutoff)
	res.Domain1 = lattice.RemoveClose(d1, req.Cutoff)
	res.Domain2 = lattice.RemoveClose(d2, req.Cutoff)
}

// buildAlternating handles the hexagonal neutral/charged walls: both
// polarization states interleave inside one cell, WallSize periods total.
func (s *Service) buildAlternating(req domain.WallRequest, e catalog.Entry, res *domain.WallResult) {
	if req.Input2 == nil {
		res.Err = fmt.Errorf("%s wall needs a second polarization state", e.Wall)
		return
	}
	p1, p2 := req.Input, *req.Input2

	var err error
	res.Report, err = lattice.Mismatch(p1.Cell, p2.Cell)
	if err != nil {
		res.Err = err
		return
	}
	stacked, err := lattice.StackAlternating(p1, p2, req.WallSize, e.StackAxis)
	if err != nil {
		res.Err = err
		return
	}
	n1 := p1.NumAtoms() * (req.WallSize / 2)
	res.Stacked = lattice.PruneJunction(stacked, n1, req.Cutoff)
	res.Residual = lattice.HasCloseContacts(res.Stacked, req.Cutoff)
	res.Domain1 = p1
	res.Domain2 = p2
}

// replication returns the per-axis tiling factors: the wall size along the
// stacking axis, the requested supercell multipliers elsewhere.
func replication(req domain.WallRequest, axis int) [3]int {
	var n [3]int
	for i := 0; i < 3; i++ {
		if i == axis {
			n[i] = req.WallSize
			continue
		}
		n[i] = req.Supercell[i]
		if n[i] < 1 {
			n[i] = 1
		}
	}
	return n
}

// IsCatalogMiss reports whether err is the recoverable catalog-miss error,
// signalling the manual-matrix fallback.
func IsCatalogMiss(err error) bool { return errors.Is(err, domain.ErrCatalogMiss) }

var _ domain.WallBuilder = (*Service)(nil)
