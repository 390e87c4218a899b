package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"dwbuilder/internal/app"
	"dwbuilder/internal/domain"
	"dwbuilder/internal/symmetry"
)

func interfaceCmd() *cobra.Command {
	var (
		phase1 string
		phase2 string
		d1     string
		d2     string
		axis   string
		cutoff float64
	)

	cmd := &cobra.Command{
		Use:   "interface",
		Short: "Build a bi-material interface between two bulk phases",
		Long: `Cut two bulk phases along user-supplied lattice directions, stack them
along the chosen axis and report the lattice and angular mismatch. The
in-plane lattice vectors of phase 1 define the combined cell; mismatch is
reported as strain, never corrected automatically.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := domain.HeteroRequest{Cutoff: cutoff}
			var err error
			if req.Phase1, err = wire.Reader.ReadFile(phase1); err != nil {
				return err
			}
			if req.Phase2, err = wire.Reader.ReadFile(phase2); err != nil {
				return err
			}
			if req.M1, err = parseMatrix(d1); err != nil {
				return fmt.Errorf("--d1: %w", err)
			}
			if req.M2, err = parseMatrix(d2); err != nil {
				return fmt.Errorf("--d2: %w", err)
			}
			if req.StackAxis, err = parseAxis(axis); err != nil {
				return err
			}

			fmt.Printf("Bulk phase 1 lattice type: %s\n", symmetry.LatticeType(req.Phase1.Cell))
			fmt.Printf("Bulk phase 2 lattice type: %s\n", symmetry.LatticeType(req.Phase2.Cell))

			res, err := wire.Hetero.Build(req)
			if err != nil {
				return err
			}

			dir := app.UniqueDir(filepath.Join(outDir, "HIS"))
			files := map[string]domain.Structure{
				"bulk1.vasp":             res.Slab1,
				"bulk2.vasp":             res.Slab2,
				"interface.vasp":         res.Interface,
				"interface_cleaned.vasp": res.Cleaned,
			}
			for name, s := range files {
				if err := wire.Writer.WriteFile(filepath.Join(dir, name), s); err != nil {
					return err
				}
			}

			printReport(res.Report, true)
			fmt.Printf("interface: %d atoms written to %s\n", res.Cleaned.NumAtoms(), dir)
			if res.Residual {
				warn("this run may have generated interface artifacts (duplicate or unphysical atoms); " +
					"manual adjustment is required.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&phase1, "phase1", "", "bulk phase 1 structure file (POSCAR)")
	cmd.Flags().StringVar(&phase2, "phase2", "", "bulk phase 2 structure file (POSCAR)")
	cmd.Flags().StringVar(&d1, "d1", "1,0,0,0,1,0,0,0,1", "phase 1 cut matrix, nine comma-separated values")
	cmd.Flags().StringVar(&d2, "d2", "1,0,0,0,1,0,0,0,1", "phase 2 cut matrix, nine comma-separated values")
	cmd.Flags().StringVar(&axis, "axis", "c", "stacking axis (a, b or c)")
	cmd.Flags().Float64VarP(&cutoff, "cutoff", "c", 0, "cutoff distance in angstroms for close-atom removal (0 disables)")
	_ = cmd.MarkFlagRequired("phase1")
	_ = cmd.MarkFlagRequired("phase2")
	return cmd
}
