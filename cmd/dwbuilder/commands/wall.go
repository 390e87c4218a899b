package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"dwbuilder/internal/app"
	"dwbuilder/internal/domain"
	"dwbuilder/internal/symmetry"
)

func wallCmd() *cobra.Command {
	var (
		input     string
		input2    string
		family    string
		wallType  string
		polarAxis string
		wallSize  int
		supercell string
		cutoff    float64
		recipe    string

		manualD1   string
		manualD2   string
		manualAxis string
	)

	cmd := &cobra.Command{
		Use:   "wall",
		Short: "Build domain-wall structures from a unit cell",
		Long: `Build one periodic domain-wall structure per requested wall type.
The symmetry family selects a catalog of orientation relationships; pass
--wall ALL to build every wall type the family defines. Unrecognized
families require manual matrices (--d1, --d2, --axis).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if recipe != "" {
				r, err := app.LoadRecipe(recipe)
				if err != nil {
					return err
				}
				applyRecipe(r, cmd, &input, &input2, &family, &wallType, &polarAxis,
					&wallSize, &supercell, &cutoff, &manualD1, &manualD2, &manualAxis)
			}
			if input == "" {
				return fmt.Errorf("an input structure is required (--input)")
			}

			req := domain.WallRequest{
				Wall:      domain.WallType(wallType),
				PolarAxis: polarAxis,
				WallSize:  wallSize,
				Cutoff:    cutoff,
			}
			var err error
			if req.Input, err = wire.Reader.ReadFile(input); err != nil {
				return err
			}
			if input2 != "" {
				s2, err := wire.Reader.ReadFile(input2)
				if err != nil {
					return err
				}
				req.Input2 = &s2
			}
			if supercell != "" {
				if req.Supercell, err = parseTriple(supercell); err != nil {
					return err
				}
			}

			if manualD1 != "" || manualD2 != "" {
				req.Family = domain.FamilyManual
				man := domain.Orientation{}
				if man.D1, err = parseMatrix(manualD1); err != nil {
					return fmt.Errorf("--d1: %w", err)
				}
				if man.D2, err = parseMatrix(manualD2); err != nil {
					return fmt.Errorf("--d2: %w", err)
				}
				if man.StackAxis, err = parseAxis(manualAxis); err != nil {
					return err
				}
				req.Manual = &man
			} else if req.Family, err = domain.ParseFamily(family); err != nil {
				return fmt.Errorf("%w (supply --d1/--d2/--axis for a manual orientation relationship)", err)
			}

			fmt.Printf("Lattice type: %s\n", symmetry.LatticeType(req.Input.Cell))
			return runWall(req)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input structure file (POSCAR)")
	cmd.Flags().StringVar(&input2, "input2", "", "second polarization state (NDW/CDW walls)")
	cmd.Flags().StringVarP(&family, "family", "f", "", "symmetry family (R3m, R3c, P4mm, Pmc2_1, Pnma, P6_3cm)")
	cmd.Flags().StringVarP(&wallType, "wall", "w", string(domain.WallAll), "wall type, or ALL")
	cmd.Flags().StringVar(&polarAxis, "polar-axis", "c", "polar axis for Pmc2_1 (a, b or c)")
	cmd.Flags().IntVarP(&wallSize, "size", "n", 1, "domain wall size in unit cells along the stacking axis")
	cmd.Flags().StringVarP(&supercell, "supercell", "s", "", "in-plane supercell factors as na,nb,nc")
	cmd.Flags().Float64VarP(&cutoff, "cutoff", "c", 0, "cutoff distance in angstroms for close-atom removal (0 disables)")
	cmd.Flags().StringVarP(&recipe, "recipe", "r", "", "YAML recipe file; flags override recipe values")
	cmd.Flags().StringVar(&manualD1, "d1", "", "manual domain 1 matrix, nine comma-separated values")
	cmd.Flags().StringVar(&manualD2, "d2", "", "manual domain 2 matrix, nine comma-separated values")
	cmd.Flags().StringVar(&manualAxis, "axis", "c", "manual stacking axis (a, b or c)")
	return cmd
}

// runWall executes the pipeline and writes one output directory per wall
// type. Per-wall failures are reported and do not abort sibling runs.
func runWall(req domain.WallRequest) error {
	results := wire.Walls.Build(req)

	failures := 0
	for _, res := range results {
		if res.Err != nil {
			failures++
			fmt.Printf("%s: failed: %v\n", res.Wall, res.Err)
			continue
		}
		family := req.Family
		dir := app.UniqueDir(filepath.Join(outDir, fmt.Sprintf("%s_%s", family, res.Wall)))

		files := map[string]domain.Structure{
			fmt.Sprintf("%s_domain1.vasp", res.Wall): res.Domain1,
			fmt.Sprintf("%s_domain2.vasp", res.Wall): res.Domain2,
			fmt.Sprintf("%s_stacked.vasp", res.Wall): res.Stacked,
		}
		for name, s := range files {
			if err := wire.Writer.WriteFile(filepath.Join(dir, name), s); err != nil {
				return err
			}
		}

		fmt.Printf("Lattice strain for %s DW:\n", res.Wall)
		printReport(res.Report, false)
		fmt.Printf("%s: %d atoms written to %s\n", res.Wall, res.Stacked.NumAtoms(), dir)
		if res.Residual {
			warn("this run may have generated domain wall artifacts (duplicate or unphysical atoms) " +
				"at the junction; manual adjustment is required.")
		}
	}
	if failures == len(results) {
		return fmt.Errorf("all %d wall-type runs failed", failures)
	}
	return nil
}

// applyRecipe fills in every value the user did not set on the command line.
func applyRecipe(r app.Recipe, cmd *cobra.Command,
	input, input2, family, wallType, polarAxis *string,
	wallSize *int, supercell *string, cutoff *float64,
	manualD1, manualD2, manualAxis *string,
) {
	set := cmd.Flags().Changed
	if !set("input") && r.Input != "" {
		*input = r.Input
	}
	if !set("input2") && r.Input2 != "" {
		*input2 = r.Input2
	}
	if !set("family") && r.Family != "" {
		*family = r.Family
	}
	if !set("wall") && r.Wall != "" {
		*wallType = r.Wall
	}
	if !set("polar-axis") && r.PolarAxis != "" {
		*polarAxis = r.PolarAxis
	}
	if !set("size") && r.WallSize != 0 {
		*wallSize = r.WallSize
	}
	if !set("supercell") && r.Supercell != [3]int{} {
		*supercell = fmt.Sprintf("%d,%d,%d", r.Supercell[0], r.Supercell[1], r.Supercell[2])
	}
	if !set("cutoff") && r.Cutoff != 0 {
		*cutoff = r.Cutoff
	}
	if !set("d1") && r.D1 != nil {
		*manualD1 = joinMatrix(*r.D1)
	}
	if !set("d2") && r.D2 != nil {
		*manualD2 = joinMatrix(*r.D2)
	}
	if !set("axis") && r.StackAxis != nil {
		*manualAxis = fmt.Sprintf("%d", *r.StackAxis)
	}
}

func joinMatrix(m [9]float64) string {
	s := ""
	for i, v := range m {
		if i > 0 {
			s += ","
		}
		s += fmt.Sprintf("%g", v)
	}
	return s
}
