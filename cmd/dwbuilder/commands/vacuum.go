package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"dwbuilder/internal/lattice"
)

func vacuumCmd() *cobra.Command {
	var (
		input string
		axis  string
		size  float64
	)

	cmd := &cobra.Command{
		Use:   "vacuum",
		Short: "Add a vacuum layer along one lattice axis",
		Long: `Lengthen one lattice vector by the given amount without moving atoms in
Cartesian space, e.g. to turn a bulk cell into a slab geometry.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := wire.Reader.ReadFile(input)
			if err != nil {
				return err
			}
			ax, err := parseAxis(axis)
			if err != nil {
				return err
			}
			out, err := lattice.AddVacuum(s, ax, size)
			if err != nil {
				return err
			}

			path := filepath.Join(outDir, "structure_with_vacuum.vasp")
			if err := wire.Writer.WriteFile(path, out); err != nil {
				return err
			}
			fmt.Printf("structure with vacuum written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input structure file (POSCAR)")
	cmd.Flags().StringVar(&axis, "axis", "c", "axis to extend (a, b or c)")
	cmd.Flags().Float64VarP(&size, "size", "s", 10, "vacuum size in angstroms")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
