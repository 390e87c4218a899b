package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"dwbuilder/internal/lattice"
)

func supercellCmd() *cobra.Command {
	var (
		input string
		size  string
	)

	cmd := &cobra.Command{
		Use:   "supercell",
		Short: "Replicate a structure by integer factors along a, b and c",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := wire.Reader.ReadFile(input)
			if err != nil {
				return err
			}
			n, err := parseTriple(size)
			if err != nil {
				return err
			}
			super, err := lattice.Replicate(s, n[0], n[1], n[2])
			if err != nil {
				return err
			}

			base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
			out := filepath.Join(outDir, base+"_supercell"+filepath.Ext(input))
			if err := wire.Writer.WriteFile(out, super); err != nil {
				return err
			}
			fmt.Printf("supercell: %d atoms written to %s\n", super.NumAtoms(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input structure file (POSCAR)")
	cmd.Flags().StringVarP(&size, "size", "s", "1,1,1", "replication factors as na,nb,nc")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
