package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"dwbuilder/internal/app"
	"dwbuilder/internal/domain"
)

var (
	outDir string
	quiet  bool
	wire   *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:           "dwbuilder",
		Short:         "Build domain-wall and interface structures for atomistic calculations",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			wire, err = app.NewWire(app.Config{OutDir: outDir, Quiet: quiet})
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if wire != nil {
				return wire.Close()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&outDir, "outdir", "o", ".", "output directory")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress console log output")

	root.AddCommand(wallCmd(), interfaceCmd(), supercellCmd(), vacuumCmd())
	return root.Execute()
}

// warn prints a red warning to the terminal, in addition to the run log.
func warn(msg string) {
	p := termenv.ColorProfile()
	fmt.Println(termenv.String("Warning: " + msg).Foreground(p.Color("1")))
}

// parseMatrix parses nine comma-separated values as a row-major 3x3 matrix.
func parseMatrix(s string) (domain.Matrix, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 9 {
		return domain.Matrix{}, fmt.Errorf("want 9 comma-separated values, got %d", len(fields))
	}
	var m domain.Matrix
	for i, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return domain.Matrix{}, fmt.Errorf("bad matrix entry %q", f)
		}
		m[i/3][i%3] = x
	}
	return m, nil
}

// parseAxis accepts a lattice axis as a letter (a, b, c) or index (0-2).
func parseAxis(s string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", "0":
		return 0, nil
	case "b", "1":
		return 1, nil
	case "c", "2":
		return 2, nil
	}
	return 0, fmt.Errorf("axis must be one of a, b, c (or 0, 1, 2), got %q", s)
}

// parseTriple parses "na,nb,nc" integer replication factors.
func parseTriple(s string) ([3]int, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return [3]int{}, fmt.Errorf("want 3 comma-separated integers, got %d values", len(fields))
	}
	var n [3]int
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return [3]int{}, fmt.Errorf("bad integer %q", f)
		}
		n[i] = v
	}
	return n, nil
}

func printReport(rep domain.MismatchReport, angles bool) {
	for i, ax := range [3]string{"a", "b", "c"} {
		fmt.Printf("strain along %s (%%): %.2f\n", ax, rep.Strain[i])
	}
	if angles {
		for i, ax := range [3]string{"a", "b", "c"} {
			fmt.Printf("angular strain along %s (radians): %.6f\n", ax, rep.Angle[i])
		}
	}
}
