package commands

import (
	"encoding/json"
	"fmt"

	"spiralgen/internal/spiral"
	"spiralgen/pkg/geometry"

	"github.com/spf13/cobra"
)

func newPathCmd(coil *coilFlags) *cobra.Command {
	var (
		centerX, centerY float64
		asJSON           bool
	)

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the outline points of a coil",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := coil.params()
			if err != nil {
				return err
			}
			center := geometry.NewPoint2D(centerX, centerY)
			points, err := p.Path(center)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(points)
			}

			lo, hi := spiral.RadiusRange(center, points)
			heading.Fprintf(out, "%s spiral, %g turns\n", p.Shape, p.Turns)
			fmt.Fprintf(out, "Points: %d (%d per turn)\n", len(points), p.Shape.SegmentsPerTurn())
			fmt.Fprintf(out, "Length: %.4f mm\n", spiral.PathLength(points))
			fmt.Fprintf(out, "Radius: %.4f - %.4f mm\n\n", lo, hi)

			fmt.Fprintf(out, "%6s %12s %12s %10s\n", "#", "X", "Y", "R")
			for i, pt := range points {
				fmt.Fprintf(out, "%6d %12.4f %12.4f %10.4f\n", i, pt.X, pt.Y, pt.Distance(center))
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&centerX, "center-x", 0, "Center X (mm)")
	cmd.Flags().Float64Var(&centerY, "center-y", 0, "Center Y (mm)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print points as JSON")
	return cmd
}
