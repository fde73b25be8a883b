package commands

import (
	"encoding/json"
	"fmt"

	"spiralgen/internal/board"
	"spiralgen/internal/inductance"

	"github.com/spf13/cobra"
)

func newPlaceCmd(coil *coilFlags) *cobra.Command {
	defaults := board.DefaultOptions()
	var (
		x, y, rotation  float64
		layer           string
		centerVia       bool
		viaPad, viaHole float64
		asJSON, verbose bool
	)

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Convert a coil into board tracks and a center via",
		Long: `place generates the coil and maps it onto a board: coordinates become
integer nanometers, each pair of consecutive outline points becomes one
track of the coil's width, and an optional via is dropped at the center.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := coil.params()
			if err != nil {
				return err
			}
			l, err := board.ParseLayer(layer)
			if err != nil {
				return err
			}
			opts := defaults.WithOrigin(x, y).WithRotation(rotation).WithLayer(l).WithCenterVia(centerVia)
			opts.Via = opts.Via.WithSize(viaPad, viaHole)

			layout, err := board.Place(p, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(layout)
			}

			b := layout.Bounds()
			heading.Fprintf(out, "%s spiral on %s at (%.3f, %.3f) mm\n", p.Shape, l, x, y)
			fmt.Fprintf(out, "Tracks: %d, %.4f mm total, %.3f mm wide\n",
				len(layout.Tracks), layout.TrackLength(), p.TrackWidth)
			fmt.Fprintf(out, "Extent: %.3f x %.3f mm\n", b.Width, b.Height)
			if v := layout.Via; v != nil {
				fmt.Fprintf(out, "Via:    (%d, %d) nm, pad %d nm, drill %d nm\n",
					v.Position.X, v.Position.Y, v.Width, v.Drill)
			}
			fmt.Fprintln(out, inductance.FromParams(p))

			if verbose {
				fmt.Fprintln(out)
				for i, t := range layout.Tracks {
					fmt.Fprintf(out, "%5d (%d, %d) -> (%d, %d)\n", i, t.Start.X, t.Start.Y, t.End.X, t.End.Y)
				}
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64Var(&x, "x", defaults.Origin.X, "Board X of the coil center (mm)")
	f.Float64Var(&y, "y", defaults.Origin.Y, "Board Y of the coil center (mm)")
	f.Float64Var(&rotation, "rotation", 0, "Counter-clockwise rotation (degrees)")
	f.StringVar(&layer, "layer", string(defaults.Layer), "Copper layer (F.Cu, B.Cu, In1.Cu...)")
	f.BoolVar(&centerVia, "via", defaults.CenterVia, "Add a via at the coil center")
	f.Float64Var(&viaPad, "via-pad", defaults.Via.PadDiameter, "Via pad diameter (mm)")
	f.Float64Var(&viaHole, "via-drill", defaults.Via.Drill, "Via drill diameter (mm)")
	f.BoolVar(&asJSON, "json", false, "Print the layout as JSON")
	f.BoolVarP(&verbose, "verbose", "v", false, "List every track")
	return cmd
}
