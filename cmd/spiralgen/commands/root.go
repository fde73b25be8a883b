package commands

import (
	"spiralgen/internal/spiral"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var heading = color.New(color.FgCyan, color.Bold)

// coilFlags are the winding parameters shared by every subcommand.
type coilFlags struct {
	shape   string
	turns   float64
	width   float64
	spacing float64
	radius  float64
}

// NewRootCmd builds the spiralgen command tree.
func NewRootCmd() *cobra.Command {
	coil := &coilFlags{}

	root := &cobra.Command{
		Use:   "spiralgen",
		Short: "Planar spiral coil geometry and inductance estimates",
		Long: `spiralgen generates the outline of circular, square and octagonal
planar spiral coils, estimates their self-inductance with the modified
Wheeler current-sheet expression, and places or exports them for PCB layout.

All lengths are in millimeters.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaults := spiral.DefaultParams()
	flags := root.PersistentFlags()
	flags.StringVarP(&coil.shape, "shape", "s", defaults.Shape.String(), "Coil shape: circular, square or octagonal")
	flags.Float64VarP(&coil.turns, "turns", "n", defaults.Turns, "Number of turns (may be fractional)")
	flags.Float64VarP(&coil.width, "width", "w", defaults.TrackWidth, "Track width (mm)")
	flags.Float64Var(&coil.spacing, "spacing", defaults.Spacing, "Track spacing (mm)")
	flags.Float64VarP(&coil.radius, "radius", "r", defaults.InnerRadius, "Inner radius (mm)")

	root.AddCommand(
		newPathCmd(coil),
		newInductanceCmd(coil),
		newPlaceCmd(coil),
		newExportCmd(coil),
		newVersionCmd(),
	)
	return root
}

// params parses and validates the coil flags.
func (f *coilFlags) params() (spiral.Params, error) {
	shape, err := spiral.ParseShape(f.shape)
	if err != nil {
		return spiral.Params{}, err
	}
	p := spiral.Params{
		Shape:       shape,
		Turns:       f.turns,
		TrackWidth:  f.width,
		Spacing:     f.spacing,
		InnerRadius: f.radius,
	}
	return p, p.Validate()
}
